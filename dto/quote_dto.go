package dto

// SubmitQuoteDTO binds the multipart quote form. Services arrives as a
// JSON-encoded string list; the attached files are read from the multipart
// form directly, not bound here.
type SubmitQuoteDTO struct {
	Name               string `form:"name" binding:"required"`
	Email              string `form:"email" binding:"required,email"`
	Phone              string `form:"phone"`
	Company            string `form:"company"`
	Services           string `form:"services"`
	ProjectDescription string `form:"project_description" binding:"required"`
	BudgetRange        string `form:"budget_range"`
	Timeline           string `form:"timeline"`
}
