package models

import "time"

// FileRef describes one attachment persisted to the file store.
// OriginalName is whatever the caller sent and is stored verbatim; it never
// influences the on-disk path, which is always <id>.<extension>.
type FileRef struct {
	ID           string `bson:"id" json:"id"`
	OriginalName string `bson:"original_name" json:"original_name"`
	Path         string `bson:"path" json:"path"`
	Size         int64  `bson:"size" json:"size"`
}

// QuoteRequest is a quote-form submission with zero or more attachments.
type QuoteRequest struct {
	ID      string `bson:"id" json:"id"`
	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email" json:"email"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Company string `bson:"company,omitempty" json:"company,omitempty"`

	Services           []string `bson:"services" json:"services"`
	ProjectDescription string   `bson:"project_description" json:"project_description"`
	BudgetRange        string   `bson:"budget_range,omitempty" json:"budget_range,omitempty"`
	Timeline           string   `bson:"timeline,omitempty" json:"timeline,omitempty"`

	Files []FileRef `bson:"files" json:"files"`

	Status    RequestStatus `bson:"status" json:"status"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
}
