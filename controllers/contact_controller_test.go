package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/agoracomunicaciones/agorabackend/models"
)

func TestSubmitContact_Success(t *testing.T) {
	var captured *models.ContactRequest
	store := &mockStore{
		insertContactFunc: func(ctx context.Context, req models.ContactRequest) error {
			captured = &req
			return nil
		},
	}

	body := `{"name":"Test","email":"t@example.com","message":"hi"}`
	rec := performJSON(t, SubmitContact(store), http.MethodPost, "/api/contact", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["status"] != "success" {
		t.Errorf("expected status=success, got %v", resp["status"])
	}
	id, _ := resp["id"].(string)
	if id == "" {
		t.Fatal("expected a non-empty id in the response")
	}

	if captured == nil {
		t.Fatal("expected a record to be inserted")
	}
	if captured.ID != id {
		t.Errorf("response id %q does not match stored id %q", id, captured.ID)
	}
	if captured.Status != models.StatusNew {
		t.Errorf("expected stored status=new, got %q", captured.Status)
	}
	if captured.Message != "hi" {
		t.Errorf("expected message=hi, got %q", captured.Message)
	}
	if captured.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
}

func TestSubmitContact_InvalidEmail(t *testing.T) {
	inserted := false
	store := &mockStore{
		insertContactFunc: func(ctx context.Context, req models.ContactRequest) error {
			inserted = true
			return nil
		},
	}

	body := `{"name":"Test","email":"not-an-email","message":"hi"}`
	rec := performJSON(t, SubmitContact(store), http.MethodPost, "/api/contact", body)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if inserted {
		t.Error("no record should be inserted on a validation failure")
	}
}

func TestSubmitContact_MissingMessage(t *testing.T) {
	store := &mockStore{}
	body := `{"name":"Test","email":"t@example.com"}`
	rec := performJSON(t, SubmitContact(store), http.MethodPost, "/api/contact", body)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestSubmitContact_WhitespaceOnlyName(t *testing.T) {
	store := &mockStore{}
	body := `{"name":"   ","email":"t@example.com","message":"hi"}`
	rec := performJSON(t, SubmitContact(store), http.MethodPost, "/api/contact", body)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestSubmitContact_StoreFailure(t *testing.T) {
	store := &mockStore{
		insertContactFunc: func(ctx context.Context, req models.ContactRequest) error {
			return errors.New("write rejected")
		},
	}

	body := `{"name":"Test","email":"t@example.com","message":"hi"}`
	rec := performJSON(t, SubmitContact(store), http.MethodPost, "/api/contact", body)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var resp map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["error"] != "Error al enviar el mensaje" {
		t.Errorf("expected the localized generic message, got %q", resp["error"])
	}
}
