package controllers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"testing"

	"github.com/agoracomunicaciones/agorabackend/models"
	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// ---------------------------------------------------------------------------
// Mock RequestStore
// ---------------------------------------------------------------------------

type mockStore struct {
	insertContactFunc func(ctx context.Context, req models.ContactRequest) error
	insertQuoteFunc   func(ctx context.Context, req models.QuoteRequest) error
	listContactsFunc  func(ctx context.Context) ([]models.ContactRequest, error)
	listQuotesFunc    func(ctx context.Context) ([]models.QuoteRequest, error)
	pingFunc          func(ctx context.Context) error
}

func (m *mockStore) InsertContact(ctx context.Context, req models.ContactRequest) error {
	if m.insertContactFunc != nil {
		return m.insertContactFunc(ctx, req)
	}
	return nil
}

func (m *mockStore) InsertQuote(ctx context.Context, req models.QuoteRequest) error {
	if m.insertQuoteFunc != nil {
		return m.insertQuoteFunc(ctx, req)
	}
	return nil
}

func (m *mockStore) ListContacts(ctx context.Context) ([]models.ContactRequest, error) {
	if m.listContactsFunc != nil {
		return m.listContactsFunc(ctx)
	}
	return []models.ContactRequest{}, nil
}

func (m *mockStore) ListQuotes(ctx context.Context) ([]models.QuoteRequest, error) {
	if m.listQuotesFunc != nil {
		return m.listQuotesFunc(ctx)
	}
	return []models.QuoteRequest{}, nil
}

func (m *mockStore) Ping(ctx context.Context) error {
	if m.pingFunc != nil {
		return m.pingFunc(ctx)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Request helpers
// ---------------------------------------------------------------------------

func performJSON(t *testing.T, h gin.HandlerFunc, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := gin.New()
	r.Handle(method, path, h)

	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func performGET(t *testing.T, h gin.HandlerFunc, path string) *httptest.ResponseRecorder {
	t.Helper()
	r := gin.New()
	r.GET(path, h)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

type formFile struct {
	filename string
	content  string
}

// multipartBody builds a quote form with the given fields and attachments.
// Files with an empty filename are sent as real multipart parts so the
// skip-empty-filename path is exercised.
func multipartBody(t *testing.T, fields map[string]string, files []formFile) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	for _, f := range files {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", `form-data; name="files"; filename="`+f.filename+`"`)
		part, err := w.CreatePart(h)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := part.Write([]byte(f.content)); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func performMultipart(t *testing.T, h gin.HandlerFunc, fields map[string]string, files []formFile) *httptest.ResponseRecorder {
	t.Helper()
	r := gin.New()
	r.POST("/api/quote", h)

	body, contentType := multipartBody(t, fields, files)
	req := httptest.NewRequest(http.MethodPost, "/api/quote", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}
