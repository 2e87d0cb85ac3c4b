package controllers

import (
	"context"

	"github.com/agoracomunicaciones/agorabackend/models"
)

// RequestStore is the persistence dependency handed to every handler.
// database.MongoStore implements it in production; tests use an in-memory
// fake.
type RequestStore interface {
	InsertContact(ctx context.Context, req models.ContactRequest) error
	InsertQuote(ctx context.Context, req models.QuoteRequest) error
	ListContacts(ctx context.Context) ([]models.ContactRequest, error)
	ListQuotes(ctx context.Context) ([]models.QuoteRequest, error)
	Ping(ctx context.Context) error
}
