package database

import (
	"context"

	"github.com/agoracomunicaciones/agorabackend/models"
	"github.com/agoracomunicaciones/agorabackend/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const (
	contactCollection = "contact_requests"
	quoteCollection   = "quote_requests"
)

// MongoStore holds the two request collections. It is handed to the
// controllers explicitly so tests can swap in an in-memory fake.
type MongoStore struct {
	client   *mongo.Client
	contacts *mongo.Collection
	quotes   *mongo.Collection
}

func NewMongoStore(client *mongo.Client, dbName string) *MongoStore {
	db := client.Database(dbName)
	return &MongoStore{
		client:   client,
		contacts: db.Collection(contactCollection),
		quotes:   db.Collection(quoteCollection),
	}
}

func (s *MongoStore) InsertContact(ctx context.Context, req models.ContactRequest) error {
	if _, err := s.contacts.InsertOne(ctx, req); err != nil {
		return &utils.PersistenceError{Op: "insert contact request", Err: err}
	}
	return nil
}

func (s *MongoStore) InsertQuote(ctx context.Context, req models.QuoteRequest) error {
	if _, err := s.quotes.InsertOne(ctx, req); err != nil {
		return &utils.PersistenceError{Op: "insert quote request", Err: err}
	}
	return nil
}

func (s *MongoStore) ListContacts(ctx context.Context) ([]models.ContactRequest, error) {
	cursor, err := s.contacts.Find(ctx, bson.M{}, listOptions())
	if err != nil {
		return nil, &utils.PersistenceError{Op: "list contact requests", Err: err}
	}
	defer cursor.Close(ctx)

	items := make([]models.ContactRequest, 0)
	for cursor.Next(ctx) {
		var r models.ContactRequest
		if err := cursor.Decode(&r); err != nil {
			return nil, &utils.PersistenceError{Op: "decode contact request", Err: err}
		}
		items = append(items, r)
	}
	if err := cursor.Err(); err != nil {
		return nil, &utils.PersistenceError{Op: "list contact requests", Err: err}
	}
	return items, nil
}

func (s *MongoStore) ListQuotes(ctx context.Context) ([]models.QuoteRequest, error) {
	cursor, err := s.quotes.Find(ctx, bson.M{}, listOptions())
	if err != nil {
		return nil, &utils.PersistenceError{Op: "list quote requests", Err: err}
	}
	defer cursor.Close(ctx)

	items := make([]models.QuoteRequest, 0)
	for cursor.Next(ctx) {
		var r models.QuoteRequest
		if err := cursor.Decode(&r); err != nil {
			return nil, &utils.PersistenceError{Op: "decode quote request", Err: err}
		}
		items = append(items, r)
	}
	if err := cursor.Err(); err != nil {
		return nil, &utils.PersistenceError{Op: "list quote requests", Err: err}
	}
	return items, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return &utils.PersistenceError{Op: "ping", Err: err}
	}
	return nil
}

// listOptions sorts newest first and strips the store's own _id; the
// record keeps only the id this service generated at intake.
func listOptions() *options.FindOptionsBuilder {
	return options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetProjection(bson.D{{Key: "_id", Value: 0}})
}
