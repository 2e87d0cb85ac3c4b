package database

import (
	"log/slog"

	"github.com/agoracomunicaciones/agorabackend/utils"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Connect builds the MongoDB client from MONGO_URL. The driver dials
// lazily, so an unreachable store surfaces on the first operation (and in
// the health probe) rather than at startup.
func Connect() (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	uri := utils.EnvDefault("MONGO_URL", "mongodb://localhost:27017")
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, err
	}
	slog.Info("mongodb client configured", "uri", uri)
	return client, nil
}
