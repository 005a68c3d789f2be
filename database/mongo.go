package database

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/rmartinez-dev/todos-api/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const Performance = 100

var (
	// Used to create a singleton object of MongoDB client.
	// Initialized and exposed through GetCollection()
	mongoClient *mongo.Client
	// Used during creation of singleton client object
	clientInstanceError error
	// Used to execute client creation procedure only once
	mongoOnce sync.Once
	dbName    string
)

func GetCollection(name string) *mongo.Collection {
	return mongoClient.Database(dbName).Collection(name)
}

func StartMongoDB() error {
	uri := config.GetEnv("MONGODB_URI")
	if uri == "" {
		return errors.New("you must set your 'MONGODB_URI' environmental variable. See\n\t https://www.mongodb.com/docs/drivers/go/current/usage-examples/#environment-variable")
	}

	database := config.GetEnv("DATABASE")
	if database == "" {
		return errors.New("you must set your 'DATABASE' environmental variable")
	} else {
		dbName = database
	}

	// Perform connection creation operation only once.
	mongoOnce.Do(func() {
		// Set client options
		clientOptions := options.Client().ApplyURI(uri)
		ctx, cancel := NewDBContext(10 * time.Second)
		defer cancel()
		// Connect to MongoDB
		client, err := mongo.Connect(ctx, clientOptions)
		if err != nil {
			clientInstanceError = err
		}
		// Check the connection
		err = client.Ping(ctx, nil)
		if err != nil {
			clientInstanceError = err
		}
		mongoClient = client
	})

	if clientInstanceError != nil {
		return clientInstanceError
	}
	return nil
}

func CloseMongoDB() {
	// Shutdown needs its own context; the startup one is long cancelled.
	dctx, cancel := NewDBContext(10 * time.Second)
	defer cancel()

	if err := mongoClient.Disconnect(dctx); err != nil {
		log.Printf("error disconnecting from MongoDB: %v", err)
	}
}

// EnsureAccountIndexes creates the unique username index on the accounts
// collection. The index enforces uniqueness under concurrent registration;
// the handler-level lookup only exists for a friendlier 409.
func EnsureAccountIndexes(collectionName string) error {
	ictx, cancel := NewDBContext(10 * time.Second)
	defer cancel()

	_, err := GetCollection(collectionName).Indexes().CreateOne(ictx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// NewDBContext returns a new Context according to app performance
func NewDBContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d*Performance/100)
}
