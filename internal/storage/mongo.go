package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

var ErrNotConfigured = errors.New("MONGODB_URI environment variable is not configured")

const connectTimeout = 10 * time.Second

// MongoClient lazily opens the single document-store connection shared by
// every repository. The first attempt is memoized, failures included: there
// is no reconnect and no retry.
type MongoClient struct {
	uri    string
	dbName string
	log    *zap.Logger

	once   sync.Once
	client *mongo.Client
	db     *mongo.Database
	err    error
}

func NewMongoClient(uri, dbName string, log *zap.Logger) *MongoClient {
	return &MongoClient{uri: uri, dbName: dbName, log: log}
}

func (m *MongoClient) Enabled() bool {
	return m != nil && m.uri != ""
}

// Database returns the shared handle, connecting on first use. Callers that
// arrive while the first connection is pending wait for it.
func (m *MongoClient) Database(ctx context.Context) (*mongo.Database, error) {
	if !m.Enabled() {
		return nil, ErrNotConfigured
	}
	m.once.Do(m.connect)
	if m.err != nil {
		return nil, m.err
	}
	return m.db, nil
}

func (m *MongoClient) connect() {
	// Not tied to any request: the handle outlives the caller that opened it.
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(m.uri))
	if err != nil {
		m.err = fmt.Errorf("failed to connect to MongoDB: %w", err)
		m.log.Error("MongoDB connection failed", zap.Error(err))
		return
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		m.err = fmt.Errorf("failed to ping MongoDB: %w", err)
		m.log.Error("MongoDB ping failed", zap.Error(err))
		return
	}

	m.client = client
	m.db = client.Database(m.dbName)
	m.log.Info("Successfully connected to MongoDB", zap.String("database", m.dbName))
}

func (m *MongoClient) Disconnect(ctx context.Context) error {
	if m == nil || m.client == nil {
		return nil
	}
	if err := m.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}
	return nil
}
