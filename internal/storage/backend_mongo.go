package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoBackend stores a collection in the document store. Records are
// addressed by their string "id" field; Mongo's own _id is ignored.
type mongoBackend[T any] struct {
	client *MongoClient
	name   string
	seed   func() []T
	unique *UniqueKey[T]

	mu     sync.Mutex
	seeded bool
}

func (b *mongoBackend[T]) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := b.client.Database(ctx)
	if err != nil {
		return nil, err
	}
	coll := db.Collection(b.name)
	if err := b.ensureSeeded(ctx, coll); err != nil {
		return nil, err
	}
	return coll, nil
}

// ensureSeeded fills an empty collection with the default records once per
// process. A failed attempt is retried on the next call.
func (b *mongoBackend[T]) ensureSeeded(ctx context.Context, coll *mongo.Collection) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.seeded {
		return nil
	}

	if b.unique != nil {
		index := mongo.IndexModel{
			Keys:    bson.D{{Key: b.unique.Field, Value: 1}},
			Options: options.Index().SetUnique(true),
		}
		if _, err := coll.Indexes().CreateOne(ctx, index); err != nil {
			return fmt.Errorf("create %s index on %s: %w", b.unique.Field, b.name, err)
		}
	}

	count, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count %s: %w", b.name, err)
	}
	if count == 0 {
		seed := b.seed()
		if len(seed) > 0 {
			docs := make([]interface{}, len(seed))
			for i := range seed {
				docs[i] = seed[i]
			}
			if _, err := coll.InsertMany(ctx, docs); err != nil {
				return fmt.Errorf("seed %s: %w", b.name, err)
			}
		}
	}

	b.seeded = true
	return nil
}

func (b *mongoBackend[T]) All(ctx context.Context) ([]T, error) {
	coll, err := b.collection(ctx)
	if err != nil {
		return nil, err
	}
	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", b.name, err)
	}
	defer cursor.Close(ctx)

	var out []T
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", b.name, err)
	}
	return out, nil
}

func (b *mongoBackend[T]) Get(ctx context.Context, id string) (*T, error) {
	coll, err := b.collection(ctx)
	if err != nil {
		return nil, err
	}
	var rec T
	err = coll.FindOne(ctx, bson.M{"id": id}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find %s %s: %w", b.name, id, err)
	}
	return &rec, nil
}

func (b *mongoBackend[T]) Insert(ctx context.Context, rec T) error {
	coll, err := b.collection(ctx)
	if err != nil {
		return err
	}
	if _, err := coll.InsertOne(ctx, rec); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert into %s: %w", b.name, err)
	}
	return nil
}

func (b *mongoBackend[T]) Update(ctx context.Context, id string, fn func(*T)) (*T, error) {
	rec, err := b.Get(ctx, id)
	if err != nil || rec == nil {
		return nil, err
	}
	fn(rec)

	coll, err := b.collection(ctx)
	if err != nil {
		return nil, err
	}
	res, err := coll.ReplaceOne(ctx, bson.M{"id": id}, rec)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("update %s %s: %w", b.name, id, err)
	}
	if res.MatchedCount == 0 {
		return nil, nil
	}
	return rec, nil
}

func (b *mongoBackend[T]) Delete(ctx context.Context, id string) (bool, error) {
	coll, err := b.collection(ctx)
	if err != nil {
		return false, err
	}
	res, err := coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("delete %s %s: %w", b.name, id, err)
	}
	return res.DeletedCount > 0, nil
}
