package database

import (
	"context"
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// KV is the content store: named JSON values, one per key. Get returns
// (nil, nil) for an absent key so callers can treat "missing" and
// "empty" the same way. There is no locking across Get/Set; concurrent
// writers are last-write-wins.
type KV interface {
	Get(ctx context.Context, key string) (json.RawMessage, error)
	Set(ctx context.Context, key string, value json.RawMessage) error
}

type kvDoc struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

type mongoKV struct {
	coll *mongo.Collection
}

func (s *mongoKV) Get(ctx context.Context, key string) (json.RawMessage, error) {
	var doc kvDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return json.RawMessage(doc.Value), nil
}

func (s *mongoKV) Set(ctx context.Context, key string, value json.RawMessage) error {
	doc := kvDoc{Key: key, Value: string(value)}
	opts := options.Replace().SetUpsert(true)
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": key}, doc, opts)
	return err
}
