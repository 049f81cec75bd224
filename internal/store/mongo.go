package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoStore struct {
	db *mongo.Database
}

// NewMongoStore wraps db. A nil db is accepted so the HTTP listener can come
// up before the database does; every call then fails with ErrNotConnected.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) collection(name string) (*mongo.Collection, error) {
	if s.db == nil {
		return nil, ErrNotConnected
	}
	return s.db.Collection(name), nil
}

func (s *MongoStore) Find(ctx context.Context, collection string, filter bson.M) ([]bson.M, error) {
	coll, err := s.collection(collection)
	if err != nil {
		return nil, err
	}
	if filter == nil {
		filter = bson.M{}
	}

	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", collection, err)
	}

	out := make([]bson.M, 0, len(docs))
	for _, d := range docs {
		out = append(out, Normalize(d))
	}
	return out, nil
}

func (s *MongoStore) FindOne(ctx context.Context, collection string, filter bson.M) (bson.M, error) {
	coll, err := s.collection(collection)
	if err != nil {
		return nil, err
	}

	var doc bson.M
	err = coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find one %s: %w", collection, err)
	}
	return Normalize(doc), nil
}

func (s *MongoStore) InsertOne(ctx context.Context, collection string, doc bson.M) (*models.InsertResult, error) {
	coll, err := s.collection(collection)
	if err != nil {
		return nil, err
	}

	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert %s: %w", collection, err)
	}
	return &models.InsertResult{
		Acknowledged: true,
		InsertedID:   normalizeValue(res.InsertedID),
	}, nil
}

func (s *MongoStore) UpdateOne(ctx context.Context, collection string, filter, set bson.M, upsert bool) (*models.UpdateResult, error) {
	coll, err := s.collection(collection)
	if err != nil {
		return nil, err
	}

	opts := options.Update().SetUpsert(upsert)
	res, err := coll.UpdateOne(ctx, filter, bson.M{"$set": set}, opts)
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", collection, err)
	}
	return &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    normalizeValue(res.UpsertedID),
	}, nil
}

func (s *MongoStore) DeleteOne(ctx context.Context, collection string, filter bson.M) (*models.DeleteResult, error) {
	coll, err := s.collection(collection)
	if err != nil {
		return nil, err
	}

	res, err := coll.DeleteOne(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("delete %s: %w", collection, err)
	}
	return &models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
