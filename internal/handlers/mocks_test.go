package handlers

import (
	"context"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"github.com/harentsoaR/doctors-portal-api/internal/services"
	"github.com/harentsoaR/doctors-portal-api/internal/store"
)

var (
	_ store.Store             = (*memoryStore)(nil)
	_ services.PaymentGateway = (*mockGateway)(nil)
)

// memoryStore is an in-memory Store with exact-equality filters. Setting
// Err makes every call fail with it.
type memoryStore struct {
	mu   sync.Mutex
	data map[string][]bson.M
	Err  error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: map[string][]bson.M{}}
}

// seed inserts docs directly and returns their ids.
func (m *memoryStore) seed(collection string, docs ...bson.M) []primitive.ObjectID {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]primitive.ObjectID, 0, len(docs))
	for _, d := range docs {
		d = copyDoc(d)
		id := primitive.NewObjectID()
		d["_id"] = id
		m.data[collection] = append(m.data[collection], d)
		ids = append(ids, id)
	}
	return ids
}

// raw returns the stored documents without normalization.
func (m *memoryStore) raw(collection string) []bson.M {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]bson.M(nil), m.data[collection]...)
}

func (m *memoryStore) Find(_ context.Context, collection string, filter bson.M) ([]bson.M, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []bson.M{}
	for _, d := range m.data[collection] {
		if matches(d, filter) {
			out = append(out, store.Normalize(d))
		}
	}
	return out, nil
}

func (m *memoryStore) FindOne(_ context.Context, collection string, filter bson.M) (bson.M, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.data[collection] {
		if matches(d, filter) {
			return store.Normalize(d), nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memoryStore) InsertOne(_ context.Context, collection string, doc bson.M) (*models.InsertResult, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	d := copyDoc(doc)
	if _, ok := d["_id"]; !ok {
		d["_id"] = primitive.NewObjectID()
	}
	m.data[collection] = append(m.data[collection], d)
	var id interface{} = d["_id"]
	if oid, ok := id.(primitive.ObjectID); ok {
		id = oid.Hex()
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (m *memoryStore) UpdateOne(_ context.Context, collection string, filter, set bson.M, upsert bool) (*models.UpdateResult, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.data[collection] {
		if !matches(d, filter) {
			continue
		}
		res := &models.UpdateResult{Acknowledged: true, MatchedCount: 1}
		for k, v := range set {
			if !reflect.DeepEqual(d[k], v) {
				res.ModifiedCount = 1
			}
			d[k] = v
		}
		return res, nil
	}
	if !upsert {
		return &models.UpdateResult{Acknowledged: true}, nil
	}

	id := primitive.NewObjectID()
	d := copyDoc(filter)
	for k, v := range set {
		d[k] = v
	}
	d["_id"] = id
	m.data[collection] = append(m.data[collection], d)
	return &models.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: id.Hex()}, nil
}

func (m *memoryStore) DeleteOne(_ context.Context, collection string, filter bson.M) (*models.DeleteResult, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	docs := m.data[collection]
	for i, d := range docs {
		if matches(d, filter) {
			m.data[collection] = append(docs[:i], docs[i+1:]...)
			return &models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &models.DeleteResult{Acknowledged: true}, nil
}

func matches(doc, filter bson.M) bool {
	for k, want := range filter {
		if !reflect.DeepEqual(doc[k], want) {
			return false
		}
	}
	return true
}

func copyDoc(doc bson.M) bson.M {
	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}

// mockGateway records the last intent request.
type mockGateway struct {
	CreateFunc func(ctx context.Context, amount int64, currency string) (string, error)

	Calls        int
	LastAmount   int64
	LastCurrency string
}

func (g *mockGateway) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error) {
	g.Calls++
	g.LastAmount = amount
	g.LastCurrency = currency
	if g.CreateFunc != nil {
		return g.CreateFunc(ctx, amount, currency)
	}
	return "pi_test_secret", nil
}
