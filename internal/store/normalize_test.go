package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizeConvertsDriverTypes(t *testing.T) {
	id := primitive.NewObjectID()
	when := time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

	doc := bson.M{
		"_id":   id,
		"name":  "Dr. Karim",
		"image": primitive.Binary{Data: []byte("png")},
		"when":  primitive.NewDateTimeFromTime(when),
		"payment": primitive.D{
			{Key: "amount", Value: int32(5000)},
			{Key: "last4", Value: "4242"},
		},
		"slots": primitive.A{"8:00 AM", primitive.D{{Key: "ref", Value: id}}},
	}

	got := Normalize(doc)

	assert.Equal(t, id.Hex(), got["_id"])
	assert.Equal(t, "Dr. Karim", got["name"])
	assert.Equal(t, []byte("png"), got["image"])
	assert.Equal(t, when, got["when"])
	assert.Equal(t, bson.M{"amount": int32(5000), "last4": "4242"}, got["payment"])

	slots, ok := got["slots"].([]interface{})
	require.True(t, ok)
	assert.Equal(t, "8:00 AM", slots[0])
	assert.Equal(t, bson.M{"ref": id.Hex()}, slots[1])
}

func TestNormalizeJSONShape(t *testing.T) {
	id := primitive.NewObjectID()
	raw, err := json.Marshal(Normalize(bson.M{
		"_id":   id,
		"image": primitive.Binary{Data: []byte{0xde, 0xad}},
	}))
	require.NoError(t, err)

	assert.JSONEq(t, `{"_id":"`+id.Hex()+`","image":"3q0="}`, string(raw))
}

func TestNormalizeNil(t *testing.T) {
	assert.Nil(t, Normalize(nil))
}

func TestNilDatabaseIsNotConnected(t *testing.T) {
	s := NewMongoStore(nil)

	_, err := s.Find(context.Background(), Services, nil)
	assert.ErrorIs(t, err, ErrNotConnected)
	_, err = s.FindOne(context.Background(), Users, bson.M{"email": "a@b.com"})
	assert.ErrorIs(t, err, ErrNotConnected)
	_, err = s.InsertOne(context.Background(), Reviews, bson.M{})
	assert.ErrorIs(t, err, ErrNotConnected)
	_, err = s.UpdateOne(context.Background(), Users, bson.M{}, bson.M{}, true)
	assert.ErrorIs(t, err, ErrNotConnected)
	_, err = s.DeleteOne(context.Background(), Doctors, bson.M{})
	assert.ErrorIs(t, err, ErrNotConnected)
}
