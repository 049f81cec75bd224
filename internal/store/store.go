// Package store is the document-store access layer shared by every handler.
package store

import (
	"context"
	"errors"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// Collection names.
const (
	Services              = "services"
	AvailableAppointments = "availableAppointments"
	Appointments          = "appointments"
	Users                 = "users"
	Reviews               = "reviews"
	Doctors               = "doctors"
)

var (
	ErrNotFound     = errors.New("document not found")
	ErrNotConnected = errors.New("database is not connected")
)

// Store performs single-document and scan operations on named collections.
// Documents are schema-less; filters are exact-equality bson documents.
type Store interface {
	Find(ctx context.Context, collection string, filter bson.M) ([]bson.M, error)
	FindOne(ctx context.Context, collection string, filter bson.M) (bson.M, error)
	InsertOne(ctx context.Context, collection string, doc bson.M) (*models.InsertResult, error)
	// UpdateOne applies {$set: set} to the first match, inserting when
	// upsert is true and nothing matches.
	UpdateOne(ctx context.Context, collection string, filter, set bson.M, upsert bool) (*models.UpdateResult, error)
	DeleteOne(ctx context.Context, collection string, filter bson.M) (*models.DeleteResult, error)
}
