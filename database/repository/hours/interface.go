// File: database/repository/hours/interface.go
package hoursRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"vitrina/database"
	"vitrina/models"
)

// HoursRepository persists one weekly-hours document per business.
type HoursRepository interface {
	GetByBusinessID(ctx context.Context, businessID string) (*models.BusinessHoursDocument, error)
	Upsert(ctx context.Context, doc *models.BusinessHoursDocument) error
	DeleteByBusinessID(ctx context.Context, businessID string) error
	EnsureIndexes(ctx context.Context) error
}

type mongoHoursRepo struct {
	coll *mongo.Collection
}

// NewMongoHoursRepo constructs the MongoDB-backed HoursRepository.
func NewMongoHoursRepo() HoursRepository {
	db := database.MongoClient.Database("vitrina")
	return &mongoHoursRepo{
		coll: db.Collection("business_hours"),
	}
}
