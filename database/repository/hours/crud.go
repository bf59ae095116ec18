// File: database/repository/hours/crud.go
package hoursRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vitrina/models"
)

func (r *mongoHoursRepo) GetByBusinessID(ctx context.Context, businessID string) (*models.BusinessHoursDocument, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc models.BusinessHoursDocument
	err := r.coll.FindOne(ctx, bson.M{"businessId": businessID}).Decode(&doc)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Upsert writes the full week document for a business, bumping its version.
func (r *mongoHoursRepo) Upsert(ctx context.Context, doc *models.BusinessHoursDocument) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"businessId": doc.BusinessID}
	update := bson.M{
		"$set": bson.M{
			"days":      doc.Days,
			"updatedAt": time.Now().UTC(),
		},
		"$inc": bson.M{"version": 1},
	}

	_, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert business hours: %w", err)
	}
	return nil
}

func (r *mongoHoursRepo) DeleteByBusinessID(ctx context.Context, businessID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"businessId": businessID}); err != nil {
		return fmt.Errorf("failed to delete business hours: %w", err)
	}
	return nil
}
