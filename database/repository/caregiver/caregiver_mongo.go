package caregiverRepo

import (
	"context"
	"fmt"
	"time"

	"nestcare/database"
	"nestcare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCaregiverRepo implements Repository using MongoDB.
type MongoCaregiverRepo struct {
	coll *mongo.Collection
}

// NewMongoCaregiverRepo creates a new caregiver repository backed by the
// "caregivers" collection.
func NewMongoCaregiverRepo() Repository {
	return &MongoCaregiverRepo{coll: database.Collection("caregivers")}
}

func (r *MongoCaregiverRepo) GetByID(ctx context.Context, id string) (*models.Caregiver, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var caregiver models.Caregiver
	filter := bson.M{"$or": bson.A{
		bson.M{"id": id},
		bson.M{"user_id": id},
	}}
	if err := r.coll.FindOne(ctx, filter).Decode(&caregiver); err != nil {
		return nil, fmt.Errorf("failed to fetch caregiver with id %s: %w", id, err)
	}
	return &caregiver, nil
}

// ListFeatured returns the top-rated featured caregivers, best first.
func (r *MongoCaregiverRepo) ListFeatured(ctx context.Context, limit int) ([]models.Caregiver, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}, {Key: "review_count", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := r.coll.Find(ctx, bson.M{"featured": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve featured caregivers: %w", err)
	}
	defer cursor.Close(ctx)

	var caregivers []models.Caregiver
	for cursor.Next(ctx) {
		var c models.Caregiver
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode caregiver: %w", err)
		}
		caregivers = append(caregivers, c)
	}
	return caregivers, cursor.Err()
}

func (r *MongoCaregiverRepo) Upsert(ctx context.Context, caregiver *models.Caregiver) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	caregiver.UpdatedAt = time.Now()
	if caregiver.CreatedAt.IsZero() {
		caregiver.CreatedAt = caregiver.UpdatedAt
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"id": caregiver.ID}, caregiver, opts); err != nil {
		return fmt.Errorf("failed to upsert caregiver %s: %w", caregiver.ID, err)
	}
	return nil
}
