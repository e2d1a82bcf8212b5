package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"nestcare/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBookingRepo implements Repository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new booking repository backed by the
// "bookings" collection.
func NewMongoBookingRepo() Repository {
	return &MongoBookingRepo{coll: database.Collection("bookings")}
}

// idFilter matches a booking by either its string "id" field or a raw
// "_id"; older documents only carry one of the two.
func idFilter(id string) bson.M {
	return bson.M{"$or": bson.A{
		bson.M{"id": id},
		bson.M{"_id": id},
	}}
}

func (r *MongoBookingRepo) ListRawByUser(ctx context.Context, userID string) ([]map[string]any, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{"$or": bson.A{
		bson.M{"userId": userID},
		bson.M{"user_id": userID},
	}}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var raws []map[string]any
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode booking document: %w", err)
		}
		raws = append(raws, map[string]any(doc))
	}
	return raws, cursor.Err()
}

func (r *MongoBookingRepo) GetRaw(ctx context.Context, id string) (map[string]any, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc bson.M
	if err := r.coll.FindOne(ctx, idFilter(id)).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return map[string]any(doc), nil
}

func (r *MongoBookingRepo) Create(ctx context.Context, doc map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, bson.M(doc)); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *MongoBookingRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	return r.setField(ctx, id, "status", status)
}

func (r *MongoBookingRepo) SetPaymentStatus(ctx context.Context, id string, paymentStatus string) error {
	return r.setField(ctx, id, "paymentStatus", paymentStatus)
}

func (r *MongoBookingRepo) SetPaymentProof(ctx context.Context, id string, proofRef string) error {
	return r.setField(ctx, id, "paymentProof", proofRef)
}

func (r *MongoBookingRepo) setField(ctx context.Context, id, field string, value any) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{field: value, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, idFilter(id), update)
	if err != nil {
		return fmt.Errorf("failed to update booking %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("booking %s not found", id)
	}
	return nil
}
