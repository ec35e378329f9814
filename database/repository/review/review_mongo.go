package reviewRepo

import (
	"context"
	"fmt"
	"time"

	"glowbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo returns a new ReviewRepository instance using MongoDB.
func NewMongoReviewRepo(db *mongo.Database) ReviewRepository {
	return &mongoReviewRepo{
		coll: db.Collection("reviews"),
	}
}

func (r *mongoReviewRepo) GetByAppointmentIDs(ctx context.Context, appointmentIDs []string) (map[string][]models.Review, error) {
	grouped := make(map[string][]models.Review, len(appointmentIDs))
	if len(appointmentIDs) == 0 {
		return grouped, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"appointment_id": bson.M{"$in": appointmentIDs}})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var review models.Review
		if err := cursor.Decode(&review); err != nil {
			return nil, fmt.Errorf("failed to decode review: %w", err)
		}
		grouped[review.AppointmentID] = append(grouped[review.AppointmentID], review)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return grouped, nil
}
