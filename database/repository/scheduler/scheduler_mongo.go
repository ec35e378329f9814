package schedulerRepo

import (
	"context"
	"fmt"
	"time"

	"glowbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSchedulerRepo implements SchedulerRepository using MongoDB.
type MongoSchedulerRepo struct {
	client      *mongo.Client
	bookingColl *mongo.Collection
	lockColl    *mongo.Collection
}

// NewMongoSchedulerRepo constructs a new instance of MongoSchedulerRepo.
func NewMongoSchedulerRepo(db *mongo.Database) SchedulerRepository {
	repo := &MongoSchedulerRepo{
		client:      db.Client(),
		bookingColl: db.Collection("bookings"),
		lockColl:    db.Collection("slot_locks"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create booking indexes: %v\n", err)
	}
	return repo
}

// newContext derives a per-call timeout from the request context.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (repo *MongoSchedulerRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "artist_id", Value: 1}, {Key: "date", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "status", Value: 1}}},
	}
	if _, err := repo.bookingColl.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func statusFilter(statuses []models.BookingStatus) bson.M {
	return bson.M{"$in": statuses}
}

// FindByArtistAndDate retrieves the bookings of an artist on a given date.
func (repo *MongoSchedulerRepo) FindByArtistAndDate(ctx context.Context, artistID, date string, statuses []models.BookingStatus) ([]models.Booking, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"artist_id": artistID,
		"date":      date,
		"status":    statusFilter(statuses),
	}
	bookings, err := repo.find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings for artist %s on %s: %w", artistID, date, err)
	}
	return bookings, nil
}

// FindByCustomer retrieves a customer's bookings.
func (repo *MongoSchedulerRepo) FindByCustomer(ctx context.Context, userID string, statuses []models.BookingStatus) ([]models.Booking, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"user_id": userID,
		"status":  statusFilter(statuses),
	}
	bookings, err := repo.find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings for user %s: %w", userID, err)
	}
	return bookings, nil
}

func (repo *MongoSchedulerRepo) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	cursor, err := repo.bookingColl.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("error decoding booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return bookings, nil
}
