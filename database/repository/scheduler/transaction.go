package schedulerRepo

import (
	"context"
	"fmt"
	"time"

	"glowbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

// slotLockID keys the lock document shared by every admission on an artist's day.
func slotLockID(artistID, date string) string {
	return artistID + "|" + date
}

// ReserveSlot runs the capacity check and the insert in one transaction.
// Bumping the slot lock first makes concurrent admissions for the same artist
// and date write-conflict, so one of them is retried against the committed
// state instead of both reading the same snapshot.
func (repo *MongoSchedulerRepo) ReserveSlot(ctx context.Context, booking *models.Booking, check SlotCheck) error {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	sess, err := repo.client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnOpts := options.Transaction().SetWriteConcern(writeconcern.Majority())

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		lockID := slotLockID(booking.ArtistID, booking.Date)
		lockUpdate := bson.M{
			"$inc": bson.M{"version": 1},
			"$set": bson.M{"updated_at": time.Now()},
		}
		if _, err := repo.lockColl.UpdateOne(sc, bson.M{"_id": lockID}, lockUpdate, options.Update().SetUpsert(true)); err != nil {
			return nil, fmt.Errorf("lock slot %s: %w", lockID, err)
		}

		existing, err := repo.find(sc, bson.M{
			"artist_id": booking.ArtistID,
			"date":      booking.Date,
			"status":    statusFilter(models.ActiveStatuses),
		})
		if err != nil {
			return nil, fmt.Errorf("load active bookings: %w", err)
		}

		if err := check(existing); err != nil {
			return nil, err
		}

		if _, err := repo.bookingColl.InsertOne(sc, booking); err != nil {
			return nil, fmt.Errorf("insert booking failed: %w", err)
		}
		return nil, nil
	}, txnOpts)

	return err
}
