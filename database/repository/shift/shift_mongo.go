// File: database/repository/shift/shift_mongo.go
package shiftRepo

import (
	"context"
	"fmt"
	"time"

	"oncall/database"
	"oncall/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoShiftRepo implements ShiftRepository using MongoDB.
type MongoShiftRepo struct {
	coll *mongo.Collection
}

// NewMongoShiftRepo creates a new instance of ShiftRepository using MongoDB.
func NewMongoShiftRepo() ShiftRepository {
	coll := database.Collection("shifts")
	repo := &MongoShiftRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoShiftRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "scheduleId", Value: 1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a shift by its unique ID.
func (r *MongoShiftRepo) GetByID(id string) (*models.Shift, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var shift models.Shift
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&shift); err != nil {
		return nil, fmt.Errorf("failed to fetch shift with id %s: %w", id, err)
	}
	return &shift, nil
}

func (r *MongoShiftRepo) findByFilter(filter bson.M) ([]models.Shift, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	// Sort by date first, then start time, so feeds and listings come out in
	// chronological order.
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "startAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve shifts: %w", err)
	}
	defer cursor.Close(ctx)

	var shifts []models.Shift
	for cursor.Next(ctx) {
		var s models.Shift
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode shift: %w", err)
		}
		shifts = append(shifts, s)
	}
	return shifts, nil
}

// GetByScheduleID retrieves all shifts in a schedule.
func (r *MongoShiftRepo) GetByScheduleID(scheduleID string) ([]models.Shift, error) {
	return r.findByFilter(bson.M{"scheduleId": scheduleID})
}

// GetByScheduleIDs retrieves all shifts across the given schedules.
func (r *MongoShiftRepo) GetByScheduleIDs(scheduleIDs []string) ([]models.Shift, error) {
	if len(scheduleIDs) == 0 {
		return nil, nil
	}
	return r.findByFilter(bson.M{"scheduleId": bson.M{"$in": scheduleIDs}})
}

// Create inserts a new shift document.
func (r *MongoShiftRepo) Create(shift *models.Shift) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	shift.CreatedAt = now
	shift.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, shift); err != nil {
		return fmt.Errorf("failed to create shift: %w", err)
	}
	return nil
}

// CreateMany inserts a batch of shift documents.
func (r *MongoShiftRepo) CreateMany(shifts []models.Shift) error {
	if len(shifts) == 0 {
		return nil
	}
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	now := time.Now()
	docs := make([]interface{}, 0, len(shifts))
	for i := range shifts {
		shifts[i].CreatedAt = now
		shifts[i].UpdatedAt = now
		docs = append(docs, shifts[i])
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to create shifts: %w", err)
	}
	return nil
}

// Update modifies an existing shift document.
func (r *MongoShiftRepo) Update(shift *models.Shift) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	shift.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": shift.ID}, bson.M{"$set": shift})
	if err != nil {
		return fmt.Errorf("failed to update shift with id %s: %w", shift.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("shift with id %s not found", shift.ID)
	}
	return nil
}

// Delete removes a shift document by its ID.
func (r *MongoShiftRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete shift with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("shift with id %s not found", id)
	}
	return nil
}

// DeleteByScheduleID removes every shift in a schedule.
func (r *MongoShiftRepo) DeleteByScheduleID(scheduleID string) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"scheduleId": scheduleID}); err != nil {
		return fmt.Errorf("failed to delete shifts for schedule %s: %w", scheduleID, err)
	}
	return nil
}
