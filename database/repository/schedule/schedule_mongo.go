// File: database/repository/schedule/schedule_mongo.go
package scheduleRepo

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

// MongoScheduleRepo implements ScheduleRepository using MongoDB.
type MongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo creates a new instance of ScheduleRepository using MongoDB.
func NewMongoScheduleRepo() ScheduleRepository {
	coll := database.Collection("schedules")
	repo := &MongoScheduleRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoScheduleRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a schedule by its unique ID.
func (r *MongoScheduleRepo) GetByID(id string) (*models.Schedule, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var sched models.Schedule
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&sched); err != nil {
		return nil, fmt.Errorf("failed to fetch schedule with id %s: %w", id, err)
	}
	return &sched, nil
}

func (r *MongoScheduleRepo) findByFilter(filter bson.M) ([]models.Schedule, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve schedules: %w", err)
	}
	defer cursor.Close(ctx)

	var schedules []models.Schedule
	for cursor.Next(ctx) {
		var s models.Schedule
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode schedule: %w", err)
		}
		schedules = append(schedules, s)
	}
	return schedules, nil
}

// GetByUserID retrieves all schedules owned by a user.
func (r *MongoScheduleRepo) GetByUserID(userID string) ([]models.Schedule, error) {
	return r.findByFilter(bson.M{"userId": userID})
}

// GetFinalizedByUserID retrieves only finalized schedules for a user.
func (r *MongoScheduleRepo) GetFinalizedByUserID(userID string) ([]models.Schedule, error) {
	return r.findByFilter(bson.M{"userId": userID, "status": models.ScheduleStatusFinalized})
}

// Create inserts a new schedule document.
func (r *MongoScheduleRepo) Create(schedule *models.Schedule) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	schedule.CreatedAt = now
	schedule.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, schedule); err != nil {
		return fmt.Errorf("failed to create schedule: %w", err)
	}
	return nil
}

// Update modifies an existing schedule document.
func (r *MongoScheduleRepo) Update(schedule *models.Schedule) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	schedule.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": schedule.ID}, bson.M{"$set": schedule})
	if err != nil {
		return fmt.Errorf("failed to update schedule with id %s: %w", schedule.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("schedule with id %s not found", schedule.ID)
	}
	return nil
}

// Delete removes a schedule document by its ID.
func (r *MongoScheduleRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete schedule with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("schedule with id %s not found", id)
	}
	return nil
}
