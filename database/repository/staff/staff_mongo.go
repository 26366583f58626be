package staffRepo

import (
	"context"
	"fmt"
	"time"

	"glowbook/database"
	"glowbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoStaffRepo implements StaffRepository using MongoDB.
type MongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo constructs a new instance of MongoStaffRepo.
func NewMongoStaffRepo() StaffRepository {
	repo := &MongoStaffRepo{coll: database.DB().Collection("staff")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create staff indexes: %v\n", err)
	}
	return repo
}

// GetByID retrieves a staff document by ID.
func (repo *MongoStaffRepo) GetByID(id string) (*models.Staff, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var staff models.Staff
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&staff); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching staff with id %s: %w", id, err)
	}
	return &staff, nil
}

// GetActiveByVendor retrieves all active staff for a vendor.
func (repo *MongoStaffRepo) GetActiveByVendor(vendorID string) ([]models.Staff, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"vendorId": vendorID, "isActive": true}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching staff for vendor %s: %w", vendorID, err)
	}
	defer cursor.Close(ctx)

	var staff []models.Staff
	if err := cursor.All(ctx, &staff); err != nil {
		return nil, fmt.Errorf("error decoding staff for vendor %s: %w", vendorID, err)
	}
	return staff, nil
}

// Create inserts a new staff document.
func (repo *MongoStaffRepo) Create(staff *models.Staff) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, staff); err != nil {
		return fmt.Errorf("error creating staff: %w", err)
	}
	return nil
}

// UpdateSchedule replaces the embedded weekly schedule.
func (repo *MongoStaffRepo) UpdateSchedule(id string, schedule models.WeeklySchedule) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"schedule": schedule, "updatedAt": time.Now()}}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating schedule for staff %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("staff with id %s not found", id)
	}
	return nil
}

// SetActive toggles the active flag.
func (repo *MongoStaffRepo) SetActive(id string, active bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"isActive": active, "updatedAt": time.Now()}}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error toggling staff %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("staff with id %s not found", id)
	}
	return nil
}
