package stepRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"posada/database"
	"posada/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStepRepo implements StepRepository using MongoDB.
type MongoStepRepo struct {
	coll *mongo.Collection
}

// NewMongoStepRepo creates a new instance of StepRepository using MongoDB.
func NewMongoStepRepo() StepRepository {
	repo := &MongoStepRepo{coll: database.Collection("steps")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create step indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoStepRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a step by its catalog id.
func (r *MongoStepRepo) GetByID(id string) (*models.Step, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var step models.Step
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&step)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch step %q: %w", id, err)
	}
	return &step, nil
}

// GetAll retrieves the whole catalog.
func (r *MongoStepRepo) GetAll() ([]models.Step, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch steps: %w", err)
	}
	defer cursor.Close(ctx)

	var steps []models.Step
	if err := cursor.All(ctx, &steps); err != nil {
		return nil, fmt.Errorf("failed to decode steps: %w", err)
	}
	return steps, nil
}

// ReplaceAll drops the catalog and inserts the given steps.
func (r *MongoStepRepo) ReplaceAll(steps []models.Step) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear step catalog: %w", err)
	}
	docs := make([]interface{}, 0, len(steps))
	for i := range steps {
		docs = append(docs, steps[i])
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert step catalog: %w", err)
	}
	return nil
}
