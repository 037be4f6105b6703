package convRepo

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

// MongoConversationRepo implements ConversationRepository using MongoDB.
type MongoConversationRepo struct {
	coll *mongo.Collection
}

// NewMongoConversationRepo creates a new instance of ConversationRepository
// using MongoDB.
func NewMongoConversationRepo() ConversationRepository {
	repo := &MongoConversationRepo{coll: database.Collection("conversations")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create conversation indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoConversationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "idSesionUsuario", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "estado", Value: 1}, {Key: "fechaInicio", Value: 1}, {Key: "fechaFin", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetBySessionID retrieves the conversation for a session.
func (r *MongoConversationRepo) GetBySessionID(sessionID string) (*models.Conversation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var conv models.Conversation
	err := r.coll.FindOne(ctx, bson.M{"idSesionUsuario": sessionID}).Decode(&conv)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch conversation for session %s: %w", sessionID, err)
	}
	return &conv, nil
}

// Create inserts a new conversation document.
func (r *MongoConversationRepo) Create(conv *models.Conversation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	conv.CreatedAt = now
	conv.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, conv); err != nil {
		return fmt.Errorf("failed to create conversation for session %s: %w", conv.SessionID, err)
	}
	return nil
}

// Update replaces the conversation document for its session.
func (r *MongoConversationRepo) Update(conv *models.Conversation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	conv.UpdatedAt = time.Now()
	filter := bson.M{"idSesionUsuario": conv.SessionID}
	result, err := r.coll.ReplaceOne(ctx, filter, conv)
	if err != nil {
		return fmt.Errorf("failed to update conversation for session %s: %w", conv.SessionID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("conversation for session %s not found", conv.SessionID)
	}
	return nil
}

// DeleteBySessionID removes the conversation for a session.
func (r *MongoConversationRepo) DeleteBySessionID(sessionID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"idSesionUsuario": sessionID}); err != nil {
		return fmt.Errorf("failed to delete conversation for session %s: %w", sessionID, err)
	}
	return nil
}

// GetConfirmedOverlapping retrieves confirmed reservations overlapping
// [start, end). The filter encodes the half-open overlap rule directly:
// a reservation conflicts iff it starts before our end and ends after our
// start.
func (r *MongoConversationRepo) GetConfirmedOverlapping(start, end time.Time) ([]models.Conversation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"estado":      models.StatusConfirmed,
		"fechaInicio": bson.M{"$lt": end},
		"fechaFin":    bson.M{"$gt": start},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch overlapping reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var convs []models.Conversation
	if err := cursor.All(ctx, &convs); err != nil {
		return nil, fmt.Errorf("failed to decode overlapping reservations: %w", err)
	}
	return convs, nil
}

// DeleteIfStalePending removes the session's conversation when it is still
// pending and untouched since the cutoff.
func (r *MongoConversationRepo) DeleteIfStalePending(sessionID string, cutoff time.Time) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"idSesionUsuario": sessionID,
		"estado":          models.StatusPending,
		"actualizadoEn":   bson.M{"$lt": cutoff},
	}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to expire conversation for session %s: %w", sessionID, err)
	}
	return result.DeletedCount > 0, nil
}
