package roomRepo

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

// MongoRoomRepo implements RoomRepository using MongoDB. Room types live in
// the room_types collection, physical units in rooms.
type MongoRoomRepo struct {
	types *mongo.Collection
	units *mongo.Collection
}

// NewMongoRoomRepo creates a new instance of RoomRepository using MongoDB.
func NewMongoRoomRepo() RoomRepository {
	repo := &MongoRoomRepo{
		types: database.Collection("room_types"),
		units: database.Collection("rooms"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create room indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoRoomRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	_, err := r.types.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "capacidad", Value: 1}, {Key: "permiteMascotas", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create room_types indexes: %w", err)
	}

	_, err = r.units.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "numero", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "tipo", Value: 1}, {Key: "estado", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create rooms indexes: %w", err)
	}
	return nil
}

// GetAllTypes retrieves every room type in the catalog.
func (r *MongoRoomRepo) GetAllTypes() ([]models.RoomType, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.types.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room types: %w", err)
	}
	defer cursor.Close(ctx)

	var types []models.RoomType
	if err := cursor.All(ctx, &types); err != nil {
		return nil, fmt.Errorf("failed to decode room types: %w", err)
	}
	return types, nil
}

// GetTypeByID retrieves a room type by id.
func (r *MongoRoomRepo) GetTypeByID(id string) (*models.RoomType, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var t models.RoomType
	err := r.types.FindOne(ctx, bson.M{"id": id}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room type %q: %w", id, err)
	}
	return &t, nil
}

// GetAllocatableUnits retrieves units that count toward availability.
func (r *MongoRoomRepo) GetAllocatableUnits() ([]models.RoomUnit, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"estado": bson.M{"$in": []models.RoomUnitStatus{models.UnitAvailable, models.UnitOccupied}}}
	cursor, err := r.units.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room units: %w", err)
	}
	defer cursor.Close(ctx)

	var units []models.RoomUnit
	if err := cursor.All(ctx, &units); err != nil {
		return nil, fmt.Errorf("failed to decode room units: %w", err)
	}
	return units, nil
}

// GetUnitsByIDs retrieves the physical units with the given ids.
func (r *MongoRoomRepo) GetUnitsByIDs(ids []string) ([]models.RoomUnit, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.units.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room units by id: %w", err)
	}
	defer cursor.Close(ctx)

	var units []models.RoomUnit
	if err := cursor.All(ctx, &units); err != nil {
		return nil, fmt.Errorf("failed to decode room units: %w", err)
	}
	return units, nil
}

// MarkUnitsOccupied flips the given units to the occupied status.
func (r *MongoRoomRepo) MarkUnitsOccupied(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": bson.M{"$in": ids}}
	update := bson.M{"$set": bson.M{"estado": models.UnitOccupied}}
	if _, err := r.units.UpdateMany(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to mark units occupied: %w", err)
	}
	return nil
}

// ReplaceCatalog drops both collections and inserts the given fixtures.
func (r *MongoRoomRepo) ReplaceCatalog(types []models.RoomType, units []models.RoomUnit) error {
	ctx, cancel := newContext(15 * time.Second)
	defer cancel()

	if _, err := r.types.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear room types: %w", err)
	}
	if _, err := r.units.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear room units: %w", err)
	}

	typeDocs := make([]interface{}, 0, len(types))
	for i := range types {
		typeDocs = append(typeDocs, types[i])
	}
	if _, err := r.types.InsertMany(ctx, typeDocs); err != nil {
		return fmt.Errorf("failed to insert room types: %w", err)
	}

	unitDocs := make([]interface{}, 0, len(units))
	for i := range units {
		unitDocs = append(unitDocs, units[i])
	}
	if _, err := r.units.InsertMany(ctx, unitDocs); err != nil {
		return fmt.Errorf("failed to insert room units: %w", err)
	}
	return nil
}
