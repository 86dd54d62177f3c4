package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/qrmenupro/qrmenu-golang/internal/models"
)

// CategoryStore performs CRUD against the 'categories' collection.
type CategoryStore struct {
	col *mongo.Collection
}

func NewCategoryStore(db *mongo.Database) *CategoryStore {
	return &CategoryStore{col: db.Collection("categories")}
}

// List returns categories sorted ascending by sort_order, optionally
// restricted to active ones.
func (s *CategoryStore) List(ctx context.Context, activeOnly bool) ([]models.Category, error) {
	filter := bson.M{}
	if activeOnly {
		filter["is_active"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}})
	cur, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	// Initialize as an empty slice so it renders as [] in JSON instead of null.
	categories := []models.Category{}
	if err := cur.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryStore) GetByID(ctx context.Context, id string) (*models.Category, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var category models.Category
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&category)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoDocument
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Insert assigns a fresh id to the category, persists it and returns the
// stored entity.
func (s *CategoryStore) Insert(ctx context.Context, category models.Category) (*models.Category, error) {
	category.ID = primitive.NewObjectID()
	if _, err := s.col.InsertOne(ctx, category); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateByID applies the given field set to the document with the given
// id. Fields not present in the set are left untouched.
func (s *CategoryStore) UpdateByID(ctx context.Context, id string, fields bson.M) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := s.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNoDocument
	}
	return nil
}

func (s *CategoryStore) DeleteByID(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNoDocument
	}
	return nil
}
