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

// ProductStore performs CRUD against the 'products' collection.
type ProductStore struct {
	col *mongo.Collection
}

func NewProductStore(db *mongo.Database) *ProductStore {
	return &ProductStore{col: db.Collection("products")}
}

// List returns products sorted ascending by sort_order. categoryID and
// activeOnly are both optional filters; an empty categoryID means all
// categories.
func (s *ProductStore) List(ctx context.Context, categoryID string, activeOnly bool) ([]models.Product, error) {
	filter := bson.M{}
	if categoryID != "" {
		filter["category_id"] = categoryID
	}
	if activeOnly {
		filter["is_active"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}})
	cur, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	products := []models.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductStore) GetByID(ctx context.Context, id string) (*models.Product, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var product models.Product
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoDocument
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductStore) Insert(ctx context.Context, product models.Product) (*models.Product, error) {
	product.ID = primitive.NewObjectID()
	if _, err := s.col.InsertOne(ctx, product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductStore) UpdateByID(ctx context.Context, id string, fields bson.M) error {
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

func (s *ProductStore) DeleteByID(ctx context.Context, id string) error {
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

// CountByCategory reports how many products reference the given category
// id. Category deletion uses it to enforce the no-delete-while-referenced
// rule.
func (s *ProductStore) CountByCategory(ctx context.Context, categoryID string) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{"category_id": categoryID})
}
