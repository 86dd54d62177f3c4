package menu

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/qrmenupro/qrmenu-golang/internal/models"
	"github.com/qrmenupro/qrmenu-golang/internal/store"
)

// CategoryStore is what the category service needs from persistence.
// *store.CategoryStore satisfies it.
type CategoryStore interface {
	List(ctx context.Context, activeOnly bool) ([]models.Category, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	Insert(ctx context.Context, category models.Category) (*models.Category, error)
	UpdateByID(ctx context.Context, id string, fields bson.M) error
	DeleteByID(ctx context.Context, id string) error
}

// ProductCounter is the one thing category deletion needs to know about
// products. *store.ProductStore satisfies it.
type ProductCounter interface {
	CountByCategory(ctx context.Context, categoryID string) (int64, error)
}

// CategoryService owns the Category lifecycle and the rule that a
// category cannot be deleted while products still reference it.
type CategoryService struct {
	store    CategoryStore
	products ProductCounter
}

func NewCategoryService(store CategoryStore, products ProductCounter) *CategoryService {
	return &CategoryService{store: store, products: products}
}

func (s *CategoryService) List(ctx context.Context, activeOnly bool) ([]models.Category, error) {
	return s.store.List(ctx, activeOnly)
}

func (s *CategoryService) Get(ctx context.Context, id string) (*models.Category, error) {
	category, err := s.store.GetByID(ctx, id)
	if errors.Is(err, store.ErrNoDocument) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return category, nil
}

// Create assigns the creation timestamp, persists the category and
// returns the stored entity. is_active defaults to true when omitted.
func (s *CategoryService) Create(ctx context.Context, in models.CreateCategoryInput) (*models.Category, error) {
	category := models.Category{
		NameTR:    in.NameTR,
		NameEN:    in.NameEN,
		SortOrder: in.SortOrder,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	if in.IsActive != nil {
		category.IsActive = *in.IsActive
	}
	return s.store.Insert(ctx, category)
}

// Update applies only the fields the client supplied and returns the
// updated entity. An empty field set is rejected outright.
func (s *CategoryService) Update(ctx context.Context, id string, in models.UpdateCategoryInput) (*models.Category, error) {
	fields := in.Fields()
	if len(fields) == 0 {
		return nil, ErrNoFields
	}

	if err := s.store.UpdateByID(ctx, id, fields); err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete removes a category, but only if no product references it.
//
// The count and the delete are two separate store operations. A product
// created against this category in between would be orphaned. Known
// limitation; with a single admin doing all writes the window is not
// reachable in practice.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	count, err := s.products.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryHasProducts
	}

	if err := s.store.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
