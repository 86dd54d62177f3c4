package menu

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/qrmenupro/qrmenu-golang/internal/models"
	"github.com/qrmenupro/qrmenu-golang/internal/store"
)

// ProductStore is what the product service needs from persistence.
// *store.ProductStore satisfies it.
type ProductStore interface {
	List(ctx context.Context, categoryID string, activeOnly bool) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Insert(ctx context.Context, product models.Product) (*models.Product, error)
	UpdateByID(ctx context.Context, id string, fields bson.M) error
	DeleteByID(ctx context.Context, id string) error
}

// CategoryGetter resolves category ids so product writes can validate
// their reference. *store.CategoryStore satisfies it.
type CategoryGetter interface {
	GetByID(ctx context.Context, id string) (*models.Category, error)
}

// ProductService owns the Product lifecycle and the rule that every
// product must point at an existing category.
type ProductService struct {
	store      ProductStore
	categories CategoryGetter
}

func NewProductService(store ProductStore, categories CategoryGetter) *ProductService {
	return &ProductService{store: store, categories: categories}
}

func (s *ProductService) List(ctx context.Context, categoryID string, activeOnly bool) ([]models.Product, error) {
	return s.store.List(ctx, categoryID, activeOnly)
}

func (s *ProductService) Get(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.store.GetByID(ctx, id)
	if errors.Is(err, store.ErrNoDocument) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return product, nil
}

// Create validates the category reference first, so a failed validation
// persists nothing, then stores the product.
func (s *ProductService) Create(ctx context.Context, in models.CreateProductInput) (*models.Product, error) {
	if err := s.checkCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	product := models.Product{
		CategoryID:    in.CategoryID,
		NameTR:        in.NameTR,
		NameEN:        in.NameEN,
		DescriptionTR: in.DescriptionTR,
		DescriptionEN: in.DescriptionEN,
		Price:         in.Price,
		ImageURL:      in.ImageURL,
		SortOrder:     in.SortOrder,
		IsActive:      true,
		CreatedAt:     time.Now().UTC(),
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	return s.store.Insert(ctx, product)
}

// Update applies only the supplied fields. If category_id is among them
// it is re-validated before anything is written, so the product is left
// unchanged when the new category does not exist.
func (s *ProductService) Update(ctx context.Context, id string, in models.UpdateProductInput) (*models.Product, error) {
	fields := in.Fields()
	if len(fields) == 0 {
		return nil, ErrNoFields
	}

	if categoryID, ok := fields["category_id"].(string); ok {
		if err := s.checkCategory(ctx, categoryID); err != nil {
			return nil, err
		}
	}

	if err := s.store.UpdateByID(ctx, id, fields); err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete is unconditional; nothing references a product.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *ProductService) checkCategory(ctx context.Context, categoryID string) error {
	_, err := s.categories.GetByID(ctx, categoryID)
	if errors.Is(err, store.ErrNoDocument) {
		return ErrCategoryNotFound
	}
	return err
}
