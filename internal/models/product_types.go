package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a single sellable menu item. CategoryID holds the hex id of
// the Category it belongs to; it is a relation only, the category does
// not own the product.
type Product struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CategoryID    string             `json:"category_id" bson:"category_id"`
	NameTR        string             `json:"name_tr" bson:"name_tr"`
	NameEN        string             `json:"name_en" bson:"name_en"`
	DescriptionTR *string            `json:"description_tr,omitempty" bson:"description_tr,omitempty"`
	DescriptionEN *string            `json:"description_en,omitempty" bson:"description_en,omitempty"`
	Price         float64            `json:"price" bson:"price"`
	ImageURL      *string            `json:"image_url,omitempty" bson:"image_url,omitempty"`
	SortOrder     int                `json:"sort_order" bson:"sort_order"`
	IsActive      bool               `json:"is_active" bson:"is_active"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
}

type CreateProductInput struct {
	CategoryID    string  `json:"category_id" binding:"required"`
	NameTR        string  `json:"name_tr" binding:"required"`
	NameEN        string  `json:"name_en" binding:"required"`
	DescriptionTR *string `json:"description_tr"`
	DescriptionEN *string `json:"description_en"`
	Price         float64 `json:"price" binding:"gte=0"`
	ImageURL      *string `json:"image_url"`
	SortOrder     int     `json:"sort_order"`
	IsActive      *bool   `json:"is_active"`
}

// UpdateProductInput is a partial update; only non-nil fields are applied.
type UpdateProductInput struct {
	CategoryID    *string  `json:"category_id"`
	NameTR        *string  `json:"name_tr"`
	NameEN        *string  `json:"name_en"`
	DescriptionTR *string  `json:"description_tr"`
	DescriptionEN *string  `json:"description_en"`
	Price         *float64 `json:"price" binding:"omitempty,gte=0"`
	ImageURL      *string  `json:"image_url"`
	SortOrder     *int     `json:"sort_order"`
	IsActive      *bool    `json:"is_active"`
}

// Fields returns the explicit set of supplied fields by stored name.
func (in UpdateProductInput) Fields() bson.M {
	fields := bson.M{}
	if in.CategoryID != nil {
		fields["category_id"] = *in.CategoryID
	}
	if in.NameTR != nil {
		fields["name_tr"] = *in.NameTR
	}
	if in.NameEN != nil {
		fields["name_en"] = *in.NameEN
	}
	if in.DescriptionTR != nil {
		fields["description_tr"] = *in.DescriptionTR
	}
	if in.DescriptionEN != nil {
		fields["description_en"] = *in.DescriptionEN
	}
	if in.Price != nil {
		fields["price"] = *in.Price
	}
	if in.ImageURL != nil {
		fields["image_url"] = *in.ImageURL
	}
	if in.SortOrder != nil {
		fields["sort_order"] = *in.SortOrder
	}
	if in.IsActive != nil {
		fields["is_active"] = *in.IsActive
	}
	return fields
}
