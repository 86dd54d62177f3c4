package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is a menu section ("İçecekler" / "Drinks").
// The ObjectID serializes to its hex form in JSON, so clients only ever
// see string ids.
type Category struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	NameTR    string             `json:"name_tr" bson:"name_tr"`
	NameEN    string             `json:"name_en" bson:"name_en"`
	SortOrder int                `json:"sort_order" bson:"sort_order"`
	IsActive  bool               `json:"is_active" bson:"is_active"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// CreateCategoryInput is the payload accepted on category creation.
// It is separate from Category so a client can never supply an id or
// creation timestamp of its own.
type CreateCategoryInput struct {
	NameTR    string `json:"name_tr" binding:"required"`
	NameEN    string `json:"name_en" binding:"required"`
	SortOrder int    `json:"sort_order"`
	IsActive  *bool  `json:"is_active"` // pointer so an omitted flag defaults to true
}

// UpdateCategoryInput is a partial update: every field is a pointer and
// only the non-nil ones are applied.
type UpdateCategoryInput struct {
	NameTR    *string `json:"name_tr"`
	NameEN    *string `json:"name_en"`
	SortOrder *int    `json:"sort_order"`
	IsActive  *bool   `json:"is_active"`
}

// Fields returns the explicit set of fields the client supplied,
// keyed by their stored names. An empty map means an empty update.
func (in UpdateCategoryInput) Fields() bson.M {
	fields := bson.M{}
	if in.NameTR != nil {
		fields["name_tr"] = *in.NameTR
	}
	if in.NameEN != nil {
		fields["name_en"] = *in.NameEN
	}
	if in.SortOrder != nil {
		fields["sort_order"] = *in.SortOrder
	}
	if in.IsActive != nil {
		fields["is_active"] = *in.IsActive
	}
	return fields
}
