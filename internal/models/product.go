package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Labels a product may carry. Anything else is rejected by the
// label lookup endpoint.
var ValidLabels = []string{"hot", "trendy", "new arrival"}

// IsValidLabel reports whether label is one of the fixed label values.
func IsValidLabel(label string) bool {
	for _, l := range ValidLabels {
		if l == label {
			return true
		}
	}
	return false
}

// Product is a catalog entry.
type Product struct {
	ID          primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	Title       string              `json:"title" bson:"title" binding:"required"`
	Description string              `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64             `json:"price" bson:"price" binding:"min=0"`
	Label       string              `json:"label,omitempty" bson:"label,omitempty"`
	CategoryID  *primitive.ObjectID `json:"categoryID,omitempty" bson:"categoryID,omitempty"`
	OrderCount  int64               `json:"orderCount" bson:"orderCount"`
	CreatedAt   time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt" bson:"updatedAt"`

	// Category is populated by the query engine on joined reads, never
	// stored on the product document.
	Category *Category `json:"category,omitempty" bson:"-"`
}

// ProductUpdate carries the updatable subset of Product fields.
// Nil pointers mean "leave unchanged".
type ProductUpdate struct {
	Title       *string             `json:"title,omitempty"`
	Description *string             `json:"description,omitempty"`
	Price       *float64            `json:"price,omitempty" binding:"omitempty,min=0"`
	Label       *string             `json:"label,omitempty"`
	CategoryID  *primitive.ObjectID `json:"categoryID,omitempty"`
	OrderCount  *int64              `json:"orderCount,omitempty" binding:"omitempty,min=0"`
}
