package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category groups products. Lookup by name is case-insensitive.
type Category struct {
	ID   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name string             `json:"name" bson:"name" binding:"required"`
}
