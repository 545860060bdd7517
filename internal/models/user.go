package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User holds the account fields this service reads. Favorites is an
// ordered list of product ids; insertion order is the pagination order
// and duplicates are rejected before they reach the store.
type User struct {
	ID        primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Name      string               `json:"name" bson:"name"`
	Email     string               `json:"email" bson:"email"`
	Favorites []primitive.ObjectID `json:"favorites" bson:"favorites"`
	CreatedAt time.Time            `json:"createdAt" bson:"createdAt"`
}
