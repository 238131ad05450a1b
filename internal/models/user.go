package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`

	Email          string `bson:"email" json:"email"`
	HashedPassword string `bson:"hashed_password" json:"-"` // Don't return password hash in JSON
}
