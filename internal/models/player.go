package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Player represents a registered ladder participant.
// PasswordHash is never serialized to clients.
type Player struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Age          int                `bson:"age" json:"age"`
	Sex          string             `bson:"sex" json:"sex"`
	Points       int                `bson:"points" json:"points"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
