package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Match is the immutable record of one game's outcome between two players.
// PointsApplied is flipped only after both point adjustments have landed, so
// an interrupted recording can be found and resumed by match id.
type Match struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Date          string             `bson:"date" json:"date"`
	WinnerID      string             `bson:"winnerId" json:"winnerId"`
	LoserID       string             `bson:"loserId" json:"loserId"`
	Result        []int              `bson:"result" json:"result"`
	PointsApplied bool               `bson:"pointsApplied" json:"pointsApplied"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
