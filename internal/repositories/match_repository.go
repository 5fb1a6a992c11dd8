package repositories

import (
	"context"
	"errors"

	"github.com/bernardoaires/ping-pong/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrMatchNotFound = errors.New("match not found")

const matchCollection = "Match"

// MatchRepository persists Match documents.
type MatchRepository struct {
	col *mongo.Collection
}

func NewMatchRepository(db *mongo.Database) *MatchRepository {
	return &MatchRepository{col: db.Collection(matchCollection)}
}

// Insert stores a new match and fills in the store-assigned id.
func (r *MatchRepository) Insert(ctx context.Context, match *models.Match) error {
	res, err := r.col.InsertOne(ctx, match)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		match.ID = oid
	}
	return nil
}

// MarkPointsApplied records that both point adjustments for the match
// have landed.
func (r *MatchRepository) MarkPointsApplied(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrMatchNotFound
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"pointsApplied": true}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrMatchNotFound
	}
	return nil
}

func (r *MatchRepository) FindByID(ctx context.Context, id string) (*models.Match, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrMatchNotFound
	}
	var match models.Match
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&match)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrMatchNotFound
	}
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// List returns matches newest first.
func (r *MatchRepository) List(ctx context.Context) ([]models.Match, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var matches []models.Match
	if err := cur.All(ctx, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}
