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

var (
	ErrPlayerNotFound   = errors.New("player not found")
	ErrDuplicateAccount = errors.New("account already registered")
)

const playerCollection = "Player"

// PlayerRepository persists Player documents.
type PlayerRepository struct {
	col *mongo.Collection
}

func NewPlayerRepository(db *mongo.Database) *PlayerRepository {
	return &PlayerRepository{col: db.Collection(playerCollection)}
}

// EnsureIndexes creates the unique indexes on username and email. The
// store-level constraint is the real uniqueness guarantee; the signup
// pre-check is only a fast path.
func (r *PlayerRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}

// Create inserts a new player and fills in the store-assigned id.
func (r *PlayerRepository) Create(ctx context.Context, player *models.Player) error {
	res, err := r.col.InsertOne(ctx, player)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateAccount
	}
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		player.ID = oid
	}
	return nil
}

func (r *PlayerRepository) FindByUsername(ctx context.Context, username string) (*models.Player, error) {
	var player models.Player
	err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&player)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrPlayerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &player, nil
}

func (r *PlayerRepository) FindByID(ctx context.Context, id string) (*models.Player, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrPlayerNotFound
	}
	var player models.Player
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&player)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrPlayerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// ExistsByUsernameOrEmail is the signup fast path; the unique indexes
// remain authoritative under concurrent signups.
func (r *PlayerRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	count, err := r.col.CountDocuments(ctx, bson.M{
		"$or": bson.A{
			bson.M{"username": username},
			bson.M{"email": email},
		},
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// AdjustPoints applies a single atomic increment to one player's point
// balance. There is no floor: balances may go negative.
func (r *PlayerRepository) AdjustPoints(ctx context.Context, id string, delta int) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrPlayerNotFound
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"points": delta}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

// ListByPoints returns every player ordered by points descending. The
// password hash is projected out at the store, not just at the encoder.
func (r *PlayerRepository) ListByPoints(ctx context.Context) ([]models.Player, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "points", Value: -1}}).
		SetProjection(bson.M{"passwordHash": 0})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var players []models.Player
	if err := cur.All(ctx, &players); err != nil {
		return nil, err
	}
	return players, nil
}
