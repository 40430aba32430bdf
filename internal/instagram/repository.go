package instagram

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	Upsert(ctx context.Context, token Token) error
	Get(ctx context.Context, userID string) (Token, error)
	Delete(ctx context.Context, userID string) error
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Upsert(ctx context.Context, token Token) error {
	filter := bson.M{"user_id": token.UserID}
	update := bson.M{
		"$set": bson.M{
			"access_token": token.AccessToken,
			"token_type":   token.TokenType,
			"expires_at":   token.ExpiresAt,
			"created_at":   token.CreatedAt,
		},
		"$setOnInsert": bson.M{
			"_id":     token.ID,
			"user_id": token.UserID,
		},
	}
	_, err := r.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *MongoRepository) Get(ctx context.Context, userID string) (Token, error) {
	var token Token
	if err := r.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&token); err != nil {
		return Token{}, err
	}
	return token, nil
}

func (r *MongoRepository) Delete(ctx context.Context, userID string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
