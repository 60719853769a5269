package auth

import (
	"context"
	"errors"
	"padel-service/internal/app/contracts"
	"padel-service/internal/app/models"
	"padel-service/internal/pkg/constvars"
	"padel-service/internal/pkg/exceptions"
	"padel-service/internal/pkg/utils"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type UserMongoRepository struct {
	Collection *mongo.Collection
	Log        *zap.Logger
}

func NewUserMongoRepository(db *mongo.Database, logger *zap.Logger) contracts.UserRepository {
	return &UserMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionUsers),
		Log:        logger,
	}
}

func UserIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
}

func (repo *UserMongoRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := repo.Collection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		repo.Log.Error("UserMongoRepository.FindByEmail error",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &user, nil
}

// Upsert replaces the user document matched by id, inserting it when absent.
func (repo *UserMongoRepository) Upsert(ctx context.Context, user *models.User) error {
	user.Email = strings.ToLower(user.Email)
	_, err := repo.Collection.ReplaceOne(ctx, bson.M{"_id": user.ID}, user, options.Replace().SetUpsert(true))
	if err != nil {
		repo.Log.Error("UserMongoRepository.Upsert error",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
