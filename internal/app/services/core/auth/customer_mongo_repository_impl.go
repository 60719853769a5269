package auth

import (
	"context"
	"errors"
	"padel-service/internal/app/contracts"
	"padel-service/internal/app/models"
	"padel-service/internal/pkg/constvars"
	"padel-service/internal/pkg/exceptions"
	"padel-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type CustomerMongoRepository struct {
	Collection *mongo.Collection
	Log        *zap.Logger
}

func NewCustomerMongoRepository(db *mongo.Database, logger *zap.Logger) contracts.CustomerRepository {
	return &CustomerMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionCustomers),
		Log:        logger,
	}
}

// CustomerIndexes keeps one customer per phone inside a club.
func CustomerIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "clubId", Value: 1}, {Key: "phone", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
}

func (repo *CustomerMongoRepository) FindByPhone(ctx context.Context, clubID, phone string) (*models.Customer, error) {
	var customer models.Customer
	err := repo.Collection.FindOne(ctx, bson.M{"clubId": clubID, "phone": phone}).Decode(&customer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		repo.Log.Error("CustomerMongoRepository.FindByPhone error",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingClubIDKey, clubID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &customer, nil
}

func (repo *CustomerMongoRepository) Insert(ctx context.Context, customer *models.Customer) error {
	if _, err := repo.Collection.InsertOne(ctx, customer); err != nil {
		repo.Log.Error("CustomerMongoRepository.Insert error",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingClubIDKey, customer.ClubID),
			zap.Error(err),
		)
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}
