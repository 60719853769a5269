package closedDates

import (
	"context"
	"errors"
	"padel-service/internal/app/contracts"
	"padel-service/internal/app/models"
	"padel-service/internal/pkg/constvars"
	"padel-service/internal/pkg/exceptions"
	"padel-service/internal/pkg/utils"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type ClosedDateMongoRepository struct {
	Collection *mongo.Collection
	Log        *zap.Logger
}

func NewClosedDateMongoRepository(db *mongo.Database, logger *zap.Logger) contracts.ClosedDateRepository {
	return &ClosedDateMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionClosedDates),
		Log:        logger,
	}
}

// ClosedDateIndexes enforces one closure per club and day.
func ClosedDateIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "clubId", Value: 1}, {Key: "closedDate", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
}

func (repo *ClosedDateMongoRepository) Insert(ctx context.Context, closedDate *models.ClosedDate) error {
	if _, err := repo.Collection.InsertOne(ctx, closedDate); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return exceptions.ErrClosedDateExists(err, closedDate.ClubID, closedDate.ClosedDate.Format(constvars.DateLayout))
		}
		repo.Log.Error("ClosedDateMongoRepository.Insert error",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *ClosedDateMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.ClosedDate, error) {
	var closedDate models.ClosedDate
	err := repo.Collection.FindOne(ctx, filter).Decode(&closedDate)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &closedDate, nil
}

// FindByClubAndDay matches any closure stored within the 24 hours after day.
func (repo *ClosedDateMongoRepository) FindByClubAndDay(ctx context.Context, clubID string, day time.Time) (*models.ClosedDate, error) {
	return repo.findOne(ctx, bson.M{
		"clubId":     clubID,
		"closedDate": bson.M{"$gte": day, "$lt": day.Add(24 * time.Hour)},
	})
}

func (repo *ClosedDateMongoRepository) FindByClub(ctx context.Context, clubID string, from, to *time.Time) ([]models.ClosedDate, error) {
	filter := bson.M{"clubId": clubID}
	if from != nil && to != nil {
		filter["closedDate"] = bson.M{"$gte": *from, "$lte": *to}
	}

	cursor, err := repo.Collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "closedDate", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	closedDates := make([]models.ClosedDate, 0)
	if err := cursor.All(ctx, &closedDates); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return closedDates, nil
}

func (repo *ClosedDateMongoRepository) FindByID(ctx context.Context, closedDateID string) (*models.ClosedDate, error) {
	return repo.findOne(ctx, bson.M{"_id": closedDateID})
}

func (repo *ClosedDateMongoRepository) DeleteByID(ctx context.Context, closedDateID string) (bool, error) {
	result, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": closedDateID})
	if err != nil {
		return false, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount > 0, nil
}
