package clubs

import (
	"context"
	"errors"
	"padel-service/internal/app/contracts"
	"padel-service/internal/app/models"
	"padel-service/internal/pkg/constvars"
	"padel-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type ClubResourceMongoRepository struct {
	Courts     *mongo.Collection
	Coaches    *mongo.Collection
	Categories *mongo.Collection
	Log        *zap.Logger
}

func NewClubResourceMongoRepository(db *mongo.Database, logger *zap.Logger) contracts.ClubResourceRepository {
	return &ClubResourceMongoRepository{
		Courts:     db.Collection(constvars.MongoCollectionCourts),
		Coaches:    db.Collection(constvars.MongoCollectionCoaches),
		Categories: db.Collection(constvars.MongoCollectionBookingCategories),
		Log:        logger,
	}
}

func findOneScoped[T any](ctx context.Context, collection *mongo.Collection, clubID, id string) (*T, error) {
	var doc T
	err := collection.FindOne(ctx, bson.M{"_id": id, "clubId": clubID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doc, nil
}

func findByIDs[T any](ctx context.Context, collection *mongo.Collection, ids []string, key func(T) string) (map[string]T, error) {
	out := make(map[string]T, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	cursor, err := collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	var docs []T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	for _, doc := range docs {
		out[key(doc)] = doc
	}
	return out, nil
}

func (repo *ClubResourceMongoRepository) FindCourtByID(ctx context.Context, clubID, courtID string) (*models.Court, error) {
	return findOneScoped[models.Court](ctx, repo.Courts, clubID, courtID)
}

func (repo *ClubResourceMongoRepository) FindCoachByID(ctx context.Context, clubID, coachID string) (*models.Coach, error) {
	return findOneScoped[models.Coach](ctx, repo.Coaches, clubID, coachID)
}

func (repo *ClubResourceMongoRepository) FindCourtsByIDs(ctx context.Context, ids []string) (map[string]models.Court, error) {
	return findByIDs(ctx, repo.Courts, ids, func(c models.Court) string { return c.ID })
}

func (repo *ClubResourceMongoRepository) FindCoachesByIDs(ctx context.Context, ids []string) (map[string]models.Coach, error) {
	return findByIDs(ctx, repo.Coaches, ids, func(c models.Coach) string { return c.ID })
}

func (repo *ClubResourceMongoRepository) FindCategoriesByIDs(ctx context.Context, ids []string) (map[string]models.BookingCategory, error) {
	return findByIDs(ctx, repo.Categories, ids, func(c models.BookingCategory) string { return c.ID })
}

// Seed upserts the given resources. Used by the migration seeder.
func (repo *ClubResourceMongoRepository) Seed(ctx context.Context, courts []models.Court, coaches []models.Coach, categories []models.BookingCategory) error {
	upsert := func(collection *mongo.Collection, id string, doc any) error {
		_, err := collection.ReplaceOne(ctx, bson.M{"_id": id}, doc, options.Replace().SetUpsert(true))
		if err != nil {
			return exceptions.ErrMongoDBUpdateDocument(err)
		}
		return nil
	}
	for _, c := range courts {
		if err := upsert(repo.Courts, c.ID, c); err != nil {
			return err
		}
	}
	for _, c := range coaches {
		if err := upsert(repo.Coaches, c.ID, c); err != nil {
			return err
		}
	}
	for _, c := range categories {
		if err := upsert(repo.Categories, c.ID, c); err != nil {
			return err
		}
	}
	return nil
}
