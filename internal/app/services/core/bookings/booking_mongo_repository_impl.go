package bookings

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

type BookingMongoRepository struct {
	Collection *mongo.Collection
	Log        *zap.Logger
}

func NewBookingMongoRepository(db *mongo.Database, logger *zap.Logger) contracts.BookingRepository {
	return &BookingMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionBookings),
		Log:        logger,
	}
}

// BookingIndexes backs the overlap, schedule and series queries.
func BookingIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "courtId", Value: 1}, {Key: "startDateTime", Value: 1}, {Key: "endDateTime", Value: 1}}},
		{Keys: bson.D{{Key: "coachId", Value: 1}, {Key: "startDateTime", Value: 1}, {Key: "endDateTime", Value: 1}}},
		{Keys: bson.D{{Key: "clubId", Value: 1}, {Key: "startDateTime", Value: 1}}},
		{Keys: bson.D{{Key: "seriesId", Value: 1}}},
		{Keys: bson.D{{Key: "customerId", Value: 1}}},
	}
}

var sortByStart = options.Find().SetSort(bson.D{{Key: "startDateTime", Value: 1}})

func (repo *BookingMongoRepository) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	cursor, err := repo.Collection.Find(ctx, filter, sortByStart)
	if err != nil {
		repo.Log.Error("BookingMongoRepository.find error",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	bookings := make([]models.Booking, 0)
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bookings, nil
}

func (repo *BookingMongoRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	var booking models.Booking
	err := repo.Collection.FindOne(ctx, bson.M{"_id": bookingID}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &booking, nil
}

func (repo *BookingMongoRepository) FindByClub(ctx context.Context, clubID string, from, to *time.Time) ([]models.Booking, error) {
	filter := bson.M{"clubId": clubID}
	if from != nil && to != nil {
		filter["startDateTime"] = bson.M{"$gte": *from, "$lte": *to}
	}
	return repo.find(ctx, filter)
}

func (repo *BookingMongoRepository) FindOverlapping(ctx context.Context, kind models.ResourceKind, resourceID string, start, end time.Time) ([]models.Booking, error) {
	field := "courtId"
	if kind == models.ResourceCoach {
		field = "coachId"
	}
	return repo.find(ctx, bson.M{
		field:           resourceID,
		"startDateTime": bson.M{"$lt": end},
		"endDateTime":   bson.M{"$gt": start},
	})
}

func (repo *BookingMongoRepository) FindInRange(ctx context.Context, clubID string, start, end time.Time) ([]models.Booking, error) {
	return repo.find(ctx, bson.M{
		"clubId": clubID,
		"$or": bson.A{
			bson.M{"startDateTime": bson.M{"$gte": start, "$lte": end}},
			bson.M{"endDateTime": bson.M{"$gte": start, "$lte": end}},
			bson.M{"startDateTime": bson.M{"$lte": start}, "endDateTime": bson.M{"$gte": end}},
		},
	})
}

func (repo *BookingMongoRepository) FindStartingBetween(ctx context.Context, from, to time.Time) ([]models.Booking, error) {
	return repo.find(ctx, bson.M{"startDateTime": bson.M{"$gte": from, "$lt": to}})
}

func (repo *BookingMongoRepository) Insert(ctx context.Context, booking *models.Booking) error {
	if _, err := repo.Collection.InsertOne(ctx, booking); err != nil {
		repo.Log.Error("BookingMongoRepository.Insert error",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingBookingIDKey, booking.ID),
			zap.Error(err),
		)
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *BookingMongoRepository) InsertMany(ctx context.Context, bookings []models.Booking) error {
	if len(bookings) == 0 {
		return nil
	}
	documents := make([]interface{}, 0, len(bookings))
	for i := range bookings {
		documents = append(documents, bookings[i])
	}
	if _, err := repo.Collection.InsertMany(ctx, documents); err != nil {
		repo.Log.Error("BookingMongoRepository.InsertMany error",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Int(constvars.LoggingCountKey, len(bookings)),
			zap.Error(err),
		)
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

// updateDocument turns a BookingUpdate into $set and $unset stages. An empty
// coach id removes the coach.
func updateDocument(update models.BookingUpdate) bson.M {
	set := bson.M{"updatedAt": update.UpdatedAt}
	unset := bson.M{}

	if update.CourtID != nil {
		set["courtId"] = *update.CourtID
	}
	if update.CoachID != nil {
		if *update.CoachID == "" {
			unset["coachId"] = ""
		} else {
			set["coachId"] = *update.CoachID
		}
	}
	if update.CustomerID != nil {
		set["customerId"] = *update.CustomerID
	}
	if update.BookingName != nil {
		set["bookingName"] = *update.BookingName
	}
	if update.Phone != nil {
		set["phone"] = *update.Phone
	}
	if update.StartDateTime != nil {
		set["startDateTime"] = *update.StartDateTime
	}
	if update.EndDateTime != nil {
		set["endDateTime"] = *update.EndDateTime
	}
	if update.DurationMinutes != nil {
		set["durationMinutes"] = *update.DurationMinutes
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.PaymentStatus != nil {
		set["paymentStatus"] = *update.PaymentStatus
	}
	if update.BookingCategoryID != nil {
		set["bookingCategoryId"] = *update.BookingCategoryID
	}
	if update.Notes != nil {
		set["notes"] = *update.Notes
	}

	document := bson.M{"$set": set}
	if len(unset) > 0 {
		document["$unset"] = unset
	}
	return document
}

func (repo *BookingMongoRepository) Update(ctx context.Context, bookingID string, update models.BookingUpdate) (*models.Booking, error) {
	var booking models.Booking
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := repo.Collection.FindOneAndUpdate(ctx, bson.M{"_id": bookingID}, updateDocument(update), opts).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		repo.Log.Error("BookingMongoRepository.Update error",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingBookingIDKey, bookingID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &booking, nil
}

func (repo *BookingMongoRepository) UpdatePaymentSummary(ctx context.Context, bookingID string, totalReceived float64, status models.PaymentStatus) error {
	_, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": bookingID}, bson.M{"$set": bson.M{
		"totalReceived": totalReceived,
		"paymentStatus": status,
		"updatedAt":     time.Now().UTC(),
	}})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *BookingMongoRepository) DeleteByID(ctx context.Context, bookingID string) (bool, error) {
	result, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": bookingID})
	if err != nil {
		return false, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount > 0, nil
}

func (repo *BookingMongoRepository) DeleteBySeriesID(ctx context.Context, clubID, seriesID string) (int64, error) {
	result, err := repo.Collection.DeleteMany(ctx, seriesFilter(clubID, seriesID))
	if err != nil {
		return 0, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount, nil
}

func seriesFilter(clubID, seriesID string) bson.M {
	return bson.M{"clubId": clubID, "seriesId": seriesID}
}
