package main

import (
	"context"
	"flag"
	"padel-service/internal/app/config"
	"padel-service/internal/app/drivers/database"
	"padel-service/internal/app/drivers/logger"
	"padel-service/internal/app/models"
	"padel-service/internal/app/services/core/auth"
	"padel-service/internal/app/services/core/bookings"
	closedDates "padel-service/internal/app/services/core/closed_dates"
	"padel-service/internal/app/services/core/clubs"
	"padel-service/internal/pkg/constvars"
	"padel-service/internal/pkg/exceptions"
	"padel-service/internal/pkg/utils"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	seed := flag.Bool("seed", false, "seed a demo club and an admin account")
	clubID := flag.String("club", "club-demo", "club id used by -seed")
	adminEmail := flag.String("admin-email", "admin@padel.local", "admin email used by -seed")
	adminPassword := flag.String("admin-password", "", "admin password used by -seed")
	flag.Parse()

	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewLogrusLogger(internalConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	mongoClient := database.NewMongoDB(driverConfig)
	defer mongoClient.Disconnect(context.Background())
	mongoDB := mongoClient.Database(driverConfig.MongoDB.DbName)

	indexes := map[string][]mongo.IndexModel{
		constvars.MongoCollectionBookings:    bookings.BookingIndexes(),
		constvars.MongoCollectionClosedDates: closedDates.ClosedDateIndexes(),
		constvars.MongoCollectionUsers:       auth.UserIndexes(),
		constvars.MongoCollectionCustomers:   auth.CustomerIndexes(),
	}
	for collection, indexModels := range indexes {
		names, err := mongoDB.Collection(collection).Indexes().CreateMany(ctx, indexModels)
		if err != nil {
			log.WithError(exceptions.ErrMongoDBCreateIndex(err)).WithField("collection", collection).Fatal("Failed to create indexes")
		}
		log.WithFields(logrus.Fields{
			"collection": collection,
			"indexes":    strings.Join(names, ","),
		}).Info("Indexes are up to date")
	}

	postgresDB := database.NewPostgresDB(driverConfig)
	if err := postgresDB.WithContext(ctx).AutoMigrate(&models.Payment{}); err != nil {
		log.WithError(err).Fatal("Failed to migrate payments table")
	}
	log.Info("Payments table is up to date")

	if !*seed {
		return
	}
	if *adminPassword == "" {
		log.Fatal("-admin-password is required with -seed")
	}

	if err := seedClub(ctx, mongoDB, *clubID); err != nil {
		log.WithError(err).Fatal("Failed to seed club resources")
	}
	log.WithField("club_id", *clubID).Info("Seeded club resources")

	if err := seedAdmin(ctx, mongoDB, *adminEmail, *adminPassword); err != nil {
		log.WithError(err).Fatal("Failed to seed admin user")
	}
	log.WithField("email", *adminEmail).Info("Seeded admin user")
}

func seedClub(ctx context.Context, db *mongo.Database, clubID string) error {
	repo := clubs.NewClubResourceMongoRepository(db, zap.NewNop()).(*clubs.ClubResourceMongoRepository)

	courts := []models.Court{
		{ID: clubID + "-court-1", ClubID: clubID, Name: "Court 1", SurfaceType: "artificial grass", IsActive: true, DefaultPricePerHour: 200},
		{ID: clubID + "-court-2", ClubID: clubID, Name: "Court 2", SurfaceType: "artificial grass", IsActive: true, DefaultPricePerHour: 200},
		{ID: clubID + "-court-3", ClubID: clubID, Name: "Panoramic", SurfaceType: "panoramic glass", IsActive: true, DefaultPricePerHour: 260},
	}
	coaches := []models.Coach{
		{ID: clubID + "-coach-1", ClubID: clubID, FullName: "Head Coach", HourlyRate: 150, IsActive: true, Specialties: []string{"technique"}},
	}
	categories := []models.BookingCategory{
		{ID: clubID + "-cat-league", ClubID: clubID, Name: "League", ColorHex: "#1E88E5", IsActive: true},
		{ID: clubID + "-cat-academy", ClubID: clubID, Name: "Academy", ColorHex: "#43A047", IsActive: true},
	}
	return repo.Seed(ctx, courts, coaches, categories)
}

func seedAdmin(ctx context.Context, db *mongo.Database, email, password string) error {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}

	users := auth.NewUserMongoRepository(db, zap.NewNop())
	existing, err := users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(email),
		PasswordHash: hash,
		FullName:     "Club Administrator",
		Roles:        []models.UserRole{models.RoleAdmin},
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if existing != nil {
		user.ID = existing.ID
		user.CreatedAt = existing.CreatedAt
	}
	return users.Upsert(ctx, user)
}
