package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"padel-service/internal/app/config"
	"padel-service/internal/app/delivery/http/controllers"
	"padel-service/internal/app/delivery/http/middlewares"
	"padel-service/internal/app/delivery/http/routers"
	"padel-service/internal/app/drivers/database"
	"padel-service/internal/app/drivers/logger"
	"padel-service/internal/app/drivers/messaging"
	"padel-service/internal/app/drivers/storage"
	"padel-service/internal/app/drivers/tracer"
	"padel-service/internal/app/services/core/auth"
	"padel-service/internal/app/services/core/bookings"
	closedDates "padel-service/internal/app/services/core/closed_dates"
	"padel-service/internal/app/services/core/clubs"
	"padel-service/internal/app/services/core/payments"
	"padel-service/internal/app/services/core/reminders"
	"padel-service/internal/app/services/core/schedules"
	"padel-service/internal/app/services/shared/jwtmanager"
	"padel-service/internal/app/services/shared/locker"
	"padel-service/internal/app/services/shared/notifier"
	"padel-service/internal/app/services/shared/publisher"
	"padel-service/internal/app/services/shared/ratelimiter"
	"padel-service/internal/app/services/shared/redis"
	minioStorage "padel-service/internal/app/services/shared/storage"
	"syscall"
	"time"

	"github.com/casbin/casbin/v2"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %s", err.Error())
	}
	time.Local = location
	log.Printf("Successfully set time zone to %s", location)

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	tracerShutdown := tracer.NewTracerProvider(driverConfig, internalConfig)

	mongoClient := database.NewMongoDB(driverConfig)
	postgresDB := database.NewPostgresDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)

	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	if err := messaging.DeclareTopology(rabbitMQ, internalConfig); err != nil {
		log.Fatalf("Failed to declare RabbitMQ topology: %s", err.Error())
	}

	minioClient := storage.NewMinio(driverConfig)
	bucketCtx, bucketCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := storage.EnsureBucket(bucketCtx, minioClient, internalConfig.Minio.BucketName); err != nil {
		bucketCancel()
		log.Fatalf("Failed to prepare Minio bucket: %s", err.Error())
	}
	bucketCancel()

	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoClient,
		Postgres:       postgresDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
		TracerShutdown: tracerShutdown,
	}

	if err := bootstrapingTheApp(&bootstrap); err != nil {
		log.Fatalf("Error bootstraping the app: %s", err.Error())
	}

	server := &http.Server{
		Addr:              ":" + internalConfig.App.Port,
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server is running on port %s", internalConfig.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %s", err.Error())
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Waiting for pending requests to finish before shutting down")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(internalConfig.App.ShutdownTimeoutInSeconds)*time.Second,
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %s", err.Error())
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during resource cleanup: %s", err.Error())
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	log := bootstrap.Logger
	cfg := bootstrap.InternalConfig
	mongoDB := bootstrap.MongoDB.Database(bootstrap.DriverConfig.MongoDB.DbName)

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, log)
	resourceLimiter := ratelimiter.NewResourceLimiter(redisRepository, log)
	minioStorageService := minioStorage.NewMinioStorage(bootstrap.Minio, cfg.Minio.BucketName, log)

	jwtManager, err := jwtmanager.NewJWTManager(cfg, log)
	if err != nil {
		return err
	}

	eventPublisher, err := publisher.NewEventPublisher(bootstrap.RabbitMQ, cfg.RabbitMQ.EventsExchange, log)
	if err != nil {
		return err
	}

	otpNotifier, err := notifier.NewOTPNotifier(bootstrap.RabbitMQ, cfg.RabbitMQ.OTPQueue, log)
	if err != nil {
		return err
	}

	enforcer, err := casbin.NewEnforcer(cfg.RBAC.ModelPath, cfg.RBAC.PolicyPath)
	if err != nil {
		return err
	}

	// Repositories
	userRepository := auth.NewUserMongoRepository(mongoDB, log)
	customerRepository := auth.NewCustomerMongoRepository(mongoDB, log)
	clubResourceRepository := clubs.NewClubResourceMongoRepository(mongoDB, log)
	bookingRepository := bookings.NewBookingMongoRepository(mongoDB, log)
	closedDateRepository := closedDates.NewClosedDateMongoRepository(mongoDB, log)
	paymentRepository := payments.NewPaymentPostgresRepository(bootstrap.Postgres, log)

	// Usecases
	authUsecase := auth.NewAuthUsecase(
		userRepository,
		customerRepository,
		redisRepository,
		resourceLimiter,
		otpNotifier,
		jwtManager,
		cfg,
		log,
	)
	bookingUsecase := bookings.NewBookingUsecase(bookingRepository, clubResourceRepository, lockerService, eventPublisher, cfg, log)
	scheduleUsecase := schedules.NewScheduleUsecase(bookingRepository, clubResourceRepository, closedDateRepository, minioStorageService, cfg, log)
	paymentUsecase := payments.NewPaymentUsecase(paymentRepository, bookingRepository, eventPublisher, lockerService, cfg, log)
	closedDateUsecase := closedDates.NewClosedDateUsecase(closedDateRepository, cfg, log)

	// Background workers
	if cfg.Reminder.Enabled {
		reminderWorker := reminders.NewWorker(log, cfg, lockerService, redisRepository, bookingRepository, eventPublisher)
		reminderWorker.Start(context.Background())
		bootstrap.WorkerStop = reminderWorker.Stop
		log.Info("Reminder worker started", zap.String("cron_spec", cfg.Reminder.CronSpec))
	}

	middlewares := middlewares.NewMiddlewares(log, authUsecase, enforcer, cfg)

	routers.SetupRoutes(bootstrap.Router, cfg, middlewares, &routers.Controllers{
		Auth:       controllers.NewAuthController(log, authUsecase, cfg),
		Booking:    controllers.NewBookingController(log, bookingUsecase, cfg),
		Schedule:   controllers.NewScheduleController(log, scheduleUsecase, cfg),
		Payment:    controllers.NewPaymentController(log, paymentUsecase, cfg),
		ClosedDate: controllers.NewClosedDateController(log, closedDateUsecase, cfg),
	})

	return nil
}
