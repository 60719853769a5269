package config

import (
	"padel-service/internal/pkg/utils"
	"path"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "padel"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Postgres: Postgres{
			Host:     utils.GetEnvString("POSTGRES_HOST", "localhost"),
			Port:     utils.GetEnvString("POSTGRES_PORT", "5432"),
			DbName:   utils.GetEnvString("POSTGRES_DB_NAME", "padel"),
			Username: utils.GetEnvString("POSTGRES_USERNAME", "postgres"),
			Password: utils.GetEnvString("POSTGRES_PASSWORD", "postgres"),
			SSLMode:  utils.GetEnvString("POSTGRES_SSL_MODE", "disable"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Tracing: Tracing{
			Endpoint:    utils.GetEnvString("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			ServiceName: utils.GetEnvString("OTEL_SERVICE_NAME", "padel-service"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Asia/Riyadh"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 2),
			AllowedOrigins:             utils.GetEnvStringSlice("APP_CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		JWT: AppJWT{
			Secret:                utils.GetEnvString("JWT_SECRET", "anyjwt"),
			Issuer:                utils.GetEnvString("JWT_ISSUER", "padel-service"),
			ExpTimeInHour:         utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 12),
			CustomerExpTimeInDays: utils.GetEnvInt("JWT_CUSTOMER_EXP_TIME_IN_DAYS", 30),
		},
		OTP: AppOTP{
			ExpiredTimeInMinutes: utils.GetEnvInt("OTP_EXPIRED_TIME_IN_MINUTES", 5),
			MaxRequestsPerWindow: utils.GetEnvInt("OTP_MAX_REQUESTS_PER_WINDOW", 3),
			WindowInSeconds:      utils.GetEnvInt("OTP_WINDOW_IN_SECONDS", 300),
		},
		Booking: AppBooking{
			LockTTL:           utils.GetEnvDuration("BOOKING_LOCK_TTL", 10*time.Second),
			LockRetries:       utils.GetEnvInt("BOOKING_LOCK_RETRIES", 3),
			LockRetryBackoff:  utils.GetEnvDuration("BOOKING_LOCK_RETRY_BACKOFF", 150*time.Millisecond),
			MaxParallelChecks: utils.GetEnvInt("BOOKING_MAX_PARALLEL_CHECKS", 8),
		},
		Reminder: AppReminder{
			Enabled:          utils.GetEnvBool("REMINDER_WORKER_ENABLED", true),
			CronSpec:         utils.GetEnvString("REMINDER_WORKER_CRON_SPEC", "*/15 * * * *"),
			LeadTime:         utils.GetEnvDuration("REMINDER_LEAD_TIME", 2*time.Hour),
			PublishPerSecond: utils.GetEnvInt("REMINDER_PUBLISH_PER_SECOND", 20),
		},
		Minio: AppMinio{
			BucketName:                      utils.GetEnvString("MINIO_BUCKET_NAME", "padel-exports"),
			PreSignedUrlObjectExpiryInHours: utils.GetEnvInt("MINIO_PRESIGNED_URL_EXPIRY_IN_HOURS", 24),
		},
		RabbitMQ: AppRabbitMQ{
			EventsExchange: utils.GetEnvString("RABBITMQ_EVENTS_EXCHANGE", "padel.events"),
			OTPQueue:       utils.GetEnvString("RABBITMQ_OTP_QUEUE", "padel.otp.sms"),
		},
		RBAC: AppRBAC{
			ModelPath:  utils.GetEnvString("RBAC_MODEL_PATH", "resources/rbac_model.conf"),
			PolicyPath: utils.GetEnvString("RBAC_POLICY_PATH", "resources/rbac_policy.csv"),
		},
	}
}

// Location resolves the club timezone, falling back to UTC.
func (c *InternalConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// BasePath is the mount point of the versioned API, e.g. /api/v1.
func (c *InternalConfig) BasePath() string {
	return path.Join("/", c.App.EndpointPrefix, c.App.Version)
}
