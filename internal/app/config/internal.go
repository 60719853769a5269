package config

import "time"

type InternalConfig struct {
	App      App
	JWT      AppJWT
	OTP      AppOTP
	Booking  AppBooking
	Reminder AppReminder
	Minio    AppMinio
	RabbitMQ AppRabbitMQ
	RBAC     AppRBAC
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	Timezone                   string
	EndpointPrefix             string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	RequestTimeoutInSeconds    int
	RequestBodyLimitInMegabyte int
	AllowedOrigins             []string
}

type AppJWT struct {
	Secret                string
	Issuer                string
	ExpTimeInHour         int
	CustomerExpTimeInDays int
}

type AppOTP struct {
	ExpiredTimeInMinutes int
	// MaxRequestsPerWindow limits how many codes a phone may request per window.
	MaxRequestsPerWindow int
	WindowInSeconds      int
}

type AppBooking struct {
	LockTTL          time.Duration
	LockRetries      int
	LockRetryBackoff time.Duration
	// MaxParallelChecks bounds concurrent availability checks for recurring bookings.
	MaxParallelChecks int
}

type AppReminder struct {
	Enabled  bool
	CronSpec string
	LeadTime time.Duration
	// PublishPerSecond paces reminder events towards the broker.
	PublishPerSecond int
}

type AppMinio struct {
	BucketName                      string
	PreSignedUrlObjectExpiryInHours int
}

type AppRabbitMQ struct {
	EventsExchange string
	OTPQueue       string
}

type AppRBAC struct {
	ModelPath  string
	PolicyPath string
}
