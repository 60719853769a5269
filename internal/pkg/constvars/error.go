package constvars

// Validation messages for users, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required":       "is required",
	"required_if":    "is required",
	"email":          "must be a valid email",
	"uuid4":          "must be a valid id",
	"min":            "must be at least %s",
	"max":            "maximum at %s",
	"gte":            "must be greater than or equal to %s",
	"gtfield":        "must be after %s",
	"oneof":          "must be one of %s",
	"len":            "must be exactly %s characters long",
	"weekday":        "must be a day of week (SUNDAY..SATURDAY)",
	"iso_datetime":   "must be an ISO-8601 date time",
	"iso_date":       "must be a date in YYYY-MM-DD format",
	"phone_number":   "phone number must be in international format, e.g. +966501234567",
	"payment_method": "must be one of CASH, CARD, TRANSFER, WALLET",
	"hex_color":      "must be a hex color code",
}

var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"gte":     true,
	"gtfield": true,
	"oneof":   true,
	"len":     true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidUsernameOrPassword     = "invalid email or password"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientTooManyRequests               = "too many requests, please try again later"
	ErrClientResourceBusy                  = "the selected time slot is being booked by someone else, please retry"

	ErrClientBookingNotFound        = "booking not found"
	ErrClientCourtNotFound          = "court not found"
	ErrClientCoachNotFound          = "coach not found"
	ErrClientPaymentNotFound        = "payment not found"
	ErrClientClosedDateNotFound     = "closed date not found"
	ErrClientClosedDateExists       = "club is already closed on this date"
	ErrClientEndBeforeStart         = "end date time must be after start date time"
	ErrClientEndOrDurationRequired  = "either end_date_time or duration_minutes is required"
	ErrClientCoachRequired          = "coach_id is required for COACH bookings"
	ErrClientWeekdayRequired        = "repeated_day_of_week or repeated_days_of_week is required for FIXED bookings"
	ErrClientInvalidDuration        = "duration_minutes must be greater than zero"
	ErrClientInvalidDateRange       = "to must not be before from"
	ErrClientNoOccurrences          = "no valid occurrences were generated for the requested recurrence"
	ErrClientAllOccurrencesConflict = "all occurrences of the recurring booking conflict with existing bookings"
	ErrClientUnknownBookingType     = "booking_type must be one of SINGLE, FIXED, COACH"
	ErrClientOTPInvalid             = "the code you entered is invalid"
	ErrClientOTPExpired             = "the code has expired, please request a new one"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevCannotParseJSON        = "cannot parse JSON"
	ErrDevCannotMarshalJSON      = "cannot marshal JSON"
	ErrDevFailedToHashPassword   = "failed to hash password"
	ErrDevInvalidCredentials     = "invalid credentials"
	ErrDevValidationFailed       = "validation failed"
	ErrDevServerDeadlineExceeded = "server deadline exceeded"
	ErrDevQueryParamValidation   = "query param %s validation failed"
	ErrDevPanicRecovered         = "panic recovered: %v"
	ErrDevRateLimited            = "rate limit exceeded for %s"

	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalidOrExpired = "token invalid or expired"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthRoleNotPermitted      = "role %v is not permitted to %s %s"
	ErrDevAuthOTPInvalid            = "otp does not match"
	ErrDevAuthOTPExpired            = "otp not found or expired"

	ErrDevBookingNotFound          = "booking %s not found"
	ErrDevCourtNotFound            = "court %s not found in club %s"
	ErrDevCoachNotFound            = "coach %s not found in club %s"
	ErrDevPaymentNotFound          = "payment %s not found"
	ErrDevClosedDateNotFound       = "closed date %s not found"
	ErrDevClosedDateExists         = "closed date already exists for club %s on %s"
	ErrDevBookingConflict          = "%s %s has %d conflicting bookings"
	ErrDevBookingLocked            = "failed to acquire booking lock %s"
	ErrDevAllOccurrencesConflicted = "all %d occurrences conflicted"

	// Mongo DB
	ErrDevDBFailedToFindDocument     = "failed to find document"
	ErrDevDBFailedToInsertDocument   = "failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "failed to update document"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"
	ErrDevDBFailedToCreateIndex      = "failed to create index"

	// Postgres DB
	ErrDevDBFailedToFindData   = "failed to find data"
	ErrDevDBFailedToInsertData = "failed to insert data"
	ErrDevDBFailedToDeleteData = "failed to delete data"

	// Redis
	ErrDevRedisSetData        = "failed to set data to redis"
	ErrDevRedisGetData        = "failed to get data from redis"
	ErrDevRedisDeleteData     = "failed to delete data from redis"
	ErrDevRedisIncrementValue = "failed to increment value in redis"

	// Minio
	ErrDevMinioFailedToCreateObject     = "failed to create object in bucket %s"
	ErrDevMinioFailedToPresignObjectURL = "failed to presign object url in bucket %s"

	// RabbitMQ
	ErrDevRabbitMQPublishMessage = "failed to publish message to %s"
)
