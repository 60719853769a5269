package constvars

const (
	MongoCollectionBookings          = "bookings"
	MongoCollectionClosedDates       = "closed_dates"
	MongoCollectionCourts            = "courts"
	MongoCollectionCoaches           = "coaches"
	MongoCollectionBookingCategories = "booking_categories"
	MongoCollectionUsers             = "users"
	MongoCollectionCustomers         = "customers"
)

const (
	RedisKeyPrefixBookingLock  = "booking:lock"
	RedisKeyPrefixPaymentLock  = "payment:lock"
	RedisKeyPrefixCustomerOTP  = "auth:otp:customer"
	RedisKeyPrefixReminderSent = "reminder:sent"
	RedisKeyReminderWorkerLock = "worker:reminder:leader"
	RateLimitGroupOTP          = "OTP"
)

const (
	EventBookingCreated         = "booking.created"
	EventBookingUpdated         = "booking.updated"
	EventBookingRescheduled     = "booking.rescheduled"
	EventBookingCancelled       = "booking.cancelled"
	EventBookingSeriesCancelled = "booking.series_cancelled"
	EventBookingReminder        = "booking.reminder"
	EventPaymentRecorded        = "payment.recorded"
	EventPaymentRemoved         = "payment.removed"
)

const (
	MinioScheduleExportPrefix = "schedules"
)
