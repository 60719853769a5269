package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingOperationKey  = "operation"
	LoggingEventKey      = "event"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingStatusCodeKey = "status_code"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingUserIDKey     = "user_id"
	LoggingRolesKey      = "roles"

	LoggingClubIDKey       = "club_id"
	LoggingBookingIDKey    = "booking_id"
	LoggingSeriesIDKey     = "series_id"
	LoggingCourtIDKey      = "court_id"
	LoggingPaymentIDKey    = "payment_id"
	LoggingClosedDateIDKey = "closed_date_id"
	LoggingLockKey         = "lock_key"
	LoggingCountKey        = "count"
	LoggingQueueNameKey    = "queue_name"
	LoggingExchangeKey     = "exchange"
	LoggingRoutingKey      = "routing_key"
	LoggingObjectNameKey   = "object_name"
	LoggingLimiterKey      = "limiter_key"
)
