package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY    ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY  ContextKey = "session_data"
	CONTEXT_CLIENT_REQUEST_ID ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "PADEL_SVC_"
)

const (
	ResourceAuth        = "auth"
	ResourceClubs       = "clubs"
	ResourceBookings    = "bookings"
	ResourceSchedule    = "schedule"
	ResourcePayments    = "payments"
	ResourceClosedDates = "closed-dates"
)

const (
	URLParamClubID       = "clubId"
	URLParamBookingID    = "bookingId"
	URLParamSeriesID     = "seriesId"
	URLParamPaymentID    = "paymentId"
	URLParamClosedDateID = "closedDateId"

	QueryParamStartDate = "start_date"
	QueryParamEndDate   = "end_date"
	QueryParamDate      = "date"
	QueryParamFrom      = "from"
	QueryParamTo        = "to"
)

const (
	OTPLength = 6
)

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04:05"
	// Layout used when a conflicting booking is rendered back to an operator.
	ConflictTimeLayout = "2006-01-02 15:04"
)
