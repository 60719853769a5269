package constvars

const (
	ResponseUnknown = "unknown"

	CreateBookingSuccessMessage      = "booking created successfully"
	CreateFixedBookingSuccessMessage = "recurring booking created successfully"
	CreateFixedBookingPartialMessage = "recurring booking created, %d conflicting occurrences were skipped"
	GetBookingSuccessMessage         = "get booking successfully"
	GetBookingsSuccessMessage        = "get bookings successfully"
	UpdateBookingSuccessMessage      = "booking updated successfully"
	DragDropBookingSuccessMessage    = "booking rescheduled successfully"
	DeleteBookingSuccessMessage      = "booking deleted successfully"
	CancelOccurrenceSuccessMessage   = "booking occurrence cancelled successfully"
	CancelSeriesSuccessMessage       = "booking series cancelled successfully"
	GetScheduleSuccessMessage        = "get schedule successfully"
	ExportScheduleSuccessMessage     = "schedule exported successfully"
	CreatePaymentSuccessMessage      = "payment recorded successfully"
	GetPaymentsSuccessMessage        = "get payments successfully"
	DeletePaymentSuccessMessage      = "payment deleted successfully"
	CreateClosedDateSuccessMessage   = "closed date created successfully"
	GetClosedDatesSuccessMessage     = "get closed dates successfully"
	GetClosedDateSuccessMessage      = "get closed date successfully"
	DeleteClosedDateSuccessMessage   = "closed date deleted successfully"
	CheckClosedDateSuccessMessage    = "check closed date successfully"
	LoginSuccessMessage              = "successfully login"
	SendOTPSuccessMessage            = "verification code sent"
	VerifyOTPSuccessMessage          = "phone number verified successfully"
)
