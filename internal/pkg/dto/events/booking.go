package events

import "time"

// BookingEvent is the payload published for booking lifecycle changes.
type BookingEvent struct {
	Event         string    `json:"event"`
	BookingID     string    `json:"booking_id,omitempty"`
	ClubID        string    `json:"club_id"`
	SeriesID      string    `json:"series_id,omitempty"`
	CourtID       string    `json:"court_id,omitempty"`
	CoachID       string    `json:"coach_id,omitempty"`
	BookingName   string    `json:"booking_name,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	StartDateTime time.Time `json:"start_date_time,omitempty"`
	EndDateTime   time.Time `json:"end_date_time,omitempty"`
	Count         int64     `json:"count,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type PaymentEvent struct {
	Event         string    `json:"event"`
	PaymentID     string    `json:"payment_id"`
	BookingID     string    `json:"booking_id"`
	ClubID        string    `json:"club_id"`
	Amount        float64   `json:"amount"`
	TotalReceived float64   `json:"total_received"`
	PaymentStatus string    `json:"payment_status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// OTPMessage is queued for the SMS gateway.
type OTPMessage struct {
	Phone       string    `json:"phone"`
	OTP         string    `json:"otp"`
	BookingName string    `json:"booking_name,omitempty"`
	Message     string    `json:"message"`
	RequestedAt time.Time `json:"requested_at"`
}
