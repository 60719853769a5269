package responses

import "time"

type CourtSchedule struct {
	CourtID     string           `json:"court_id"`
	CourtName   string           `json:"court_name"`
	Bookings    []ScheduleEntry  `json:"bookings"`
	ClosedDates []ClosedDateInfo `json:"closed_dates"`
}

type ScheduleEntry struct {
	ID              string    `json:"id"`
	BookingName     string    `json:"booking_name"`
	Phone           string    `json:"phone,omitempty"`
	BookingType     string    `json:"booking_type"`
	StartDateTime   time.Time `json:"start_date_time"`
	EndDateTime     time.Time `json:"end_date_time"`
	DurationMinutes int       `json:"duration_minutes"`
	CoachID         string    `json:"coach_id,omitempty"`
	CoachName       string    `json:"coach_name,omitempty"`
	CategoryID      string    `json:"category_id,omitempty"`
	CategoryName    string    `json:"category_name,omitempty"`
	CategoryColor   string    `json:"category_color,omitempty"`
	SeriesID        string    `json:"series_id,omitempty"`
	Price           float64   `json:"price"`
	TotalReceived   float64   `json:"total_received"`
	PaymentStatus   string    `json:"payment_status"`
	Notes           string    `json:"notes,omitempty"`
}

type ClosedDateInfo struct {
	ID         string    `json:"id"`
	ClosedDate time.Time `json:"closed_date"`
	Reason     string    `json:"reason,omitempty"`
}

type ScheduleExport struct {
	ObjectName   string    `json:"object_name"`
	DownloadURL  string    `json:"download_url"`
	ExpiresAt    time.Time `json:"expires_at"`
	CourtsCount  int       `json:"courts_count"`
	BookingCount int       `json:"booking_count"`
}
