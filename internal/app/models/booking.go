package models

import "time"

type BookingType string

const (
	BookingTypeSingle BookingType = "SINGLE"
	BookingTypeFixed  BookingType = "FIXED"
	BookingTypeCoach  BookingType = "COACH"
)

type PaymentStatus string

const (
	PaymentStatusNotPaid       PaymentStatus = "NOT_PAID"
	PaymentStatusPartiallyPaid PaymentStatus = "PARTIALLY_PAID"
	PaymentStatusPaid          PaymentStatus = "PAID"
)

// ResourceKind names one of the two axes on which booking conflicts are checked.
type ResourceKind string

const (
	ResourceCourt ResourceKind = "court"
	ResourceCoach ResourceKind = "coach"
)

func (k ResourceKind) Label() string {
	if k == ResourceCoach {
		return "Coach"
	}
	return "Court"
}

type Booking struct {
	ID                 string        `json:"id" bson:"_id"`
	ClubID             string        `json:"club_id" bson:"clubId"`
	CourtID            string        `json:"court_id" bson:"courtId"`
	CoachID            string        `json:"coach_id,omitempty" bson:"coachId,omitempty"`
	CustomerID         string        `json:"customer_id,omitempty" bson:"customerId,omitempty"`
	BookingName        string        `json:"booking_name" bson:"bookingName"`
	Phone              string        `json:"phone" bson:"phone"`
	BookingType        BookingType   `json:"booking_type" bson:"bookingType"`
	StartDateTime      time.Time     `json:"start_date_time" bson:"startDateTime"`
	EndDateTime        time.Time     `json:"end_date_time" bson:"endDateTime"`
	DurationMinutes    int           `json:"duration_minutes" bson:"durationMinutes"`
	RepeatedDayOfWeek  DayOfWeek     `json:"repeated_day_of_week,omitempty" bson:"repeatedDayOfWeek,omitempty"`
	RepeatedDaysOfWeek []DayOfWeek   `json:"repeated_days_of_week,omitempty" bson:"repeatedDaysOfWeek,omitempty"`
	RecurrenceEndDate  *time.Time    `json:"recurrence_end_date,omitempty" bson:"recurrenceEndDate,omitempty"`
	SeriesID           string        `json:"series_id,omitempty" bson:"seriesId,omitempty"`
	Price              float64       `json:"price" bson:"price"`
	TotalReceived      float64       `json:"total_received" bson:"totalReceived"`
	PaymentStatus      PaymentStatus `json:"payment_status" bson:"paymentStatus"`
	BookingCategoryID  string        `json:"booking_category_id,omitempty" bson:"bookingCategoryId,omitempty"`
	Notes              string        `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedByUserID    string        `json:"created_by_user_id" bson:"createdByUserId"`
	CreatedAt          time.Time     `json:"created_at" bson:"createdAt"`
	UpdatedAt          time.Time     `json:"updated_at" bson:"updatedAt"`
}

// ResourceID returns the court or coach the booking holds for kind.
func (b *Booking) ResourceID(kind ResourceKind) string {
	if kind == ResourceCoach {
		return b.CoachID
	}
	return b.CourtID
}

// BookingUpdate carries the fields of a partial booking update. Nil fields
// are left untouched.
type BookingUpdate struct {
	CourtID           *string
	CoachID           *string
	CustomerID        *string
	BookingName       *string
	Phone             *string
	StartDateTime     *time.Time
	EndDateTime       *time.Time
	DurationMinutes   *int
	Price             *float64
	PaymentStatus     *PaymentStatus
	BookingCategoryID *string
	Notes             *string
	UpdatedAt         time.Time
}
