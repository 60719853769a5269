package requests

import (
	"errors"
	"strings"

	"github.com/goccy/go-json"
)

var ErrUnknownBookingType = errors.New("unknown booking type")

// CreateBookingDraft is one of CreateSingleBooking, CreateCoachBooking or CreateFixedBooking.
type CreateBookingDraft interface {
	Kind() string
	Base() *CreateBookingBase
}

type CreateBookingBase struct {
	BookingType       string  `json:"booking_type" validate:"required,oneof=SINGLE FIXED COACH"`
	CourtID           string  `json:"court_id" validate:"required"`
	CustomerID        string  `json:"customer_id,omitempty"`
	BookingName       string  `json:"booking_name" validate:"required,max=120"`
	Phone             string  `json:"phone" validate:"required"`
	Price             float64 `json:"price" validate:"gte=0"`
	BookingCategoryID string  `json:"booking_category_id,omitempty"`
	Notes             string  `json:"notes,omitempty" validate:"max=1000"`
}

func (b *CreateBookingBase) Base() *CreateBookingBase { return b }

type CreateSingleBooking struct {
	CreateBookingBase
	CoachID         string `json:"coach_id,omitempty"`
	StartDateTime   string `json:"start_date_time" validate:"required,iso_datetime"`
	EndDateTime     string `json:"end_date_time,omitempty" validate:"omitempty,iso_datetime"`
	DurationMinutes int    `json:"duration_minutes,omitempty" validate:"omitempty,min=15"`
}

func (*CreateSingleBooking) Kind() string { return "SINGLE" }

type CreateCoachBooking struct {
	CreateBookingBase
	CoachID         string `json:"coach_id" validate:"required"`
	StartDateTime   string `json:"start_date_time" validate:"required,iso_datetime"`
	EndDateTime     string `json:"end_date_time,omitempty" validate:"omitempty,iso_datetime"`
	DurationMinutes int    `json:"duration_minutes,omitempty" validate:"omitempty,min=15"`
}

func (*CreateCoachBooking) Kind() string { return "COACH" }

type CreateFixedBooking struct {
	CreateBookingBase
	StartDateTime      string   `json:"start_date_time" validate:"required,iso_datetime"`
	DurationMinutes    int      `json:"duration_minutes" validate:"required,min=15"`
	RepeatedDayOfWeek  string   `json:"repeated_day_of_week,omitempty" validate:"omitempty,weekday"`
	RepeatedDaysOfWeek []string `json:"repeated_days_of_week,omitempty" validate:"omitempty,dive,weekday"`
	RecurrenceEndDate  string   `json:"recurrence_end_date" validate:"required,iso_datetime"`
}

func (*CreateFixedBooking) Kind() string { return "FIXED" }

// DecodeCreateBooking reads booking_type first and decodes the payload into
// the matching draft.
func DecodeCreateBooking(data []byte) (CreateBookingDraft, error) {
	var peek struct {
		BookingType string `json:"booking_type"`
	}
	if err := json.Unmarshal(data, &peek); err != nil {
		return nil, err
	}

	var draft CreateBookingDraft
	switch strings.ToUpper(strings.TrimSpace(peek.BookingType)) {
	case "SINGLE":
		draft = &CreateSingleBooking{}
	case "COACH":
		draft = &CreateCoachBooking{}
	case "FIXED":
		draft = &CreateFixedBooking{}
	default:
		return nil, ErrUnknownBookingType
	}

	if err := json.Unmarshal(data, draft); err != nil {
		return nil, err
	}
	draft.Base().BookingType = draft.Kind()
	return draft, nil
}

type UpdateBooking struct {
	CourtID           *string  `json:"court_id,omitempty" validate:"omitempty,min=1"`
	CoachID           *string  `json:"coach_id,omitempty"`
	CustomerID        *string  `json:"customer_id,omitempty"`
	BookingName       *string  `json:"booking_name,omitempty" validate:"omitempty,min=1,max=120"`
	Phone             *string  `json:"phone,omitempty" validate:"omitempty,min=1"`
	StartDateTime     *string  `json:"start_date_time,omitempty" validate:"omitempty,iso_datetime"`
	EndDateTime       *string  `json:"end_date_time,omitempty" validate:"omitempty,iso_datetime"`
	Price             *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	BookingCategoryID *string  `json:"booking_category_id,omitempty"`
	Notes             *string  `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

type DragDropBooking struct {
	StartDateTime string `json:"start_date_time" validate:"required,iso_datetime"`
	EndDateTime   string `json:"end_date_time" validate:"required,iso_datetime"`
	CourtID       string `json:"court_id,omitempty"`
	CoachID       string `json:"coach_id,omitempty"`
}
