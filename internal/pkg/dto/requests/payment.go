package requests

type CreatePayment struct {
	BookingID string  `json:"booking_id" validate:"required"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Method    string  `json:"method" validate:"required,payment_method"`
	PaidAt    string  `json:"paid_at,omitempty" validate:"omitempty,iso_datetime"`
}
