package models

import "time"

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "CASH"
	PaymentMethodCard     PaymentMethod = "CARD"
	PaymentMethodTransfer PaymentMethod = "TRANSFER"
	PaymentMethodWallet   PaymentMethod = "WALLET"
)

type Payment struct {
	ID              string        `json:"id" gorm:"type:uuid;primaryKey"`
	BookingID       string        `json:"booking_id" gorm:"type:varchar(64);not null;index"`
	ClubID          string        `json:"club_id" gorm:"type:varchar(64);not null;index:idx_payments_club_paid_at,priority:1"`
	Amount          float64       `json:"amount" gorm:"type:numeric(12,2);not null"`
	Method          PaymentMethod `json:"method" gorm:"type:varchar(16);not null"`
	PaidAt          time.Time     `json:"paid_at" gorm:"not null;index:idx_payments_club_paid_at,priority:2"`
	CreatedByUserID string        `json:"created_by_user_id" gorm:"type:varchar(64)"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

func (Payment) TableName() string {
	return "payments"
}

// DerivePaymentStatus maps the amount received against a booking price.
func DerivePaymentStatus(totalReceived, price float64) PaymentStatus {
	switch {
	case totalReceived <= 0:
		return PaymentStatusNotPaid
	case totalReceived >= price:
		return PaymentStatusPaid
	default:
		return PaymentStatusPartiallyPaid
	}
}
