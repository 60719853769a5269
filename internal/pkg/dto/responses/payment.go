package responses

import "padel-service/internal/app/models"

type RecordPayment struct {
	Payment       *models.Payment `json:"payment"`
	TotalReceived float64         `json:"total_received"`
	PaymentStatus string          `json:"payment_status"`
}
