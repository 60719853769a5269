package requests

type CreateClosedDate struct {
	ClosedDate string `json:"closed_date" validate:"required,iso_datetime"`
	Reason     string `json:"reason,omitempty" validate:"max=255"`
}
