package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct(t *testing.T) {
	type payload struct {
		Phone  string   `validate:"omitempty,phone_number"`
		Days   []string `validate:"omitempty,dive,weekday"`
		Start  string   `validate:"omitempty,iso_datetime"`
		Date   string   `validate:"omitempty,iso_date"`
		Method string   `validate:"omitempty,payment_method"`
		Color  string   `validate:"omitempty,hex_color"`
	}

	t.Run("valid payload", func(t *testing.T) {
		err := ValidateStruct(payload{
			Phone:  "+966501234567",
			Days:   []string{"MONDAY", "wednesday"},
			Start:  "2025-11-24T14:00:00+03:00",
			Date:   "2025-11-24",
			Method: "CASH",
			Color:  "#1E90FF",
		})
		assert.NoError(t, err)
	})

	cases := map[string]payload{
		"phone":  {Phone: "0501234567"},
		"day":    {Days: []string{"FUNDAY"}},
		"start":  {Start: "yesterday"},
		"date":   {Date: "24/11/2025"},
		"method": {Method: "CHEQUE"},
		"color":  {Color: "blue"},
	}
	for name, p := range cases {
		t.Run("invalid "+name, func(t *testing.T) {
			assert.Error(t, ValidateStruct(p))
		})
	}
}
