package responses

import "time"

type LoginUser struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	UserID      string    `json:"user_id"`
	FullName    string    `json:"full_name,omitempty"`
	Roles       []string  `json:"roles"`
}

type SendOTP struct {
	Phone     string `json:"phone"`
	ExpiresIn int    `json:"expires_in_seconds"`
}

type VerifyOTP struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	CustomerID  string    `json:"customer_id"`
	IsNew       bool      `json:"is_new"`
}
