package requests

type LoginUser struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type SendCustomerOTP struct {
	ClubID      string `json:"club_id" validate:"required"`
	Phone       string `json:"phone" validate:"required,phone_number"`
	BookingName string `json:"booking_name,omitempty" validate:"max=120"`
}

type VerifyCustomerOTP struct {
	ClubID string `json:"club_id" validate:"required"`
	Phone  string `json:"phone" validate:"required,phone_number"`
	OTP    string `json:"otp" validate:"required,len=6,numeric"`
}
