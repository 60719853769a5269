package models

type Court struct {
	ID                  string  `json:"id" bson:"_id"`
	ClubID              string  `json:"club_id" bson:"clubId"`
	Name                string  `json:"name" bson:"name"`
	SurfaceType         string  `json:"surface_type,omitempty" bson:"surfaceType,omitempty"`
	IsActive            bool    `json:"is_active" bson:"isActive"`
	DefaultPricePerHour float64 `json:"default_price_per_hour" bson:"defaultPricePerHour"`
}

type Coach struct {
	ID          string   `json:"id" bson:"_id"`
	ClubID      string   `json:"club_id" bson:"clubId"`
	UserID      string   `json:"user_id,omitempty" bson:"userId,omitempty"`
	FullName    string   `json:"full_name" bson:"fullName"`
	Phone       string   `json:"phone,omitempty" bson:"phone,omitempty"`
	HourlyRate  float64  `json:"hourly_rate" bson:"hourlyRate"`
	IsActive    bool     `json:"is_active" bson:"isActive"`
	Specialties []string `json:"specialties,omitempty" bson:"specialties,omitempty"`
}

type BookingCategory struct {
	ID          string `json:"id" bson:"_id"`
	ClubID      string `json:"club_id" bson:"clubId"`
	Name        string `json:"name" bson:"name"`
	ColorHex    string `json:"color_hex" bson:"colorHex"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	IsActive    bool   `json:"is_active" bson:"isActive"`
}
