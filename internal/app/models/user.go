package models

import "time"

type UserRole string

const (
	RoleAdmin        UserRole = "ADMIN"
	RoleManager      UserRole = "MANAGER"
	RoleReceptionist UserRole = "RECEPTIONIST"
	RoleCoach        UserRole = "COACH"
	RoleCustomer     UserRole = "CUSTOMER"
)

type User struct {
	ID           string     `json:"id" bson:"_id"`
	Email        string     `json:"email" bson:"email"`
	PasswordHash string     `json:"-" bson:"passwordHash"`
	FullName     string     `json:"full_name" bson:"fullName"`
	Roles        []UserRole `json:"roles" bson:"roles"`
	ClubIDs      []string   `json:"club_ids,omitempty" bson:"clubIds,omitempty"`
	IsActive     bool       `json:"is_active" bson:"isActive"`
	CreatedAt    time.Time  `json:"created_at" bson:"createdAt"`
	UpdatedAt    time.Time  `json:"updated_at" bson:"updatedAt"`
}

type Customer struct {
	ID        string    `json:"id" bson:"_id"`
	ClubID    string    `json:"club_id" bson:"clubId"`
	FullName  string    `json:"full_name" bson:"fullName"`
	Phone     string    `json:"phone" bson:"phone"`
	Email     string    `json:"email,omitempty" bson:"email,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" bson:"updatedAt"`
}

// SessionData is the authenticated principal carried in the request context.
type SessionData struct {
	UserID   string     `json:"user_id"`
	Email    string     `json:"email,omitempty"`
	Phone    string     `json:"phone,omitempty"`
	ClubID   string     `json:"club_id,omitempty"`
	ClubIDs  []string   `json:"club_ids,omitempty"`
	Roles    []UserRole `json:"roles"`
	Customer bool       `json:"customer"`
}

func (s *SessionData) HasRole(role UserRole) bool {
	for _, r := range s.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// CanAccessClub reports whether the principal may act on clubID. Staff
// without an explicit club list are treated as belonging to every club.
func (s *SessionData) CanAccessClub(clubID string) bool {
	if s.Customer {
		return s.ClubID == clubID
	}
	if s.HasRole(RoleAdmin) || len(s.ClubIDs) == 0 {
		return true
	}
	for _, id := range s.ClubIDs {
		if id == clubID {
			return true
		}
	}
	return false
}
