package models

import "time"

type ClosedDate struct {
	ID              string    `json:"id" bson:"_id"`
	ClubID          string    `json:"club_id" bson:"clubId"`
	ClosedDate      time.Time `json:"closed_date" bson:"closedDate"`
	Reason          string    `json:"reason,omitempty" bson:"reason,omitempty"`
	CreatedByUserID string    `json:"created_by_user_id" bson:"createdByUserId"`
	CreatedAt       time.Time `json:"created_at" bson:"createdAt"`
	UpdatedAt       time.Time `json:"updated_at" bson:"updatedAt"`
}
