package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionDataCanAccessClub(t *testing.T) {
	t.Run("customer is bound to its club", func(t *testing.T) {
		s := &SessionData{Customer: true, ClubID: "club-1", Roles: []UserRole{RoleCustomer}}
		assert.True(t, s.CanAccessClub("club-1"))
		assert.False(t, s.CanAccessClub("club-2"))
	})

	t.Run("staff limited to listed clubs", func(t *testing.T) {
		s := &SessionData{ClubIDs: []string{"club-1"}, Roles: []UserRole{RoleReceptionist}}
		assert.True(t, s.CanAccessClub("club-1"))
		assert.False(t, s.CanAccessClub("club-2"))
	})

	t.Run("admin and unscoped staff reach every club", func(t *testing.T) {
		admin := &SessionData{ClubIDs: []string{"club-1"}, Roles: []UserRole{RoleAdmin}}
		assert.True(t, admin.CanAccessClub("club-9"))
		unscoped := &SessionData{Roles: []UserRole{RoleManager}}
		assert.True(t, unscoped.CanAccessClub("club-9"))
	})
}
