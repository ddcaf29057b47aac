package models

import (
	"fmt"
	"time"
)

// Role is the closed set of actor roles. Keeping it a distinct type forces
// permission checks in the booking state machine to switch exhaustively
// instead of comparing ad-hoc strings.
type Role string

const (
	RoleStudent Role = "student"
	RoleCoach   Role = "coach"
	RoleAdmin   Role = "admin"
	RoleGuest   Role = "guest"
)

// ParseRole validates a raw role string.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleStudent, RoleCoach, RoleAdmin, RoleGuest:
		return Role(raw), nil
	}
	return "", fmt.Errorf("unknown role %q", raw)
}

// User is a platform account. A coach account links to its coach profile
// through CoachID.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Phone        string    `bson:"phone" json:"phone"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Nickname     string    `bson:"nickname,omitempty" json:"nickname,omitempty"`
	AvatarURL    string    `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	Role         Role      `bson:"role" json:"role"`
	CurrentRole  Role      `bson:"currentRole,omitempty" json:"currentRole,omitempty"` // admin view switch
	CoachID      string    `bson:"coachId,omitempty" json:"coachId,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// Session is the explicit actor context passed into core operations in place
// of ambient global state, so permission decisions are testable with fixed
// inputs.
type Session struct {
	UserID  string
	Role    Role
	CoachID string // set when the actor owns a coach profile
}

// ActsAsCoach reports whether the session may take coach-side actions on the
// given coach's bookings.
func (s Session) ActsAsCoach(coachID string) bool {
	switch s.Role {
	case RoleAdmin:
		return true
	case RoleCoach:
		return s.CoachID != "" && s.CoachID == coachID
	case RoleStudent, RoleGuest:
		return false
	}
	return false
}

// IsAdmin reports whether the session holds the admin role.
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
