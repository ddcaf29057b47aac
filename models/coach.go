package models

import "time"

// Coach status values.
const (
	CoachActive   = 1
	CoachInactive = 0
)

// MaxSpecialties bounds the specialty tag list on a coach profile.
const MaxSpecialties = 5

// Coach represents a coach profile. Rating and ReviewCount are display-only
// aggregates maintained elsewhere; this service never computes them.
type Coach struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"userId" json:"userId,omitempty"` // 1:1 owning account
	Name        string    `bson:"name" json:"name"`
	Nickname    string    `bson:"nickname,omitempty" json:"nickname,omitempty"`
	AvatarURL   string    `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	Specialties []string  `bson:"specialties,omitempty" json:"specialties,omitempty"`
	Status      int       `bson:"status" json:"status"` // 1 active, 0 inactive
	Rating      float64   `bson:"rating,omitempty" json:"rating,omitempty"`
	ReviewCount int       `bson:"reviewCount,omitempty" json:"reviewCount,omitempty"`
	Schedule    *Schedule `bson:"schedule,omitempty" json:"schedule,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}
