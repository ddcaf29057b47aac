package models

import "time"

// Venue status values.
const (
	VenueActive   = 1
	VenueInactive = 0
)

// OperatingHours is a venue's daily open window, "HH:MM" 24-hour clock.
// Invariant: Open < Close.
type OperatingHours struct {
	Open  string `bson:"open" json:"open"`
	Close string `bson:"close" json:"close"`
}

// Venue represents a court location bookings are placed at.
type Venue struct {
	ID             string         `bson:"id" json:"id"`
	Name           string         `bson:"name" json:"name"`
	Address        string         `bson:"address" json:"address,omitempty"`
	Images         []string       `bson:"images,omitempty" json:"images,omitempty"` // ordered storage references
	OperatingHours OperatingHours `bson:"operatingHours" json:"operatingHours"`
	Status         int            `bson:"status" json:"status"` // 1 active, 0 inactive
	CreatedAt      time.Time      `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt      time.Time      `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// VenueVerdict is the per-venue availability answer for a concrete slot,
// shown on the booking confirmation screen.
type VenueVerdict struct {
	Venue
	Available          bool   `json:"available"`
	UnavailableReason  string `json:"unavailableReason,omitempty"` // "outside_hours" or "already_booked"
	OperatingHoursText string `json:"operatingHoursText,omitempty"`
}

// Reasons a venue can be unavailable for a requested slot.
const (
	VenueReasonOutsideHours  = "outside_hours"
	VenueReasonAlreadyBooked = "already_booked"
)
