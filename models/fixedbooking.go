package models

import "time"

// FixedBooking status values.
const (
	FixedBookingActive = 1
	FixedBookingPaused = 0
)

// FixedBooking is a recurring weekly booking template. Weekday follows
// time.Weekday numbering: 0=Sunday .. 6=Saturday. A template is never
// "completed"; each weekly occurrence is materialized separately.
type FixedBooking struct {
	ID         string     `bson:"id" json:"id"`
	StudentID  string     `bson:"studentId" json:"studentId"`
	CoachID    string     `bson:"coachId" json:"coachId"`
	VenueID    string     `bson:"venueId" json:"venueId"`
	Weekday    int        `bson:"weekday" json:"weekday"`
	StartTime  string     `bson:"startTime" json:"startTime"`
	EndTime    string     `bson:"endTime" json:"endTime"`
	ValidUntil string     `bson:"validUntil,omitempty" json:"validUntil,omitempty"` // "2006-01-02", inclusive
	Status     int        `bson:"status" json:"status"`                             // 1 active, 0 paused
	Students   []Attendee `bson:"students,omitempty" json:"students,omitempty"`
	CreatedAt  time.Time  `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt  time.Time  `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// CoversDate reports whether the template is still in force on date
// ("2006-01-02"). An empty ValidUntil never expires.
func (fb *FixedBooking) CoversDate(date string) bool {
	return fb.ValidUntil == "" || date <= fb.ValidUntil
}

// BookingOccurrence is a materialized occurrence of a FixedBooking: a
// displayable, availability-blocking calendar entry that is not a persisted
// Booking. Status is always "confirmed" by construction; recurring slots are
// pre-approved.
type BookingOccurrence struct {
	ID             string        `json:"id"` // deterministic synthetic id
	IsFixed        bool          `json:"isFixed"`
	FixedBookingID string        `json:"fixedBookingId"`
	CoachID        string        `json:"coachId"`
	StudentID      string        `json:"studentId"`
	VenueID        string        `json:"venueId"`
	Date           string        `json:"date"`
	StartTime      string        `json:"startTime"`
	EndTime        string        `json:"endTime"`
	Students       []Attendee    `json:"students,omitempty"`
	Status         BookingStatus `json:"status"`
}

// FixedBookingFilter narrows template list queries.
type FixedBookingFilter struct {
	CoachID   string
	StudentID string
	Weekday   *int
	Status    *int
}
