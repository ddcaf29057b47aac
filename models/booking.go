package models

import "time"

// BookingStatus is the lifecycle state of a one-off booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingRejected  BookingStatus = "rejected"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Terminal reports whether no further transition is permitted from s.
func (s BookingStatus) Terminal() bool {
	switch s {
	case BookingRejected, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Blocking reports whether a booking in state s occupies its slot for
// availability purposes.
func (s BookingStatus) Blocking() bool {
	return s == BookingPending || s == BookingConfirmed
}

// BlockingStatuses are the states that hold a slot (pending review or
// confirmed). Used in availability queries and the double-booking index.
var BlockingStatuses = []BookingStatus{BookingPending, BookingConfirmed}

// Attendee is a named participant on a booking, distinct from the account
// that placed it.
type Attendee struct {
	Name string `bson:"name" json:"name"`
}

// Booking is a concrete dated lesson reservation. StartTime and EndTime are
// "15:04" and always exactly one hour apart.
type Booking struct {
	ID        string        `bson:"id" json:"id"`
	CoachID   string        `bson:"coachId" json:"coachId"`
	StudentID string        `bson:"studentId" json:"studentId"`
	VenueID   string        `bson:"venueId" json:"venueId"`
	Date      string        `bson:"date" json:"date"` // "2006-01-02"
	StartTime string        `bson:"startTime" json:"startTime"`
	EndTime   string        `bson:"endTime" json:"endTime"`
	Status    BookingStatus `bson:"status" json:"status"`

	Students     []Attendee `bson:"students,omitempty" json:"students,omitempty"`
	StudentNote  string     `bson:"studentNote,omitempty" json:"studentNote,omitempty"`
	RejectReason string     `bson:"rejectReason,omitempty" json:"rejectReason,omitempty"`
	Feedback     string     `bson:"feedback,omitempty" json:"feedback,omitempty"`
	Photos       []string   `bson:"photos,omitempty" json:"photos,omitempty"` // storage references

	// FixedBookingID is set when this booking was promoted from a recurring
	// template; it marks the occurrence as already persisted for its date.
	FixedBookingID string `bson:"fixedBookingId,omitempty" json:"fixedBookingId,omitempty"`

	// Display-only enrichment, never persisted.
	StudentName string `bson:"-" json:"studentName,omitempty"`
	CoachName   string `bson:"-" json:"coachName,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// StartInstant combines Date and StartTime into a wall-clock instant in loc.
func (b *Booking) StartInstant(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", b.Date+" "+b.StartTime, loc)
}

// BookingFilter narrows booking list queries. A nil/empty field means "any".
type BookingFilter struct {
	CoachID   string
	StudentID string
	VenueID   string
	Date      string
	Statuses  []BookingStatus
}
