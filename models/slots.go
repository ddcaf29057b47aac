package models

// Slot is a fixed one-hour time window on a date, identified by its start
// time ("HH:00").
type Slot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// SlotAvailability is the resolver's final verdict for one slot.
type SlotAvailability struct {
	Slot
	Available bool `json:"available"`
}

// DayAvailability is the full availability answer for one (coach, date).
type DayAvailability struct {
	CoachID string             `json:"coachId"`
	Date    string             `json:"date"`
	Slots   []SlotAvailability `json:"slots"`

	// AllUnavailable distinguishes "every slot is taken or off" from "no
	// slots configured at all"; it drives a dedicated empty state upstream.
	AllUnavailable bool `json:"allUnavailable"`

	// Degraded is set when a collaborator read failed and the day fell back
	// to the venue-derived universe with every slot open.
	Degraded bool `json:"degraded,omitempty"`
}
