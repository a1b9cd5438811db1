package reservation

import (
	"errors"
	"strings"
	"time"
)

// MinDuration is the shortest bookable slot.
const MinDuration = time.Hour

var (
	ErrPastStartTime    = errors.New("start time cannot be in the past")
	ErrDurationTooShort = errors.New("minimum reservation duration is 1 hour")
	ErrInvalidRoomID    = errors.New("room id must not be empty")
)

type RoomID struct {
	value string
}

// Rooms are free-text identifiers; there is no Room entity.
func NewRoomID(s string) (RoomID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RoomID{}, ErrInvalidRoomID
	}
	return RoomID{value: s}, nil
}

func (r RoomID) Value() string {
	return r.value
}

type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) TimeSlot {
	return TimeSlot{start: start, end: end}
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// ValidateAt applies the admission checks in order; the first failure wins.
// A slot with end before start falls out as ErrDurationTooShort, matching
// the duration arithmetic of the original rule.
func (ts TimeSlot) ValidateAt(now time.Time) error {
	if ts.start.Before(now) {
		return ErrPastStartTime
	}
	if ts.Duration() < MinDuration {
		return ErrDurationTooShort
	}
	return nil
}

// Overlaps uses inclusive boundaries on both ends: slots that merely touch
// (one ends exactly when the other starts) count as overlapping. Deliberate
// policy; see the exclusion constraint in migrations which uses '[]' bounds.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return !ts.start.After(other.end) && !ts.end.Before(other.start)
}
