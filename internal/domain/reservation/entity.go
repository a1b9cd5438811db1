package reservation

import (
	"time"

	"meeting-room-api/internal/pkg/clock"

	"github.com/google/uuid"
)

type Reservation struct {
	id        uuid.UUID
	roomID    RoomID
	date      time.Time
	timeSlot  TimeSlot
	userID    uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

// NewReservation admits a candidate reservation: temporal checks run here,
// the room conflict check runs against the store in the usecase layer.
func NewReservation(clk clock.Clock, roomID RoomID, date time.Time, slot TimeSlot, userID uuid.UUID) (*Reservation, error) {
	if err := slot.ValidateAt(clk.Now()); err != nil {
		return nil, err
	}

	return &Reservation{
		id:       uuid.New(),
		roomID:   roomID,
		date:     date,
		timeSlot: slot,
		userID:   userID,
	}, nil
}

func ReconstructReservation(
	id uuid.UUID,
	roomID RoomID,
	date time.Time,
	slot TimeSlot,
	userID uuid.UUID,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		roomID:    roomID,
		date:      date,
		timeSlot:  slot,
		userID:    userID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return r.userID == userID
}

func (r *Reservation) ConflictsWith(roomID RoomID, slot TimeSlot) bool {
	return r.roomID == roomID && r.timeSlot.Overlaps(slot)
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) RoomID() RoomID       { return r.roomID }
func (r *Reservation) Date() time.Time      { return r.date }
func (r *Reservation) TimeSlot() TimeSlot   { return r.timeSlot }
func (r *Reservation) UserID() uuid.UUID    { return r.userID }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
