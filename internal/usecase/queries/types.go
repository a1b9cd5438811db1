package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

// OwnerView is the public projection of a reservation's owner.
// The password hash never reaches this layer.
type OwnerView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type ReservationView struct {
	ID        uuid.UUID `json:"id"`
	RoomID    string    `json:"room_id"`
	Date      time.Time `json:"date"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	User      OwnerView `json:"user"`
}

type PublicUserView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// ReservationFilters: nil fields are not applied. UserName is a
// case-insensitive substring match on the owner's display name.
type ReservationFilters struct {
	Date     *time.Time
	RoomID   *string
	UserID   *uuid.UUID
	UserName *string
}

func (f ReservationFilters) HasUserName() bool {
	return f.UserName != nil && *f.UserName != ""
}
