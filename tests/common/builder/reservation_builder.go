//go:build unit || e2e

package builder

import (
	"time"

	"meeting-room-api/internal/domain/reservation"
	reqdto "meeting-room-api/internal/handler/dto/request"
	"meeting-room-api/internal/pkg/clock"
	"meeting-room-api/internal/usecase/queries"

	"github.com/google/uuid"
)

// BaseTime is a fixed reference point so slot arithmetic in tests stays
// deterministic.
var BaseTime = time.Date(2030, 6, 15, 9, 0, 0, 0, time.UTC)

type ReservationBuilder struct {
	ID        uuid.UUID
	RoomID    string
	Date      time.Time
	StartTime time.Time
	EndTime   time.Time
	UserID    uuid.UUID
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:        uuid.New(),
		RoomID:    "room-a",
		Date:      BaseTime.Truncate(24 * time.Hour),
		StartTime: BaseTime.Add(time.Hour),  // 10:00
		EndTime:   BaseTime.Add(2 * time.Hour), // 11:00
		UserID:    uuid.New(),
	}
}

func (b *ReservationBuilder) BuildDomain(clk clock.Clock) (*reservation.Reservation, error) {
	roomID, err := reservation.NewRoomID(b.RoomID)
	if err != nil {
		return nil, err
	}

	slot := reservation.NewTimeSlot(b.StartTime, b.EndTime)
	return reservation.NewReservation(clk, roomID, b.Date, slot, b.UserID)
}

func (b *ReservationBuilder) BuildReconstructed() *reservation.Reservation {
	roomID, _ := reservation.NewRoomID(b.RoomID)
	slot := reservation.NewTimeSlot(b.StartTime, b.EndTime)
	return reservation.ReconstructReservation(b.ID, roomID, b.Date, slot, b.UserID, BaseTime, BaseTime)
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		RoomID:    b.RoomID,
		Date:      reqdto.NewDateOnly(b.Date),
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:        b.ID,
		RoomID:    b.RoomID,
		Date:      b.Date,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		User: queries.OwnerView{
			ID:    b.UserID,
			Name:  "Test User",
			Email: "test@example.com",
		},
	}
}

// Fluent builder methods
func (b *ReservationBuilder) WithRoomID(roomID string) *ReservationBuilder {
	b.RoomID = roomID
	return b
}

func (b *ReservationBuilder) WithSlot(start, end time.Time) *ReservationBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *ReservationBuilder) WithUserID(userID uuid.UUID) *ReservationBuilder {
	b.UserID = userID
	return b
}
