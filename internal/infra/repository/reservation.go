package repository

import (
	"context"

	"meeting-room-api/internal/domain/reservation"
	"meeting-room-api/internal/infra"
	"meeting-room-api/internal/infra/db"
	"meeting-room-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationRepository struct {
	db db.Queryer
}

func NewReservationRepository(q db.Queryer) *ReservationRepository {
	return &ReservationRepository{db: q}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	query := `
		INSERT INTO reservations (id, room_id, date, start_time, end_time, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query,
		res.ID(),
		res.RoomID().Value(),
		pgconv.DateToPgtype(res.Date()),
		pgconv.TimeToPgtype(res.TimeSlot().Start()),
		pgconv.TimeToPgtype(res.TimeSlot().End()),
		res.UserID(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}

	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	query := `
		SELECT id, room_id, date, start_time, end_time, user_id, created_at, updated_at
		FROM reservations
		WHERE id = $1`

	var (
		resID     uuid.UUID
		roomIDRaw string
		date      pgtype.Date
		startTime pgtype.Timestamptz
		endTime   pgtype.Timestamptz
		userID    uuid.UUID
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx, query, id).Scan(
		&resID, &roomIDRaw, &date, &startTime, &endTime, &userID, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	roomID, err := reservation.NewRoomID(roomIDRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt room id in store", err)
	}

	return reservation.ReconstructReservation(
		resID,
		roomID,
		pgconv.DateFromPgtype(date),
		reservation.NewTimeSlot(pgconv.TimeFromPgtype(startTime), pgconv.TimeFromPgtype(endTime)),
		userID,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	query := `
		UPDATE reservations
		SET room_id = $2, date = $3, start_time = $4, end_time = $5, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		res.ID(),
		res.RoomID().Value(),
		pgconv.DateToPgtype(res.Date()),
		pgconv.TimeToPgtype(res.TimeSlot().Start()),
		pgconv.TimeToPgtype(res.TimeSlot().End()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	return nil
}

// ExistsOverlapping mirrors the exclusion constraint predicate: inclusive
// boundaries on both ends of the interval.
func (r *ReservationRepository) ExistsOverlapping(ctx context.Context, roomID reservation.RoomID, slot reservation.TimeSlot) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM reservations
			WHERE room_id = $1
			  AND start_time <= $3
			  AND end_time >= $2
		)`

	var exists bool
	err := r.db.QueryRow(ctx, query,
		roomID.Value(),
		pgconv.TimeToPgtype(slot.Start()),
		pgconv.TimeToPgtype(slot.End()),
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check overlapping reservations", err)
	}

	return exists, nil
}
