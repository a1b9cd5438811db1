package readstore

import (
	"context"
	"fmt"
	"strings"

	"meeting-room-api/internal/infra"
	"meeting-room-api/internal/infra/db"
	"meeting-room-api/internal/pkg/pgconv"
	"meeting-room-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationViewColumns = `
	r.id, r.room_id, r.date, r.start_time, r.end_time,
	u.id, u.name, u.email`

type ReservationReadStore struct {
	db db.Queryer
}

func NewReservationReadStore(q db.Queryer) *ReservationReadStore {
	return &ReservationReadStore{db: q}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	query := `
		SELECT` + reservationViewColumns + `
		FROM reservations r
		JOIN users u ON u.id = r.user_id
		WHERE r.id = $1`

	row := r.db.QueryRow(ctx, query, id)
	view, err := scanReservationView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return view, nil
}

// List always expands the owner's public fields via the users join, so the
// userName substring filter reuses the same query path with one extra
// predicate instead of a separate join-based query.
func (r *ReservationReadStore) List(ctx context.Context, filters queries.ReservationFilters) ([]*queries.ReservationView, error) {
	var (
		conds []string
		args  []any
	)

	addCond := func(expr string, value any) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf(expr, len(args)))
	}

	if filters.RoomID != nil {
		addCond("r.room_id = $%d", *filters.RoomID)
	}
	if filters.UserID != nil {
		addCond("u.id = $%d", *filters.UserID)
	}
	if filters.Date != nil {
		addCond("r.date = $%d", pgconv.DateToPgtype(*filters.Date))
	}
	if filters.HasUserName() {
		addCond("u.name ILIKE $%d", "%"+*filters.UserName+"%")
	}

	query := `
		SELECT` + reservationViewColumns + `
		FROM reservations r
		JOIN users u ON u.id = r.user_id`
	if len(conds) > 0 {
		query += "\n\t\tWHERE " + strings.Join(conds, " AND ")
	}
	query += "\n\t\tORDER BY r.start_time"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var result []*queries.ReservationView
	for rows.Next() {
		view, scanErr := scanReservationView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", scanErr)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservationView(row rowScanner) (*queries.ReservationView, error) {
	var (
		view      queries.ReservationView
		date      pgtype.Date
		startTime pgtype.Timestamptz
		endTime   pgtype.Timestamptz
	)

	err := row.Scan(
		&view.ID, &view.RoomID, &date, &startTime, &endTime,
		&view.User.ID, &view.User.Name, &view.User.Email,
	)
	if err != nil {
		return nil, err
	}

	view.Date = pgconv.DateFromPgtype(date)
	view.StartTime = pgconv.TimeFromPgtype(startTime)
	view.EndTime = pgconv.TimeFromPgtype(endTime)

	return &view, nil
}
