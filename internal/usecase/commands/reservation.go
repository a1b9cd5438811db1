package commands

import (
	"context"
	"errors"
	"log/slog"

	"meeting-room-api/internal/domain/reservation"
	reqdto "meeting-room-api/internal/handler/dto/request"
	"meeting-room-api/internal/infra"
	"meeting-room-api/internal/pkg/clock"
	"meeting-room-api/internal/pkg/errs"
	"meeting-room-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	Update(ctx context.Context, res *reservation.Reservation) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ExistsOverlapping reports whether any reservation for the room
	// overlaps the slot under inclusive boundaries.
	ExistsOverlapping(ctx context.Context, roomID reservation.RoomID, slot reservation.TimeSlot) (bool, error)
}

type ReservationCommands interface {
	Create(ctx context.Context, req reqdto.CreateReservationRequest, userID uuid.UUID) (*queries.ReservationView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateReservationRequest, userID uuid.UUID) (*queries.ReservationView, error)
	Remove(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}

type reservationCommandsImpl struct {
	repo      ReservationRepository
	readStore queries.ReservationReadStore
	clock     clock.Clock
}

func NewReservationCommands(repo ReservationRepository, readStore queries.ReservationReadStore, clk clock.Clock) ReservationCommands {
	return &reservationCommandsImpl{
		repo:      repo,
		readStore: readStore,
		clock:     clk,
	}
}

// Create admits a candidate reservation. Checks run fail-fast: past start,
// minimum duration, then the room overlap query. The overlap query is only
// an early rejection; the exclusion constraint on reservations is the
// authoritative guard against concurrent creates.
func (r *reservationCommandsImpl) Create(ctx context.Context, req reqdto.CreateReservationRequest, userID uuid.UUID) (*queries.ReservationView, error) {
	roomID, err := reservation.NewRoomID(req.RoomID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	slot := reservation.NewTimeSlot(req.StartTime, req.EndTime)
	entity, err := reservation.NewReservation(r.clock, roomID, req.Date.Time, slot, userID)
	if err != nil {
		return nil, markAdmissionError(err)
	}

	conflicting, err := r.repo.ExistsOverlapping(ctx, roomID, slot)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if conflicting {
		return nil, errs.ErrRoomConflict
	}

	if err := r.repo.Create(ctx, entity); err != nil {
		// Two requests can pass the overlap query before either commits;
		// the exclusion constraint catches the loser here.
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, errs.ErrRoomConflict)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return r.fetchView(ctx, entity.ID())
}

// Update applies a partial overwrite after the ownership check. The
// temporal and overlap rules are intentionally not re-run here; only the
// storage constraint still rejects an overlapping new interval.
func (r *reservationCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateReservationRequest, userID uuid.UUID) (*queries.ReservationView, error) {
	existing, err := r.findOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	updated, err := applyChanges(existing, req)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := r.repo.Update(ctx, updated); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, errs.ErrRoomConflict)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return r.fetchView(ctx, id)
}

func (r *reservationCommandsImpl) Remove(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	if _, err := r.findOwned(ctx, id, userID); err != nil {
		return err
	}

	if err := r.repo.Delete(ctx, id); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slog.Info("reservation removed", "reservation_id", id, "user_id", userID)
	return nil
}

func (r *reservationCommandsImpl) findOwned(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*reservation.Reservation, error) {
	entity, err := r.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !entity.IsOwnedBy(userID) {
		return nil, errs.ErrNotReservationOwner
	}

	return entity, nil
}

// Read-after-write: return the display-safe projection with the owner's
// public fields expanded.
func (r *reservationCommandsImpl) fetchView(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	view, err := r.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func applyChanges(existing *reservation.Reservation, req reqdto.UpdateReservationRequest) (*reservation.Reservation, error) {
	roomID := existing.RoomID()
	if req.RoomID != nil {
		newRoomID, err := reservation.NewRoomID(*req.RoomID)
		if err != nil {
			return nil, err
		}
		roomID = newRoomID
	}

	date := existing.Date()
	if req.Date != nil {
		date = req.Date.Time
	}

	start := existing.TimeSlot().Start()
	if req.StartTime != nil {
		start = *req.StartTime
	}

	end := existing.TimeSlot().End()
	if req.EndTime != nil {
		end = *req.EndTime
	}

	return reservation.ReconstructReservation(
		existing.ID(),
		roomID,
		date,
		reservation.NewTimeSlot(start, end),
		existing.UserID(),
		existing.CreatedAt(),
		existing.UpdatedAt(),
	), nil
}

func markAdmissionError(err error) error {
	switch {
	case errors.Is(err, reservation.ErrPastStartTime):
		return errs.Mark(err, errs.ErrPastStartTime)
	case errors.Is(err, reservation.ErrDurationTooShort):
		return errs.Mark(err, errs.ErrDurationTooShort)
	default:
		return errs.Mark(err, errs.ErrDomainValidation)
	}
}
