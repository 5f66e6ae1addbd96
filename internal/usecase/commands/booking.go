package commands

import (
	"context"

	"adslot-panel/internal/domain/booking"
	reqdto "adslot-panel/internal/handler/dto/request"
	"adslot-panel/internal/infra"
	"adslot-panel/internal/pkg/clock"
	"adslot-panel/internal/pkg/errs"
	"adslot-panel/internal/usecase/queries"
	"adslot-panel/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound    = errs.New("booking not found")
	ErrDomainValidation   = errs.New("domain validation error")
	ErrInvariantViolation = errs.New("booking invariant violation")
	ErrStoreReadFailed    = errs.New("record store read failed")
	ErrStoreWriteFailed   = errs.New("record store write failed")
)

type BookingCommands interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest) (*queries.BookingView, error)
	MarkUsageDay(ctx context.Context, id uuid.UUID) (*queries.BookingView, error)
	ForceExpire(ctx context.Context, id uuid.UUID) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	store shared.RecordStore
	clock clock.Clock
}

func NewBookingCommands(store shared.RecordStore, clock clock.Clock) BookingCommands {
	return &bookingCommandsImpl{store: store, clock: clock}
}

func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest) (*queries.BookingView, error) {
	entity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.store.Append(ctx, entity.ToRow()); err != nil {
		return nil, errs.Mark(err, ErrStoreWriteFailed)
	}

	return queries.NewBookingView(entity, c.clock.Now()), nil
}

// MarkUsageDay burns one contracted day. The row is re-resolved through
// the id column immediately before the write: row positions shift under
// concurrent appends, so they are never carried across requests.
func (c *bookingCommandsImpl) MarkUsageDay(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, entity, err := c.resolve(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := entity.IncrementUsage(c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvariantViolation)
	}

	if err := c.store.Update(ctx, row.Index, next.ToRow()); err != nil {
		return nil, errs.Mark(err, ErrStoreWriteFailed)
	}

	return queries.NewBookingView(next, c.clock.Now()), nil
}

// ForceExpire is idempotent: expiring an already-expired booking succeeds
// without issuing a write, so a manual resubmit after a transport error is
// always safe.
func (c *bookingCommandsImpl) ForceExpire(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, entity, err := c.resolve(ctx, id)
	if err != nil {
		return nil, err
	}

	if entity.Status() == booking.StatusExpired {
		return queries.NewBookingView(entity, c.clock.Now()), nil
	}

	next := entity.Expire()
	if err := c.store.Update(ctx, row.Index, next.ToRow()); err != nil {
		return nil, errs.Mark(err, ErrStoreWriteFailed)
	}

	return queries.NewBookingView(next, c.clock.Now()), nil
}

func (c *bookingCommandsImpl) resolve(ctx context.Context, id uuid.UUID) (shared.Row, *booking.Booking, error) {
	row, err := c.store.FindByID(ctx, id.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return shared.Row{}, nil, ErrBookingNotFound
		}
		return shared.Row{}, nil, errs.Mark(err, ErrStoreReadFailed)
	}

	entity, err := booking.FromRow(row.Cells)
	if err != nil {
		return shared.Row{}, nil, errs.Wrap(err, "stored row failed to parse")
	}

	return row, entity, nil
}
