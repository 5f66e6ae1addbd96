package booking

import (
	"time"

	"adslot-panel/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyClient      = errs.New("client handle cannot be empty")
	ErrInvalidDays      = errs.New("contracted days must be positive")
	ErrNegativePrice    = errs.New("price cannot be negative")
	ErrUsageOverflow    = errs.New("days used cannot exceed contracted days")
	ErrAlreadyExpired   = errs.New("booking is already expired")
	ErrInvalidStatus    = errs.New("invalid booking status")
	ErrInvalidStartDate = errs.New("invalid start date")
)

// Booking is one advertising-slot contract: a client handle, a start date,
// a number of contracted days and a price. Status is derivable from the
// stored fields; Expired is terminal.
type Booking struct {
	id             uuid.UUID
	client         ClientHandle
	startDate      time.Time
	contractedDays int
	price          Money
	daysUsed       int
	status         Status
	notes          Notes
}

func NewBooking(client ClientHandle, startDate time.Time, contractedDays int, price Money, notes Notes) (*Booking, error) {
	if contractedDays <= 0 {
		return nil, ErrInvalidDays
	}
	if startDate.IsZero() {
		return nil, ErrInvalidStartDate
	}

	return &Booking{
		id:             uuid.New(),
		client:         client,
		startDate:      truncateToDay(startDate),
		contractedDays: contractedDays,
		price:          price,
		daysUsed:       0,
		status:         StatusActive,
		notes:          notes,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	client ClientHandle,
	startDate time.Time,
	contractedDays int,
	price Money,
	daysUsed int,
	status Status,
	notes Notes,
) (*Booking, error) {
	if contractedDays <= 0 {
		return nil, ErrInvalidDays
	}
	if daysUsed < 0 || daysUsed > contractedDays {
		return nil, ErrUsageOverflow
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	return &Booking{
		id:             id,
		client:         client,
		startDate:      truncateToDay(startDate),
		contractedDays: contractedDays,
		price:          price,
		daysUsed:       daysUsed,
		status:         status,
		notes:          notes,
	}, nil
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) Client() ClientHandle { return b.client }
func (b *Booking) StartDate() time.Time { return b.startDate }
func (b *Booking) ContractedDays() int  { return b.contractedDays }
func (b *Booking) Price() Money         { return b.price }
func (b *Booking) DaysUsed() int        { return b.daysUsed }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) Notes() Notes         { return b.notes }

// DeriveStatus computes the effective status from the stored fields.
// A booking expires when its contracted days are used up or when the
// contracted window has passed on the calendar; a stored Expired never
// returns to Active.
func (b *Booking) DeriveStatus(today time.Time) Status {
	if b.status == StatusExpired {
		return StatusExpired
	}
	if b.daysUsed >= b.contractedDays {
		return StatusExpired
	}
	endDate := b.startDate.AddDate(0, 0, b.contractedDays)
	if endDate.Before(truncateToDay(today)) {
		return StatusExpired
	}
	return StatusActive
}

// IncrementUsage returns a copy with one more day used, clamped at the
// contracted total, and the status re-derived. Incrementing an expired
// booking is a logic error.
func (b *Booking) IncrementUsage(today time.Time) (*Booking, error) {
	if b.DeriveStatus(today) == StatusExpired {
		return nil, ErrAlreadyExpired
	}

	next := *b
	next.daysUsed++
	if next.daysUsed >= next.contractedDays {
		next.daysUsed = next.contractedDays
		next.status = StatusExpired
	} else {
		next.status = next.DeriveStatus(today)
	}
	return &next, nil
}

// Expire returns a copy marked Expired. Expiring an already-expired
// booking yields an identical copy, no error.
func (b *Booking) Expire() *Booking {
	next := *b
	next.status = StatusExpired
	return &next
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
