package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"adslot-panel/internal/pkg/errs"

	"github.com/google/uuid"
)

// Record-store row layout, fixed column order. The first five columns are
// the historical sheet layout; days_used, notes and id were appended later
// so old rows stay readable in place.
const (
	ColClient = iota
	ColStartDate
	ColContractedDays
	ColPrice
	ColStatus
	ColDaysUsed
	ColNotes
	ColID

	RowWidth = 8
)

// DateLayout is the day-first cell format the sheets have always used.
const DateLayout = "02/01/2006"

var ErrRowTooShort = errs.New("row has too few columns")

// FromRow parses one stored row into a Booking. Rows missing the trailing
// days_used/notes/id columns still parse (zero usage, empty notes, nil id);
// a nil id means the row predates this service and cannot be targeted by
// update operations.
func FromRow(cells []string) (*Booking, error) {
	if len(cells) <= ColStatus {
		return nil, ErrRowTooShort
	}

	client, err := NewClientHandle(cells[ColClient])
	if err != nil {
		return nil, err
	}

	startDate, err := time.Parse(DateLayout, strings.TrimSpace(cells[ColStartDate]))
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, fmt.Sprintf("invalid start date %q", cells[ColStartDate])), ErrInvalidStartDate)
	}

	contractedDays, err := strconv.Atoi(strings.TrimSpace(cells[ColContractedDays]))
	if err != nil || contractedDays <= 0 {
		return nil, ErrInvalidDays
	}

	price, err := ParseMoney(cells[ColPrice])
	if err != nil {
		return nil, err
	}

	status, err := NewStatus(strings.TrimSpace(cells[ColStatus]))
	if err != nil {
		return nil, err
	}

	daysUsed := 0
	if len(cells) > ColDaysUsed && strings.TrimSpace(cells[ColDaysUsed]) != "" {
		daysUsed, err = strconv.Atoi(strings.TrimSpace(cells[ColDaysUsed]))
		if err != nil || daysUsed < 0 || daysUsed > contractedDays {
			return nil, ErrUsageOverflow
		}
	}

	notes := Notes{}
	if len(cells) > ColNotes {
		notes = NewNotes(cells[ColNotes])
	}

	id := uuid.Nil
	if len(cells) > ColID && strings.TrimSpace(cells[ColID]) != "" {
		id, err = uuid.Parse(strings.TrimSpace(cells[ColID]))
		if err != nil {
			return nil, errs.Wrap(err, "invalid booking id cell")
		}
	}

	return ReconstructBooking(id, client, startDate, contractedDays, price, daysUsed, status, notes)
}

// ToRow renders a Booking back into the stored cell layout.
func (b *Booking) ToRow() []string {
	cells := make([]string, RowWidth)
	cells[ColClient] = b.client.String()
	cells[ColStartDate] = b.startDate.Format(DateLayout)
	cells[ColContractedDays] = strconv.Itoa(b.contractedDays)
	cells[ColPrice] = b.price.Decimal()
	cells[ColStatus] = b.status.String()
	cells[ColDaysUsed] = strconv.Itoa(b.daysUsed)
	cells[ColNotes] = b.notes.String()
	cells[ColID] = b.id.String()
	return cells
}
