package request

import (
	"strings"
	"time"

	"adslot-panel/internal/domain/booking"
)

type CreateBookingRequest struct {
	Client         string `json:"client" binding:"required"`
	StartDate      string `json:"start_date" binding:"required"`
	ContractedDays int    `json:"contracted_days" binding:"required,gt=0"`
	Price          string `json:"price" binding:"required"`
	Notes          string `json:"notes,omitempty"`
}

// ToDomain builds the entity; field errors surface as the domain's
// validation sentinels.
func (r CreateBookingRequest) ToDomain() (*booking.Booking, error) {
	client, err := booking.NewClientHandle(r.Client)
	if err != nil {
		return nil, err
	}

	startDate, err := time.Parse(booking.DateLayout, strings.TrimSpace(r.StartDate))
	if err != nil {
		return nil, booking.ErrInvalidStartDate
	}

	price, err := booking.ParseMoney(r.Price)
	if err != nil {
		return nil, err
	}

	return booking.NewBooking(client, startDate, r.ContractedDays, price, booking.NewNotes(r.Notes))
}
