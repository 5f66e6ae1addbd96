//go:build unit

package builder

import (
	"time"

	dombooking "adslot-panel/internal/domain/booking"
	reqdto "adslot-panel/internal/handler/dto/request"
	"adslot-panel/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID             uuid.UUID
	Client         string
	StartDate      time.Time
	ContractedDays int
	PriceCents     int64
	DaysUsed       int
	Status         dombooking.Status
	Notes          string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:             uuid.New(),
		Client:         "cliente.uno",
		StartDate:      time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		ContractedDays: 5,
		PriceCents:     50000,
		DaysUsed:       0,
		Status:         dombooking.StatusActive,
		Notes:          "",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	client, err := dombooking.NewClientHandle(b.Client)
	if err != nil {
		return nil, err
	}
	price, err := dombooking.NewMoney(b.PriceCents)
	if err != nil {
		return nil, err
	}
	return dombooking.ReconstructBooking(
		b.ID, client, b.StartDate, b.ContractedDays, price, b.DaysUsed, b.Status, dombooking.NewNotes(b.Notes),
	)
}

// MustBuildDomain is for tests whose builder state is known valid.
func (b *BookingBuilder) MustBuildDomain() *dombooking.Booking {
	booking, err := b.BuildDomain()
	if err != nil {
		panic("builder produced an invalid booking: " + err.Error())
	}
	return booking
}

func (b *BookingBuilder) BuildRow() []string {
	return b.MustBuildDomain().ToRow()
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		Client:         b.Client,
		StartDate:      b.StartDate.Format(dombooking.DateLayout),
		ContractedDays: b.ContractedDays,
		Price:          mustMoney(b.PriceCents).Decimal(),
		Notes:          b.Notes,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:             b.ID,
		Client:         b.Client,
		StartDate:      b.StartDate.Format(dombooking.DateLayout),
		ContractedDays: b.ContractedDays,
		PriceCents:     b.PriceCents,
		DaysUsed:       b.DaysUsed,
		Status:         b.Status.String(),
		Notes:          b.Notes,
	}
}

func mustMoney(cents int64) dombooking.Money {
	m, err := dombooking.NewMoney(cents)
	if err != nil {
		panic("invalid cents in builder: " + err.Error())
	}
	return m
}
