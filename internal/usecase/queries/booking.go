package queries

import (
	"context"
	"log/slog"
	"time"

	"adslot-panel/internal/domain/booking"
	"adslot-panel/internal/infra"
	"adslot-panel/internal/pkg/clock"
	"adslot-panel/internal/pkg/errs"
	"adslot-panel/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrStoreReadFailed = errs.New("record store read failed")
)

// Read models (DTO for read side)
type BookingView struct {
	ID             uuid.UUID `json:"id"`
	Client         string    `json:"client"`
	StartDate      string    `json:"start_date"`
	ContractedDays int       `json:"contracted_days"`
	PriceCents     int64     `json:"price_cents"`
	DaysUsed       int       `json:"days_used"`
	Status         string    `json:"status"`
	Notes          string    `json:"notes,omitempty"`
}

// ParseFailure reports one stored row that could not be mapped to a
// booking. Bad rows are skipped, never fatal: one malformed date used to
// take the whole dashboard down.
type ParseFailure struct {
	RowIndex int    `json:"row_index"`
	Reason   string `json:"reason"`
}

type BookingList struct {
	Bookings      []*BookingView `json:"bookings"`
	ParseFailures []ParseFailure `json:"parse_failures,omitempty"`
}

type DashboardView struct {
	Active       int   `json:"active"`
	Expired      int   `json:"expired"`
	Total        int   `json:"total"`
	RevenueCents int64 `json:"revenue_cents"`
}

type PeriodSummaryView struct {
	Period     string `json:"period"`
	TotalCents int64  `json:"total_cents"`
}

type ClientSummaryView struct {
	Client     string `json:"client"`
	TotalCents int64  `json:"total_cents"`
}

// ListFilter mirrors the sidebar filters of the old dashboards.
type ListFilter struct {
	Status *booking.Status
	Month  *int
	Year   *int
}

type BookingQueries interface {
	List(ctx context.Context, filter ListFilter) (*BookingList, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	Dashboard(ctx context.Context) (*DashboardView, error)
	MonthlySummary(ctx context.Context) ([]PeriodSummaryView, error)
	YearlySummary(ctx context.Context) ([]PeriodSummaryView, error)
	ClientSummary(ctx context.Context) ([]ClientSummaryView, error)
}

type bookingQueriesImpl struct {
	store shared.RecordStore
	clock clock.Clock
}

func NewBookingQueries(store shared.RecordStore, clock clock.Clock) BookingQueries {
	return &bookingQueriesImpl{store: store, clock: clock}
}

func (q *bookingQueriesImpl) List(ctx context.Context, filter ListFilter) (*BookingList, error) {
	bookings, failures, err := q.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	today := q.clock.Now()
	views := make([]*BookingView, 0, len(bookings))
	for _, b := range bookings {
		if !matchesFilter(b, filter, today) {
			continue
		}
		views = append(views, NewBookingView(b, today))
	}

	return &BookingList{Bookings: views, ParseFailures: failures}, nil
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	row, err := q.store.FindByID(ctx, id.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrStoreReadFailed)
	}

	b, err := booking.FromRow(row.Cells)
	if err != nil {
		return nil, errs.Wrap(err, "stored row failed to parse")
	}

	return NewBookingView(b, q.clock.Now()), nil
}

func (q *bookingQueriesImpl) Dashboard(ctx context.Context) (*DashboardView, error) {
	bookings, _, err := q.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	counts := booking.CountByStatus(bookings, q.clock.Now())
	return &DashboardView{
		Active:       counts.Active,
		Expired:      counts.Expired,
		Total:        counts.Total,
		RevenueCents: booking.TotalRevenue(bookings).Cents(),
	}, nil
}

func (q *bookingQueriesImpl) MonthlySummary(ctx context.Context) ([]PeriodSummaryView, error) {
	bookings, _, err := q.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	return toPeriodViews(booking.SummarizeByMonth(bookings)), nil
}

func (q *bookingQueriesImpl) YearlySummary(ctx context.Context) ([]PeriodSummaryView, error) {
	bookings, _, err := q.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	return toPeriodViews(booking.SummarizeByYear(bookings)), nil
}

func (q *bookingQueriesImpl) ClientSummary(ctx context.Context) ([]ClientSummaryView, error) {
	bookings, _, err := q.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	totals := booking.SummarizeByClient(bookings)
	views := make([]ClientSummaryView, len(totals))
	for i, t := range totals {
		views[i] = ClientSummaryView{Client: t.Client, TotalCents: t.Total.Cents()}
	}
	return views, nil
}

func (q *bookingQueriesImpl) loadAll(ctx context.Context) ([]*booking.Booking, []ParseFailure, error) {
	rows, err := q.store.ReadAll(ctx)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrStoreReadFailed)
	}

	bookings := make([]*booking.Booking, 0, len(rows))
	var failures []ParseFailure
	for _, row := range rows {
		b, parseErr := booking.FromRow(row.Cells)
		if parseErr != nil {
			slog.Warn("skipping unparseable row", "row_index", row.Index, "error", parseErr.Error())
			failures = append(failures, ParseFailure{RowIndex: row.Index, Reason: parseErr.Error()})
			continue
		}
		bookings = append(bookings, b)
	}
	return bookings, failures, nil
}

// NewBookingView renders a booking with its status derived as of today,
// so a stale stored "Active" past its window reads as Expired.
func NewBookingView(b *booking.Booking, today time.Time) *BookingView {
	return &BookingView{
		ID:             b.ID(),
		Client:         b.Client().String(),
		StartDate:      b.StartDate().Format(booking.DateLayout),
		ContractedDays: b.ContractedDays(),
		PriceCents:     b.Price().Cents(),
		DaysUsed:       b.DaysUsed(),
		Status:         b.DeriveStatus(today).String(),
		Notes:          b.Notes().String(),
	}
}

func matchesFilter(b *booking.Booking, filter ListFilter, today time.Time) bool {
	if filter.Status != nil && b.DeriveStatus(today) != *filter.Status {
		return false
	}
	if filter.Month != nil && int(b.StartDate().Month()) != *filter.Month {
		return false
	}
	if filter.Year != nil && b.StartDate().Year() != *filter.Year {
		return false
	}
	return true
}

func toPeriodViews(totals []booking.PeriodTotal) []PeriodSummaryView {
	views := make([]PeriodSummaryView, len(totals))
	for i, t := range totals {
		views[i] = PeriodSummaryView{Period: t.Period, TotalCents: t.Total.Cents()}
	}
	return views
}
