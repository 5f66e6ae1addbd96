//go:build unit

package booking_test

import (
	"testing"
	"time"

	"adslot-panel/internal/domain/booking"
	"adslot-panel/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func buildBooking(t *testing.T, client string, start time.Time, cents int64, mutate ...func(*builder.BookingBuilder)) *booking.Booking {
	t.Helper()
	bb := builder.NewBookingBuilder()
	bb.Client = client
	bb.StartDate = start
	bb.PriceCents = cents
	for _, m := range mutate {
		m(bb)
	}
	return bb.MustBuildDomain()
}

func TestSummarizeByMonth(t *testing.T) {
	bookings := []*booking.Booking{
		buildBooking(t, "a", time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), 10000),
		buildBooking(t, "b", time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), 20000),
		buildBooking(t, "c", time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC), 30000),
		buildBooking(t, "d", time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), 5000),
	}

	got := booking.SummarizeByMonth(bookings)

	expected := []struct {
		period string
		cents  int64
	}{
		{"2025-02", 30000},
		{"2025-01", 30000},
		{"2024-12", 5000},
	}

	if assert.Len(t, got, len(expected)) {
		for i, e := range expected {
			assert.Equal(t, e.period, got[i].Period)
			assert.Equal(t, e.cents, got[i].Total.Cents())
		}
	}
}

func TestSummarizeByYear(t *testing.T) {
	bookings := []*booking.Booking{
		buildBooking(t, "a", time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), 10000),
		buildBooking(t, "b", time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), 20000),
		buildBooking(t, "c", time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC), 30000),
	}

	got := booking.SummarizeByYear(bookings)

	if assert.Len(t, got, 2) {
		assert.Equal(t, "2025", got[0].Period)
		assert.Equal(t, int64(30000), got[0].Total.Cents())
		assert.Equal(t, "2024", got[1].Period)
		assert.Equal(t, int64(30000), got[1].Total.Cents())
	}
}

func TestSummarizeByClient(t *testing.T) {
	start := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	bookings := []*booking.Booking{
		buildBooking(t, "medio", start, 20000),
		buildBooking(t, "grande", start, 50000),
		buildBooking(t, "medio", start, 20000),
		buildBooking(t, "empate.b", start, 1000),
		buildBooking(t, "empate.a", start, 1000),
	}

	got := booking.SummarizeByClient(bookings)

	expected := []booking.ClientTotal{}
	for _, e := range []struct {
		client string
		cents  int64
	}{
		{"grande", 50000},
		{"medio", 40000},
		{"empate.a", 1000},
		{"empate.b", 1000},
	} {
		m, _ := booking.NewMoney(e.cents)
		expected = append(expected, booking.ClientTotal{Client: e.client, Total: m})
	}

	if diff := cmp.Diff(expected, got, cmp.Comparer(func(a, b booking.Money) bool {
		return a.Cents() == b.Cents()
	})); diff != "" {
		t.Errorf("client summary mismatch (-want +got):\n%s", diff)
	}
}

func TestSummariesWithNoBookings(t *testing.T) {
	assert.Empty(t, booking.SummarizeByMonth(nil))
	assert.Empty(t, booking.SummarizeByYear(nil))
	assert.Empty(t, booking.SummarizeByClient(nil))
	assert.Empty(t, booking.SummarizeByMonth([]*booking.Booking{}))
	assert.Empty(t, booking.SummarizeByClient([]*booking.Booking{}))
}

func TestCountByStatus(t *testing.T) {
	today := time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC)
	bookings := []*booking.Booking{
		buildBooking(t, "a", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), 100),
		buildBooking(t, "b", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), 100, func(bb *builder.BookingBuilder) {
			bb.Status = booking.StatusExpired
			bb.DaysUsed = 5
		}),
		// window long gone, stored status still Active
		buildBooking(t, "c", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 100),
	}

	counts := booking.CountByStatus(bookings, today)

	assert.Equal(t, booking.StatusCounts{Active: 1, Expired: 2, Total: 3}, counts)

	assert.Equal(t, booking.StatusCounts{}, booking.CountByStatus(nil, today))
}

func TestTotalRevenue(t *testing.T) {
	start := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	bookings := []*booking.Booking{
		buildBooking(t, "a", start, 10050),
		buildBooking(t, "b", start, 25000),
	}

	assert.Equal(t, int64(35050), booking.TotalRevenue(bookings).Cents())
	assert.Equal(t, int64(0), booking.TotalRevenue(nil).Cents())
}
