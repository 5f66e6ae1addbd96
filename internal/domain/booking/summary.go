package booking

import (
	"fmt"
	"sort"
	"time"
)

// PeriodTotal is one line of a revenue summary: a calendar month or year
// and the summed price of the bookings that started in it.
type PeriodTotal struct {
	Period string
	Total  Money
}

// ClientTotal is the lifetime spend of one client.
type ClientTotal struct {
	Client string
	Total  Money
}

type StatusCounts struct {
	Active  int
	Expired int
	Total   int
}

// SummarizeByMonth groups bookings by the calendar month of their start
// date and sums prices, newest month first. Periods render as "2024-01"
// so lexical order matches chronological order.
func SummarizeByMonth(bookings []*Booking) []PeriodTotal {
	return summarizeByPeriod(bookings, func(t time.Time) string {
		return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
	})
}

// SummarizeByYear groups by calendar year, newest first.
func SummarizeByYear(bookings []*Booking) []PeriodTotal {
	return summarizeByPeriod(bookings, func(t time.Time) string {
		return fmt.Sprintf("%04d", t.Year())
	})
}

func summarizeByPeriod(bookings []*Booking, key func(time.Time) string) []PeriodTotal {
	totals := make(map[string]Money)
	for _, b := range bookings {
		k := key(b.StartDate())
		totals[k] = totals[k].Add(b.Price())
	}

	result := make([]PeriodTotal, 0, len(totals))
	for period, total := range totals {
		result = append(result, PeriodTotal{Period: period, Total: total})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Period > result[j].Period
	})
	return result
}

// SummarizeByClient sums prices per client handle, biggest spender first.
// Ties break on the handle so the order is deterministic.
func SummarizeByClient(bookings []*Booking) []ClientTotal {
	totals := make(map[string]Money)
	for _, b := range bookings {
		k := b.Client().String()
		totals[k] = totals[k].Add(b.Price())
	}

	result := make([]ClientTotal, 0, len(totals))
	for client, total := range totals {
		result = append(result, ClientTotal{Client: client, Total: total})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Total.Cents() != result[j].Total.Cents() {
			return result[i].Total.Cents() > result[j].Total.Cents()
		}
		return result[i].Client < result[j].Client
	})
	return result
}

// CountByStatus tallies effective statuses as of today.
func CountByStatus(bookings []*Booking, today time.Time) StatusCounts {
	counts := StatusCounts{Total: len(bookings)}
	for _, b := range bookings {
		if b.DeriveStatus(today) == StatusExpired {
			counts.Expired++
		} else {
			counts.Active++
		}
	}
	return counts
}

// TotalRevenue sums the price of every booking regardless of status.
func TotalRevenue(bookings []*Booking) Money {
	var total Money
	for _, b := range bookings {
		total = total.Add(b.Price())
	}
	return total
}
