package booking

import (
	"fmt"
	"strconv"
	"strings"

	"adslot-panel/internal/pkg/errs"
)

// ClientHandle is the Instagram handle the slot was sold to. Not unique:
// the same client can hold several bookings, which is why updates key off
// the booking id and never off the handle.
type ClientHandle struct {
	value string
}

func NewClientHandle(value string) (ClientHandle, error) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(value), "@"))
	if trimmed == "" {
		return ClientHandle{}, ErrEmptyClient
	}
	return ClientHandle{value: trimmed}, nil
}

func (h ClientHandle) String() string {
	return h.value
}

// Money holds an amount in cents. The sheet stores a decimal string; the
// integer representation avoids the float drift the old dashboards had.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

// ParseMoney accepts the decimal cell format ("500", "500.5", "500.00").
func ParseMoney(s string) (Money, error) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if trimmed == "" || strings.HasPrefix(trimmed, "-") {
		return Money{}, ErrNegativePrice
	}

	whole, frac, _ := strings.Cut(trimmed, ".")
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return Money{}, errs.Wrap(err, fmt.Sprintf("invalid price %q", s))
	}

	var cents int64
	switch len(frac) {
	case 0:
	case 1:
		cents, err = strconv.ParseInt(frac, 10, 64)
		cents *= 10
	case 2:
		cents, err = strconv.ParseInt(frac, 10, 64)
	default:
		return Money{}, errs.New(fmt.Sprintf("invalid price precision %q", s))
	}
	if err != nil {
		return Money{}, errs.Wrap(err, fmt.Sprintf("invalid price %q", s))
	}

	if units < 0 {
		return Money{}, ErrNegativePrice
	}
	return NewMoney(units*100 + cents)
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Decimal renders the cell format written back to the store.
func (m Money) Decimal() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}

type Notes struct {
	value string
}

func NewNotes(value string) Notes {
	return Notes{value: strings.TrimSpace(value)}
}

func (n Notes) String() string {
	return n.value
}

func (n Notes) IsEmpty() bool {
	return n.value == ""
}
