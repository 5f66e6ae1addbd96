//go:build unit

package booking_test

import (
	"testing"

	"adslot-panel/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientHandle(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
		errIs    error
	}{
		{name: "plain handle", input: "cliente.uno", expected: "cliente.uno"},
		{name: "leading at-sign stripped", input: "@cliente.uno", expected: "cliente.uno"},
		{name: "surrounding whitespace trimmed", input: "  @cliente  ", expected: "cliente"},
		{name: "empty", input: "", errIs: booking.ErrEmptyClient},
		{name: "whitespace only", input: "   ", errIs: booking.ErrEmptyClient},
		{name: "bare at-sign", input: "@", errIs: booking.ErrEmptyClient},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h, err := booking.NewClientHandle(c.input)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.expected, h.String())
		})
	}
}

func TestParseMoney(t *testing.T) {
	cases := []struct {
		name          string
		input         string
		expectedCents int64
		wantErr       bool
	}{
		{name: "whole units", input: "500", expectedCents: 50000},
		{name: "one fractional digit", input: "500.5", expectedCents: 50050},
		{name: "two fractional digits", input: "500.25", expectedCents: 50025},
		{name: "zero", input: "0", expectedCents: 0},
		{name: "currency sign stripped", input: "$1200", expectedCents: 120000},
		{name: "whitespace trimmed", input: " 80.00 ", expectedCents: 8000},
		{name: "negative", input: "-500", wantErr: true},
		{name: "negative below one unit", input: "-0.50", wantErr: true},
		{name: "too many fractional digits", input: "1.234", wantErr: true},
		{name: "not a number", input: "quinientos", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m, err := booking.ParseMoney(c.input)
			if c.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.expectedCents, m.Cents())
		})
	}
}

func TestMoneyDecimal(t *testing.T) {
	cases := []struct {
		cents    int64
		expected string
	}{
		{cents: 50000, expected: "500.00"},
		{cents: 50050, expected: "500.50"},
		{cents: 7, expected: "0.07"},
		{cents: 0, expected: "0.00"},
	}

	for _, c := range cases {
		m, err := booking.NewMoney(c.cents)
		require.NoError(t, err)
		assert.Equal(t, c.expected, m.Decimal())
	}
}

func TestNewMoneyRejectsNegative(t *testing.T) {
	_, err := booking.NewMoney(-1)
	require.ErrorIs(t, err, booking.ErrNegativePrice)
}

func TestNewStatus(t *testing.T) {
	cases := []struct {
		input    string
		expected booking.Status
		wantErr  bool
	}{
		{input: "Active", expected: booking.StatusActive},
		{input: "Expired", expected: booking.StatusExpired},
		{input: "Activo", expected: booking.StatusActive},
		{input: "Vencido", expected: booking.StatusExpired},
		{input: "active", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			s, err := booking.NewStatus(c.input)
			if c.wantErr {
				require.ErrorIs(t, err, booking.ErrInvalidStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.expected, s)
		})
	}
}

func TestNotes(t *testing.T) {
	assert.Equal(t, "paga por transferencia", booking.NewNotes("  paga por transferencia ").String())
	assert.True(t, booking.NewNotes("   ").IsEmpty())
	assert.False(t, booking.NewNotes("x").IsEmpty())
}
