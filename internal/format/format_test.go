package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "₱0.00"},
		{2.75, "₱2.75"},
		{150, "₱150.00"},
		{1234.5, "₱1,234.50"},
		{1000000, "₱1,000,000.00"},
		{999.999, "₱1,000.00"},
		{-45.25, "-₱45.25"},
		{-1234.5, "-₱1,234.50"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Currency(tc.in), "Currency(%v)", tc.in)
	}
}

func TestPercent(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.0%"},
		{72.5, "72.5%"},
		{27.5, "27.5%"},
		{33.333, "33.3%"},
		{100, "100.0%"},
		{-5.55, "-5.5%"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Percent(tc.in), "Percent(%v)", tc.in)
	}
}
