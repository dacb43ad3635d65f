package money

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		amount int
		symbol string
		want   string
	}{
		{name: "zero", amount: 0, symbol: DefaultSymbol, want: "0 ₽"},
		{name: "three digits", amount: 999, symbol: DefaultSymbol, want: "999 ₽"},
		{name: "thousands", amount: 2500, symbol: DefaultSymbol, want: "2 500 ₽"},
		{name: "exact group", amount: 100000, symbol: DefaultSymbol, want: "100 000 ₽"},
		{name: "millions", amount: 1234567, symbol: "$", want: "1 234 567 $"},
		{name: "negative", amount: -4200, symbol: DefaultSymbol, want: "-4 200 ₽"},
		{name: "no symbol", amount: 5800, symbol: "", want: "5 800"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Format(tc.amount, tc.symbol))
		})
	}
}

func TestFormatMinInt(t *testing.T) {
	t.Parallel()

	got := Format(math.MinInt, "")
	require.True(t, strings.HasPrefix(got, "-"), got)
	require.Equal(t, 1, strings.Count(got, "-"), got)
	require.NotContains(t, got, "- ")

	digits := strings.ReplaceAll(strings.TrimPrefix(got, "-"), " ", "")
	require.Equal(t, strings.TrimPrefix(strconv.Itoa(math.MinInt), "-"), digits)
}
