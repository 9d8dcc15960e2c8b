package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestFormatUSD(t *testing.T) {
	out := FormatUSD(decimal.RequireFromString("44.98"))
	require.Contains(t, out, "$")
	require.Contains(t, out, "44.98")
}

func TestFormatUSDRoundsToCents(t *testing.T) {
	out := FormatUSD(decimal.RequireFromString("10.005"))
	require.Contains(t, out, "10.0")
}
