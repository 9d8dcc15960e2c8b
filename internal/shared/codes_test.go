package shared

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateCodeShape(t *testing.T) {
	code := GenerateCode("PRD")
	require.NotEmpty(t, code)
	require.True(t, strings.HasPrefix(code, "PRD-"))
	require.Equal(t, code, strings.ToUpper(code))

	parts := strings.Split(code, "-")
	require.Len(t, parts, 3)
	require.Len(t, parts[2], 3)
}

func TestGenerateCodeLikelyUnique(t *testing.T) {
	// Uniqueness is probabilistic, not guaranteed. Over a batch of codes
	// with the same prefix at least some must differ.
	seen := make(map[string]struct{})
	for range 50 {
		seen[GenerateCode("SKU")] = struct{}{}
	}
	require.Greater(t, len(seen), 1)
}

func TestOrderNumber(t *testing.T) {
	number := OrderNumber()
	require.True(t, strings.HasPrefix(number, "PO-"))
	for _, r := range number[3:] {
		require.True(t, r >= '0' && r <= '9', "expected decimal timestamp, got %q", number)
	}
}
