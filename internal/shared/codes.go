package shared

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateCode produces a human-readable code of the form
// PREFIX-<base36 millisecond timestamp>-<3 base36 random chars>, upper-cased.
// Codes are generated once at creation time and stored verbatim; uniqueness
// is probabilistic and time-ordered, no collision detection is performed.
func GenerateCode(prefix string) string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	var suffix strings.Builder
	for range 3 {
		suffix.WriteByte(base36Alphabet[rand.Intn(len(base36Alphabet))])
	}
	return strings.ToUpper(fmt.Sprintf("%s-%s-%s", prefix, ts, suffix.String()))
}

// OrderNumber produces a purchase order number of the form
// PO-<decimal millisecond timestamp>.
func OrderNumber() string {
	return fmt.Sprintf("PO-%d", time.Now().UnixMilli())
}
