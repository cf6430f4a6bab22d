// Package format contains the display rules used by the trade tables.
// Every function is pure so templates and JSON handlers render the same text.
package format

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// UnknownSize is shown when a trade size cannot be read.
	UnknownSize = "Unknown"
	// NoCommitteeData replaces an empty committee list.
	NoCommitteeData = "No committee data found"
	// DateLayout is used for traded/filed dates.
	DateLayout = "2006-01-02"
)

type bucket struct {
	upper float64
	label string
}

// sizeBuckets is ordered by upper bound (exclusive). The last bucket is open.
var sizeBuckets = []bucket{
	{1_000, "< 1K"},
	{15_000, "1K–15K"},
	{50_000, "15K–50K"},
	{100_000, "50K–100K"},
	{250_000, "100K–250K"},
	{500_000, "250K–500K"},
	{1_000_000, "500K–1M"},
	{5_000_000, "1M–5M"},
	{25_000_000, "5M–25M"},
	{50_000_000, "25M–50M"},
	{math.Inf(1), "50M+"},
}

// SizeBuckets returns the trade size labels in ascending order. These are
// the options of the "range" filter.
func SizeBuckets() []string {
	out := make([]string, len(sizeBuckets))
	for i, b := range sizeBuckets {
		out[i] = b.label
	}
	return out
}

// BucketBounds returns the [lower, upper) amount range of a size label.
func BucketBounds(label string) (lower, upper float64, ok bool) {
	for i, b := range sizeBuckets {
		if b.label != label {
			continue
		}
		if i > 0 {
			lower = sizeBuckets[i-1].upper
		}
		return lower, b.upper, true
	}
	return 0, 0, false
}

// TradeSizeAmount maps a dollar amount to its bucket label.
func TradeSizeAmount(amount float64) string {
	if math.IsNaN(amount) {
		return UnknownSize
	}
	for _, b := range sizeBuckets {
		if amount < b.upper {
			return b.label
		}
	}
	return sizeBuckets[len(sizeBuckets)-1].label
}

// TradeSize formats a raw disclosure size. Numeric input is bucketed,
// a value that already is a bucket label is kept, anything else is
// UnknownSize.
func TradeSize(raw string) string {
	s := strings.TrimSpace(raw)
	if amount, err := strconv.ParseFloat(s, 64); err == nil {
		return TradeSizeAmount(amount)
	}
	for _, b := range sizeBuckets {
		if b.label == s {
			return s
		}
	}
	return UnknownSize
}

// IsSale reports whether a transaction type is a sale. Disclosures use
// "Sale", "Sale (Full)" and "Sale (Partial)".
func IsSale(transaction string) bool {
	t := strings.ToLower(strings.TrimSpace(transaction))
	return t == "sale" || strings.HasPrefix(t, "sale ")
}

// ExcessReturn renders the excess return of a sale as a percentage with two
// decimals. ok is false when the field must be omitted: not a sale, no
// value, or a value that does not convert to a finite number.
func ExcessReturn(transaction string, value any) (string, bool) {
	if !IsSale(transaction) {
		return "", false
	}
	f, ok := toFloat(value)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%.2f%%", f), true
}

func toFloat(value any) (float64, bool) {
	var f float64
	switch v := value.(type) {
	case nil:
		return 0, false
	case float64:
		f = v
	case *float64:
		if v == nil {
			return 0, false
		}
		f = *v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Party expands a party code. Unknown codes are returned unchanged.
func Party(code string) string {
	switch code {
	case "D":
		return "Democrat"
	case "R":
		return "Republican"
	default:
		return code
	}
}

// Industry returns the display label of an industry. ok is false when the
// industry line should not be shown at all.
func Industry(v string) (label string, ok bool) {
	switch v {
	case "":
		return "", false
	case "Unknown":
		return "General", true
	default:
		return v, true
	}
}

// CountLabel renders "1 Industry" / "3 Industries".
func CountLabel(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

// Committees returns the lines of a committee list. An empty list yields
// the single NoCommitteeData placeholder.
func Committees(list []string) []string {
	if len(list) == 0 {
		return []string{NoCommitteeData}
	}
	return list
}

// Price renders a share price, or "" when unknown.
func Price(p *float64) string {
	if p == nil || math.IsNaN(*p) || math.IsInf(*p, 0) {
		return ""
	}
	return fmt.Sprintf("$%.2f", *p)
}

// Date renders a date column, or "" for the zero time.
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
