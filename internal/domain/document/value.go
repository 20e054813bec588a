package document

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Price is a monetary value decoded from a document field. The hosted
// store holds prices either as JSON numbers (order totals) or as
// pre-formatted display strings such as "RS 1500" (product prices), and
// both must render correctly.
type Price struct {
	amount  decimal.Decimal
	raw     string
	numeric bool
}

// PriceFromAmount builds a numeric price.
func PriceFromAmount(amount decimal.Decimal) Price {
	return Price{amount: amount, numeric: true}
}

// ParsePrice decodes a price from whatever shape the document holds.
func ParsePrice(v any) Price {
	switch p := v.(type) {
	case nil:
		return Price{}
	case float64:
		return PriceFromAmount(decimal.NewFromFloat(p))
	case int:
		return PriceFromAmount(decimal.NewFromInt(int64(p)))
	case int64:
		return PriceFromAmount(decimal.NewFromInt(p))
	case json.Number:
		if d, err := decimal.NewFromString(p.String()); err == nil {
			return PriceFromAmount(d)
		}
		return Price{raw: p.String()}
	case decimal.Decimal:
		return PriceFromAmount(p)
	case string:
		trimmed := strings.TrimSpace(p)
		if trimmed == "" {
			return Price{}
		}
		if d, err := decimal.NewFromString(trimmed); err == nil {
			return PriceFromAmount(d)
		}
		return Price{raw: trimmed}
	default:
		return Price{}
	}
}

// Price decodes the named field as a Price.
func (d Document) Price(key string) Price {
	return ParsePrice(d.Fields[key])
}

// IsSet reports whether the price carries any value at all.
func (p Price) IsSet() bool {
	return p.numeric || p.raw != ""
}

// Amount returns the numeric amount and whether one is available.
func (p Price) Amount() (decimal.Decimal, bool) {
	return p.amount, p.numeric
}

// Display renders the price the way the dashboard cards show it:
// numeric values get the currency prefix, pre-formatted values pass
// through untouched, and absent values become the placeholder.
func (p Price) Display() string {
	switch {
	case p.numeric:
		return "RS " + p.amount.String()
	case p.raw != "":
		return p.raw
	default:
		return Placeholder
	}
}

// Placeholder substitutes for any field the document does not carry.
const Placeholder = "N/A"

// ParseTime decodes a timestamp field. The store serializes timestamps
// as {seconds, nanoseconds} objects; older documents carry RFC3339 or
// date-only strings, or epoch numbers (seconds, or milliseconds when
// implausibly large for seconds). Anything unrecognized decodes to the
// zero time, which the ordering policy treats as oldest.
func ParseTime(v any) time.Time {
	switch t := v.(type) {
	case nil:
		return time.Time{}
	case time.Time:
		return t
	case map[string]any:
		secs, ok := asInt64(t["seconds"])
		if !ok {
			return time.Time{}
		}
		nanos, _ := asInt64(t["nanoseconds"])
		return time.Unix(secs, nanos)
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02", "2006-01-02 15:04:05"} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
		return time.Time{}
	default:
		n, ok := asInt64(v)
		if !ok {
			return time.Time{}
		}
		if n > 1e12 {
			return time.UnixMilli(n)
		}
		return time.Unix(n, 0)
	}
}

// Time decodes the named field as a timestamp.
func (d Document) Time(key string) time.Time {
	return ParseTime(d.Fields[key])
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	default:
		return 0, false
	}
}
