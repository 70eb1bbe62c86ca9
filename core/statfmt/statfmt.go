// Package statfmt converts raw stat values into display strings.
package statfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/huangsam/statgrid/schema"
)

// MaxDecimals is the widest fixed precision a stat may use.
const MaxDecimals = 3

// clampDecimals keeps decimals within [0, MaxDecimals].
func clampDecimals(decimals int) int {
	return max(0, min(decimals, MaxDecimals))
}

// Format renders a value with fixed decimals, or the placeholder when absent.
// Halves round away from zero, so 0.3125 renders as "0.313".
func Format(v schema.Optional, decimals int) string {
	f, ok := v.Get()
	if !ok {
		return schema.Placeholder
	}
	d := clampDecimals(decimals)
	p := math.Pow10(d)
	if scaled := f * p; !math.IsInf(scaled, 0) {
		f = math.Round(scaled) / p
	}
	return strconv.FormatFloat(f, 'f', d, 64)
}

// FormatAverage renders a value batting-average style: three decimals with the
// leading zero dropped below 1 (0.3125 -> ".313", 1 -> "1.000").
func FormatAverage(v schema.Optional) string {
	s := Format(v, MaxDecimals)
	if s == schema.Placeholder {
		return s
	}
	if rest, ok := strings.CutPrefix(s, "0."); ok {
		return "." + rest
	}
	if rest, ok := strings.CutPrefix(s, "-0."); ok {
		return "-." + rest
	}
	return s
}

// FormatStat renders a value under a league category's convention.
func FormatStat(v schema.Optional, cfg schema.StatFieldConfig) string {
	if cfg.AverageStyle() {
		return FormatAverage(v)
	}
	return Format(v, cfg.Decimals)
}

// FormatMoney renders a price or salary as whole dollars.
func FormatMoney(v schema.Optional) string {
	s := Format(v, 0)
	if s == schema.Placeholder {
		return s
	}
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		return "-$" + rest
	}
	return "$" + s
}

// FormatValue renders an arbitrary cell value. Missing values, empty strings and
// non-finite numbers all render as the placeholder.
func FormatValue(v any, decimals int) string {
	switch val := v.(type) {
	case nil:
		return schema.Placeholder
	case schema.Optional:
		return Format(val, decimals)
	case float64:
		return Format(schema.Some(val), decimals)
	case float32:
		return Format(schema.Some(float64(val)), decimals)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case *float64:
		if val == nil {
			return schema.Placeholder
		}
		return Format(schema.Some(*val), decimals)
	case string:
		if val == "" {
			return schema.Placeholder
		}
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return schema.Placeholder
	}
}
