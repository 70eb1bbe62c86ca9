package grid

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/huangsam/statgrid/schema"
)

// NextSortState advances the tri-state cycle for a header click:
// nil -> asc -> desc -> nil. Clicking a different column starts at asc.
func NextSortState(current *schema.SortState, key string) *schema.SortState {
	if current == nil || current.Key != key {
		return &schema.SortState{Key: key, Direction: schema.Ascending}
	}
	if current.Direction == schema.Ascending {
		return &schema.SortState{Key: key, Direction: schema.Descending}
	}
	return nil
}

// keyed pairs an item with its extracted sort value.
type keyed[T any] struct {
	item T
	val  any
}

// Sort orders rows by the sort state. A nil state returns the rows in insertion order.
// Ties keep their prior order and missing values always sort last.
func Sort(rows []Row, state *schema.SortState, columns []Column) []Row {
	out := make([]Row, len(rows))
	if state == nil {
		copy(out, rows)
		return out
	}

	extract := valueExtractor(state.Key, columns)
	items := make([]keyed[Row], len(rows))
	for i, r := range rows {
		items[i] = keyed[Row]{item: r, val: extract(r)}
	}
	sortKeyed(items, state.Direction)
	for i, it := range items {
		out[i] = it.item
	}
	return out
}

// SortGrouped sorts whole slot blocks so the rows of one slot stay together.
// Blocks are compared using their row tagged anchor, or their first row when
// no row carries that tag.
func SortGrouped(rows []Row, state *schema.SortState, columns []Column, anchor schema.StatType) []Row {
	if state == nil {
		out := make([]Row, len(rows))
		copy(out, rows)
		return out
	}

	groups := groupBySlot(rows)
	extract := valueExtractor(state.Key, columns)
	items := make([]keyed[[]Row], len(groups))
	for i, g := range groups {
		rep := g[0]
		for _, r := range g {
			if r.StatType == anchor {
				rep = r
				break
			}
		}
		items[i] = keyed[[]Row]{item: g, val: extract(rep)}
	}
	sortKeyed(items, state.Direction)

	out := make([]Row, 0, len(rows))
	for _, it := range items {
		out = append(out, it.item...)
	}
	return out
}

// groupBySlot splits rows into runs of consecutive rows sharing a slot index.
func groupBySlot(rows []Row) [][]Row {
	var groups [][]Row
	for i, r := range rows {
		if i == 0 || r.SlotIndex != rows[i-1].SlotIndex {
			groups = append(groups, nil)
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], r)
	}
	return groups
}

// valueExtractor resolves how a sort key reads its value: the column's SortValue,
// then the surname-first name for name columns, then the raw field.
func valueExtractor(key string, columns []Column) func(Row) any {
	if col, ok := findColumn(columns, key); ok && col.SortValue != nil {
		return func(r Row) any { return normalize(col.SortValue(r)) }
	}
	if key == schema.KeyName || key == schema.KeyPlayer {
		return func(r Row) any {
			if n := r.Entity.SortName(); n != "" {
				return n
			}
			return nil
		}
	}
	return func(r Row) any { return normalize(r.Field(key)) }
}

// sortKeyed stable-sorts items, placing missing values last in either direction.
func sortKeyed[T any](items []keyed[T], dir schema.SortDirection) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].val, items[j].val
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		}
		c := compareValues(a, b)
		if dir == schema.Descending {
			return c > 0
		}
		return c < 0
	})
}

// normalize unwraps optional and pointer numbers and maps absent or non-finite values to nil.
func normalize(v any) any {
	switch val := v.(type) {
	case schema.Optional:
		if f, ok := val.Get(); ok {
			return f
		}
		return nil
	case *float64:
		if val == nil {
			return nil
		}
		return normalize(*val)
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return nil
		}
		return val
	case string:
		if val == "" {
			return nil
		}
		return val
	}
	return v
}

// compareValues compares two present values numerically when both coerce to
// finite numbers, otherwise as case-insensitive strings.
func compareValues(a, b any) int {
	if x, ok := toNumber(a); ok {
		if y, ok := toNumber(b); ok {
			switch {
			case x < y:
				return -1
			case x > y:
				return 1
			default:
				return 0
			}
		}
	}
	return strings.Compare(strings.ToLower(toString(a)), strings.ToLower(toString(b)))
}

// toNumber coerces a value to a finite float64.
func toNumber(v any) (float64, bool) {
	var f float64
	switch val := v.(type) {
	case float64:
		f = val
	case float32:
		f = float64(val)
	case int:
		f = float64(val)
	case int32:
		f = float64(val)
	case int64:
		f = float64(val)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
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

// toString renders a value for lexicographic comparison.
func toString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case bool:
		return strconv.FormatBool(val)
	}
	if s, ok := v.(interface{ String() string }); ok {
		return s.String()
	}
	return ""
}
