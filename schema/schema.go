// Package schema has configs, models and constants for all parts of statgrid.
package schema

import (
	"math"
	"strings"
)

// Optional is a stat value that may be absent.
// Render shows Placeholder for an absent value; aggregation treats it as 0.
type Optional struct {
	value float64
	ok    bool
}

// Some wraps a present value. NaN and infinities are treated as absent.
func Some(v float64) Optional {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Optional{}
	}
	return Optional{value: v, ok: true}
}

// None returns an absent value.
func None() Optional { return Optional{} }

// Get returns the value and whether it is present.
func (o Optional) Get() (float64, bool) { return o.value, o.ok }

// Valid reports whether the value is present.
func (o Optional) Valid() bool { return o.ok }

// OrZero returns the value, or 0 when absent.
func (o Optional) OrZero() float64 {
	if !o.ok {
		return 0
	}
	return o.value
}

// Snapshot maps stat field names to values for one period. A nil entry is a null value.
type Snapshot map[string]*float64

// Get looks up a field in the snapshot.
func (s Snapshot) Get(field string) Optional {
	if s == nil {
		return None()
	}
	v, ok := s[field]
	if !ok || v == nil {
		return None()
	}
	return Some(*v)
}

// Entity is a player carried by a roster slot or a free-agent list.
// The engines never mutate an Entity.
type Entity struct {
	ID            string                  `json:"id" yaml:"id"`
	FirstName     string                  `json:"first_name,omitempty" yaml:"first_name"`
	LastName      string                  `json:"last_name,omitempty" yaml:"last_name"`
	Name          string                  `json:"name,omitempty" yaml:"name"`
	Team          string                  `json:"team,omitempty" yaml:"team"`
	Position      string                  `json:"position,omitempty" yaml:"position"`
	Price         *float64                `json:"price,omitempty" yaml:"price"`
	Salary        *float64                `json:"salary,omitempty" yaml:"salary"`
	ContractYears *float64                `json:"contract_years,omitempty" yaml:"contract_years"`
	Stats         map[StatPeriod]Snapshot `json:"stats,omitempty" yaml:"stats"`
}

// Snapshot returns the snapshot for a period, or nil when the entity has none.
func (e *Entity) Snapshot(p StatPeriod) Snapshot {
	if e == nil || e.Stats == nil {
		return nil
	}
	return e.Stats[p]
}

// HasSnapshot reports whether the entity carries a snapshot for the period.
func (e *Entity) HasSnapshot(p StatPeriod) bool {
	if e == nil || e.Stats == nil {
		return false
	}
	_, ok := e.Stats[p]
	return ok
}

// DisplayName returns the name shown in the grid.
func (e *Entity) DisplayName() string {
	if e == nil {
		return ""
	}
	if e.Name != "" {
		return e.Name
	}
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// SortName returns "Last First" so names sort surname-first,
// falling back to the display name when the parts are missing.
func (e *Entity) SortName() string {
	if e == nil {
		return ""
	}
	if e.LastName != "" || e.FirstName != "" {
		return strings.TrimSpace(e.LastName + " " + e.FirstName)
	}
	return e.DisplayName()
}

// RosterSlot is one position on a roster. A nil Entity is an empty slot.
type RosterSlot struct {
	Position string  `json:"position" yaml:"position"`
	Entity   *Entity `json:"entity" yaml:"entity"`
}

// DisplayRow is a synthetic grid row produced by row expansion.
type DisplayRow struct {
	ID        string
	StatType  StatType
	Entity    *Entity // nil for an empty slot
	Position  string
	SlotIndex int
}

// Snapshot returns the snapshot this row displays.
func (r DisplayRow) Snapshot() Snapshot {
	return r.Entity.Snapshot(r.StatType.Period())
}

// Stat reads a stat field from the row's snapshot.
func (r DisplayRow) Stat(field string) Optional {
	return r.Snapshot().Get(field)
}

// Field reads any addressable value off the row: identity fields first,
// then the stat snapshot for the row's period. Absent values are nil.
func (r DisplayRow) Field(key string) any {
	switch key {
	case KeyPosition:
		if r.Position != "" {
			return r.Position
		}
		if r.Entity != nil && r.Entity.Position != "" {
			return r.Entity.Position
		}
		return nil
	case KeyPeriod:
		return r.StatType.Label()
	}
	if r.Entity == nil {
		return nil
	}
	switch key {
	case KeyName, KeyPlayer:
		if n := r.Entity.DisplayName(); n != "" {
			return n
		}
		return nil
	case KeyTeam:
		if r.Entity.Team == "" {
			return nil
		}
		return r.Entity.Team
	case KeyPrice:
		return optionalAny(r.Entity.Price)
	case KeySalary:
		return optionalAny(r.Entity.Salary)
	case KeyContract:
		return optionalAny(r.Entity.ContractYears)
	}
	if v, ok := r.Stat(key).Get(); ok {
		return v
	}
	return nil
}

// optionalAny converts a nullable number into a comparable value.
func optionalAny(v *float64) any {
	if v == nil {
		return nil
	}
	if f, ok := Some(*v).Get(); ok {
		return f
	}
	return nil
}

// SortState is the active sort. A nil *SortState means insertion order.
type SortState struct {
	Key       string        `json:"key"`
	Direction SortDirection `json:"direction"`
}

// AggregationResult maps stat fields to team totals.
type AggregationResult map[string]float64
