// Package agg computes team totals from roster rows.
//
// Counting stats are summed. Rate stats are never averaged: their numerator and
// denominator components are summed across the roster and the ratio is
// recomputed, so players with more playing time weigh more.
package agg

import (
	"github.com/huangsam/statgrid/schema"
)

// components holds the summed inputs every rate formula draws from.
type components struct {
	atBats, hits, doubles, triples, homeRuns float64
	walks, hitByPitch, sacFlies, totalBases  float64
	innings, earnedRuns, strikeouts          float64
}

// Aggregate computes the totals row for the rows' entities.
// Only entities with an accrued snapshot contribute; each entity counts once even
// when it appears on several display rows. When nothing contributes, every
// configured and static field is present with value 0.
func Aggregate(rows []schema.DisplayRow, configs []schema.StatFieldConfig, isPitcher bool) schema.AggregationResult {
	snapshots := accruedSnapshots(rows)
	result := make(schema.AggregationResult, len(configs)+3)

	statics := schema.StaticCountingFields(isPitcher)
	if len(snapshots) == 0 {
		for _, f := range statics {
			result[f] = 0
		}
		for _, c := range configs {
			result[c.Field] = 0
		}
		return result
	}

	for _, f := range statics {
		result[f] = sumField(snapshots, f)
	}

	sums := sumComponents(snapshots)
	for _, c := range configs {
		if !c.IsRateStat {
			result[c.Field] = sumCounting(snapshots, c.Field)
			continue
		}
		if v, ok := recompute(c.RateKind, sums); ok {
			result[c.Field] = v
			continue
		}
		result[c.Field] = sumField(snapshots, c.Field)
	}
	return result
}

// FallbackFields lists the rate stat configs whose kind has no recomputation
// formula and are therefore summed. Callers should surface these to the user.
func FallbackFields(configs []schema.StatFieldConfig) []string {
	var out []string
	for _, c := range configs {
		if !c.IsRateStat {
			continue
		}
		if _, ok := recompute(c.RateKind, components{}); !ok {
			out = append(out, c.Field)
		}
	}
	return out
}

// HasFormula reports whether a rate kind is recomputed from components.
func HasFormula(kind schema.RateKind) bool {
	_, ok := recompute(kind, components{})
	return ok
}

// accruedSnapshots returns the accrued snapshot of each distinct entity that has one.
func accruedSnapshots(rows []schema.DisplayRow) []schema.Snapshot {
	seen := make(map[*schema.Entity]struct{}, len(rows))
	var out []schema.Snapshot
	for _, r := range rows {
		if r.Entity == nil || !r.Entity.HasSnapshot(schema.AccruedPeriod) {
			continue
		}
		if _, dup := seen[r.Entity]; dup {
			continue
		}
		seen[r.Entity] = struct{}{}
		out = append(out, r.Entity.Snapshot(schema.AccruedPeriod))
	}
	return out
}

// sumField sums one field, treating missing values as 0.
func sumField(snapshots []schema.Snapshot, field string) float64 {
	var total float64
	for _, s := range snapshots {
		total += s.Get(field).OrZero()
	}
	return total
}

// sumCounting sums a counting field, preferring the accrued-specific variant per entity.
func sumCounting(snapshots []schema.Snapshot, field string) float64 {
	var total float64
	for _, s := range snapshots {
		if v, ok := s.Get(schema.AccruedPrefix + field).Get(); ok {
			total += v
			continue
		}
		total += s.Get(field).OrZero()
	}
	return total
}

// sumComponents sums every rate-formula input across the snapshots.
func sumComponents(snapshots []schema.Snapshot) components {
	var c components
	for _, s := range snapshots {
		h := s.Get(schema.FieldHits).OrZero()
		d := s.Get(schema.FieldDoubles).OrZero()
		t := s.Get(schema.FieldTriples).OrZero()
		hr := s.Get(schema.FieldHomeRuns).OrZero()
		singles := h - d - t - hr

		c.atBats += s.Get(schema.FieldAtBats).OrZero()
		c.hits += h
		c.doubles += d
		c.triples += t
		c.homeRuns += hr
		c.totalBases += singles + 2*d + 3*t + 4*hr
		c.walks += s.Get(schema.FieldWalks).OrZero()
		c.hitByPitch += s.Get(schema.FieldHitByPitch).OrZero()
		c.sacFlies += s.Get(schema.FieldSacFlies).OrZero()
		c.innings += s.Get(schema.FieldInningsPitched).OrZero()
		c.earnedRuns += s.Get(schema.FieldEarnedRuns).OrZero()
		c.strikeouts += s.Get(schema.FieldStrikeouts).OrZero()
	}
	return c
}

// recompute applies the formula for a rate kind. It reports false for kinds
// without a formula, including RAW.
func recompute(kind schema.RateKind, c components) (float64, bool) {
	switch kind {
	case schema.AVGRate:
		return ratio(c.hits, c.atBats), true
	case schema.OBPRate:
		return ratio(c.hits+c.walks+c.hitByPitch, c.atBats+c.walks+c.hitByPitch+c.sacFlies), true
	case schema.SLGRate:
		return ratio(c.totalBases, c.atBats), true
	case schema.ERARate:
		return ratio(9*c.earnedRuns, c.innings), true
	case schema.WHIPRate:
		return ratio(c.hits+c.walks, c.innings), true
	case schema.K9Rate:
		return ratio(9*c.strikeouts, c.innings), true
	case schema.BB9Rate:
		return ratio(9*c.walks, c.innings), true
	default:
		return 0, false
	}
}

// ratio divides, returning 0 when the denominator is 0.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
