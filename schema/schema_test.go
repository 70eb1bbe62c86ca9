package schema

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func num(v float64) *float64 { return &v }

func TestOptional(t *testing.T) {
	v, ok := Some(2.5).Get()
	assert.True(t, ok)
	assert.Equal(t, 2.5, v)

	assert.False(t, None().Valid())
	assert.False(t, Some(math.NaN()).Valid())
	assert.False(t, Some(math.Inf(-1)).Valid())
	assert.Equal(t, 0.0, None().OrZero())
	assert.Equal(t, 4.0, Some(4).OrZero())
}

func TestSnapshotGet(t *testing.T) {
	var nilSnap Snapshot
	assert.False(t, nilSnap.Get("HR").Valid())

	s := Snapshot{"HR": num(12), "SB": nil}
	assert.Equal(t, 12.0, s.Get("HR").OrZero())
	assert.False(t, s.Get("SB").Valid())
	assert.False(t, s.Get("RBI").Valid())
}

func TestEntityNames(t *testing.T) {
	e := &Entity{FirstName: "Aaron", LastName: "Judge"}
	assert.Equal(t, "Aaron Judge", e.DisplayName())
	assert.Equal(t, "Judge Aaron", e.SortName())

	named := &Entity{Name: "Shohei Ohtani"}
	assert.Equal(t, "Shohei Ohtani", named.DisplayName())
	assert.Equal(t, "Shohei Ohtani", named.SortName())

	var none *Entity
	assert.Empty(t, none.DisplayName())
	assert.Empty(t, none.SortName())
	assert.Nil(t, none.Snapshot(AccruedPeriod))
	assert.False(t, none.HasSnapshot(AccruedPeriod))
}

func TestStatTypePeriodAndLabel(t *testing.T) {
	assert.Equal(t, SeasonPeriod, SeasonRow.Period())
	assert.Equal(t, RollingPeriod, RollingRow.Period())
	assert.Equal(t, AccruedPeriod, AccruedRow.Period())
	assert.Equal(t, "Season", SeasonRow.Label())
	assert.Equal(t, "14 Day", RollingRow.Label())
	assert.Equal(t, "Accrued", AccruedRow.Label())
}

func TestDisplayRowField(t *testing.T) {
	e := &Entity{
		Name:     "Aaron Judge",
		Team:     "NYY",
		Position: "RF",
		Salary:   num(40),
		Stats: map[StatPeriod]Snapshot{
			RollingPeriod: {"HR": num(5)},
			AccruedPeriod: {"HR": num(20)},
		},
	}
	r := DisplayRow{StatType: RollingRow, Entity: e, Position: "OF"}

	assert.Equal(t, "OF", r.Field(KeyPosition))
	assert.Equal(t, "Aaron Judge", r.Field(KeyName))
	assert.Equal(t, "NYY", r.Field(KeyTeam))
	assert.Equal(t, 40.0, r.Field(KeySalary))
	assert.Nil(t, r.Field(KeyPrice))
	assert.Equal(t, "14 Day", r.Field(KeyPeriod))
	assert.Equal(t, 5.0, r.Field("HR"))
	assert.Nil(t, r.Field("SB"))

	r.Position = ""
	assert.Equal(t, "RF", r.Field(KeyPosition), "falls back to the entity position")

	empty := DisplayRow{StatType: AccruedRow, Position: "BN"}
	assert.Equal(t, "BN", empty.Field(KeyPosition))
	assert.Nil(t, empty.Field(KeyName))
	assert.Nil(t, empty.Field("HR"))
	assert.Equal(t, "Accrued", empty.Field(KeyPeriod))
}

func TestStatFieldConfig(t *testing.T) {
	assert.Equal(t, "HR", StatFieldConfig{Field: "HR"}.DisplayLabel())
	assert.Equal(t, "Homers", StatFieldConfig{Field: "HR", Label: "Homers"}.DisplayLabel())

	assert.True(t, StatFieldConfig{IsRateStat: true, RateKind: OBPRate}.AverageStyle())
	assert.False(t, StatFieldConfig{IsRateStat: true, RateKind: ERARate}.AverageStyle())
	assert.False(t, StatFieldConfig{RateKind: AVGRate}.AverageStyle(), "only rate stats")
}

func TestDefaultStatConfigsAreCopies(t *testing.T) {
	a := DefaultStatConfigs(false)
	a[0].Label = "changed"
	assert.NotEqual(t, "changed", DefaultHitterStats[0].Label)
	assert.Len(t, DefaultStatConfigs(true), len(DefaultPitcherStats))
}

func TestStaticCountingFields(t *testing.T) {
	assert.Equal(t, []string{"G", "AB", "H"}, StaticCountingFields(false))
	assert.Equal(t, []string{"G", "GS"}, StaticCountingFields(true))
}

func TestSortStateJSON(t *testing.T) {
	data, err := json.Marshal(SortState{Key: "HR", Direction: Descending})
	require.NoError(t, err)
	assert.JSONEq(t, `{"key":"HR","direction":"desc"}`, string(data))
}
