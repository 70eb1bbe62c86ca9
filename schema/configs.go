package schema

// StatFieldConfig describes one league stat category.
// A rate stat must carry a RateKind from ValidRateKinds.
type StatFieldConfig struct {
	Field      string   `json:"field" mapstructure:"field"`
	Label      string   `json:"label" mapstructure:"label"`
	Decimals   int      `json:"decimals" mapstructure:"decimals"`
	IsRateStat bool     `json:"is_rate_stat" mapstructure:"rate"`
	RateKind   RateKind `json:"rate_kind,omitempty" mapstructure:"rate_kind"`
}

// DisplayLabel returns the label, falling back to the field name.
func (c StatFieldConfig) DisplayLabel() string {
	if c.Label != "" {
		return c.Label
	}
	return c.Field
}

// AverageStyle reports whether values render batting-average style (".313").
func (c StatFieldConfig) AverageStyle() bool {
	switch c.RateKind {
	case AVGRate, OBPRate, SLGRate:
		return c.IsRateStat
	}
	return false
}

// DefaultHitterStats is the standard 5x5 hitting category list.
var DefaultHitterStats = []StatFieldConfig{
	{Field: "R", Label: "R"},
	{Field: FieldHomeRuns, Label: "HR"},
	{Field: "RBI", Label: "RBI"},
	{Field: "SB", Label: "SB"},
	{Field: "AVG", Label: "AVG", Decimals: 3, IsRateStat: true, RateKind: AVGRate},
}

// DefaultPitcherStats is the standard 5x5 pitching category list.
var DefaultPitcherStats = []StatFieldConfig{
	{Field: "W", Label: "W"},
	{Field: "SV", Label: "SV"},
	{Field: FieldStrikeouts, Label: "K"},
	{Field: "ERA", Label: "ERA", Decimals: 2, IsRateStat: true, RateKind: ERARate},
	{Field: "WHIP", Label: "WHIP", Decimals: 2, IsRateStat: true, RateKind: WHIPRate},
}

// StaticCountingFields returns the fields always summed regardless of league config.
func StaticCountingFields(isPitcher bool) []string {
	if isPitcher {
		return []string{FieldGames, FieldGamesStarted}
	}
	return []string{FieldGames, FieldAtBats, FieldHits}
}

// DefaultStatConfigs returns a copy of the default category list for a side.
func DefaultStatConfigs(isPitcher bool) []StatFieldConfig {
	src := DefaultHitterStats
	if isPitcher {
		src = DefaultPitcherStats
	}
	out := make([]StatFieldConfig, len(src))
	copy(out, src)
	return out
}
