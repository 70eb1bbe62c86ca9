package schema

// Custom string types for type safety.
type (
	// StatPeriod names a stat snapshot carried by an entity.
	StatPeriod string

	// StatType tags a synthetic display row with the period it shows.
	StatType string

	// RateKind selects the recomputation formula for a rate stat.
	RateKind string

	// SortDirection is the direction of an active sort.
	SortDirection string

	// DisplayMode selects how many display rows a roster slot expands into.
	DisplayMode string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for the roster store.
	DatabaseBackend string
)

// Snapshot periods as they appear in roster data.
const (
	SeasonPeriod  StatPeriod = "season"
	RollingPeriod StatPeriod = "rolling_14_day"
	AccruedPeriod StatPeriod = "accrued"
)

// Display row tags, in three-line order.
const (
	SeasonRow  StatType = "season"
	RollingRow StatType = "rolling"
	AccruedRow StatType = "accrued"
)

// ThreeLineOrder is the fixed order of rows within a three-line block.
var ThreeLineOrder = []StatType{SeasonRow, RollingRow, AccruedRow}

// Period returns the snapshot period a row tag reads from.
func (t StatType) Period() StatPeriod {
	switch t {
	case SeasonRow:
		return SeasonPeriod
	case RollingRow:
		return RollingPeriod
	default:
		return AccruedPeriod
	}
}

// Label returns the short label shown in the period column.
func (t StatType) Label() string {
	switch t {
	case SeasonRow:
		return "Season"
	case RollingRow:
		return "14 Day"
	default:
		return "Accrued"
	}
}

// Rate kinds with a known recomputation formula, plus RAW.
const (
	AVGRate  RateKind = "AVG"
	OBPRate  RateKind = "OBP"
	SLGRate  RateKind = "SLG"
	ERARate  RateKind = "ERA"
	WHIPRate RateKind = "WHIP"
	K9Rate   RateKind = "K9"
	BB9Rate  RateKind = "BB9"
	RAWRate  RateKind = "RAW" // summed like a counting stat
)

// ValidRateKinds lists every rate kind a league config may name.
var ValidRateKinds = map[RateKind]struct{}{
	AVGRate:  {},
	OBPRate:  {},
	SLGRate:  {},
	ERARate:  {},
	WHIPRate: {},
	K9Rate:   {},
	BB9Rate:  {},
	RAWRate:  {},
}

// Sort directions.
const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// All display modes supported.
const (
	ThreeLineMode   DisplayMode = "three-line" // default
	AccruedOnlyMode DisplayMode = "accrued-only"
)

// ValidDisplayModes lists all valid display modes.
var ValidDisplayModes = map[DisplayMode]struct{}{
	ThreeLineMode:   {},
	AccruedOnlyMode: {},
}

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// All store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidDatabaseBackends lists all valid store backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// Stat field names read by the aggregation formulas and the static columns.
// Pitcher snapshots reuse H and BB for hits and walks allowed.
const (
	FieldGames          = "G"
	FieldGamesStarted   = "GS"
	FieldAtBats         = "AB"
	FieldHits           = "H"
	FieldDoubles        = "2B"
	FieldTriples        = "3B"
	FieldHomeRuns       = "HR"
	FieldWalks          = "BB"
	FieldHitByPitch     = "HBP"
	FieldSacFlies       = "SF"
	FieldInningsPitched = "IP"
	FieldEarnedRuns     = "ER"
	FieldStrikeouts     = "K"
)

// AccruedPrefix marks the accrued-specific variant of a counting field.
const AccruedPrefix = "accrued_"

// Identity column keys.
const (
	KeyPosition = "position"
	KeyName     = "name"
	KeyPlayer   = "player"
	KeyTeam     = "team"
	KeyPrice    = "price"
	KeySalary   = "salary"
	KeyContract = "contract"
	KeyPeriod   = "period"
)

// Placeholder is rendered wherever a value is missing.
const Placeholder = "-"
