package contract

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/huangsam/statgrid/core/statfmt"
	"github.com/huangsam/statgrid/schema"
)

// LeagueRawInput holds the stat categories of the league from the YAML config file.
type LeagueRawInput struct {
	Hitters  []schema.StatFieldConfig `mapstructure:"hitters"`
	Pitchers []schema.StatFieldConfig `mapstructure:"pitchers"`
}

// Config holds the runtime configuration for a statgrid command.
// This struct is the "final, validated" config.
type Config struct {
	RosterPath string
	TeamKey    string
	IsPitcher  bool
	Mode       schema.DisplayMode
	Sort       *schema.SortState
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)
	Abbreviate bool
	Record     bool

	StoreBackend   schema.DatabaseBackend
	StoreDBConnect string // Please use env var as this is plaintext

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext

	HitterStats  []schema.StatFieldConfig
	PitcherStats []schema.StatFieldConfig

	UseColors bool // Enable colored sort indicators and totals label
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RosterPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Team             string `mapstructure:"team"`
	Pitchers         bool   `mapstructure:"pitchers"`
	Mode             string `mapstructure:"mode"`
	Sort             string `mapstructure:"sort"`
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	Width            int    `mapstructure:"width"`
	Abbreviate       bool   `mapstructure:"abbreviate"`
	StoreBackend     string `mapstructure:"store-backend"`
	StoreDBConnect   string `mapstructure:"store-db-connect"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`
	Color            string `mapstructure:"color"`

	// --- Fields from totalsCmd.Flags() ---
	Record bool `mapstructure:"record"`

	// --- League categories from config file ---
	League LeagueRawInput `mapstructure:"league"`
}

// StatConfigs returns the league categories for the configured side.
func (c *Config) StatConfigs() []schema.StatFieldConfig {
	if c.IsPitcher {
		return c.PitcherStats
	}
	return c.HitterStats
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Sort != nil {
		s := *c.Sort
		clone.Sort = &s
	}
	clone.HitterStats = slices.Clone(c.HitterStats)
	clone.PitcherStats = slices.Clone(c.PitcherStats)
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}
	if err := processLeague(cfg, input); err != nil {
		return err
	}
	if err := processSort(cfg, input); err != nil {
		return err
	}
	return resolveRosterPath(cfg, input)
}

// validateSimpleInputs processes and validates the plain scalar fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.TeamKey = strings.TrimSpace(input.Team)
	cfg.IsPitcher = input.Pitchers
	cfg.OutputFile = input.OutputFile
	cfg.Abbreviate = input.Abbreviate
	cfg.Record = input.Record

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	cfg.Mode = schema.DisplayMode(strings.ToLower(input.Mode))
	if _, ok := schema.ValidDisplayModes[cfg.Mode]; !ok {
		return fmt.Errorf("invalid mode '%s'. must be three-line, accrued-only", input.Mode)
	}

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return errors.New("parquet output requires --output-file")
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("a connection string is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("a connection string is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateBackendConfigs validates roster store and history backend configurations.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	cfg.StoreBackend = schema.DatabaseBackend(strings.ToLower(input.StoreBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.StoreBackend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", input.StoreBackend)
	}
	cfg.StoreDBConnect = input.StoreDBConnect
	if err := ValidateDatabaseConnectionString(cfg.StoreBackend, cfg.StoreDBConnect); err != nil {
		return err
	}

	cfg.HistoryBackend = schema.DatabaseBackend(strings.ToLower(input.HistoryBackend))
	if cfg.HistoryBackend == "" {
		return nil
	}
	if _, ok := schema.ValidDatabaseBackends[cfg.HistoryBackend]; !ok {
		return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", input.HistoryBackend)
	}
	cfg.HistoryDBConnect = input.HistoryDBConnect
	if err := ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect); err != nil {
		return err
	}

	// The roster store and the history must not share a SQLite file
	if cfg.StoreBackend == schema.SQLiteBackend && cfg.HistoryBackend == schema.SQLiteBackend {
		storePath := orDefault(cfg.StoreDBConnect, GetStoreDBFilePath())
		historyPath := orDefault(cfg.HistoryDBConnect, GetHistoryDBFilePath())
		if storePath == historyPath {
			return fmt.Errorf("roster store and history must use different SQLite database files. Both resolve to %q", storePath)
		}
	}
	return nil
}

// orDefault returns s, or fallback when s is empty.
func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// processLeague loads the league categories, falling back to the 5x5 defaults per side.
func processLeague(cfg *Config, input *ConfigRawInput) error {
	cfg.HitterStats = schema.DefaultStatConfigs(false)
	if len(input.League.Hitters) > 0 {
		if err := ValidateStatConfigs(input.League.Hitters); err != nil {
			return fmt.Errorf("invalid league hitters: %w", err)
		}
		cfg.HitterStats = normalizeStatConfigs(input.League.Hitters)
	}

	cfg.PitcherStats = schema.DefaultStatConfigs(true)
	if len(input.League.Pitchers) > 0 {
		if err := ValidateStatConfigs(input.League.Pitchers); err != nil {
			return fmt.Errorf("invalid league pitchers: %w", err)
		}
		cfg.PitcherStats = normalizeStatConfigs(input.League.Pitchers)
	}
	return nil
}

// ValidateStatConfigs rejects malformed league categories: missing or duplicate
// fields, decimals outside 0..3 and rate stats without a known rate kind.
func ValidateStatConfigs(configs []schema.StatFieldConfig) error {
	seen := make(map[string]struct{}, len(configs))
	for i, c := range configs {
		field := strings.TrimSpace(c.Field)
		if field == "" {
			return fmt.Errorf("category %d: field cannot be empty", i)
		}
		if _, dup := seen[field]; dup {
			return fmt.Errorf("category %q is listed more than once", field)
		}
		seen[field] = struct{}{}

		if c.Decimals < 0 || c.Decimals > statfmt.MaxDecimals {
			return fmt.Errorf("category %q: decimals must be between 0 and %d (received %d)", field, statfmt.MaxDecimals, c.Decimals)
		}
		kind := schema.RateKind(strings.ToUpper(string(c.RateKind)))
		if !c.IsRateStat {
			if kind != "" {
				return fmt.Errorf("category %q: rate_kind %q set on a counting stat", field, c.RateKind)
			}
			continue
		}
		if kind == "" {
			return fmt.Errorf("category %q: rate stats need a rate_kind", field)
		}
		if _, ok := schema.ValidRateKinds[kind]; !ok {
			return fmt.Errorf("category %q: unknown rate_kind %q", field, c.RateKind)
		}
	}
	return nil
}

// normalizeStatConfigs trims fields and upper-cases rate kinds of validated configs.
func normalizeStatConfigs(configs []schema.StatFieldConfig) []schema.StatFieldConfig {
	out := make([]schema.StatFieldConfig, len(configs))
	for i, c := range configs {
		c.Field = strings.TrimSpace(c.Field)
		c.RateKind = schema.RateKind(strings.ToUpper(string(c.RateKind)))
		out[i] = c
	}
	return out
}

// processSort parses the initial sort flag.
func processSort(cfg *Config, input *ConfigRawInput) error {
	state, err := ParseSortString(input.Sort)
	if err != nil {
		return fmt.Errorf("invalid --sort value: %w", err)
	}
	cfg.Sort = state
	return nil
}

// ParseSortString parses "key" or "key:asc|desc" into a sort state.
// An empty string means insertion order and yields nil.
func ParseSortString(s string) (*schema.SortState, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	key, dir, found := strings.Cut(s, ":")
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, fmt.Errorf("sort key cannot be empty in %q", s)
	}
	state := &schema.SortState{Key: key, Direction: schema.Ascending}
	if !found {
		return state, nil
	}
	switch schema.SortDirection(strings.ToLower(strings.TrimSpace(dir))) {
	case schema.Ascending:
	case schema.Descending:
		state.Direction = schema.Descending
	default:
		return nil, fmt.Errorf("sort direction must be asc or desc (received %q)", dir)
	}
	return state, nil
}

// resolveRosterPath makes a positional roster path absolute and checks that it exists.
func resolveRosterPath(cfg *Config, input *ConfigRawInput) error {
	if input.RosterPathStr == "" {
		cfg.RosterPath = ""
		return nil
	}
	abs, err := filepath.Abs(input.RosterPathStr)
	if err != nil {
		return fmt.Errorf("failed to resolve roster path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("roster file %q: %w", input.RosterPathStr, err)
	}
	if info.IsDir() {
		return fmt.Errorf("roster path %q is a directory", input.RosterPathStr)
	}
	cfg.RosterPath = abs
	return nil
}
