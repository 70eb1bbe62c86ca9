package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/huangsam/statgrid/core/expand"
	"github.com/huangsam/statgrid/internal/contract"
	"github.com/huangsam/statgrid/internal/store"
	"github.com/huangsam/statgrid/schema"
	"gopkg.in/yaml.v3"
)

// RosterFile is the document form of a roster file. A file may also be a bare
// list of slots.
type RosterFile struct {
	Team       string              `json:"team,omitempty" yaml:"team"`
	Slots      []schema.RosterSlot `json:"slots,omitempty" yaml:"slots"`
	FreeAgents []*schema.Entity    `json:"free_agents,omitempty" yaml:"free_agents"`
}

// ErrNoRoster is returned when neither a roster file nor a stored team was given.
var ErrNoRoster = errors.New("no roster given: pass a roster file or --team")

// LoadRosterFile reads roster slots from a JSON or YAML file, chosen by extension.
func LoadRosterFile(path string) ([]schema.RosterSlot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}
	ext := strings.ToLower(filepath.Ext(path))
	slots, err := DecodeRoster(data, ext == ".yaml" || ext == ".yml")
	if err != nil {
		return nil, fmt.Errorf("failed to parse roster file %s: %w", filepath.Base(path), err)
	}
	return slots, nil
}

// DecodeRoster parses a roster document. A bare list is read as slots, or as
// plain entities when no element carries an entity; a document uses its
// slots, or wraps its free agents as slots when it has none.
func DecodeRoster(data []byte, isYAML bool) ([]schema.RosterSlot, error) {
	unmarshal := json.Unmarshal
	if isYAML {
		unmarshal = yaml.Unmarshal
	}

	var slots []schema.RosterSlot
	if err := unmarshal(data, &slots); err == nil {
		if hasEntity(slots) {
			return slots, nil
		}
		var entities []*schema.Entity
		if err := unmarshal(data, &entities); err == nil && hasIdentity(entities) {
			return expand.FromEntities(entities), nil
		}
		return slots, nil
	}

	var doc RosterFile
	if err := unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Slots) > 0 {
		return doc.Slots, nil
	}
	return expand.FromEntities(doc.FreeAgents), nil
}

func hasEntity(slots []schema.RosterSlot) bool {
	for _, s := range slots {
		if s.Entity != nil {
			return true
		}
	}
	return false
}

// hasIdentity reports whether any element looks like a player rather than an
// empty slot that only names its position.
func hasIdentity(entities []*schema.Entity) bool {
	for _, e := range entities {
		if e != nil && (e.ID != "" || e.Name != "" || e.FirstName != "" || e.LastName != "" || len(e.Stats) > 0) {
			return true
		}
	}
	return false
}

// LoadRoster resolves the roster for a command: the roster file when one was
// given, else the team stored in the roster store.
func LoadRoster(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) ([]schema.RosterSlot, error) {
	if cfg.RosterPath != "" {
		return LoadRosterFile(cfg.RosterPath)
	}
	if cfg.TeamKey == "" {
		return nil, ErrNoRoster
	}
	if mgr == nil || mgr.GetRosterStore() == nil {
		return nil, fmt.Errorf("roster store is not available to load team %q", cfg.TeamKey)
	}
	return store.Load(ctx, mgr.GetRosterStore(), cfg.TeamKey)
}
