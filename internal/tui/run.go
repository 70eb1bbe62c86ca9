package tui

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/huangsam/statgrid/core"
	"github.com/huangsam/statgrid/internal/contract"
	"github.com/huangsam/statgrid/internal/store"
	"golang.org/x/term"
)

// Run loads the roster and runs the interactive grid until the user quits.
// Rosters loaded from the store are written back after every row action;
// rosters read from a file are only changed in memory.
func Run(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}
	slots, err := core.LoadRoster(ctx, cfg, mgr)
	if err != nil {
		return err
	}

	var rs contract.RosterStore
	if cfg.RosterPath == "" && mgr != nil {
		rs = mgr.GetRosterStore()
	}
	actions := store.NewRosterActions(slots, rs, cfg.TeamKey)

	m := New(actions.Slots, cfg, WithActions(actions))
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	m.send = p.Send
	_, err = p.Run()
	m.hover.Close()
	return err
}
