// Package tui is the interactive roster grid: header clicks sort, border drags
// resize, resting on a header discloses its tooltip, and row keys drop or move
// players.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/huangsam/statgrid/core"
	"github.com/huangsam/statgrid/core/agg"
	"github.com/huangsam/statgrid/core/expand"
	"github.com/huangsam/statgrid/core/grid"
	"github.com/huangsam/statgrid/core/tooltip"
	"github.com/huangsam/statgrid/internal/contract"
	"github.com/huangsam/statgrid/schema"
)

// UnitsPerCell converts column widths from display units to terminal cells.
const UnitsPerCell = 5

// Screen lines above the first data row.
const (
	headerLine  = 0
	tooltipLine = 1
	firstRow    = 2
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("8"))
	activeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")).Background(lipgloss.Color("8"))
	cursorStyle = lipgloss.NewStyle().Background(lipgloss.Color("4")).Foreground(lipgloss.Color("15"))
	totalsStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	tipStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// tooltipMsg delivers a tooltip whose hover delay elapsed.
type tooltipMsg struct {
	Key  string
	Text string
}

// span is where a column sits on screen.
type span struct {
	key   string
	title string
	start int
	cells int
}

// border is the cell right after the column, where a drag resizes it.
func (s span) border() int { return s.start + s.cells }

// Option configures a Model.
type Option func(*Model)

// WithActions sets the row actions invoked by the drop and move keys.
func WithActions(a contract.RowActions) Option {
	return func(m *Model) { m.actions = a }
}

// WithClock sets the clock driving the hover delay.
func WithClock(c tooltip.Clock) Option {
	return func(m *Model) { m.clock = c }
}

// WithSender sets how messages from the hover timer reach the program.
func WithSender(send func(tea.Msg)) Option {
	return func(m *Model) { m.send = send }
}

// dragState is the drag listener registry of the grid. It is active between
// a border press and its release.
type dragState struct {
	active bool
}

func (d *dragState) Acquire() func() {
	d.active = true
	return func() { d.active = false }
}

// Model is the bubbletea model of the grid.
type Model struct {
	cfg     *contract.Config
	configs []schema.StatFieldConfig
	slots   []schema.RosterSlot
	grid    *grid.Grid
	rows    []schema.DisplayRow
	byID    map[string]schema.DisplayRow
	table   grid.Table
	actions contract.RowActions

	clock   tooltip.Clock
	send    func(tea.Msg)
	hover   *tooltip.Hover
	hovered string // header key under the pointer
	tipKey  string
	tipText string

	cursor int // display row index
	column int // selected column index
	offset int // first visible row

	drag   dragState
	moving bool
	input  textinput.Model
	help   help.Model

	width  int
	height int
	status string
	err    error
}

// New creates a grid model over the slots. The slots are shared with the
// row actions, so actions that rewrite them show up on the next render.
func New(slots []schema.RosterSlot, cfg *contract.Config, opts ...Option) *Model {
	m := &Model{
		cfg:     cfg,
		configs: cfg.StatConfigs(),
		slots:   slots,
		width:   120,
		height:  40,
		help:    help.New(),
	}
	for _, opt := range opts {
		opt(m)
	}

	columns := core.BuildColumns(m.configs, core.ColumnOptions{
		Mode:       cfg.Mode,
		IsPitcher:  cfg.IsPitcher,
		Abbreviate: cfg.Abbreviate,
		Money:      core.HasMoney(slots),
	})
	m.grid = grid.New(columns, grid.WithSortState(cfg.Sort), grid.WithGrouping(schema.AccruedRow), grid.WithRegistry(&m.drag))
	m.hover = tooltip.NewHover(m.clock, func(key, text string) {
		if m.send != nil {
			m.send(tooltipMsg{Key: key, Text: text})
		}
	})

	m.input = textinput.New()
	m.input.Prompt = "Move to position: "
	m.input.Placeholder = "1B"
	m.input.CharLimit = 8

	m.refresh()
	return m
}

// refresh re-expands the slots and re-renders the table with its totals row.
func (m *Model) refresh() {
	m.rows = expand.Expand(m.slots, m.cfg.Mode)
	m.byID = make(map[string]schema.DisplayRow, len(m.rows))
	for _, r := range m.rows {
		m.byID[r.ID] = r
	}
	m.table = m.grid.Render(m.rows)
	totals := agg.Aggregate(m.rows, m.configs, m.cfg.IsPitcher)
	m.table.Footer = core.TotalsCells(m.grid.Columns(), totals, m.configs, false)

	if m.cursor >= len(m.table.Rows) {
		m.cursor = max(0, len(m.table.Rows)-1)
	}
	m.scroll()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scroll()
		return m, nil
	case tooltipMsg:
		if key, ok := m.hover.Visible(); ok && key == msg.Key {
			m.tipKey = msg.Key
			m.tipText = msg.Text
		}
		return m, nil
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case tea.KeyMsg:
		if m.moving {
			return m.updateMove(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m *Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	widths := m.grid.Widths()
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || msg.Y != headerLine {
			return m, nil
		}
		for _, s := range m.layout() {
			if msg.X == s.border() {
				m.hideTip()
				if err := widths.PointerDown(s.key, msg.X*UnitsPerCell); err != nil {
					m.err = err
				}
				return m, nil
			}
		}
		if s, ok := m.spanAt(msg.X); ok {
			m.hideTip()
			state := m.grid.ClickHeader(s.key)
			m.status = sortStatus(state)
			m.refresh()
		}
	case tea.MouseActionMotion:
		if m.drag.active {
			if _, err := widths.PointerMove(msg.X * UnitsPerCell); err != nil {
				m.err = err
			}
			return m, nil
		}
		m.hoverAt(msg.X, msg.Y)
	case tea.MouseActionRelease:
		if col, resizing := widths.Resizing(); resizing {
			if err := widths.PointerUp(); err != nil {
				m.err = err
			}
			m.status = fmt.Sprintf("%s width %d", col, widths.Width(col))
		}
	}
	return m, nil
}

// hoverAt tracks the header under the pointer and drives the hover delay.
func (m *Model) hoverAt(x, y int) {
	s, ok := m.spanAt(x)
	if y != headerLine || !ok {
		if m.hovered != "" {
			m.hovered = ""
			m.hideTip()
		}
		return
	}
	if s.key == m.hovered {
		return
	}
	m.hovered = s.key
	m.tipKey, m.tipText = "", ""
	m.hover.Enter(s.title, s.key)
}

func (m *Model) hideTip() {
	m.hover.Cancel()
	m.tipKey, m.tipText = "", ""
}

func (m *Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	switch {
	case key.Matches(msg, keys.Quit):
		m.hover.Close()
		return m, tea.Quit
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.scroll()
	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.table.Rows)-1 {
			m.cursor++
		}
		m.scroll()
	case key.Matches(msg, keys.Left):
		if m.column > 0 {
			m.column--
		}
	case key.Matches(msg, keys.Right):
		if m.column < len(m.table.Keys)-1 {
			m.column++
		}
	case key.Matches(msg, keys.Sort):
		m.hideTip()
		state := m.grid.ClickHeader(m.table.Keys[m.column])
		m.status = sortStatus(state)
		m.refresh()
	case key.Matches(msg, keys.Widen), key.Matches(msg, keys.Narrow):
		k := m.table.Keys[m.column]
		step := UnitsPerCell
		if key.Matches(msg, keys.Narrow) {
			step = -step
		}
		w, err := m.grid.Widths().SetWidth(k, m.grid.Widths().Width(k)+step)
		if err != nil {
			m.err = err
			break
		}
		m.status = fmt.Sprintf("%s width %d", k, w)
		m.refresh()
	case key.Matches(msg, keys.Drop):
		row, ok := m.selected()
		if !ok || m.actions == nil {
			break
		}
		if err := m.actions.Drop(context.Background(), row); err != nil {
			m.err = err
			break
		}
		m.status = "Dropped " + playerName(row)
		m.refresh()
	case key.Matches(msg, keys.Move):
		if _, ok := m.selected(); !ok || m.actions == nil {
			break
		}
		m.moving = true
		m.input.SetValue("")
		return m, m.input.Focus()
	}
	return m, nil
}

func (m *Model) updateMove(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.moving = false
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		m.moving = false
		m.input.Blur()
		row, ok := m.selected()
		if !ok {
			return m, nil
		}
		position := strings.ToUpper(strings.TrimSpace(m.input.Value()))
		if err := m.actions.Move(context.Background(), row, position); err != nil {
			m.err = err
			return m, nil
		}
		m.status = fmt.Sprintf("Moved %s to %s", playerName(row), position)
		m.refresh()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// selected returns the display row under the cursor.
func (m *Model) selected() (schema.DisplayRow, bool) {
	if m.cursor < 0 || m.cursor >= len(m.table.RowIDs) {
		return schema.DisplayRow{}, false
	}
	row, ok := m.byID[m.table.RowIDs[m.cursor]]
	return row, ok
}

// layout places every column on the screen, one separator cell apart.
func (m *Model) layout() []span {
	spans := make([]span, len(m.table.Keys))
	x := 0
	for i, k := range m.table.Keys {
		cells := max(1, m.grid.Widths().Width(k)/UnitsPerCell)
		spans[i] = span{key: k, title: m.table.Headers[i], start: x, cells: cells}
		x += cells + 1
	}
	return spans
}

func (m *Model) spanAt(x int) (span, bool) {
	for _, s := range m.layout() {
		if x >= s.start && x < s.border() {
			return s, true
		}
	}
	return span{}, false
}

// visibleRows is how many data rows fit between the tooltip line and the
// footer, status and help lines.
func (m *Model) visibleRows() int {
	return max(1, m.height-firstRow-3)
}

func (m *Model) scroll() {
	n := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+n {
		m.offset = m.cursor - n + 1
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	spans := m.layout()
	var b strings.Builder

	state := m.grid.SortState()
	for i, s := range spans {
		title := contract.DecorateHeader(s.title, s.key, state, false)
		style := headerStyle
		if state != nil && state.Key == s.key {
			style = activeStyle
		}
		b.WriteString(style.Render(fit(title, s.cells, false)))
		if i < len(spans)-1 {
			b.WriteString(headerStyle.Render(" "))
		}
	}
	b.WriteByte('\n')

	b.WriteString(m.tooltipView(spans))
	b.WriteByte('\n')

	end := min(len(m.table.Rows), m.offset+m.visibleRows())
	for ri := m.offset; ri < end; ri++ {
		line := renderCells(m.table.Rows[ri], spans)
		if ri == m.cursor {
			line = cursorStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if len(m.table.Footer) > 0 {
		b.WriteString(totalsStyle.Render(renderCells(m.table.Footer, spans)))
		b.WriteByte('\n')
	}

	switch {
	case m.moving:
		b.WriteString(m.input.View())
	case m.drag.active:
		col, _ := m.grid.Widths().Resizing()
		b.WriteString(statusStyle.Render(fmt.Sprintf("Resizing %s: %d", col, m.grid.Widths().Width(col))))
	case m.err != nil:
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status))
	default:
		b.WriteString(dimStyle.Render(fmt.Sprintf("%d slots, %d rows", len(m.slots), len(m.table.Rows))))
	}
	b.WriteByte('\n')
	b.WriteString(m.help.View(keys))
	return b.String()
}

// tooltipView draws the visible tooltip below its header, kept inside the terminal.
func (m *Model) tooltipView(spans []span) string {
	if m.tipText == "" {
		return ""
	}
	for _, s := range spans {
		if s.key != m.tipKey {
			continue
		}
		text := " " + m.tipText + " "
		pos := tooltip.Place(s.start, tooltipLine, lipgloss.Width(text), m.width)
		return strings.Repeat(" ", pos.X) + tipStyle.Render(text)
	}
	return ""
}

func renderCells(cells []string, spans []span) string {
	parts := make([]string, len(spans))
	for i, s := range spans {
		v := ""
		if i < len(cells) {
			v = cells[i]
		}
		parts[i] = fit(v, s.cells, isNumeric(s.key))
	}
	return strings.Join(parts, " ")
}

// fit pads or truncates s to exactly width cells.
func fit(s string, width int, right bool) string {
	if lipgloss.Width(s) > width {
		runes := []rune(s)
		if width <= 1 {
			s = string(runes[:max(0, width)])
		} else {
			for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
				runes = runes[:len(runes)-1]
			}
			s = string(runes) + "…"
		}
	}
	pad := strings.Repeat(" ", max(0, width-lipgloss.Width(s)))
	if right {
		return pad + s
	}
	return s + pad
}

func isNumeric(key string) bool {
	switch key {
	case schema.KeyPosition, schema.KeyName, schema.KeyTeam, schema.KeyPeriod:
		return false
	}
	return true
}

func sortStatus(state *schema.SortState) string {
	if state == nil {
		return "Unsorted"
	}
	return fmt.Sprintf("Sorted by %s %s", state.Key, contract.SortIndicator(state.Direction))
}

func playerName(row schema.DisplayRow) string {
	if row.Entity == nil {
		return "slot"
	}
	return row.Entity.DisplayName()
}

// ErrNotTerminal is returned when the grid cannot take over the terminal.
var ErrNotTerminal = errors.New("interactive grid needs a terminal")
