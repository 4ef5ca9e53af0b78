// Package bubbletea renders a search page in the terminal: a term input, a
// row of filter chips and the paginated result list, all driven by a
// search.Controller.
package bubbletea

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fwojciec/optsearch"
	"github.com/fwojciec/optsearch/search"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	chipStyle    = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())
	focusedStyle = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("12"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// focus identifies which control receives key events.
type focus int

const (
	focusInput focus = iota
	focusChips
)

// Model is the Bubble Tea model for one search page. All query evaluation
// is synchronous and in-memory, so actions run inline in Update rather
// than as commands.
type Model struct {
	controller *search.Controller
	chips      []*optsearch.Chip
	input      textinput.Model

	view  *search.View
	err   string
	focus focus

	// chip is the focused chip index; cursor is the highlighted option
	// row inside an open chip.
	chip   int
	cursor int

	// pending collects filter applications fired by chip callbacks during
	// the current Update, drained before returning.
	pending []pendingApply

	width int
}

type pendingApply struct {
	key    string
	values []string
}

// NewModel builds the page model. Chip configurations get their OnApply
// callback wired to the controller; any callback supplied by the caller is
// replaced.
func NewModel(controller *search.Controller, configs []optsearch.ChipConfig) (*Model, error) {
	m := &Model{controller: controller}

	for _, cfg := range configs {
		key := cfg.Key
		cfg.OnApply = func(selected []string) {
			m.pending = append(m.pending, pendingApply{key: key, values: selected})
		}
		chip, err := optsearch.NewChip(cfg)
		if err != nil {
			return nil, err
		}
		m.chips = append(m.chips, chip)
	}

	ti := textinput.New()
	ti.Placeholder = "regex over names, e.g. ^CONFIG_SPI"
	ti.Prompt = "/ "
	ti.Focus()
	m.input = ti

	return m, nil
}

// Init renders the initial, unsearched state.
func (m *Model) Init() tea.Cmd {
	m.refresh(func(ctx context.Context) (*search.View, error) {
		return m.controller.Refresh(ctx)
	})
	return textinput.Blink
}

// Update handles one message.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "pgup":
			if m.view != nil && m.view.CanPrev {
				m.refresh(m.controller.PrevPage)
			}
			return m, nil
		case "pgdown":
			if m.view != nil && m.view.CanNext {
				m.refresh(m.controller.NextPage)
			}
			return m, nil
		case "alt+left":
			m.refresh(m.controller.Back)
			m.input.SetValue(m.controller.Term())
			return m, nil
		case "alt+right":
			m.refresh(m.controller.Forward)
			m.input.SetValue(m.controller.Term())
			return m, nil
		}
		if m.focus == focusInput {
			return m.updateInput(msg)
		}
		return m.updateChips(msg)
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		term := m.input.Value()
		m.refresh(func(ctx context.Context) (*search.View, error) {
			return m.controller.SetTerm(ctx, term)
		})
		return m, nil
	case "tab":
		if len(m.chips) > 0 {
			m.focus = focusChips
			m.chip = 0
			m.input.Blur()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateChips(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	chip := m.chips[m.chip]

	if chip.Open() {
		switch msg.String() {
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down":
			if m.cursor < len(chip.Visible())-1 {
				m.cursor++
			}
		case " ":
			visible := chip.Visible()
			if m.cursor < len(visible) {
				opt := visible[m.cursor]
				_ = chip.Check(opt.Value, !opt.Checked)
			}
		case "enter", "esc":
			chip.Submit()
			m.drainPending()
		case "backspace":
			q := chip.Search()
			if q != "" {
				chip.SetSearch(q[:len(q)-1])
				m.cursor = 0
			}
		default:
			if msg.Type == tea.KeyRunes {
				chip.SetSearch(chip.Search() + string(msg.Runes))
				m.cursor = 0
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "tab":
		if m.chip == len(m.chips)-1 {
			m.focus = focusInput
			m.input.Focus()
			return m, textinput.Blink
		}
		m.chip++
	case "shift+tab":
		if m.chip == 0 {
			m.focus = focusInput
			m.input.Focus()
			return m, textinput.Blink
		}
		m.chip--
	case "esc":
		m.focus = focusInput
		m.input.Focus()
		return m, textinput.Blink
	case "enter", " ":
		chip.Toggle()
		m.cursor = 0
	}
	return m, nil
}

// refresh runs a controller action and installs its view, keeping the
// previous view on error so the stale-but-valid display survives.
func (m *Model) refresh(action func(context.Context) (*search.View, error)) {
	view, err := action(context.Background())
	if err != nil {
		m.err = optsearch.ErrorMessage(err)
		return
	}
	m.err = ""
	m.view = view
}

func (m *Model) drainPending() {
	for len(m.pending) > 0 {
		p := m.pending[0]
		m.pending = m.pending[1:]
		m.refresh(func(ctx context.Context) (*search.View, error) {
			return m.controller.ApplyFilter(ctx, p.key, p.values)
		})
	}
}

// View renders the page.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("optsearch"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if len(m.chips) > 0 {
		b.WriteString(m.chipRow())
		b.WriteString("\n")
	}

	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}

	if m.focus == focusChips && m.chips[m.chip].Open() {
		b.WriteString(m.dropdown())
		b.WriteString("\n")
	}

	if m.view != nil {
		b.WriteString(m.results())
	}

	b.WriteString(faintStyle.Render("tab: filters  pgup/pgdn: pages  alt+←/→: history  ctrl+c: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) chipRow() string {
	parts := make([]string, 0, len(m.chips))
	for i, chip := range m.chips {
		style := chipStyle
		if m.focus == focusChips && i == m.chip {
			style = focusedStyle
		}
		parts = append(parts, style.Render(chip.Summary()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) dropdown() string {
	chip := m.chips[m.chip]
	var b strings.Builder
	if q := chip.Search(); q != "" {
		b.WriteString("filter: " + q + "\n")
	}
	for i, opt := range chip.Visible() {
		mark := "[ ]"
		if opt.Checked {
			mark = "[x]"
		}
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(cursor + mark + " " + opt.Label + "\n")
	}
	return b.String()
}

func (m *Model) results() string {
	var b strings.Builder
	if m.view.Total == 0 {
		b.WriteString(faintStyle.Render("no matches"))
		b.WriteString("\n\n")
		return b.String()
	}

	b.WriteString(optsearch.FormatRecords(m.view.Records))
	b.WriteString("\n")

	if m.view.Pages > 1 || m.view.CanPrev {
		b.WriteString(faintStyle.Render(fmt.Sprintf(
			"page %d/%d  (%d matches)", m.view.Page, m.view.Pages, m.view.Total)))
		b.WriteString("\n")
	}
	return b.String()
}

// Run starts the program over the given controller and chip
// configurations and blocks until the user quits.
func Run(controller *search.Controller, configs []optsearch.ChipConfig) error {
	m, err := NewModel(controller, configs)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return optsearch.Errorf(optsearch.EINTERNAL, "terminal ui failed: %v", err)
	}
	return nil
}
