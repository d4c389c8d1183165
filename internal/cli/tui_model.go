package cli

import (
	"time"

	"github.com/ameliaholt/weekplan/internal/domain"
	"github.com/ameliaholt/weekplan/internal/grid"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// runTUI starts the full-screen editor.
func runTUI(app *App) error {
	_, err := tea.NewProgram(newTuiModel(app), tea.WithAltScreen()).Run()
	return err
}

type tuiMode int

const (
	modeBrowse tuiMode = iota
	modeDetails
	modeForm
	modeTitle
	modeConfirmClear
)

type keyMap struct {
	PrevDay   key.Binding
	NextDay   key.Binding
	PrevBlock key.Binding
	NextBlock key.Binding
	Open      key.Binding
	Add       key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Title     key.Binding
	Clear     key.Binding
	Share     key.Binding
	Export    key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PrevDay:   key.NewBinding(key.WithKeys("left", "h")),
		NextDay:   key.NewBinding(key.WithKeys("right", "l")),
		PrevBlock: key.NewBinding(key.WithKeys("up", "k")),
		NextBlock: key.NewBinding(key.WithKeys("down", "j")),
		Open:      key.NewBinding(key.WithKeys("enter")),
		Add:       key.NewBinding(key.WithKeys("a", "n")),
		Edit:      key.NewBinding(key.WithKeys("e")),
		Delete:    key.NewBinding(key.WithKeys("d")),
		Title:     key.NewBinding(key.WithKeys("t")),
		Clear:     key.NewBinding(key.WithKeys("c")),
		Share:     key.NewBinding(key.WithKeys("s")),
		Export:    key.NewBinding(key.WithKeys("x")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	}
}

// tuiModel is the root bubbletea model: a week grid with a moving
// selection, plus modal states for details, forms, and the clear
// confirmation.
type tuiModel struct {
	app  *App
	keys keyMap
	mode tuiMode

	dayIdx   int
	blockIdx int
	week     map[domain.Weekday][]grid.PositionedBlock

	// Form state, populated in modeForm and modeTitle.
	form       *huh.Form
	fields     *classFormFields
	editingID  string
	titleDraft string

	status   string
	width    int
	height   int
	quitting bool
}

func newTuiModel(app *App) tuiModel {
	m := tuiModel{
		app:    app,
		keys:   defaultKeyMap(),
		dayIdx: int(time.Now().Weekday()),
	}
	m.refresh()
	return m
}

func (m *tuiModel) refresh() {
	m.week = m.app.Geometry.Week(m.app.Schedule.Schedule())
	m.clampSelection()
}

func (m *tuiModel) day() domain.Weekday {
	return domain.Weekdays[m.dayIdx]
}

func (m *tuiModel) blocks() []grid.PositionedBlock {
	return m.week[m.day()]
}

func (m *tuiModel) clampSelection() {
	if n := len(m.blocks()); m.blockIdx >= n {
		m.blockIdx = n - 1
	}
	if m.blockIdx < 0 {
		m.blockIdx = 0
	}
}

func (m *tuiModel) selected() *grid.PositionedBlock {
	blocks := m.blocks()
	if len(blocks) == 0 {
		return nil
	}
	return &blocks[m.blockIdx]
}

func (m tuiModel) Init() tea.Cmd {
	return nil
}
