package ui

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/faq/internal/accordion"
)

var ErrNoTTY = errors.New("interactive mode requires a TTY")

type keyMap struct {
	Next, Prev, First, Last key.Binding
	Toggle                  key.Binding
	PageUp, PageDown        key.Binding
	Help, Quit              key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:     key.NewBinding(key.WithKeys("tab", "down", "j"), key.WithHelp("tab/↓", "next")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab", "up", "k"), key.WithHelp("shift+tab/↑", "prev")),
		First:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home", "first")),
		Last:     key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end", "last")),
		Toggle:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "expand/collapse")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Toggle, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.First, k.Last},
		{k.Toggle, k.PageUp, k.PageDown},
		{k.Help, k.Quit},
	}
}

// Option configures the interactive model.
type Option func(*Model)

// WithLogger routes activation events to logger at debug level.
func WithLogger(logger *log.Logger) Option {
	return func(m *Model) { m.logger = logger }
}

// WithSize sets the initial size before the first WindowSizeMsg arrives.
func WithSize(width, height int) Option {
	return func(m *Model) { m.setSize(width, height) }
}

// Model is the Bubble Tea accordion. Tab moves focus between controls,
// Enter or Space activates the focused one, and a left click activates
// the control under the pointer.
type Model struct {
	list     *accordion.List
	focus    int
	width    int
	height   int
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	controls []lineSpan
	logger   *log.Logger
}

func NewModel(l *accordion.List, opts ...Option) *Model {
	m := &Model{
		list:     l,
		focus:    -1,
		viewport: viewport.New(defaultWidth, 23),
		help:     help.New(),
		keys:     defaultKeyMap(),
	}
	if l.Len() > 0 {
		m.focus = 0
	}
	m.setSize(defaultWidth, 24)
	for _, opt := range opts {
		opt(m)
	}
	m.refresh()
	return m
}

// Focused returns the focused item, if any.
func (m *Model) Focused() (*accordion.Item, bool) {
	if m.focus < 0 || m.focus >= m.list.Len() {
		return nil, false
	}
	return m.list.At(m.focus), true
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		m.refresh()
		m.scrollToFocus()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.moveFocus(1)
		case key.Matches(msg, m.keys.Prev):
			m.moveFocus(-1)
		case key.Matches(msg, m.keys.First):
			m.setFocus(0)
		case key.Matches(msg, m.keys.Last):
			m.setFocus(m.list.Len() - 1)
		case key.Matches(msg, m.keys.Toggle):
			if src, ok := accordion.ActivationForKey(msg.String()); ok {
				m.activate(m.focus, src)
			}
		case key.Matches(msg, m.keys.PageDown):
			m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height)
		case key.Matches(msg, m.keys.PageUp):
			m.viewport.SetYOffset(m.viewport.YOffset - m.viewport.Height)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.setSize(m.width, m.height)
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if i := m.controlAt(msg.Y); i >= 0 {
				m.focus = i
				m.activate(i, accordion.Pointer)
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) View() string {
	return m.viewport.View() + "\n" + m.help.View(m.keys)
}

func (m *Model) activate(i int, src accordion.Activation) {
	if i < 0 || i >= m.list.Len() {
		return
	}
	it := m.list.At(i)
	it.Activate(src)
	if m.logger != nil {
		m.logger.Debug("activate", "id", it.ID(), "source", src, "expanded", it.Expanded())
	}
	m.refresh()
	m.scrollToFocus()
}

func (m *Model) moveFocus(delta int) {
	n := m.list.Len()
	if n == 0 {
		return
	}
	m.setFocus(((m.focus+delta)%n + n) % n)
}

func (m *Model) setFocus(i int) {
	if i < 0 || i >= m.list.Len() {
		return
	}
	m.focus = i
	m.refresh()
	m.scrollToFocus()
}

// controlAt maps a screen row to a control index, or -1.
func (m *Model) controlAt(y int) int {
	if y < 0 || y >= m.viewport.Height {
		return -1
	}
	line := y + m.viewport.YOffset
	for i, span := range m.controls {
		if span.contains(line) {
			return i
		}
	}
	return -1
}

func (m *Model) setSize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width
	h := height - lipgloss.Height(m.help.View(m.keys))
	if h < 1 {
		h = 1
	}
	m.viewport.Width = width
	m.viewport.Height = h
}

func (m *Model) refresh() {
	lay := renderList(m.list, m.focus, m.width)
	m.controls = lay.controls
	m.viewport.SetContent(lay.content)
}

// scrollToFocus keeps the focused control inside the viewport.
func (m *Model) scrollToFocus() {
	if m.focus < 0 || m.focus >= len(m.controls) {
		return
	}
	span := m.controls[m.focus]
	top := m.viewport.YOffset
	bottom := top + m.viewport.Height - 1
	switch {
	case span.first < top:
		m.viewport.SetYOffset(span.first)
	case span.last > bottom:
		m.viewport.SetYOffset(span.last - m.viewport.Height + 1)
	}
}

// Run starts the interactive accordion and blocks until the user quits.
func Run(ctx context.Context, l *accordion.List, opts ...Option) error {
	if !isTTY(os.Stdout) {
		return ErrNoTTY
	}
	p := tea.NewProgram(NewModel(l, opts...),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}
