package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"

	"github.com/arkelian/stygian/cli"
	"github.com/arkelian/stygian/savefile"
	"github.com/arkelian/stygian/types"
)

// Model is the Bubble Tea model for the save inspector.
type Model struct {
	save    *savefile.SaveData
	loadErr error

	nav       *NavStack
	viewport  viewport.Model
	filter    textinput.Model
	filtering bool

	width    int
	height   int
	ready    bool
	quitting bool
}

// New creates an inspector over a decoded save. Either argument may be
// empty when the load degraded; the inspector still opens and shows the
// error in the header.
func New(save *savefile.SaveData, values []types.Value, loadErr error) Model {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.CharLimit = 64
	ti.PromptStyle = styleFilterPrompt

	return Model{
		save:    save,
		loadErr: loadErr,
		nav:     NewNavStack(frame{title: "save", rows: rootRows(values)}),
		filter:  ti,
	}
}

// Run loads the save file and starts the inspector. Save-side failures
// are non-fatal here too: the browser opens over an empty tree with the
// error on display.
func Run(savePath string) error {
	save, values, loadErr := cli.LoadSave(savePath)
	m := New(save, values, loadErr)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

// visibleRows applies the current filter to the top frame.
func (m Model) visibleRows() []row {
	return filterRows(m.nav.Top().rows, m.filter.Value())
}

// Update handles key presses and resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - 3 // header + filter line + status bar
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.KeyMap = viewportKeyMap()
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}
		m.refreshViewport()

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

// updateFilter routes keys into the filter input until enter/esc.
func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.filtering = false
		m.filter.Blur()
		m.clampCursor()
		m.refreshViewport()
		return m, nil
	case "esc":
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.clampCursor()
		m.refreshViewport()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.clampCursor()
	m.refreshViewport()
	return m, cmd
}

// updateBrowse handles tree navigation.
func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "/":
		m.filtering = true
		m.filter.Focus()
		return m, textinput.Blink

	case "up", "k":
		f := m.nav.Top()
		if f.cursor > 0 {
			f.cursor--
		}
		m.refreshViewport()

	case "down", "j":
		f := m.nav.Top()
		if f.cursor < len(m.visibleRows())-1 {
			f.cursor++
		}
		m.refreshViewport()

	case "enter", "right", "l":
		visible := m.visibleRows()
		f := m.nav.Top()
		if f.cursor < len(visible) && visible[f.cursor].isTable() {
			sel := visible[f.cursor]
			m.filter.SetValue("")
			m.nav.Push(frame{title: sel.label, rows: tableRows(sel.value.Table)})
			m.refreshViewport()
		}

	case "backspace", "esc", "left", "h":
		if m.nav.Pop() {
			m.filter.SetValue("")
			m.refreshViewport()
		}

	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// clampCursor keeps the cursor inside the filtered row set.
func (m *Model) clampCursor() {
	f := m.nav.Top()
	if n := len(m.visibleRows()); f.cursor >= n {
		f.cursor = n - 1
	}
	if f.cursor < 0 {
		f.cursor = 0
	}
}

// refreshViewport re-renders the current level and keeps the cursor on
// screen.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	visible := m.visibleRows()
	f := m.nav.Top()

	lines := lo.Map(visible, func(r row, i int) string {
		return m.renderRow(r, i == f.cursor)
	})
	m.viewport.SetContent(strings.Join(lines, "\n"))

	// Scroll just enough to keep the cursor visible.
	if f.cursor < m.viewport.YOffset {
		m.viewport.SetYOffset(f.cursor)
	} else if bottom := m.viewport.YOffset + m.viewport.Height - 1; f.cursor > bottom {
		m.viewport.SetYOffset(f.cursor - m.viewport.Height + 1)
	}
}

// renderRow renders one "key = value" line.
func (m Model) renderRow(r row, selected bool) string {
	label := styleKey.Render(r.label)
	var val string
	if r.isTable() {
		val = styleTableValue.Render(renderValue(r.value) + " ▸")
	} else {
		val = styleScalarValue.Render(renderValue(r.value))
	}
	line := fmt.Sprintf("  %s = %s", label, val)
	if selected {
		return styleCursor.Render(fmt.Sprintf("> %s = %s", r.label, renderValue(r.value)))
	}
	return line
}

// View renders header, tree, filter line, and status bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "loading…"
	}

	filterLine := " press / to filter"
	if m.filtering || m.filter.Value() != "" {
		filterLine = " " + m.filter.View()
	}

	return m.renderHeader() + "\n" +
		m.viewport.View() + "\n" +
		filterLine + "\n" +
		m.renderStatusBar()
}

// viewportKeyMap limits the viewport to page keys; arrows belong to the
// cursor.
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
	}
}
