package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader shows the container metadata above the tree, or the load
// error when the inspector opened in degraded mode.
func (m Model) renderHeader() string {
	if m.save == nil {
		msg := "no save data"
		if m.loadErr != nil {
			msg = m.loadErr.Error()
		}
		return styleError.Render(" " + msg)
	}

	ts := time.Unix(int64(m.save.Timestamp), 0).UTC().Format("2006-01-02 15:04:05")
	mode := "normal"
	if m.save.HellModeEnabled {
		mode = "hell"
	}
	if m.save.GodModeEnabled {
		mode += "+god"
	}

	left := styleHeader.Render(fmt.Sprintf(" save v%d", m.save.Version))
	fields := styleHeaderField.Render(fmt.Sprintf(
		"  %s  runs:%d  meta:%d  shrine:%d  mode:%s  map:%s",
		ts, m.save.Runs, m.save.ActiveMetaPoints, m.save.ActiveShrinePoints,
		mode, m.save.CurrentMapName))
	return left + fields
}

// renderStatusBar produces a full-width inverted status line showing the
// breadcrumb path, cursor position, and key hints.
func (m Model) renderStatusBar() string {
	left := " " + m.nav.Path()
	if m.loadErr != nil && m.save != nil {
		left += "  (" + m.loadErr.Error() + ")"
	}

	visible := m.visibleRows()
	pos := "empty"
	if len(visible) > 0 {
		pos = fmt.Sprintf("%d/%d", m.nav.Top().cursor+1, len(visible))
	}
	right := fmt.Sprintf("%s | enter:open  bksp:up  /:filter  q:quit ", pos)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
