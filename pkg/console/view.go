package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/courtsidehq/courtside/pkg/console/overlay"
)

const (
	sidebarWidth          = 16
	sidebarCollapsedWidth = 3
)

// sidebarCols is the rendered sidebar width. Filter mode forces the full
// width so the query and match highlights stay readable.
func (m *Model) sidebarCols() int {
	if m.SidebarCollapsed && !m.FilterMode {
		return sidebarCollapsedWidth
	}
	return sidebarWidth
}

// View renders the full screen: login or main layout, then the overlay
// layer on top. The hit map is rebuilt on every render.
func (m *Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}
	m.Mouse.Clear()

	var screen string
	if !m.LoggedIn() {
		screen = m.loginView()
	} else {
		screen = m.mainView()
	}
	return m.Overlays.Compose(screen, m.Width, m.Height, m.Mouse)
}

func (m *Model) loginView() string {
	backdrop := renderBackdrop(m.Width, m.Height, m.BackdropPhase)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Courtside Admin") + "\n\n")
	b.WriteString("Email\n" + m.EmailInput.View() + "\n\n")
	b.WriteString("Password\n" + m.PasswordInput.View() + "\n\n")
	b.WriteString(dimStyle.Render("enter sign in · esc quit"))

	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorPrimary).
		Padding(1, 2).
		Render(b.String())

	boxW := lipgloss.Width(box)
	boxH := lipgloss.Height(box)
	x := (m.Width - boxW) / 2
	y := (m.Height - boxH) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return overlay.Composite(backdrop, box, x, y, m.Width, m.Height)
}

func (m *Model) mainView() string {
	header := m.renderHeader()
	footer := m.renderFooter()
	bodyHeight := m.Height - 2
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	sidebar := m.renderSidebar(bodyHeight)
	contentX := m.sidebarCols() + 2
	contentWidth := m.Width - contentX
	if contentWidth < 10 {
		contentWidth = 10
	}

	var content string
	switch m.ActiveSection {
	case SectionDashboard:
		content = m.renderDashboard(contentWidth)
	case SectionTournaments:
		content = m.renderTournaments(contentWidth, bodyHeight, m.Mouse, contentX, 1)
	case SectionPlayers:
		content = m.renderPlayers(contentWidth, bodyHeight, m.Mouse, contentX, 1)
	case SectionUsers:
		content = m.renderUsers(contentWidth, bodyHeight, m.Mouse, contentX, 1)
	case SectionSettings:
		content = m.renderSettings(contentWidth)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Height(bodyHeight).Render(sidebar),
		lipgloss.NewStyle().PaddingLeft(1).Height(bodyHeight).Render(content),
	)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m *Model) renderHeader() string {
	left := headerStyle.Render("courtside")
	who := ""
	if m.Session != nil {
		who = m.Session.DisplayName()
		if groups := m.Session.GroupList(); groups != "" {
			who += dimStyle.Render(" ("+groups+")")
		}
	}
	refreshed := ""
	if !m.LastRefresh.IsZero() {
		refreshed = dimStyle.Render("refreshed " + m.LastRefresh.Format("15:04:05"))
	}
	right := strings.TrimSpace(who + "  " + refreshed)

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m *Model) renderSidebar(height int) string {
	width := m.sidebarCols()
	collapsed := width < sidebarWidth

	var b strings.Builder
	if m.FilterMode {
		b.WriteString(sidebarItemStyle.Render("/"+m.Filter+"█") + "\n")
	} else if collapsed {
		b.WriteString(dimStyle.Render(" §") + "\n")
	} else {
		b.WriteString(dimStyle.Render(" sections") + "\n")
	}

	entries := filterSections(filterIf(m.FilterMode, m.Filter))
	for row, e := range entries {
		label := e.Section.String()
		if collapsed {
			// just the section number; names reappear on expand
			label = fmt.Sprintf("%d", int(e.Section)+1)
		}
		var line string
		if e.Section == m.ActiveSection && !m.FilterMode {
			line = sidebarActiveStyle.Width(width).Render(label)
		} else if collapsed {
			line = sidebarItemStyle.Width(width).Render(label)
		} else {
			line = sidebarItemStyle.Width(width).Render(highlightMatches(label, e.Matches))
		}
		b.WriteString(line + "\n")
		// rows start under the header line
		m.Mouse.HitMap.AddRect(fmt.Sprintf("sidebar.%d", int(e.Section)), 0, 2+row, width, 1, nil)
	}

	return sidebarStyle.Width(width + 1).Height(height).Render(b.String())
}

func filterIf(on bool, filter string) string {
	if on {
		return filter
	}
	return ""
}

func (m *Model) renderFooter() string {
	keys := []struct{ key, label string }{
		{"tab", "section"},
		{"/", "filter"},
		{"b", "sidebar"},
		{"enter", "open"},
		{"r", "refresh"},
		{"?", "help"},
		{"q", "quit"},
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, footerKeyStyle.Render(k.key)+footerStyle.Render(" "+k.label))
	}
	return footerStyle.Render(" ") + strings.Join(parts, footerStyle.Render("  ·  "))
}
