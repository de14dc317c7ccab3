package console

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/courtsidehq/courtside/internal/models"
	"github.com/courtsidehq/courtside/pkg/console/mouse"
	"github.com/courtsidehq/courtside/pkg/console/overlay"
)

func (m *Model) selectedUser() *models.User {
	cur := m.RowCursor[SectionUsers]
	if cur >= 0 && cur < len(m.Users) {
		return &m.Users[cur]
	}
	return nil
}

var userGroupOptions = []overlay.SelectOption{
	{Value: "admin", Label: "Administrator"},
	{Value: "umpire", Label: "Umpire"},
	{Value: "viewer", Label: "Viewer"},
}

func userFormFields() []overlay.Field {
	return []overlay.Field{
		{Name: "email", Label: "Email", Kind: overlay.FieldText, Required: true, Placeholder: "name@example.com"},
		{Name: "name", Label: "Name", Kind: overlay.FieldText, Required: true},
		{Name: "group", Label: "Group", Kind: overlay.FieldSelect, Required: true, Options: userGroupOptions},
		{Name: "notes", Label: "Notes", Kind: overlay.FieldTextarea, Placeholder: "optional"},
	}
}

// openUserForm shows the create form, or the edit form when u is non-nil.
func (m *Model) openUserForm(u *models.User) {
	opts := overlay.FormOptions{ID: "user-form", Title: "New User", Width: 56}
	if u != nil {
		opts.Title = "Edit User"
		opts.EditMode = true
		opts.Initial = overlay.Values{
			"email": u.Email,
			"name":  u.Name,
		}
		if len(u.Groups) > 0 {
			opts.Initial["group"] = u.Groups[0]
		}
	}

	id := ""
	if u != nil {
		id = u.ID
	}
	m.Overlays.ShowForm(userFormFields(), func(v overlay.Values) {
		fields := map[string]string{
			"email": v["email"],
			"name":  v["name"],
			"group": v["group"],
			"notes": v["notes"],
		}
		var save tea.Cmd
		if id != "" {
			save = m.updateUserCmd(id, fields)
		} else {
			save = m.createUserCmd(fields)
		}
		m.queued = append(m.queued, m.Overlays.Preloader().Show(), save)
	}, opts)
}

var themeOptions = []overlay.SelectOption{
	{Value: "dark", Label: "Dark"},
	{Value: "light", Label: "Light"},
}

// openSettingsForm edits the local client config. Changes apply on the next
// start; nothing goes to the server.
func (m *Model) openSettingsForm() {
	theme := m.Config.Theme
	if theme == "" {
		theme = "dark"
	}
	fields := []overlay.Field{
		{Name: "server_url", Label: "Server URL", Kind: overlay.FieldText, Required: true, Placeholder: "https://example.com"},
		{Name: "theme", Label: "Theme", Kind: overlay.FieldSelect, Required: true, Options: themeOptions},
	}
	opts := overlay.FormOptions{
		ID:       "settings-form",
		Title:    "Settings",
		Width:    56,
		EditMode: true,
		Initial: overlay.Values{
			"server_url": m.Config.ServerURL,
			"theme":      theme,
		},
	}
	m.Overlays.ShowForm(fields, func(v overlay.Values) {
		m.Config.ServerURL = v["server_url"]
		m.Config.Theme = v["theme"]
		if m.SaveConfig != nil {
			if err := m.SaveConfig(m.Config); err != nil {
				m.Overlays.ShowError(err.Error(), "Settings")
			}
		}
	}, opts)
}

// confirmDelete opens the destructive-action dialogue for the row under the
// cursor. The dialogue stays open until the server round-trip completes.
func (m *Model) confirmDelete() (tea.Model, tea.Cmd) {
	switch m.ActiveSection {
	case SectionUsers:
		u := m.selectedUser()
		if u == nil {
			return m, nil
		}
		id := u.ID
		msg := fmt.Sprintf("Delete user %s? This cannot be undone.", u.Email)
		m.pendingConfirm = m.Overlays.ShowConfirm(msg, func() {
			m.queued = append(m.queued, m.Overlays.Preloader().Show(), m.deleteUserCmd(id))
		}, overlay.ConfirmOptions{Title: "Delete User", ConfirmText: " Delete ", Dangerous: true})

	case SectionTournaments:
		cur := m.RowCursor[SectionTournaments]
		if cur >= len(m.Tournaments) {
			return m, nil
		}
		t := m.Tournaments[cur]
		msg := fmt.Sprintf("Delete tournament %q and all of its players and matches?", t.Name)
		m.pendingConfirm = m.Overlays.ShowConfirm(msg, func() {
			m.queued = append(m.queued, m.Overlays.Preloader().Show(), m.deleteTournamentCmd(t.ID))
		}, overlay.ConfirmOptions{Title: "Delete Tournament", ConfirmText: " Delete ", Dangerous: true})
	}
	return m, nil
}

// Content panel rendering

func statusStyle(s models.TournamentStatus) lipgloss.Style {
	switch s {
	case models.TournamentActive:
		return statusActiveStyle
	case models.TournamentPending:
		return statusPendingStyle
	case models.TournamentCancelled:
		return statusCancelledStyle
	default:
		return statusCompletedStyle
	}
}

func (m *Model) renderDashboard(width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Dashboard") + "\n\n")

	if m.Dashboard == nil {
		b.WriteString(dimStyle.Render("No data yet. Press r to refresh."))
		return b.String()
	}

	b.WriteString(fmt.Sprintf("  Tournaments  %d\n", len(m.Dashboard.Tournaments)))
	b.WriteString(fmt.Sprintf("  Active       %s\n", statusActiveStyle.Render(fmt.Sprintf("%d", m.Dashboard.Active))))
	b.WriteString(fmt.Sprintf("  Users        %d\n\n", len(m.Dashboard.Users)))

	b.WriteString(tableHeadStyle.Render("Recent tournaments") + "\n")
	n := len(m.Dashboard.Tournaments)
	if n > 5 {
		n = 5
	}
	for _, t := range m.Dashboard.Tournaments[:n] {
		line := fmt.Sprintf("  %-28s %s", truncateCell(t.Name, 28), statusStyle(t.Status).Render(string(t.Status)))
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m *Model) renderTournaments(width, height int, mh *mouse.Handler, originX, originY int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Tournaments") + "\n\n")
	b.WriteString(tableHeadStyle.Render(fmt.Sprintf("  %-28s %-12s %-20s %7s", "Name", "Status", "Format", "Players")) + "\n")

	cur := m.RowCursor[SectionTournaments]
	for i, t := range m.Tournaments {
		line := fmt.Sprintf("  %-28s %-12s %-20s %7d",
			truncateCell(t.Name, 28), t.Status, t.Format, t.PlayerCount)
		if i == cur {
			line = rowSelectedStyle.Render(line)
		} else {
			line = rowStyle.Render(line)
		}
		b.WriteString(line + "\n")
		mh.HitMap.AddRect(fmt.Sprintf("row.%d", i), originX, originY+3+i, width, 1, t.ID)
	}
	if len(m.Tournaments) == 0 {
		b.WriteString(dimStyle.Render("  No tournaments."))
	}
	return b.String()
}

func (m *Model) renderPlayers(width, height int, mh *mouse.Handler, originX, originY int) string {
	var b strings.Builder
	title := "Players"
	for _, t := range m.Tournaments {
		if t.ID == m.PlayersFor {
			title = "Players — " + t.Name
			break
		}
	}
	b.WriteString(titleStyle.Render(title) + "\n\n")
	b.WriteString(tableHeadStyle.Render(fmt.Sprintf("  %-26s %-26s %5s %-12s", "Name", "Email", "Seed", "Status")) + "\n")

	cur := m.RowCursor[SectionPlayers]
	for i, p := range m.Players {
		line := fmt.Sprintf("  %-26s %-26s %5d %-12s",
			truncateCell(p.Name, 26), truncateCell(p.Email, 26), p.Seed, p.Status)
		if i == cur {
			line = rowSelectedStyle.Render(line)
		} else {
			line = rowStyle.Render(line)
		}
		b.WriteString(line + "\n")
		mh.HitMap.AddRect(fmt.Sprintf("row.%d", i), originX, originY+3+i, width, 1, p.ID)
	}
	if len(m.Players) == 0 {
		if m.PlayersFor == "" {
			b.WriteString(dimStyle.Render("  Pick a tournament first (Enter on the Tournaments list)."))
		} else {
			b.WriteString(dimStyle.Render("  No players registered."))
		}
	}
	return b.String()
}

func (m *Model) renderUsers(width, height int, mh *mouse.Handler, originX, originY int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Users") + "\n\n")
	b.WriteString(tableHeadStyle.Render(fmt.Sprintf("  %-28s %-22s %-16s %-8s", "Email", "Name", "Groups", "Active")) + "\n")

	cur := m.RowCursor[SectionUsers]
	for i, u := range m.Users {
		active := "yes"
		if !u.IsActive {
			active = errTextStyle.Render("no")
		}
		line := fmt.Sprintf("  %-28s %-22s %-16s %-8s",
			truncateCell(u.Email, 28), truncateCell(u.Name, 22),
			truncateCell(strings.Join(u.Groups, ","), 16), active)
		if i == cur {
			line = rowSelectedStyle.Render(line)
		} else {
			line = rowStyle.Render(line)
		}
		b.WriteString(line + "\n")
		mh.HitMap.AddRect(fmt.Sprintf("row.%d", i), originX, originY+3+i, width, 1, u.ID)
	}
	if len(m.Users) == 0 {
		b.WriteString(dimStyle.Render("  No users."))
	}
	b.WriteString("\n" + dimStyle.Render("  n new · e edit · d delete"))
	return b.String()
}

func (m *Model) renderSettings(width int) string {
	theme := m.Config.Theme
	if theme == "" {
		theme = "dark"
	}
	server := m.Config.ServerURL
	if server == "" {
		server = dimStyle.Render("(not set)")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Settings") + "\n\n")
	b.WriteString(fmt.Sprintf("  %-14s %s\n", "Server URL", server))
	b.WriteString(fmt.Sprintf("  %-14s %s\n", "Theme", theme))
	if m.Config.LastSection != "" {
		b.WriteString(fmt.Sprintf("  %-14s %s\n", "Last section", m.Config.LastSection))
	}
	b.WriteString("\n" + dimStyle.Render("  enter/e edit"))
	return b.String()
}

// truncateCell shortens a table cell to the given display width, appending
// an ellipsis when anything was cut. Width-aware, so multi-byte and
// wide-cell names stay intact.
func truncateCell(s string, max int) string {
	if lipgloss.Width(s) <= max {
		return s
	}
	return ansi.Truncate(s, max, "…")
}
