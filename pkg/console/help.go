package console

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/courtsidehq/courtside/pkg/console/overlay"
)

const helpMarkdown = `# Courtside Console

## Navigation

| Key | Action |
|-----|--------|
| tab / shift+tab | next / previous section |
| 1-5 | jump to section |
| / | filter sections |
| b | collapse / expand sidebar |
| j / k, ↓ / ↑ | move row cursor |
| enter | open row (tournament → players, user → edit) |
| r | refresh |
| ? | this help |
| q | quit |

## Users

| Key | Action |
|-----|--------|
| n | new user |
| e | edit selected user |
| d | delete selected user |

Delete asks for confirmation. Destructive confirmations are styled red.

## Settings

Press enter or e on the Settings section to edit the server URL and theme.
Changes are saved to the local config file.
`

// openHelp shows the key reference as a scroll-free overlay. The markdown is
// rendered once per open; glamour failure falls back to the raw text.
func (m *Model) openHelp() {
	body := helpMarkdown
	if rendered, err := glamour.Render(helpMarkdown, "dark"); err == nil {
		body = rendered
	}

	modal := overlay.New(m.Overlays.Stack(), "Help",
		overlay.WithID("help"),
		overlay.WithWidth(68),
		overlay.WithHints(true),
	)
	for _, line := range strings.Split(strings.TrimRight(body, "\n"), "\n") {
		modal.AddSection(overlay.Text(line))
	}
	modal.AddSection(overlay.Spacer())
	modal.AddSection(overlay.Buttons(
		overlay.Btn(" Close ", overlay.ActionCancel, overlay.BtnPrimary()),
	))
	m.Overlays.Show(modal)
}
