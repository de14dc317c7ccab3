package console

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// backgroundFrameInterval is how often the idle backdrop advances one frame.
// Slow on purpose so the shimmer reads as ambient, not busy.
const backgroundFrameInterval = 200 * time.Millisecond

// backdropMsg drives the background animation.
type backdropMsg time.Time

func backdropTick() tea.Cmd {
	return tea.Tick(backgroundFrameInterval, func(t time.Time) tea.Msg {
		return backdropMsg(t)
	})
}

// backdropShades cycle from dark to slightly lighter and back.
var backdropShades = []lipgloss.Color{"233", "234", "235", "234"}

// renderBackdrop paints the faint diagonal weave behind the login screen.
// phase shifts the pattern one cell per frame.
func renderBackdrop(width, height, phase int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	var b strings.Builder
	for y := 0; y < height; y++ {
		var line strings.Builder
		for x := 0; x < width; x += 2 {
			shade := backdropShades[((x/2)+y+phase)%len(backdropShades)]
			line.WriteString(lipgloss.NewStyle().Foreground(shade).Render("╱ "))
		}
		row := line.String()
		b.WriteString(lipgloss.NewStyle().MaxWidth(width).Render(row))
		if y < height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
