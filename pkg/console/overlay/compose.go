package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Composite splices an overlay box into the background at (x, y), preserving
// the background around it. Lines are cut at display-cell boundaries with
// ANSI-aware truncation so styled background content survives on both sides
// of the box.
func Composite(background, box string, x, y, screenW, screenH int) string {
	bgLines := strings.Split(background, "\n")
	boxLines := strings.Split(box, "\n")

	// Normalize the background to the full screen height.
	for len(bgLines) < screenH {
		bgLines = append(bgLines, "")
	}

	boxW := lipgloss.Width(box)

	for i, boxLine := range boxLines {
		row := y + i
		if row < 0 || row >= len(bgLines) {
			continue
		}

		bg := bgLines[row]
		left := ansi.Truncate(bg, x, "")
		leftW := lipgloss.Width(left)
		if leftW < x {
			left += strings.Repeat(" ", x-leftW)
		}

		right := ""
		if lipgloss.Width(bg) > x+boxW {
			right = ansi.TruncateLeft(bg, x+boxW, "")
		}

		bgLines[row] = left + boxLine + right
	}

	return strings.Join(bgLines, "\n")
}
