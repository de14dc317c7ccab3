package overlay

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/courtsidehq/courtside/pkg/console/mouse"
)

// Preloader is the spinner surface shown around in-flight work. It is not a
// modal: no title, no user-initiated close, not dismissable by escape or
// clicking elsewhere. It blocks all input while visible.
//
// Show and Hide are idempotent. Overlapping async triggers (a response
// handler and a load-timeout fallback both hiding it) must not double-count
// the stack.
type Preloader struct {
	stack   *Stack
	spin    spinner.Model
	label   string
	visible bool

	boxX, boxY, boxW, boxH int
}

// NewPreloader returns a hidden preloader bound to the given stack.
func NewPreloader(stack *Stack) *Preloader {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(Primary)

	return &Preloader{
		stack: stack,
		spin:  sp,
		label: "Loading…",
	}
}

// ID returns the preloader identity.
func (p *Preloader) ID() string { return "preloader" }

// Kind returns KindPreloader.
func (p *Preloader) Kind() Kind { return KindPreloader }

// IsOpen reports whether the preloader is visible.
func (p *Preloader) IsOpen() bool { return p.visible }

// SetLabel sets the text shown next to the spinner.
func (p *Preloader) SetLabel(label string) {
	if label != "" {
		p.label = label
	}
}

// Show makes the preloader visible, entering the stack once. Calling Show
// while already visible is a no-op.
func (p *Preloader) Show() tea.Cmd {
	if p.visible {
		return nil
	}
	p.visible = true
	p.stack.Enter()
	return p.spin.Tick
}

// Open satisfies the Overlay interface; equivalent to Show without the tick.
func (p *Preloader) Open() {
	p.Show()
}

// Hide removes the preloader, exiting the stack once. Calling Hide while
// already hidden is a no-op.
func (p *Preloader) Hide() {
	if !p.visible {
		return
	}
	p.visible = false
	p.label = "Loading…"
	p.stack.Exit()
}

// Close satisfies the Overlay interface.
func (p *Preloader) Close() {
	p.Hide()
}

// Update advances the spinner animation while visible.
func (p *Preloader) Update(msg tea.Msg) tea.Cmd {
	if !p.visible {
		return nil
	}
	if _, ok := msg.(spinner.TickMsg); !ok {
		return nil
	}
	var cmd tea.Cmd
	p.spin, cmd = p.spin.Update(msg)
	return cmd
}

// HandleKey swallows every key: the preloader exposes no user action.
func (p *Preloader) HandleKey(tea.KeyMsg) (string, tea.Cmd) {
	return "", nil
}

// HandleMouse swallows clicks and scrolls so they never reach the
// background.
func (p *Preloader) HandleMouse(mouse.Action) (string, tea.Cmd) {
	return "", nil
}

// Render draws the spinner box centered on the screen.
func (p *Preloader) Render(screenW, screenH int, mh *mouse.Handler) string {
	content := p.spin.View() + " " + p.label
	box := boxStyle(VariantDefault).Render(content)

	p.boxW = lipgloss.Width(box)
	p.boxH = lipgloss.Height(box)
	p.boxX = (screenW - p.boxW) / 2
	p.boxY = (screenH - p.boxH) / 2
	if p.boxX < 0 {
		p.boxX = 0
	}
	if p.boxY < 0 {
		p.boxY = 0
	}

	if mh != nil {
		// The whole screen belongs to the preloader while it is up.
		mh.HitMap.AddRect(SurfaceRegionID, 0, 0, screenW, screenH, nil)
	}

	return box
}

// Position returns the top-left corner of the box from the last render.
func (p *Preloader) Position() (x, y int) {
	return p.boxX, p.boxY
}
