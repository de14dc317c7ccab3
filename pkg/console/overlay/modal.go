package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/courtsidehq/courtside/pkg/console/mouse"
)

// Variant selects the visual treatment of a modal.
type Variant int

const (
	VariantDefault Variant = iota
	VariantDanger
	VariantWarning
	VariantError
)

// Kind identifies the category of a blocking surface.
type Kind int

const (
	KindModal Kind = iota
	KindPreloader
)

// Values is the payload delivered to a confirm callback: form field name to
// raw text value. Nil for surfaces without fields.
type Values map[string]string

// Actions surfaced by the base modal itself.
const (
	ActionCancel  = "cancel"
	ActionConfirm = "confirm"
)

// SurfaceRegionID is the hit region registered for the modal box itself.
// Clicks inside it that miss every focusable are absorbed; clicks outside it
// are absorbed too, without closing. Accidental dismissal mid-action is worse
// than an extra keypress.
const SurfaceRegionID = "overlay.surface"

// Modal is the shared base for all titled modal surfaces. Lifecycle is
// Closed -> Open -> Closed; instances are not reused after closing.
type Modal struct {
	stack *Stack

	id        string
	title     string
	width     int
	variant   Variant
	showHints bool
	sections  []Section

	onConfirm func(Values)
	onCancel  func()

	primaryAction string

	open       bool
	focusID    string
	hoverID    string
	focusOrder []string

	// Box geometry from the last render, for mouse routing and compositing.
	boxX, boxY, boxW, boxH int
}

// Option configures a Modal.
type Option func(*Modal)

// WithID sets an explicit identity for the modal.
func WithID(id string) Option {
	return func(m *Modal) { m.id = id }
}

// WithWidth sets the modal width (default 50, clamped to the screen).
func WithWidth(w int) Option {
	return func(m *Modal) {
		if w > 0 {
			m.width = w
		}
	}
}

// WithVariant sets the visual style.
func WithVariant(v Variant) Option {
	return func(m *Modal) { m.variant = v }
}

// WithHints shows or hides the keyboard hint line at the bottom.
func WithHints(show bool) Option {
	return func(m *Modal) { m.showHints = show }
}

// WithPrimaryAction sets the action surfaced by a bare Enter press when no
// button is focused.
func WithPrimaryAction(action string) Option {
	return func(m *Modal) { m.primaryAction = action }
}

// WithOnConfirm registers the confirm callback. Confirm never closes the
// modal; closing after confirmation is the caller's responsibility.
func WithOnConfirm(fn func(Values)) Option {
	return func(m *Modal) { m.onConfirm = fn }
}

// WithOnCancel registers the cancel callback, invoked once on every close
// path: cancel button, escape key, or programmatic Close.
func WithOnCancel(fn func()) Option {
	return func(m *Modal) { m.onCancel = fn }
}

// New creates a closed modal bound to the given stack. The stack is passed
// explicitly rather than reached through a package global so tests can run
// against isolated instances.
func New(stack *Stack, title string, opts ...Option) *Modal {
	m := &Modal{
		stack:     stack,
		title:     title,
		width:     50,
		showHints: true,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddSection appends a content section. Returns the modal for chaining.
func (m *Modal) AddSection(s Section) *Modal {
	m.sections = append(m.sections, s)
	return m
}

// ID returns the modal identity.
func (m *Modal) ID() string { return m.id }

// Kind returns KindModal.
func (m *Modal) Kind() Kind { return KindModal }

// Title returns the modal title.
func (m *Modal) Title() string { return m.title }

// IsOpen reports whether the modal is currently open.
func (m *Modal) IsOpen() bool { return m.open }

// Open transitions Closed -> Open and enters the stack. Opening an
// already-open modal is a no-op so the stack is never double-counted.
func (m *Modal) Open() {
	if m.open {
		return
	}
	m.open = true
	m.stack.Enter()
}

// Close transitions Open -> Closed. Exactly one stack exit and at most one
// cancel callback per open, whichever path triggered the close. Closing an
// already-closed modal is absorbed.
func (m *Modal) Close() {
	if !m.open {
		return
	}
	m.open = false
	m.stack.Exit()
	if m.onCancel != nil {
		m.onCancel()
	}
}

// Confirm invokes the confirm callback with the given payload. It does not
// close the modal: a caller may intentionally leave it visible (for example
// until a page reload completes).
func (m *Modal) Confirm(v Values) {
	if m.onConfirm != nil {
		m.onConfirm(v)
	}
}

// FocusID returns the currently focused focusable, if any.
func (m *Modal) FocusID() string { return m.focusID }

// SetFocus moves focus to the given focusable ID.
func (m *Modal) SetFocus(id string) { m.focusID = id }

// HandleKey processes a key press while the modal is open. A non-empty
// return value is the activated action ID. Escape closes the modal and
// surfaces ActionCancel.
func (m *Modal) HandleKey(msg tea.KeyMsg) (string, tea.Cmd) {
	if !m.open {
		return "", nil
	}

	switch msg.String() {
	case "esc":
		m.Close()
		return ActionCancel, nil

	case "tab":
		m.cycleFocus(1)
		return "", nil

	case "shift+tab":
		m.cycleFocus(-1)
		return "", nil
	}

	// Let the focused section consume the key first.
	for _, s := range m.sections {
		if action, cmd := s.Update(msg, m.focusID); action != "" || cmd != nil {
			if action == ActionCancel {
				m.Close()
			}
			return action, cmd
		}
	}

	// Bare Enter with nothing focused activates the primary action.
	if msg.String() == "enter" && m.primaryAction != "" {
		return m.primaryAction, nil
	}

	return "", nil
}

// HandleMouse processes a mouse action while the modal is open. Clicks
// outside the modal surface are swallowed without closing; background
// interaction stays blocked for as long as the modal is open.
func (m *Modal) HandleMouse(act mouse.Action) (string, tea.Cmd) {
	if !m.open {
		return "", nil
	}

	switch act.Type {
	case mouse.ActionHover:
		m.hoverID = ""
		if act.Region != nil && act.Region.ID != SurfaceRegionID {
			m.hoverID = act.Region.ID
		}
		return "", nil

	case mouse.ActionClick:
		if act.Region == nil || act.Region.ID == SurfaceRegionID {
			return "", nil
		}
		m.focusID = act.Region.ID
		for _, s := range m.sections {
			if action, cmd := s.Update(clickActivation, m.focusID); action != "" || cmd != nil {
				if action == ActionCancel {
					m.Close()
				}
				return action, cmd
			}
		}
		return "", nil
	}

	return "", nil
}

// clickActivation is the synthetic key event delivered to a section when its
// focusable is clicked.
var clickActivation = tea.KeyMsg{Type: tea.KeyEnter}

// cycleFocus moves focus through the focus order from the last render.
func (m *Modal) cycleFocus(delta int) {
	if len(m.focusOrder) == 0 {
		return
	}
	idx := -1
	for i, id := range m.focusOrder {
		if id == m.focusID {
			idx = i
			break
		}
	}
	idx += delta
	if idx < 0 {
		idx = len(m.focusOrder) - 1
	} else if idx >= len(m.focusOrder) {
		idx = 0
	}
	m.focusID = m.focusOrder[idx]
}

// Render draws the modal box for the given screen size, recording box
// geometry and registering mouse hit regions measured from the rendered
// output. Render-then-measure keeps regions in sync with the drawing.
func (m *Modal) Render(screenW, screenH int, mh *mouse.Handler) string {
	boxW := m.width
	if boxW > screenW-4 {
		boxW = screenW - 4
	}
	if boxW < 20 {
		boxW = 20
	}
	contentWidth := boxW - 4 // border (2) + padding (2)

	// Default focus to the first focusable before sections render, so the
	// focused widget paints focused on this pass (not the next one).
	if m.focusID == "" && len(m.focusOrder) > 0 {
		m.focusID = m.focusOrder[0]
	}

	var lines []string
	var regions []FocusableInfo
	m.focusOrder = m.focusOrder[:0]

	lines = append(lines, TitleStyle.Render(truncate(m.title, contentWidth)))
	lines = append(lines, "")

	for _, s := range m.sections {
		rendered := s.Render(contentWidth, m.focusID, m.hoverID)
		sectionY := len(lines)
		for _, f := range rendered.Focusables {
			regions = append(regions, FocusableInfo{
				ID:      f.ID,
				OffsetX: f.OffsetX,
				OffsetY: sectionY + f.OffsetY,
				Width:   f.Width,
				Height:  f.Height,
			})
			m.focusOrder = append(m.focusOrder, f.ID)
		}
		lines = append(lines, strings.Split(rendered.Content, "\n")...)
	}

	if m.showHints {
		lines = append(lines, "")
		lines = append(lines, MutedText.Render(m.hintLine()))
	}

	// First render: the focus order was unknown before the loop above.
	if m.focusID == "" && len(m.focusOrder) > 0 {
		m.focusID = m.focusOrder[0]
	}

	content := strings.Join(lines, "\n")
	box := boxStyle(m.variant).Width(boxW - 2).Render(content)

	m.boxW = lipgloss.Width(box)
	m.boxH = lipgloss.Height(box)
	m.boxX = (screenW - m.boxW) / 2
	m.boxY = (screenH - m.boxH) / 2
	if m.boxX < 0 {
		m.boxX = 0
	}
	if m.boxY < 0 {
		m.boxY = 0
	}

	if mh != nil {
		// Surface region first so focusables registered after it win hits.
		mh.HitMap.AddRect(SurfaceRegionID, m.boxX, m.boxY, m.boxW, m.boxH, nil)
		for _, r := range regions {
			// +2: border and padding; +1: top border.
			mh.HitMap.AddRect(r.ID, m.boxX+2+r.OffsetX, m.boxY+1+r.OffsetY, r.Width, r.Height, nil)
		}
	}

	return box
}

// Position returns the top-left corner of the box from the last render.
func (m *Modal) Position() (x, y int) {
	return m.boxX, m.boxY
}

// hintLine returns the keyboard hint text.
func (m *Modal) hintLine() string {
	return "tab:next  enter:select  esc:cancel"
}
