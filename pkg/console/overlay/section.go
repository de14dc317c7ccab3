package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FocusableInfo describes a focusable element inside a rendered section,
// positioned relative to the section's top-left corner. The modal measures
// rendered output and translates these into absolute mouse hit regions, so
// hit regions can never drift out of sync with what was drawn.
type FocusableInfo struct {
	ID      string
	OffsetX int
	OffsetY int
	Width   int
	Height  int
}

// RenderedSection is the output of rendering a single section.
type RenderedSection struct {
	Content    string
	Focusables []FocusableInfo
}

// Section is a composable piece of modal content.
type Section interface {
	// Render produces the section content for the given width. focusID and
	// hoverID identify the currently focused/hovered focusable, if any.
	Render(contentWidth int, focusID, hoverID string) RenderedSection

	// Update handles input when one of this section's focusables is focused.
	// A non-empty return value is an action ID surfaced to the caller.
	Update(msg tea.Msg, focusID string) (string, tea.Cmd)
}

// textSection renders static text, wrapped to the content width.
type textSection struct {
	text  string
	style lipgloss.Style
}

// Text creates a static text section. The string is rendered verbatim as
// terminal text; it is never interpreted as markup.
func Text(s string) Section {
	return &textSection{text: s, style: Body}
}

// StyledText creates a static text section with a custom style.
func StyledText(s string, style lipgloss.Style) Section {
	return &textSection{text: s, style: style}
}

func (s *textSection) Render(contentWidth int, focusID, hoverID string) RenderedSection {
	wrapped := lipgloss.NewStyle().Width(contentWidth).Render(s.style.Render(s.text))
	return RenderedSection{Content: wrapped}
}

func (s *textSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	return "", nil
}

// spacerSection renders a single blank line.
type spacerSection struct{}

// Spacer creates a blank-line section.
func Spacer() Section {
	return spacerSection{}
}

func (spacerSection) Render(contentWidth int, focusID, hoverID string) RenderedSection {
	return RenderedSection{Content: ""}
}

func (spacerSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	return "", nil
}

// ButtonRole selects the visual treatment of a button.
type ButtonRole int

const (
	RoleSecondary ButtonRole = iota
	RolePrimary
	RoleDanger
)

// ButtonDef describes a single button in a button row.
type ButtonDef struct {
	Label  string
	Action string
	Role   ButtonRole
}

// BtnOption configures a button.
type BtnOption func(*ButtonDef)

// Btn creates a button definition. Activating the button surfaces its action
// ID from HandleKey / HandleMouse.
func Btn(label, action string, opts ...BtnOption) ButtonDef {
	b := ButtonDef{Label: label, Action: action}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// BtnPrimary marks a button as the primary action.
func BtnPrimary() BtnOption {
	return func(b *ButtonDef) { b.Role = RolePrimary }
}

// BtnDanger marks a button as destructive, selecting the danger styling.
// Styling only; activation behaves like any other button.
func BtnDanger() BtnOption {
	return func(b *ButtonDef) { b.Role = RoleDanger }
}

// buttonsSection renders a horizontal row of buttons.
type buttonsSection struct {
	buttons []ButtonDef
}

// Buttons creates a button row section.
func Buttons(btns ...ButtonDef) Section {
	return &buttonsSection{buttons: btns}
}

func (s *buttonsSection) Render(contentWidth int, focusID, hoverID string) RenderedSection {
	var parts []string
	var focusables []FocusableInfo
	x := 0

	for i, b := range s.buttons {
		style := buttonStyle(b, b.Action == focusID, b.Action == hoverID)
		rendered := style.Render(b.Label)
		w := lipgloss.Width(rendered)

		if i > 0 {
			parts = append(parts, "  ")
			x += 2
		}
		parts = append(parts, rendered)
		focusables = append(focusables, FocusableInfo{
			ID:      b.Action,
			OffsetX: x,
			OffsetY: 0,
			Width:   w,
			Height:  1,
		})
		x += w
	}

	return RenderedSection{
		Content:    strings.Join(parts, ""),
		Focusables: focusables,
	}
}

func (s *buttonsSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return "", nil
	}
	if keyMsg.String() != "enter" && keyMsg.String() != " " {
		return "", nil
	}
	for _, b := range s.buttons {
		if b.Action == focusID {
			return b.Action, nil
		}
	}
	return "", nil
}

// buttonStyle picks the lipgloss style for a button given its role and state.
func buttonStyle(b ButtonDef, focused, hovered bool) lipgloss.Style {
	if b.Role == RoleDanger {
		switch {
		case focused:
			return ButtonDangerFocused
		case hovered:
			return ButtonDangerHover
		default:
			return ButtonDanger
		}
	}
	switch {
	case focused:
		return ButtonFocused
	case hovered:
		return ButtonHover
	default:
		return Button
	}
}
