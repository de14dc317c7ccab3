package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FieldKind selects the input widget for a form field.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldTextarea
	FieldSelect
)

// SelectOption is one choice of a select field.
type SelectOption struct {
	Value string
	Label string
}

// Field describes a single form field. Name must be unique within the form.
type Field struct {
	Name        string
	Label       string
	Kind        FieldKind
	Placeholder string
	Required    bool
	Options     []SelectOption // FieldSelect only
}

// ActionSubmit is surfaced when Enter is pressed on a single-line input.
const ActionSubmit = "submit"

// fieldFocusID returns the focusable ID for a field.
func fieldFocusID(name string) string {
	return "field." + name
}

// maxVisibleOptions caps how many select options render at once; longer
// lists scroll.
const maxVisibleOptions = 5

// fieldSection renders one form field: label, widget, and the inline
// validation message when the last submit flagged it.
type fieldSection struct {
	field Field

	input  *textinput.Model // FieldText
	area   *textarea.Model  // FieldTextarea
	selIdx int              // FieldSelect; -1 = nothing chosen
	scroll int              // FieldSelect scroll offset

	// err points at the form's shared error map so validation results from
	// Submit show up on the next render without rebuilding sections.
	errs map[string]string
}

func newFieldSection(f Field, initial string, errs map[string]string) *fieldSection {
	s := &fieldSection{field: f, selIdx: -1, errs: errs}

	switch f.Kind {
	case FieldText:
		in := textinput.New()
		in.Placeholder = f.Placeholder
		in.CharLimit = 256
		in.SetValue(initial)
		s.input = &in

	case FieldTextarea:
		ta := textarea.New()
		ta.Placeholder = f.Placeholder
		ta.SetHeight(3)
		ta.ShowLineNumbers = false
		ta.SetValue(initial)
		s.area = &ta

	case FieldSelect:
		for i, opt := range f.Options {
			if opt.Value == initial && initial != "" {
				s.selIdx = i
				break
			}
		}
	}

	return s
}

// Value returns the field's current raw text value. Select fields yield the
// chosen option's value, or "" when nothing is chosen.
func (s *fieldSection) Value() string {
	switch s.field.Kind {
	case FieldText:
		return s.input.Value()
	case FieldTextarea:
		return s.area.Value()
	case FieldSelect:
		if s.selIdx >= 0 && s.selIdx < len(s.field.Options) {
			return s.field.Options[s.selIdx].Value
		}
	}
	return ""
}

func (s *fieldSection) Render(contentWidth int, focusID, hoverID string) RenderedSection {
	id := fieldFocusID(s.field.Name)
	focused := focusID == id

	label := FieldLabel.Render(s.field.Label)
	if s.field.Required {
		label += FieldRequired.Render(" *")
	}

	var widget string
	var widgetHeight int
	switch s.field.Kind {
	case FieldText:
		if focused {
			s.input.Focus()
		} else {
			s.input.Blur()
		}
		s.input.Width = contentWidth - 4
		widget = s.input.View()
		widgetHeight = 1

	case FieldTextarea:
		if focused {
			s.area.Focus()
		} else {
			s.area.Blur()
		}
		s.area.SetWidth(contentWidth)
		widget = s.area.View()
		widgetHeight = lipgloss.Height(widget)

	case FieldSelect:
		widget, widgetHeight = s.renderOptions(contentWidth, focused)
	}

	lines := []string{label, widget}
	if msg, ok := s.errs[s.field.Name]; ok && msg != "" {
		lines = append(lines, FieldError.Render(msg))
	}

	return RenderedSection{
		Content: strings.Join(lines, "\n"),
		Focusables: []FocusableInfo{{
			ID:      id,
			OffsetX: 0,
			OffsetY: 1, // below the label line
			Width:   contentWidth,
			Height:  widgetHeight,
		}},
	}
}

// renderOptions renders the select option list with scroll indicators,
// keeping the chosen option visible.
func (s *fieldSection) renderOptions(contentWidth int, focused bool) (string, int) {
	opts := s.field.Options
	if len(opts) == 0 {
		return MutedText.Render("(no options)"), 1
	}

	visible := maxVisibleOptions
	if visible > len(opts) {
		visible = len(opts)
	}

	sel := s.selIdx
	if sel < 0 {
		sel = 0
	}
	if sel < s.scroll {
		s.scroll = sel
	} else if sel >= s.scroll+visible {
		s.scroll = sel - visible + 1
	}
	maxScroll := len(opts) - visible
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}
	if s.scroll < 0 {
		s.scroll = 0
	}

	var sb strings.Builder
	height := 0
	for i := 0; i < visible; i++ {
		idx := s.scroll + i
		opt := opts[idx]

		style := OptionNormal
		chosen := idx == s.selIdx
		switch {
		case chosen && focused:
			style = OptionFocused
		case chosen:
			style = OptionSelected
		}

		cursor := "  "
		if chosen {
			cursor = OptionCursor.Render("> ")
		}

		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(cursor + style.Render(truncate(opt.Label, contentWidth-2)))
		height++
	}

	out := sb.String()
	if s.scroll > 0 {
		out = MutedText.Render("↑ more above") + "\n" + out
		height++
	}
	if s.scroll+visible < len(opts) {
		out = out + "\n" + MutedText.Render("↓ more below")
		height++
	}
	return out, height
}

func (s *fieldSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	if focusID != fieldFocusID(s.field.Name) {
		return "", nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return "", nil
	}

	switch s.field.Kind {
	case FieldText:
		if keyMsg.String() == "enter" {
			return ActionSubmit, nil
		}
		// The widget may not have rendered focused yet; a blurred textinput
		// drops keys, so sync focus before forwarding.
		if !s.input.Focused() {
			s.input.Focus()
		}
		updated, cmd := s.input.Update(keyMsg)
		*s.input = updated
		return "", cmd

	case FieldTextarea:
		// Enter inserts a newline here; submission goes through the buttons.
		if !s.area.Focused() {
			s.area.Focus()
		}
		updated, cmd := s.area.Update(keyMsg)
		*s.area = updated
		return "", cmd

	case FieldSelect:
		switch keyMsg.String() {
		case "up", "k":
			if s.selIdx > 0 {
				s.selIdx--
			} else if s.selIdx < 0 {
				s.selIdx = 0
			}
		case "down", "j":
			if s.selIdx < len(s.field.Options)-1 {
				s.selIdx++
			}
		case "home":
			if len(s.field.Options) > 0 {
				s.selIdx = 0
			}
		case "end":
			if len(s.field.Options) > 0 {
				s.selIdx = len(s.field.Options) - 1
			}
		}
	}

	return "", nil
}
