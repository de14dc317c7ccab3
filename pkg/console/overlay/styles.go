package overlay

import "github.com/charmbracelet/lipgloss"

// Colors matching the console palette in pkg/console/styles.go.
var (
	Primary      = lipgloss.Color("39")  // blue
	Error        = lipgloss.Color("196") // red
	Warning      = lipgloss.Color("214") // orange
	Muted        = lipgloss.Color("241") // gray
	BorderNormal = lipgloss.Color("240")
)

// Button styles.
var (
	Button = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Background(lipgloss.Color("238")).
		Padding(0, 2)

	ButtonFocused = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(Primary).
			Bold(true).
			Padding(0, 2)

	ButtonHover = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("245")).
			Padding(0, 2)

	ButtonDanger = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238")).
			Padding(0, 2)

	ButtonDangerFocused = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255")).
				Background(Error).
				Bold(true).
				Padding(0, 2)

	ButtonDangerHover = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255")).
				Background(lipgloss.Color("203")).
				Padding(0, 2)
)

// Text styles.
var (
	TitleStyle    = lipgloss.NewStyle().Bold(true)
	MutedText     = lipgloss.NewStyle().Foreground(Muted)
	Body          = lipgloss.NewStyle()
	FieldLabel    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	FieldError    = lipgloss.NewStyle().Foreground(Error)
	FieldRequired = lipgloss.NewStyle().Foreground(Error).Bold(true)
)

// List styles for select fields.
var (
	OptionNormal = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	OptionSelected = lipgloss.NewStyle().
			Background(lipgloss.Color("237")).
			Foreground(lipgloss.Color("255"))

	OptionFocused = lipgloss.NewStyle().
			Background(lipgloss.Color("237")).
			Foreground(lipgloss.Color("255")).
			Bold(true)

	OptionCursor = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)
)

// boxStyle returns the bordered modal box for a variant.
func boxStyle(v Variant) lipgloss.Style {
	border := BorderNormal
	switch v {
	case VariantDanger:
		border = Error
	case VariantWarning:
		border = Warning
	case VariantError:
		border = Error
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}
