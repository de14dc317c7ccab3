package console

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("39")
	colorMuted   = lipgloss.Color("241")
	colorDim     = lipgloss.Color("236")
	colorError   = lipgloss.Color("196")
	colorOK      = lipgloss.Color("42")
	colorWarn    = lipgloss.Color("214")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	sidebarStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(colorDim).
			PaddingRight(1)

	sidebarItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("250")).
				PaddingLeft(1)

	sidebarActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("231")).
				Background(colorPrimary).
				PaddingLeft(1)

	sidebarMatchStyle = lipgloss.NewStyle().
				Foreground(colorWarn).
				Underline(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231")).
			Background(colorDim).
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	footerKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Bold(true)

	tableHeadStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorMuted).
			Underline(true)

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	rowSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("231")).
				Background(colorDim).
				Bold(true)

	statusActiveStyle    = lipgloss.NewStyle().Foreground(colorOK)
	statusPendingStyle   = lipgloss.NewStyle().Foreground(colorWarn)
	statusCompletedStyle = lipgloss.NewStyle().Foreground(colorMuted)
	statusCancelledStyle = lipgloss.NewStyle().Foreground(colorError)

	errTextStyle = lipgloss.NewStyle().Foreground(colorError)

	dimStyle = lipgloss.NewStyle().Foreground(colorMuted)
)
