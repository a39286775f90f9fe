package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha palette.
var (
	colorBase     = lipgloss.Color("#1E1E2E") // background
	colorSurface0 = lipgloss.Color("#313244") // card bg
	colorSurface1 = lipgloss.Color("#45475A") // lighter surface
	colorText     = lipgloss.Color("#CDD6F4") // primary text
	colorSubtext  = lipgloss.Color("#A6ADC8") // secondary text
	colorDim      = lipgloss.Color("#585B70") // muted, borders

	colorAccent   = lipgloss.Color("#CBA6F7") // mauve - primary accent
	colorBlue     = lipgloss.Color("#89B4FA") // section headers
	colorSapphire = lipgloss.Color("#74C7EC") // links, key hints
	colorGreen    = lipgloss.Color("#A6E3A1") // OK / success
	colorYellow   = lipgloss.Color("#F9E2AF") // warning
	colorRed      = lipgloss.Color("#F38BA8") // error / failed
	colorPeach    = lipgloss.Color("#FAB387") // streaming
	colorTeal     = lipgloss.Color("#94E2D5") // secondary highlight
	colorLavender = lipgloss.Color("#B4BEFE") // titles
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorLavender)

	sectionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorBlue)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorSubtext)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorText)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorSapphire).
			Bold(true)

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Background(colorSurface1).
				Bold(true)

	noticeStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	detailBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorAccent).
				Padding(1, 2)

	statusStreamingStyle = lipgloss.NewStyle().Foreground(colorPeach)
	statusStandardStyle  = lipgloss.NewStyle().Foreground(colorGreen)
	statusFailedStyle    = lipgloss.NewStyle().Foreground(colorRed)
)

func lipglossAccent() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorAccent)
}
