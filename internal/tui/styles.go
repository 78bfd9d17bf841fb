package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("12")).
			Padding(0, 2)

	timerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			PaddingLeft(2)

	headerStyle = lipgloss.NewStyle().
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")) // dim gray

	// Table styles
	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("12")).
				BorderBottom(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240"))

	tableSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("12")).
				Bold(true)

	tableCellStyle = lipgloss.NewStyle()

	// Search bar
	filterBarStyle = lipgloss.NewStyle().
			PaddingLeft(1)

	filterPromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("12")).
				Bold(true)

	filterCountStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))

	// Worklog form
	formBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(1, 2)

	formTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginBottom(1)

	formLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(10)

	formFocusedLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("12")).
				Bold(true).
				Width(10)

	formHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	// Status styles
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")) // red

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")) // green

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")) // yellow

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)
