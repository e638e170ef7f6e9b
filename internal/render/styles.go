package render

import "github.com/charmbracelet/lipgloss"

var (
	// titleStyle is used for the project name heading.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")). // Purple
			MarginBottom(1)

	// headerStyle is used for the Pending/Done column headers.
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")) // Light blue

	// pendingStyle is used for open task lines.
	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")) // Light gray

	// doneStyle is used for completed task lines.
	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")). // Dark gray
			Strikethrough(true)

	// tagStyle is used for the task's tag annotation.
	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")) // Light purple

	// dateStyle is used for the date-added annotation.
	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")) // Dark gray
)
