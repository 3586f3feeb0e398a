package tui

import "github.com/charmbracelet/lipgloss"

// Bar colors, one per highlight role. The palette mirrors the classic
// visualizer scheme: warm tones for activity, green for finalized.
var (
	barStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6aa0ff"))
	compareStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffe08a"))
	swapStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#fa8072"))
	pivotStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#90ee90"))
	mergeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#a390ee"))
	keyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#3cd7d7"))
	shiftStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff9f43"))
	confirmStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#62d26f"))
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(13)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	statsStyle  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2).
			Width(44)
	canvasStyle    = lipgloss.NewStyle().Padding(1, 2)
	narrationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).MarginTop(1)
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	stateRunning   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))
	statePaused    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	stateOther     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))
	cursorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)
