// Package tui is the interactive terminal surface over the playback
// controller. It only calls controller operations and renders controller
// state; it never touches the array directly.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/playback"
)

const (
	canvasHeight = 16
	scrubJump    = 10
)

// TickMsg drives playback advancement at the configured rate.
type TickMsg time.Time

// FinishTickMsg drives the confirm sweep at its fixed high rate.
type FinishTickMsg time.Time

// LiveModel renders one controller as a bar-chart playback view.
type LiveModel struct {
	ctrl   *playback.Controller
	width  int
	height int
	err    error
	help   bool
}

func NewLiveModel(ctrl *playback.Controller) LiveModel {
	return LiveModel{ctrl: ctrl, width: 80, height: 24}
}

func (m LiveModel) tick() tea.Cmd {
	return tea.Tick(m.ctrl.Interval(), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m LiveModel) finishTick() tea.Cmd {
	return tea.Tick(m.ctrl.FinishInterval(), func(t time.Time) tea.Msg { return FinishTickMsg(t) })
}

func (m LiveModel) Init() tea.Cmd {
	return m.tick()
}

func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		if m.ctrl.State() == playback.StateRunning {
			if _, err := m.ctrl.Tick(); err != nil {
				m.err = err
			}
			if m.ctrl.Finishing() {
				return m, m.finishTick()
			}
		}
		return m, m.tick()

	case FinishTickMsg:
		if m.ctrl.FinishTick() {
			return m, m.finishTick()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m LiveModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "s", "enter":
		m.err = m.ctrl.Start("")
	case " ":
		if m.ctrl.State() == playback.StateRunning {
			m.ctrl.Pause()
		} else if err := m.ctrl.Resume(); err != nil {
			m.err = err
		}
	case "r":
		m.err = m.ctrl.Reset()
	case "n":
		m.err = m.ctrl.Randomize()
	case "right", "l":
		m.err = m.ctrl.StepForward()
	case "left", "h":
		m.err = m.ctrl.StepBack()
	case "]":
		m.err = m.ctrl.Seek(m.ctrl.StepIndex() + scrubJump)
	case "[":
		m.err = m.ctrl.Seek(m.ctrl.StepIndex() - scrubJump)
	case "0":
		m.err = m.ctrl.Seek(0)
	case "$":
		m.err = m.ctrl.Seek(len(m.ctrl.History()))
	case "+", "=":
		m.ctrl.SetRate(m.ctrl.FPS() + 4)
	case "-", "_":
		m.ctrl.SetRate(m.ctrl.FPS() - 4)
	case "?":
		m.help = !m.help
	}
	return m, nil
}

func (m LiveModel) View() string {
	canvas := canvasStyle.Render(m.renderBars())
	stats := statsStyle.Render(m.renderStats())
	body := lipgloss.JoinHorizontal(lipgloss.Top, canvas, stats)

	var b strings.Builder
	b.WriteString(headerStyle.Render("sortviz — " + m.ctrl.Algorithm()))
	b.WriteString("\n")
	b.WriteString(body)
	if narration := m.ctrl.Narration(); narration != "" {
		b.WriteString("\n" + narrationStyle.Render(narration))
	}
	if m.err != nil {
		b.WriteString("\n" + swapStyle.Render("error: "+m.err.Error()))
	}
	if m.help {
		b.WriteString("\n" + helpStyle.Render(
			"s start · space pause/resume · r reset · n randomize\n"+
				"←/→ step · [/] scrub ±10 · 0/$ ends · +/- rate · q quit"))
	} else {
		b.WriteString("\n" + helpStyle.Render("? help · q quit"))
	}
	return b.String()
}

// renderBars draws the array as vertical bars, one column per element,
// colored by the element's current highlight role.
func (m LiveModel) renderBars() string {
	arr := m.ctrl.Array()
	if len(arr) == 0 {
		return dimStyle.Render("no array — press s to start or n to randomize")
	}

	minVal, maxVal := arr[0], arr[0]
	for _, v := range arr {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	span := maxVal - minVal + 1

	heights := make([]int, len(arr))
	for i, v := range arr {
		h := (v - minVal + 1) * canvasHeight / span
		if h < 1 {
			h = 1
		}
		heights[i] = h
	}

	styles := m.columnStyles(len(arr))
	var b strings.Builder
	for row := canvasHeight; row >= 1; row-- {
		for col := range arr {
			if heights[col] >= row {
				b.WriteString(styles[col].Render("█"))
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// columnStyles resolves the highlight role of every column. Confirmed
// beats active roles; among active roles the most specific wins.
func (m LiveModel) columnStyles(n int) []lipgloss.Style {
	h := m.ctrl.Highlights()
	styles := make([]lipgloss.Style, n)
	for i := range styles {
		styles[i] = barStyle
	}
	assign := func(indices []int, style lipgloss.Style) {
		for _, idx := range indices {
			if idx >= 0 && idx < n {
				styles[idx] = style
			}
		}
	}
	assign(h.Merge, mergeStyle)
	assign(h.Compare, compareStyle)
	assign(h.Pivot, pivotStyle)
	assign(h.Key, keyStyle)
	assign(h.Shift, shiftStyle)
	assign(h.Swap, swapStyle)
	for idx := range h.Confirmed {
		if idx >= 0 && idx < n {
			styles[idx] = confirmStyle
		}
	}
	return styles
}

func (m LiveModel) renderStats() string {
	c := m.ctrl.Counters()
	total := len(m.ctrl.History())

	var stateStr string
	switch m.ctrl.State() {
	case playback.StateRunning:
		stateStr = stateRunning.Render("running")
	case playback.StatePaused:
		stateStr = statePaused.Render("paused")
	default:
		stateStr = stateOther.Render(m.ctrl.State().String())
	}

	rows := []struct{ label, value string }{
		{"algorithm", m.ctrl.Algorithm()},
		{"state", stateStr},
		{"rate", fmt.Sprintf("%d fps", m.ctrl.FPS())},
		{"step", fmt.Sprintf("%d / %d", m.ctrl.StepIndex(), total)},
		{"comparisons", fmt.Sprintf("%d", c.Comparisons)},
		{"swaps", fmt.Sprintf("%d", c.Swaps)},
		{"n", fmt.Sprintf("%d", len(m.ctrl.Array()))},
	}
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(labelStyle.Render(row.label))
		b.WriteString(valueStyle.Render(row.value))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.renderScrub(total)))
	return b.String()
}

// renderScrub draws a simple progress gauge over the recorded history.
func (m LiveModel) renderScrub(total int) string {
	const width = 30
	if total == 0 {
		return strings.Repeat("░", width)
	}
	filled := m.ctrl.StepIndex() * width / total
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
