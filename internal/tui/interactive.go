package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/playback"
)

const (
	screenMenu = iota
	screenInput
	screenLive
)

// MenuModel is the top-level interactive flow: pick an algorithm,
// optionally type an input array, then hand off to the live view.
type MenuModel struct {
	cfg      *config.Config
	registry *algo.Registry
	names    []string
	cursor   int
	screen   int
	inputBuf string
	live     LiveModel
	err      error
}

func NewMenuModel(cfg *config.Config, reg *algo.Registry) MenuModel {
	return MenuModel{
		cfg:      cfg,
		registry: reg,
		names:    reg.Names(),
	}
}

func (m MenuModel) Init() tea.Cmd { return nil }

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.screen == screenLive {
		switch key := msg.(type) {
		case tea.KeyMsg:
			if key.String() == "esc" {
				m.screen = screenMenu
				return m, nil
			}
		}
		next, cmd := m.live.Update(msg)
		m.live = next.(LiveModel)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.screen {
		case screenMenu:
			return m.menuKey(msg)
		case screenInput:
			return m.inputKey(msg)
		}
	}
	return m, nil
}

func (m MenuModel) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.screen = screenInput
		m.inputBuf = ""
		m.err = nil
	}
	return m, nil
}

func (m MenuModel) inputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.screen = screenMenu
	case "enter":
		return m.launch()
	case "backspace":
		if len(m.inputBuf) > 0 {
			m.inputBuf = m.inputBuf[:len(m.inputBuf)-1]
		}
	default:
		s := msg.String()
		if len(s) == 1 {
			c := s[0]
			if (c >= '0' && c <= '9') || c == ',' || c == '-' || c == ' ' {
				m.inputBuf += s
			}
		}
	}
	return m, nil
}

func (m MenuModel) launch() (tea.Model, tea.Cmd) {
	ctrl, err := playback.NewController(m.cfg, m.registry, m.names[m.cursor], time.Now().UnixNano())
	if err != nil {
		m.err = err
		return m, nil
	}
	if err := ctrl.Start(m.inputBuf); err != nil {
		m.err = err
		return m, nil
	}
	ctrl.Pause()
	m.live = NewLiveModel(ctrl)
	m.screen = screenLive
	m.err = nil
	return m, m.live.Init()
}

func (m MenuModel) View() string {
	if m.screen == screenLive {
		return m.live.View()
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("sortviz"))
	b.WriteString("\n")

	switch m.screen {
	case screenMenu:
		for i, name := range m.names {
			info, _ := m.registry.Info(name)
			line := fmt.Sprintf("%-12s %s", name, dimStyle.Render(info.Complexity.Avg))
			if i == m.cursor {
				b.WriteString(cursorStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("\n↑/↓ select · enter choose · q quit"))
	case screenInput:
		b.WriteString(valueStyle.Render("algorithm: " + m.names[m.cursor]))
		b.WriteString("\n\n")
		b.WriteString(labelStyle.Render("array"))
		b.WriteString(valueStyle.Render(m.inputBuf + "█"))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("comma-separated integers, empty to randomize"))
		b.WriteString(helpStyle.Render("\nenter launch · esc back"))
	}
	if m.err != nil {
		b.WriteString("\n" + swapStyle.Render("error: "+m.err.Error()))
	}
	return b.String()
}
