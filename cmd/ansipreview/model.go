package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	runewidth "github.com/mattn/go-runewidth"

	"github.com/patrick-goecommerce/ansiscreen/ansicfg"
	"github.com/patrick-goecommerce/ansiscreen/ansiterm"
	"github.com/patrick-goecommerce/ansiscreen/palette"
	"github.com/patrick-goecommerce/ansiscreen/screen"
)

// Model is the root ansipreview Bubbletea model: a Screen built once
// from demoScript, re-emitted live under whichever encoding policy and
// theme the user has selected.
type Model struct {
	cfg   ansicfg.Config
	theme previewTheme

	scr *screen.Screen

	width, height int
	quitting      bool
}

// New builds the initial Model from cfg, parsing demoScript into a
// fresh Screen.
func New(cfg ansicfg.Config) Model {
	scr, err := screen.New(64)
	if err != nil {
		panic(err) // width is a fixed positive literal; cannot fail
	}
	parser := ansiterm.NewParser(scr)
	parser.Feed([]byte(demoScript))

	return Model{
		cfg:   cfg,
		theme: themeOrDefault(cfg.ThemeName),
		scr:   scr,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		_ = ansicfg.Save(m.cfg)
		return m, tea.Quit
	case "m":
		m.cfg.Policy = ansicfg.PolicyModern
	case "p":
		m.cfg.Policy = ansicfg.PolicyForcedPalette
	case "d":
		m.cfg.Policy = ansicfg.PolicyDOS
	case "i":
		m.cfg.IceMode = !m.cfg.IceMode
	case "t":
		m.theme = nextTheme(m.theme.Name)
		m.cfg.ThemeName = m.theme.Name
	}
	return m, nil
}

func nextTheme(current string) previewTheme {
	order := []string{"dark", "light", "dracula", "nord", "solarized"}
	for i, name := range order {
		if name == current {
			return previewThemes[order[(i+1)%len(order)]]
		}
	}
	return previewThemes["dark"]
}

func (m Model) emitterConfig() ansiterm.Config {
	switch m.cfg.Policy {
	case ansicfg.PolicyForcedPalette:
		return ansiterm.Config{Palette: palette.NewXterm256()}
	case ansicfg.PolicyDOS:
		return ansiterm.Config{DOSMode: true, IceMode: m.cfg.IceMode}
	default:
		return ansiterm.Config{}
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	emitter, err := ansiterm.NewEmitter(m.emitterConfig())
	if err != nil {
		return fmt.Sprintf("config error: %v\n", err)
	}
	raw := string(emitter.Emit(m.scr))

	paneStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Width(widthOf(raw)).
		Padding(0, 1)

	header := lipgloss.NewStyle().Foreground(m.theme.Highlight).Bold(true).
		Render(fmt.Sprintf("ansipreview — policy=%s ice=%v theme=%s", m.cfg.Policy, m.cfg.IceMode, m.theme.Name))

	hint := lipgloss.NewStyle().Foreground(m.theme.TextDim).
		Render("[m]odern  [p]alette  [d]os  [i]ce  [t]heme  [q]uit")

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(paneStyle.Render(strings.TrimRight(raw, "\n")))
	b.WriteString("\n")
	b.WriteString(hint)
	return b.String()
}

// widthOf returns the printable cell width of s, ignoring embedded SGR
// escape sequences, for chrome that must size itself around raw output.
func widthOf(s string) int {
	max := 0
	for _, line := range strings.Split(s, "\n") {
		if w := runewidth.StringWidth(stripSGR(line)); w > max {
			max = w
		}
	}
	return max
}

// stripSGR removes "\x1b[...m" sequences, leaving printable text.
func stripSGR(s string) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && s[j] != 'm' {
				j++
			}
			i = j + 1
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}
