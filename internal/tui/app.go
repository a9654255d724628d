package tui

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pablasso/tahoe/internal/config"
	"github.com/pablasso/tahoe/internal/tui/styles"
	"github.com/pablasso/tahoe/internal/tui/views"
)

// Minimum terminal dimensions for the showcase window.
const (
	MinTerminalWidth  = 60
	MinTerminalHeight = 15
)

// Debug logging is enabled by setting TAHOE_DEBUG; the log file defaults
// to tahoe-debug.log in the working directory.
const (
	debugEnv        = "TAHOE_DEBUG"
	debugLogEnv     = "TAHOE_DEBUG_LOG"
	defaultDebugLog = "tahoe-debug.log"
)

// Model is the main Bubble Tea model. It guards the minimum size and
// hosts the showcase window.
type Model struct {
	width  int
	height int

	showcase views.ShowcaseModel
}

// Run starts the TUI application.
func Run(opts Options) error {
	if os.Getenv(debugEnv) != "" {
		path := os.Getenv(debugLogEnv)
		if path == "" {
			path = defaultDebugLog
		}
		f, err := tea.LogToFile(path, "tahoe")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	}

	term := styles.DetectTerminal()
	theme := styles.Resolve(opts.Config, term)
	styles.Set(theme)
	log.Printf("theme %s, glass %v, profile %v", theme.Palette.Name, theme.Glass, term.ColorProfile())

	m := newModel(views.ShowcaseOptions{
		Start:        opts.startSection(),
		Accent:       opts.Config.Accent,
		GlassCapable: term.ColorProfile() == termenv.TrueColor,
	})

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err := p.Run()
	return err
}

func newModel(opts views.ShowcaseOptions) Model {
	return Model{showcase: views.NewShowcaseModel(opts)}
}

func initialModel() Model {
	cfg := config.Default()
	return newModel(views.ShowcaseOptions{Start: cfg.StartSection, Accent: cfg.Accent})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.showcase.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		log.Printf("resize %dx%d", size.Width, size.Height)
	}

	if m.tooSmall() {
		// Only quitting works until the terminal grows.
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			}
		}
		if _, ok := msg.(tea.WindowSizeMsg); !ok {
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.showcase, cmd = m.showcase.Update(msg)
	return m, cmd
}

func (m Model) tooSmall() bool {
	return m.width < MinTerminalWidth || m.height < MinTerminalHeight
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.tooSmall() {
		return m.renderTerminalTooSmall()
	}
	return m.showcase.View()
}

func (m Model) renderTerminalTooSmall() string {
	title := styles.TitleStyle.Render("Terminal too small")
	details := styles.SubtleStyle.Render(fmt.Sprintf(
		"Minimum: %dx%d\nCurrent: %dx%d",
		MinTerminalWidth, MinTerminalHeight, m.width, m.height,
	))
	body := lipgloss.JoinVertical(lipgloss.Center, title, "", details)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}
