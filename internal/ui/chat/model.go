// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AngelZurita28/cosmic-archive-proto/internal/config"
	"github.com/AngelZurita28/cosmic-archive-proto/internal/rag"
	"github.com/AngelZurita28/cosmic-archive-proto/internal/session"
	"github.com/AngelZurita28/cosmic-archive-proto/internal/ui/components"
	"github.com/AngelZurita28/cosmic-archive-proto/internal/ui/styles"
)

// =============================================================================
// CHAT STATE
// =============================================================================

// State represents the current state of the chat view.
type State int

const (
	StateReady  State = iota // Ready for input
	StateAsking              // The active conversation is awaiting an answer
)

// Placeholder text for the question input, switched with deep search mode.
const (
	placeholderChat   = "Ask the archive anything..."
	placeholderSearch = "Deep search the space biology archive..."
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the Cosmic Archive chat view.
type Model struct {
	// State
	state State

	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// Session orchestration
	controller *session.Controller

	// Archive backend client
	client *rag.Client

	// Config (hot reloaded when a watcher is attached)
	cfg           *config.Config
	configUpdates <-chan *config.Config

	// UI components
	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model
	sidebar  *components.Sidebar

	// Markdown rendering for the archive's answers
	renderer *glamour.TermRenderer

	// Key bindings
	keyMap KeyMap

	// Deep search toggle
	searchMode bool

	// Sidebar visibility
	sidebarVisible bool

	// Welcome-screen fun fact
	funFact string

	// Help overlay
	showHelp bool

	// Temporary status-bar message
	statusMsg string

	logger *zap.Logger
}

// New creates a new chat model.
func New(controller *session.Controller, client *rag.Client, cfg *config.Config, theme *styles.Theme, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = placeholderChat
	ti.CharLimit = 4096
	ti.Focus()

	vp := viewport.New(80, 20)
	vp.SetContent("")

	sp := spinner.New()
	sp.Spinner = spinner.Spinner{
		Frames: []string{"|", "/", "-", "\\"},
		FPS:    time.Second / 12,
	}
	sp.Style = theme.Spinner

	m := Model{
		state:          StateReady,
		theme:          theme,
		width:          80,
		height:         24,
		controller:     controller,
		client:         client,
		cfg:            cfg,
		viewport:       vp,
		input:          ti,
		spinner:        sp,
		sidebar:        components.NewSidebar(theme),
		keyMap:         DefaultKeyMap(),
		searchMode:     cfg.UI.SearchMode,
		sidebarVisible: cfg.UI.SidebarVisible,
		logger:         logger,
	}

	if m.searchMode {
		m.input.Placeholder = placeholderSearch
	}

	m.renderer = newRenderer(m.transcriptWidth())
	return m
}

// SetConfigUpdates attaches the config watcher's update channel. Must be
// called before Init for reloads to be picked up.
func (m *Model) SetConfigUpdates(updates <-chan *config.Config) {
	m.configUpdates = updates
}

// newRenderer builds a glamour renderer for the given wrap width.
// Falls back to nil; callers render raw content when the renderer is
// unavailable.
func newRenderer(wrapWidth int) *glamour.TermRenderer {
	if wrapWidth < 20 {
		wrapWidth = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrapWidth),
	)
	if err != nil {
		return nil
	}
	return r
}

// renderMarkdown renders the archive's markdown answer for the terminal.
// Returns the original content if rendering fails.
func (m *Model) renderMarkdown(content string) string {
	if m.renderer == nil {
		return content
	}
	rendered, err := m.renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// Init returns the initial commands: the spinner tick, the fun fact fetch
// when enabled, and the config reload listener when a watcher is attached.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}

	if m.cfg.Archive.FunFactEnabled {
		cmds = append(cmds, FunFactCmd(m.client))
	}
	if m.configUpdates != nil {
		cmds = append(cmds, WaitForConfigCmd(m.configUpdates))
	}

	return tea.Batch(cmds...)
}

// =============================================================================
// LAYOUT HELPERS
// =============================================================================

func (m *Model) sidebarWidth() int {
	if !m.sidebarVisible {
		return 0
	}
	w := components.DefaultSidebarWidth
	if m.width < 80 {
		// Narrow terminals give the transcript priority.
		w = m.width / 4
	}
	return w
}

func (m *Model) transcriptWidth() int {
	w := m.width - m.sidebarWidth() - 2
	if w < 20 {
		w = 20
	}
	return w
}

// SearchMode reports whether deep search is toggled on.
func (m Model) SearchMode() bool {
	return m.searchMode
}

// State returns the current chat state.
func (m Model) State() State {
	return m.state
}
