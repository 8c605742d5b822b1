package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanjiz/internal/quiz"
	"github.com/abhisek/kanjiz/internal/router"
	"github.com/abhisek/kanjiz/internal/screen"
	"github.com/abhisek/kanjiz/internal/screens/home"
	"github.com/abhisek/kanjiz/internal/screens/play"
	"github.com/abhisek/kanjiz/internal/ui/layout"
)

// Options configures a TUI run.
type Options struct {
	Env screen.Env

	// StartLessons, when set, opens a quiz over these lessons in StartMode
	// right away instead of waiting on the home menu.
	StartLessons []string
	StartMode    quiz.Mode
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	start  screen.Screen
	width  int
	height int
}

// newAppModel creates an AppModel with the home screen at the root.
func newAppModel(opts Options) AppModel {
	m := AppModel{router: router.New(home.New(opts.Env))}
	if len(opts.StartLessons) > 0 {
		mode := opts.StartMode
		if mode == "" {
			mode = quiz.ModeMixed
		}
		m.start = play.New(opts.Env, opts.StartLessons, mode)
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.router.Active().Init()}
	if m.start != nil {
		cmds = append(cmds, router.PushCmd(m.start))
	}
	return tea.Batch(cmds...)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscHandler); ok && h.HandlesEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, router.PopCmd
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	status := ""
	if sp, ok := active.(screen.StatusProvider); ok {
		status = sp.Status()
	}
	header := layout.RenderHeader(active.Title(), status, m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints() []layout.KeyHint {
	if hp, ok := m.router.Active().(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	_, err := tea.NewProgram(newAppModel(opts)).Run()
	return err
}
