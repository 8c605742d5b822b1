package notice

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanjiz/internal/screen"
	"github.com/abhisek/kanjiz/internal/ui/theme"
)

// NoticeScreen shows a short message for a feature that is switched off,
// e.g. history without a database.
type NoticeScreen struct {
	title   string
	message string
}

var _ screen.Screen = (*NoticeScreen)(nil)

// New creates a NoticeScreen.
func New(title, message string) *NoticeScreen {
	return &NoticeScreen{title: title, message: message}
}

func (n *NoticeScreen) Init() tea.Cmd {
	return nil
}

func (n *NoticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return n, nil
}

func (n *NoticeScreen) View(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render("╌╌ " + n.title + " ╌╌\n\n" + n.message)
}

func (n *NoticeScreen) Title() string {
	return n.title
}
