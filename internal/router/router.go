package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kanjiz/internal/screen"
)

// PushScreenMsg pushes Screen on top of the stack.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg pops the active screen.
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the active screen for Screen, e.g. a finished
// quiz for its results.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// PopToRootMsg pops every screen above the first.
type PopToRootMsg struct{}

// Router is a stack of screens. Only the top one receives messages.
type Router struct {
	stack []screen.Screen
}

func New(initial screen.Screen) *Router {
	return &Router{stack: []screen.Screen{initial}}
}

// Push adds s on top and runs its Init.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop removes the top screen. The root screen is never popped.
func (r *Router) Pop() {
	if len(r.stack) > 1 {
		r.stack = r.stack[:len(r.stack)-1]
	}
}

// Replace swaps the top screen for s and runs its Init.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

// PopToRoot leaves only the root screen and re-runs its Init so it can
// refresh.
func (r *Router) PopToRoot() tea.Cmd {
	r.stack = r.stack[:1]
	return r.stack[0].Init()
}

func (r *Router) Active() screen.Screen {
	return r.stack[len(r.stack)-1]
}

func (r *Router) Depth() int {
	return len(r.stack)
}

// Update applies navigation messages and forwards everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	case PopScreenMsg:
		r.Pop()
		return nil
	case PopToRootMsg:
		return r.PopToRoot()
	}

	updated, cmd := r.Active().Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}

// PushCmd returns a command pushing s.
func PushCmd(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return PushScreenMsg{Screen: s} }
}

// PopCmd is a tea.Cmd popping the active screen.
func PopCmd() tea.Msg { return PopScreenMsg{} }

// ReplaceCmd returns a command replacing the active screen with s.
func ReplaceCmd(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return ReplaceScreenMsg{Screen: s} }
}

// HomeCmd is a tea.Cmd returning to the root screen.
func HomeCmd() tea.Msg { return PopToRootMsg{} }
