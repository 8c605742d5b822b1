package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/kanjiz/internal/kanji"
	"github.com/abhisek/kanjiz/internal/quiz"
	"github.com/abhisek/kanjiz/internal/router"
	"github.com/abhisek/kanjiz/internal/screen"
	"github.com/abhisek/kanjiz/internal/screens/notice"
	"github.com/abhisek/kanjiz/internal/screens/play"
	"github.com/abhisek/kanjiz/internal/screens/setup"
)

func testModel(t *testing.T, opts Options) AppModel {
	t.Helper()
	opts.Env = testEnv(t)
	return newAppModel(opts)
}

func testEnv(t *testing.T) screen.Env {
	t.Helper()
	cat, err := kanji.Default()
	require.NoError(t, err)
	return screen.Env{Catalog: cat}
}

func esc() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEscape}
}

func TestEscPopsPlainScreens(t *testing.T) {
	m := testModel(t, Options{})
	m.router.Push(notice.New("History", "off"))

	_, cmd := m.Update(esc())
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)
}

func TestEscAtRootDoesNothing(t *testing.T) {
	m := testModel(t, Options{})
	_, cmd := m.Update(esc())
	assert.Nil(t, cmd)
}

func TestEscLeftToScreenHandler(t *testing.T) {
	m := testModel(t, Options{})
	s := setup.New(testEnv(t))
	m.router.Push(s)
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.True(t, s.HandlesEsc())

	_, cmd := m.Update(esc())
	assert.Nil(t, cmd)
	assert.False(t, s.HandlesEsc(), "setup went back to the lesson step")
	assert.Equal(t, 2, m.router.Depth())
}

func TestStartQuizDirectly(t *testing.T) {
	m := testModel(t, Options{StartLessons: []string{"2"}, StartMode: quiz.ModeKanjiToOnyomi})
	p, ok := m.start.(*play.PlayScreen)
	require.True(t, ok)
	assert.Equal(t, quiz.ModeKanjiToOnyomi.Title(), p.Title())

	m = testModel(t, Options{StartLessons: []string{"2"}})
	assert.Equal(t, quiz.ModeMixed.Title(), m.start.Title())
}

func TestView(t *testing.T) {
	m := testModel(t, Options{})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, updated.(AppModel).render(), "Terminal too small")

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	content := updated.(AppModel).render()
	assert.Contains(t, content, "kanjiz")
	assert.Contains(t, content, "Start Quiz")
}
