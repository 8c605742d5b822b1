package setup

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/kanjiz/internal/kanji"
	"github.com/abhisek/kanjiz/internal/router"
	"github.com/abhisek/kanjiz/internal/screen"
	"github.com/abhisek/kanjiz/internal/screens/play"
)

func testSetup(t *testing.T) *SetupScreen {
	t.Helper()
	cat, err := kanji.Default()
	require.NoError(t, err)
	return New(screen.Env{Catalog: cat})
}

func TestSetup_CursorLessonWhenNothingChecked(t *testing.T) {
	s := testSetup(t)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	assert.Equal(t, stepMode, s.step)
	assert.Equal(t, []string{"2"}, s.chosen)
	assert.True(t, s.HandlesEsc())
}

func TestSetup_CheckedLessonsStartQuiz(t *testing.T) {
	s := testSetup(t)

	s.Update(tea.KeyPressMsg{Code: tea.KeySpace})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeySpace})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.Equal(t, []string{"1", "3"}, s.chosen)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	p, ok := msg.Screen.(*play.PlayScreen)
	require.True(t, ok)
	assert.Equal(t, "Mixed Quiz", p.Title())
}

func TestSetup_EscReturnsToLessons(t *testing.T) {
	s := testSetup(t)
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.Equal(t, stepMode, s.step)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, stepLessons, s.step)
	assert.False(t, s.HandlesEsc())
	assert.Contains(t, s.View(80, 24), "Which lessons?")
}
