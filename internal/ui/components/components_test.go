package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestMenuSkipsDisabled(t *testing.T) {
	var ran string
	m := NewMenu([]MenuItem{
		{Label: "Off", Disabled: true},
		{Label: "Start", Action: func() tea.Cmd { ran = "start"; return nil }},
		{Label: "Off again", Disabled: true},
		{Label: "Exit", Action: func() tea.Cmd { ran = "exit"; return nil }},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(specialKey(tea.KeyUp))
	assert.Equal(t, 1, m.Selected, "stays put when only disabled items are above")

	m, _ = m.Update(specialKey(tea.KeyDown))
	assert.Equal(t, 3, m.Selected)

	m, _ = m.Update(specialKey(tea.KeyEnter))
	assert.Equal(t, "exit", ran)
}

func TestChoicesNumberKey(t *testing.T) {
	c := NewChoices([]string{"sun", "moon", "fire"})

	c, picked := c.Update(keyPress('4'))
	assert.False(t, picked, "out of range")

	c, picked = c.Update(keyPress('2'))
	require.True(t, picked)
	got, ok := c.Picked()
	assert.True(t, ok)
	assert.Equal(t, "moon", got)

	c, picked = c.Update(keyPress('1'))
	assert.False(t, picked, "locked after a pick")
	got, _ = c.Picked()
	assert.Equal(t, "moon", got)
}

func TestChoicesArrowsAndEnter(t *testing.T) {
	c := NewChoices([]string{"a", "b"})

	c, _ = c.Update(specialKey(tea.KeyDown))
	c, _ = c.Update(specialKey(tea.KeyDown))
	assert.Equal(t, 1, c.Cursor)

	c, picked := c.Update(specialKey(tea.KeyEnter))
	require.True(t, picked)
	got, _ := c.Picked()
	assert.Equal(t, "b", got)

	c.Reveal("a")
	view := c.View()
	assert.Contains(t, view, "✓")
	assert.Contains(t, view, "✗")
}

func TestChecklist(t *testing.T) {
	c := NewChecklist([]ChecklistItem{{Label: "Lesson 1"}, {Label: "Lesson 2"}, {Label: "Lesson 3"}})

	c, _ = c.Update(specialKey(tea.KeySpace))
	c, _ = c.Update(specialKey(tea.KeyDown))
	c, _ = c.Update(specialKey(tea.KeyDown))
	c, _ = c.Update(specialKey(tea.KeySpace))
	assert.Equal(t, []int{0, 2}, c.Checked())

	c, _ = c.Update(keyPress('a'))
	assert.Equal(t, []int{0, 1, 2}, c.Checked())

	c, _ = c.Update(keyPress('a'))
	assert.Empty(t, c.Checked())
}

func TestProgressBarClamps(t *testing.T) {
	assert.Contains(t, NewProgressBar("", 1.5, true, 20).View(), "100%")
	assert.Contains(t, NewProgressBar("", -1, true, 20).View(), "0%")
}
