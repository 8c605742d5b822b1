package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestIsTooSmall(t *testing.T) {
	assert.True(t, IsTooSmall(MinWidth-1, MinHeight))
	assert.True(t, IsTooSmall(MinWidth, MinHeight-1))
	assert.False(t, IsTooSmall(MinWidth, MinHeight))
}

func TestRenderHeader(t *testing.T) {
	out := RenderHeader("Quiz", "3/10", 80)

	assert.Contains(t, out, "kanjiz")
	assert.Contains(t, out, "Quiz")
	assert.Contains(t, out, "3/10")
	assert.Equal(t, 3, len(strings.Split(out, "\n")))
}

func TestRenderFooter(t *testing.T) {
	out := RenderFooter([]KeyHint{{Key: "Enter", Description: "Select"}, {Key: "Esc", Description: "Back"}}, 80)

	assert.Contains(t, out, "Enter")
	assert.Contains(t, out, "Back")
}

func TestRenderFrameFillsHeight(t *testing.T) {
	header := RenderHeader("Home", "", 80)
	footer := RenderFooter(nil, 80)

	out := RenderFrame(header, "body", footer, 80, 24)

	assert.Equal(t, 24, lipgloss.Height(out))
	assert.Contains(t, out, "body")
}
