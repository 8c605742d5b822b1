package lookup

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanjiz/internal/kanji"
	"github.com/abhisek/kanjiz/internal/screen"
	"github.com/abhisek/kanjiz/internal/store"
	"github.com/abhisek/kanjiz/internal/ui/components"
	"github.com/abhisek/kanjiz/internal/ui/layout"
	"github.com/abhisek/kanjiz/internal/ui/theme"
)

// maxResults caps the result list.
const maxResults = 12

type mnemonicMsg struct {
	KanjiID  string
	Mnemonic *store.Mnemonic
	Err      error
}

// LookupScreen searches the catalog by character, meaning or reading and
// shows one kanji in detail.
type LookupScreen struct {
	env      screen.Env
	input    components.TextInput
	results  []kanji.Kanji
	selected int

	// detail is the kanji being shown, nil while searching.
	detail   *kanji.Kanji
	mnemonic *store.Mnemonic
	loading  bool
	errMsg   string
}

var _ screen.Screen = (*LookupScreen)(nil)
var _ screen.KeyHintProvider = (*LookupScreen)(nil)
var _ screen.EscHandler = (*LookupScreen)(nil)

// New creates a LookupScreen.
func New(env screen.Env) *LookupScreen {
	return &LookupScreen{
		env:   env,
		input: components.NewTextInput("日, sun, にち...", 32),
	}
}

func (s *LookupScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *LookupScreen) Title() string {
	return "Kanji Lookup"
}

func (s *LookupScreen) HandlesEsc() bool {
	return s.detail != nil
}

func (s *LookupScreen) KeyHints() []layout.KeyHint {
	if s.detail != nil {
		hints := []layout.KeyHint{{Key: "Esc", Description: "Results"}}
		if s.env.Mnemonics.Enabled() && s.mnemonic == nil {
			hints = append([]layout.KeyHint{{Key: "M", Description: "Memory hook"}}, hints...)
		}
		return hints
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LookupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case mnemonicMsg:
		if s.detail == nil || s.detail.ID != msg.KanjiID {
			return s, nil
		}
		s.loading = false
		s.mnemonic = msg.Mnemonic
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		}
		return s, nil

	case tea.KeyMsg:
		if s.detail != nil {
			return s.handleDetailKey(msg)
		}
		switch msg.String() {
		case "up":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down":
			if s.selected < len(s.results)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			return s, s.openDetail()
		}
	}

	var cmd tea.Cmd
	before := s.input.Value()
	s.input, cmd = s.input.Update(msg)
	if s.input.Value() != before {
		s.search()
	}
	return s, cmd
}

func (s *LookupScreen) handleDetailKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.detail, s.mnemonic, s.loading, s.errMsg = nil, nil, false, ""
	case "m", "M":
		if s.env.Mnemonics.Enabled() && s.mnemonic == nil && !s.loading {
			s.loading = true
			s.errMsg = ""
			return s, s.generateMnemonic(*s.detail)
		}
	}
	return s, nil
}

// search refreshes the results for the current query.
func (s *LookupScreen) search() {
	s.selected = 0
	q := strings.TrimSpace(s.input.Value())
	if q == "" {
		s.results = nil
		return
	}
	res := s.env.Catalog.Search(q)
	s.results = res[:min(len(res), maxResults)]
}

// openDetail shows the selected result along with its cached mnemonic, if
// any. Generating a new one waits for the M key.
func (s *LookupScreen) openDetail() tea.Cmd {
	if s.selected >= len(s.results) {
		return nil
	}
	k := s.results[s.selected]
	s.detail = &k
	if s.env.Mnemonics == nil {
		return nil
	}
	svc := s.env.Mnemonics
	return func() tea.Msg {
		m, err := svc.Cached(context.Background(), k)
		return mnemonicMsg{KanjiID: k.ID, Mnemonic: m, Err: err}
	}
}

func (s *LookupScreen) generateMnemonic(k kanji.Kanji) tea.Cmd {
	svc := s.env.Mnemonics
	return func() tea.Msg {
		m, err := svc.Get(context.Background(), k)
		return mnemonicMsg{KanjiID: k.ID, Mnemonic: m, Err: err}
	}
}

func (s *LookupScreen) View(width, height int) string {
	if s.detail != nil {
		return s.renderDetail(width)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, "Search: "+s.input.View()))
	b.WriteString("\n\n")

	switch {
	case strings.TrimSpace(s.input.Value()) == "":
		b.WriteString(layout.Centered(width, theme.Hint, "Type a kanji, an English meaning or a reading."))
	case len(s.results) == 0:
		b.WriteString(layout.Centered(width, theme.Dim, "No matches."))
	default:
		var rows strings.Builder
		for i, k := range s.results {
			line := fmt.Sprintf("%s  %-16s %s", k.Character, k.Meaning, k.ID)
			if i == s.selected {
				rows.WriteString(theme.Selected.Render("▸ " + line))
			} else {
				rows.WriteString(theme.Unselected.Render("  " + line))
			}
			rows.WriteString("\n")
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, rows.String()))
	}
	return b.String()
}

func (s *LookupScreen) renderDetail(width int) string {
	k := s.detail
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Glyph.Render(k.Character)))
	b.WriteString("\n\n")

	facts := []string{
		theme.Body.Bold(true).Render(k.Meaning),
		theme.Reading.Render("on: " + orDash(strings.Join(k.Readings.Onyomi, "、")) + "   kun: " + orDash(strings.Join(k.Readings.Kunyomi, "、"))),
		theme.Dim.Render(fmt.Sprintf("%d strokes · %s · %s", k.StrokeCount, k.JLPTLevel, k.Difficulty)),
	}
	if len(k.Examples) > 0 {
		facts = append(facts, theme.Dim.Render("Words: "+strings.Join(k.Examples, "、")))
	}
	for _, f := range facts {
		b.WriteString(layout.Centered(width, lipgloss.NewStyle(), f))
		b.WriteString("\n")
	}

	if ex := s.env.Catalog.Examples(k.Character); len(ex) > 0 {
		b.WriteString("\n")
		for _, e := range ex {
			b.WriteString(layout.Centered(width, theme.Body, e.Japanese))
			b.WriteString("\n")
			b.WriteString(layout.Centered(width, theme.Hint, e.Romaji+" · "+e.English))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	switch {
	case s.loading:
		b.WriteString(layout.Centered(width, theme.Hint, "Writing a memory hook..."))
	case s.mnemonic != nil:
		text := s.mnemonic.Story
		if s.mnemonic.Keyword != "" {
			text = s.mnemonic.Keyword + ": " + text
		}
		story := lipgloss.NewStyle().Foreground(theme.Accent).Width(max(min(width-8, 70), 20)).Render(text)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, story))
	case s.errMsg != "":
		b.WriteString(layout.Centered(width, theme.Incorrect, s.errMsg))
	}
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
