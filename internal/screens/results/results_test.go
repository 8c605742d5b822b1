package results

import (
	"encoding/json"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kanjiz/internal/kanji"
	"github.com/abhisek/kanjiz/internal/llm"
	"github.com/abhisek/kanjiz/internal/mnemonic"
	"github.com/abhisek/kanjiz/internal/quiz"
	"github.com/abhisek/kanjiz/internal/router"
	"github.com/abhisek/kanjiz/internal/screen"
	"github.com/abhisek/kanjiz/internal/session"
)

// finishedSession answers the first question wrongly and the second one
// correctly, then quits.
func finishedSession(t *testing.T) (screen.Env, *session.State) {
	t.Helper()
	cat, err := kanji.Default()
	if err != nil {
		t.Fatal(err)
	}
	st, err := session.Prepare(cat, quiz.NewGenerator(quiz.NewRandom(3)), quiz.ModeKanjiToMeaning, []string{"1"}, nil)
	if err != nil {
		t.Fatal(err)
	}

	q, _ := st.Current()
	wrong := q.Options[0]
	if wrong == q.CorrectAnswer {
		wrong = q.Options[1]
	}
	if _, err := st.Answer(wrong); err != nil {
		t.Fatal(err)
	}
	st.Next()
	q, _ = st.Current()
	if _, err := st.Answer(q.CorrectAnswer); err != nil {
		t.Fatal(err)
	}
	st.Quit()
	return screen.Env{Catalog: cat}, st
}

func TestResultsScreen_View(t *testing.T) {
	env, st := finishedSession(t)
	s := New(env, st, nil)

	if cmd := s.Init(); cmd != nil {
		t.Error("no mnemonic command expected without a provider")
	}
	view := s.View(80, 40)
	for _, want := range []string{"Quiz complete!", "1 / 2 correct", "50%", quiz.GradeKeepPracticing.Message(), "you:"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestResultsScreen_Navigation(t *testing.T) {
	env, st := finishedSession(t)
	retried := false
	s := New(env, st, func() screen.Screen { retried = true; return New(env, st, nil) })

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command on Enter")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Errorf("Enter: expected PopToRootMsg, got %T", cmd())
	}

	_, cmd = s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("expected command on R")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok || !retried {
		t.Errorf("R: expected ReplaceScreenMsg with a fresh quiz, got %T", cmd())
	}
}

func TestResultsScreen_Mnemonics(t *testing.T) {
	env, st := finishedSession(t)
	body, _ := json.Marshal(map[string]string{"keyword": "glow", "story": "Sun window"})
	env.Mnemonics = mnemonic.NewService(llm.NewMockProvider(llm.MockResponse{Content: body}), nil, mnemonic.DefaultConfig())

	s := New(env, st, nil)
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected mnemonic command for a missed kanji")
	}
	if !strings.Contains(s.View(80, 40), "Writing memory hooks") {
		t.Error("expected loading line")
	}

	s.Update(cmd())
	view := s.View(80, 40)
	if !strings.Contains(view, "Sun window") {
		t.Errorf("mnemonic not rendered:\n%s", view)
	}
	if strings.Contains(view, "could not be generated") {
		t.Error("unexpected mnemonic error")
	}
}
