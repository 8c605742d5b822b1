package play

import (
	"context"
	"slices"
	"strconv"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kanjiz/internal/kanji"
	"github.com/abhisek/kanjiz/internal/quiz"
	"github.com/abhisek/kanjiz/internal/router"
	"github.com/abhisek/kanjiz/internal/screen"
	"github.com/abhisek/kanjiz/internal/screens/results"
	"github.com/abhisek/kanjiz/internal/store"
)

// mockEventRepo records quiz events and nothing else.
type mockEventRepo struct {
	store.EventRepo
	sessionEvents []store.SessionEventData
	answerEvents  []store.AnswerEventData
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}

func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	m.answerEvents = append(m.answerEvents, data)
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testPlayScreen(t *testing.T, lessons ...string) (*PlayScreen, *mockEventRepo) {
	t.Helper()
	cat, err := kanji.Default()
	if err != nil {
		t.Fatal(err)
	}
	seed := uint64(7)
	repo := &mockEventRepo{}
	s := New(screen.Env{Catalog: cat, Events: repo, Seed: &seed}, lessons, quiz.ModeKanjiToMeaning)
	s.Update(s.prepare()())
	return s, repo
}

// pressCorrect answers the current question correctly.
func pressCorrect(t *testing.T, s *PlayScreen) {
	t.Helper()
	q, ok := s.state.Current()
	if !ok {
		t.Fatal("no current question")
	}
	i := slices.Index(q.Options, q.CorrectAnswer)
	s.Update(keyPress(rune('1' + i)))
}

func TestPlayScreen_FullRun(t *testing.T) {
	s, repo := testPlayScreen(t, "1")
	if s.state == nil {
		t.Fatalf("quiz not ready: %s", s.errMsg)
	}
	total := len(s.state.Questions)

	var cmd tea.Cmd
	for i := 0; i < total; i++ {
		pressCorrect(t, s)
		if got := s.state.Results[i]; !got.IsCorrect {
			t.Fatalf("answer %d recorded as wrong", i)
		}
		if s.View(80, 24) == "" {
			t.Error("empty feedback view")
		}
		_, cmd = s.Update(keyPress('x'))
	}

	if cmd == nil {
		t.Fatal("expected a command after the last question")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*results.ResultsScreen); !ok {
		t.Errorf("expected results screen, got %T", msg.Screen)
	}

	if len(repo.answerEvents) != total {
		t.Errorf("answer events = %d, want %d", len(repo.answerEvents), total)
	}
	if n := len(repo.sessionEvents); n != 2 {
		t.Fatalf("session events = %d, want start and end", n)
	}
	end := repo.sessionEvents[1]
	if end.Action != store.SessionEnd || end.Correct != total || end.Accuracy != 100 {
		t.Errorf("end event = %+v", end)
	}
}

func TestPlayScreen_ArrowsAndEnter(t *testing.T) {
	s, _ := testPlayScreen(t, "1")

	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyEnter))

	if len(s.state.Results) != 1 {
		t.Fatalf("results = %d, want 1", len(s.state.Results))
	}
	q := s.state.Questions[0]
	if got := s.state.Results[0].SelectedAnswer; got != q.Options[1] {
		t.Errorf("selected %q, want %q", got, q.Options[1])
	}
}

func TestPlayScreen_QuitConfirm(t *testing.T) {
	s, repo := testPlayScreen(t, "1")
	pressCorrect(t, s)
	s.Update(keyPress(' '))

	s.Update(specialKey(tea.KeyEscape))
	if !s.confirmQuit {
		t.Fatal("expected quit confirmation")
	}
	s.Update(keyPress('n'))
	if s.confirmQuit || s.state.Done() {
		t.Fatal("'n' should resume the quiz")
	}

	s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected results command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Errorf("expected ReplaceScreenMsg, got %T", cmd())
	}
	end := repo.sessionEvents[len(repo.sessionEvents)-1]
	if end.Answered != 1 || end.Questions != len(s.state.Questions) {
		t.Errorf("end event = %+v", end)
	}
}

func TestPlayScreen_EscBeforeAnswering(t *testing.T) {
	s, _ := testPlayScreen(t, "1")

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestPlayScreen_UnknownLesson(t *testing.T) {
	s, _ := testPlayScreen(t, "missing")
	if s.errMsg == "" {
		t.Fatal("expected an error for a lesson with no kanji")
	}
	if s.HandlesEsc() {
		t.Error("error state should let the app pop the screen")
	}
	_, cmd := s.Update(keyPress('x'))
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("any key should leave the error state")
	}
}

func TestPlayScreen_Status(t *testing.T) {
	s, _ := testPlayScreen(t, "1")
	want := "Q 1/" + strconv.Itoa(len(s.state.Questions))
	if got := s.Status(); len(got) < len(want) || got[:len(want)] != want {
		t.Errorf("status = %q, want prefix %q", got, want)
	}
}

func TestPlayScreen_MixedSkipsMissingReadings(t *testing.T) {
	cat, err := kanji.NewCatalog(kanji.Lesson{
		LessonInfo: kanji.LessonInfo{ID: "1", Title: "Partial"},
		Kanji: []kanji.Kanji{
			{ID: "1", Character: "日", Meaning: "sun", Readings: kanji.Readings{Onyomi: []string{"ニチ"}, Kunyomi: []string{"ひ"}}},
			{ID: "2", Character: "月", Meaning: "moon", Readings: kanji.Readings{Onyomi: []string{"ゲツ"}, Kunyomi: []string{"つき"}}},
			{ID: "3", Character: "同", Meaning: "same", Readings: kanji.Readings{Onyomi: []string{"ドウ"}}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	for seed := uint64(0); seed < 20; seed++ {
		t.Run(strconv.FormatUint(seed, 10), func(t *testing.T) {
			s := New(screen.Env{Catalog: cat, Seed: &seed}, []string{"1"}, quiz.ModeMixed)
			s.Update(s.prepare()())

			if s.errMsg != "" || s.state == nil {
				t.Fatalf("quiz not ready: %q", s.errMsg)
			}
			if got, want := len(s.state.Questions), quiz.MixedPerKanji*3; got != want {
				t.Errorf("got %d questions, want %d", got, want)
			}
			for _, q := range s.state.Questions {
				if q.KanjiID == "1:3" && q.Mode == quiz.ModeKunyomiToKanji {
					t.Errorf("kanji without kunyomi asked as %s", q.Mode)
				}
			}
		})
	}
}
