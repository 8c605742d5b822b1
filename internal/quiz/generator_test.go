package quiz

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/abhisek/kanjiz/internal/kanji"
)

func mk(id, char, meaning string, on, kun []string) kanji.Kanji {
	return kanji.Kanji{
		ID:        id,
		Character: char,
		Meaning:   meaning,
		Readings:  kanji.Readings{Onyomi: on, Kunyomi: kun},
	}
}

func testPool() []kanji.Kanji {
	return []kanji.Kanji{
		mk("1", "日", "sun", []string{"ニチ", "ジツ"}, []string{"ひ"}),
		mk("2", "月", "moon", []string{"ゲツ", "ガツ"}, []string{"つき"}),
		mk("3", "火", "fire", []string{"カ"}, []string{"ひ"}),
		mk("4", "水", "water", []string{"スイ"}, []string{"みず"}),
		mk("5", "木", "tree", []string{"モク", "ボク"}, []string{"き"}),
	}
}

// distinctOthers counts the distinct non-empty values of field f in pool,
// excluding correct.
func distinctOthers(pool []kanji.Kanji, f Field, correct string) int {
	seen := map[string]bool{}
	for _, k := range pool {
		v := f.value(k)
		if v != "" && v != correct {
			seen[v] = true
		}
	}
	return len(seen)
}

func checkOptions(t *testing.T, pool []kanji.Kanji, q Question) {
	t.Helper()

	if len(q.Options) < 1 || len(q.Options) > MaxOptions {
		t.Errorf("%s: %d options, want 1..%d", q.ID, len(q.Options), MaxOptions)
	}

	seen := map[string]bool{}
	correct := 0
	for _, o := range q.Options {
		if seen[o] {
			t.Errorf("%s: duplicate option %q in %v", q.ID, o, q.Options)
		}
		seen[o] = true
		if o == q.CorrectAnswer {
			correct++
		}
	}
	if correct != 1 {
		t.Errorf("%s: correct answer %q appears %d times in %v", q.ID, q.CorrectAnswer, correct, q.Options)
	}

	_, answer := q.Mode.fields()
	want := min(MaxOptions, distinctOthers(pool, answer, q.CorrectAnswer)+1)
	if len(q.Options) != want {
		t.Errorf("%s: %d options, want %d", q.ID, len(q.Options), want)
	}
}

func TestGenerateCoverage(t *testing.T) {
	pool := testPool()

	for _, mode := range AllModes() {
		t.Run(string(mode), func(t *testing.T) {
			g := NewGenerator(NewRandom(1))
			qs, err := g.Generate(pool, mode)
			if err != nil {
				t.Fatalf("generate: %v", err)
			}

			want := len(pool)
			if mode == ModeMixed {
				want = MixedPerKanji * len(pool)
			}
			if len(qs) != want {
				t.Fatalf("got %d questions, want %d", len(qs), want)
			}

			perKanji := map[string]int{}
			for _, q := range qs {
				perKanji[q.KanjiID]++
				if !q.Mode.IsConcrete() {
					t.Errorf("%s: effective mode %q is not concrete", q.ID, q.Mode)
				}
				if mode != ModeMixed && q.Mode != mode {
					t.Errorf("%s: mode %q, want %q", q.ID, q.Mode, mode)
				}
			}
			for _, k := range pool {
				if perKanji[k.ID] != want/len(pool) {
					t.Errorf("kanji %s: %d questions, want %d", k.ID, perKanji[k.ID], want/len(pool))
				}
			}
		})
	}
}

func TestGenerateOptionInvariants(t *testing.T) {
	pools := map[string][]kanji.Kanji{
		"five":   testPool(),
		"single": testPool()[:1],
		"pair":   testPool()[:2],
		"shared": {
			mk("a", "生", "life", []string{"セイ"}, []string{"い.きる"}),
			mk("b", "性", "life", []string{"セイ"}, []string{"さが"}),
			mk("c", "正", "correct", []string{"セイ"}, []string{"ただ.しい"}),
			mk("d", "山", "mountain", []string{"サン"}, []string{"やま"}),
		},
	}

	for name, pool := range pools {
		for seed := uint64(0); seed < 20; seed++ {
			for _, mode := range AllModes() {
				g := NewGenerator(NewRandom(seed))
				qs, err := g.Generate(pool, mode)
				if err != nil {
					t.Fatalf("%s/%s/seed %d: %v", name, mode, seed, err)
				}
				for _, q := range qs {
					checkOptions(t, pool, q)
				}
			}
		}
	}
}

func TestGeneratePairing(t *testing.T) {
	pool := testPool()
	byID := map[string]kanji.Kanji{}
	for _, k := range pool {
		byID[k.ID] = k
	}

	tests := []struct {
		mode       Mode
		wantPrompt func(kanji.Kanji) string
		wantAnswer func(kanji.Kanji) string
	}{
		{ModeKanjiToMeaning, func(k kanji.Kanji) string { return k.Character }, func(k kanji.Kanji) string { return k.Meaning }},
		{ModeKanjiToOnyomi, func(k kanji.Kanji) string { return k.Character }, func(k kanji.Kanji) string { return k.Readings.Onyomi[0] }},
		{ModeMeaningToKanji, func(k kanji.Kanji) string { return k.Meaning }, func(k kanji.Kanji) string { return k.Character }},
		{ModeOnyomiToKanji, func(k kanji.Kanji) string { return k.Readings.Onyomi[0] }, func(k kanji.Kanji) string { return k.Character }},
		{ModeKunyomiToKanji, func(k kanji.Kanji) string { return k.Readings.Kunyomi[0] }, func(k kanji.Kanji) string { return k.Character }},
	}

	for _, tt := range tests {
		g := NewGenerator(NewRandom(7))
		qs, err := g.Generate(pool, tt.mode)
		if err != nil {
			t.Fatalf("%s: %v", tt.mode, err)
		}
		for _, q := range qs {
			k := byID[q.KanjiID]
			if q.Prompt != tt.wantPrompt(k) {
				t.Errorf("%s: prompt %q, want %q", q.ID, q.Prompt, tt.wantPrompt(k))
			}
			if q.CorrectAnswer != tt.wantAnswer(k) {
				t.Errorf("%s: answer %q, want %q", q.ID, q.CorrectAnswer, tt.wantAnswer(k))
			}
			if want := fmt.Sprintf("q_%s_%s", k.ID, tt.mode); q.ID != want {
				t.Errorf("id %q, want %q", q.ID, want)
			}
		}
	}
}

func TestGenerateMeaningToKanjiFivePool(t *testing.T) {
	pool := testPool()
	chars := map[string]string{}
	for _, k := range pool {
		chars[k.ID] = k.Character
	}

	qs, err := NewGenerator(NewRandom(42)).Generate(pool, ModeMeaningToKanji)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(qs) != 5 {
		t.Fatalf("got %d questions, want 5", len(qs))
	}
	for _, q := range qs {
		if len(q.Options) != 4 {
			t.Errorf("%s: %d options, want 4", q.ID, len(q.Options))
		}
		if q.CorrectAnswer != chars[q.KanjiID] {
			t.Errorf("%s: answer %q, want %q", q.ID, q.CorrectAnswer, chars[q.KanjiID])
		}
	}
}

func TestGenerateSingleKanji(t *testing.T) {
	pool := testPool()[:1]

	qs, err := NewGenerator(NewRandom(3)).Generate(pool, ModeKanjiToMeaning)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("got %d questions, want 1", len(qs))
	}
	if !reflect.DeepEqual(qs[0].Options, []string{"sun"}) {
		t.Errorf("options = %v, want [sun]", qs[0].Options)
	}
}

func TestGenerateEmptyPool(t *testing.T) {
	for _, mode := range AllModes() {
		qs, err := NewGenerator(NewRandom(1)).Generate(nil, mode)
		if err != nil {
			t.Errorf("%s: unexpected error %v", mode, err)
		}
		if qs == nil || len(qs) != 0 {
			t.Errorf("%s: got %v, want empty non-nil slice", mode, qs)
		}
	}
}

func TestGenerateUnknownMode(t *testing.T) {
	_, err := NewGenerator(NewRandom(1)).Generate(testPool(), Mode("kanji-to-romaji"))
	if !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("err = %v, want ErrUnknownMode", err)
	}
}

func TestGenerateMalformedFailsFast(t *testing.T) {
	pool := append(testPool(), mk("6", "々", "repeat", []string{}, nil))

	_, err := NewGenerator(NewRandom(1)).Generate(pool, ModeKunyomiToKanji)
	if !errors.Is(err, ErrMalformedKanji) {
		t.Fatalf("err = %v, want ErrMalformedKanji", err)
	}
	var mErr *MalformedKanjiError
	if !errors.As(err, &mErr) {
		t.Fatalf("err = %T, want *MalformedKanjiError", err)
	}
	if mErr.KanjiID != "6" || mErr.Field != FieldKunyomi || mErr.Mode != ModeKunyomiToKanji {
		t.Errorf("got %+v", mErr)
	}
	if !strings.Contains(err.Error(), "kanji 6") {
		t.Errorf("message %q does not name the kanji", err.Error())
	}

	// Modes that do not need readings still work.
	qs, err := NewGenerator(NewRandom(1)).Generate(pool, ModeKanjiToMeaning)
	if err != nil {
		t.Fatalf("kanji-to-meaning: %v", err)
	}
	if len(qs) != len(pool) {
		t.Errorf("got %d questions, want %d", len(qs), len(pool))
	}
}

func TestGenerateSkipMalformed(t *testing.T) {
	pool := append(testPool(), mk("6", "々", "repeat", nil, nil))

	g := NewGenerator(NewRandom(5))
	g.SkipMalformed = true

	qs, err := g.Generate(pool, ModeKanjiToOnyomi)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(qs) != len(pool)-1 {
		t.Fatalf("got %d questions, want %d", len(qs), len(pool)-1)
	}
	for _, q := range qs {
		if q.KanjiID == "6" {
			t.Errorf("malformed kanji was not skipped: %+v", q)
		}
		for _, o := range q.Options {
			if o == "" {
				t.Errorf("%s: empty option in %v", q.ID, q.Options)
			}
		}
	}
}

func TestGenerateMixedSkipMalformedRedraws(t *testing.T) {
	pool := append(testPool(), mk("6", "々", "repeat", nil, nil))

	for seed := uint64(0); seed < 20; seed++ {
		g := NewGenerator(NewRandom(seed))
		g.SkipMalformed = true

		qs, err := g.Generate(pool, ModeMixed)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if len(qs) != MixedPerKanji*len(pool) {
			t.Fatalf("seed %d: got %d questions, want %d", seed, len(qs), MixedPerKanji*len(pool))
		}
		for _, q := range qs {
			if q.KanjiID != "6" {
				continue
			}
			if q.Mode != ModeKanjiToMeaning && q.Mode != ModeMeaningToKanji {
				t.Errorf("seed %d: kanji without readings got mode %s", seed, q.Mode)
			}
		}
	}
}

func TestGenerateMixedIDsUnique(t *testing.T) {
	qs, err := NewGenerator(NewRandom(9)).Generate(testPool(), ModeMixed)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	seen := map[string]bool{}
	for _, q := range qs {
		if seen[q.ID] {
			t.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true
		if !strings.HasPrefix(q.ID, "q_"+q.KanjiID+"_"+string(q.Mode)+"_") {
			t.Errorf("id %q does not follow q_<kanji>_<mode>_<n>", q.ID)
		}
	}
}

func TestGenerateSharedValuesExcluded(t *testing.T) {
	// Two kanji share the meaning "life"; neither may offer the other's
	// identical meaning as a distractor.
	pool := []kanji.Kanji{
		mk("a", "生", "life", []string{"セイ"}, []string{"い.きる"}),
		mk("b", "性", "life", []string{"セイ"}, []string{"さが"}),
		mk("c", "山", "mountain", []string{"サン"}, []string{"やま"}),
	}

	qs, err := NewGenerator(NewRandom(11)).Generate(pool, ModeKanjiToMeaning)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for _, q := range qs {
		if q.CorrectAnswer == "life" && len(q.Options) != 2 {
			t.Errorf("%s: options %v, want [life mountain] in some order", q.ID, q.Options)
		}
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	a, err := NewGenerator(NewRandom(123)).Generate(testPool(), ModeMixed)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewGenerator(NewRandom(123)).Generate(testPool(), ModeMixed)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different questions")
	}
}

func TestGenerateDoesNotMutatePool(t *testing.T) {
	pool := testPool()
	before := testPool()

	if _, err := NewGenerator(NewRandom(2)).Generate(pool, ModeMixed); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(pool, before) {
		t.Error("pool was modified")
	}
}

func TestGenerateMixedMalformedFailsForEverySeed(t *testing.T) {
	pool := append(testPool(), mk("6", "同", "same", []string{"ドウ"}, nil))

	for seed := uint64(0); seed < 50; seed++ {
		_, err := NewGenerator(NewRandom(seed)).Generate(pool, ModeMixed)
		var mErr *MalformedKanjiError
		if !errors.As(err, &mErr) {
			t.Fatalf("seed %d: err = %v, want *MalformedKanjiError", seed, err)
		}
		if mErr.KanjiID != "6" || mErr.Mode != ModeKunyomiToKanji || mErr.Field != FieldKunyomi {
			t.Errorf("seed %d: got %+v", seed, mErr)
		}
	}
}
