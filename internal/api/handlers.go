package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/abhisek/kanjiz/internal/kanji"
	"github.com/abhisek/kanjiz/internal/quiz"
)

func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

type modeInfo struct {
	ID          quiz.Mode `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}

func ModesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		modes := quiz.AllModes()
		out := make([]modeInfo, len(modes))
		for i, m := range modes {
			out[i] = modeInfo{ID: m, Title: m.Title(), Description: m.Description()}
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func ListLessonsHandler(catalog kanji.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, catalog.Lessons())
	}
}

// GetLessonHandler returns the lesson with catalog-wide composite kanji ids.
func GetLessonHandler(catalog kanji.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "lessonID")
		l, ok := catalog.Lesson(id)
		if !ok {
			writeError(w, http.StatusNotFound, "lesson "+id+" not found")
			return
		}
		l.Kanji = catalog.LessonKanji(id)
		writeJSON(w, http.StatusOK, l)
	}
}

type kanjiDetail struct {
	kanji.Kanji
	Sentences []kanji.Example `json:"sentences"`
}

func GetKanjiHandler(catalog kanji.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "kanjiID")
		k, ok := catalog.KanjiByID(id)
		if !ok {
			writeError(w, http.StatusNotFound, "kanji "+id+" not found")
			return
		}
		ex := catalog.Examples(k.Character)
		if ex == nil {
			ex = []kanji.Example{}
		}
		writeJSON(w, http.StatusOK, kanjiDetail{Kanji: k, Sentences: ex})
	}
}

// SearchKanjiHandler matches ?q= against characters, meanings and readings.
func SearchKanjiHandler(catalog kanji.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if q == "" {
			writeError(w, http.StatusBadRequest, "q is required")
			return
		}
		found := catalog.Search(q)
		if found == nil {
			found = []kanji.Kanji{}
		}
		writeJSON(w, http.StatusOK, found)
	}
}

type createQuizRequest struct {
	Lessons []string `json:"lessons"`
	Mode    string   `json:"mode"`

	// Seed makes generation reproducible when set.
	Seed *uint64 `json:"seed,omitempty"`
}

type createQuizResponse struct {
	Mode      quiz.Mode       `json:"mode"`
	Lessons   []string        `json:"lessons"`
	Questions []quiz.Question `json:"questions"`
}

// CreateQuizHandler generates a quiz for the requested lessons. An empty
// pool (no or unknown lessons) yields an empty question list.
func CreateQuizHandler(catalog kanji.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createQuizRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if len(req.Lessons) == 0 {
			writeError(w, http.StatusBadRequest, "lessons is required")
			return
		}
		mode, err := quiz.ParseMode(req.Mode)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		rnd := quiz.DefaultRandom()
		if req.Seed != nil {
			rnd = quiz.NewRandom(*req.Seed)
		}
		questions, err := quiz.NewGenerator(rnd).Generate(quiz.ResolvePool(catalog, req.Lessons...), mode)
		switch {
		case errors.Is(err, quiz.ErrMalformedKanji), errors.Is(err, quiz.ErrUnknownMode):
			writeError(w, http.StatusBadRequest, err.Error())
			return
		case err != nil:
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if questions == nil {
			questions = []quiz.Question{}
		}
		writeJSON(w, http.StatusOK, createQuizResponse{Mode: mode, Lessons: req.Lessons, Questions: questions})
	}
}

type scoreRequest struct {
	Results []quiz.Result `json:"results"`
}

type scoreResponse struct {
	quiz.Summary
	Message string `json:"message"`
}

func ScoreQuizHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req scoreRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		sum := quiz.Score(req.Results)
		writeJSON(w, http.StatusOK, scoreResponse{Summary: sum, Message: sum.Grade.Message()})
	}
}
