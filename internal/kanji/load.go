package kanji

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
)

// SupportedMajor is the catalog format major version this build reads.
const SupportedMajor = "v1"

// ErrInvalidCatalog is returned when a lesson file fails validation.
var ErrInvalidCatalog = errors.New("invalid catalog")

//go:embed data/lessons/*.json
var embedded embed.FS

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// lessonFile is the on-disk shape of one lesson.
type lessonFile struct {
	CatalogVersion   string               `json:"catalog_version"`
	ID               string               `json:"id"`
	Title            string               `json:"title"`
	Description      string               `json:"description"`
	Difficulty       Difficulty           `json:"difficulty"`
	JLPTLevel        JLPTLevel            `json:"jlpt_level"`
	EstimatedMinutes int                  `json:"estimated_minutes"`
	Kanji            []Kanji              `json:"kanji"`
	Examples         map[string][]Example `json:"examples"`
}

// Default returns the catalog built into the binary.
func Default() (*MemoryCatalog, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("open embedded catalog: %w", err)
	}
	return LoadFS(sub)
}

// LoadDir loads a catalog from dir, which must contain lessons/*.json.
func LoadDir(dir string) (*MemoryCatalog, error) {
	return LoadFS(os.DirFS(dir))
}

// LoadFS loads every lessons/*.json file in fsys.
func LoadFS(fsys fs.FS) (*MemoryCatalog, error) {
	names, err := fs.Glob(fsys, "lessons/*.json")
	if err != nil {
		return nil, fmt.Errorf("list lesson files: %w", err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no lesson files found", ErrInvalidCatalog)
	}

	lessons := make([]Lesson, 0, len(names))
	for _, name := range names {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		l, err := decodeLesson(path.Base(name), raw)
		if err != nil {
			return nil, err
		}
		lessons = append(lessons, l)
	}

	return NewCatalog(lessons...)
}

// decodeLesson validates raw against the lesson schema and the supported
// catalog version, then decodes it.
func decodeLesson(name string, raw []byte) (Lesson, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Lesson{}, fmt.Errorf("%w: %s: parse: %v", ErrInvalidCatalog, name, err)
	}

	schema, err := lessonValidator()
	if err != nil {
		return Lesson{}, fmt.Errorf("compile lesson schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return Lesson{}, fmt.Errorf("%w: %s: %v", ErrInvalidCatalog, name, err)
	}

	var lf lessonFile
	if err := json.Unmarshal(raw, &lf); err != nil {
		return Lesson{}, fmt.Errorf("%w: %s: decode: %v", ErrInvalidCatalog, name, err)
	}

	if !semver.IsValid(lf.CatalogVersion) || semver.Major(lf.CatalogVersion) != SupportedMajor {
		return Lesson{}, fmt.Errorf("%w: %s: catalog version %q not supported (want %s.x.y)",
			ErrInvalidCatalog, name, lf.CatalogVersion, SupportedMajor)
	}

	seen := make(map[string]bool, len(lf.Kanji))
	for _, k := range lf.Kanji {
		if seen[k.ID] {
			return Lesson{}, fmt.Errorf("%w: %s: duplicate kanji id %q", ErrInvalidCatalog, name, k.ID)
		}
		seen[k.ID] = true
	}

	return Lesson{
		LessonInfo: LessonInfo{
			ID:               lf.ID,
			Title:            lf.Title,
			Description:      lf.Description,
			Difficulty:       lf.Difficulty,
			JLPTLevel:        lf.JLPTLevel,
			EstimatedMinutes: lf.EstimatedMinutes,
			KanjiCount:       len(lf.Kanji),
		},
		Kanji:    lf.Kanji,
		Examples: lf.Examples,
	}, nil
}

func lessonValidator() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a decoded JSON value, so round-trip the Go map.
		defBytes, err := json.Marshal(lessonSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://kanjiz-lesson.json"
		if err := c.AddResource(url, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(url)
	})
	return compiled, compileErr
}
