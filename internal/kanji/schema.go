package kanji

// lessonSchema is the JSON Schema every lesson file must satisfy.
var lessonSchema = map[string]any{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type":    "object",
	"properties": map[string]any{
		"catalog_version": map[string]any{
			"type":    "string",
			"pattern": `^v[0-9]+\.[0-9]+\.[0-9]+$`,
		},
		"id":                map[string]any{"type": "string", "minLength": 1},
		"title":             map[string]any{"type": "string", "minLength": 1},
		"description":       map[string]any{"type": "string"},
		"difficulty":        difficultySchema,
		"jlpt_level":        jlptSchema,
		"estimated_minutes": map[string]any{"type": "integer", "minimum": 0},
		"kanji": map[string]any{
			"type":  "array",
			"items": kanjiSchema,
		},
		"examples": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type":  "array",
				"items": exampleSchema,
			},
		},
	},
	"required": []any{"catalog_version", "id", "title", "kanji"},
}

var difficultySchema = map[string]any{
	"type": "string",
	"enum": []any{"beginner", "intermediate", "advanced"},
}

var jlptSchema = map[string]any{
	"type": "string",
	"enum": []any{"N5", "N4", "N3", "N2", "N1"},
}

var stringList = map[string]any{
	"type":  "array",
	"items": map[string]any{"type": "string", "minLength": 1},
}

var kanjiSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":        map[string]any{"type": "string", "minLength": 1},
		"character": map[string]any{"type": "string", "minLength": 1},
		"meaning":   map[string]any{"type": "string", "minLength": 1},
		"readings": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"onyomi":  stringList,
				"kunyomi": stringList,
			},
			"required": []any{"onyomi", "kunyomi"},
		},
		"stroke_count": map[string]any{"type": "integer", "minimum": 1},
		"difficulty":   difficultySchema,
		"jlpt_level":   jlptSchema,
		"examples":     stringList,
		"radicals":     stringList,
		"frequency":    map[string]any{"type": "integer", "minimum": 0},
		"grade":        map[string]any{"type": "integer", "minimum": 0},
	},
	"required": []any{"id", "character", "meaning", "readings"},
}

var exampleSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"japanese":   map[string]any{"type": "string", "minLength": 1},
		"romaji":     map[string]any{"type": "string"},
		"english":    map[string]any{"type": "string"},
		"difficulty": difficultySchema,
	},
	"required": []any{"japanese"},
}
