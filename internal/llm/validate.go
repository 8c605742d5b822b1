package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// validators holds compiled schemas keyed by Schema.Name.
var validators sync.Map

// finish validates content against req.Schema and assembles the Response.
// Truncated structured output is reported as ErrMaxTokensExceeded rather
// than as a schema failure.
func finish(req Request, content json.RawMessage, usage Usage, model, stop string) (*Response, error) {
	if req.Schema != nil {
		if err := validateResponse(req.Schema, content); err != nil {
			if stop == StopMaxTokens {
				return nil, &ErrMaxTokensExceeded{Content: content}
			}
			return nil, err
		}
	}
	return &Response{
		Content:    content,
		Usage:      usage,
		Model:      model,
		StopReason: stop,
	}, nil
}

// validateResponse returns *ErrInvalidResponse when raw is not JSON or does
// not satisfy schema. A nil schema accepts anything.
func validateResponse(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("not JSON: %w", err)}
	}

	v, err := validator(schema)
	if err != nil {
		return &ErrInvalidResponse{Content: raw, Err: err}
	}
	if err := v.Validate(doc); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("schema %s: %w", schema.Name, err)}
	}
	return nil
}

func validator(schema *Schema) (*jsonschema.Schema, error) {
	if v, ok := validators.Load(schema.Name); ok {
		return v.(*jsonschema.Schema), nil
	}

	// Round-trip through JSON so Go-typed values in Definition (e.g. []string
	// for "required") become the generic form the compiler expects.
	b, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("encode schema %s: %w", schema.Name, err)
	}
	def, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode schema %s: %w", schema.Name, err)
	}

	url := "schema://llm/" + schema.Name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add schema %s: %w", schema.Name, err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", schema.Name, err)
	}

	actual, _ := validators.LoadOrStore(schema.Name, compiled)
	return actual.(*jsonschema.Schema), nil
}
