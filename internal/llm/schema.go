package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is the JSON shape a response must have. It compiles on first use
// and is safe to share between requests.
type Schema struct {
	// Name is sent as the schema or tool name, e.g. "coach-feedback".
	Name        string
	Description string
	Definition  map[string]any

	once     sync.Once
	compiled *jsonschema.Schema
	err      error
}

// Validate checks raw against the schema. A nil schema accepts anything.
func (s *Schema) Validate(raw json.RawMessage) error {
	if s == nil {
		return nil
	}
	compiled, err := s.compile()
	if err != nil {
		return &Error{Kind: ErrInvalidResponse, Content: raw, Err: err}
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return &Error{Kind: ErrInvalidResponse, Content: raw, Err: fmt.Errorf("not JSON: %w", err)}
	}
	if err := compiled.Validate(doc); err != nil {
		return &Error{Kind: ErrInvalidResponse, Content: raw, Err: err}
	}
	return nil
}

func (s *Schema) compile() (*jsonschema.Schema, error) {
	s.once.Do(func() {
		def, err := json.Marshal(s.Definition)
		if err != nil {
			s.err = fmt.Errorf("schema %s: %w", s.Name, err)
			return
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(def))
		if err != nil {
			s.err = fmt.Errorf("schema %s: %w", s.Name, err)
			return
		}

		url := "mem://" + s.Name + ".json"
		c := jsonschema.NewCompiler()
		if err := c.AddResource(url, doc); err != nil {
			s.err = fmt.Errorf("schema %s: %w", s.Name, err)
			return
		}
		s.compiled, s.err = c.Compile(url)
	})
	return s.compiled, s.err
}
