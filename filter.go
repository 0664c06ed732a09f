package main

import (
	"encoding/json"
	"errors"

	"github.com/itchyny/gojq"
)

// LineFilter applies a jq expression to JSONL input. Lines that do not parse
// as JSON pass through untouched so mixed logs stay readable.
type LineFilter struct {
	code *gojq.Code
}

func NewLineFilter(expr string) (*LineFilter, error) {
	query, err := gojq.Parse(expr)
	if err != nil {
		return nil, err
	}

	code, err := gojq.Compile(query)
	if err != nil {
		return nil, err
	}

	return &LineFilter{code: code}, nil
}

// Apply runs the expression against one line. It returns the text to display
// and whether the line should be displayed at all. A line is hidden when the
// expression produces no output, false or null, mirroring jq's select().
func (f *LineFilter) Apply(text string) (string, bool) {
	var input any
	if err := json.Unmarshal([]byte(text), &input); err != nil {
		return text, true
	}

	iter := f.code.Run(input)
	out, ok := iter.Next()
	if !ok {
		return "", false
	}

	switch v := out.(type) {
	case error:
		var halt *gojq.HaltError
		if errors.As(v, &halt) && halt.Value() == nil {
			return "", false
		}
		return text, true
	case nil:
		return "", false
	case bool:
		if !v {
			return "", false
		}
		return text, true
	case string:
		return v, true
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return text, true
		}
		return string(encoded), true
	}
}
