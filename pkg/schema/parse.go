package schema

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseError reports a schema document that could not be decoded. The
// document location is carried so CLI callers can point at the offending
// resource.
type ParseError struct {
	Location string
	Err      error
}

func (e *ParseError) Error() string {
	if e.Location == "" {
		return fmt.Sprintf("schema: parse: %v", e.Err)
	}
	return fmt.Sprintf("schema: parse %s: %v", e.Location, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse decodes a Document into its root Fragment. JSON is the primary
// format; documents with a YAML extension are decoded as YAML, and payloads
// that fail JSON decoding get one YAML fallback attempt so extension-less
// sources still work. Decoding failures return a *ParseError; the fragment
// is never partially populated.
func Parse(doc Document) (Fragment, error) {
	raw := doc.Raw()
	location := doc.Location()

	if doc.LooksLikeYAML() {
		return parseYAML(raw, location)
	}

	var fragment Fragment
	if err := json.Unmarshal(raw, &fragment); err != nil {
		if yamlFragment, yamlErr := parseYAML(raw, location); yamlErr == nil {
			return yamlFragment, nil
		}
		return Fragment{}, &ParseError{Location: location, Err: err}
	}
	return fragment, nil
}

// ParseBytes decodes a raw payload without source bookkeeping. Useful for
// tests and embedded fragments.
func ParseBytes(raw []byte) (Fragment, error) {
	var fragment Fragment
	if err := json.Unmarshal(raw, &fragment); err != nil {
		return Fragment{}, &ParseError{Err: err}
	}
	return fragment, nil
}

func parseYAML(raw []byte, location string) (Fragment, error) {
	var fragment Fragment
	if err := yaml.Unmarshal(raw, &fragment); err != nil {
		return Fragment{}, &ParseError{Location: location, Err: err}
	}
	return fragment, nil
}
