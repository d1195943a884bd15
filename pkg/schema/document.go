package schema

import "errors"

// Document is a fetched-but-undecoded form description: the raw bytes of a
// fragment tree plus the source they were read from. Loaders produce
// Documents; Parse consumes them, using the source location to pick a codec.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument wraps a fetched payload. The source is mandatory so decode
// failures can name the resource they came from, and an empty payload is
// rejected here rather than surfacing later as a cryptic parse error.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("schema: document needs a source")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("schema: document payload is empty")
	}
	return Document{source: src, raw: append([]byte(nil), raw...)}, nil
}

// MustNewDocument panics instead of returning an error. Test helper.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns where the document came from.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a copy of the payload; Documents are immutable once built.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location is shorthand for the source's location string.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// LooksLikeYAML reports whether the document's location carries a YAML
// extension, steering Parse toward the YAML codec.
func (d Document) LooksLikeYAML() bool {
	return LooksLikeYAML(d.Location())
}
