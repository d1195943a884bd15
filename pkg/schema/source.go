package schema

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// Source says where a fragment document lives so the loader can pick a fetch
// strategy without the rest of the package caring about files versus URLs.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the fetch strategies a loader may support.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

// origin is the single Source implementation; the constructors below differ
// only in how they validate and normalize the location.
type origin struct {
	kind     SourceKind
	location string
}

func (o origin) Kind() SourceKind { return o.kind }

func (o origin) Location() string { return o.location }

// SourceFromFile returns a Source for an on-disk document.
func SourceFromFile(path string) Source {
	return origin{kind: SourceKindFile, location: filepath.Clean(path)}
}

// SourceFromFS returns a Source for a document inside an fs.FS, typically an
// embedded or test filesystem.
func SourceFromFS(name string) Source {
	return origin{kind: SourceKindFS, location: name}
}

// SourceFromURL returns a Source for a document behind HTTP(S). It panics on
// a malformed URL so configuration mistakes surface at startup, not on the
// first load.
func SourceFromURL(raw string) Source {
	if raw == "" {
		panic("schema: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		panic(fmt.Sprintf("schema: invalid URL %q: %v", raw, err))
	}
	return origin{kind: SourceKindURL, location: raw}
}

// yamlExtensions lists the location suffixes treated as YAML documents.
var yamlExtensions = []string{".yaml", ".yml"}

// LooksLikeYAML reports whether a location carries a YAML extension. Parsing
// still falls back to YAML when JSON decoding fails, so this is a hint, not
// a gate.
func LooksLikeYAML(location string) bool {
	lower := strings.ToLower(location)
	for _, ext := range yamlExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
