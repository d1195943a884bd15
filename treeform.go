// Package treeform assembles the adaptive tree form toolkit: schema-driven
// forms whose shape is a tree of mutually exclusive branches with leaf input
// fields, collapsed into one descriptive output line. This root package only
// re-exports constructors; the pieces live in pkg/schema, pkg/fields,
// pkg/tree, and pkg/renderers.
package treeform

import (
	"strings"

	"github.com/SteampunkIslande/adaptive-tree-widget/internal/schemaloader"
	"github.com/SteampunkIslande/adaptive-tree-widget/pkg/schema"
	"github.com/SteampunkIslande/adaptive-tree-widget/pkg/tree"
)

// LoaderOptions re-exports the document loader configuration.
type LoaderOptions = schemaloader.Options

// Session re-exports the form session type.
type Session = tree.Session

// Re-exported session options.
var (
	WithLoader   = tree.WithLoader
	WithRegistry = tree.WithRegistry
)

// NewSession constructs an empty form session.
func NewSession(options ...tree.SessionOption) *tree.Session {
	return tree.NewSession(options...)
}

// NewLoader constructs a document loader for files, fs.FS entries, and
// (when enabled) URLs.
func NewLoader(options LoaderOptions) tree.DocumentLoader {
	return schemaloader.New(options)
}

// ParseSource turns a raw CLI argument into a schema source: URLs when the
// argument carries an http(s) scheme, file paths otherwise. Empty input
// yields nil.
func ParseSource(raw string) schema.Source {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return schema.SourceFromURL(trimmed)
	}
	return schema.SourceFromFile(trimmed)
}
