package tree

import (
	"context"
	"fmt"

	"github.com/SteampunkIslande/adaptive-tree-widget/internal/schemaloader"
	"github.com/SteampunkIslande/adaptive-tree-widget/pkg/fields"
	"github.com/SteampunkIslande/adaptive-tree-widget/pkg/schema"
)

// DocumentLoader fetches schema documents from a source. It is satisfied by
// the internal loader and can be swapped for tests or embedding.
type DocumentLoader interface {
	Load(ctx context.Context, src schema.Source) (schema.Document, error)
}

// Session owns one adaptive tree form: it loads schema documents, holds the
// root node, and exposes the aggregated output string. Loading replaces any
// prior tree wholesale; there is no incremental schema diffing. A Session is
// mutated by a single goroutine at a time and carries no internal locking.
type Session struct {
	registry *fields.Registry
	loader   DocumentLoader
	root     *Node
}

// SessionOption configures a Session at construction.
type SessionOption func(*Session)

// WithRegistry replaces the default field-kind registry.
func WithRegistry(registry *fields.Registry) SessionOption {
	return func(s *Session) {
		if registry != nil {
			s.registry = registry
		}
	}
}

// WithLoader replaces the default document loader. The default reads files
// only; callers wanting fs.FS or HTTP sources inject a loader configured for
// them.
func WithLoader(loader DocumentLoader) SessionOption {
	return func(s *Session) {
		if loader != nil {
			s.loader = loader
		}
	}
}

// NewSession constructs an empty session with the built-in field kinds and a
// file-only document loader.
func NewSession(options ...SessionOption) *Session {
	s := &Session{
		registry: fields.NewRegistry(),
		loader:   schemaloader.New(schemaloader.Options{}),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Load fetches, parses, and builds the tree described by the source. The
// operation is atomic: on any failure (unreadable source, malformed
// document, unknown field kind) the previously loaded tree, if any, stays
// installed and untouched.
func (s *Session) Load(ctx context.Context, src schema.Source) error {
	doc, err := s.loader.Load(ctx, src)
	if err != nil {
		return fmt.Errorf("tree: load %s: %w", describeSource(src), err)
	}
	return s.LoadDocument(doc)
}

// LoadDocument parses and builds the tree from an already fetched document.
func (s *Session) LoadDocument(doc schema.Document) error {
	fragment, err := schema.Parse(doc)
	if err != nil {
		return err
	}
	return s.LoadFragment(fragment)
}

// LoadFragment builds the tree from an already decoded fragment.
func (s *Session) LoadFragment(fragment schema.Fragment) error {
	root, err := Build(fragment, s.registry)
	if err != nil {
		return err
	}
	s.root = root
	return nil
}

// Root exposes the root node to presentation layers. It returns nil when no
// schema has been loaded.
func (s *Session) Root() *Node {
	return s.root
}

// Loaded reports whether a schema is currently installed.
func (s *Session) Loaded() bool {
	return s.root != nil
}

// Output returns the aggregated output line for the current tree state. The
// second return is false when no schema has been loaded; asking for output
// on an empty session is an explicit "no data" result, not an error.
func (s *Session) Output() (string, bool) {
	if s.root == nil {
		return "", false
	}
	return s.root.Data(), true
}

func describeSource(src schema.Source) string {
	if src == nil {
		return "<nil source>"
	}
	return src.Location()
}
