package fields

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrUnknownKind is returned when a schema property references a field kind
// absent from the registry. Loads must fail fast on it; there is no fallback
// kind.
var ErrUnknownKind = errors.New("fields: unknown field kind")

// Constructor builds an empty field from its property name.
type Constructor func(name string) Field

// Registry maps field-kind identifiers to constructors. The built-in set is
// closed and explicit: the three supported kinds plus the legacy identifiers
// used by documents written for the original tool. Additional kinds may be
// registered, but unknown identifiers always fail resolution.
type Registry struct {
	mu    sync.RWMutex
	kinds map[string]Constructor
	order []string
}

// NewRegistry constructs a registry with the built-in kinds registered.
func NewRegistry() *Registry {
	reg := &Registry{kinds: make(map[string]Constructor)}
	reg.registerBuiltins()
	return reg
}

// Register adds a constructor under the given kind identifier. The latest
// registration for an identifier wins. Empty identifiers and nil
// constructors are ignored.
func (r *Registry) Register(kind string, ctor Constructor) {
	if r == nil || ctor == nil {
		return
	}
	trimmed := strings.TrimSpace(kind)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.kinds[trimmed]; !exists {
		r.order = append(r.order, trimmed)
	}
	r.kinds[trimmed] = ctor
}

// Resolve returns the constructor registered for the identifier, or an error
// wrapping ErrUnknownKind naming the offending kind.
func (r *Registry) Resolve(kind string) (Constructor, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: %q (nil registry)", ErrUnknownKind, kind)
	}
	r.mu.RLock()
	ctor, ok := r.kinds[kind]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return ctor, nil
}

// New resolves the kind and constructs a field in one step.
func (r *Registry) New(kind, name string) (Field, error) {
	ctor, err := r.Resolve(kind)
	if err != nil {
		return nil, err
	}
	return ctor(name), nil
}

// Kinds returns the registered identifiers in registration order.
func (r *Registry) Kinds() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

func (r *Registry) registerBuiltins() {
	line := func(name string) Field { return NewLineField(name) }
	textList := func(name string) Field { return NewTextListField(name) }
	fileList := func(name string) Field { return NewFileListField(name) }

	r.Register(KindLine, line)
	r.Register(KindTextList, textList)
	r.Register(KindFileList, fileList)

	// Legacy identifiers. The original tool mapped MultipleFilesEdit onto
	// the text widget; here it gets the real file-list behavior.
	r.Register(AliasLineEdit, line)
	r.Register(AliasMultipleTextEdit, textList)
	r.Register(AliasMultipleFilesEdit, fileList)
}
