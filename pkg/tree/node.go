package tree

import (
	"fmt"
	"strings"

	"github.com/SteampunkIslande/adaptive-tree-widget/pkg/fields"
	"github.com/SteampunkIslande/adaptive-tree-widget/pkg/schema"
)

// Node is the recursive structural unit of an adaptive tree form. It owns an
// ordered set of leaf fields and an ordered set of child nodes, of which at
// most one is active at a time. The whole tree is built eagerly from its
// schema fragment so that switching branches is a name swap, never a
// rebuild, and deselected branches keep their field values.
//
// Nodes are not safe for concurrent use; a form is mutated by one goroutine
// at a time by design.
type Node struct {
	name        string
	description string
	root        bool

	fields     []fields.Field
	fieldIndex map[string]int

	children   []*Node
	childIndex map[string]int
	active     string
}

// Build constructs the root node of a tree from a schema fragment, eagerly
// instantiating every child branch and resolving every property through the
// registry. An unresolvable field kind aborts the whole build; a partially
// built tree is never returned. When the root fragment declares children,
// the first one in schema order starts active.
func Build(fragment schema.Fragment, registry *fields.Registry) (*Node, error) {
	return build(fragment, registry, true)
}

func build(fragment schema.Fragment, registry *fields.Registry, isRoot bool) (*Node, error) {
	node := &Node{
		name:        fragment.Name,
		description: fragment.Description,
		root:        isRoot,
	}

	if len(fragment.Properties) > 0 {
		node.fieldIndex = make(map[string]int, len(fragment.Properties))
		for _, prop := range fragment.Properties {
			field, err := registry.New(prop.Field, prop.Name)
			if err != nil {
				return nil, fmt.Errorf("tree: build node %q, property %q: %w", fragment.Name, prop.Name, err)
			}
			node.fieldIndex[prop.Name] = len(node.fields)
			node.fields = append(node.fields, field)
		}
	}

	if len(fragment.Subwidgets) > 0 {
		node.childIndex = make(map[string]int, len(fragment.Subwidgets))
		for _, sub := range fragment.Subwidgets {
			child, err := build(sub, registry, false)
			if err != nil {
				return nil, err
			}
			node.childIndex[sub.Name] = len(node.children)
			node.children = append(node.children, child)
		}
		node.active = node.children[0].name
	}

	return node, nil
}

// Name returns the node's label, set at construction. It may be empty for a
// passthrough branch.
func (n *Node) Name() string { return n.name }

// Description returns the optional help text attached to the node's
// fragment.
func (n *Node) Description() string { return n.description }

// IsRoot reports whether this node is the tree's root. The root is a pure
// container: its own name and fields never appear in aggregated output.
func (n *Node) IsRoot() bool { return n.root }

// Fields returns the node's leaf fields in schema order.
func (n *Node) Fields() []fields.Field {
	return append([]fields.Field(nil), n.fields...)
}

// Field looks up a leaf field by name.
func (n *Node) Field(name string) (fields.Field, bool) {
	idx, ok := n.fieldIndex[name]
	if !ok {
		return nil, false
	}
	return n.fields[idx], true
}

// Children returns the child nodes in schema order.
func (n *Node) Children() []*Node {
	return append([]*Node(nil), n.children...)
}

// ChildNames returns the child names in schema order, suitable for
// populating a single-choice selector.
func (n *Node) ChildNames() []string {
	if len(n.children) == 0 {
		return nil
	}
	names := make([]string, len(n.children))
	for i, child := range n.children {
		names[i] = child.name
	}
	return names
}

// Child looks up a child node by name.
func (n *Node) Child(name string) (*Node, bool) {
	idx, ok := n.childIndex[name]
	if !ok {
		return nil, false
	}
	return n.children[idx], true
}

// ActiveChild returns the currently active child, or nil for a node without
// children. A node with children always has exactly one active child.
func (n *Node) ActiveChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[n.childIndex[n.active]]
}

// ActiveChildName returns the active child's name, or "" when the node has
// no children.
func (n *Node) ActiveChildName() string {
	if len(n.children) == 0 {
		return ""
	}
	return n.active
}

// SelectChild activates the child registered under name. Unknown names are
// rejected with ErrUnknownChild and leave the active child unchanged.
// Deselected subtrees keep their field values, so reselecting a branch
// restores its prior input.
func (n *Node) SelectChild(name string) error {
	if _, ok := n.childIndex[name]; !ok {
		return fmt.Errorf("%w: %q on node %q", ErrUnknownChild, name, n.name)
	}
	n.active = name
	return nil
}

// Data collapses the active path below this node into one descriptive
// string. The root contributes nothing of its own and reports exactly its
// active child's aggregation (or "" when it has no children). A non-root
// node emits its name, then its field values joined with ", " when it has
// fields, then its active child's aggregation when it has children.
//
// Data is a pure function of current tree state: calling it repeatedly
// without intervening mutation yields identical strings.
func (n *Node) Data() string {
	if n.root {
		if child := n.ActiveChild(); child != nil {
			return child.Data()
		}
		return ""
	}

	var b strings.Builder
	b.WriteString(n.name)
	if len(n.fields) > 0 {
		values := make([]string, len(n.fields))
		for i, field := range n.fields {
			values[i] = field.Value()
		}
		b.WriteString(" ")
		b.WriteString(strings.Join(values, ", "))
	}
	if child := n.ActiveChild(); child != nil {
		b.WriteString(" ")
		b.WriteString(child.Data())
	}
	return b.String()
}
