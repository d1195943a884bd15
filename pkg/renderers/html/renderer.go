// Package html renders a static HTML preview of an adaptive tree form: one
// fieldset per node, a select per branch point with the active child
// selected, and the current field values filled in. Inactive subtrees are
// emitted hidden so a small script can toggle them client side.
package html

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"strings"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/SteampunkIslande/adaptive-tree-widget/pkg/fields"
	"github.com/SteampunkIslande/adaptive-tree-widget/pkg/tree"
)

//go:embed templates/*.html
var templatesFS embed.FS

// ErrNoForm is returned when rendering a session with no schema loaded.
var ErrNoForm = errors.New("html: no form loaded")

// Renderer turns a loaded session into a standalone HTML document.
type Renderer struct {
	set     *pongo2.TemplateSet
	nodeTpl *pongo2.Template
	pageTpl *pongo2.Template
	policy  *bluemonday.Policy
	title   string
}

// Option configures the renderer.
type Option func(*Renderer)

// WithTitle sets the document title.
func WithTitle(title string) Option {
	return func(r *Renderer) {
		if title != "" {
			r.title = title
		}
	}
}

// WithPolicy replaces the sanitizer applied to schema descriptions before
// they are injected into markup.
func WithPolicy(policy *bluemonday.Policy) Option {
	return func(r *Renderer) {
		if policy != nil {
			r.policy = policy
		}
	}
}

// New constructs a renderer backed by the embedded template bundle.
func New(options ...Option) (*Renderer, error) {
	templates, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		return nil, err
	}
	set := pongo2.NewSet("treeform", pongo2.NewFSLoader(templates))

	nodeTpl, err := set.FromFile("node.html")
	if err != nil {
		return nil, err
	}
	pageTpl, err := set.FromFile("form.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		set:     set,
		nodeTpl: nodeTpl,
		pageTpl: pageTpl,
		policy:  bluemonday.UGCPolicy(),
		title:   "Adaptive tree form",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r, nil
}

// Render produces the HTML document for the session's current tree state.
func (r *Renderer) Render(ctx context.Context, session *tree.Session) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("html: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if session == nil || session.Root() == nil {
		return nil, ErrNoForm
	}

	body, err := r.renderNode(session.Root(), true)
	if err != nil {
		return nil, err
	}

	out, err := r.pageTpl.Execute(pongo2.Context{
		"title": r.title,
		"body":  body,
	})
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// renderNode renders leaf-up: children are rendered first and injected as
// pre-built markup, which is how the recursive tree maps onto flat
// templates.
func (r *Renderer) renderNode(node *tree.Node, active bool) (string, error) {
	children := node.Children()
	activeChild := node.ActiveChild()
	childViews := make([]map[string]any, 0, len(children))
	for _, child := range children {
		// Identity, not name: duplicate sibling names must not all render
		// active.
		childActive := child == activeChild
		markup, err := r.renderNode(child, childActive)
		if err != nil {
			return "", err
		}
		childViews = append(childViews, map[string]any{
			"name":   child.Name(),
			"active": childActive,
			"html":   markup,
		})
	}

	nodeFields := node.Fields()
	fieldViews := make([]map[string]any, 0, len(nodeFields))
	for _, field := range nodeFields {
		fieldViews = append(fieldViews, fieldView(field))
	}

	return r.nodeTpl.Execute(pongo2.Context{
		"name":        node.Name(),
		"root":        node.IsRoot(),
		"active":      active,
		"description": r.sanitize(node.Description()),
		"fields":      fieldViews,
		"children":    childViews,
	})
}

// fieldView flattens a field into template data. Multi-line and file-list
// fields become textareas holding one entry per line.
func fieldView(field fields.Field) map[string]any {
	view := map[string]any{
		"name":      field.Name(),
		"value":     field.Value(),
		"multiline": false,
	}
	switch f := field.(type) {
	case *fields.TextListField:
		view["multiline"] = true
		view["value"] = strings.Join(f.Lines(), "\n")
	case *fields.FileListField:
		view["multiline"] = true
		view["value"] = strings.Join(f.Paths(), "\n")
	}
	return view
}

func (r *Renderer) sanitize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(r.policy.Sanitize(trimmed))
}
