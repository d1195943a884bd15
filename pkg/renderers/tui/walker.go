package tui

import (
	"context"
	"errors"
	"fmt"
	"html"
	"path/filepath"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/SteampunkIslande/adaptive-tree-widget/pkg/fields"
	"github.com/SteampunkIslande/adaptive-tree-widget/pkg/tree"
)

// Walker drives one interactive pass over a form: at each branch point it
// presents a single-choice selector populated with the child names in schema
// order, and for each leaf field it runs the prompt matching the field kind.
// It owns no form state; everything the user enters is written back into the
// session's tree, so a rerun starts from the previous answers.
type Walker struct {
	driver   PromptDriver
	workDir  string
	pageSize int
	stripper *bluemonday.Policy
}

// New constructs a walker with defaults (survey driver).
func New(options ...Option) (*Walker, error) {
	driver, err := newSurveyDriver()
	if err != nil {
		return nil, err
	}

	w := &Walker{
		driver:   driver,
		stripper: bluemonday.StrictPolicy(),
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}

	if w.driver == nil {
		w.driver, err = newSurveyDriver()
		if err != nil {
			return nil, err
		}
	}

	return w, nil
}

// Run walks the session's tree from the root and returns the aggregated
// output line. The session must have a schema loaded.
func (w *Walker) Run(ctx context.Context, session *tree.Session) (string, error) {
	if ctx == nil {
		return "", errors.New("tui: context is required")
	}
	if session == nil || session.Root() == nil {
		return "", ErrNoForm
	}

	if err := w.walk(ctx, session.Root()); err != nil {
		return "", err
	}

	out, _ := session.Output()
	return out, nil
}

func (w *Walker) walk(ctx context.Context, node *tree.Node) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, field := range node.Fields() {
		if err := w.promptField(ctx, field); err != nil {
			return err
		}
	}

	names := node.ChildNames()
	if len(names) == 0 {
		return nil
	}

	defaultIdx := indexOf(names, node.ActiveChildName())
	idx, err := w.driver.Select(ctx, SelectConfig{
		Message:      branchMessage(node),
		Options:      names,
		DefaultIndex: defaultIdx,
		Help:         w.helpText(node.Description()),
		PageSize:     w.pageSize,
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(names) {
		return fmt.Errorf("tui: selection out of range for node %q", node.Name())
	}
	if err := node.SelectChild(names[idx]); err != nil {
		return err
	}

	return w.walk(ctx, node.ActiveChild())
}

func (w *Walker) promptField(ctx context.Context, field fields.Field) error {
	switch f := field.(type) {
	case *fields.LineField:
		response, err := w.driver.Input(ctx, InputConfig{
			Message: f.Name(),
			Default: f.Value(),
		})
		if err != nil {
			return err
		}
		f.SetText(response)
		return nil

	case *fields.TextListField:
		raw, err := w.driver.TextArea(ctx, TextAreaConfig{
			Message: f.Name(),
			Default: strings.Join(f.Lines(), "\n"),
			Help:    "one entry per line",
		})
		if err != nil {
			return err
		}
		f.SetText(raw)
		return nil

	case *fields.FileListField:
		return w.promptFiles(ctx, f)

	default:
		return w.promptFallback(ctx, field)
	}
}

// promptFiles collects file paths one at a time. An empty entry or a
// declined "add another" ends the loop. Paths are made relative to the
// configured working directory when possible.
func (w *Walker) promptFiles(ctx context.Context, field *fields.FileListField) error {
	var paths []string
	for {
		path, err := w.driver.Input(ctx, InputConfig{
			Message: fmt.Sprintf("%s (file path)", field.Name()),
			Help:    "leave empty to finish",
		})
		if err != nil {
			return err
		}
		path = strings.TrimSpace(path)
		if path == "" {
			break
		}
		paths = append(paths, w.relativize(path))

		more, err := w.driver.Confirm(ctx, ConfirmConfig{
			Message: "Add another file?",
			Default: false,
		})
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}
	field.SetPaths(paths)
	return nil
}

// textSetter lets custom registered field kinds participate in the walk as
// plain text inputs.
type textSetter interface {
	SetText(string)
}

func (w *Walker) promptFallback(ctx context.Context, field fields.Field) error {
	setter, ok := field.(textSetter)
	if !ok {
		return w.driver.Info(ctx, fmt.Sprintf("skipping %s: no prompt for field kind %q", field.Name(), field.Kind()))
	}
	response, err := w.driver.Input(ctx, InputConfig{
		Message: field.Name(),
		Default: field.Value(),
	})
	if err != nil {
		return err
	}
	setter.SetText(response)
	return nil
}

func (w *Walker) relativize(path string) string {
	if w.workDir == "" || !filepath.IsAbs(path) {
		return path
	}
	rel, err := filepath.Rel(w.workDir, path)
	if err != nil {
		return path
	}
	return rel
}

// helpText strips markup from a schema description so it can be shown as
// terminal help.
func (w *Walker) helpText(description string) string {
	if description == "" || w.stripper == nil {
		return description
	}
	return strings.TrimSpace(html.UnescapeString(w.stripper.Sanitize(description)))
}

func branchMessage(node *tree.Node) string {
	if !node.IsRoot() && node.Name() != "" {
		return node.Name()
	}
	return "Choose a branch"
}
