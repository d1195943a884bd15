package fields

import "strings"

// Built-in field-kind identifiers. The legacy aliases match the identifiers
// used by documents written for the original desktop tool.
const (
	KindLine     = "single-line"
	KindTextList = "multi-line-list"
	KindFileList = "multi-file-list"

	AliasLineEdit          = "LineEdit"
	AliasMultipleTextEdit  = "MultipleTextEdit"
	AliasMultipleFilesEdit = "MultipleFilesEdit"
)

// Field is a single opaque value holder attached to a tree node. The name is
// fixed at construction and doubles as the input placeholder; Value is a pure
// function of whatever raw input the presentation layer stored.
type Field interface {
	Name() string
	Kind() string
	Value() string
}

// LineField holds one line of raw text, reported unmodified.
type LineField struct {
	name string
	text string
}

// NewLineField constructs an empty single-line field.
func NewLineField(name string) *LineField {
	return &LineField{name: name}
}

func (f *LineField) Name() string { return f.name }

func (f *LineField) Kind() string { return KindLine }

// SetText replaces the field's raw text.
func (f *LineField) SetText(text string) {
	f.text = text
}

func (f *LineField) Value() string { return f.text }

// TextListField holds multi-line input and reports the lines joined with
// ", ". Empty lines are kept as empty segments, matching the aggregation
// contract rather than trimming them away.
type TextListField struct {
	name  string
	lines []string
}

// NewTextListField constructs an empty multi-line list field.
func NewTextListField(name string) *TextListField {
	return &TextListField{name: name}
}

func (f *TextListField) Name() string { return f.name }

func (f *TextListField) Kind() string { return KindTextList }

// SetLines replaces the stored lines.
func (f *TextListField) SetLines(lines []string) {
	f.lines = append(f.lines[:0:0], lines...)
}

// SetText splits raw input on newlines and stores the resulting lines.
func (f *TextListField) SetText(raw string) {
	f.lines = strings.Split(raw, "\n")
}

// Lines returns a copy of the stored lines.
func (f *TextListField) Lines() []string {
	return append([]string(nil), f.lines...)
}

func (f *TextListField) Value() string {
	return strings.Join(f.lines, ", ")
}

// FileListField holds a list of file paths and reports them joined with
// ", ". Paths are stored as given; making them relative is the presentation
// layer's concern.
type FileListField struct {
	name  string
	paths []string
}

// NewFileListField constructs an empty multi-file list field.
func NewFileListField(name string) *FileListField {
	return &FileListField{name: name}
}

func (f *FileListField) Name() string { return f.name }

func (f *FileListField) Kind() string { return KindFileList }

// SetPaths replaces the stored path list.
func (f *FileListField) SetPaths(paths []string) {
	f.paths = append(f.paths[:0:0], paths...)
}

// AddPath appends one path to the list.
func (f *FileListField) AddPath(path string) {
	f.paths = append(f.paths, path)
}

// Paths returns a copy of the stored paths.
func (f *FileListField) Paths() []string {
	return append([]string(nil), f.paths...)
}

func (f *FileListField) Value() string {
	return strings.Join(f.paths, ", ")
}
