package tree

import (
	"errors"
	"testing"

	"github.com/SteampunkIslande/adaptive-tree-widget/pkg/fields"
	"github.com/SteampunkIslande/adaptive-tree-widget/pkg/schema"
)

// issueFragment mirrors the canonical bug-report form: a root container with
// one "Issue" branch that has a number field and three sub-branches.
func issueFragment() schema.Fragment {
	return schema.Fragment{
		Subwidgets: []schema.Fragment{
			{
				Name: "Issue",
				Properties: []schema.Property{
					{Name: "issue_number", Field: fields.KindLine},
				},
				Subwidgets: []schema.Fragment{
					{Name: "In file(s)", Properties: []schema.Property{{Name: "file_names", Field: fields.KindFileList}}},
					{Name: "In class", Properties: []schema.Property{{Name: "class_names", Field: fields.KindTextList}}},
					{Name: ""},
				},
			},
		},
	}
}

func mustBuild(t *testing.T, fragment schema.Fragment) *Node {
	t.Helper()
	root, err := Build(fragment, fields.NewRegistry())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return root
}

func setLine(t *testing.T, node *Node, name, text string) {
	t.Helper()
	field, ok := node.Field(name)
	if !ok {
		t.Fatalf("field %q not found on node %q", name, node.Name())
	}
	line, ok := field.(*fields.LineField)
	if !ok {
		t.Fatalf("field %q is %T, want *fields.LineField", name, field)
	}
	line.SetText(text)
}

func TestBuild_FirstChildActiveByDefault(t *testing.T) {
	root := mustBuild(t, issueFragment())

	if !root.IsRoot() {
		t.Fatal("root flag not set")
	}
	if got := root.ActiveChildName(); got != "Issue" {
		t.Fatalf("root active child: want %q, got %q", "Issue", got)
	}

	issue := root.ActiveChild()
	if got := issue.ActiveChildName(); got != "In file(s)" {
		t.Fatalf("first child in schema order must start active, got %q", got)
	}
	if issue.IsRoot() {
		t.Fatal("non-root node carries root flag")
	}
}

func TestBuild_PreservesSchemaOrder(t *testing.T) {
	root := mustBuild(t, issueFragment())
	issue := root.ActiveChild()

	want := []string{"In file(s)", "In class", ""}
	got := issue.ChildNames()
	if len(got) != len(want) {
		t.Fatalf("child names: want %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("child names: want %v, got %v", want, got)
		}
	}
}

func TestBuild_UnknownFieldKindAbortsWholeBuild(t *testing.T) {
	fragment := schema.Fragment{
		Subwidgets: []schema.Fragment{
			{Name: "Ok", Properties: []schema.Property{{Name: "a", Field: fields.KindLine}}},
			{Name: "Bad", Properties: []schema.Property{{Name: "b", Field: "ColorPicker"}}},
		},
	}

	root, err := Build(fragment, fields.NewRegistry())
	if !errors.Is(err, fields.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	if root != nil {
		t.Fatal("partial tree must never be returned")
	}
}

func TestSelectChild_UnknownChildLeavesStateUntouched(t *testing.T) {
	root := mustBuild(t, issueFragment())
	issue := root.ActiveChild()

	before := issue.ActiveChildName()
	if err := issue.SelectChild("DoesNotExist"); !errors.Is(err, ErrUnknownChild) {
		t.Fatalf("expected ErrUnknownChild, got %v", err)
	}
	if got := issue.ActiveChildName(); got != before {
		t.Fatalf("active child changed after rejected selection: %q -> %q", before, got)
	}
}

func TestSelectChild_ExactlyOneActive(t *testing.T) {
	root := mustBuild(t, issueFragment())
	issue := root.ActiveChild()

	for _, name := range issue.ChildNames() {
		if err := issue.SelectChild(name); err != nil {
			t.Fatalf("select %q: %v", name, err)
		}
		active := 0
		for _, child := range issue.Children() {
			if child == issue.ActiveChild() {
				active++
			}
		}
		if active != 1 {
			t.Fatalf("after selecting %q: %d active children, want exactly 1", name, active)
		}
	}
}

func TestData_ScenarioIssueNumber(t *testing.T) {
	fragment := schema.Fragment{
		Subwidgets: []schema.Fragment{
			{
				Name:       "Issue",
				Properties: []schema.Property{{Name: "issue_number", Field: fields.KindLine}},
			},
		},
	}
	root := mustBuild(t, fragment)
	setLine(t, root.ActiveChild(), "issue_number", "42")

	if got := root.Data(); got != "Issue 42" {
		t.Fatalf("want %q, got %q", "Issue 42", got)
	}
}

func TestData_ScenarioNestedBranch(t *testing.T) {
	root := mustBuild(t, issueFragment())
	issue := root.ActiveChild()
	setLine(t, issue, "issue_number", "42")

	if err := issue.SelectChild("In class"); err != nil {
		t.Fatalf("select: %v", err)
	}
	inClass := issue.ActiveChild()
	field, _ := inClass.Field("class_names")
	field.(*fields.TextListField).SetText("Foo\nBar")

	if got := root.Data(); got != "Issue 42 In class Foo, Bar" {
		t.Fatalf("want %q, got %q", "Issue 42 In class Foo, Bar", got)
	}
}

func TestData_RootNameAndFieldsOmitted(t *testing.T) {
	fragment := schema.Fragment{
		Name:       "hidden root",
		Properties: []schema.Property{{Name: "ignored", Field: fields.KindLine}},
		Subwidgets: []schema.Fragment{
			{Name: "Visible"},
		},
	}
	root := mustBuild(t, fragment)
	setLine(t, root, "ignored", "should not appear")

	if got := root.Data(); got != "Visible" {
		t.Fatalf("root contribution leaked into output: %q", got)
	}
}

func TestData_RootWithoutChildren(t *testing.T) {
	root := mustBuild(t, schema.Fragment{Name: "lonely"})
	if got := root.Data(); got != "" {
		t.Fatalf("childless root must aggregate to empty string, got %q", got)
	}
}

func TestData_EmptyNamePassthroughBranch(t *testing.T) {
	root := mustBuild(t, issueFragment())
	issue := root.ActiveChild()
	setLine(t, issue, "issue_number", "7")

	if err := issue.SelectChild(""); err != nil {
		t.Fatalf("select empty-name branch: %v", err)
	}

	// An empty name still contributes its leading (empty) label.
	if got := root.Data(); got != "Issue 7 " {
		t.Fatalf("want %q, got %q", "Issue 7 ", got)
	}
}

func TestData_Idempotent(t *testing.T) {
	root := mustBuild(t, issueFragment())
	issue := root.ActiveChild()
	setLine(t, issue, "issue_number", "42")

	first := root.Data()
	second := root.Data()
	if first != second {
		t.Fatalf("data not idempotent: %q vs %q", first, second)
	}
}

func TestData_StateRetainedAcrossReselection(t *testing.T) {
	root := mustBuild(t, issueFragment())
	issue := root.ActiveChild()

	if err := issue.SelectChild("In class"); err != nil {
		t.Fatalf("select: %v", err)
	}
	field, _ := issue.ActiveChild().Field("class_names")
	field.(*fields.TextListField).SetText("Foo\nBar")

	if err := issue.SelectChild("In file(s)"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := issue.SelectChild("In class"); err != nil {
		t.Fatalf("reselect: %v", err)
	}

	if got := root.Data(); got != "Issue  In class Foo, Bar" {
		t.Fatalf("field values must survive deactivation, got %q", got)
	}
}

func TestData_PureLeafLabel(t *testing.T) {
	fragment := schema.Fragment{
		Subwidgets: []schema.Fragment{{Name: "JustALabel"}},
	}
	root := mustBuild(t, fragment)
	if got := root.Data(); got != "JustALabel" {
		t.Fatalf("pure leaf label: want %q, got %q", "JustALabel", got)
	}
}
