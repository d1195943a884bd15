package schema

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const issueJSON = `{
	"subwidgets": [
		{
			"name": "Issue",
			"properties": [
				{"name": "issue_number", "field": "single-line"}
			],
			"subwidgets": [
				{"name": "In file(s)", "properties": [{"name": "file_names", "field": "multi-file-list"}]},
				{"name": "In class", "properties": [{"name": "class_names", "field": "multi-line-list"}]},
				{"name": ""}
			]
		}
	]
}`

func issueFragment() Fragment {
	return Fragment{
		Subwidgets: []Fragment{
			{
				Name: "Issue",
				Properties: []Property{
					{Name: "issue_number", Field: "single-line"},
				},
				Subwidgets: []Fragment{
					{Name: "In file(s)", Properties: []Property{{Name: "file_names", Field: "multi-file-list"}}},
					{Name: "In class", Properties: []Property{{Name: "class_names", Field: "multi-line-list"}}},
					{Name: ""},
				},
			},
		},
	}
}

func TestParse_JSON(t *testing.T) {
	doc := MustNewDocument(SourceFromFile("form.json"), []byte(issueJSON))

	fragment, err := Parse(doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diff := cmp.Diff(issueFragment(), fragment); diff != "" {
		t.Fatalf("fragment mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_YAMLByExtension(t *testing.T) {
	raw := []byte(`
subwidgets:
  - name: Issue
    properties:
      - name: issue_number
        field: single-line
    subwidgets:
      - name: In file(s)
        properties:
          - name: file_names
            field: multi-file-list
      - name: In class
        properties:
          - name: class_names
            field: multi-line-list
      - name: ""
`)
	doc := MustNewDocument(SourceFromFile("form.yaml"), raw)

	fragment, err := Parse(doc)
	if err != nil {
		t.Fatalf("parse yaml: %v", err)
	}
	if diff := cmp.Diff(issueFragment(), fragment); diff != "" {
		t.Fatalf("fragment mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_YAMLFallbackWithoutExtension(t *testing.T) {
	raw := []byte("name: Issue\nproperties:\n  - name: issue_number\n    field: single-line\n")
	doc := MustNewDocument(SourceFromFile("form"), raw)

	fragment, err := Parse(doc)
	if err != nil {
		t.Fatalf("parse fallback: %v", err)
	}
	if fragment.Name != "Issue" || len(fragment.Properties) != 1 {
		t.Fatalf("unexpected fragment: %+v", fragment)
	}
}

func TestParse_MalformedDocument(t *testing.T) {
	doc := MustNewDocument(SourceFromFile("broken.json"), []byte(`{"subwidgets": [`))

	_, err := Parse(doc)
	if err == nil {
		t.Fatal("expected parse error")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T (%v)", err, err)
	}
	if !strings.Contains(parseErr.Error(), "broken.json") {
		t.Fatalf("error should name the location, got %q", parseErr.Error())
	}
	if parseErr.Unwrap() == nil {
		t.Fatal("expected wrapped cause")
	}
}

func TestLooksLikeYAML(t *testing.T) {
	cases := map[string]bool{
		"form.yaml":  true,
		"form.YML":   true,
		"form.json":  false,
		"form":       false,
		"dir/a.yml":  true,
		"dir/a.json": false,
	}
	for location, expect := range cases {
		if got := LooksLikeYAML(location); got != expect {
			t.Fatalf("LooksLikeYAML(%q) = %v, want %v", location, got, expect)
		}
		doc := MustNewDocument(SourceFromFile(location), []byte("x"))
		if got := doc.LooksLikeYAML(); got != expect {
			t.Fatalf("Document(%q).LooksLikeYAML() = %v, want %v", location, got, expect)
		}
	}
}
