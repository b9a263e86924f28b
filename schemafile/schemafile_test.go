package schemafile_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	queryskema "github.com/takuyanagai0213/queryskema"
	"github.com/takuyanagai0213/queryskema/schemafile"
)

const fullDoc = `
fields:
  keyword: { type: string }
  page: { type: integer }
  archived: { type: boolean }
  sort: { type: string, enum: [asc, desc] }
  tags: { type: array, items: { type: string } }
  statuses: { type: array, items: { type: string, enum: [PENDING, APPROVED, REJECTED] } }
`

func TestParse_AllSupportedShapes(t *testing.T) {
	specs, err := schemafile.Parse([]byte(fullDoc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []queryskema.FieldSpec{
		{Name: "keyword", Kind: queryskema.KindString},
		{Name: "page", Kind: queryskema.KindInt},
		{Name: "archived", Kind: queryskema.KindBool},
		{Name: "sort", Kind: queryskema.KindLiteral, Options: []string{"asc", "desc"}},
		{Name: "tags", Kind: queryskema.KindStringArray},
		{Name: "statuses", Kind: queryskema.KindLiteralArray, Options: []string{"PENDING", "APPROVED", "REJECTED"}},
	}
	if diff := cmp.Diff(want, specs); diff != "" {
		t.Fatalf("specs mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_PreservesDocumentOrder(t *testing.T) {
	doc := `
fields:
  zeta: { type: string }
  alpha: { type: integer }
  mid: { type: boolean }
`
	specs, err := schemafile.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var names []string
	for _, s := range specs {
		names = append(names, s.Name)
	}
	if diff := cmp.Diff([]string{"zeta", "alpha", "mid"}, names); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_BuildsWorkingSchema(t *testing.T) {
	schema, err := schemafile.Load([]byte(fullDoc))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if schema.Len() != 6 {
		t.Fatalf("len = %d", schema.Len())
	}
	spec, ok := schema.Spec("sort")
	if !ok || spec.Kind != queryskema.KindLiteral {
		t.Fatalf("sort spec: %+v ok=%v", spec, ok)
	}
}

func TestParse_UnsupportedShapesFailFast(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		path string
	}{
		{"integer with enum", "fields:\n  n: { type: integer, enum: [\"1\", \"2\"] }\n", "n"},
		{"boolean with enum", "fields:\n  b: { type: boolean, enum: [\"true\"] }\n", "b"},
		{"array without items", "fields:\n  a: { type: array }\n", "a"},
		{"array of integers", "fields:\n  a: { type: array, items: { type: integer } }\n", "a"},
		{"nested arrays", "fields:\n  a: { type: array, items: { type: string, items: { type: string } } }\n", "a"},
		{"enum on the array itself", "fields:\n  a: { type: array, enum: [x], items: { type: string } }\n", "a"},
		{"unknown type", "fields:\n  o: { type: object }\n", "o"},
		{"missing type", "fields:\n  x: { enum: [a] }\n", "x"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := schemafile.Parse([]byte(tc.doc))
			iss, ok := queryskema.AsIssues(err)
			if !ok {
				t.Fatalf("expected issues, got %v", err)
			}
			if len(iss) != 1 || iss[0].Code != queryskema.CodeUnsupportedShape {
				t.Fatalf("issues: %v", iss)
			}
			if iss[0].Path != tc.path {
				t.Fatalf("path = %q, want %q", iss[0].Path, tc.path)
			}
		})
	}
}

func TestParse_EmptyAndMalformedDocuments(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		code string
	}{
		{"empty input", "", queryskema.CodeEmptyDocument},
		{"no fields key", "other: 1\n", queryskema.CodeEmptyDocument},
		{"empty fields mapping", "fields: {}\n", queryskema.CodeEmptyDocument},
		{"fields is a scalar", "fields: nope\n", queryskema.CodeUnsupportedShape},
		{"fields is a sequence", "fields:\n  - keyword\n", queryskema.CodeUnsupportedShape},
		{"not yaml", "fields: [unclosed\n", queryskema.CodeParseError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := schemafile.Parse([]byte(tc.doc))
			iss, ok := queryskema.AsIssues(err)
			if !ok {
				t.Fatalf("expected issues, got %v", err)
			}
			if len(iss) != 1 || iss[0].Code != tc.code {
				t.Fatalf("issues: %v", iss)
			}
		})
	}
}

func TestParse_AccumulatesPerFieldIssues(t *testing.T) {
	doc := `
fields:
  ok: { type: string }
  bad1: { type: object }
  bad2: { type: array }
`
	_, err := schemafile.Parse([]byte(doc))
	iss, ok := queryskema.AsIssues(err)
	if !ok {
		t.Fatalf("expected issues, got %v", err)
	}
	if len(iss) != 2 {
		t.Fatalf("want both unsupported fields reported, got %v", iss)
	}
	if iss[0].Path != "bad1" || iss[1].Path != "bad2" {
		t.Fatalf("paths: %v", iss)
	}
}
