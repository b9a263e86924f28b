package queryskema_test

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	queryskema "github.com/takuyanagai0213/queryskema"
)

func TestBinder_ToggleWalkthrough(t *testing.T) {
	schema := testSchema(t)
	store := newFakeStore(nil)
	b := queryskema.Bind(schema, store)

	steps := []struct {
		item string
		want []string
	}{
		{"APPROVED", []string{"APPROVED"}},
		{"PENDING", []string{"APPROVED", "PENDING"}},
		{"APPROVED", []string{"PENDING"}}, // order-preserving removal
	}
	for _, st := range steps {
		if err := b.Toggle("statuses", st.item); err != nil {
			t.Fatalf("toggle %s: %v", st.item, err)
		}
		got := b.Snapshot().Get("statuses").Items()
		if diff := cmp.Diff(st.want, got); diff != "" {
			t.Fatalf("after toggle %s (-want +got):\n%s", st.item, diff)
		}
	}
}

func TestBinder_ToggleInvolution(t *testing.T) {
	schema := testSchema(t)
	store := newFakeStore(url.Values{"statuses": {"REJECTED", "PENDING"}})
	b := queryskema.Bind(schema, store)

	before := b.Snapshot()
	if err := b.Toggle("statuses", "APPROVED"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if err := b.Toggle("statuses", "APPROVED"); err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if !b.Snapshot().Equal(before) {
		t.Fatalf("toggle twice did not restore the state: %v", b.Snapshot().Get("statuses"))
	}
}

func TestBinder_ToggleNonArrayIsNoop(t *testing.T) {
	schema := testSchema(t)
	store := newFakeStore(url.Values{"keyword": {"x"}})
	b := queryskema.Bind(schema, store)

	if err := b.Toggle("keyword", "y"); err != nil {
		t.Fatalf("toggle on scalar must be a silent no-op, got %v", err)
	}
	if err := b.Toggle("nope", "y"); err != nil {
		t.Fatalf("toggle on unknown field must be a silent no-op, got %v", err)
	}
	if store.batches != 0 {
		t.Fatalf("no-op toggles must not write, got %d batches", store.batches)
	}
}

func TestBinder_ToggleStrictReportsNoopCases(t *testing.T) {
	schema := testSchema(t)
	store := newFakeStore(url.Values{"keyword": {"x"}})
	b := queryskema.Bind(schema, store)

	err := b.ToggleStrict("keyword", "y")
	if iss, ok := queryskema.AsIssues(err); !ok || iss[0].Code != queryskema.CodeNotArray {
		t.Fatalf("expected not_array for a scalar field, got %v", err)
	}
	err = b.ToggleStrict("nope", "y")
	if iss, ok := queryskema.AsIssues(err); !ok || iss[0].Code != queryskema.CodeUnknownField {
		t.Fatalf("expected unknown_field, got %v", err)
	}
	if store.batches != 0 {
		t.Fatalf("failed strict toggles must not write, got %d batches", store.batches)
	}

	if err := b.ToggleStrict("statuses", "APPROVED"); err != nil {
		t.Fatalf("array field toggles normally: %v", err)
	}
	if got := b.Snapshot().Get("statuses").Items(); len(got) != 1 || got[0] != "APPROVED" {
		t.Fatalf("statuses: %v", got)
	}
}

func TestBinder_SetWritesOneKey(t *testing.T) {
	schema := testSchema(t)
	store := newFakeStore(url.Values{"keyword": {"keep"}})
	b := queryskema.Bind(schema, store)

	if err := b.Set("page", queryskema.IntValue(2)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := store.Read("page"); len(got) != 1 || got[0] != "2" {
		t.Fatalf("page raw: %v", got)
	}
	if got := store.Read("keyword"); len(got) != 1 || got[0] != "keep" {
		t.Fatalf("other fields must be untouched: %v", got)
	}
}

func TestBinder_SetUnknownFieldFails(t *testing.T) {
	schema := testSchema(t)
	store := newFakeStore(nil)
	b := queryskema.Bind(schema, store)

	err := b.Set("ghost", queryskema.StringValue("x"))
	if err == nil {
		t.Fatalf("expected unknown_field")
	}
	if iss, ok := queryskema.AsIssues(err); !ok || iss[0].Code != queryskema.CodeUnknownField {
		t.Fatalf("expected unknown_field, got %v", err)
	}
	if store.batches != 0 {
		t.Fatalf("failed set must not write")
	}
}

func TestBinder_SetLiteralOutOfOptionsFails(t *testing.T) {
	schema := testSchema(t)
	store := newFakeStore(nil)
	b := queryskema.Bind(schema, store)

	err := b.Set("sort", queryskema.LiteralValue("sideways"))
	if err == nil {
		t.Fatalf("expected invalid_enum")
	}
	iss, ok := queryskema.AsIssues(err)
	if !ok || iss[0].Code != queryskema.CodeInvalidEnum {
		t.Fatalf("expected invalid_enum, got %v", err)
	}
	if iss[0].Path != "sort" {
		t.Fatalf("issue path should name the field, got %q", iss[0].Path)
	}
	if store.batches != 0 {
		t.Fatalf("failed set must not write")
	}
}

func TestBinder_SetManyIsOneBatch(t *testing.T) {
	schema := testSchema(t)
	store := newFakeStore(nil)
	b := queryskema.Bind(schema, store)

	err := b.SetMany(map[string]queryskema.Value{
		"keyword":  queryskema.StringValue("invoice"),
		"page":     queryskema.IntValue(1),
		"statuses": queryskema.LiteralListValue("PENDING", "APPROVED"),
	})
	if err != nil {
		t.Fatalf("setMany: %v", err)
	}
	if store.batches != 1 {
		t.Fatalf("setMany must apply exactly one batch, got %d", store.batches)
	}
	snap := b.Snapshot()
	if s, _ := snap.Get("keyword").Str(); s != "invoice" {
		t.Fatalf("keyword: %v", snap.Get("keyword"))
	}
	if got := snap.Get("statuses").Items(); len(got) != 2 {
		t.Fatalf("statuses: %v", got)
	}
}

func TestBinder_SetManyValidatesBeforeWriting(t *testing.T) {
	schema := testSchema(t)
	store := newFakeStore(nil)
	b := queryskema.Bind(schema, store)

	err := b.SetMany(map[string]queryskema.Value{
		"keyword": queryskema.StringValue("ok"),
		"sort":    queryskema.LiteralValue("sideways"),
	})
	if err == nil {
		t.Fatalf("expected invalid_enum")
	}
	if store.batches != 0 {
		t.Fatalf("a failing setMany must write nothing, got %d batches", store.batches)
	}
}

func TestBinder_ClearOneLeavesOthersUntouched(t *testing.T) {
	schema := testSchema(t)
	store := newFakeStore(url.Values{
		"keyword":  {"PRG"},
		"page":     {"4"},
		"statuses": {"APPROVED"},
	})
	b := queryskema.Bind(schema, store)

	if err := b.Clear("keyword"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got := store.Read("keyword"); got != nil {
		t.Fatalf("keyword should be absent, got %v", got)
	}
	if got := store.Read("page"); len(got) != 1 || got[0] != "4" {
		t.Fatalf("page must be untouched: %v", got)
	}
	if got := store.Read("statuses"); len(got) != 1 {
		t.Fatalf("statuses must be untouched: %v", got)
	}
}

func TestBinder_ClearAllIdempotent(t *testing.T) {
	schema := testSchema(t)
	store := newFakeStore(url.Values{"keyword": {"x"}, "page": {"9"}})
	b := queryskema.Bind(schema, store)

	if err := b.ClearAll(); err != nil {
		t.Fatalf("clearAll: %v", err)
	}
	once := queryskema.Project(schema, store)
	if err := b.ClearAll(); err != nil {
		t.Fatalf("clearAll twice: %v", err)
	}
	twice := queryskema.Project(schema, store)
	if !once.Equal(twice) {
		t.Fatalf("clearAll must be idempotent")
	}
	for _, name := range schema.Names() {
		if got := store.Read(name); got != nil {
			t.Fatalf("field %s should be absent, got %v", name, got)
		}
	}
	if store.batches != 2 {
		t.Fatalf("each clearAll is one batch, got %d", store.batches)
	}
}
