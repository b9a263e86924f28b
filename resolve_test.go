package queryskema_test

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	queryskema "github.com/takuyanagai0213/queryskema"
)

func TestResolve_EmptyArrayFallsBackToDefault(t *testing.T) {
	schema := testSchema(t)
	store := newFakeStore(nil) // nothing selected externally
	observed := queryskema.Project(schema, store)

	defaults := map[string]queryskema.Value{
		"statuses": queryskema.LiteralListValue("PENDING", "APPROVED", "REJECTED"),
	}
	got := queryskema.Resolve(schema, observed, defaults)
	want := []string{"PENDING", "APPROVED", "REJECTED"}
	if diff := cmp.Diff(want, got["statuses"].Items()); diff != "" {
		t.Fatalf("statuses (-want +got):\n%s", diff)
	}
}

func TestResolve_NonEmptyObservationWins(t *testing.T) {
	schema := testSchema(t)
	store := newFakeStore(url.Values{"statuses": {"REJECTED"}})
	observed := queryskema.Project(schema, store)

	got := queryskema.Resolve(schema, observed, map[string]queryskema.Value{
		"statuses": queryskema.LiteralListValue("PENDING", "APPROVED", "REJECTED"),
	})
	if items := got["statuses"].Items(); len(items) != 1 || items[0] != "REJECTED" {
		t.Fatalf("observed selection should win, got %v", items)
	}
}

func TestResolve_AbsentScalarFallsBackToEmptyStringDefault(t *testing.T) {
	schema := testSchema(t)
	observed := queryskema.Project(schema, newFakeStore(nil))

	got := queryskema.Resolve(schema, observed, map[string]queryskema.Value{
		"keyword": queryskema.StringValue(""),
	})
	s, ok := got["keyword"].Str()
	if !ok || s != "" {
		t.Fatalf("expected explicit empty-string default, got %v", got["keyword"])
	}
}

func TestResolve_PresentScalarWins(t *testing.T) {
	schema := testSchema(t)
	store := newFakeStore(url.Values{"keyword": {"PRG-001"}})
	observed := queryskema.Project(schema, store)

	got := queryskema.Resolve(schema, observed, map[string]queryskema.Value{
		"keyword": queryskema.StringValue("PRG-DEFAULT"),
	})
	if s, _ := got["keyword"].Str(); s != "PRG-001" {
		t.Fatalf("observed scalar should win, got %v", got["keyword"])
	}
}

func TestResolve_OnlyDefaultedFieldsReturned(t *testing.T) {
	schema := testSchema(t)
	store := newFakeStore(url.Values{"page": {"3"}})
	observed := queryskema.Project(schema, store)

	got := queryskema.Resolve(schema, observed, map[string]queryskema.Value{
		"keyword": queryskema.StringValue(""),
	})
	if len(got) != 1 {
		t.Fatalf("resolver fills gaps only for defaulted fields, got %v", got)
	}
	if _, ok := got["page"]; ok {
		t.Fatalf("non-defaulted field leaked into the result")
	}
}

func TestResolve_UnknownDefaultIgnored(t *testing.T) {
	schema := testSchema(t)
	observed := queryskema.Project(schema, newFakeStore(nil))

	got := queryskema.Resolve(schema, observed, map[string]queryskema.Value{
		"ghost": queryskema.StringValue("x"),
	})
	if len(got) != 0 {
		t.Fatalf("defaults for unknown fields are dropped, got %v", got)
	}
}

func TestResolveWithMeta_FlagsDefaultApplication(t *testing.T) {
	schema := testSchema(t)
	store := newFakeStore(url.Values{"keyword": {"seen"}})
	observed := queryskema.Project(schema, store)

	_, pm := queryskema.ResolveWithMeta(schema, observed, map[string]queryskema.Value{
		"keyword":  queryskema.StringValue("default"),
		"statuses": queryskema.LiteralListValue("PENDING"),
	})
	if pm["keyword"]&queryskema.PresenceSeen == 0 {
		t.Fatalf("keyword came from the store")
	}
	if pm["statuses"]&queryskema.PresenceDefaultApplied == 0 {
		t.Fatalf("statuses came from the default")
	}
}
