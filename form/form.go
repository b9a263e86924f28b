// Package form provides a minimal form-session analog of the form
// controller boundary: a staging area seeded from the default-merge
// resolver whose committed values flow back into the Parameter Store as a
// single batch.
package form

import (
	queryskema "github.com/takuyanagai0213/queryskema"
)

// Session stages edits to a set of defaulted fields. Edits are local until
// Commit; the store never observes intermediate states.
type Session struct {
	binder   *queryskema.Binder
	initial  map[string]queryskema.Value
	staged   map[string]queryskema.Value
	presence queryskema.PresenceMap
}

// New seeds a session from the current store projection merged with the
// caller's defaults. Only defaulted fields participate; the session is the
// "effective" read model UI layers observe.
func New(b *queryskema.Binder, defaults map[string]queryskema.Value) *Session {
	dec := b.SnapshotWithMeta()
	initial, pm := queryskema.ResolveWithMeta(b.Schema(), dec.Snapshot, defaults)
	staged := make(map[string]queryskema.Value, len(initial))
	for name, v := range initial {
		staged[name] = v
	}
	return &Session{
		binder:   b,
		initial:  initial,
		staged:   staged,
		presence: queryskema.MergePresenceMaps(dec.Presence, pm),
	}
}

// Value returns the staged value for name and whether the field
// participates in the session.
func (s *Session) Value(name string) (queryskema.Value, bool) {
	v, ok := s.staged[name]
	return v, ok
}

// Set stages one field edit. Unknown fields (relative to the session's
// defaulted set) error; nothing is written to the store.
func (s *Session) Set(name string, v queryskema.Value) error {
	if _, ok := s.staged[name]; !ok {
		return queryskema.Issues{{Path: name, Code: queryskema.CodeUnknownField}}
	}
	s.staged[name] = v
	return nil
}

// Reset discards staged edits, returning to the resolved initial values.
func (s *Session) Reset() {
	for name, v := range s.initial {
		s.staged[name] = v
	}
}

// Dirty reports whether any staged value differs from its initial value.
func (s *Session) Dirty() bool {
	for name, v := range s.staged {
		if !v.Equal(s.initial[name]) {
			return true
		}
	}
	return false
}

// DefaultApplied reports whether the session's initial value for name came
// from the caller default rather than the store.
func (s *Session) DefaultApplied(name string) bool {
	return s.presence[name]&queryskema.PresenceDefaultApplied != 0
}

// Malformed reports whether the store carried a raw value for name that
// degraded during the lenient decode.
func (s *Session) Malformed(name string) bool {
	return s.presence[name]&queryskema.PresenceMalformed != 0
}

// Commit writes the staged values through to the store in one batch.
// Empty-string scalars are translated to absent first: URLs should not
// carry empty-string parameters. The committed values become the new
// initial state.
func (s *Session) Commit() error {
	out := make(map[string]queryskema.Value, len(s.staged))
	for name, v := range s.staged {
		if str, ok := v.Str(); ok && str == "" {
			v = queryskema.Absent(v.Kind())
		}
		out[name] = v
	}
	if err := s.binder.SetMany(out); err != nil {
		return err
	}
	for name, v := range out {
		s.initial[name] = v
		s.staged[name] = v
	}
	return nil
}
