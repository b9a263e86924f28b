// Package urlstore implements the queryskema Store boundary on top of
// net/url.Values with browser-history-like semantics: every WriteBatch
// yields exactly one history entry (push mode) or rewrites the current one
// (replace mode), and subscribers are notified once per applied batch.
package urlstore

import (
	"net/url"
	"sync"

	queryskema "github.com/takuyanagai0213/queryskema"
)

// Mode selects how applied batches interact with the history.
type Mode int

const (
	// Replace rewrites the current history entry on every batch.
	Replace Mode = iota
	// Push appends a new history entry on every batch.
	Push
)

// Store is a URL-query-backed Parameter Store. It is safe for concurrent
// use, though the intended execution model is a single cooperative writer.
type Store struct {
	mu      sync.Mutex
	values  url.Values
	mode    Mode
	history []string
	subs    map[int]func()
	nextSub int
}

// Option configures a Store.
type Option func(*Store)

// WithMode selects push or replace history behavior (default Replace).
func WithMode(m Mode) Option {
	return func(s *Store) { s.mode = m }
}

// New returns a Store seeded with initial values (may be nil).
func New(initial url.Values, opts ...Option) *Store {
	s := &Store{
		values: url.Values{},
		subs:   map[int]func(){},
	}
	for k, vs := range initial {
		cp := make([]string, len(vs))
		copy(cp, vs)
		s.values[k] = cp
	}
	for _, o := range opts {
		o(s)
	}
	s.history = []string{s.values.Encode()}
	return s
}

// Parse returns a Store seeded from a raw query string.
func Parse(query string, opts ...Option) (*Store, error) {
	values, err := url.ParseQuery(query)
	if err != nil {
		return nil, err
	}
	return New(values, opts...), nil
}

// Read returns the raw value for name, nil when absent.
func (s *Store) Read(name string) queryskema.Raw {
	s.mu.Lock()
	defer s.mu.Unlock()
	vs, ok := s.values[name]
	if !ok {
		return nil
	}
	cp := make(queryskema.Raw, len(vs))
	copy(cp, vs)
	return cp
}

// WriteBatch applies the patch as one update: one history entry, one
// notification round. Nil patch entries remove the key.
func (s *Store) WriteBatch(patch queryskema.Patch) {
	s.mu.Lock()
	for name, raw := range patch {
		if raw == nil {
			delete(s.values, name)
			continue
		}
		cp := make([]string, len(raw))
		copy(cp, raw)
		s.values[name] = cp
	}
	entry := s.values.Encode()
	if s.mode == Push {
		s.history = append(s.history, entry)
	} else {
		s.history[len(s.history)-1] = entry
	}
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Subscribe registers fn to run after every applied batch.
func (s *Store) Subscribe(fn func()) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Location returns the canonical encoding of the current query.
func (s *Store) Location() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values.Encode()
}

// Values returns a copy of the current query values.
func (s *Store) Values() url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := url.Values{}
	for k, vs := range s.values {
		cp := make([]string, len(vs))
		copy(cp, vs)
		out[k] = cp
	}
	return out
}

// History returns the recorded history entries, oldest first.
func (s *Store) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}

var _ queryskema.Store = (*Store)(nil)
