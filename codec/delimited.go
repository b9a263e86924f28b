// Package codec provides alternative wire representations for array-kind
// fields. The root package defaults to repeated keys; Delimited joins items
// into a single raw entry, the shape many query-string conventions use
// ("?statuses=A,B,C").
package codec

import (
	"strings"

	queryskema "github.com/takuyanagai0213/queryskema"
)

// Repeated returns the default encoding: one raw store entry per item.
func Repeated() queryskema.ArrayEncoding { return repeated{} }

type repeated struct{}

func (repeated) Flatten(items []string) queryskema.Raw {
	cp := make(queryskema.Raw, len(items))
	copy(cp, items)
	return cp
}

func (repeated) Restore(raw queryskema.Raw) []string {
	cp := make([]string, len(raw))
	copy(cp, raw)
	return cp
}

// Delimited returns an encoding that joins items with sep into a single raw
// entry and splits on sep when restoring. Items containing sep cannot
// round-trip; callers choosing this encoding own that constraint. An empty
// sep falls back to ",".
func Delimited(sep string) queryskema.ArrayEncoding {
	if sep == "" {
		sep = ","
	}
	return delimited{sep: sep}
}

type delimited struct{ sep string }

func (d delimited) Flatten(items []string) queryskema.Raw {
	if len(items) == 0 {
		return nil
	}
	return queryskema.Raw{strings.Join(items, d.sep)}
}

func (d delimited) Restore(raw queryskema.Raw) []string {
	if len(raw) == 0 {
		return nil
	}
	// Multiple raw entries still restore; each entry may itself be joined.
	var out []string
	for _, entry := range raw {
		for _, part := range strings.Split(entry, d.sep) {
			if part == "" {
				continue
			}
			out = append(out, part)
		}
	}
	return out
}
