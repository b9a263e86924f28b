package queryskema

import (
	"bytes"
	"net/url"
	"strconv"

	json "github.com/goccy/go-json"
)

// Snapshot is the fully typed, point-in-time projection of every schema
// field. It is immutable once produced; mutations go through a Binder and
// yield a new Snapshot on the next projection.
type Snapshot struct {
	names  []string
	values map[string]Value
}

// Get returns the value for name. Unknown names return the zero Value,
// which is an absent string.
func (s Snapshot) Get(name string) Value {
	return s.values[name]
}

// Names returns the field names in schema declaration order.
func (s Snapshot) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Equal reports whether two snapshots carry the same fields with equal
// values. Projections of an unchanged store are always Equal.
func (s Snapshot) Equal(o Snapshot) bool {
	if len(s.names) != len(o.names) {
		return false
	}
	for i, n := range s.names {
		if o.names[i] != n {
			return false
		}
		if !s.values[n].Equal(o.values[n]) {
			return false
		}
	}
	return true
}

// MarshalJSON renders the snapshot as a JSON object in schema declaration
// order.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for i, n := range s.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(n))
		buf.WriteByte(':')
		vb, err := json.Marshal(s.values[n])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Project derives a Snapshot from the current store contents. It is pure
// and total: unknown store keys are ignored, missing fields decode to their
// kind-appropriate absent/empty value, and malformed raw values never raise.
func Project(schema *Schema, store Store) Snapshot {
	snap := Snapshot{
		names:  schema.Names(),
		values: make(map[string]Value, schema.Len()),
	}
	for _, f := range schema.fields {
		snap.values[f.spec.Name] = f.codec.Decode(store.Read(f.spec.Name))
	}
	return snap
}

// ProjectValues projects directly from url.Values, the usual shape of an
// incoming request query.
func ProjectValues(schema *Schema, values url.Values) Snapshot {
	snap := Snapshot{
		names:  schema.Names(),
		values: make(map[string]Value, schema.Len()),
	}
	for _, f := range schema.fields {
		var raw Raw
		if vs, ok := values[f.spec.Name]; ok {
			raw = vs
		}
		snap.values[f.spec.Name] = f.codec.Decode(raw)
	}
	return snap
}

// ProjectWithMeta projects the store and collects per-field presence:
// whether the raw key was seen, and whether a seen raw value lost
// information during the lenient decode.
func ProjectWithMeta(schema *Schema, store Store) Decoded {
	d := Decoded{
		Snapshot: Snapshot{
			names:  schema.Names(),
			values: make(map[string]Value, schema.Len()),
		},
		Presence: make(PresenceMap, schema.Len()),
	}
	for _, f := range schema.fields {
		raw := store.Read(f.spec.Name)
		v := f.codec.Decode(raw)
		d.Snapshot.values[f.spec.Name] = v
		if raw == nil {
			continue
		}
		p := PresenceSeen
		if malformed(f.spec.Kind, raw, schema.enc, v) {
			p |= PresenceMalformed
		}
		d.Presence[f.spec.Name] = p
	}
	return d
}

// malformed reports whether a present raw value degraded during decode.
// Array loss is measured against the restored item count, not the raw entry
// count: a delimited encoding packs many items into one entry.
func malformed(k Kind, raw Raw, enc ArrayEncoding, v Value) bool {
	if k.IsArray() {
		// Lenient literal-array decode drops non-member entries.
		return k == KindLiteralArray && len(v.Items()) < len(enc.Restore(raw))
	}
	return v.IsAbsent()
}
