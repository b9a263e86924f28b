package queryskema

import (
	"github.com/takuyanagai0213/queryskema/i18n"
)

// Binder couples a Schema to a Store and exposes the mutation operations.
// It holds no state of its own: every operation reads the store, computes a
// patch and writes it back through one WriteBatch call, so the store's
// batching contract (one observable update per operation) holds regardless
// of how many fields a patch touches.
type Binder struct {
	schema *Schema
	store  Store
}

// Bind returns a Binder over schema and store.
func Bind(schema *Schema, store Store) *Binder {
	return &Binder{schema: schema, store: store}
}

// Schema returns the bound schema.
func (b *Binder) Schema() *Schema { return b.schema }

// Snapshot projects the current store contents.
func (b *Binder) Snapshot() Snapshot { return Project(b.schema, b.store) }

// SnapshotWithMeta projects the current store contents along with per-field
// presence metadata.
func (b *Binder) SnapshotWithMeta() Decoded { return ProjectWithMeta(b.schema, b.store) }

// Set encodes value for the named field and writes exactly one key.
// Unknown fields and literal values outside their option set fail loudly
// and write nothing.
func (b *Binder) Set(name string, value Value) error {
	raw, err := b.encode(name, value)
	if err != nil {
		return err
	}
	b.store.WriteBatch(Patch{name: raw})
	return nil
}

// SetMany validates and encodes every entry first, then applies them as a
// single patch. Readers never observe a torn intermediate state.
func (b *Binder) SetMany(values map[string]Value) error {
	patch := make(Patch, len(values))
	var iss Issues
	for name, v := range values {
		raw, err := b.encode(name, v)
		if err != nil {
			if more, ok := AsIssues(err); ok {
				iss = AppendIssues(iss, more...)
				continue
			}
			return err
		}
		patch[name] = raw
	}
	if len(iss) > 0 {
		return iss
	}
	b.store.WriteBatch(patch)
	return nil
}

// Toggle flips item membership in an array field: an existing occurrence is
// removed in place (order of the remaining items preserved), otherwise the
// item is appended to the end. Toggling a non-array or unknown field is a
// documented no-op, not an error.
func (b *Binder) Toggle(name, item string) error {
	spec, ok := b.schema.Spec(name)
	if !ok || !spec.Kind.IsArray() {
		return nil
	}
	codec, _ := b.schema.CodecOf(name)
	current := codec.Decode(b.store.Read(name)).Items()

	next := make([]string, 0, len(current)+1)
	removed := false
	for _, it := range current {
		if !removed && it == item {
			removed = true
			continue
		}
		next = append(next, it)
	}
	if !removed {
		next = append(next, item)
	}

	v := ListValue(next...)
	if spec.Kind == KindLiteralArray {
		v = LiteralListValue(next...)
	}
	raw, err := codec.Encode(v)
	if err != nil {
		return err
	}
	b.store.WriteBatch(Patch{name: raw})
	return nil
}

// ToggleStrict is Toggle for callers that want the no-op cases reported:
// an unknown field fails with unknown_field, a scalar field with not_array.
func (b *Binder) ToggleStrict(name, item string) error {
	spec, ok := b.schema.Spec(name)
	if !ok {
		return unknownField(name)
	}
	if !spec.Kind.IsArray() {
		return Issues{{Path: name, Code: CodeNotArray, Message: i18n.T(CodeNotArray, nil)}}
	}
	return b.Toggle(name, item)
}

// Clear writes the kind-appropriate empty value for the named field only.
func (b *Binder) Clear(name string) error {
	if _, ok := b.schema.Spec(name); !ok {
		return unknownField(name)
	}
	b.store.WriteBatch(Patch{name: nil})
	return nil
}

// ClearAll removes every schema field from the store in one patch.
// The operation is idempotent.
func (b *Binder) ClearAll() error {
	patch := make(Patch, b.schema.Len())
	for _, name := range b.schema.Names() {
		patch[name] = nil
	}
	b.store.WriteBatch(patch)
	return nil
}

func (b *Binder) encode(name string, value Value) (Raw, error) {
	codec, ok := b.schema.CodecOf(name)
	if !ok {
		return nil, unknownField(name)
	}
	raw, err := codec.Encode(value)
	if err != nil {
		if iss, ok := AsIssues(err); ok {
			for i := range iss {
				if iss[i].Path == "" {
					iss[i].Path = name
				}
			}
			return nil, iss
		}
		return nil, err
	}
	return raw, nil
}

func unknownField(name string) error {
	return Issues{{Path: name, Code: CodeUnknownField, Message: i18n.T(CodeUnknownField, nil)}}
}
