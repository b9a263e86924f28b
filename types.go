package queryskema

// Kind identifies the closed set of field shapes a Schema can declare.
// The per-kind codec is resolved once at schema construction; there is no
// runtime dispatch on kind names.
type Kind int

const (
	KindString       Kind = iota // Free-form string parameter.
	KindInt                      // Base-10 integer parameter.
	KindBool                     // Canonical "true"/"false" parameter.
	KindLiteral                  // One value out of a closed option set.
	KindStringArray              // Ordered multi-value string parameter.
	KindLiteralArray             // Ordered multi-value parameter over a closed option set.
)

// String returns the stable name used in issues and schema files.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "integer"
	case KindBool:
		return "boolean"
	case KindLiteral:
		return "literal"
	case KindStringArray:
		return "stringArray"
	case KindLiteralArray:
		return "literalArray"
	}
	return "unknown"
}

// IsArray reports whether the kind projects to an ordered sequence.
// Array kinds are never absent in a Snapshot, only empty.
func (k Kind) IsArray() bool {
	return k == KindStringArray || k == KindLiteralArray
}

// HasOptions reports whether the kind carries a closed literal option set.
func (k Kind) HasOptions() bool {
	return k == KindLiteral || k == KindLiteralArray
}

// FieldSpec declares one logical field: its name, kind and, for literal
// kinds, the closed set of legal values. Options are copied at schema
// construction and never mutated afterwards.
type FieldSpec struct {
	Name    string
	Kind    Kind
	Options []string
}

// Raw is the flat store-side representation of one field: an ordered
// sequence of strings, nil when the field is absent from the store.
type Raw = []string

// Patch is a batched store update. A nil entry removes the key from the
// externally visible representation; the store must apply the whole patch
// as one observable update.
type Patch map[string]Raw
