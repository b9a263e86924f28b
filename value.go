package queryskema

import (
	"strconv"
	"strings"
)

// Value is the typed in-memory projection of one field. It is a closed sum
// over the payloads the six kinds can carry; the zero Value is an absent
// string. Values are immutable: list payloads are copied on construction
// and on access.
type Value struct {
	kind    Kind
	present bool
	str     string
	num     int
	boolean bool
	items   []string
}

// StringValue returns a present string value.
func StringValue(s string) Value { return Value{kind: KindString, present: true, str: s} }

// IntValue returns a present integer value.
func IntValue(i int) Value { return Value{kind: KindInt, present: true, num: i} }

// BoolValue returns a present boolean value.
func BoolValue(b bool) Value { return Value{kind: KindBool, present: true, boolean: b} }

// LiteralValue returns a present literal value. Membership in the field's
// option set is checked at the mutation boundary, not here.
func LiteralValue(s string) Value { return Value{kind: KindLiteral, present: true, str: s} }

// ListValue returns an array value over the given items. Array values are
// always present; an empty list models "no selection".
func ListValue(items ...string) Value {
	cp := make([]string, len(items))
	copy(cp, items)
	return Value{kind: KindStringArray, present: true, items: cp}
}

// LiteralListValue returns an array value whose items are expected to be
// members of the field's option set.
func LiteralListValue(items ...string) Value {
	v := ListValue(items...)
	v.kind = KindLiteralArray
	return v
}

// Absent returns the kind-appropriate empty value: a missing scalar, or an
// empty sequence for array kinds.
func Absent(k Kind) Value {
	if k.IsArray() {
		return Value{kind: k, present: true}
	}
	return Value{kind: k}
}

// Kind returns the value's kind tag.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether the value is the kind-appropriate empty value:
// missing for scalars, empty for arrays.
func (v Value) IsAbsent() bool {
	if v.kind.IsArray() {
		return len(v.items) == 0
	}
	return !v.present
}

// Str returns the string payload when the value is a present string or
// literal.
func (v Value) Str() (string, bool) {
	if !v.present || (v.kind != KindString && v.kind != KindLiteral) {
		return "", false
	}
	return v.str, true
}

// Int returns the integer payload when the value is a present integer.
func (v Value) Int() (int, bool) {
	if !v.present || v.kind != KindInt {
		return 0, false
	}
	return v.num, true
}

// Bool returns the boolean payload when the value is a present boolean.
func (v Value) Bool() (bool, bool) {
	if !v.present || v.kind != KindBool {
		return false, false
	}
	return v.boolean, true
}

// Items returns a copy of the array payload; nil for scalar kinds.
func (v Value) Items() []string {
	if !v.kind.IsArray() {
		return nil
	}
	cp := make([]string, len(v.items))
	copy(cp, v.items)
	return cp
}

// Contains reports whether an array value holds item. Always false for
// scalar kinds.
func (v Value) Contains(item string) bool {
	if !v.kind.IsArray() {
		return false
	}
	for _, it := range v.items {
		if it == item {
			return true
		}
	}
	return false
}

// Equal compares kind, presence and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind || v.present != o.present {
		return false
	}
	switch v.kind {
	case KindString, KindLiteral:
		return v.str == o.str
	case KindInt:
		return v.num == o.num
	case KindBool:
		return v.boolean == o.boolean
	default:
		if len(v.items) != len(o.items) {
			return false
		}
		for i := range v.items {
			if v.items[i] != o.items[i] {
				return false
			}
		}
		return true
	}
}

// String renders the value for diagnostics; absent scalars render as
// "<absent>" and arrays as a bracketed comma-joined list.
func (v Value) String() string {
	switch v.kind {
	case KindString, KindLiteral:
		if !v.present {
			return "<absent>"
		}
		return v.str
	case KindInt:
		if !v.present {
			return "<absent>"
		}
		return strconv.Itoa(v.num)
	case KindBool:
		if !v.present {
			return "<absent>"
		}
		return strconv.FormatBool(v.boolean)
	default:
		return "[" + strings.Join(v.items, ",") + "]"
	}
}

// MarshalJSON renders absent scalars as null, arrays as JSON arrays and
// scalars as their natural JSON shape.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString, KindLiteral:
		if !v.present {
			return []byte("null"), nil
		}
		return []byte(strconv.Quote(v.str)), nil
	case KindInt:
		if !v.present {
			return []byte("null"), nil
		}
		return []byte(strconv.Itoa(v.num)), nil
	case KindBool:
		if !v.present {
			return []byte("null"), nil
		}
		return []byte(strconv.FormatBool(v.boolean)), nil
	default:
		b := &strings.Builder{}
		b.WriteByte('[')
		for i, it := range v.items {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Quote(it))
		}
		b.WriteByte(']')
		return []byte(b.String()), nil
	}
}
