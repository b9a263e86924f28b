package queryskema

import (
	"strconv"
	"strings"

	"github.com/takuyanagai0213/queryskema/i18n"
)

// Canonical wire tokens for boolean parameters. Anything else decodes to
// absent.
const (
	TokenTrue  = "true"
	TokenFalse = "false"
)

// Codec translates one field between its typed in-memory Value and the flat
// raw representation of the Parameter Store.
//
// Decode is total and lenient: malformed external input never produces an
// error, it falls back to the kind-appropriate absent/empty value (shared
// URLs are user-editable and must degrade gracefully). Encode returns a nil
// Raw to remove the field from the store; it errors only on caller contract
// violations such as a literal outside its option set.
type Codec interface {
	Kind() Kind
	Decode(raw Raw) Value
	Encode(v Value) (Raw, error)
}

// ArrayEncoding controls how an ordered item sequence maps onto the raw
// multi-value shape of the store: repeated keys keep one raw entry per item,
// a delimited encoding joins them into a single entry. Implementations live
// in the codec subpackage.
type ArrayEncoding interface {
	// Flatten turns decoded items into raw store entries.
	Flatten(items []string) Raw
	// Restore turns raw store entries back into an item sequence.
	Restore(raw Raw) []string
}

// repeatedEncoding is the default ArrayEncoding: one raw entry per item.
type repeatedEncoding struct{}

func (repeatedEncoding) Flatten(items []string) Raw {
	cp := make(Raw, len(items))
	copy(cp, items)
	return cp
}

func (repeatedEncoding) Restore(raw Raw) []string {
	cp := make([]string, len(raw))
	copy(cp, raw)
	return cp
}

func kindMismatch(want Kind, got Value) error {
	return Issues{{
		Code:    CodeInvalidType,
		Message: i18n.T(CodeInvalidType, nil),
		Hint:    "expected " + want.String() + " value, got " + got.Kind().String(),
	}}
}

// codecFor resolves the codec for a validated FieldSpec. The switch is
// exhaustive over Kind; an unknown kind cannot survive schema construction.
func codecFor(spec FieldSpec, enc ArrayEncoding) Codec {
	switch spec.Kind {
	case KindString:
		return stringCodec{}
	case KindInt:
		return intCodec{}
	case KindBool:
		return boolCodec{}
	case KindLiteral:
		return literalCodec{field: spec.Name, options: spec.Options}
	case KindStringArray:
		return arrayCodec{kind: KindStringArray, enc: enc}
	case KindLiteralArray:
		return arrayCodec{kind: KindLiteralArray, enc: enc, options: spec.Options}
	}
	return stringCodec{}
}

type stringCodec struct{}

func (stringCodec) Kind() Kind { return KindString }

func (stringCodec) Decode(raw Raw) Value {
	if len(raw) == 0 {
		return Absent(KindString)
	}
	return StringValue(raw[0])
}

func (stringCodec) Encode(v Value) (Raw, error) {
	if v.IsAbsent() {
		return nil, nil
	}
	s, ok := v.Str()
	if !ok {
		return nil, kindMismatch(KindString, v)
	}
	return Raw{s}, nil
}

type intCodec struct{}

func (intCodec) Kind() Kind { return KindInt }

func (intCodec) Decode(raw Raw) Value {
	if len(raw) == 0 {
		return Absent(KindInt)
	}
	n, err := strconv.Atoi(raw[0])
	if err != nil {
		return Absent(KindInt)
	}
	return IntValue(n)
}

func (intCodec) Encode(v Value) (Raw, error) {
	if v.IsAbsent() {
		return nil, nil
	}
	n, ok := v.Int()
	if !ok {
		return nil, kindMismatch(KindInt, v)
	}
	return Raw{strconv.Itoa(n)}, nil
}

type boolCodec struct{}

func (boolCodec) Kind() Kind { return KindBool }

func (boolCodec) Decode(raw Raw) Value {
	if len(raw) == 0 {
		return Absent(KindBool)
	}
	switch raw[0] {
	case TokenTrue:
		return BoolValue(true)
	case TokenFalse:
		return BoolValue(false)
	}
	return Absent(KindBool)
}

func (boolCodec) Encode(v Value) (Raw, error) {
	if v.IsAbsent() {
		return nil, nil
	}
	b, ok := v.Bool()
	if !ok {
		return nil, kindMismatch(KindBool, v)
	}
	if b {
		return Raw{TokenTrue}, nil
	}
	return Raw{TokenFalse}, nil
}

type literalCodec struct {
	field   string
	options []string
}

func (literalCodec) Kind() Kind { return KindLiteral }

func (c literalCodec) Decode(raw Raw) Value {
	if len(raw) == 0 {
		return Absent(KindLiteral)
	}
	for _, opt := range c.options {
		if raw[0] == opt {
			return LiteralValue(raw[0])
		}
	}
	return Absent(KindLiteral)
}

func (c literalCodec) Encode(v Value) (Raw, error) {
	if v.IsAbsent() {
		return nil, nil
	}
	s, ok := v.Str()
	if !ok {
		return nil, kindMismatch(KindLiteral, v)
	}
	for _, opt := range c.options {
		if s == opt {
			return Raw{s}, nil
		}
	}
	return nil, Issues{{
		Path:    c.field,
		Code:    CodeInvalidEnum,
		Message: i18n.T(CodeInvalidEnum, nil),
		Hint:    "'" + s + "' not in [" + strings.Join(c.options, ", ") + "]",
	}}
}

type arrayCodec struct {
	kind    Kind
	enc     ArrayEncoding
	options []string // nil for KindStringArray
}

func (c arrayCodec) Kind() Kind { return c.kind }

func (c arrayCodec) Decode(raw Raw) Value {
	items := c.enc.Restore(raw)
	if c.kind == KindLiteralArray {
		// Entries outside the option set are dropped, not fatal.
		kept := items[:0]
		for _, it := range items {
			for _, opt := range c.options {
				if it == opt {
					kept = append(kept, it)
					break
				}
			}
		}
		items = kept
	}
	v := ListValue(items...)
	v.kind = c.kind
	return v
}

func (c arrayCodec) Encode(v Value) (Raw, error) {
	if !v.Kind().IsArray() {
		return nil, kindMismatch(c.kind, v)
	}
	items := v.Items()
	if len(items) == 0 {
		// Empty sequences leave no trace in the external representation.
		return nil, nil
	}
	if c.kind == KindLiteralArray {
		for _, it := range items {
			member := false
			for _, opt := range c.options {
				if it == opt {
					member = true
					break
				}
			}
			if !member {
				return nil, Issues{{
					Code:    CodeInvalidEnum,
					Message: i18n.T(CodeInvalidEnum, nil),
					Hint:    "'" + it + "' not in [" + strings.Join(c.options, ", ") + "]",
				}}
			}
		}
	}
	return c.enc.Flatten(items), nil
}
