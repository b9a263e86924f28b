package dsl

import (
	queryskema "github.com/takuyanagai0213/queryskema"
)

// FieldType describes one field's shape before it is named. It is a thin
// carrier for kind and options; validation happens in NewSchema.
type FieldType struct {
	kind    queryskema.Kind
	options []string
}

// String declares a free-form string field.
func String() FieldType { return FieldType{kind: queryskema.KindString} }

// Int declares a base-10 integer field.
func Int() FieldType { return FieldType{kind: queryskema.KindInt} }

// Bool declares a boolean field using the canonical true/false tokens.
func Bool() FieldType { return FieldType{kind: queryskema.KindBool} }

// Literal declares a field constrained to one of the given options.
func Literal(options ...string) FieldType {
	return FieldType{kind: queryskema.KindLiteral, options: options}
}

// StringArray declares an ordered multi-value string field.
func StringArray() FieldType { return FieldType{kind: queryskema.KindStringArray} }

// LiteralArray declares an ordered multi-value field whose items are drawn
// from the given options.
func LiteralArray(options ...string) FieldType {
	return FieldType{kind: queryskema.KindLiteralArray, options: options}
}

// schemaBuilder accumulates field declarations in order.
type schemaBuilder struct {
	specs []queryskema.FieldSpec
	opts  []queryskema.Option
}

// Fields creates a new schema builder.
func Fields() *schemaBuilder {
	return &schemaBuilder{}
}

// Field appends a named field declaration. Declaration order is the
// snapshot iteration and serialization order.
func (b *schemaBuilder) Field(name string, ft FieldType) *schemaBuilder {
	b.specs = append(b.specs, queryskema.FieldSpec{Name: name, Kind: ft.kind, Options: ft.options})
	return b
}

// ArrayEncoding selects how array-kind fields map onto the flat store
// (see the codec subpackage for implementations).
func (b *schemaBuilder) ArrayEncoding(enc queryskema.ArrayEncoding) *schemaBuilder {
	b.opts = append(b.opts, queryskema.WithArrayEncoding(enc))
	return b
}

// Build validates the declarations and constructs the schema.
func (b *schemaBuilder) Build() (*queryskema.Schema, error) {
	return queryskema.NewSchema(b.specs, b.opts...)
}

// MustBuild is Build that panics on authoring errors.
func (b *schemaBuilder) MustBuild() *queryskema.Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
