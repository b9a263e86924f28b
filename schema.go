package queryskema

import (
	"github.com/takuyanagai0213/queryskema/i18n"
)

// Schema is an ordered, immutable mapping from field name to FieldSpec with
// a codec resolved per field at construction. The field set never changes
// at runtime.
type Schema struct {
	fields []field
	index  map[string]int
	enc    ArrayEncoding
}

type field struct {
	spec  FieldSpec
	codec Codec
}

// Option configures schema construction.
type Option func(*Schema)

// WithArrayEncoding selects how array-kind fields map onto the flat store.
// The default keeps one raw entry per item (repeated keys).
func WithArrayEncoding(enc ArrayEncoding) Option {
	return func(s *Schema) {
		if enc != nil {
			s.enc = enc
		}
	}
}

// NewSchema validates the field specs and resolves a codec for each. It is
// the single constructor; dsl and schemafile both funnel through it.
func NewSchema(specs []FieldSpec, opts ...Option) (*Schema, error) {
	s := &Schema{
		fields: make([]field, 0, len(specs)),
		index:  make(map[string]int, len(specs)),
		enc:    repeatedEncoding{},
	}
	for _, o := range opts {
		o(s)
	}

	var iss Issues
	// Duplicate detection tracks every declared name, including names whose
	// own declaration fails validation and never reaches the field list.
	seen := make(map[string]struct{}, len(specs))
	for _, spec := range specs {
		if spec.Name == "" {
			iss = AppendIssues(iss, Issue{Path: "/", Code: CodeEmptyName, Message: i18n.T(CodeEmptyName, nil)})
			continue
		}
		if _, dup := seen[spec.Name]; dup {
			iss = AppendIssues(iss, Issue{Path: spec.Name, Code: CodeDuplicateField, Message: i18n.T(CodeDuplicateField, nil)})
			continue
		}
		seen[spec.Name] = struct{}{}
		if spec.Kind.HasOptions() {
			if len(spec.Options) == 0 {
				iss = AppendIssues(iss, Issue{Path: spec.Name, Code: CodeMissingOptions, Message: i18n.T(CodeMissingOptions, nil)})
				continue
			}
			if dup, ok := firstDuplicate(spec.Options); ok {
				iss = AppendIssues(iss, Issue{Path: spec.Name, Code: CodeDuplicateOption, Message: i18n.T(CodeDuplicateOption, nil), Hint: "'" + dup + "'"})
				continue
			}
		} else if len(spec.Options) > 0 {
			iss = AppendIssues(iss, Issue{Path: spec.Name, Code: CodeUnexpectedOptions, Message: i18n.T(CodeUnexpectedOptions, nil)})
			continue
		}

		// Freeze the option set; callers keep no handle on the copy.
		cp := spec
		if len(spec.Options) > 0 {
			cp.Options = make([]string, len(spec.Options))
			copy(cp.Options, spec.Options)
		}
		s.index[cp.Name] = len(s.fields)
		s.fields = append(s.fields, field{spec: cp, codec: codecFor(cp, s.enc)})
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return s, nil
}

// MustSchema is NewSchema that panics on invalid specs. Schema authoring
// errors are programmer errors; this mirrors the dsl MustBuild entry point.
func MustSchema(specs []FieldSpec, opts ...Option) *Schema {
	s, err := NewSchema(specs, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of declared fields.
func (s *Schema) Len() int { return len(s.fields) }

// Names returns the field names in declaration order.
func (s *Schema) Names() []string {
	out := make([]string, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.spec.Name
	}
	return out
}

// Spec returns the FieldSpec for name. Options in the returned spec are a
// copy; mutating them does not affect the schema.
func (s *Schema) Spec(name string) (FieldSpec, bool) {
	i, ok := s.index[name]
	if !ok {
		return FieldSpec{}, false
	}
	spec := s.fields[i].spec
	if len(spec.Options) > 0 {
		cp := make([]string, len(spec.Options))
		copy(cp, spec.Options)
		spec.Options = cp
	}
	return spec, true
}

// CodecOf returns the resolved codec for name.
func (s *Schema) CodecOf(name string) (Codec, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.fields[i].codec, true
}

func firstDuplicate(items []string) (string, bool) {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if _, ok := seen[it]; ok {
			return it, true
		}
		seen[it] = struct{}{}
	}
	return "", false
}
