// Package schemafile translates a narrow, declarative YAML schema document
// into a queryskema Schema. The translation is an explicit, closed mapping
// over the supported shapes (string, integer, boolean, string+enum, array
// of string, array of string+enum). Anything else fails fast at load time:
// silently degrading an unrecognized shape to a plain string would
// misrepresent the field for the rest of its life.
//
// Document shape:
//
//	fields:
//	  keyword: { type: string }
//	  page: { type: integer }
//	  active: { type: boolean }
//	  status: { type: string, enum: [DRAFT, LIVE] }
//	  tags: { type: array, items: { type: string } }
//	  statuses: { type: array, items: { type: string, enum: [PENDING, APPROVED, REJECTED] } }
package schemafile

import (
	queryskema "github.com/takuyanagai0213/queryskema"
	"github.com/takuyanagai0213/queryskema/i18n"
	"gopkg.in/yaml.v3"
)

// Document is the YAML surface. Field order in the source document is
// preserved through the yaml.Node mapping into schema declaration order.
type Document struct {
	Fields yaml.Node `yaml:"fields"`
}

type fieldDoc struct {
	Type  string    `yaml:"type"`
	Enum  []string  `yaml:"enum"`
	Items *fieldDoc `yaml:"items"`
}

// Load translates YAML bytes into a Schema.
func Load(data []byte, opts ...queryskema.Option) (*queryskema.Schema, error) {
	specs, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return queryskema.NewSchema(specs, opts...)
}

// Parse translates YAML bytes into FieldSpecs without constructing the
// schema, preserving document order.
func Parse(data []byte) ([]queryskema.FieldSpec, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, queryskema.Issues{{
			Path:    "/",
			Code:    queryskema.CodeParseError,
			Message: i18n.T(queryskema.CodeParseError, nil),
			Cause:   err,
		}}
	}
	if doc.Fields.Kind == 0 {
		return nil, queryskema.Issues{{
			Path:    "/",
			Code:    queryskema.CodeEmptyDocument,
			Message: i18n.T(queryskema.CodeEmptyDocument, nil),
		}}
	}
	if doc.Fields.Kind != yaml.MappingNode {
		return nil, queryskema.Issues{{
			Path:    "fields",
			Code:    queryskema.CodeUnsupportedShape,
			Message: i18n.T(queryskema.CodeUnsupportedShape, nil),
			Hint:    "fields must be a mapping",
		}}
	}
	if len(doc.Fields.Content) == 0 {
		return nil, queryskema.Issues{{
			Path:    "/",
			Code:    queryskema.CodeEmptyDocument,
			Message: i18n.T(queryskema.CodeEmptyDocument, nil),
		}}
	}

	var specs []queryskema.FieldSpec
	var iss queryskema.Issues
	// Mapping nodes alternate key, value.
	for i := 0; i+1 < len(doc.Fields.Content); i += 2 {
		keyNode := doc.Fields.Content[i]
		valNode := doc.Fields.Content[i+1]
		name := keyNode.Value

		var fd fieldDoc
		if err := valNode.Decode(&fd); err != nil {
			iss = queryskema.AppendIssues(iss, queryskema.Issue{
				Path:    name,
				Code:    queryskema.CodeParseError,
				Message: i18n.T(queryskema.CodeParseError, nil),
				Cause:   err,
			})
			continue
		}
		kind, options, ok := translate(fd)
		if !ok {
			iss = queryskema.AppendIssues(iss, queryskema.Issue{
				Path:    name,
				Code:    queryskema.CodeUnsupportedShape,
				Message: i18n.T(queryskema.CodeUnsupportedShape, nil),
				Hint:    shapeHint(fd),
			})
			continue
		}
		specs = append(specs, queryskema.FieldSpec{Name: name, Kind: kind, Options: options})
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return specs, nil
}

// translate is the closed shape mapping. It returns ok=false for every
// shape outside the supported set; the caller turns that into a fail-fast
// unsupported_shape issue.
func translate(fd fieldDoc) (queryskema.Kind, []string, bool) {
	switch fd.Type {
	case "string":
		if len(fd.Enum) > 0 {
			return queryskema.KindLiteral, fd.Enum, true
		}
		return queryskema.KindString, nil, true
	case "integer":
		if len(fd.Enum) > 0 {
			return 0, nil, false
		}
		return queryskema.KindInt, nil, true
	case "boolean":
		if len(fd.Enum) > 0 {
			return 0, nil, false
		}
		return queryskema.KindBool, nil, true
	case "array":
		if fd.Items == nil || fd.Items.Type != "string" || fd.Items.Items != nil {
			return 0, nil, false
		}
		if len(fd.Enum) > 0 {
			return 0, nil, false
		}
		if len(fd.Items.Enum) > 0 {
			return queryskema.KindLiteralArray, fd.Items.Enum, true
		}
		return queryskema.KindStringArray, nil, true
	default:
		return 0, nil, false
	}
}

func shapeHint(fd fieldDoc) string {
	if fd.Type == "" {
		return "missing type"
	}
	if fd.Type == "array" && fd.Items == nil {
		return "array requires items"
	}
	return "type '" + fd.Type + "'"
}
