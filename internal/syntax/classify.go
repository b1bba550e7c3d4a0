// =============================================================================
// TR-069 Excelifier - Parameter Syntax Classifier
// =============================================================================
//
// This module turns a parameter's <syntax> element into one of a fixed set
// of shapes and renders the short type annotation shown in the Parameter
// Description column.
//
// SHAPES:
//   Untyped     no <syntax> element at all
//   Unknown     <syntax> present but no recognised type element
//   Boolean     <boolean/>                       -> "Boolean"
//   StringEnum  <string><enumeration .../>        -> "Enums (A|B|C)"
//   StringSize  <string><size maxLength="N"/>    -> "String, max length N"
//   Other       any other type element            -> "<type>[ in <unit>]"
//
// TIE-BREAK:
//   The type is decided by the FIRST child of <syntax>, in document order,
//   whose tag is a recognised type element. Non-type children such as <list>
//   or <default> are passed over. Within a string type an enumeration wins
//   over a size constraint.
//
// A <default> element anywhere inside <syntax> appends ", default <value>"
// to any annotation. Untyped and Unknown shapes produce no annotation.
//
// =============================================================================

package syntax

import (
	"strings"

	"github.com/tr069tools/tr069-excelifier/internal/modelparser"
)

// Kind identifies the shape of a parameter syntax.
type Kind int

const (
	KindUntyped Kind = iota
	KindUnknown
	KindBoolean
	KindStringEnum
	KindStringSize
	KindOther
)

// String returns the shape name used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindUntyped:
		return "untyped"
	case KindUnknown:
		return "unknown"
	case KindBoolean:
		return "boolean"
	case KindStringEnum:
		return "string-enum"
	case KindStringSize:
		return "string-size"
	case KindOther:
		return "other"
	default:
		return "invalid"
	}
}

// typeElements are the tags accepted as a parameter type.
var typeElements = map[string]bool{
	"base64":       true,
	"boolean":      true,
	"dateTime":     true,
	"decimal":      true,
	"hexBinary":    true,
	"int":          true,
	"long":         true,
	"string":       true,
	"unsignedInt":  true,
	"unsignedLong": true,
	"dataType":     true,
}

// =============================================================================
// SYNTAX STRUCTURE
// =============================================================================

// Syntax is the classified form of a <syntax> element. Only the fields
// belonging to Kind are set.
type Syntax struct {
	Kind Kind

	// Type is the rendered type token for KindOther.
	Type string

	// Enums lists enumeration values in document order (KindStringEnum).
	Enums []string

	// MaxLength is the string size limit (KindStringSize).
	MaxLength string

	// Unit is the value of the type's <units> child (KindOther).
	Unit string

	// Default is the <default> value when HasDefault is set.
	Default    string
	HasDefault bool
}

// =============================================================================
// CLASSIFICATION
// =============================================================================

// Classify inspects a <syntax> element. A nil node yields KindUntyped.
func Classify(node *modelparser.Node) Syntax {
	if node == nil {
		return Syntax{Kind: KindUntyped}
	}

	s := Syntax{Kind: KindUnknown}
	if def, ok := node.Find("default"); ok {
		s.Default, s.HasDefault = defaultValue(def), true
	}

	typeNode, ok := firstTypeElement(node)
	if !ok {
		return s
	}

	switch typeNode.Tag() {
	case "boolean":
		s.Kind = KindBoolean

	case "string":
		classifyString(&s, typeNode)

	default:
		s.Kind = KindOther
		s.Type = typeToken(typeNode)
		if units, ok := typeNode.Child("units"); ok {
			s.Unit, _ = units.Attr("value")
		}
	}

	return s
}

func classifyString(s *Syntax, node modelparser.Node) {
	if enums := node.FindAll("enumeration"); len(enums) > 0 {
		s.Kind = KindStringEnum
		for _, e := range enums {
			value, _ := e.Attr("value")
			s.Enums = append(s.Enums, value)
		}
		return
	}

	if size, ok := node.Child("size"); ok {
		if maxLength, ok := size.Attr("maxLength"); ok {
			s.Kind = KindStringSize
			s.MaxLength = maxLength
			return
		}
	}

	s.Kind = KindOther
	s.Type = "string"
}

// firstTypeElement applies the tie-break: first recognised child wins.
func firstTypeElement(node *modelparser.Node) (modelparser.Node, bool) {
	for _, child := range node.Children {
		if typeElements[child.Tag()] {
			return child, true
		}
	}
	return modelparser.Node{}, false
}

// typeToken names a type; named data types use their reference.
func typeToken(node modelparser.Node) string {
	if node.Tag() == "dataType" {
		if ref, ok := node.Attr("ref"); ok && ref != "" {
			return ref
		}
		if base, ok := node.Attr("base"); ok && base != "" {
			return base
		}
	}
	return node.Tag()
}

func defaultValue(node modelparser.Node) string {
	if value, ok := node.Attr("value"); ok {
		return value
	}
	return strings.TrimSpace(node.Text)
}

// =============================================================================
// ANNOTATION
// =============================================================================

// Annotation renders the type annotation. It reports false for shapes that
// carry no annotation.
func (s Syntax) Annotation() (string, bool) {
	var text string

	switch s.Kind {
	case KindBoolean:
		text = "Boolean"
	case KindStringEnum:
		text = "Enums (" + strings.Join(s.Enums, "|") + ")"
	case KindStringSize:
		text = "String, max length " + s.MaxLength
	case KindOther:
		text = s.Type
		if s.Unit != "" {
			text += " in " + s.Unit
		}
	default:
		return "", false
	}

	if s.HasDefault {
		text += ", default " + s.Default
	}
	return text, true
}
