// =============================================================================
// TR-069 Excelifier - Object Flattener
// =============================================================================
//
// This module turns each model object into Model table rows.
//
// ROW RULES:
//   - one row per parameter; Object/Access/Description repeat on every row
//   - an object without parameters (a pure hierarchy node) gets one row
//     with empty parameter cells
//
// PARAMETER DESCRIPTION LAYOUT:
//   " <status> " " <activeNotify> " " <forcedInform> "  (each only if set,
//   padded to 8 characters), then the syntax annotation, then the raw
//   description. Whitespace is collapsed later by the table builder.
//
// =============================================================================

package converter

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/tr069tools/tr069-excelifier/internal/modelparser"
	"github.com/tr069tools/tr069-excelifier/internal/placeholder"
	"github.com/tr069tools/tr069-excelifier/internal/syntax"
	"github.com/tr069tools/tr069-excelifier/internal/types"
)

// ObjectFlattener builds Model rows and counts what it could not annotate.
type ObjectFlattener struct {
	logger *slog.Logger

	// Parameters is the number of parameters flattened so far.
	Parameters int

	// UnknownSyntax counts parameters whose syntax matched no known shape.
	UnknownSyntax int
}

// NewObjectFlattener creates a flattener reporting diagnostics to logger.
func NewObjectFlattener(logger *slog.Logger) *ObjectFlattener {
	return &ObjectFlattener{logger: logger}
}

// Flatten returns the rows for one object in parameter document order.
// The object must have passed validation.
func (f *ObjectFlattener) Flatten(obj *modelparser.Object) []types.ModelRow {
	name := strings.Trim(*obj.Name, "\n")
	access := strings.Trim(*obj.Access, "\n")
	description := cleanDescription(obj.Description.Text)

	if len(obj.Parameters) == 0 {
		return []types.ModelRow{{
			Object:      name,
			Access:      access,
			Description: description,
		}}
	}

	rows := make([]types.ModelRow, 0, len(obj.Parameters))
	for i := range obj.Parameters {
		param := &obj.Parameters[i]
		rows = append(rows, types.ModelRow{
			Object:               name,
			Access:               access,
			Description:          description,
			Parameter:            strings.Trim(*param.Name, "\n"),
			ParameterAccess:      strings.Trim(*param.Access, "\n"),
			ParameterDescription: f.parameterDescription(name, param),
		})
		f.Parameters++
	}
	return rows
}

// parameterDescription prefixes the description with flag tokens and the
// syntax annotation.
func (f *ObjectFlattener) parameterDescription(object string, param *modelparser.Parameter) string {
	var prefix strings.Builder
	for _, flag := range []*string{param.Status, param.ActiveNotify, param.ForcedInform} {
		value := strings.Trim(modelparser.Value(flag), " \n")
		if value != "" {
			fmt.Fprintf(&prefix, " %-8s ", value)
		}
	}

	description := cleanDescription(param.Description.Text)

	s := syntax.Classify(param.Syntax)
	if s.Kind == syntax.KindUnknown {
		f.UnknownSyntax++
		f.logger.Debug("unrecognised syntax; annotation skipped",
			"object", object, "parameter", *param.Name)
	}
	if annotation, ok := s.Annotation(); ok {
		prefix.WriteString(" " + annotation + " ")
	}
	if s.Unit != "" {
		description = strings.ReplaceAll(description, "{{units}}", s.Unit)
	}

	return prefix.String() + " " + description
}

// cleanDescription collapses space runs and strips surrounding newlines.
func cleanDescription(text string) string {
	return placeholder.CollapseSpaces(strings.Trim(text, "\n"))
}
