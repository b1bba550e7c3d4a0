package converter

import (
	"fmt"
	"strings"

	"github.com/tr069tools/tr069-excelifier/internal/modelparser"
	"github.com/tr069tools/tr069-excelifier/internal/placeholder"
	"github.com/tr069tools/tr069-excelifier/internal/types"
)

// FlattenProfiles returns one row per (profile, object reference) pair in
// document order. The model must have passed validation.
func FlattenProfiles(model *modelparser.Model) []types.ProfileRow {
	var rows []types.ProfileRow
	for i := range model.Profiles {
		profile := &model.Profiles[i]
		for j := range profile.Objects {
			rows = append(rows, FlattenProfileRef(profile, &profile.Objects[j]))
		}
	}
	return rows
}

// FlattenProfileRef builds the row for one object reference of a profile.
// Base and Extends are empty when the profile does not set them.
func FlattenProfileRef(profile *modelparser.Profile, ref *modelparser.ProfileRef) types.ProfileRow {
	row := types.ProfileRow{
		Profile:     *profile.Name,
		Name:        *ref.Ref,
		Requirement: *ref.Requirement,
		Base:        modelparser.Value(profile.Base),
		Extends:     modelparser.Value(profile.Extends),
	}

	if len(ref.Parameters) == 0 {
		return row
	}

	lines := make([]string, len(ref.Parameters))
	for i, p := range ref.Parameters {
		lines[i] = parameterLine(*p.Requirement, *p.Ref)
	}
	row.Parameters = strings.Join(lines, "\n")
	row.HasParameters = true
	return row
}

// parameterLine renders "<requirement padded to 12> <name>".
func parameterLine(requirement, name string) string {
	return fmt.Sprintf("%-12s %s", placeholder.Clean(requirement), placeholder.Clean(name))
}
