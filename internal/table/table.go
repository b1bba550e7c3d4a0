// =============================================================================
// TR-069 Excelifier - Table Builder
// =============================================================================
//
// This module turns flattened rows into the two presentation tables.
//
// MODEL TABLE:
//   Rows keep document order. Every cell is cleaned; the Description and
//   Parameter Description cells also get placeholder resolution. Groups are
//   computed from the final rows: one Range per contiguous run of equal
//   Object values, driving the Object/Access/Description cell merges.
//
// PROFILES TABLE:
//   Every cell except Parameters is cleaned (that cell is a newline-joined
//   list whose line layout is the content). Rows are stably sorted by
//   (Profile, Name, Base).
//
// =============================================================================

package table

import (
	"cmp"
	"slices"

	"github.com/tr069tools/tr069-excelifier/internal/placeholder"
	"github.com/tr069tools/tr069-excelifier/internal/types"
)

// ModelTable is the Model sheet content.
type ModelTable struct {
	Rows   []types.ModelRow
	Groups []types.Range
}

// ProfileTable is the Profiles sheet content.
type ProfileTable struct {
	Rows []types.ProfileRow
}

// =============================================================================
// MODEL TABLE
// =============================================================================

// BuildModel normalizes rows and computes their object groups. The input
// slice is not modified.
func BuildModel(rows []types.ModelRow, n *placeholder.Normalizer) ModelTable {
	out := make([]types.ModelRow, len(rows))
	for i, r := range rows {
		out[i] = NormalizeModelRow(r, n)
	}
	return ModelTable{Rows: out, Groups: Groups(out)}
}

// NormalizeModelRow cleans every cell and resolves description placeholders
// against the row's own Object and Parameter values.
func NormalizeModelRow(r types.ModelRow, n *placeholder.Normalizer) types.ModelRow {
	out := types.ModelRow{
		Object:          placeholder.Clean(r.Object),
		Access:          placeholder.Clean(r.Access),
		Parameter:       placeholder.Clean(r.Parameter),
		ParameterAccess: placeholder.Clean(r.ParameterAccess),
	}

	ctx := placeholder.Context{Object: out.Object, Parameter: out.Parameter}
	out.Description = n.Resolve(r.Description, ctx)
	out.ParameterDescription = n.Resolve(r.ParameterDescription, ctx)
	return out
}

// Groups returns the contiguous row ranges sharing an Object value, in row
// order. An Object value that reappears later starts a new range.
func Groups(rows []types.ModelRow) []types.Range {
	var groups []types.Range
	for i, r := range rows {
		if n := len(groups); n > 0 && groups[n-1].Key == r.Object && groups[n-1].Last == i-1 {
			groups[n-1].Last = i
			continue
		}
		groups = append(groups, types.Range{Key: r.Object, First: i, Last: i})
	}
	return groups
}

// =============================================================================
// PROFILES TABLE
// =============================================================================

// BuildProfiles cleans and sorts profile rows. The input slice is not
// modified.
func BuildProfiles(rows []types.ProfileRow) ProfileTable {
	out := make([]types.ProfileRow, len(rows))
	for i, r := range rows {
		r.Profile = placeholder.Clean(r.Profile)
		r.Name = placeholder.Clean(r.Name)
		r.Requirement = placeholder.Clean(r.Requirement)
		r.Base = placeholder.Clean(r.Base)
		r.Extends = placeholder.Clean(r.Extends)
		out[i] = r
	}
	SortProfiles(out)
	return ProfileTable{Rows: out}
}

// SortProfiles orders rows by Profile, then Name, then Base. Rows with equal
// keys keep their relative order.
func SortProfiles(rows []types.ProfileRow) {
	slices.SortStableFunc(rows, func(a, b types.ProfileRow) int {
		return cmp.Or(
			cmp.Compare(a.Profile, b.Profile),
			cmp.Compare(a.Name, b.Name),
			cmp.Compare(a.Base, b.Base),
		)
	})
}
