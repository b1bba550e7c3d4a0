// =============================================================================
// TR-069 Excelifier - Shared Types
// =============================================================================
//
// This package contains the flattened row types passed between the converter,
// the table builder and the spreadsheet writer. Keeping them here avoids
// import cycles between those packages.
//
// =============================================================================

package types

// =============================================================================
// COLUMN HEADERS
// =============================================================================

// Model sheet column headers, in sheet order.
const (
	ColObject               = "Object"
	ColAccess               = "Access"
	ColDescription          = "Description"
	ColParameter            = "Parameter"
	ColParameterAccess      = "Parameter Access"
	ColParameterDescription = "Parameter Description"
)

// Profiles sheet column headers, in sheet order.
const (
	ColProfile     = "Profile"
	ColName        = "Name"
	ColRequirement = "Requirement"
	ColBase        = "Base"
	ColExtends     = "Extends"
	ColParameters  = "Parameters"
)

// ModelHeaders lists the Model sheet headers in column order.
var ModelHeaders = []string{
	ColObject, ColAccess, ColDescription,
	ColParameter, ColParameterAccess, ColParameterDescription,
}

// ProfileHeaders lists the Profiles sheet headers in column order.
var ProfileHeaders = []string{
	ColProfile, ColName, ColRequirement, ColBase, ColExtends, ColParameters,
}

// =============================================================================
// ROW TYPES
// =============================================================================

// ModelRow is one flattened record of the Model table.
// There is one row per parameter, or a single row for an object that has
// no parameters. Object, Access and Description repeat on every row of the
// same object.
type ModelRow struct {
	Object               string
	Access               string
	Description          string
	Parameter            string
	ParameterAccess      string
	ParameterDescription string
}

// Values returns the row cells in ModelHeaders order.
func (r ModelRow) Values() []string {
	return []string{
		r.Object, r.Access, r.Description,
		r.Parameter, r.ParameterAccess, r.ParameterDescription,
	}
}

// ProfileRow is one flattened record of the Profiles table, built for a
// single (profile, object reference) pair.
type ProfileRow struct {
	Profile     string
	Name        string
	Requirement string
	Base        string
	Extends     string

	// Parameters holds newline-joined "requirement name" lines.
	// It is only meaningful when HasParameters is true; a reference with
	// no parameter children leaves the cell out entirely.
	Parameters    string
	HasParameters bool
}

// Values returns the row cells in ProfileHeaders order. The Parameters
// cell is nil when the reference has no parameters.
func (r ProfileRow) Values() []any {
	values := []any{r.Profile, r.Name, r.Requirement, r.Base, r.Extends, nil}
	if r.HasParameters {
		values[5] = r.Parameters
	}
	return values
}

// =============================================================================
// GROUPING
// =============================================================================

// Range is the contiguous block of rows sharing one Object value.
// First and Last are 0-based indexes into the row slice, both inclusive.
type Range struct {
	Key   string
	First int
	Last  int
}

// Len returns the number of rows covered by the range.
func (r Range) Len() int {
	return r.Last - r.First + 1
}
