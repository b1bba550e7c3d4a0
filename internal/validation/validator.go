// =============================================================================
// TR-069 Excelifier - Model Validation
// =============================================================================
//
// This module checks a parsed model before any row is built. The converter
// has no default-substitution policy: an object, parameter or profile that
// lacks an attribute the sheets need is invalid input and aborts the run.
//
// CHECKS:
//   Errors (fatal):
//     - model without a name
//     - object without name, access or description
//     - parameter without name, access or description
//     - profile without a name
//     - profile object/parameter reference without ref or requirement
//   Warnings (reported, never fatal unless configured):
//     - an object name that appears more than once; its rows split into
//       separate merge groups
//
// ERROR HANDLING:
//   Errors are collected over the whole model rather than returned one by
//   one so a broken file can be fixed in a single pass.
//
// =============================================================================

package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tr069tools/tr069-excelifier/internal/modelparser"
)

// ErrInvalidModel is wrapped by the error returned from Result.Err.
var ErrInvalidModel = errors.New("invalid model")

// Severity levels.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// =============================================================================
// VALIDATION ERROR TYPES
// =============================================================================

// ValidationError represents a single validation finding.
type ValidationError struct {
	// Severity is SeverityError (fatal) or SeverityWarning.
	Severity string

	// Path locates the element, e.g. `object "Device.WiFi." parameter #2`.
	Path string

	// Field is the missing or offending attribute or child element.
	Field string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s, %s: %s", strings.ToUpper(e.Severity), e.Path, e.Field, e.Message)
}

// =============================================================================
// VALIDATION RESULT
// =============================================================================

// Result contains the outcome of validating a model.
type Result struct {
	// IsValid is true if there are no fatal errors.
	IsValid bool

	// Errors contains all findings, warnings included, in document order.
	Errors []*ValidationError

	ErrorCount   int
	WarningCount int
}

// Err returns nil for a valid model, otherwise an error wrapping
// ErrInvalidModel that lists every fatal finding.
func (r *Result) Err() error {
	if r.IsValid {
		return nil
	}

	var lines []string
	for _, e := range r.Errors {
		if e.Severity == SeverityError {
			lines = append(lines, e.Error())
		}
	}
	if len(lines) == 0 {
		return fmt.Errorf("%w: warnings treated as errors (%d)", ErrInvalidModel, r.WarningCount)
	}
	return fmt.Errorf("%w: %d error(s):\n  %s", ErrInvalidModel, len(lines), strings.Join(lines, "\n  "))
}

// Warnings returns only the non-fatal findings.
func (r *Result) Warnings() []*ValidationError {
	var warnings []*ValidationError
	for _, e := range r.Errors {
		if e.Severity == SeverityWarning {
			warnings = append(warnings, e)
		}
	}
	return warnings
}

// =============================================================================
// VALIDATOR
// =============================================================================

// Options controls validation strictness.
type Options struct {
	// TreatWarningsAsErrors makes any warning invalidate the model.
	// Default: false
	TreatWarningsAsErrors bool
}

// DefaultOptions returns the default validation options.
func DefaultOptions() Options {
	return Options{}
}

// Validator validates parsed models.
type Validator struct {
	options Options
	result  *Result
}

// NewValidator creates a Validator with default options.
func NewValidator() *Validator {
	return NewValidatorWithOptions(DefaultOptions())
}

// NewValidatorWithOptions creates a Validator with custom options.
func NewValidatorWithOptions(options Options) *Validator {
	return &Validator{options: options}
}

// Validate checks a model with the default options.
func Validate(model *modelparser.Model) *Result {
	return NewValidator().Validate(model)
}

// Validate checks every object and profile of the model.
func (v *Validator) Validate(model *modelparser.Model) *Result {
	v.result = &Result{IsValid: true}

	if model.Name == nil {
		v.fail("model", "name", "attribute is missing")
	}

	seen := make(map[string]int)
	for i := range model.Objects {
		v.validateObject(&model.Objects[i], i, seen)
	}

	for i := range model.Profiles {
		v.validateProfile(&model.Profiles[i], i)
	}

	return v.result
}

// =============================================================================
// OBJECT VALIDATION
// =============================================================================

func (v *Validator) validateObject(obj *modelparser.Object, index int, seen map[string]int) {
	path := fmt.Sprintf("object #%d", index+1)
	if obj.Name != nil {
		path = fmt.Sprintf("object %q", *obj.Name)

		name := strings.TrimSpace(*obj.Name)
		if first, dup := seen[name]; dup {
			v.warn(path, "name", fmt.Sprintf("duplicates object #%d; rows will not be merged together", first+1))
		} else {
			seen[name] = index
		}
	} else {
		v.fail(path, "name", "attribute is missing")
	}

	if obj.Access == nil {
		v.fail(path, "access", "attribute is missing")
	}
	if obj.Description == nil {
		v.fail(path, "description", "element is missing")
	}

	for i := range obj.Parameters {
		v.validateParameter(&obj.Parameters[i], path, i)
	}
}

func (v *Validator) validateParameter(param *modelparser.Parameter, objectPath string, index int) {
	path := fmt.Sprintf("%s parameter #%d", objectPath, index+1)
	if param.Name != nil {
		path = fmt.Sprintf("%s parameter %q", objectPath, *param.Name)
	} else {
		v.fail(path, "name", "attribute is missing")
	}

	if param.Access == nil {
		v.fail(path, "access", "attribute is missing")
	}
	if param.Description == nil {
		v.fail(path, "description", "element is missing")
	}
}

// =============================================================================
// PROFILE VALIDATION
// =============================================================================

func (v *Validator) validateProfile(profile *modelparser.Profile, index int) {
	path := fmt.Sprintf("profile #%d", index+1)
	if profile.Name != nil {
		path = fmt.Sprintf("profile %q", *profile.Name)
	} else {
		v.fail(path, "name", "attribute is missing")
	}

	for i := range profile.Objects {
		ref := &profile.Objects[i]
		refPath := v.validateRef(ref, fmt.Sprintf("%s object", path), i)

		for j := range ref.Parameters {
			v.validateRef(&ref.Parameters[j], fmt.Sprintf("%s parameter", refPath), j)
		}
	}
}

func (v *Validator) validateRef(ref *modelparser.ProfileRef, prefix string, index int) string {
	path := fmt.Sprintf("%s #%d", prefix, index+1)
	if ref.Ref != nil {
		path = fmt.Sprintf("%s %q", prefix, *ref.Ref)
	} else {
		v.fail(path, "ref", "attribute is missing")
	}

	if ref.Requirement == nil {
		v.fail(path, "requirement", "attribute is missing")
	}
	return path
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

func (v *Validator) fail(path, field, message string) {
	v.result.Errors = append(v.result.Errors, &ValidationError{
		Severity: SeverityError,
		Path:     path,
		Field:    field,
		Message:  message,
	})
	v.result.ErrorCount++
	v.result.IsValid = false
}

func (v *Validator) warn(path, field, message string) {
	v.result.Errors = append(v.result.Errors, &ValidationError{
		Severity: SeverityWarning,
		Path:     path,
		Field:    field,
		Message:  message,
	})
	v.result.WarningCount++
	if v.options.TreatWarningsAsErrors {
		v.result.IsValid = false
	}
}
