package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tr069tools/tr069-excelifier/internal/modelparser"
)

func parse(t *testing.T, doc string) *modelparser.Model {
	t.Helper()
	model, err := modelparser.Parse([]byte(doc))
	require.NoError(t, err)
	return model
}

func TestValidateAcceptsCompleteModel(t *testing.T) {
	model := parse(t, `<d><model name="Device:2">
  <object name="Device." access="readOnly"><description>Root</description>
    <parameter name="Enable" access="readWrite"><description>x</description></parameter>
  </object>
  <profile name="P:1"><object ref="Device." requirement="present">
    <parameter ref="Enable" requirement="readOnly"/>
  </object></profile>
</model></d>`)

	result := Validate(model)
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
	assert.NoError(t, result.Err())
}

func TestValidateReportsMissingAttributes(t *testing.T) {
	model := parse(t, `<d><model>
  <object access="readOnly"><description>no name</description></object>
  <object name="Device.A." access="readOnly">
    <parameter name="X"><description>no access</description></parameter>
  </object>
  <profile name="P:1"><object ref="Device.A."/></profile>
</model></d>`)

	result := Validate(model)
	require.False(t, result.IsValid)

	// model name, object #1 name, Device.A. description,
	// parameter X access, profile ref requirement
	assert.Equal(t, 5, result.ErrorCount)

	err := result.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidModel)
	assert.Contains(t, err.Error(), `object "Device.A." parameter "X", access`)
	assert.Contains(t, err.Error(), `profile "P:1" object "Device.A.", requirement`)
}

func TestValidateWarnsOnDuplicateObjects(t *testing.T) {
	doc := `<d><model name="m">
  <object name="Device.A." access="readOnly"><description/></object>
  <object name="Device.B." access="readOnly"><description/></object>
  <object name="Device.A." access="readOnly"><description/></object>
</model></d>`

	result := Validate(parse(t, doc))
	assert.True(t, result.IsValid)
	require.Len(t, result.Warnings(), 1)
	assert.Equal(t, SeverityWarning, result.Warnings()[0].Severity)

	strict := NewValidatorWithOptions(Options{TreatWarningsAsErrors: true}).Validate(parse(t, doc))
	assert.False(t, strict.IsValid)
	assert.ErrorIs(t, strict.Err(), ErrInvalidModel)
}
