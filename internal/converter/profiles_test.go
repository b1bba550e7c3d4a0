package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profileModel = `<document>
  <model name="Device:2.15">
    <profile name="WiFi:1" base="WiFiBase:1">
      <object ref="Device.WiFi." requirement="present">
        <parameter ref="Enable" requirement="readWrite"/>
        <parameter ref=" Status
          " requirement="readOnly"/>
      </object>
      <object ref="Device.Time." requirement="notSpecified"/>
    </profile>
    <profile name="Time:1" extends="Base:1"/>
  </model>
</document>`

func TestFlattenProfiles(t *testing.T) {
	model := parseModel(t, profileModel)

	rows := FlattenProfiles(model)
	require.Len(t, rows, 2, "a profile without object references yields no rows")

	first := rows[0]
	assert.Equal(t, "WiFi:1", first.Profile)
	assert.Equal(t, "Device.WiFi.", first.Name)
	assert.Equal(t, "present", first.Requirement)
	assert.Equal(t, "WiFiBase:1", first.Base)
	assert.Empty(t, first.Extends)
	assert.True(t, first.HasParameters)
	assert.Equal(t, "readWrite    Enable\nreadOnly     Status", first.Parameters)

	second := rows[1]
	assert.Equal(t, "Device.Time.", second.Name)
	assert.Equal(t, "notSpecified", second.Requirement)
	assert.False(t, second.HasParameters)
	assert.Nil(t, second.Values()[5])
}

func TestParameterLinePadding(t *testing.T) {
	assert.Equal(t, "present      X", parameterLine("present", "X"))
	assert.Equal(t, "notSpecified X", parameterLine("notSpecified", "X"))
	assert.Equal(t, "readWriteExtra X", parameterLine("readWriteExtra", "X"))
}
