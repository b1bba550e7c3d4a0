package modelparser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `<?xml version="1.0" encoding="UTF-8"?>
<dm:document xmlns:dm="urn:broadband-forum-org:cwmp:datamodel-1-3" spec="urn:example">
  <import file="tr-106-types.xml"/>
  <model name="Device:2.11">
    <object name="Device.WiFi." access="readOnly" minEntries="1" maxEntries="1">
      <description>The {{object}} object.</description>
      <parameter name="RadioNumberOfEntries" access="readOnly" activeNotify="canDeny">
        <description>{{numentries}}</description>
        <syntax>
          <unsignedInt>
            <units value="entries"/>
          </unsignedInt>
          <default type="object" value="0"/>
        </syntax>
      </parameter>
    </object>
    <profile name="WiFiRadio:1" base="Base:1">
      <object ref="Device.WiFi." requirement="present">
        <parameter ref="RadioNumberOfEntries" requirement="readOnly"/>
      </object>
    </profile>
  </model>
</dm:document>`

func TestParseReadsModel(t *testing.T) {
	model, err := Parse([]byte(sampleDocument))
	require.NoError(t, err)

	assert.Equal(t, "Device:2.11", Value(model.Name))
	require.Len(t, model.Objects, 1)

	obj := model.Objects[0]
	assert.Equal(t, "Device.WiFi.", Value(obj.Name))
	assert.Equal(t, "readOnly", Value(obj.Access))
	require.NotNil(t, obj.Description)
	assert.Equal(t, "The {{object}} object.", obj.Description.Text)

	require.Len(t, obj.Parameters, 1)
	param := obj.Parameters[0]
	assert.Equal(t, "canDeny", Value(param.ActiveNotify))
	assert.Nil(t, param.Status)
	assert.Nil(t, param.ForcedInform)

	require.NotNil(t, param.Syntax)
	require.Len(t, param.Syntax.Children, 2)
	assert.Equal(t, "unsignedInt", param.Syntax.Children[0].Tag())

	units, ok := param.Syntax.Find("units")
	require.True(t, ok)
	value, ok := units.Attr("value")
	assert.True(t, ok)
	assert.Equal(t, "entries", value)

	require.Len(t, model.Profiles, 1)
	profile := model.Profiles[0]
	assert.Equal(t, "WiFiRadio:1", Value(profile.Name))
	assert.Equal(t, "Base:1", Value(profile.Base))
	assert.Nil(t, profile.Extends)
	require.Len(t, profile.Objects, 1)
	require.Len(t, profile.Objects[0].Parameters, 1)
	assert.Equal(t, "readOnly", Value(profile.Objects[0].Parameters[0].Requirement))
}

func TestParseWithoutModel(t *testing.T) {
	_, err := Parse([]byte(`<document><component name="x"/></document>`))
	assert.ErrorIs(t, err, ErrNoModel)
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte(`<document><model name="x">`))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoModel)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.xml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDocument), 0o644))

	model, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Device:2.11", Value(model.Name))

	_, err = Load(filepath.Join(t.TempDir(), "missing.xml"))
	assert.Error(t, err)
}

func TestNodeFindAllDocumentOrder(t *testing.T) {
	model, err := Parse([]byte(`<d><model name="m"><object name="o" access="readOnly">
<description/>
<parameter name="p" access="readOnly"><description/>
<syntax><string><enumeration value="A"/><enumeration value="B"/></string></syntax>
</parameter></object></model></d>`))
	require.NoError(t, err)

	syntax := model.Objects[0].Parameters[0].Syntax
	enums := syntax.FindAll("enumeration")
	require.Len(t, enums, 2)

	first, _ := enums[0].Attr("value")
	second, _ := enums[1].Attr("value")
	assert.Equal(t, []string{"A", "B"}, []string{first, second})

	_, ok := syntax.Child("enumeration")
	assert.False(t, ok, "enumeration is not a direct child of syntax")
}

func TestParseTranscodesDeclaredEncoding(t *testing.T) {
	doc := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n" +
		"<document><model name=\"m\"><object name=\"o\" access=\"readOnly\">" +
		"<description>Caf\xe9 r\xe9seau</description></object></model></document>"

	model, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, model.Objects, 1)
	assert.Equal(t, "Café réseau", model.Objects[0].Description.Text)
}

func TestParseRejectsUnknownEncoding(t *testing.T) {
	doc := `<?xml version="1.0" encoding="x-no-such-charset"?><document><model name="m"/></document>`
	_, err := Parse([]byte(doc))
	assert.Error(t, err)
}
