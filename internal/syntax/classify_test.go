package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tr069tools/tr069-excelifier/internal/modelparser"
)

// syntaxNode parses a <syntax> fragment through the real model parser.
func syntaxNode(t *testing.T, fragment string) *modelparser.Node {
	t.Helper()
	model, err := modelparser.Parse([]byte(`<d><model name="m"><object name="o" access="readOnly">
<description/><parameter name="p" access="readOnly"><description/>` + fragment +
		`</parameter></object></model></d>`))
	require.NoError(t, err)
	return model.Objects[0].Parameters[0].Syntax
}

func TestClassifyAnnotations(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		kind     Kind
		want     string
	}{
		{
			name:     "boolean",
			fragment: `<syntax><boolean/></syntax>`,
			kind:     KindBoolean,
			want:     "Boolean",
		},
		{
			name:     "boolean with default",
			fragment: `<syntax><boolean/><default type="object" value="false"/></syntax>`,
			kind:     KindBoolean,
			want:     "Boolean, default false",
		},
		{
			name: "enumeration",
			fragment: `<syntax><string>
				<enumeration value="On"/><enumeration value="Off"/><enumeration value="Auto"/>
			</string></syntax>`,
			kind: KindStringEnum,
			want: "Enums (On|Off|Auto)",
		},
		{
			name:     "enumeration wins over size",
			fragment: `<syntax><string><size maxLength="8"/><enumeration value="A"/></string></syntax>`,
			kind:     KindStringEnum,
			want:     "Enums (A)",
		},
		{
			name:     "max length",
			fragment: `<syntax><string><size maxLength="64"/></string></syntax>`,
			kind:     KindStringSize,
			want:     "String, max length 64",
		},
		{
			name:     "plain string",
			fragment: `<syntax><string/></syntax>`,
			kind:     KindOther,
			want:     "string",
		},
		{
			name:     "unit",
			fragment: `<syntax><unsignedInt><units value="seconds"/></unsignedInt></syntax>`,
			kind:     KindOther,
			want:     "unsignedInt in seconds",
		},
		{
			name:     "list before type",
			fragment: `<syntax><list><size maxLength="256"/></list><int/><default type="factory" value="-1"/></syntax>`,
			kind:     KindOther,
			want:     "int, default -1",
		},
		{
			name:     "named data type",
			fragment: `<syntax><dataType ref="IPAddress"/></syntax>`,
			kind:     KindOther,
			want:     "IPAddress",
		},
		{
			name:     "default text",
			fragment: `<syntax><long/><default> 42 </default></syntax>`,
			kind:     KindOther,
			want:     "long, default 42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Classify(syntaxNode(t, tt.fragment))
			assert.Equal(t, tt.kind, s.Kind)

			got, ok := s.Annotation()
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyEnumerationDropsTypeToken(t *testing.T) {
	s := Classify(syntaxNode(t, `<syntax><string><enumeration value="On"/></string></syntax>`))

	got, _ := s.Annotation()
	assert.NotContains(t, got, "string")
	assert.Equal(t, []string{"On"}, s.Enums)
}

func TestClassifyWithoutAnnotation(t *testing.T) {
	untyped := Classify(nil)
	assert.Equal(t, KindUntyped, untyped.Kind)
	_, ok := untyped.Annotation()
	assert.False(t, ok)

	unknown := Classify(syntaxNode(t, `<syntax><list/><hidden/></syntax>`))
	assert.Equal(t, KindUnknown, unknown.Kind)
	_, ok = unknown.Annotation()
	assert.False(t, ok)
	assert.Equal(t, "unknown", unknown.Kind.String())
}
