package placeholder

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	assert.Equal(t, "a b c", Clean("  a   b\n  c \n"))
	assert.Equal(t, "onetwo", Clean("one\ntwo"))
	assert.Equal(t, "", Clean("\n\n   "))
}

func TestResolveOrder(t *testing.T) {
	n := New()
	got := n.Resolve("Value of {{param}} in {{object}}", Context{Object: "Device.WiFi", Parameter: "Enable"})
	assert.Equal(t, "Value of Enable in Device.WiFi", got)
}

func TestResolveDenylist(t *testing.T) {
	n := New()

	assert.Equal(t, "Maximum entries allowed.", n.Resolve("Maximum entries allowed {{numentries}}.", Context{}))
	assert.Equal(t, "Type.", n.Resolve("Type {{datatype|expand}}.", Context{}))
	assert.Equal(t, "A B", n.Resolve("A {{enum}} {{list}} B", Context{}))
	assert.Equal(t, "Ref", n.Resolve("Ref {{reference}}{{noreference}} {{pattern}}", Context{}))
}

func TestResolveTemplateForms(t *testing.T) {
	n := New()

	assert.Equal(t, "See Section 3.", n.Resolve("See {{bibref|Section 3}}.", Context{}))
	assert.Equal(t, "Set to true.", n.Resolve("Set to {{true}}.", Context{}))
	assert.Equal(t, "Uses TR-069|A.3.", n.Resolve("Uses {{bibref|TR-069|A.3}}.", Context{}))
	// Units left unresolved by the flattener fall back to the bare word.
	assert.Equal(t, "In units.", n.Resolve("In {{units}}.", Context{}))
}

func TestResolveSpecificFormsBeforeGeneric(t *testing.T) {
	n := New()
	got := n.Resolve("{{object}} {{param}} {{empty}}", Context{Object: "Device.", Parameter: "X"})
	assert.Equal(t, "Device. X empty", got)
}

func TestResolveIdempotent(t *testing.T) {
	n := New()
	inputs := []string{
		"Value of Enable in Device.WiFi",
		"Maximum entries allowed.",
		"A | B (C)",
	}
	for _, in := range inputs {
		once := n.Resolve(in, Context{Object: "O", Parameter: "P"})
		assert.Equal(t, in, once)
		assert.Equal(t, once, n.Resolve(once, Context{Object: "O", Parameter: "P"}))
	}
}

func TestStepsOrder(t *testing.T) {
	var names []string
	for _, s := range Steps() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"object", "param", "denylist", "styled", "simple"}, names)
}

func TestCollapseSpacesKeepsNewlines(t *testing.T) {
	assert.Equal(t, "a b\nc", CollapseSpaces("a   b\nc"))
}

func TestNewChainsStandardSteps(t *testing.T) {
	assert.Equal(t, []string{"object", "param", "denylist", "styled", "simple"}, New().StepNames())
}

func TestNormalizerAppliesStepsInAddedOrder(t *testing.T) {
	upper := ReplaceStep("mark", regexp.MustCompile(`Device`), "DEVICE")
	object := TokenStep("object", "{{object}}", func(ctx Context) string { return ctx.Object })

	ctx := Context{Object: "Device.WiFi."}

	objectFirst := NewNormalizer().Add(object).Add(upper)
	assert.Equal(t, "In DEVICE.WiFi.", objectFirst.Resolve("In {{object}}", ctx))

	markFirst := NewNormalizer().Add(upper).Add(object)
	assert.Equal(t, "In Device.WiFi.", markFirst.Resolve("In {{object}}", ctx))

	assert.Equal(t, "a b", NewNormalizer().Resolve("  a \n  b ", ctx))
}
