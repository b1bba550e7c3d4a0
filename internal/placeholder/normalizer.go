// =============================================================================
// TR-069 Excelifier - Text Normalizer
// =============================================================================
//
// This module cleans cell text and resolves the {{...}} template placeholders
// that TR-069 descriptions embed.
//
// CLEANING (every cell of both sheets):
//   - newline characters removed
//   - runs of spaces collapsed to one
//   - leading and trailing whitespace trimmed
//
// PLACEHOLDER STEPS (description cells only, strictly in this order):
//   1. {{object}}            -> the row's Object value
//   2. {{param}}             -> the row's Parameter value
//   3. " {{numentries}}" etc -> removed together with the preceding space
//   4. {{word|payload}}      -> payload
//   5. {{word}}              -> word
//
// Steps 4 and 5 match any placeholder, so they run after the specific forms.
// Each step sees the output of the previous one; nested forms resolve
// through that sequence and nothing else.
//
// =============================================================================

package placeholder

import (
	"regexp"
	"strings"
)

// Denylist holds the annotation placeholders dropped from descriptions.
var Denylist = []string{
	"numentries",
	"datatype|expand",
	"pattern",
	"enum",
	"list",
	"reference",
	"noreference",
}

var (
	spaceRuns   = regexp.MustCompile(` {2,}`)
	denied      = regexp.MustCompile(` ?\{\{(?:` + quoteAll(Denylist) + `)\}\}`)
	styledText  = regexp.MustCompile(`\{\{\w+\|([^{}]*)\}\}`)
	simpleToken = regexp.MustCompile(`\{\{(\w+)\}\}`)
)

// =============================================================================
// CONTEXT AND STEPS
// =============================================================================

// Context carries the row values a description may refer to.
type Context struct {
	Object    string
	Parameter string
}

// Step is one placeholder resolution stage.
type Step struct {
	Name  string
	Apply func(text string, ctx Context) string
}

// ReplaceStep builds a step that rewrites every match of re with repl,
// which may refer to capture groups ("$1").
func ReplaceStep(name string, re *regexp.Regexp, repl string) Step {
	return Step{
		Name: name,
		Apply: func(text string, _ Context) string {
			return re.ReplaceAllString(text, repl)
		},
	}
}

// TokenStep builds a step that replaces a literal token with a value taken
// from the row context.
func TokenStep(name, token string, value func(Context) string) Step {
	return Step{
		Name: name,
		Apply: func(text string, ctx Context) string {
			return strings.ReplaceAll(text, token, value(ctx))
		},
	}
}

// Steps returns the resolution stages in their required order.
func Steps() []Step {
	return []Step{
		TokenStep("object", "{{object}}", func(ctx Context) string { return ctx.Object }),
		TokenStep("param", "{{param}}", func(ctx Context) string { return ctx.Parameter }),
		ReplaceStep("denylist", denied, ""),
		ReplaceStep("styled", styledText, "$1"),
		ReplaceStep("simple", simpleToken, "$1"),
	}
}

// =============================================================================
// NORMALIZER
// =============================================================================

// Normalizer is an ordered chain of steps applied between two cleaning
// passes.
type Normalizer struct {
	steps []Step
}

// NewNormalizer creates an empty chain; steps are added with Add.
func NewNormalizer() *Normalizer {
	return &Normalizer{steps: make([]Step, 0)}
}

// New creates a Normalizer with the standard steps.
func New() *Normalizer {
	n := NewNormalizer()
	for _, step := range Steps() {
		n.Add(step)
	}
	return n
}

// Add appends a step to the chain.
func (n *Normalizer) Add(step Step) *Normalizer {
	n.steps = append(n.steps, step)
	return n
}

// StepNames lists the chain in application order.
func (n *Normalizer) StepNames() []string {
	names := make([]string, len(n.steps))
	for i, step := range n.steps {
		names[i] = step.Name
	}
	return names
}

// Clean removes newlines, collapses space runs and trims.
func Clean(text string) string {
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.ReplaceAll(text, "\n", "")
	text = spaceRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// CollapseSpaces collapses space runs without touching newlines.
func CollapseSpaces(text string) string {
	return spaceRuns.ReplaceAllString(text, " ")
}

// Resolve cleans text, applies every placeholder step in order and cleans
// the result again so removed tokens leave no double spaces behind.
func (n *Normalizer) Resolve(text string, ctx Context) string {
	text = Clean(text)
	for _, step := range n.steps {
		text = step.Apply(text, ctx)
	}
	return Clean(text)
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

func quoteAll(tokens []string) string {
	quoted := make([]string, len(tokens))
	for i, t := range tokens {
		quoted[i] = regexp.QuoteMeta(t)
	}
	return strings.Join(quoted, "|")
}
