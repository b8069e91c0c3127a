package wtp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateNamedParameters(t *testing.T) {
	s := "{{یادکرد کتاب|عنوان = ش{{--}}ش|سال=۱۳۴۵}}"
	tpl := NewTemplate(s)
	assert.Equal(t, s, tpl.String())
}

func TestTemplateOrderedParameters(t *testing.T) {
	s := "{{example|{{foo}}|bar|2}}"
	tpl := NewTemplate(s)
	assert.Equal(t, s, tpl.String())
}

func TestTemplateOrderedAndNamedParameters(t *testing.T) {
	s := "{{example|para1={{foo}}|bar=3|2}}"
	tpl := NewTemplate(s)
	assert.Equal(t, s, tpl.String())
}

func TestTemplateNoParameters(t *testing.T) {
	s := "{{template}}"
	tpl := NewTemplate(s)
	assert.Equal(t, s, tpl.String())
}

func TestTemplateContainsNewlines(t *testing.T) {
	s := "{{template\n|s=2}}"
	tpl := NewTemplate(s)
	assert.Equal(t, s, tpl.String())
}

func TestTemplateDontTouchEmptyStrings(t *testing.T) {
	s := "{{template|url=||work=|accessdate=}}"
	tpl := NewTemplate(s)
	tpl.RemoveDuplicateArguments()
	assert.Equal(t, s, tpl.String())
}

func TestTemplateRemoveFirstDuplicateKeepLast(t *testing.T) {
	tpl := NewTemplate("{{template|year=9999|year=2000}}")
	tpl.RemoveDuplicateArguments()
	assert.Equal(t, "{{template|year=2000}}", tpl.String())
}

func TestTemplateDuplicateReplace(t *testing.T) {
	s := "{{cite|{{t1}}|{{t1}}}}"
	tpl := NewTemplate(s)
	tpl.RemoveDuplicateArguments()
	assert.Equal(t, s, tpl.String())
}

func TestTemplateName(t *testing.T) {
	tpl := NewTemplate("{{ wrapper | p1 | {{ cite | sp1 | dateformat = ymd}} }}")
	assert.Equal(t, " wrapper ", tpl.Name())
}

func TestTemplateDontRemoveDuplicateSubparameter(t *testing.T) {
	s := "{{i| c = {{g}} |p={{t|h={{g}}}} |q={{t|h={{g}}}}}}"
	tpl := NewTemplate(s)
	tpl.RemoveDuplicateArguments()
	assert.Equal(t, s, tpl.String())
}

func TestTemplateDontRemoveNonkeywordArgument(t *testing.T) {
	tpl := NewTemplate("{{t|a|a}}")
	assert.Equal(t, "{{t|a|a}}", tpl.String())
}

func TestTemplateSetName(t *testing.T) {
	tpl := NewTemplate("{{t|a|a}}")
	tpl.SetName(" u ")
	assert.Equal(t, "{{ u |a|a}}", tpl.String())
}

func TestTemplateKeywordAndPositionalArgs(t *testing.T) {
	tpl := NewTemplate("{{t|kw=a|1=|pa|kw2=a|pa2}}")
	assert.Equal(t, "1", tpl.Arguments()[2].Name())
}

func TestParserFunctionBasic(t *testing.T) {
	pf := NewParserFunction("{{ #if: test | true | false }}")
	assert.Equal(t, "if", pf.Name())
	args := pf.Arguments()
	require.Len(t, args, 3)
	assert.Equal(t, ": test ", args[0].String())
	assert.Equal(t, "| true ", args[1].String())
	assert.Equal(t, "| false ", args[2].String())
}
