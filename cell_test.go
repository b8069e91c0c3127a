package wtp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellBasics(t *testing.T) {
	c := NewCell("\n| a ")
	assert.Equal(t, " a ", c.Value())
	assert.Equal(t, `Cell('\n| a ')`, c.GoString())
	assert.Equal(t, map[string]string{}, c.Attrs())
}

func TestCellAttrs(t *testing.T) {
	c := NewCell("| class=\"wikitable\" scope=row | data")
	assert.Equal(t, " data", c.Value())
	assert.Equal(t, map[string]string{"class": `"wikitable"`, "scope": "row"}, c.Attrs())
}

func TestCellSetValue(t *testing.T) {
	c := NewCell("! header")
	c.SetValue(" new header")
	assert.Equal(t, "! new header", c.String())
}
