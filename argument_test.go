package wtp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgumentBasic(t *testing.T) {
	a := NewArgument("| a = b ")
	assert.Equal(t, " a ", a.Name())
	assert.Equal(t, " b ", a.Value())
	assert.Equal(t, "=", a.EqualSign())
}

func TestArgumentAnonymousParameter(t *testing.T) {
	a := NewArgument("| a ")
	assert.Equal(t, "1", a.Name())
	assert.Equal(t, " a ", a.Value())
}

func TestArgumentSetName(t *testing.T) {
	a := NewArgument("| a = b ")
	a.SetName(" c ")
	assert.Equal(t, "| c = b ", a.String())
}

func TestArgumentSetValue(t *testing.T) {
	a := NewArgument("| a = b ")
	a.SetValue(" c ")
	assert.Equal(t, "| a = c ", a.String())
}
