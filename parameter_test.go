package wtp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParameterBasic(t *testing.T) {
	p := NewParameter("{{{P}}}")
	assert.Equal(t, "P", p.Name())
	assert.Equal(t, "", p.Pipe())
	assert.Equal(t, "", p.Default())

	p.SetName(" Q ")
	assert.Equal(t, "{{{ Q }}}", p.String())

	p.SetDefault(" V ")
	assert.Equal(t, "{{{ Q | V }}}", p.String())

	p = NewParameter("{{{P|D}}}")
	assert.Equal(t, "P", p.Name())
	assert.Equal(t, "|", p.Pipe())
	assert.Equal(t, "D", p.Default())

	p.SetName(" Q ")
	assert.Equal(t, "{{{ Q |D}}}", p.String())

	p.SetDefault(" V ")
	assert.Equal(t, "{{{ Q | V }}}", p.String())
}
