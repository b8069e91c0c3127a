package wtp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionLevel6(t *testing.T) {
	s := NewSection("====== == ======\n")
	assert.Equal(t, 6, s.Level())
	assert.Equal(t, " == ", s.Title())
}

func TestSectionNolevel7(t *testing.T) {
	s := NewSection("======= h6 =======\n")
	assert.Equal(t, 6, s.Level())
	assert.Equal(t, "= h6 =", s.Title())
}

func TestSectionUnbalancedEqualsignsInTitle(t *testing.T) {
	s := NewSection("====== ==   \n")
	assert.Equal(t, 2, s.Level())
	assert.Equal(t, "==== ", s.Title())

	s = NewSection("== ======   \n")
	assert.Equal(t, 2, s.Level())
	assert.Equal(t, " ====", s.Title())

	s = NewSection("========  \n")
	assert.Equal(t, 3, s.Level())
	assert.Equal(t, "==", s.Title())
}

func TestSectionLeadsection(t *testing.T) {
	s := NewSection("lead text. \n== section ==\ntext.")
	assert.Equal(t, 0, s.Level())
	assert.Equal(t, "", s.Title())
}

func TestSectionSetTitle(t *testing.T) {
	s := NewSection("== section ==\ntext.")
	err := s.SetTitle(" newtitle ")
	require.NoError(t, err)
	assert.Equal(t, " newtitle ", s.Title())
}

func TestSectionLeadSetTitle(t *testing.T) {
	s := NewSection("lead text")
	err := s.SetTitle(" newtitle ")
	assert.ErrorIs(t, err, ErrLeadTitleless)
}

func TestSectionSetContents(t *testing.T) {
	s := NewSection("== title ==\ntext.")
	s.SetContents(" newcontents ")
	assert.Equal(t, " newcontents ", s.Contents())
}

func TestSectionSetLeadContents(t *testing.T) {
	s := NewSection("lead")
	s.SetContents("newlead")
	assert.Equal(t, "newlead", s.String())
}
