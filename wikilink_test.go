package wtp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWikiLinkTargetText(t *testing.T) {
	wl := NewWikiLink("[[A | faf a\n\nfads]]")
	assert.Equal(t, "A ", wl.Target())
	assert.Equal(t, " faf a\n\nfads", wl.Text())
}

func TestWikiLinkSetTarget(t *testing.T) {
	wl := NewWikiLink("[[A | B]]")
	wl.SetTarget(" C ")
	assert.Equal(t, "[[ C | B]]", wl.String())
}

func TestWikiLinkSetText(t *testing.T) {
	wl := NewWikiLink("[[A | B]]")
	wl.SetText(" C ")
	assert.Equal(t, "[[A | C ]]", wl.String())
}
