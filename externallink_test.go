package wtp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExternalLinkNumberedMailto(t *testing.T) {
	s := "[mailto:info@example.org?Subject=URL%20Encoded%20Subject&body=Body%20Textinfo]"
	el := NewExternalLink(s)
	assert.Equal(t, s[1:len(s)-1], el.URL())
	assert.Equal(t, "", el.Text())
	assert.Equal(t, true, el.InBrackets())
}

func TestExternalLinkBareLink(t *testing.T) {
	el := NewExternalLink("HTTP://mediawiki.org")
	assert.Equal(t, "HTTP://mediawiki.org", el.URL())
	assert.Equal(t, "HTTP://mediawiki.org", el.Text())
	assert.Equal(t, false, el.InBrackets())
}

func TestExternalLinkInbracketWithText(t *testing.T) {
	el := NewExternalLink("[ftp://mediawiki.org mediawiki ftp]")
	assert.Equal(t, "ftp://mediawiki.org", el.URL())
	assert.Equal(t, "mediawiki ftp", el.Text())
	assert.Equal(t, true, el.InBrackets())
}

func TestExternalLinkSetText(t *testing.T) {
	el := NewExternalLink("[ftp://mediawiki.org mediawiki ftp]")
	el.SetText("mwftp")
	assert.Equal(t, "[ftp://mediawiki.org mwftp]", el.String())

	el = NewExternalLink("ftp://mediawiki.org")
	el.SetText("mwftp")
	assert.Equal(t, "[ftp://mediawiki.org mwftp]", el.String())
}

func TestExternalLinkSetURL(t *testing.T) {
	el := NewExternalLink("[ftp://mediawiki.org mw]")
	el.SetURL("https://www.mediawiki.org/")
	assert.Equal(t, "[https://www.mediawiki.org/ mw]", el.String())

	el = NewExternalLink("ftp://mediawiki.org")
	el.SetURL("https://www.mediawiki.org/")
	assert.Equal(t, "https://www.mediawiki.org/", el.String())
}
