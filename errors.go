package wtp

import "errors"

// ErrLeadTitleless is returned, wrapped, by (*Section).SetTitle when
// called on the lead (level-0) section: a lead section has no heading
// line to hold a title.
var ErrLeadTitleless = errors.New("wtp: lead section has no title")
