package pipeline

import (
	"regexp"
	"strings"

	"todogist/internal/domain"
)

var (
	// Leading "{tag} rest" form. The bracketed segment becomes the tag.
	tagPattern = regexp.MustCompile(`^\{(.+?)\}\s*(.*)$`)

	// Standalone word "playlist" anywhere in the text, any case.
	playlistPattern = regexp.MustCompile(`(?i)\bplaylist\b`)

	// "label (url)" form: a single label token (no parentheses or
	// whitespace) immediately followed by a parenthesized URL.
	inlineLinkPattern = regexp.MustCompile(`^([^()\s]+)\s+\(([^)\s]+)\)$`)

	// "[label](url)" form.
	markdownLinkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)\)`)
)

// youtubeSuffix is the trailing decoration the service appends to titles
// pasted from YouTube.
const youtubeSuffix = " - YouTube"

// ParseContent parses one free-text content field into its structured form.
//
// The grammar is applied in order: an explicit leading "{tag}" is extracted
// first (falling back to an implicit "playlist" tag when the text contains
// that word), then a hyperlink in either the "label (url)" or "[label](url)"
// form, then a trailing " - YouTube" decoration is stripped from the display
// text. Absent parts are left empty in the result.
func ParseContent(content string) domain.ParsedContent {
	text := strings.TrimSpace(content)

	var tag string
	if m := tagPattern.FindStringSubmatch(text); m != nil {
		tag = strings.ToLower(m[1])
		text = m[2]
	} else if playlistPattern.MatchString(text) {
		tag = "playlist"
	}

	var link string
	if m := inlineLinkPattern.FindStringSubmatch(text); m != nil {
		text, link = m[1], m[2]
	} else if m := markdownLinkPattern.FindStringSubmatch(text); m != nil {
		text, link = m[1], m[2]
	}

	text = strings.TrimSpace(strings.TrimSuffix(text, youtubeSuffix))

	return domain.ParsedContent{Text: text, Tag: tag, Link: link}
}
