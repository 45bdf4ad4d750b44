// Package render implements the chapter rendering pipeline: content
// classification, Markdown/plain conversion to HTML, tree-based highlight
// application, word-count pagination, and the selection state machine. Every
// function here is a pure computation over strings; no I/O, no logging.
package render

import (
	"regexp"
	"strings"
)

// Format is the detected content type of a raw chapter body.
type Format string

const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
	FormatPlain    Format = "plain"
)

// Chapter bodies come from different editors: the rich-text editor stores
// HTML, the plain editor stores Markdown or bare text. HTML detection runs
// first so structured-editor output is never escaped, even when it contains
// Markdown-looking substrings.
var (
	htmlOpenTag  = regexp.MustCompile(`(?i)<(div|p|br|strong|em|b|i|u|s|h[1-6]|ul|ol|li|blockquote|a|span|img|pre|code|table|tr|td|th|mark|hr|figure|section|article)(\s[^<>]*)?/?>`)
	htmlCloseTag = regexp.MustCompile(`(?i)</[a-z][a-z0-9]*\s*>`)

	markdownMarkers = []*regexp.Regexp{
		regexp.MustCompile(`\*\*[^*\n]+\*\*`),        // bold
		regexp.MustCompile(`\*[^*\n]+\*`),            // italic
		regexp.MustCompile(`~~[^~\n]+~~`),            // strikethrough
		regexp.MustCompile(`(?m)^#{1,6}\s`),          // heading
		regexp.MustCompile(`(?m)^\s*[-*+]\s+\S`),     // unordered list item
		regexp.MustCompile(`(?m)^\s*\d+\.\s+\S`),     // ordered list item
		regexp.MustCompile(`(?m)^>\s?\S`),            // blockquote
		regexp.MustCompile(`\[[^\]\n]+\]\([^)\n]+\)`), // link
	}
)

// Classify decides how a raw chapter body should be rendered. It is a total
// function: empty or unrecognized content is plain text, never an error.
func Classify(content string) Format {
	if strings.TrimSpace(content) == "" {
		return FormatPlain
	}
	if htmlOpenTag.MatchString(content) || htmlCloseTag.MatchString(content) {
		return FormatHTML
	}
	for _, marker := range markdownMarkers {
		if marker.MatchString(content) {
			return FormatMarkdown
		}
	}
	return FormatPlain
}
