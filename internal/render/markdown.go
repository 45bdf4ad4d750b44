package render

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"

	stdhtml "html"
)

// markdown is the shared converter. Strikethrough covers ~~text~~; hard wraps
// turn single newlines into <br/>. Raw HTML stays disabled: anything with real
// tags is classified as HTML before it reaches this path.
var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.Strikethrough,
	),
	goldmark.WithRendererOptions(
		htmlrenderer.WithHardWraps(),
		htmlrenderer.WithXHTML(),
	),
)

// RenderMarkdown converts a Markdown chapter body to an HTML fragment.
// Malformed markup degrades to literal text under goldmark's rules; a
// conversion failure falls back to the plain-text rendering so the pipeline
// never surfaces an error for bad content.
func RenderMarkdown(content string) string {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(content), &buf); err != nil {
		return RenderPlain(content)
	}
	return buf.String()
}

// RenderPlain converts bare text to an HTML fragment: paragraphs split on
// blank lines, single newlines become <br/>, everything escaped.
func RenderPlain(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	if strings.TrimSpace(content) == "" {
		return ""
	}

	var b strings.Builder
	for _, para := range strings.Split(content, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		escaped := stdhtml.EscapeString(para)
		escaped = strings.ReplaceAll(escaped, "\n", "<br/>")
		b.WriteString("<p>")
		b.WriteString(escaped)
		b.WriteString("</p>\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}
