package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBodyText_PlainParagraphs(t *testing.T) {
	text, links := BodyText("<html><body><p>First paragraph</p><p>Second paragraph</p></body></html>")

	assert.Empty(t, links)
	assert.Contains(t, text, "First paragraph")
	assert.Contains(t, text, "Second paragraph")
	assert.Less(t, strings.Index(text, "First"), strings.Index(text, "Second"))
}

func TestBodyText_SkipsHeadStyleScript(t *testing.T) {
	input := `<html><head><title>Title</title><style>p { color: red }</style></head>
	<body><script>alert("x")</script><p>visible</p></body></html>`

	text, _ := BodyText(input)

	assert.Contains(t, text, "visible")
	assert.NotContains(t, text, "color: red")
	assert.NotContains(t, text, "alert")
	assert.NotContains(t, text, "Title")
}

func TestBodyText_NoMarkupLeaksThrough(t *testing.T) {
	text, _ := BodyText(`<div onclick="evil()"><b>bold</b> and <i>italic</i></div>`)

	assert.Contains(t, text, "bold")
	assert.Contains(t, text, "italic")
	assert.NotContains(t, text, "<")
	assert.NotContains(t, text, "evil")
}

func TestBodyText_LinksBecomeReferences(t *testing.T) {
	text, links := BodyText(`<p>See <a href="https://example.com/a">the docs</a> and <a href="https://example.com/b">more</a>.</p>`)

	assert.Len(t, links, 2)
	assert.Equal(t, 1, links[0].Index)
	assert.Equal(t, "https://example.com/a", links[0].URL)
	assert.Equal(t, "the docs", links[0].Text)
	assert.Contains(t, text, "the docs [1]")
	assert.Contains(t, text, "more [2]")
	assert.Contains(t, text, "Links:")
	assert.Contains(t, text, "[1] https://example.com/a")
}

func TestBodyText_BlockquotePrefix(t *testing.T) {
	text, _ := BodyText(`<blockquote>quoted line</blockquote>`)

	assert.Contains(t, text, "> quoted line")
}

func TestBodyText_Lists(t *testing.T) {
	text, _ := BodyText(`<ul><li>alpha</li><li>beta</li></ul>`)

	assert.Contains(t, text, "- alpha")
	assert.Contains(t, text, "- beta")
}

func TestBodyText_Headings(t *testing.T) {
	text, _ := BodyText(`<h1>Big News</h1><p>details</p>`)

	assert.Contains(t, text, "Big News")
	assert.Contains(t, text, "details")
}

func TestBodyText_EmptyInput(t *testing.T) {
	text, links := BodyText("")

	assert.Empty(t, text)
	assert.Empty(t, links)
}

func TestSanitizeForTerminal(t *testing.T) {
	assert.Equal(t, "a b", sanitizeForTerminal("a\u00a0b"))
	assert.Equal(t, "ab", sanitizeForTerminal("a\u200bb"))
	assert.Equal(t, "a-b", sanitizeForTerminal("a\u2014b"))
	assert.Equal(t, "'quoted'", sanitizeForTerminal("\u2018quoted\u2019"))
	assert.Equal(t, `"quoted"`, sanitizeForTerminal("\u201cquoted\u201d"))
	assert.Equal(t, "wait...", sanitizeForTerminal("wait\u2026"))
	assert.Equal(t, "ab", sanitizeForTerminal("a\x07b"))
	assert.Equal(t, "a\nb", sanitizeForTerminal("a\nb"))
}

func TestCollapseBlankLines(t *testing.T) {
	assert.Equal(t, "a\n\nb", collapseBlankLines("a\n\n\n\n\nb"))
	assert.Equal(t, "a\nb", collapseBlankLines("a\nb"))
}
