package render

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// LinkRef represents a collected hyperlink reference.
type LinkRef struct {
	Index int
	URL   string
	Text  string
}

// BodyText converts a raw HTML message body to terminal-friendly plain text,
// collecting hyperlink references as [n] markers. This is the trust boundary
// for backend-provided HTML: everything passes through the parser and comes
// out as text, so no markup ever reaches a view verbatim. Input that fails to
// parse is degraded to its sanitized raw form rather than dropped.
func BodyText(htmlStr string) (string, []LinkRef) {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return sanitizeForTerminal(htmlStr), nil
	}

	var b strings.Builder
	links := make([]LinkRef, 0, 4)
	var quoteDepth int

	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			text := sanitizeForTerminal(n.Data)
			if strings.TrimSpace(text) == "" {
				return
			}
			if quoteDepth > 0 {
				prefix := strings.Repeat("> ", quoteDepth)
				for i, ln := range strings.Split(text, "\n") {
					if i > 0 {
						b.WriteByte('\n')
					}
					b.WriteString(prefix)
					b.WriteString(strings.TrimRightFunc(ln, unicode.IsSpace))
				}
			} else {
				b.WriteString(text)
			}
		case html.ElementNode:
			switch strings.ToLower(n.Data) {
			case "head", "style", "script", "title", "meta", "link":
				// Skip entire subtree
				return
			case "br":
				b.WriteByte('\n')
			case "hr":
				b.WriteString("\n-----\n")
				return
			case "p", "div", "section", "tr":
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					visit(c)
				}
				b.WriteByte('\n')
				return
			case "h1", "h2", "h3", "h4", "h5", "h6":
				t := strings.TrimSpace(collectText(n))
				if t != "" {
					b.WriteString(t)
					b.WriteString("\n\n")
				}
				return
			case "ul", "ol":
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					if c.Type == html.ElementNode && strings.ToLower(c.Data) == "li" {
						b.WriteString("- ")
						for li := c.FirstChild; li != nil; li = li.NextSibling {
							visit(li)
						}
						b.WriteByte('\n')
					}
				}
				return
			case "blockquote":
				quoteDepth++
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					visit(c)
				}
				quoteDepth--
				b.WriteByte('\n')
				return
			case "a":
				href := attrValue(n, "href")
				label := strings.TrimSpace(collectText(n))
				if label == "" {
					label = href
				}
				b.WriteString(label)
				if href != "" && href != label {
					links = append(links, LinkRef{Index: len(links) + 1, URL: href, Text: label})
					fmt.Fprintf(&b, " [%d]", len(links))
				}
				return
			}
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				visit(c)
			}
		}
	}
	visit(doc)

	text := collapseBlankLines(strings.TrimSpace(b.String()))
	if len(links) > 0 {
		var refs strings.Builder
		refs.WriteString("\n\nLinks:\n")
		for _, l := range links {
			fmt.Fprintf(&refs, "[%d] %s\n", l.Index, l.URL)
		}
		text += strings.TrimRight(refs.String(), "\n")
	}
	return text, links
}

// collectText gathers the plain text of a subtree without structure.
func collectText(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(sanitizeForTerminal(n.Data))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return strings.TrimSpace(a.Val)
		}
	}
	return ""
}

// sanitizeForTerminal replaces rich-text glyphs that often render as tofu
// with ASCII-safe equivalents and drops control characters.
func sanitizeForTerminal(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\u00A0', '\u202F', '\u2009':
			b.WriteRune(' ')
		case '\u200B', '\u200C', '\u200D', '\uFEFF', '\u00AD', '\u2060':
			// zero-width and soft glyphs, dropped
		case '\u2013', '\u2014':
			b.WriteRune('-')
		case '\u2018', '\u2019':
			b.WriteRune('\'')
		case '\u201C', '\u201D':
			b.WriteRune('"')
		case '\u2026':
			b.WriteString("...")
		default:
			if unicode.IsControl(r) && r != '\n' && r != '\t' {
				continue
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

func collapseBlankLines(s string) string {
	for strings.Contains(s, "\n\n\n") {
		s = strings.ReplaceAll(s, "\n\n\n", "\n\n")
	}
	return s
}
