package render

import (
	"fmt"
	"strings"

	"github.com/averde/postbox/internal/api"
	"github.com/mattn/go-runewidth"
)

// InboxRenderer formats inbox rows and detail headers for display.
type InboxRenderer struct {
	senderWidth int
}

// NewInboxRenderer creates a renderer with default column widths.
func NewInboxRenderer() *InboxRenderer {
	return &InboxRenderer{senderWidth: 24}
}

// FormatRow formats one summary for the list view: flag icons, a fixed-width
// sender column and the snippet fitted to the remaining width.
func (r *InboxRenderer) FormatRow(msg api.MessageSummary, maxWidth int) string {
	if maxWidth < 40 {
		maxWidth = 40
	}

	flags := r.flagIcons(msg)
	flagsWidth := runewidth.StringWidth(flags)

	sender := extractSenderName(msg.Sender)
	if sender == "" {
		sender = "(No sender)"
	}
	senderText := fitWidth(sender, r.senderWidth)

	// separators and spaces around the three columns
	snippetWidth := maxWidth - r.senderWidth - flagsWidth - 6
	if snippetWidth < 10 {
		snippetWidth = 10
	}
	snippet := strings.Join(strings.Fields(msg.Snippet), " ")
	if snippet == "" {
		snippet = "(No preview)"
	}
	snippetText := fitWidth(snippet, snippetWidth)

	return fmt.Sprintf("%s | %s | %s", flags, senderText, snippetText)
}

// flagIcons renders the starred/spam state as a fixed two-cell prefix so rows
// align whether or not flags are set.
func (r *InboxRenderer) flagIcons(msg api.MessageSummary) string {
	star := " "
	if msg.Starred {
		star = "*"
	}
	spam := " "
	if msg.Spam {
		spam = "!"
	}
	return star + spam
}

// FormatDetailHeader returns a plain header block for the detail view.
func (r *InboxRenderer) FormatDetailHeader(detail *api.MessageDetail) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Subject: %s\n", detail.Subject)
	fmt.Fprintf(&b, "From: %s\n", detail.Sender)
	fmt.Fprintf(&b, "Date: %s", detail.Date)
	return b.String()
}

// extractSenderName handles the "Name <email@domain.com>" format.
func extractSenderName(from string) string {
	if i := strings.Index(from, "<"); i > 0 {
		return strings.TrimSpace(from[:i])
	}
	return strings.TrimSpace(from)
}

// fitWidth truncates by display width with ellipsis and pads on the right to
// an exact width.
func fitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = runewidth.Truncate(s, width, "...")
	if pad := width - runewidth.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
