// Package markup handles the HTML subset Telegram accepts in parse_mode=HTML.
package markup

import (
	"fmt"
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Escape makes s safe to embed as text in an HTML-formatted message.
func Escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}

// Bold and friends wrap escaped text in a tag Telegram understands.
func Bold(s string) string   { return "<b>" + Escape(s) + "</b>" }
func Italic(s string) string { return "<i>" + Escape(s) + "</i>" }
func Code(s string) string   { return "<code>" + Escape(s) + "</code>" }
func Pre(s string) string    { return "<pre>" + Escape(s) + "</pre>" }

// Link builds an anchor. The href is attribute-escaped.
func Link(text, href string) string {
	return fmt.Sprintf(`<a href="%s">%s</a>`, html.EscapeString(href), Escape(text))
}

// Mention links to a user by id.
func Mention(text string, userID int64) string {
	return Link(text, fmt.Sprintf("tg://user?id=%d", userID))
}

// PlainText strips formatting from an HTML message so it can be resent
// without a parse mode. Line breaks survive, and links keep their target
// when it differs from the link text.
func PlainText(content string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("markup: parse html: %w", err)
	}

	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("a").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		text := s.Text()
		if ok && href != "" && href != text && !strings.HasPrefix(href, "tg://") {
			s.ReplaceWithHtml(Escape(text + " (" + href + ")"))
		}
	})
	doc.Find("p, div, pre, blockquote").Each(func(_ int, s *goquery.Selection) {
		if s.Next().Length() > 0 {
			s.AppendHtml("\n")
		}
	})

	return strings.TrimSpace(doc.Text()), nil
}
