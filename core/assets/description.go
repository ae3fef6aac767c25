package assets

import (
	"strings"

	"golang.org/x/net/html"
)

// PrettyDescription turns the HTML-ish markup used in descriptions into plain text.
// Line breaks become newlines; every other tag is dropped.
func PrettyDescription(s string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(b.String())
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.SelfClosingTagToken:
			if name, _ := z.TagName(); string(name) == "br" {
				b.WriteByte('\n')
			}
		}
	}
}
