package render

import "strings"

var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// Escape maps & < > " ' to their entities. The empty string stays empty.
func Escape(text string) string {
	if text == "" {
		return ""
	}
	return htmlReplacer.Replace(text)
}
