package render

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
	"github.com/masnyjimmy/specdoc/src/compilation"
)

// chromeSelectors are parts of the page that only make sense in a browser.
var chromeSelectors = []string{"script", "style", ".search-box"}

// Markdown converts a page produced by Render into Markdown.
func Markdown(pageHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return "", fmt.Errorf("%w: parsing HTML: %w", ErrConvertMarkdown, err)
	}

	for _, sel := range chromeSelectors {
		doc.Find(sel).Remove()
	}

	body, err := doc.Find("body").Html()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrConvertMarkdown, err)
	}

	markdown, err := htmltomarkdown.ConvertString(body)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrConvertMarkdown, err)
	}

	return strings.TrimSpace(markdown) + "\n", nil
}

// RenderMarkdown renders doc and converts the page to Markdown.
func RenderMarkdown(doc *compilation.Document, opt Options) (string, error) {
	out, err := Render(doc, opt)
	if err != nil {
		return "", err
	}

	return Markdown(out)
}
