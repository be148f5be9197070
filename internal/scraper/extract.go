package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractImageLinks returns the src attribute of every img element in the
// document, in document order. Elements without a src are skipped. Parsing
// is best-effort: malformed markup yields whatever could be read, never an
// error.
func ExtractImageLinks(html string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var links []string
	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		if src, ok := sel.Attr("src"); ok {
			links = append(links, src)
		}
	})
	return links
}
