// Package goquery implements HTML parsing on top of github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitecrawl"
)

// Ensure Parser implements sitecrawl.Parser at compile time.
var _ sitecrawl.Parser = (*Parser)(nil)

// Parser extracts the title and outgoing links of an HTML page.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse returns the text of the document's first <title> element, trimmed,
// and the href of every <a> element in document order.
//
// Links are returned unresolved. Empty hrefs, repeated hrefs and links that
// can never be fetched over HTTP (javascript:, mailto:, tel:, data:) are dropped.
func (p *Parser) Parse(html string) (*sitecrawl.Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, sitecrawl.Errorf(sitecrawl.EINVALID, "failed to parse HTML: %v", err)
	}

	page := &sitecrawl.Page{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}

	seen := make(map[string]bool)
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href := strings.TrimSpace(sel.AttrOr("href", ""))
		if href == "" || seen[href] || isNonHTTPLink(href) {
			return
		}
		seen[href] = true
		page.Links = append(page.Links, href)
	})

	return page, nil
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(href)
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
