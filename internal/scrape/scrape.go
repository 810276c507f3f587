// Package scrape pulls basic product records off a retail TV listing page.
// It is a manually invoked data-gathering aid; nothing feeds its output into
// the catalog automatically.
package scrape

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/net/html"
)

// Listing is one product tile from a listing page. Rating and Reviews stay
// nil: listing pages do not carry them, a product page would.
type Listing struct {
	Title   string   `json:"title"`
	Price   string   `json:"price"`
	Rating  *float64 `json:"rating"`
	Reviews *int     `json:"reviews"`
}

type Scraper struct {
	client *http.Client
}

func New(client *http.Client) *Scraper {
	if client == nil {
		client = http.DefaultClient
	}
	return &Scraper{client: client}
}

// Scrape fetches the listing page and extracts one record per product tile.
// Tiles missing a title or a price are skipped; a fetch or parse failure
// fails the whole call.
func (s *Scraper) Scrape(ctx context.Context, url string) ([]Listing, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", url, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fetching %s: status %s", url, resp.Status)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", url, err)
	}

	var listings []Listing
	for _, tile := range findAll(doc, isProductTile) {
		title := textOf(find(tile, matchClass("a", "product-title-link")))
		price := textOf(find(tile, matchClass("span", "price")))
		if title == "" || price == "" {
			continue
		}
		listings = append(listings, Listing{Title: title, Price: price})
	}
	return listings, nil
}

func isProductTile(n *html.Node) bool {
	return matchClass("div", "gridview-item")(n)
}

// matchClass matches an element carrying the given class among its class list.
func matchClass(tag, class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		if n.Type != html.ElementNode || n.Data != tag {
			return false
		}
		for _, attr := range n.Attr {
			if attr.Key != "class" {
				continue
			}
			for _, c := range strings.Fields(attr.Val) {
				if c == class {
					return true
				}
			}
		}
		return false
	}
}

func findAll(n *html.Node, pred func(*html.Node) bool) []*html.Node {
	var matches []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if pred(node) {
			matches = append(matches, node)
			return
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return matches
}

func find(n *html.Node, pred func(*html.Node) bool) *html.Node {
	if pred(n) {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if match := find(child, pred); match != nil {
			return match
		}
	}
	return nil
}

func textOf(n *html.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}
