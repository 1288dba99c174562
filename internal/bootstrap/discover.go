package bootstrap

import (
	"fmt"
	"io"
	"strings"

	"ggmap/internal/models"

	"golang.org/x/net/html"
)

// DefaultContainerClass marks elements that host a map.
const DefaultContainerClass = "gg-map"

// Container is a map container found in a page.
type Container struct {
	Index   int            `json:"index"`
	ID      string         `json:"id,omitempty"`
	Dataset models.Dataset `json:"dataset"`
}

// Discover returns every element carrying class, in document order.
func Discover(r io.Reader, class string) ([]Container, error) {
	if class == "" {
		class = DefaultContainerClass
	}
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: failed to parse page: %w", err)
	}

	var containers []Container
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, class) {
			containers = append(containers, Container{
				Index:   len(containers),
				ID:      getAttr(n, "id"),
				Dataset: models.DatasetFromAttributes(func(key string) string { return getAttr(n, dataAttr(key)) }),
			})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return containers, nil
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(getAttr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// dataAttr maps a dataset key to its attribute name: openIdParam becomes
// data-open-id-param.
func dataAttr(key string) string {
	var b strings.Builder
	b.WriteString("data-")
	for _, r := range key {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
