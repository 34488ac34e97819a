package obfuscate

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Scan parses an HTML page and returns a state record for every element that
// carries AttrEncoded, in document order.
func Scan(r io.Reader) ([]*Element, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	var elements []*Element
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if el, ok := elementFromNode(n); ok {
				elements = append(elements, el)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return elements, nil
}

func elementFromNode(n *html.Node) (*Element, bool) {
	el := &Element{}
	found := false
	for _, a := range n.Attr {
		switch a.Key {
		case AttrEncoded:
			el.Encoded = a.Val
			found = true
		case AttrLink:
			el.LinkTarget = true
		case AttrShowText:
			el.ShowText = true
		case "href":
			el.Href = a.Val
		}
	}
	if !found {
		return nil, false
	}
	el.Text = strings.TrimSpace(textContent(n))
	return el, true
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
