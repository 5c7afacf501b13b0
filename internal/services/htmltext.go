package services

import (
	"strings"

	"golang.org/x/net/html"
)

// blockTags are elements that end a line when flattening HTML to text.
var blockTags = map[string]bool{
	"p": true, "div": true, "br": true, "li": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"ul": true, "ol": true, "blockquote": true, "tr": true,
}

// PlainText flattens WordPress-rendered HTML into readable terminal text:
// tags are dropped, entities decoded, block elements become line breaks
// and blank lines are removed.
func PlainText(rendered string) string {
	if strings.TrimSpace(rendered) == "" {
		return ""
	}

	root, err := html.Parse(strings.NewReader(rendered))
	if err != nil {
		// Parse only fails on reader errors, never on bad markup, but
		// degrade to the raw string anyway
		return strings.TrimSpace(rendered)
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
		case html.ElementNode:
			if n.Data == "script" || n.Data == "style" {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && blockTags[n.Data] {
			b.WriteString("\n")
		}
	}
	walk(root)

	return dropBlankLines(b.String())
}

func dropBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
