package transcript

import (
	"strings"

	"golang.org/x/net/html"
)

// ExtractHTMLText pulls the visible text out of an HTML transcript export.
// Each text node becomes its own line so block boundaries survive as line
// boundaries for CleanLine. Script and style bodies are skipped. On a parse
// error the raw input is returned unchanged; the generic markup rule in
// CleanLine still applies to it.
func ExtractHTMLText(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				b.WriteString(t)
				b.WriteByte('\n')
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.TrimSpace(b.String())
}
