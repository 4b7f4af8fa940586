package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// Paragraph is one block-level text node of the normalized document,
// in document order.
type Paragraph struct {
	Text      string   // trimmed visible text
	BoldRuns  []string // trimmed text of each strong/b run
	ImageRefs []string // relationship ids of embedded images
}

// Document is the normalizer output consumed by the segmentation
// engine.
type Document struct {
	Title      string // first heading's trimmed text, "" when absent
	Paragraphs []Paragraph
	Rels       map[string]string // rId -> archive-relative media target
}

// Normalize converts raw .docx bytes into an HTML/DOM tree and flattens
// it to a paragraph sequence plus title candidates. The HTML round trip
// keeps the engine independent of the word-processing format: it only
// ever sees p/h1/h2/strong/img nodes.
func Normalize(data []byte) (*Document, error) {
	fragment, rels, err := convertToHTML(data)
	if err != nil {
		return nil, err
	}

	root, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return nil, err
	}

	doc := &Document{Rels: rels}
	titleSet := false

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "h1", "h2":
				if !titleSet {
					doc.Title = strings.TrimSpace(nodeText(n))
					titleSet = true
				}
				return
			case "p":
				doc.Paragraphs = append(doc.Paragraphs, Paragraph{
					Text:      strings.TrimSpace(nodeText(n)),
					BoldRuns:  boldRuns(n),
					ImageRefs: imageRefs(n),
				})
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return doc, nil
}

// nodeText concatenates all descendant text nodes.
func nodeText(n *html.Node) string {
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

// boldRuns collects the text of every strong/b descendant.
func boldRuns(n *html.Node) []string {
	var runs []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "strong" || n.Data == "b") {
			if t := strings.TrimSpace(nodeText(n)); t != "" {
				runs = append(runs, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return runs
}

// imageRefs collects data-rel-id attributes of img descendants.
func imageRefs(n *html.Node) []string {
	var refs []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "img" {
			for _, attr := range n.Attr {
				if attr.Key == "data-rel-id" && attr.Val != "" {
					refs = append(refs, attr.Val)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return refs
}
