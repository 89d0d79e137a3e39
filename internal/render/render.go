// Package render turns a draw into a self-contained HTML page.
//
// The page is assembled as an html.Node tree and serialized with
// html.Render, so names are always escaped and the theme CSS is kept as raw
// text inside the style element.
package render

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Title is used for both the document title and its heading.
const Title = "White Elephant"

// DefaultPath is the page written when no output is configured.
const DefaultPath = "white_elephant.html"

// TimestampLayout matches strftime "%m/%d/%Y at %H:%M:%S%p": a 24-hour clock
// followed by the AM/PM marker.
const TimestampLayout = "01/02/2006 at 15:04:05PM"

// Page holds everything that ends up in the rendered document.
type Page struct {
	Names   []string
	CSS     string
	DrawnAt time.Time
}

// FormatTimestamp formats t the way it appears on the page.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// Render writes the page as HTML to w.
func Render(w io.Writer, p Page) error {
	if err := html.Render(w, Document(p)); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

// WriteFile renders the page to path, replacing any existing file,
// and returns the path written.
func WriteFile(path string, p Page) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, p); err != nil {
		return "", err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write page: %w", err)
	}

	return path, nil
}

// Document builds the node tree for the page.
func Document(p Page) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(newline())

	root := container(atom.Html)
	appendLine(doc, root)

	head := container(atom.Head)
	appendLine(head, element(atom.Meta, html.Attribute{Key: "charset", Val: "UTF-8"}))
	appendLine(head, withText(element(atom.Title), Title))
	appendLine(head, withText(element(atom.Style, html.Attribute{Key: "type", Val: "text/css"}), p.CSS))
	appendLine(root, head)

	body := container(atom.Body)
	appendLine(body, withText(element(atom.H1), Title))

	list := container(atom.Ol)
	for _, name := range p.Names {
		appendLine(list, withText(element(atom.Li), name))
	}
	appendLine(body, list)

	appendLine(body, withText(element(atom.P), fmt.Sprintf("Names drawn on %s.", FormatTimestamp(p.DrawnAt))))
	appendLine(root, body)

	return doc
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

// container is an element whose children each start on their own line.
func container(a atom.Atom) *html.Node {
	n := element(a)
	n.AppendChild(newline())
	return n
}

func withText(n *html.Node, text string) *html.Node {
	if text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
	return n
}

func appendLine(parent, child *html.Node) {
	parent.AppendChild(child)
	parent.AppendChild(newline())
}

func newline() *html.Node {
	return &html.Node{Type: html.TextNode, Data: "\n"}
}
