// © 2025 Adam Young. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package markup builds HTML node trees.
//
// Trees are composed from [Node] values that attach themselves, their
// attributes or their children to a parent element, so a page can be written
// as nested calls that mirror the resulting document:
//
//	markup.Build("header",
//		markup.El("a", markup.Attr("href", "/"), markup.Class("site-name"), markup.Text(name)),
//		markup.If(len(sections) > 1, nav),
//	)
//
// Children keep the order in which they are passed.
package markup

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Node attaches something to a parent element. A nil Node attaches nothing.
type Node func(parent *html.Node)

// Build returns a new element with the given tag and children.
func Build(tag string, children ...Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	for _, c := range children {
		if c != nil {
			c(n)
		}
	}
	return n
}

// El is like [Build], but returns the element as a child of some parent.
func El(tag string, children ...Node) Node {
	return func(p *html.Node) { p.AppendChild(Build(tag, children...)) }
}

// Append attaches an already built element.
func Append(n *html.Node) Node {
	if n == nil {
		return nil
	}
	return func(p *html.Node) { p.AppendChild(n) }
}

// Attr sets an attribute.
func Attr(key, val string) Node {
	return func(p *html.Node) {
		p.Attr = append(p.Attr, html.Attribute{Key: key, Val: val})
	}
}

// Class sets the class attribute. An empty class is omitted.
func Class(class string) Node {
	if class == "" {
		return nil
	}
	return Attr("class", class)
}

// Text is escaped text content.
func Text(s string) Node {
	return func(p *html.Node) {
		p.AppendChild(&html.Node{Type: html.TextNode, Data: s})
	}
}

// Raw is trusted HTML, parsed in the context of the parent element.
func Raw(s string) Node {
	return func(p *html.Node) {
		nodes, err := html.ParseFragment(strings.NewReader(s), p)
		if err != nil {
			// Reading from a strings.Reader never fails.
			panic(err)
		}
		for _, n := range nodes {
			p.AppendChild(n)
		}
	}
}

// Group attaches all nodes in order.
func Group(nodes ...Node) Node {
	return func(p *html.Node) {
		for _, n := range nodes {
			if n != nil {
				n(p)
			}
		}
	}
}

// If returns n when cond is true.
func If(cond bool, n Node) Node {
	if !cond {
		return nil
	}
	return n
}

// Map attaches fn(item) for every item.
func Map[T any](items []T, fn func(T) Node) Node {
	nodes := make([]Node, 0, len(items))
	for _, it := range items {
		nodes = append(nodes, fn(it))
	}
	return Group(nodes...)
}

// Document returns an HTML document with a doctype and a root element in the
// given language.
func Document(lang string, children ...Node) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(Build("html", append([]Node{If(lang != "", Attr("lang", lang))}, children...)...))
	return doc
}

// Render writes the tree rooted at n to w.
func Render(w io.Writer, n *html.Node) error {
	return html.Render(w, n)
}

// String renders the tree rooted at n.
func String(n *html.Node) (string, error) {
	var sb strings.Builder
	if err := Render(&sb, n); err != nil {
		return "", err
	}
	return sb.String(), nil
}
