// © 2025 Adam Young. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package highlight adds syntax highlighting to code blocks of rendered
// Markdown.
package highlight

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/alecthomas/chroma/v2"
	chtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Highlighter replaces the contents of fenced code blocks that declare a
// language with class-annotated tokens. Colors are left to the stylesheet.
type Highlighter struct {
	f *chtml.Formatter
}

// New returns a Highlighter whose token classes start with classPrefix.
func New(classPrefix string) *Highlighter {
	return &Highlighter{
		f: chtml.New(
			chtml.WithClasses(true),
			chtml.ClassPrefix(classPrefix),
			chtml.PreventSurroundingPre(true),
		),
	}
}

// HTML highlights every <pre><code class="language-*"> element in the HTML
// fragment. Blocks in unknown languages are left as they are.
func (h *Highlighter) HTML(fragment string) (string, error) {
	if !strings.Contains(fragment, "language-") {
		return fragment, nil
	}

	root := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return "", err
	}
	for _, n := range nodes {
		root.AppendChild(n)
	}

	var herr error
	goquery.NewDocumentFromNode(root).Find(`pre > code[class*="language-"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		lexer := lexers.Get(language(s.AttrOr("class", "")))
		if lexer == nil {
			return true
		}
		it, err := chroma.Coalesce(lexer).Tokenise(nil, s.Text())
		if err != nil {
			herr = err
			return false
		}
		var buf strings.Builder
		if err := h.f.Format(&buf, styles.Fallback, it); err != nil {
			herr = err
			return false
		}
		s.SetHtml(buf.String())
		return true
	})
	if herr != nil {
		return "", herr
	}

	var out strings.Builder
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&out, c); err != nil {
			return "", err
		}
	}
	return out.String(), nil
}

func language(class string) string {
	for _, c := range strings.Fields(class) {
		if lang, ok := strings.CutPrefix(c, "language-"); ok {
			return lang
		}
	}
	return ""
}
