// © 2025 Adam Young. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package theme

import (
	"go.swiftwithadam.com/site/internal/builderr"
	"go.swiftwithadam.com/site/internal/content"
	m "go.swiftwithadam.com/site/internal/markup"
	"go.swiftwithadam.com/site/internal/website"

	"golang.org/x/net/html"
)

type coding struct{}

// Coding returns the theme of swiftwithadam.com: a header with section
// navigation, lists of dated items and a footer with social links.
func Coding() Renderer { return coding{} }

func (coding) Resources() []string { return []string{"styles.css"} }

func (coding) document(c *Context, loc location, selected string, main ...m.Node) *html.Node {
	return m.Document(c.Site.Language,
		head(c, loc),
		m.El("body",
			header(c, selected),
			m.El("main", main...),
			footer(c),
		),
	)
}

func (t coding) Index(c *Context) (*html.Node, error) {
	var (
		index content.Index
		items []*content.Item
	)
	if c.Content != nil {
		index, items = c.Content.Index(), c.Content.Items()
	}
	list, err := itemList(c, items)
	if err != nil {
		return nil, err
	}
	loc := location{path: "/", title: index.Title, description: index.Description}
	return t.document(c, loc, "", list), nil
}

func (t coding) Section(c *Context, s *content.Section) (*html.Node, error) {
	list, err := itemList(c, s.Items)
	if err != nil {
		return nil, err
	}
	loc := location{path: s.Path, title: s.Title, description: s.Description}
	return t.document(c, loc, s.ID,
		m.El("h1", m.Text(s.Title)),
		list,
	), nil
}

func (t coding) Item(c *Context, it *content.Item) (*html.Node, error) {
	sec, err := checkItem(c, it)
	if err != nil {
		return nil, err
	}
	loc := location{path: it.Path, title: it.Title, description: it.Description, image: it.Image}
	return t.document(c, loc, it.SectionID,
		m.El("article",
			m.El("p", m.Class("item-eyebrow"), m.Text(sec.Title)),
			m.El("p", m.Class("item-date"), m.Text(FormatDate(DateOnly, it.Date))),
			m.El("h1", m.Text(it.Title)),
			m.El("div", m.Class("content"), m.Raw(it.Body)),
		),
	), nil
}

func (t coding) Page(c *Context, p *content.Page) (*html.Node, error) {
	loc := location{path: p.Path, title: p.Title, description: p.Description, image: p.Image}
	return t.document(c, loc, "", m.Raw(p.Body)), nil
}

func (t coding) TagList(c *Context, tags []content.Tag) (*html.Node, error) {
	loc := location{path: content.TagListPath, title: "Tags"}
	return t.document(c, loc, "",
		m.El("h1", m.Text("Browse all tags")),
		m.El("ul", m.Class("all-tags"), m.Map(tags, func(tag content.Tag) m.Node {
			return m.El("li", m.Class("tag"), m.El("a", m.Attr("href", tag.Path()), m.Text(tag.Name)))
		})),
	), nil
}

func (t coding) TagDetail(c *Context, tag content.Tag, items []*content.Item) (*html.Node, error) {
	list, err := itemList(c, items)
	if err != nil {
		return nil, err
	}
	loc := location{path: tag.Path(), title: tag.Name}
	return t.document(c, loc, "",
		m.El("h1", m.Text("Tagged with "), m.El("span", m.Class("tag"), m.Text(tag.Name))),
		m.El("a", m.Class("browse-all"), m.Attr("href", content.TagListPath), m.Text("Browse all tags")),
		list,
	), nil
}

// checkItem returns the section of it, or an error if it can't be rendered.
func checkItem(c *Context, it *content.Item) (*content.Section, error) {
	if it.Title == "" {
		return nil, builderr.Render(it.Path, errTitleMissing)
	}
	sec := c.section(it.SectionID)
	if sec == nil || !c.Site.HasSection(it.SectionID) {
		return nil, builderr.Render(it.Path, errSectionUnknown)
	}
	return sec, nil
}

func itemList(c *Context, items []*content.Item) (m.Node, error) {
	entries := make([]m.Node, 0, len(items))
	for _, it := range items {
		sec, err := checkItem(c, it)
		if err != nil {
			return nil, err
		}
		entries = append(entries, m.El("li", m.El("article",
			m.El("p", m.Class("item-eyebrow"), m.Text(sec.Title)),
			m.El("p", m.Class("item-date"), m.Text(FormatDate(DateOnly, it.Date))),
			m.El("h1", m.El("a", m.Attr("href", it.Path), m.Text(it.Title))),
			m.El("p", m.Text(it.Description)),
		)))
	}
	return m.El("ul", m.Class("item-list"), m.Group(entries...)), nil
}

func header(c *Context, selected string) m.Node {
	site := c.Site
	return m.El("header",
		m.If(site.ImagePath != "", m.El("img", m.Attr("src", site.ImagePath), m.Class("logo"))),
		m.El("a", m.Attr("href", "/"), m.Class("site-name"), m.Text(site.Name)),
		m.If(len(site.Sections) > 1, m.El("nav", m.El("ul",
			m.Map(site.Sections, func(s website.Section) m.Node {
				title := site.SectionTitle(s.ID)
				if sec := c.section(s.ID); sec != nil {
					title = sec.Title
				}
				var class string
				if s.ID == selected {
					class = "selected"
				}
				return m.El("li", m.El("a", m.Attr("href", "/"+s.ID), m.Class(class), m.Text(title)))
			}),
		))),
	)
}

func footer(c *Context) m.Node {
	site := c.Site
	return m.El("footer",
		m.El("p",
			m.Text("Follow me on "),
			m.El("a", m.Attr("href", "https://twitter.com/"+site.TwitterHandle), m.Text("Twitter")),
			m.Text(" or "),
			m.El("a", m.Attr("href", "https://github.com/"+site.GitHubHandle), m.Text("GitHub")),
			m.Text("."),
		),
		m.El("p", m.Text(site.Author+" © "+FormatDate(Year, c.Now)+". All rights reserved.")),
	)
}
