// © 2025 Adam Young. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package theme renders site content into HTML documents.
package theme

import (
	"errors"
	"time"

	"go.swiftwithadam.com/site/internal/content"
	"go.swiftwithadam.com/site/internal/website"

	"golang.org/x/net/html"
)

// Possible errors, used in tests.
var (
	errTitleMissing   = errors.New("item has no title")
	errSectionUnknown = errors.New("item belongs to an undeclared section")
)

// Renderer turns content into documents. Every method returns a complete
// document, or an error from the render category of [builderr].
type Renderer interface {
	Index(c *Context) (*html.Node, error)
	Section(c *Context, s *content.Section) (*html.Node, error)
	Item(c *Context, it *content.Item) (*html.Node, error)
	Page(c *Context, p *content.Page) (*html.Node, error)
	TagList(c *Context, tags []content.Tag) (*html.Node, error)
	TagDetail(c *Context, tag content.Tag, items []*content.Item) (*html.Node, error)
	// Resources lists files, relative to the theme directory, that are
	// copied to the root of the output.
	Resources() []string
}

// Context is what every render call can see.
type Context struct {
	Site    *website.Descriptor
	Content *content.Snapshot
	// Now is used for the copyright year.
	Now time.Time
	// FeedPath is the path of the RSS feed. No feed link is rendered when
	// empty.
	FeedPath string
	// Stylesheets default to "/styles.css".
	Stylesheets []string
}

func (c *Context) stylesheets() []string {
	if len(c.Stylesheets) == 0 {
		return []string{"/styles.css"}
	}
	return c.Stylesheets
}

// section returns the loaded section or nil if id isn't declared.
func (c *Context) section(id string) *content.Section {
	if c.Content == nil {
		return nil
	}
	sec, ok := c.Content.Section(id)
	if !ok {
		return nil
	}
	return sec
}
