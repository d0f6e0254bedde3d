// © 2025 Adam Young. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package theme

import (
	"fmt"

	m "go.swiftwithadam.com/site/internal/markup"
)

// location is anything that gets its own document.
type location struct {
	path        string
	title       string
	description string
	image       string // optional, overrides the site image
}

const analyticsSetup = `
window.dataLayer = window.dataLayer || [];
function gtag(){dataLayer.push(arguments);}
gtag('js', new Date());

gtag('config', '%s');
`

// head returns the document head of loc.
func head(c *Context, loc location) m.Node {
	site := c.Site

	title := site.Name
	if loc.title != "" {
		title = loc.title + " | " + site.Name
	}
	description := loc.description
	if description == "" {
		description = site.Description
	}
	card := "summary"
	if loc.image != "" {
		card = "summary_large_image"
	}
	image := loc.image
	if image == "" {
		image = site.ImagePath
	}
	canonical := site.URLFor(loc.path)
	var favicon m.Node
	if site.Favicon != nil {
		favicon = m.El("link", m.Attr("rel", "shortcut icon"), m.Attr("href", site.Favicon.Path), m.Attr("type", site.Favicon.Type))
	}

	return m.El("head",
		m.If(site.AnalyticsID != "", m.Group(
			m.El("script", m.Attr("async", ""), m.Attr("src", "https://www.googletagmanager.com/gtag/js?id="+site.AnalyticsID)),
			m.El("script", m.Text(fmt.Sprintf(analyticsSetup, site.AnalyticsID))),
		)),
		m.El("meta", m.Attr("charset", "UTF-8")),
		meta("property", "og:site_name", site.Name),
		m.El("link", m.Attr("rel", "canonical"), m.Attr("href", canonical)),
		meta("name", "twitter:url", canonical),
		meta("property", "og:url", canonical),
		m.El("title", m.Text(title)),
		meta("name", "twitter:title", title),
		meta("property", "og:title", title),
		meta("name", "description", description),
		meta("name", "twitter:description", description),
		meta("property", "og:description", description),
		meta("name", "twitter:card", card),
		m.Map(c.stylesheets(), func(href string) m.Node {
			return m.El("link", m.Attr("rel", "stylesheet"), m.Attr("href", href), m.Attr("type", "text/css"))
		}),
		meta("name", "viewport", "width=device-width, initial-scale=1.0"),
		favicon,
		m.If(c.FeedPath != "", m.El("link",
			m.Attr("rel", "alternate"),
			m.Attr("href", c.FeedPath),
			m.Attr("type", "application/rss+xml"),
			m.Attr("title", "Subscribe to "+site.Name),
		)),
		m.If(image != "", m.Group(
			meta("name", "twitter:image", site.URLFor(image)),
			meta("property", "og:image", site.URLFor(image)),
		)),
	)
}

func meta(attr, key, value string) m.Node {
	return m.El("meta", m.Attr(attr, key), m.Attr("content", value))
}
