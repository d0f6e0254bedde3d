// © 2025 Adam Young. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package site

import (
	"bytes"
	"context"
	"encoding/xml"
	"time"

	"go.swiftwithadam.com/site/internal/builderr"
)

const sitemapPath = "/sitemap.xml"

type urlset struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
	LastMod    string `xml:"lastmod,omitempty"`
}

func lastMod(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func (b *buildContext) emitSitemap(ctx context.Context) error {
	site := b.c.Site
	set := urlset{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	seen := make(map[string]bool)
	add := func(u sitemapURL) {
		if seen[u.Loc] {
			return
		}
		seen[u.Loc] = true
		set.URLs = append(set.URLs, u)
	}

	for _, sec := range b.snap.Sections() {
		u := sitemapURL{Loc: site.URLFor(sec.Path), ChangeFreq: "daily", Priority: "1.0"}
		if len(sec.Items) > 0 {
			u.LastMod = lastMod(sec.Items[0].Date)
		}
		add(u)
	}
	for _, it := range b.snap.Items() {
		add(sitemapURL{Loc: site.URLFor(it.Path), ChangeFreq: "monthly", Priority: "0.5", LastMod: lastMod(it.Date)})
	}
	for _, p := range b.snap.Pages() {
		add(sitemapURL{Loc: site.URLFor(p.Path), ChangeFreq: "monthly", Priority: "0.5"})
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return builderr.Render(sitemapPath, err)
	}
	buf.WriteByte('\n')
	return b.writeFile(sitemapPath, buf.Bytes())
}
