// © 2025 Adam Young. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package site

import (
	"bytes"
	"context"
	"log/slog"

	"go.astrophena.name/base/logger"
	"go.swiftwithadam.com/site/internal/builderr"

	"github.com/gorilla/feeds"
)

const (
	feedTTL      = 250 // minutes
	feedMaxItems = 100
)

func (b *buildContext) emitFeed(ctx context.Context) error {
	if b.c.SkipFeed {
		logger.Info(ctx, "skipping feed")
		return nil
	}

	site := b.c.Site
	now := b.c.Now()
	feed := &feeds.Feed{
		Title:       site.Name,
		Link:        &feeds.Link{Href: site.URLFor("/")},
		Description: site.Description,
		Created:     now,
		Updated:     now,
	}

	for _, it := range b.snap.Items() {
		if !site.InFeed(it.SectionID) {
			continue
		}
		if len(feed.Items) == feedMaxItems {
			break
		}
		u := site.URLFor(it.Path)
		feed.Items = append(feed.Items, &feeds.Item{
			Title:       it.Title,
			Link:        &feeds.Link{Href: u},
			Id:          u,
			IsPermaLink: "true",
			Description: it.Description,
			Created:     it.Date,
			Content:     it.Body,
		})
	}

	rss := (&feeds.Rss{Feed: feed}).RssFeed()
	rss.Language = site.Language
	rss.Ttl = feedTTL

	var buf bytes.Buffer
	if err := feeds.WriteXML(rss, &buf); err != nil {
		return builderr.Render(b.c.FeedPath, err)
	}
	logger.Info(ctx, "built feed", slog.Int("items", len(feed.Items)))
	return b.writeFile(b.c.FeedPath, buf.Bytes())
}
