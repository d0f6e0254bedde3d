// © 2025 Adam Young. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package site builds https://swiftwithadam.com.

# Directory Structure

Site has the following directories:

	build      This is where the generated site will be placed by default.
	content    Markdown sources of the index, sections, items and pages.
	           See package content for the layout and front matter.
	resources  Files in this directory will be copied verbatim to the
	           generated site.
	theme      Files the theme needs, e.g. styles.css. They are copied to
	           the root of the generated site.

# Pipeline

Build runs these stages in order and stops at the first failure:

	LoadContent    Loads and validates the content tree.
	CopyResources  Recreates the output directory and copies resources.
	RenderPages    Renders the index, sections, items and pages.
	EmitFeed       Writes the RSS feed of the feed sections.
	EmitSitemap    Writes sitemap.xml.

Output already written by earlier stages is left in place when a later stage
fails.
*/
package site

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"go.astrophena.name/base/logger"
	"go.swiftwithadam.com/site/internal/blog"
	"go.swiftwithadam.com/site/internal/content"
	"go.swiftwithadam.com/site/internal/env"
	"go.swiftwithadam.com/site/internal/highlight"
	"go.swiftwithadam.com/site/internal/theme"
	"go.swiftwithadam.com/site/internal/website"
)

// Config represents a build configuration.
type Config struct {
	// Site describes the site. If nil, the swiftwithadam.com descriptor is
	// used.
	Site *website.Descriptor
	// Src is the directory where to read files from. If empty, uses the current
	// directory.
	Src string
	// Dst is the directory where to write files. If empty, uses the build
	// directory.
	Dst string
	// Env is the build environment. It determines if drafts are included and
	// if HTML is minified.
	Env env.Env
	// FeedPath is where the RSS feed is written. If empty, uses /feed.rss.
	FeedPath string
	// SkipFeed determines if the feed for site shouldn't be built.
	SkipFeed bool
	// Tags determines if tag pages are rendered.
	Tags bool
	// RequireDates makes items without a date an error.
	RequireDates bool
	// Theme renders pages. If nil, uses the coding theme.
	Theme theme.Renderer
	// Now returns the current time. If nil, uses time.Now.
	Now func() time.Time
}

func (c *Config) setDefaults() {
	if c.Site == nil {
		c.Site = blog.Descriptor()
	}

	if c.Src == "" {
		c.Src = filepath.Join(".")
	}

	if c.Dst == "" {
		c.Dst = filepath.Join(".", "build")
	}

	if c.FeedPath == "" {
		c.FeedPath = "/feed.rss"
	}

	if c.Theme == nil {
		c.Theme = theme.Coding()
	}

	if c.Now == nil {
		c.Now = time.Now
	}
}

// Stage is a step of the build pipeline.
type Stage int

// Build stages, in the order they run.
const (
	LoadContent Stage = iota
	CopyResources
	RenderPages
	EmitFeed
	EmitSitemap
	Done
)

var stageNames = [...]string{
	LoadContent:   "LoadContent",
	CopyResources: "CopyResources",
	RenderPages:   "RenderPages",
	EmitFeed:      "EmitFeed",
	EmitSitemap:   "EmitSitemap",
	Done:          "Done",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("Stage(%d)", int(s))
	}
	return stageNames[s]
}

// StageError is returned by [Build] when a stage fails. Err is a
// [builderr.Error].
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Build builds a site based on the provided [Config].
func Build(ctx context.Context, c *Config) error {
	c.setDefaults()
	if err := c.Site.Validate(); err != nil {
		logger.Error(ctx, "invalid site configuration", slog.Any("err", err))
		return err
	}

	b := newBuildContext(c)
	start := time.Now()

	stages := []struct {
		stage Stage
		run   func(context.Context) error
	}{
		{LoadContent, b.loadContent},
		{CopyResources, b.copyResources},
		{RenderPages, b.renderPages},
		{EmitFeed, b.emitFeed},
		{EmitSitemap, b.emitSitemap},
	}
	for _, s := range stages {
		if err := s.run(ctx); err != nil {
			logger.Error(ctx, "build failed",
				slog.String("stage", s.stage.String()),
				slog.Any("err", err),
			)
			return &StageError{Stage: s.stage, Err: err}
		}
	}

	logger.Info(ctx, "build finished",
		slog.String("dst", c.Dst),
		slog.Int("files", b.written),
		slog.Duration("took", time.Since(start)),
	)
	return nil
}

type buildContext struct {
	c       *Config
	snap    *content.Snapshot
	min     *min
	written int // number of files written
}

func newBuildContext(c *Config) *buildContext {
	return &buildContext{
		c:   c,
		min: newMin(),
	}
}

func (b *buildContext) loadContent(ctx context.Context) error {
	snap, err := content.Load(filepath.Join(b.c.Src, "content"), b.c.Site, content.Options{
		Drafts:       b.c.Env.Drafts(),
		RequireDates: b.c.RequireDates,
		Tags:         b.c.Tags,
		Highlighter:  highlight.New(""),
	})
	if err != nil {
		return err
	}
	b.snap = snap
	logger.Info(ctx, "loaded content",
		slog.Int("sections", len(snap.Sections())),
		slog.Int("items", len(snap.Items())),
		slog.Int("pages", len(snap.Pages())),
	)
	return nil
}

func (b *buildContext) themeContext() *theme.Context {
	tc := &theme.Context{
		Site:    b.c.Site,
		Content: b.snap,
		Now:     b.c.Now(),
	}
	if !b.c.SkipFeed {
		tc.FeedPath = b.c.FeedPath
	}
	return tc
}
