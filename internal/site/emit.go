// © 2025 Adam Young. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package site

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.astrophena.name/base/logger"
	"go.swiftwithadam.com/site/internal/builderr"
	"go.swiftwithadam.com/site/internal/content"
	"go.swiftwithadam.com/site/internal/markup"

	"github.com/otiai10/copy"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	mhtml "github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
	mjson "github.com/tdewolff/minify/v2/json"
	"golang.org/x/net/html"
)

type min struct {
	m *minify.M
}

func newMin() *min {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.Add("text/html", &mhtml.Minifier{
		KeepDocumentTags:    true,
		KeepDefaultAttrVals: true,
		KeepEndTags:         true,
	})
	m.AddFunc("application/javascript", js.Minify)
	m.AddFunc("application/json", mjson.Minify)

	return &min{m: m}
}

func (m *min) Bytes(mediaType string, b []byte) ([]byte, error) {
	return m.m.Bytes(mediaType, b)
}

// writeFile writes data to the site path p.
func (b *buildContext) writeFile(p string, data []byte) error {
	dst := filepath.Join(b.c.Dst, filepath.FromSlash(strings.TrimPrefix(p, "/")))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return builderr.IO(dst, err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return builderr.IO(dst, err)
	}
	b.written++
	return nil
}

// writeDocument writes the document for the site path p to p/index.html.
func (b *buildContext) writeDocument(p string, doc *html.Node) error {
	var buf bytes.Buffer
	if err := markup.Render(&buf, doc); err != nil {
		return builderr.Render(p, err)
	}
	out := buf.Bytes()
	if b.c.Env.Minify() {
		minified, err := b.min.Bytes("text/html", out)
		if err != nil {
			return builderr.Render(p, err)
		}
		out = minified
	}
	return b.writeFile(path.Join(p, "index.html"), out)
}

const robotsTxt = `User-agent: *
`

func (b *buildContext) copyResources(ctx context.Context) error {
	// Clean up after previous build.
	if _, err := os.Stat(b.c.Dst); err == nil {
		if err := os.RemoveAll(b.c.Dst); err != nil {
			return builderr.IO(b.c.Dst, err)
		}
	}
	if err := os.MkdirAll(b.c.Dst, 0o755); err != nil {
		return builderr.IO(b.c.Dst, err)
	}

	robots := robotsTxt + "Sitemap: " + b.c.Site.URLFor("/sitemap.xml") + "\n"
	if err := b.writeFile("/robots.txt", []byte(robots)); err != nil {
		return err
	}

	opts := copy.Options{
		Skip: func(fi os.FileInfo, src, dest string) (bool, error) {
			return isIgnorable(fi.Name()), nil
		},
	}

	resources := filepath.Join(b.c.Src, "resources")
	if _, err := os.Stat(resources); errors.Is(err, fs.ErrNotExist) {
		logger.Info(ctx, "no resources to copy", slog.String("dir", resources))
	} else if err != nil {
		return builderr.IO(resources, err)
	} else if err := copy.Copy(resources, b.c.Dst, opts); err != nil {
		return builderr.IO(resources, err)
	}

	for _, name := range b.c.Theme.Resources() {
		src := filepath.Join(b.c.Src, "theme", filepath.FromSlash(name))
		if err := copy.Copy(src, filepath.Join(b.c.Dst, filepath.FromSlash(name)), opts); err != nil {
			return builderr.IO(src, err)
		}
	}
	return nil
}

func isIgnorable(name string) bool {
	// Ignore files that look like Vim backups.
	if strings.HasSuffix(name, "~") {
		return true
	}
	return name == ".DS_Store" || name == ".gitignore"
}

func (b *buildContext) renderPages(ctx context.Context) error {
	r := b.c.Theme
	tc := b.themeContext()

	doc, err := r.Index(tc)
	if err != nil {
		return err
	}
	if err := b.writeDocument("/", doc); err != nil {
		return err
	}

	for _, sec := range b.snap.Sections() {
		doc, err := r.Section(tc, sec)
		if err != nil {
			return err
		}
		if err := b.writeDocument(sec.Path, doc); err != nil {
			return err
		}
	}

	for _, it := range b.snap.Items() {
		doc, err := r.Item(tc, it)
		if err != nil {
			return err
		}
		if err := b.writeDocument(it.Path, doc); err != nil {
			return err
		}
	}

	for _, p := range b.snap.Pages() {
		doc, err := r.Page(tc, p)
		if err != nil {
			return err
		}
		if err := b.writeDocument(p.Path, doc); err != nil {
			return err
		}
	}

	if !b.c.Tags {
		return nil
	}
	tags := b.snap.Tags()
	doc, err = r.TagList(tc, tags)
	if err != nil {
		return err
	}
	if err := b.writeDocument(content.TagListPath, doc); err != nil {
		return err
	}
	for _, tag := range tags {
		doc, err := r.TagDetail(tc, tag, b.snap.ItemsTagged(tag))
		if err != nil {
			return err
		}
		if err := b.writeDocument(tag.Path(), doc); err != nil {
			return err
		}
	}
	logger.Info(ctx, "rendered tag pages", slog.Int("tags", len(tags)))
	return nil
}
