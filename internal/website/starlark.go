// © 2025 Adam Young. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package website

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"

	"go.astrophena.name/base/logger"
	"go.swiftwithadam.com/site/internal/builderr"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var errStarlarkType = errors.New("unexpected value type")

// LoadFile reads a descriptor from a Starlark file, conventionally named
// site.star:
//
//	url = "https://swiftwithadam.com"
//	name = "Swift with Adam"
//	description = "Articles on everything you need to know about Swift"
//	language = "en"
//	author = "Adam Young"
//	twitter = "adamayoung"
//	github = "adamayoung"
//	analytics_id = "G-VJ2DFPZ6Z9"
//	image = "/images/swift_logo.svg"
//	favicon = ("/images/favicon.png", "image/png")
//	sections = [("swift", "Swift"), ("architecture", "Architecture"), "tooling"]
//	feed_sections = ["swift", "tooling"]
//
// Only url, name, language and sections are required. The returned
// descriptor is validated.
func LoadFile(ctx context.Context, path string) (*Descriptor, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, builderr.Config(path, err)
	}
	return Load(ctx, path, src)
}

// Load is like [LoadFile], but reads the Starlark source from src.
func Load(ctx context.Context, filename string, src []byte) (*Descriptor, error) {
	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			logger.Info(ctx, msg, slog.String("file", filename))
		},
	}
	globals, err := starlark.ExecFileOptions(&syntax.FileOptions{}, thread, filename, src, nil)
	if err != nil {
		return nil, builderr.Config(filename, err)
	}

	dec := &decoder{globals: globals}
	d := &Descriptor{
		Name:          dec.str("name"),
		Description:   dec.str("description"),
		Language:      dec.str("language"),
		Author:        dec.str("author"),
		TwitterHandle: dec.str("twitter"),
		GitHubHandle:  dec.str("github"),
		AnalyticsID:   dec.str("analytics_id"),
		ImagePath:     dec.str("image"),
	}
	if raw := dec.str("url"); raw != "" {
		u, err := url.Parse(raw)
		if err != nil {
			return nil, builderr.Config(filename, err)
		}
		d.URL = u
	}
	if fav := dec.strings("favicon"); fav != nil {
		if len(fav) != 2 {
			dec.fail("favicon", "(path, type) pair", len(fav))
		} else {
			d.Favicon = &Favicon{Path: fav[0], Type: fav[1]}
		}
	}
	d.Sections = dec.sections("sections")
	d.FeedSections = dec.strings("feed_sections")
	if dec.err != nil {
		return nil, builderr.Config(filename, dec.err)
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// decoder converts Starlark globals to Go values. It keeps the first error.
type decoder struct {
	globals starlark.StringDict
	err     error
}

func (dec *decoder) fail(name, want string, got any) {
	if dec.err == nil {
		dec.err = fmt.Errorf("%s: %w: want %s, got %v", name, errStarlarkType, want, got)
	}
}

func (dec *decoder) lookup(name string) (starlark.Value, bool) {
	v, ok := dec.globals[name]
	if !ok || v == starlark.None {
		return nil, false
	}
	return v, true
}

func (dec *decoder) str(name string) string {
	v, ok := dec.lookup(name)
	if !ok {
		return ""
	}
	s, ok := starlark.AsString(v)
	if !ok {
		dec.fail(name, "string", v.Type())
	}
	return s
}

func (dec *decoder) strings(name string) []string {
	v, ok := dec.lookup(name)
	if !ok {
		return nil
	}
	seq, ok := v.(starlark.Indexable)
	if !ok {
		dec.fail(name, "list or tuple", v.Type())
		return nil
	}
	out := make([]string, 0, seq.Len())
	for i := range seq.Len() {
		s, ok := starlark.AsString(seq.Index(i))
		if !ok {
			dec.fail(name, "string element", seq.Index(i).Type())
			return nil
		}
		out = append(out, s)
	}
	return out
}

func (dec *decoder) sections(name string) []Section {
	v, ok := dec.lookup(name)
	if !ok {
		return nil
	}
	seq, ok := v.(starlark.Indexable)
	if !ok {
		dec.fail(name, "list", v.Type())
		return nil
	}
	var sections []Section
	for i := range seq.Len() {
		switch el := seq.Index(i).(type) {
		case starlark.String:
			sections = append(sections, Section{ID: string(el)})
		case starlark.Tuple:
			if el.Len() != 2 {
				dec.fail(name, "(id, title) tuple", el)
				return nil
			}
			id, okID := starlark.AsString(el.Index(0))
			title, okTitle := starlark.AsString(el.Index(1))
			if !okID || !okTitle {
				dec.fail(name, "(id, title) tuple of strings", el)
				return nil
			}
			sections = append(sections, Section{ID: id, Title: title})
		default:
			dec.fail(name, "string or (id, title) tuple", el.Type())
			return nil
		}
	}
	return sections
}
