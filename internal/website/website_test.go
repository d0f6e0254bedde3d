// © 2025 Adam Young. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package website

import (
	"context"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"go.astrophena.name/base/testutil"
	"go.swiftwithadam.com/site/internal/builderr"
)

func testDescriptor() *Descriptor {
	return &Descriptor{
		URL:         &url.URL{Scheme: "https", Host: "example.com"},
		Name:        "Example",
		Description: "An example site",
		Language:    "en",
		Author:      "Jane Doe",
		Sections: []Section{
			{ID: "swift"},
			{ID: "architecture", Title: "Software Architecture"},
			{ID: "tooling"},
		},
		FeedSections: []string{"swift", "tooling"},
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]struct {
		modify  func(d *Descriptor)
		wantErr error
	}{
		"valid": {
			modify: func(d *Descriptor) {},
		},
		"relative URL": {
			modify:  func(d *Descriptor) { d.URL = &url.URL{Path: "/blog"} },
			wantErr: errURLInvalid,
		},
		"missing URL": {
			modify:  func(d *Descriptor) { d.URL = nil },
			wantErr: errURLInvalid,
		},
		"missing name": {
			modify:  func(d *Descriptor) { d.Name = "" },
			wantErr: errNameMissing,
		},
		"bad language": {
			modify:  func(d *Descriptor) { d.Language = "not a language" },
			wantErr: errLanguageInvalid,
		},
		"no sections": {
			modify:  func(d *Descriptor) { d.Sections = nil },
			wantErr: errNoSections,
		},
		"duplicate section": {
			modify:  func(d *Descriptor) { d.Sections = append(d.Sections, Section{ID: "swift"}) },
			wantErr: errSectionDuplicate,
		},
		"section ID with spaces": {
			modify:  func(d *Descriptor) { d.Sections[0].ID = "Swift Stuff" },
			wantErr: errSectionIDInvalid,
		},
		"favicon without type": {
			modify:  func(d *Descriptor) { d.Favicon = &Favicon{Path: "/favicon.png"} },
			wantErr: errFaviconIncomplete,
		},
		"feed with unknown section": {
			modify:  func(d *Descriptor) { d.FeedSections = []string{"cooking"} },
			wantErr: errFeedSection,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			d := testDescriptor()
			tc.modify(d)
			err := d.Validate()

			if err == nil {
				if tc.wantErr != nil {
					t.Fatalf("must fail with error: %v", tc.wantErr)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("got error: %v, want %v", err, tc.wantErr)
			}
			if !builderr.Is(err, builderr.CategoryConfig) {
				t.Fatalf("want config error, got %v", err)
			}
		})
	}
}

func TestSectionTitle(t *testing.T) {
	d := testDescriptor()
	testutil.AssertEqual(t, d.SectionTitle("swift"), "Swift")
	testutil.AssertEqual(t, d.SectionTitle("architecture"), "Software Architecture")
	testutil.AssertEqual(t, d.SectionIDs(), []string{"swift", "architecture", "tooling"})
	testutil.AssertEqual(t, d.HasSection("tooling"), true)
	testutil.AssertEqual(t, d.HasSection("cooking"), false)
	testutil.AssertEqual(t, d.InFeed("architecture"), false)
}

func TestURLFor(t *testing.T) {
	cases := map[string]struct {
		base *url.URL
		in   string
		want string
	}{
		"root":          {&url.URL{Scheme: "https", Host: "example.com"}, "/", "https://example.com/"},
		"section":       {&url.URL{Scheme: "https", Host: "example.com"}, "/swift", "https://example.com/swift"},
		"trailing":      {&url.URL{Scheme: "https", Host: "example.com"}, "/tags/", "https://example.com/tags/"},
		"base path":     {&url.URL{Scheme: "https", Host: "example.com", Path: "/blog"}, "/swift/hello", "https://example.com/blog/swift/hello"},
		"full URL":      {&url.URL{Scheme: "https", Host: "example.com"}, "https://cdn.example.com/a.png", "https://cdn.example.com/a.png"},
		"relative path": {&url.URL{Scheme: "https", Host: "example.com"}, "images/logo.svg", "https://example.com/images/logo.svg"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			d := &Descriptor{URL: tc.base}
			testutil.AssertEqual(t, d.URLFor(tc.in), tc.want)
		})
	}
}

const siteStar = `
url = "https://swiftwithadam.com"
name = "Swift with Adam"
description = "Articles on everything you need to know about Swift"
language = "en"
author = "Adam Young"
twitter = "adamayoung"
github = "adamayoung"
analytics_id = "G-VJ2DFPZ6Z9"
image = "/images/swift_logo.svg"
favicon = ("/images/favicon.png", "image/png")
sections = [("swift", "Swift"), "architecture", "tooling"]
feed_sections = ["swift", "tooling"]
print("loaded %d sections" % len(sections))
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.star")
	if err := os.WriteFile(path, []byte(siteStar), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := LoadFile(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, d.URL.String(), "https://swiftwithadam.com")
	testutil.AssertEqual(t, d.Name, "Swift with Adam")
	testutil.AssertEqual(t, d.AnalyticsID, "G-VJ2DFPZ6Z9")
	testutil.AssertEqual(t, *d.Favicon, Favicon{Path: "/images/favicon.png", Type: "image/png"})
	testutil.AssertEqual(t, d.Sections, []Section{
		{ID: "swift", Title: "Swift"},
		{ID: "architecture"},
		{ID: "tooling"},
	})
	testutil.AssertEqual(t, d.FeedSections, []string{"swift", "tooling"})
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]struct {
		src     string
		wantErr error
	}{
		"syntax error": {
			src: `url = `,
		},
		"wrong type": {
			src:     "url = \"https://example.com\"\nname = 42\nlanguage = \"en\"\nsections = [\"a\"]\n",
			wantErr: errStarlarkType,
		},
		"bad section tuple": {
			src:     "url = \"https://example.com\"\nname = \"x\"\nlanguage = \"en\"\nsections = [(\"a\",)]\n",
			wantErr: errStarlarkType,
		},
		"invalid descriptor": {
			src:     "url = \"https://example.com\"\nname = \"x\"\nlanguage = \"en\"\nsections = []\n",
			wantErr: errNoSections,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(context.Background(), "site.star", []byte(tc.src))
			if err == nil {
				t.Fatal("want error")
			}
			if !builderr.Is(err, builderr.CategoryConfig) {
				t.Fatalf("want config error, got %v", err)
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("got error %v, want %v", err, tc.wantErr)
			}
		})
	}
}
