// © 2025 Adam Young. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package website describes the static metadata of a site: where it lives,
// who writes it and which sections it has.
//
// A [Descriptor] is constructed once, either as a Go literal or from a
// Starlark file (see [LoadFile]), validated and then only read.
package website

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"regexp"
	"slices"
	"strings"

	"go.swiftwithadam.com/site/internal/builderr"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Possible errors, used in tests.
var (
	errURLInvalid        = errors.New("site URL must be absolute")
	errNameMissing       = errors.New("site name is required")
	errLanguageInvalid   = errors.New("invalid language code")
	errNoSections        = errors.New("at least one section must be declared")
	errSectionIDInvalid  = errors.New("section ID must be a lowercase slug")
	errSectionDuplicate  = errors.New("duplicate section ID")
	errFaviconIncomplete = errors.New("favicon needs both path and type")
	errFeedSection       = errors.New("feed includes undeclared section")
)

// Descriptor is the site-wide configuration.
type Descriptor struct {
	// URL is the canonical base URL of the site.
	URL *url.URL
	// Name is the site name, shown in the header and page titles.
	Name string
	// Description is used when a page doesn't have its own.
	Description string
	// Language is a BCP 47 language code, e.g. "en".
	Language string
	// Author is the name shown in the footer copyright line.
	Author        string
	TwitterHandle string
	GitHubHandle  string
	// AnalyticsID is a Google Analytics measurement ID. Optional.
	AnalyticsID string
	// ImagePath is the site logo and default social preview image. Optional.
	ImagePath string
	// Favicon is optional.
	Favicon *Favicon
	// Sections are navigational categories in the order they are shown.
	Sections []Section
	// FeedSections lists the sections whose items go into the RSS feed.
	FeedSections []string
}

// Section declares a site section.
type Section struct {
	ID string
	// Title is optional, the ID in title case is used when empty.
	Title string
}

// Favicon describes the site icon.
type Favicon struct {
	Path string
	Type string // MIME type, e.g. "image/png"
}

var sectionIDRe = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// Validate checks that d describes a buildable site.
func (d *Descriptor) Validate() error {
	if d.URL == nil || !d.URL.IsAbs() || d.URL.Host == "" {
		return builderr.Config("url", errURLInvalid)
	}
	if d.Name == "" {
		return builderr.Config("name", errNameMissing)
	}
	if _, err := language.Parse(d.Language); err != nil {
		return builderr.Config("language", fmt.Errorf("%w %q: %v", errLanguageInvalid, d.Language, err))
	}
	if len(d.Sections) == 0 {
		return builderr.Config("sections", errNoSections)
	}
	seen := make(map[string]bool)
	for _, s := range d.Sections {
		if !sectionIDRe.MatchString(s.ID) {
			return builderr.Config("sections", fmt.Errorf("%w: %q", errSectionIDInvalid, s.ID))
		}
		if seen[s.ID] {
			return builderr.Config("sections", fmt.Errorf("%w: %q", errSectionDuplicate, s.ID))
		}
		seen[s.ID] = true
	}
	if d.Favicon != nil && (d.Favicon.Path == "" || d.Favicon.Type == "") {
		return builderr.Config("favicon", errFaviconIncomplete)
	}
	for _, id := range d.FeedSections {
		if !seen[id] {
			return builderr.Config("feed_sections", fmt.Errorf("%w: %q", errFeedSection, id))
		}
	}
	return nil
}

// SectionIDs returns section IDs in declaration order.
func (d *Descriptor) SectionIDs() []string {
	ids := make([]string, 0, len(d.Sections))
	for _, s := range d.Sections {
		ids = append(ids, s.ID)
	}
	return ids
}

// HasSection reports whether the section id is declared.
func (d *Descriptor) HasSection(id string) bool {
	return slices.ContainsFunc(d.Sections, func(s Section) bool { return s.ID == id })
}

// SectionTitle returns the declared title of the section id.
func (d *Descriptor) SectionTitle(id string) string {
	for _, s := range d.Sections {
		if s.ID == id && s.Title != "" {
			return s.Title
		}
	}
	return cases.Title(language.English).String(id)
}

// InFeed reports whether items of the section id are published in the feed.
func (d *Descriptor) InFeed(id string) bool {
	return slices.Contains(d.FeedSections, id)
}

// URLFor returns the absolute URL of a site path. Full URLs are returned as
// is.
func (d *Descriptor) URLFor(p string) string {
	if isFullURL(p) {
		return p
	}
	u := *d.URL
	u.Path = path.Join("/", u.Path, p)
	if strings.HasSuffix(p, "/") && u.Path != "/" {
		u.Path += "/"
	}
	return u.String()
}

func isFullURL(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}
