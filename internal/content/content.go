// © 2025 Adam Young. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package content loads the Markdown sources of a site into a [Snapshot].

# Directory Structure

The content directory has the following layout:

	index.md             Optional metadata for the index page.
	about.md             Any other Markdown file at the root is a page.
	<section>/index.md   Optional metadata for the section page.
	<section>/post.md    Any other Markdown file in a section directory is an
	                     item of that section.

Every first-level directory must be named after a declared section.

# Front Matter

Each file starts with YAML front matter between '---' lines:

	---
	title: Hello, world!
	description: The first post.
	date: 2025-01-02 10:00
	tags: swift, concurrency
	---

A JSON object followed by an empty line is accepted too. Fields:

	title        Required for items and pages.
	description  Required for items and pages.
	date         Publication date, '2006-01-02 15:04' or '2006-01-02'.
	             Defaults to the file modification time.
	tags         A list or a comma-separated string. Each tag needs a letter
	             or digit.
	image        Social preview image path, optional.
	path         Overrides the last path element, optional.
	draft        Excluded from builds that don't want drafts.
*/
package content

import (
	"slices"
	"strings"
	"time"
	"unicode"
)

// Index holds the metadata of the site index page.
type Index struct {
	Title       string
	Description string
	Body        string
}

// Section is a declared site section with its items.
type Section struct {
	ID          string
	Title       string
	Description string
	Body        string
	// Path is the canonical path, e.g. "/swift".
	Path string
	// Items are sorted by date, newest first.
	Items []*Item
}

// Item is a dated article that belongs to a section.
type Item struct {
	SectionID   string
	Path        string // e.g. "/swift/actors"
	Title       string
	Description string
	Image       string
	Date        time.Time
	Tags        []Tag
	Body        string // rendered HTML
	Source      string // path to the source file
}

// Page is a standalone page outside of sections.
type Page struct {
	Path        string // e.g. "/about"
	Title       string
	Description string
	Image       string
	Body        string
	Source      string
}

// Tag is a label attached to items.
type Tag struct {
	Name string
}

// TagListPath is the canonical path of the page listing all tags.
const TagListPath = "/tags"

// Normalized returns the tag name as used in paths: lower case letters and
// digits, with spaces turned into dashes. Other characters are dropped, so
// "C#" and "CI/CD" become "c" and "cicd".
func (t Tag) Normalized() string {
	var sb strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(t.Name)) {
		switch {
		case unicode.IsSpace(r):
			sb.WriteByte('-')
		case unicode.IsLetter(r), unicode.IsDigit(r):
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Path returns the canonical path of the tag page.
func (t Tag) Path() string { return TagListPath + "/" + t.Normalized() }

// Snapshot is the loaded content of a site. It is not modified after [Load]
// returns.
type Snapshot struct {
	index    Index
	sections []*Section
	items    []*Item
	pages    []*Page
	tags     []Tag
	tagged   map[string][]*Item
}

// Index returns the index page metadata.
func (s *Snapshot) Index() Index { return s.index }

// Sections returns all declared sections in declaration order.
func (s *Snapshot) Sections() []*Section { return s.sections }

// Section returns the section with the given ID.
func (s *Snapshot) Section(id string) (*Section, bool) {
	i := slices.IndexFunc(s.sections, func(sec *Section) bool { return sec.ID == id })
	if i < 0 {
		return nil, false
	}
	return s.sections[i], true
}

// Items returns items of all sections, newest first.
func (s *Snapshot) Items() []*Item { return s.items }

// Pages returns all pages sorted by path.
func (s *Snapshot) Pages() []*Page { return s.pages }

// Tags returns all tags used by items, sorted by normalized name.
func (s *Snapshot) Tags() []Tag { return s.tags }

// ItemsTagged returns the items carrying tag, newest first.
func (s *Snapshot) ItemsTagged(tag Tag) []*Item { return s.tagged[tag.Normalized()] }

// Paths returns the canonical paths of all sections, items and pages.
func (s *Snapshot) Paths() []string {
	paths := make([]string, 0, len(s.sections)+len(s.items)+len(s.pages))
	for _, sec := range s.sections {
		paths = append(paths, sec.Path)
	}
	for _, it := range s.items {
		paths = append(paths, it.Path)
	}
	for _, p := range s.pages {
		paths = append(paths, p.Path)
	}
	return paths
}
