// © 2025 Adam Young. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package content

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"go.swiftwithadam.com/site/internal/builderr"
	"go.swiftwithadam.com/site/internal/highlight"
	"go.swiftwithadam.com/site/internal/website"

	"github.com/adrg/frontmatter"
	"rsc.io/markdown"
)

// Possible errors, used in tests.
var (
	errFrontMatterMissing = errors.New("missing front matter")
	errFrontMatterParse   = errors.New("failed to parse front matter")
	errFieldMissing       = errors.New("missing required front matter field")
	errDateInvalid        = errors.New("invalid date")
	errDateMissing        = errors.New("missing date")
	errTagsInvalid        = errors.New("invalid tags")
	errPathInvalid        = errors.New("invalid path")
	errPathDuplicate      = errors.New("duplicate path")
	errSectionUnknown     = errors.New("directory is not a declared section")
	errNestedDir          = errors.New("nested directories are not supported")
)

// Options control how content is loaded.
type Options struct {
	// Drafts determines if drafts are included.
	Drafts bool
	// RequireDates makes a missing item date an error instead of falling back
	// to the file modification time.
	RequireDates bool
	// Tags claims the tag list and tag page paths, so that they can't
	// collide with other content.
	Tags bool
	// Highlighter highlights fenced code blocks. If nil, code is left as is.
	Highlighter *highlight.Highlighter
}

// Load reads the content tree rooted at dir. All errors, including unreadable
// sources, are reported as [builderr.CategoryContent].
func Load(dir string, site *website.Descriptor, opts Options) (*Snapshot, error) {
	l := newLoader(dir, site, opts)
	if err := filepath.WalkDir(dir, l.walk); err != nil {
		var be *builderr.Error
		if errors.As(err, &be) {
			return nil, err
		}
		return nil, builderr.Content(dir, err)
	}
	return l.snapshot()
}

type loader struct {
	dir      string
	site     *website.Descriptor
	opts     Options
	md       *markdown.Parser
	index    Index
	sections map[string]*Section
	items    []*Item
	pages    []*Page
	claimed  map[string]string // canonical path -> source
}

func newLoader(dir string, site *website.Descriptor, opts Options) *loader {
	l := &loader{
		dir:  dir,
		site: site,
		opts: opts,
		md: &markdown.Parser{
			HeadingID:          true,
			Strikethrough:      true,
			TaskList:           true,
			AutoLinkText:       true,
			AutoLinkAssumeHTTP: true,
			Table:              true,
			Emoji:              true,
			SmartDot:           true,
			SmartDash:          true,
			SmartQuote:         true,
			Footnote:           true,
		},
		sections: make(map[string]*Section),
		claimed:  map[string]string{"/": "index"},
	}
	for _, id := range site.SectionIDs() {
		sec := &Section{
			ID:    id,
			Title: site.SectionTitle(id),
			Path:  "/" + id,
		}
		l.sections[id] = sec
		l.claimed[sec.Path] = "section " + id
	}
	return l
}

func (l *loader) walk(path string, d fs.DirEntry, err error) error {
	if err != nil {
		return builderr.Content(path, err)
	}

	rel, err := filepath.Rel(l.dir, path)
	if err != nil {
		return builderr.Content(path, err)
	}
	if rel == "." {
		return nil
	}

	if isIgnorable(d.Name()) {
		if d.IsDir() {
			return filepath.SkipDir
		}
		return nil
	}

	parts := strings.Split(filepath.ToSlash(rel), "/")
	if d.IsDir() {
		if len(parts) > 1 {
			return builderr.Content(path, errNestedDir)
		}
		if !l.site.HasSection(parts[0]) {
			return builderr.Content(path, fmt.Errorf("%w: %q", errSectionUnknown, parts[0]))
		}
		return nil
	}

	// Other files, like images, are not content.
	if filepath.Ext(path) != ".md" {
		return nil
	}

	switch {
	case len(parts) == 1 && parts[0] == "index.md":
		return l.loadIndex(path)
	case len(parts) == 1:
		return l.loadPage(path)
	case parts[1] == "index.md":
		return l.loadSection(path, parts[0])
	default:
		return l.loadItem(path, parts[0])
	}
}

func isIgnorable(name string) bool {
	// Ignore files that look like Vim backups.
	if strings.HasSuffix(name, "~") {
		return true
	}
	// Ignore dotfiles, including .DS_Store and .gitignore.
	return strings.HasPrefix(name, ".")
}

// source is a parsed content file.
type source struct {
	fm      *frontMatter
	body    string
	modTime time.Time
}

func (l *loader) read(path string, required bool) (*source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, builderr.Content(path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, builderr.Content(path, err)
	}

	fm := new(frontMatter)
	var rest []byte
	if required {
		rest, err = frontmatter.MustParse(f, fm, formats...)
	} else {
		rest, err = frontmatter.Parse(f, fm, formats...)
	}
	if errors.Is(err, frontmatter.ErrNotFound) {
		return nil, builderr.Content(path, errFrontMatterMissing)
	} else if err != nil {
		return nil, builderr.Content(path, fmt.Errorf("%w: %w", errFrontMatterParse, err))
	}

	body, err := l.render(rest)
	if err != nil {
		return nil, builderr.Content(path, err)
	}

	return &source{fm: fm, body: body, modTime: fi.ModTime().UTC()}, nil
}

var htmlCommentRe = regexp.MustCompile(`(?s)<!--(.*?)-->`)

func (l *loader) render(src []byte) (string, error) {
	doc := l.md.Parse(string(src))
	out := htmlCommentRe.ReplaceAllString(markdown.ToHTML(doc), "")
	if l.opts.Highlighter == nil {
		return out, nil
	}
	return l.opts.Highlighter.HTML(out)
}

// requireMeta checks the fields every item and page must have.
func requireMeta(path string, fm *frontMatter) error {
	for _, f := range []struct{ name, val string }{
		{"title", fm.Title},
		{"description", fm.Description},
	} {
		if strings.TrimSpace(f.val) == "" {
			return builderr.Content(path, fmt.Errorf("%w: %s", errFieldMissing, f.name))
		}
	}
	return nil
}

func (l *loader) claim(canonical, path string) error {
	if prev, ok := l.claimed[canonical]; ok {
		return builderr.Content(path, fmt.Errorf("%w %s, already used by %s", errPathDuplicate, canonical, prev))
	}
	l.claimed[canonical] = path
	return nil
}

// slug returns the last path element of a file, honoring an override.
func slug(path, override string) (string, error) {
	if override == "" {
		return strings.TrimSuffix(filepath.Base(path), ".md"), nil
	}
	s := strings.Trim(override, "/")
	if s == "" || slices.Contains(strings.Split(s, "/"), "..") {
		return "", builderr.Content(path, fmt.Errorf("%w: %q", errPathInvalid, override))
	}
	return s, nil
}

func (l *loader) loadIndex(path string) error {
	src, err := l.read(path, false)
	if err != nil {
		return err
	}
	l.index = Index{
		Title:       src.fm.Title,
		Description: src.fm.Description,
		Body:        src.body,
	}
	return nil
}

func (l *loader) loadSection(path, id string) error {
	src, err := l.read(path, false)
	if err != nil {
		return err
	}
	sec := l.sections[id]
	if src.fm.Title != "" {
		sec.Title = src.fm.Title
	}
	sec.Description = src.fm.Description
	sec.Body = src.body
	return nil
}

func (l *loader) loadPage(path string) error {
	src, err := l.read(path, true)
	if err != nil {
		return err
	}
	if err := requireMeta(path, src.fm); err != nil {
		return err
	}
	if src.fm.Draft && !l.opts.Drafts {
		return nil
	}

	s, err := slug(path, src.fm.Path)
	if err != nil {
		return err
	}
	p := &Page{
		Path:        "/" + s,
		Title:       src.fm.Title,
		Description: src.fm.Description,
		Image:       src.fm.Image,
		Body:        src.body,
		Source:      path,
	}
	if err := l.claim(p.Path, path); err != nil {
		return err
	}
	l.pages = append(l.pages, p)
	return nil
}

func (l *loader) loadItem(path, sectionID string) error {
	src, err := l.read(path, true)
	if err != nil {
		return err
	}
	if err := requireMeta(path, src.fm); err != nil {
		return err
	}
	if src.fm.Draft && !l.opts.Drafts {
		return nil
	}

	var published time.Time
	switch {
	case src.fm.Date != nil:
		published = src.fm.Date.Time
	case l.opts.RequireDates:
		return builderr.Content(path, errDateMissing)
	default:
		published = src.modTime
	}

	s, err := slug(path, src.fm.Path)
	if err != nil {
		return err
	}
	it := &Item{
		SectionID:   sectionID,
		Path:        "/" + sectionID + "/" + s,
		Title:       src.fm.Title,
		Description: src.fm.Description,
		Image:       src.fm.Image,
		Date:        published,
		Body:        src.body,
		Source:      path,
	}
	seen := make(map[string]bool)
	for _, name := range src.fm.Tags {
		t := Tag{Name: name}
		n := t.Normalized()
		if n == "" {
			return builderr.Content(path, fmt.Errorf("%w: %q has no letters or digits", errTagsInvalid, name))
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		it.Tags = append(it.Tags, t)
	}
	if err := l.claim(it.Path, path); err != nil {
		return err
	}
	l.items = append(l.items, it)
	return nil
}

func newestFirst(a, b *Item) int { return b.Date.Compare(a.Date) }

func (l *loader) snapshot() (*Snapshot, error) {
	s := &Snapshot{
		index:  l.index,
		items:  l.items,
		pages:  l.pages,
		tagged: make(map[string][]*Item),
	}

	slices.SortStableFunc(s.items, newestFirst)
	slices.SortFunc(s.pages, func(a, b *Page) int { return strings.Compare(a.Path, b.Path) })

	for _, id := range l.site.SectionIDs() {
		s.sections = append(s.sections, l.sections[id])
	}
	if l.opts.Tags {
		if err := l.claim(TagListPath, "tag list"); err != nil {
			return nil, err
		}
	}
	for _, it := range s.items {
		sec := l.sections[it.SectionID]
		sec.Items = append(sec.Items, it)
		for _, t := range it.Tags {
			n := t.Normalized()
			if _, ok := s.tagged[n]; !ok {
				if l.opts.Tags {
					if err := l.claim(t.Path(), it.Source); err != nil {
						return nil, err
					}
				}
				s.tags = append(s.tags, t)
			}
			s.tagged[n] = append(s.tagged[n], it)
		}
	}
	slices.SortFunc(s.tags, func(a, b Tag) int { return strings.Compare(a.Normalized(), b.Normalized()) })

	return s, nil
}
