// © 2025 Adam Young. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.astrophena.name/base/testutil"
	"go.astrophena.name/base/txtar"
	"go.swiftwithadam.com/site/internal/blog"
	"go.swiftwithadam.com/site/internal/builderr"
	"go.swiftwithadam.com/site/internal/highlight"
)

func loadTestdata(t *testing.T, opts Options) *Snapshot {
	t.Helper()
	ar, err := txtar.ParseFile(filepath.Join("testdata", "blog.txtar"))
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	testutil.ExtractTxtar(t, ar, dir)

	s, err := Load(dir, blog.Descriptor(), opts)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func itemPaths(items []*Item) []string {
	var paths []string
	for _, it := range items {
		paths = append(paths, it.Path)
	}
	return paths
}

func TestLoad(t *testing.T) {
	s := loadTestdata(t, Options{Highlighter: highlight.New("")})

	testutil.AssertEqual(t, s.Index(), Index{Title: "Home", Description: "Latest articles."})

	// Newest first, items with equal dates keep the file order.
	testutil.AssertEqual(t, itemPaths(s.Items()), []string{
		"/tooling/xcode",
		"/swift/actors",
		"/swift/macros",
		"/architecture/model-view-viewmodel",
	})

	var sections []string
	for _, sec := range s.Sections() {
		sections = append(sections, sec.Path)
	}
	testutil.AssertEqual(t, sections, []string{"/swift", "/architecture", "/tooling"})

	swift, ok := s.Section(blog.Swift)
	if !ok {
		t.Fatal("swift section is missing")
	}
	testutil.AssertEqual(t, swift.Title, "Swift")
	testutil.AssertEqual(t, swift.Description, "Articles about Swift.")
	testutil.AssertEqual(t, itemPaths(swift.Items), []string{"/swift/actors", "/swift/macros"})

	if _, ok := s.Section("news"); ok {
		t.Fatal("undeclared section must not exist")
	}

	testutil.AssertEqual(t, len(s.Pages()), 1)
	about := s.Pages()[0]
	testutil.AssertEqual(t, about.Path, "/about")
	testutil.AssertEqual(t, strings.TrimSpace(about.Body), "<p>Hello from <strong>Adam</strong>.</p>")

	actors := swift.Items[0]
	testutil.AssertEqual(t, actors.Date, time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC))
	if strings.Contains(actors.Body, "diagram") {
		t.Errorf("HTML comment wasn't stripped: %s", actors.Body)
	}
	if !strings.Contains(actors.Body, "<span") {
		t.Errorf("code block wasn't highlighted: %s", actors.Body)
	}

	xcode := s.Items()[0]
	testutil.AssertEqual(t, xcode.Title, "Xcode tips")
	testutil.AssertEqual(t, xcode.Date, time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC))

	testutil.AssertEqual(t, s.Paths(), []string{
		"/swift",
		"/architecture",
		"/tooling",
		"/tooling/xcode",
		"/swift/actors",
		"/swift/macros",
		"/architecture/model-view-viewmodel",
		"/about",
	})
}

func TestLoadItemsBelongToDeclaredSections(t *testing.T) {
	d := blog.Descriptor()
	s := loadTestdata(t, Options{})
	for _, it := range s.Items() {
		if !d.HasSection(it.SectionID) {
			t.Errorf("%s belongs to undeclared section %q", it.Path, it.SectionID)
		}
		sec, _ := s.Section(it.SectionID)
		if !strings.HasPrefix(it.Path, sec.Path+"/") {
			t.Errorf("%s is outside of its section path %s", it.Path, sec.Path)
		}
	}
}

func TestLoadTags(t *testing.T) {
	s := loadTestdata(t, Options{})

	var tags []string
	for _, tag := range s.Tags() {
		tags = append(tags, tag.Normalized())
	}
	testutil.AssertEqual(t, tags, []string{"concurrency", "macros", "swift"})
	testutil.AssertEqual(t, itemPaths(s.ItemsTagged(Tag{Name: "Swift"})), []string{"/swift/actors", "/swift/macros"})
	testutil.AssertEqual(t, Tag{Name: "Swift Concurrency"}.Path(), "/tags/swift-concurrency")
}

func TestTagNormalized(t *testing.T) {
	cases := map[string]string{
		"Swift":               "swift",
		" Swift Concurrency ": "swift-concurrency",
		"C#":                  "c",
		"CI/CD":               "cicd",
		"Objective-C":         "objectivec",
		"Café":                "café",
		"++":                  "",
	}
	for name, want := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, Tag{Name: name}.Normalized(), want)
		})
	}
}

func TestLoadDrafts(t *testing.T) {
	s := loadTestdata(t, Options{Drafts: true})
	testutil.AssertEqual(t, s.Items()[0].Path, "/swift/draft")
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, contents := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestLoadMissingDate(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"swift/undated.md": "---\ntitle: Undated\ndescription: No date.\n---\n",
	})
	mtime := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	if err := os.Chtimes(filepath.Join(dir, "swift", "undated.md"), mtime, mtime); err != nil {
		t.Fatal(err)
	}

	s, err := Load(dir, blog.Descriptor(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, s.Items()[0].Date, mtime)

	_, err = Load(dir, blog.Descriptor(), Options{RequireDates: true})
	if !errors.Is(err, errDateMissing) {
		t.Fatalf("want %v, got %v", errDateMissing, err)
	}
}

func TestLoadErrors(t *testing.T) {
	const valid = "---\ntitle: Post\ndescription: A post.\ndate: 2025-01-01\n---\n"

	cases := map[string]struct {
		files   map[string]string
		opts    Options
		wantErr error
	}{
		"undeclared section": {
			files:   map[string]string{"news/post.md": valid},
			wantErr: errSectionUnknown,
		},
		"nested directory": {
			files:   map[string]string{"swift/deep/post.md": valid},
			wantErr: errNestedDir,
		},
		"missing front matter": {
			files:   map[string]string{"swift/post.md": "Just text.\n"},
			wantErr: errFrontMatterMissing,
		},
		"missing title": {
			files:   map[string]string{"swift/post.md": "---\ndescription: A post.\n---\n"},
			wantErr: errFieldMissing,
		},
		"missing description": {
			files:   map[string]string{"about.md": "---\ntitle: About\n---\n"},
			wantErr: errFieldMissing,
		},
		"unsupported date": {
			files:   map[string]string{"swift/post.md": "---\ntitle: Post\ndescription: A post.\ndate: 01/02/2025\n---\n"},
			wantErr: errFrontMatterParse,
		},
		"unsupported date keeps cause": {
			files:   map[string]string{"swift/post.md": "---\ntitle: Post\ndescription: A post.\ndate: 01/02/2025\n---\n"},
			wantErr: errDateInvalid,
		},
		"tags as mapping": {
			files:   map[string]string{"swift/post.md": "---\ntitle: Post\ndescription: A post.\ndate: 2025-01-01\ntags: {a: b}\n---\n"},
			wantErr: errTagsInvalid,
		},
		"tag without letters": {
			files:   map[string]string{"swift/post.md": "---\ntitle: Post\ndescription: A post.\ndate: 2025-01-01\ntags: \"++\"\n---\n"},
			wantErr: errTagsInvalid,
		},
		"page shadows tag list": {
			files:   map[string]string{"tags.md": "---\ntitle: My tags\ndescription: Tags.\n---\n"},
			opts:    Options{Tags: true},
			wantErr: errPathDuplicate,
		},
		"page shadows tag page": {
			files: map[string]string{
				"swift.md":      "---\ntitle: Swift\ndescription: Swift.\npath: tags/swift\n---\n",
				"swift/post.md": "---\ntitle: Post\ndescription: A post.\ndate: 2025-01-01\ntags: Swift\n---\n",
			},
			opts:    Options{Tags: true},
			wantErr: errPathDuplicate,
		},
		"malformed front matter": {
			files:   map[string]string{"swift/post.md": "---\ntitle: [unclosed\n---\n"},
			wantErr: errFrontMatterParse,
		},
		"duplicate item path": {
			files: map[string]string{
				"swift/a.md": "---\ntitle: A\ndescription: A.\ndate: 2025-01-01\npath: b\n---\n",
				"swift/b.md": valid,
			},
			wantErr: errPathDuplicate,
		},
		"page shadows section": {
			files:   map[string]string{"about.md": "---\ntitle: About\ndescription: About.\npath: /swift/\n---\n"},
			wantErr: errPathDuplicate,
		},
		"path escapes section": {
			files:   map[string]string{"swift/post.md": "---\ntitle: Post\ndescription: A post.\npath: ../about\n---\n"},
			wantErr: errPathInvalid,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeTree(t, tc.files), blog.Descriptor(), tc.opts)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("want %v, got %v", tc.wantErr, err)
			}
			if !builderr.Is(err, builderr.CategoryContent) {
				t.Fatalf("want a content error, got %v", err)
			}
		})
	}
}

func TestLoadTagsPageWithoutTagPages(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"tags.md": "---\ntitle: My tags\ndescription: Tags.\n---\n",
	})
	s, err := Load(dir, blog.Descriptor(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, s.Pages()[0].Path, TagListPath)
}

func TestLoadUnreadable(t *testing.T) {
	dangling := writeTree(t, map[string]string{"swift/post.md": "---\ntitle: Post\ndescription: A post.\ndate: 2025-01-01\n---\n"})
	if err := os.Symlink(filepath.Join(dangling, "gone.md"), filepath.Join(dangling, "swift", "macros.md")); err != nil {
		t.Skipf("symlinks are not supported: %v", err)
	}

	cases := map[string]string{
		"missing directory": filepath.Join(t.TempDir(), "nope"),
		"dangling symlink":  dangling,
	}
	for name, dir := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(dir, blog.Descriptor(), Options{})
			if !builderr.Is(err, builderr.CategoryContent) {
				t.Fatalf("want a content error, got %v", err)
			}
			if builderr.Is(err, builderr.CategoryIO) {
				t.Fatalf("unreadable sources are not output errors: %v", err)
			}
		})
	}
}
