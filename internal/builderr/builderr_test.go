// © 2025 Adam Young. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package builderr

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"go.astrophena.name/base/testutil"
)

func TestIs(t *testing.T) {
	cases := map[string]struct {
		err  error
		cat  Category
		want bool
	}{
		"direct":          {Content("a.md", errors.New("boom")), CategoryContent, true},
		"wrapped":         {fmt.Errorf("stage: %w", IO("out/index.html", fs.ErrPermission)), CategoryIO, true},
		"other":           {Render("item", errors.New("no title")), CategoryConfig, false},
		"not categorised": {errors.New("plain"), CategoryConfig, false},
		"nil":             {nil, CategoryIO, false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, Is(tc.err, tc.cat), tc.want)
		})
	}
}

func TestUnwrap(t *testing.T) {
	err := IO("out/feed.rss", fs.ErrPermission)
	if !errors.Is(err, fs.ErrPermission) {
		t.Fatalf("want %v in chain of %v", fs.ErrPermission, err)
	}
	testutil.AssertEqual(t, err.Error(), "io error: out/feed.rss: permission denied")
}
