// © 2025 Adam Young. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package devtools

import (
	"context"
	"path/filepath"
	"testing"

	"go.astrophena.name/base/cli"
	"go.astrophena.name/base/testutil"
	"go.swiftwithadam.com/site/internal/blog"
)

func TestOutputDir(t *testing.T) {
	cases := map[string]struct {
		args []string
		want string
	}{
		"default":    {args: nil, want: filepath.Join(".", "build")},
		"positional": {args: []string{"/tmp/out"}, want: "/tmp/out"},
		"extra args": {args: []string{"out", "ignored"}, want: "out"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			ctx := cli.WithEnv(context.Background(), &cli.Env{Args: tc.args})
			testutil.AssertEqual(t, OutputDir(ctx), tc.want)
		})
	}
}

func TestLoadSiteFallback(t *testing.T) {
	d, err := LoadSite(context.Background(), filepath.Join(t.TempDir(), "site.star"))
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, d.Name, blog.Descriptor().Name)
}
