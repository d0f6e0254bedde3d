// © 2025 Adam Young. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package env

import (
	"testing"

	"go.astrophena.name/base/testutil"
)

func TestEnv(t *testing.T) {
	cases := map[Env]struct {
		drafts, minify bool
	}{
		Dev:     {drafts: true, minify: false},
		Staging: {drafts: true, minify: true},
		Prod:    {drafts: false, minify: true},
	}
	for e, tc := range cases {
		t.Run(string(e), func(t *testing.T) {
			testutil.AssertEqual(t, e.Drafts(), tc.drafts)
			testutil.AssertEqual(t, e.Minify(), tc.minify)
		})
	}
}

func TestSet(t *testing.T) {
	var e Env
	testutil.AssertEqual(t, e.String(), "dev")
	if err := e.Set("prod"); err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, e, Prod)
	if err := e.Set("qa"); err == nil {
		t.Fatal("want error for unknown environment")
	}
	testutil.AssertEqual(t, e, Prod)
}
