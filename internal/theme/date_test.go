// © 2025 Adam Young. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package theme

import (
	"testing"
	"time"

	"go.astrophena.name/base/testutil"
)

func TestFormatDate(t *testing.T) {
	date := time.Date(2025, time.March, 7, 9, 5, 0, 0, time.UTC)

	cases := map[string]struct {
		pattern string
		want    string
	}{
		"date only":   {pattern: DateOnly, want: "7 Mar 2025"},
		"year":        {pattern: Year, want: "2025"},
		"padded":      {pattern: "dd/MM/yy", want: "07/03/25"},
		"long month":  {pattern: "MMMM d, yyyy", want: "March 7, 2025"},
		"time":        {pattern: "HH:mm", want: "09:05"},
		"weekday":     {pattern: "EEEE", want: "Friday"},
		"quoted text": {pattern: "'Posted on' d MMM", want: "Posted on 7 Mar"},
		"quote":       {pattern: "yyyy''", want: "2025'"},
		"unknown":     {pattern: "Q yyyy", want: "Q 2025"},
		"digits kept": {pattern: "d 1", want: "7 1"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, FormatDate(tc.pattern, date), tc.want)
		})
	}
}
