// © 2025 Adam Young. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package theme

import (
	"strings"
	"time"
)

// Date patterns used by the themes.
const (
	DateOnly = "d MMM yyyy"
	Year     = "yyyy"
)

// Go layouts for runs of CLDR pattern letters.
var dateFields = map[string]string{
	"d":    "2",
	"dd":   "02",
	"M":    "1",
	"MM":   "01",
	"MMM":  "Jan",
	"MMMM": "January",
	"y":    "2006",
	"yy":   "06",
	"yyyy": "2006",
	"E":    "Mon",
	"EEE":  "Mon",
	"EEEE": "Monday",
	"H":    "15",
	"HH":   "15",
	"h":    "3",
	"hh":   "03",
	"m":    "4",
	"mm":   "04",
	"s":    "5",
	"ss":   "05",
	"a":    "PM",
}

// FormatDate formats t with a CLDR-style pattern like "d MMM yyyy". Text in
// single quotes and anything that isn't a letter is copied verbatim, as are
// letters with no known meaning.
func FormatDate(pattern string, t time.Time) string {
	var sb strings.Builder
	for i := 0; i < len(pattern); {
		ch := pattern[i]

		if ch == '\'' {
			end := strings.IndexByte(pattern[i+1:], '\'')
			if end < 0 {
				sb.WriteString(pattern[i+1:])
				break
			}
			if end == 0 {
				sb.WriteByte('\'') // '' is a literal quote
			}
			sb.WriteString(pattern[i+1 : i+1+end])
			i += end + 2
			continue
		}

		if !isLetter(ch) {
			sb.WriteByte(ch)
			i++
			continue
		}

		j := i
		for j < len(pattern) && pattern[j] == ch {
			j++
		}
		run := pattern[i:j]
		if layout, ok := dateFields[run]; ok {
			sb.WriteString(t.Format(layout))
		} else {
			sb.WriteString(run)
		}
		i = j
	}
	return sb.String()
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}
