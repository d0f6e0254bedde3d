// © 2025 Adam Young. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package blog describes https://swiftwithadam.com.
package blog

import (
	"net/url"

	"go.swiftwithadam.com/site/internal/website"
)

// Section IDs of the site.
const (
	Swift        = "swift"
	Architecture = "architecture"
	Tooling      = "tooling"
)

// Descriptor returns the site descriptor of https://swiftwithadam.com.
func Descriptor() *website.Descriptor {
	return &website.Descriptor{
		URL: &url.URL{
			Scheme: "https",
			Host:   "swiftwithadam.com",
		},
		Name:          "Swift with Adam",
		Description:   "Articles on everything you need to know about Swift",
		Language:      "en",
		Author:        "Adam Young",
		TwitterHandle: "adamayoung",
		GitHubHandle:  "adamayoung",
		AnalyticsID:   "G-VJ2DFPZ6Z9",
		ImagePath:     "/images/swift_logo.svg",
		Sections: []website.Section{
			{ID: Swift},
			{ID: Architecture},
			{ID: Tooling},
		},
		FeedSections: []string{Swift, Tooling},
	}
}
