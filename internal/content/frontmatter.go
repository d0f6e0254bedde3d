// © 2025 Adam Young. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package content

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

var formats = []*frontmatter.Format{
	frontmatter.NewFormat("---", "---", yaml.Unmarshal),
	// A JSON object followed by an empty line.
	{Start: "{", End: "}", Unmarshal: json.Unmarshal, UnmarshalDelims: true, RequiresNewLine: true},
}

type frontMatter struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Date        *date  `yaml:"date" json:"date"`
	Tags        tags   `yaml:"tags" json:"tags"`
	Image       string `yaml:"image" json:"image"`
	Path        string `yaml:"path" json:"path"`
	Draft       bool   `yaml:"draft" json:"draft"`
}

var dateLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02",
}

type date struct {
	time.Time
}

func (d *date) parse(s string) error {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("%w: %q", errDateInvalid, s)
}

func (d *date) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d", errDateInvalid, n.Line)
	}
	return d.parse(n.Value)
}

func (d *date) UnmarshalJSON(p []byte) error {
	var s string
	if err := json.Unmarshal(p, &s); err != nil {
		return fmt.Errorf("%w: %s", errDateInvalid, p)
	}
	return d.parse(s)
}

// tags accept either a list or a comma-separated string.
type tags []string

func (t *tags) set(list []string) {
	*t = (*t)[:0]
	for _, s := range list {
		if s = strings.TrimSpace(s); s != "" {
			*t = append(*t, s)
		}
	}
}

func (t *tags) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.SequenceNode:
		var list []string
		if err := n.Decode(&list); err != nil {
			return err
		}
		t.set(list)
	case yaml.ScalarNode:
		t.set(strings.Split(n.Value, ","))
	default:
		return fmt.Errorf("%w: line %d", errTagsInvalid, n.Line)
	}
	return nil
}

func (t *tags) UnmarshalJSON(p []byte) error {
	var list []string
	if err := json.Unmarshal(p, &list); err == nil {
		t.set(list)
		return nil
	}
	var s string
	if err := json.Unmarshal(p, &s); err != nil {
		return fmt.Errorf("%w: %s", errTagsInvalid, p)
	}
	t.set(strings.Split(s, ","))
	return nil
}
