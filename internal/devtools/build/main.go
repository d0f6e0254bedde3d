// © 2025 Adam Young. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"

	"go.astrophena.name/base/cli"
	"go.swiftwithadam.com/site/internal/devtools"
	"go.swiftwithadam.com/site/internal/env"
	"go.swiftwithadam.com/site/internal/site"
)

func main() { cli.Main(new(app)) }

type app struct {
	config       string
	env          env.Env
	tags         bool
	skipFeed     bool
	requireDates bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.config, "config", "site.star", "Read site configuration from `file`.")
	fs.Var(&a.env, "env", "Build `environment`: dev, staging or prod.")
	fs.BoolVar(&a.tags, "tags", false, "Render tag pages.")
	fs.BoolVar(&a.skipFeed, "skip-feed", false, "Don't build the RSS feed.")
	fs.BoolVar(&a.requireDates, "require-dates", false, "Fail on items without a date.")
}

func (a *app) Run(ctx context.Context) error {
	devtools.EnsureRoot()

	dir := devtools.OutputDir(ctx)

	d, err := devtools.LoadSite(ctx, a.config)
	if err != nil {
		return err
	}

	return site.Build(ctx, &site.Config{
		Site:         d,
		Src:          ".",
		Dst:          dir,
		Env:          a.env,
		Tags:         a.tags,
		SkipFeed:     a.skipFeed,
		RequireDates: a.requireDates,
	})
}
