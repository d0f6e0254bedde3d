// © 2025 Adam Young. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"

	"go.astrophena.name/base/cli"
	"go.swiftwithadam.com/site/internal/devtools"
	"go.swiftwithadam.com/site/internal/site"
)

func main() { cli.Main(new(app)) }

type app struct {
	listen string
	config string
	tags   bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.listen, "listen", "localhost:3000", "Listen on `host:port`.")
	fs.StringVar(&a.config, "config", "site.star", "Read site configuration from `file`.")
	fs.BoolVar(&a.tags, "tags", false, "Render tag pages.")
}

func (a *app) Run(ctx context.Context) error {
	devtools.EnsureRoot()

	dir := devtools.OutputDir(ctx)

	d, err := devtools.LoadSite(ctx, a.config)
	if err != nil {
		return err
	}

	cfg := &site.Config{
		Site: d,
		Src:  ".",
		Dst:  dir,
		Tags: a.tags,
	}
	return site.Serve(ctx, cfg, a.listen)
}
