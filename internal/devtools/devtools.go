// © 2025 Adam Young. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package devtools contains common functionality for development tools.
package devtools

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"go.astrophena.name/base/cli"
	"go.astrophena.name/base/logger"
	"go.swiftwithadam.com/site/internal/blog"
	"go.swiftwithadam.com/site/internal/website"
)

// EnsureRoot checks that the current working directory is at the repository
// root and panics if it doesn't.
func EnsureRoot() {
	wd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	if _, err := os.Stat(filepath.Join(wd, "go.mod")); os.IsNotExist(err) {
		panic("Are you at repo root?")
	} else if err != nil {
		panic(err)
	}
}

// OutputDir returns the directory named by the first positional argument, or
// the build directory if there is none.
func OutputDir(ctx context.Context) string {
	if args := cli.GetEnv(ctx).Args; len(args) > 0 {
		return args[0]
	}
	return filepath.Join(".", "build")
}

// LoadSite reads the site descriptor from the Starlark file at path. If the
// file doesn't exist, the built-in swiftwithadam.com descriptor is used.
func LoadSite(ctx context.Context, path string) (*website.Descriptor, error) {
	d, err := website.LoadFile(ctx, path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Info(ctx, "no site configuration, using defaults", slog.String("path", path))
		return blog.Descriptor(), nil
	}
	return d, err
}
