// © 2025 Adam Young. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Pre-commit runs the checks every change has to pass: formatting, static
// analysis, tests, a tidy go.mod, copyright headers and a full site build.
package main

import (
	"bytes"
	"log"
	"os"
	"os/exec"
	"path/filepath"

	"go.swiftwithadam.com/site/internal/devtools"
)

func main() {
	log.SetFlags(0)
	devtools.EnsureRoot()

	isCI := os.Getenv("CI") == "true"

	var w bytes.Buffer

	run(&w, "gofmt", "-d", ".")
	if diff := w.String(); diff != "" {
		log.Fatalf("Run gofmt on these files:\n\t%v", diff)
	}

	run(&w, "go", "tool", "staticcheck", "./...")

	if isCI {
		run(&w, "go", "test", "-race", "./...")
	} else {
		run(&w, "go", "test", "./...")
	}

	run(&w, "go", "mod", "tidy", "--diff")

	run(&w, "go", "tool", "addcopyright")

	// Content errors only show up when the real content is built.
	tmp, err := os.MkdirTemp("", "swiftwithadam-build")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmp)
	run(&w, "go", "tool", "build", "-env", "prod", "-require-dates", filepath.Join(tmp, "build"))

	if isCI {
		run(&w, "git", "diff", "--exit-code")
	}
}

func run(buf *bytes.Buffer, cmd string, args ...string) {
	buf.Reset()
	c := exec.Command(cmd, args...)
	c.Stdout = buf
	c.Stderr = buf
	if err := c.Run(); err != nil {
		log.Fatalf("%s failed: %v:\n%v", cmd, err, buf.String())
	}
}
