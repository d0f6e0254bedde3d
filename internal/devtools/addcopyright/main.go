// © 2025 Adam Young. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Addcopyright adds copyright header to each Go, Starlark and CSS file.
//
// Markdown content is left alone: front matter has to start the file.
package main

import (
	"bytes"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"slices"

	"go.swiftwithadam.com/site/internal/devtools"
)

var templates = map[string]string{
	".go": `// © %d Adam Young. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

`,
	".star": `# © %d Adam Young. All rights reserved.
# Use of this source code is governed by the ISC
# license that can be found in the LICENSE.md file.

`,
	".css": `/*
© %d Adam Young. All rights reserved.
Use of this source code is governed by the ISC
license that can be found in the LICENSE.md file.
*/

`,
}

var headers = map[string]string{
	".go":   `// ©`,
	".star": `# ©`,
	".css":  "/*\n© ",
}

// skipDirs are never walked into.
var skipDirs = []string{
	".git",
	"_examples",
	"build",
	"testdata",
}

func main() {
	log.SetFlags(0)
	devtools.EnsureRoot()

	if err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if slices.Contains(skipDirs, d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		ext := filepath.Ext(path)
		tmpl, ok := templates[ext]
		if !ok {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		if bytes.HasPrefix(content, []byte(headers[ext])) {
			return nil // Already has a copyright header
		}

		year := info.ModTime().Year()
		hdr := fmt.Sprintf(tmpl, year)

		var buf bytes.Buffer
		buf.WriteString(hdr)
		buf.Write(content)

		return os.WriteFile(path, buf.Bytes(), info.Mode().Perm())
	}); err != nil {
		log.Fatal(err)
	}
}
