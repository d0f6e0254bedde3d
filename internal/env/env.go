// © 2025 Adam Young. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package env contains definitions for the environments in which site can be
// built.
package env

import "fmt"

// Env is the environment in which site can be built.
type Env string

// Available environments.
const (
	// Everything is included and output is left as rendered.
	Dev = Env("dev")
	// Mostly similar to prod, but drafts are included.
	Staging = Env("staging")
	// Drafts are excluded and HTML is minified.
	Prod = Env("prod")
)

// Drafts reports whether draft content is published in e.
func (e Env) Drafts() bool { return e != Prod }

// Minify reports whether generated HTML is minified in e.
func (e Env) Minify() bool { return e == Staging || e == Prod }

// Set implements flag.Value.
func (e *Env) Set(s string) error {
	switch v := Env(s); v {
	case Dev, Staging, Prod:
		*e = v
		return nil
	}
	return fmt.Errorf("unknown environment %q (want dev, staging or prod)", s)
}

func (e *Env) String() string {
	if e == nil || *e == "" {
		return string(Dev)
	}
	return string(*e)
}
