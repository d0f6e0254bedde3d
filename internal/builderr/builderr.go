// © 2025 Adam Young. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package builderr classifies errors that abort a site build.
//
// Every failure is terminal; the category only tells the caller which part of
// the build rejected its input.
package builderr

import (
	"errors"
	"fmt"
)

// Category is the class of a build error.
type Category string

// Available categories.
const (
	CategoryConfig  Category = "config"  // malformed site descriptor
	CategoryContent Category = "content" // unreadable or malformed source file
	CategoryRender  Category = "render"  // missing data at render time
	CategoryIO      Category = "io"      // output write failure
)

// Error is a categorised build error.
type Error struct {
	Category Category
	// Path is the file or field the error is about, if any.
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s error: %s: %v", e.Category, e.Path, e.Err)
	}
	return fmt.Sprintf("%s error: %v", e.Category, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Config returns a configuration error.
func Config(path string, err error) error {
	return &Error{Category: CategoryConfig, Path: path, Err: err}
}

// Content returns a content error.
func Content(path string, err error) error {
	return &Error{Category: CategoryContent, Path: path, Err: err}
}

// Render returns a render error.
func Render(path string, err error) error {
	return &Error{Category: CategoryRender, Path: path, Err: err}
}

// IO returns an output error.
func IO(path string, err error) error {
	return &Error{Category: CategoryIO, Path: path, Err: err}
}

// Is reports whether any error in err's chain is an [Error] of category c.
func Is(err error, c Category) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Category == c
}
