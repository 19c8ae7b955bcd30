// © 2025 The Osmo Authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package devtools contains common functionality for development tools.
package devtools

import (
	"os"
	"path/filepath"

	"go.astrophena.name/base/unwrap"
)

// EnsureRoot checks that the current working directory is at the repository
// root and panics if it doesn't. Asset paths used by the tools are relative to
// the repository root.
func EnsureRoot() {
	if !IsRoot(unwrap.Value(os.Getwd())) {
		panic("Are you at repo root?")
	}
}

// IsRoot reports whether dir is the repository root, that is, whether it
// contains both .git and go.mod.
func IsRoot(dir string) bool {
	for _, name := range []string{".git", "go.mod"} {
		if _, err := os.Stat(filepath.Join(dir, name)); os.IsNotExist(err) {
			return false
		} else if err != nil {
			panic(err)
		}
	}
	return true
}
