// © 2025 The Osmo Authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Resize-icons generates the site icons and the Open Graph image.

# Usage

	$ go tool resize-icons [flags]

This tool resizes the source logo (design/osmo-logo.png by default) and
writes the following files into the "assets" directory:

	osmo-logo.png         1024x1024
	favicon.png           32x32
	favicon.ico           32x32
	apple-touch-icon.png  180x180
	og-image.png          1200x630, logo centered on black

Existing files are overwritten. If the source logo doesn't exist, nothing is
written and the tool exits with status 1.

With -watch, the tool keeps running and regenerates the files every time
the source logo changes.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/base/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
