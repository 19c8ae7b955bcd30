// © 2025 The Osmo Authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Og-image regenerates the Open Graph image from the site logo.

# Usage

	$ go tool og-image [flags]

Reads assets/osmo-logo.png, scales it to fit into 400x400 and writes
assets/og-image.png: a 1200x630 black image with the logo in the center.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/base/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
