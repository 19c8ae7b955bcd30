// © 2025 The Osmo Authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package site holds the development tooling of the Osmo site.
//
// The site icons and the Open Graph image are generated from the source logo
// with:
//
//	$ go tool resize-icons
//
// See the assets package for the list of generated files.
package site

//go:generate go tool addcopyright
