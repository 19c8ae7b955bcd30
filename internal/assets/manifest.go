// © 2025 The Osmo Authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package assets

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tdewolff/minify/v2"
	mjson "github.com/tdewolff/minify/v2/json"
)

// webManifest is the subset of the Web App Manifest that references the
// generated icons.
type webManifest struct {
	Name            string         `json:"name"`
	ShortName       string         `json:"short_name"`
	Icons           []manifestIcon `json:"icons"`
	ThemeColor      string         `json:"theme_color"`
	BackgroundColor string         `json:"background_color"`
	Display         string         `json:"display"`
}

type manifestIcon struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes"`
	Type  string `json:"type"`
}

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc("application/json", mjson.Minify)
	return m
}

func (c *Config) writeManifest() error {
	wm := webManifest{
		Name:            "Osmo",
		ShortName:       "Osmo",
		ThemeColor:      c.ThemeColor,
		BackgroundColor: c.BackgroundColor,
		Display:         "standalone",
	}
	for _, t := range []Target{FaviconPNG, AppleTouchIcon} {
		wm.Icons = append(wm.Icons, manifestIcon{
			Src:   "/" + t.Name,
			Sizes: fmt.Sprintf("%dx%d", t.Width, t.Height),
			Type:  "image/png",
		})
	}

	b, err := json.MarshalIndent(wm, "", "  ")
	if err != nil {
		return err
	}
	minified, err := newMinifier().Bytes("application/json", b)
	if err != nil {
		return err
	}

	path := filepath.Join(c.Dst, manifest)
	if err := os.WriteFile(path, minified, 0o644); err != nil {
		return err
	}
	c.Logf("Created %s", path)
	return nil
}
