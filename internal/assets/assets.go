// © 2025 The Osmo Authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package assets generates the Osmo site image assets from the source logo.

# Generated Files

Generate writes the following files into the asset directory, overwriting
any existing ones:

	osmo-logo.png         1024x1024 copy of the logo
	favicon.png           32x32
	favicon.ico           16x16, 24x24 and 32x32, scaled from the favicon.png bitmap
	apple-touch-icon.png  180x180, for iOS home screens
	og-image.png          1200x630, logo (at most 400x400) centered on black
	site.webmanifest      optional, see Config.Manifest

Every file is produced from the same decoded source image. Running Generate
twice over the same source yields byte-identical files.
*/
package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"osmo.dev/site/internal/logger"
)

// ErrSourceNotFound is returned by Generate when the source image does not
// exist. Nothing is written in that case.
var ErrSourceNotFound = errors.New("source not found")

// DefaultSrc is the path to the source logo, relative to the repository root.
var DefaultSrc = filepath.Join("design", "osmo-logo.png")

// Config configures asset generation.
type Config struct {
	// Src is the source image. If empty, uses DefaultSrc.
	Src string
	// Dst is the directory where to write assets. If empty, uses the assets
	// directory.
	Dst string
	// Logf prints one confirmation line per written file. If nil, prints to
	// standard output.
	Logf logger.Logf
	// Manifest determines if site.webmanifest referencing the icons should be
	// written too.
	Manifest bool
	// ThemeColor and BackgroundColor are used in site.webmanifest. Both
	// default to "#000000", the color of the og-image.png canvas.
	ThemeColor      string
	BackgroundColor string
}

func (c *Config) setDefaults() {
	if c.Src == "" {
		c.Src = DefaultSrc
	}
	if c.Dst == "" {
		c.Dst = filepath.Join(".", "assets")
	}
	if c.Logf == nil {
		c.Logf = logger.Printer(os.Stdout)
	}
	if c.ThemeColor == "" {
		c.ThemeColor = "#000000"
	}
	if c.BackgroundColor == "" {
		c.BackgroundColor = "#000000"
	}
}

// Format is an output file format.
type Format int

// Supported formats.
const (
	PNG Format = iota
	ICO
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "PNG"
	case ICO:
		return "ICO"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Target describes a single generated file.
type Target struct {
	Name   string
	Width  int
	Height int
	Format Format
}

// Fixed targets.
var (
	Logo           = Target{Name: "osmo-logo.png", Width: 1024, Height: 1024, Format: PNG}
	FaviconPNG     = Target{Name: "favicon.png", Width: 32, Height: 32, Format: PNG}
	FaviconICO     = Target{Name: "favicon.ico", Width: 32, Height: 32, Format: ICO}
	AppleTouchIcon = Target{Name: "apple-touch-icon.png", Width: 180, Height: 180, Format: PNG}
	OGImage        = Target{Name: "og-image.png", Width: 1200, Height: 630, Format: PNG}
)

// Targets lists all image targets in the order Generate writes them.
var Targets = []Target{Logo, FaviconPNG, FaviconICO, AppleTouchIcon, OGImage}

const (
	ogLogoSize = 400 // max logo width and height on og-image.png
	manifest   = "site.webmanifest"
)

// ogBackground is the og-image.png canvas color.
var ogBackground = color.RGBA{0, 0, 0, 0xff}

// Generate generates all assets from c.Src into c.Dst.
func Generate(c *Config) error {
	c.setDefaults()

	if _, err := os.Stat(c.Src); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrSourceNotFound, c.Src)
	}

	logo, err := Load(c.Src)
	if err != nil {
		return err
	}

	if err := c.save(Logo, Resize(logo, Logo.Width, Logo.Height), false); err != nil {
		return err
	}

	favicon := Resize(logo, FaviconPNG.Width, FaviconPNG.Height)
	if err := c.save(FaviconPNG, favicon, true); err != nil {
		return err
	}
	// The ICO variant reuses the favicon bitmap.
	if err := c.save(FaviconICO, favicon, true); err != nil {
		return err
	}

	if err := c.save(AppleTouchIcon, Resize(logo, AppleTouchIcon.Width, AppleTouchIcon.Height), true); err != nil {
		return err
	}

	og := Compose(Thumbnail(logo, ogLogoSize), OGImage.Width, OGImage.Height, ogBackground)
	if err := c.save(OGImage, og, true); err != nil {
		return err
	}

	if c.Manifest {
		if err := c.writeManifest(); err != nil {
			return err
		}
	}

	c.Logf("Done.")
	return nil
}

// GenerateOG regenerates only og-image.png, using osmo-logo.png from c.Dst
// as the source. c.Src is ignored.
func GenerateOG(c *Config) error {
	c.setDefaults()

	logo, err := Load(filepath.Join(c.Dst, Logo.Name))
	if err != nil {
		return err
	}
	return c.save(OGImage, Compose(Thumbnail(logo, ogLogoSize), OGImage.Width, OGImage.Height, ogBackground), false)
}

func (c *Config) save(t Target, img image.Image, withSize bool) error {
	path := filepath.Join(c.Dst, t.Name)
	if err := writeFile(path, func(w io.Writer) error {
		switch t.Format {
		case ICO:
			return EncodeICO(w, img)
		default:
			return EncodePNG(w, img)
		}
	}); err != nil {
		return err
	}

	if withSize {
		c.Logf("Created %s (%dx%d)", path, t.Width, t.Height)
	} else {
		c.Logf("Created %s", path)
	}
	return nil
}

func writeFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
