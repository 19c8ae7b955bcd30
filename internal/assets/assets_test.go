// © 2025 The Osmo Authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package assets

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.astrophena.name/base/testutil"

	"osmo.dev/site/internal/logger"
)

var (
	red   = color.NRGBA{0xff, 0, 0, 0xff}
	black = color.RGBA{0, 0, 0, 0xff}
)

func solid(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func writeSource(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logo.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func decodeFile(t *testing.T, path string) image.Image {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Ext(path) == ".ico" {
		b = icoPayload(t, b)
	}
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("%s: %v", path, err)
	}
	return img
}

type icoEntry struct {
	width, height int
	size, offset  int
}

func icoEntries(t *testing.T, b []byte) []icoEntry {
	t.Helper()
	if len(b) < icoHeaderSize {
		t.Fatalf("ICO file is too short: %d bytes", len(b))
	}
	n := int(binary.LittleEndian.Uint16(b[4:]))
	if len(b) < icoHeaderSize+n*icoEntrySize {
		t.Fatalf("ICO file is too short for %d entries: %d bytes", n, len(b))
	}
	entries := make([]icoEntry, n)
	for i := range entries {
		e := b[icoHeaderSize+i*icoEntrySize:]
		entries[i] = icoEntry{
			width:  int(e[0]),
			height: int(e[1]),
			size:   int(binary.LittleEndian.Uint32(e[8:])),
			offset: int(binary.LittleEndian.Uint32(e[12:])),
		}
		if entries[i].width == 0 {
			entries[i].width = icoMaxSize
		}
		if entries[i].height == 0 {
			entries[i].height = icoMaxSize
		}
	}
	return entries
}

// icoPayload returns the PNG payload of the largest entry.
func icoPayload(t *testing.T, b []byte) []byte {
	t.Helper()
	entries := icoEntries(t, b)
	if len(entries) == 0 {
		t.Fatal("ICO file has no entries")
	}
	last := entries[len(entries)-1]
	return b[last.offset : last.offset+last.size]
}

func isOpaque(img image.Image) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}

func TestGenerate(t *testing.T) {
	src := writeSource(t, solid(2000, 2000, red))
	dst := t.TempDir()

	var out strings.Builder
	if err := Generate(&Config{
		Src:  src,
		Dst:  dst,
		Logf: logger.Printer(&out),
	}); err != nil {
		t.Fatal(err)
	}

	for _, target := range Targets {
		t.Run(target.Name, func(t *testing.T) {
			img := decodeFile(t, filepath.Join(dst, target.Name))
			testutil.AssertEqual(t, img.Bounds().Size(), image.Pt(target.Width, target.Height))
		})
	}

	if !isOpaque(decodeFile(t, filepath.Join(dst, AppleTouchIcon.Name))) {
		t.Error("apple-touch-icon.png has transparent pixels")
	}

	og := decodeFile(t, filepath.Join(dst, OGImage.Name))
	testutil.AssertEqual(t, color.RGBAModel.Convert(og.At(0, 0)), color.Color(black))
	testutil.AssertEqual(t, color.NRGBAModel.Convert(og.At(600, 315)), color.Color(red))

	wantOut := strings.Join([]string{
		"Created " + filepath.Join(dst, "osmo-logo.png"),
		"Created " + filepath.Join(dst, "favicon.png") + " (32x32)",
		"Created " + filepath.Join(dst, "favicon.ico") + " (32x32)",
		"Created " + filepath.Join(dst, "apple-touch-icon.png") + " (180x180)",
		"Created " + filepath.Join(dst, "og-image.png") + " (1200x630)",
		"Done.",
		"",
	}, "\n")
	testutil.AssertEqual(t, out.String(), wantOut)

	if _, err := os.Stat(filepath.Join(dst, manifest)); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("%s must not be written unless requested", manifest)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	logo := solid(300, 200, red)
	for y := 0; y < 200; y++ {
		for x := 150; x < 300; x++ {
			logo.Set(x, y, color.NRGBA{0, 0x80, 0xff, uint8(x)})
		}
	}
	src := writeSource(t, logo)

	dst1, dst2 := t.TempDir(), t.TempDir()
	for _, dst := range []string{dst1, dst2} {
		if err := Generate(&Config{Src: src, Dst: dst, Logf: logger.Discard, Manifest: true}); err != nil {
			t.Fatal(err)
		}
	}

	names := []string{manifest}
	for _, target := range Targets {
		names = append(names, target.Name)
	}
	for _, name := range names {
		b1, err := os.ReadFile(filepath.Join(dst1, name))
		if err != nil {
			t.Fatal(err)
		}
		b2, err := os.ReadFile(filepath.Join(dst2, name))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(b1, b2) {
			t.Errorf("%s differs between runs", name)
		}
	}
}

func TestGenerateSourceNotFound(t *testing.T) {
	dst := t.TempDir()
	src := filepath.Join(t.TempDir(), "missing.png")

	var out strings.Builder
	err := Generate(&Config{Src: src, Dst: dst, Logf: logger.Printer(&out)})
	if !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("want ErrSourceNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), src) {
		t.Errorf("error %q doesn't mention the missing path", err)
	}

	entries, err := os.ReadDir(dst)
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, len(entries), 0)
	testutil.AssertEqual(t, out.String(), "")
}

func TestGenerateCorruptSource(t *testing.T) {
	src := filepath.Join(t.TempDir(), "logo.png")
	if err := os.WriteFile(src, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Generate(&Config{Src: src, Dst: t.TempDir(), Logf: logger.Discard}); !errors.Is(err, image.ErrFormat) {
		t.Fatalf("want image.ErrFormat, got %v", err)
	}
}

func TestGenerateOG(t *testing.T) {
	dst := t.TempDir()
	f, err := os.Create(filepath.Join(dst, Logo.Name))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, solid(1024, 512, red)); err != nil {
		t.Fatal(err)
	}
	f.Close()

	var out strings.Builder
	if err := GenerateOG(&Config{Dst: dst, Logf: logger.Printer(&out)}); err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, out.String(), "Created "+filepath.Join(dst, OGImage.Name)+"\n")

	og := decodeFile(t, filepath.Join(dst, OGImage.Name))
	testutil.AssertEqual(t, og.Bounds().Size(), image.Pt(1200, 630))
	// The 1024x512 logo becomes 400x200 at (400, 215).
	testutil.AssertEqual(t, color.NRGBAModel.Convert(og.At(400, 215)), color.Color(red))
	testutil.AssertEqual(t, color.NRGBAModel.Convert(og.At(799, 414)), color.Color(red))
	testutil.AssertEqual(t, color.RGBAModel.Convert(og.At(600, 214)), color.Color(black))
	testutil.AssertEqual(t, color.RGBAModel.Convert(og.At(600, 415)), color.Color(black))
}

func TestManifest(t *testing.T) {
	src := writeSource(t, solid(64, 64, red))
	dst := t.TempDir()
	if err := Generate(&Config{Src: src, Dst: dst, Logf: logger.Discard, Manifest: true, ThemeColor: "#101010"}); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(filepath.Join(dst, manifest))
	if err != nil {
		t.Fatal(err)
	}
	if bytes.ContainsAny(b, "\n\t") {
		t.Errorf("%s is not minified: %s", manifest, b)
	}

	var wm webManifest
	if err := json.Unmarshal(b, &wm); err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, wm.ThemeColor, "#101010")
	testutil.AssertEqual(t, wm.BackgroundColor, "#000000")
	testutil.AssertEqual(t, wm.Icons, []manifestIcon{
		{Src: "/favicon.png", Sizes: "32x32", Type: "image/png"},
		{Src: "/apple-touch-icon.png", Sizes: "180x180", Type: "image/png"},
	})
}
