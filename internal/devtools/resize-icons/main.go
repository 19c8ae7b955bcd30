// © 2025 The Osmo Authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"path/filepath"

	"go.astrophena.name/base/cli"

	"osmo.dev/site/internal/assets"
	"osmo.dev/site/internal/devtools"
	"osmo.dev/site/internal/logger"
)

func main() { cli.Main(new(app)) }

type app struct {
	src      string
	dst      string
	manifest bool
	watch    bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.src, "src", assets.DefaultSrc, "Source logo `path`.")
	fs.StringVar(&a.dst, "dst", filepath.Join(".", "assets"), "Write assets to `dir`.")
	fs.BoolVar(&a.manifest, "manifest", false, "Also write site.webmanifest.")
	fs.BoolVar(&a.watch, "watch", false, "Regenerate assets when the source logo changes.")
}

func (a *app) Run(ctx context.Context) error {
	devtools.EnsureRoot()

	env := cli.GetEnv(ctx)
	if len(env.Args) != 0 {
		return fmt.Errorf("%w: resize-icons doesn't accept arguments", cli.ErrInvalidArgs)
	}

	c := &assets.Config{
		Src:      a.src,
		Dst:      a.dst,
		Logf:     logger.Printer(env.Stdout),
		Manifest: a.manifest,
	}
	if a.watch {
		return assets.Watch(ctx, c)
	}

	err := assets.Generate(c)
	if errors.Is(err, assets.ErrSourceNotFound) {
		c.Logf("Source not found: %s", c.Src)
	}
	return err
}
