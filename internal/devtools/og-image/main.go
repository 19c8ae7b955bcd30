// © 2025 The Osmo Authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"path/filepath"

	"go.astrophena.name/base/cli"

	"osmo.dev/site/internal/assets"
	"osmo.dev/site/internal/devtools"
	"osmo.dev/site/internal/logger"
)

func main() { cli.Main(new(app)) }

type app struct {
	dst string
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.dst, "dst", filepath.Join(".", "assets"), "Read osmo-logo.png from and write og-image.png to `dir`.")
}

func (a *app) Run(ctx context.Context) error {
	devtools.EnsureRoot()

	return assets.GenerateOG(&assets.Config{
		Dst:  a.dst,
		Logf: logger.Printer(cli.GetEnv(ctx).Stdout),
	})
}
