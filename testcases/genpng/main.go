// seehuhn.de/go/silhouette - vector silhouettes from raster logos
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command genpng writes the synthetic logos of the testcases package as PNG
// files, for use with the command line tool and external viewers.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"seehuhn.de/go/silhouette/testcases"
)

func main() {
	outDir := flag.String("o", "testdata/logos", "output directory")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, logo := range testcases.Logos {
		fname := filepath.Join(*outDir, logo.Name+".png")
		if err := writePNG(fname, logo); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", logo.Name, err)
			os.Exit(1)
		}
	}
}

func writePNG(fname string, logo testcases.Logo) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return png.Encode(f, logo.Image().NRGBA())
}
