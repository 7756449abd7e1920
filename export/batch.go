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

package export

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/silhouette"
	"seehuhn.de/go/silhouette/vector"
)

// Batch runs several exports of the same document concurrently, with at
// most limit exports in flight (no limit if limit <= 0).  The artifacts are
// returned in the order of opts.  If any export fails, the remaining ones
// are cancelled and the first error is returned.
func Batch(ctx context.Context, doc *vector.Document, opts []Options, limit int) ([]*Artifact, error) {
	logger := silhouette.Logger()
	logger.Debug("starting batch export", "count", len(opts), "limit", limit)

	eg, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}

	res := make([]*Artifact, len(opts))
	for i, opt := range opts {
		eg.Go(func() error {
			a, err := Export(gctx, doc, opt)
			if err != nil {
				return fmt.Errorf("%s export: %w", opt.Format, err)
			}
			res[i] = a
			logger.Debug("exported", "file", a.Filename, "size", a.Size)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		logger.Error("batch export failed", "error", err)
		return nil, err
	}
	return res, nil
}
