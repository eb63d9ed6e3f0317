package pairing

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/amsterdam-svi/internal/export"
	"github.com/sells-group/amsterdam-svi/pkg/amsterdam"
)

// Pair is a panorama together with the buildings found around it.
type Pair struct {
	Panorama  *amsterdam.Panorama
	Buildings []amsterdam.BuildingSummary
	Polygons  amsterdam.Polygons
}

// Sink receives completed pairs.
type Sink interface {
	Put(ctx context.Context, p Pair) error
}

// RunOpts selects the panoramas to pair.
type RunOpts struct {
	MissionYear int
	BBox        amsterdam.BBox
	Radius      float64
	Limit       int // 0 means every panorama
}

// Summary counts what happened during a run.
type Summary struct {
	IDs     int `json:"ids"`
	Paired  int `json:"paired"`
	Skipped int `json:"skipped"`
}

// Runner drives the panorama to building pairing.
type Runner struct {
	client amsterdam.Client
	sink   Sink
}

// NewRunner creates a Runner writing pairs to sink.
func NewRunner(client amsterdam.Client, sink Sink) *Runner {
	return &Runner{client: client, sink: sink}
}

// Run fetches panorama IDs and pairs each panorama with its buildings.
// Panoramas that cannot be resolved, whose building search fails, or whose
// id is not usable as a file name are skipped. A sink error aborts the run.
func (r *Runner) Run(ctx context.Context, opts RunOpts) (*Summary, error) {
	log := zap.L().With(
		zap.String("component", "pairing.runner"),
		zap.Int("mission_year", opts.MissionYear),
		zap.String("bbox", opts.BBox.String()),
	)
	start := time.Now()

	ids := r.client.PanoramaIDs(ctx, opts.MissionYear, opts.BBox)
	if opts.Limit > 0 && len(ids) > opts.Limit {
		ids = ids[:opts.Limit]
	}
	summary := &Summary{IDs: len(ids)}
	log.Info("panoramas selected", zap.Int("count", len(ids)))

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return summary, eris.Wrap(err, "pairing: cancelled")
		}

		pLog := log.With(zap.String("pano_id", id))

		if _, err := export.SafeName(id); err != nil {
			pLog.Warn("panorama id rejected", zap.Error(err))
			summary.Skipped++
			continue
		}

		pano, err := r.client.FetchPanorama(ctx, id)
		if err != nil {
			pLog.Warn("panorama fetch failed", zap.Error(err))
			summary.Skipped++
			continue
		}
		if pano == nil {
			pLog.Debug("panorama not available")
			summary.Skipped++
			continue
		}

		buildings, err := r.client.SearchBuildings(ctx, pano.Location, opts.Radius)
		if err != nil {
			pLog.Warn("building search failed", zap.Error(err))
			summary.Skipped++
			continue
		}

		polys := r.client.BuildingPolygons(ctx, buildings)
		if err := r.sink.Put(ctx, Pair{Panorama: pano, Buildings: buildings, Polygons: polys}); err != nil {
			return summary, eris.Wrapf(err, "pairing: write %s", id)
		}
		summary.Paired++

		pLog.Debug("panorama paired",
			zap.Int("buildings", len(buildings)),
			zap.Int("polygons", len(polys)),
		)
	}

	log.Info("pairing complete",
		zap.Int("paired", summary.Paired),
		zap.Int("skipped", summary.Skipped),
		zap.Duration("elapsed", time.Since(start)),
	)
	return summary, nil
}
