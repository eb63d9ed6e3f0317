package main

import (
	"encoding/json"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/amsterdam-svi/internal/pairing"
)

var pairCmd = &cobra.Command{
	Use:   "pair",
	Short: "Pair panoramas with surrounding building footprints",
	Long: `Pair every panorama of a mission year inside a bounding box with the
building footprints around it.

Each run writes into <output.dir>/<run-id>/: one JPEG and one GeoJSON file per
panorama, a panoramas.geojson index and a manifest.json.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		opts, err := parsePairOpts(cmd)
		if err != nil {
			return err
		}

		runID := uuid.New().String()
		log := zap.L().With(zap.String("command", "pair"), zap.String("run_id", runID))

		sink, err := pairing.NewFileSink(cfg.Output.Dir, pairing.FileSinkOptions{
			RunID:       runID,
			JPEGQuality: cfg.Output.JPEGQuality,
			Shapefile:   cfg.Output.Shapefile,
			Run:         opts,
		})
		if err != nil {
			return err
		}

		log.Info("starting pairing run",
			zap.Int("mission_year", opts.MissionYear),
			zap.String("bbox", opts.BBox.String()),
			zap.Float64("radius", opts.Radius),
			zap.Int("limit", opts.Limit),
			zap.String("dir", sink.Dir()),
		)

		summary, runErr := pairing.NewRunner(newClient(cfg), sink).Run(ctx, opts)
		if err := sink.Close(); err != nil {
			return eris.Wrap(err, "pair: close sink")
		}
		if runErr != nil {
			return runErr
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	},
}

// parsePairOpts extracts pairing.RunOpts from the cobra command flags.
func parsePairOpts(cmd *cobra.Command) (pairing.RunOpts, error) {
	year, bbox, err := parseMissionFlags(cmd)
	if err != nil {
		return pairing.RunOpts{}, err
	}
	radius, _ := cmd.Flags().GetFloat64("radius")
	limit, _ := cmd.Flags().GetInt("limit")

	if radius <= 0 {
		return pairing.RunOpts{}, eris.New("--radius must be positive")
	}
	if limit < 0 {
		return pairing.RunOpts{}, eris.New("--limit must not be negative")
	}

	return pairing.RunOpts{
		MissionYear: year,
		BBox:        bbox,
		Radius:      radius,
		Limit:       limit,
	}, nil
}

func init() {
	addMissionFlags(pairCmd)
	pairCmd.Flags().Float64("radius", 50, "building search radius around each panorama")
	pairCmd.Flags().Int("limit", 0, "maximum number of panoramas (0 = all)")
	rootCmd.AddCommand(pairCmd)
}
