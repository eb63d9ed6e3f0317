package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/amsterdam-svi/internal/export"
	"github.com/sells-group/amsterdam-svi/pkg/amsterdam"
)

var panoramasCmd = &cobra.Command{
	Use:   "panoramas",
	Short: "Panorama imagery",
	Long:  "List panorama IDs for a mission year and fetch panorama images.",
}

var panoramasIDsCmd = &cobra.Command{
	Use:   "ids",
	Short: "List panorama IDs inside a bounding box",
	RunE: func(cmd *cobra.Command, _ []string) error {
		year, bbox, err := parseMissionFlags(cmd)
		if err != nil {
			return err
		}

		ids := newClient(cfg).PanoramaIDs(cmd.Context(), year, bbox)
		for _, id := range ids {
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		zap.L().Info("panorama ids listed", zap.Int("count", len(ids)))
		return nil
	},
}

var panoramasFetchCmd = &cobra.Command{
	Use:   "fetch <pano-id>...",
	Short: "Fetch panorama images and locations",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outDir, _ := cmd.Flags().GetString("out")
		if outDir == "" {
			outDir = cfg.Output.Dir
		}
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return eris.Wrapf(err, "panoramas fetch: create %s", outDir)
		}

		client := newClient(cfg)
		for _, id := range args {
			if _, err := export.SafeName(id); err != nil {
				return eris.Wrap(err, "panoramas fetch")
			}
		}
		for _, id := range args {
			p, err := client.FetchPanorama(cmd.Context(), id)
			if err != nil {
				return err
			}
			if p == nil {
				zap.L().Warn("panorama not available", zap.String("pano_id", id))
				continue
			}

			path := filepath.Join(outDir, id+".jpg")
			if err := export.WriteJPEG(path, p.Image, cfg.Output.JPEGQuality); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%g,%g\t%s\n", id, p.Location[0], p.Location[1], path)
		}
		return nil
	},
}

// parseMissionFlags reads --year and --bbox.
func parseMissionFlags(cmd *cobra.Command) (int, amsterdam.BBox, error) {
	year, _ := cmd.Flags().GetInt("year")
	bboxStr, _ := cmd.Flags().GetString("bbox")

	if year <= 0 {
		return 0, amsterdam.BBox{}, eris.New("--year is required")
	}
	if bboxStr == "" {
		return 0, amsterdam.BBox{}, eris.New("--bbox is required")
	}
	bbox, err := amsterdam.ParseBBox(bboxStr)
	if err != nil {
		return 0, amsterdam.BBox{}, err
	}
	return year, bbox, nil
}

// addMissionFlags registers --year and --bbox on cmd.
func addMissionFlags(cmd *cobra.Command) {
	cmd.Flags().Int("year", 0, "mission year (e.g., 2021)")
	cmd.Flags().String("bbox", "", "bounding box in RD New: minX,minY,maxX,maxY")
}

func init() {
	addMissionFlags(panoramasIDsCmd)
	panoramasFetchCmd.Flags().String("out", "", "output directory (default output.dir)")
	panoramasCmd.AddCommand(panoramasIDsCmd, panoramasFetchCmd)
	rootCmd.AddCommand(panoramasCmd)
}
