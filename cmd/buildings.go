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

var buildingsCmd = &cobra.Command{
	Use:   "buildings",
	Short: "BAG building footprints",
	Long:  "Search BAG buildings around a point and extract their footprint polygons.",
}

var buildingsSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "List buildings within a radius of a point",
	RunE: func(cmd *cobra.Command, _ []string) error {
		observer, radius, err := parseSearchFlags(cmd)
		if err != nil {
			return err
		}

		results, err := newClient(cfg).SearchBuildings(cmd.Context(), observer, radius)
		if err != nil {
			return err
		}
		for _, b := range results {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", b.Landelijk, b.SelfHref())
		}
		return nil
	},
}

var buildingsPolygonsCmd = &cobra.Command{
	Use:   "polygons",
	Short: "Write footprints of buildings within a radius of a point",
	RunE: func(cmd *cobra.Command, _ []string) error {
		observer, radius, err := parseSearchFlags(cmd)
		if err != nil {
			return err
		}
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = filepath.Join(cfg.Output.Dir, "buildings.geojson")
		}

		client := newClient(cfg)
		results, err := client.SearchBuildings(cmd.Context(), observer, radius)
		if err != nil {
			return err
		}
		polys := client.BuildingPolygons(cmd.Context(), results)

		if err := writeBuildings(out, polys, cfg.Output.Shapefile); err != nil {
			return err
		}
		zap.L().Info("building footprints written",
			zap.String("path", out),
			zap.Int("buildings", len(results)),
			zap.Int("polygons", len(polys)),
		)
		return nil
	},
}

// writeBuildings writes footprints as GeoJSON to path and, when shapefile is
// set, as a shapefile next to it.
func writeBuildings(path string, polys amsterdam.Polygons, shapefile bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return eris.Wrapf(err, "buildings: create %s", filepath.Dir(path))
	}
	data, err := export.BuildingsGeoJSON(polys)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "buildings: write %s", path)
	}
	if shapefile && len(polys) > 0 {
		shpPath := path[:len(path)-len(filepath.Ext(path))] + ".shp"
		if err := export.WriteShapefile(shpPath, polys); err != nil {
			return err
		}
	}
	return nil
}

// parseSearchFlags reads --x, --y and --radius.
func parseSearchFlags(cmd *cobra.Command) (amsterdam.Point, float64, error) {
	x, _ := cmd.Flags().GetFloat64("x")
	y, _ := cmd.Flags().GetFloat64("y")
	radius, _ := cmd.Flags().GetFloat64("radius")

	if !cmd.Flags().Changed("x") || !cmd.Flags().Changed("y") {
		return amsterdam.Point{}, 0, eris.New("--x and --y are required")
	}
	if radius <= 0 {
		return amsterdam.Point{}, 0, eris.New("--radius must be positive")
	}
	return amsterdam.Point{x, y}, radius, nil
}

// addSearchFlags registers --x, --y and --radius on cmd.
func addSearchFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("x", 0, "observer first coordinate")
	cmd.Flags().Float64("y", 0, "observer second coordinate")
	cmd.Flags().Float64("radius", 50, "search radius in meters")
}

func init() {
	addSearchFlags(buildingsSearchCmd)
	addSearchFlags(buildingsPolygonsCmd)
	buildingsPolygonsCmd.Flags().String("out", "", "GeoJSON output path (default <output.dir>/buildings.geojson)")
	buildingsCmd.AddCommand(buildingsSearchCmd, buildingsPolygonsCmd)
	rootCmd.AddCommand(buildingsCmd)
}
