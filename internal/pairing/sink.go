package pairing

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/sells-group/amsterdam-svi/internal/export"
)

// FileSinkOptions configures a FileSink.
type FileSinkOptions struct {
	RunID       string
	JPEGQuality int
	Shapefile   bool
	Run         RunOpts
}

// FileSink writes every pair into a run directory:
//
//	<dir>/<pano_id>.jpg
//	<dir>/<pano_id>_buildings.geojson
//	<dir>/<pano_id>_buildings.shp (optional)
//	<dir>/panoramas.geojson and <dir>/manifest.json on Close
type FileSink struct {
	dir      string
	opts     FileSinkOptions
	manifest *export.Manifest
	points   []*geojson.Feature
}

// NewFileSink creates the run directory under root and returns a sink for it.
func NewFileSink(root string, opts FileSinkOptions) (*FileSink, error) {
	if opts.RunID == "" {
		return nil, eris.New("pairing: run id is required")
	}
	dir := filepath.Join(root, opts.RunID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, eris.Wrapf(err, "pairing: create run dir %s", dir)
	}
	return &FileSink{
		dir:  dir,
		opts: opts,
		manifest: &export.Manifest{
			RunID:       opts.RunID,
			MissionYear: opts.Run.MissionYear,
			BBox:        opts.Run.BBox,
			Radius:      opts.Run.Radius,
			CreatedAt:   time.Now().UTC(),
			Panoramas:   []export.ManifestEntry{},
		},
		points: []*geojson.Feature{},
	}, nil
}

// Dir returns the run directory.
func (s *FileSink) Dir() string {
	return s.dir
}

// Put writes the panorama image and its building footprints.
func (s *FileSink) Put(_ context.Context, p Pair) error {
	pano := p.Panorama
	name, err := export.SafeName(pano.ID)
	if err != nil {
		return err
	}
	entry := export.ManifestEntry{
		PanoID:        pano.ID,
		Location:      pano.Location,
		ImageFile:     name + ".jpg",
		BuildingsFile: name + "_buildings.geojson",
		BuildingIDs:   make([]string, 0, len(p.Polygons)),
	}

	if err := export.WriteJPEG(filepath.Join(s.dir, entry.ImageFile), pano.Image, s.opts.JPEGQuality); err != nil {
		return err
	}

	features, err := export.BuildingFeatures(p.Polygons)
	if err != nil {
		return err
	}
	for _, f := range features {
		entry.BuildingIDs = append(entry.BuildingIDs, f.ID)
	}
	if err := export.WriteGeoJSON(filepath.Join(s.dir, entry.BuildingsFile), features); err != nil {
		return err
	}

	if s.opts.Shapefile && len(p.Polygons) > 0 {
		entry.ShapeFile = name + "_buildings.shp"
		if err := export.WriteShapefile(filepath.Join(s.dir, entry.ShapeFile), p.Polygons); err != nil {
			return err
		}
	}

	s.manifest.Panoramas = append(s.manifest.Panoramas, entry)
	s.points = append(s.points, export.PanoramaFeature(pano, entry.BuildingIDs))
	return nil
}

// Close writes the panorama index and the run manifest.
func (s *FileSink) Close() error {
	if err := export.WriteGeoJSON(filepath.Join(s.dir, "panoramas.geojson"), s.points); err != nil {
		return err
	}
	return export.WriteManifest(filepath.Join(s.dir, "manifest.json"), s.manifest)
}
