package export

import (
	"encoding/json"
	"os"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/amsterdam-svi/pkg/amsterdam"
)

// Manifest describes one pairing run.
type Manifest struct {
	RunID       string          `json:"run_id"`
	MissionYear int             `json:"mission_year"`
	BBox        amsterdam.BBox  `json:"bbox"`
	Radius      float64         `json:"radius"`
	CreatedAt   time.Time       `json:"created_at"`
	Panoramas   []ManifestEntry `json:"panoramas"`
}

// ManifestEntry records the files written for one panorama.
type ManifestEntry struct {
	PanoID        string          `json:"pano_id"`
	Location      amsterdam.Point `json:"location"`
	ImageFile     string          `json:"image_file"`
	BuildingsFile string          `json:"buildings_file"`
	ShapeFile     string          `json:"shape_file,omitempty"`
	BuildingIDs   []string        `json:"building_ids"`
}

// WriteManifest writes m as indented JSON.
func WriteManifest(path string, m *Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return eris.Wrap(err, "export: marshal manifest")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "export: write %s", path)
	}
	return nil
}
