package export

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/sells-group/amsterdam-svi/pkg/amsterdam"
)

// sortedIDs returns the building identifiers in ascending order.
func sortedIDs(polys amsterdam.Polygons) []string {
	ids := make([]string, 0, len(polys))
	for id := range polys {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// BuildingFeatures converts footprints to GeoJSON polygon features ordered by
// building identifier.
func BuildingFeatures(polys amsterdam.Polygons) ([]*geojson.Feature, error) {
	features := make([]*geojson.Feature, 0, len(polys))
	for _, id := range sortedIDs(polys) {
		poly, err := geom.NewPolygon(geom.XY).SetCoords([][]geom.Coord{polys[id]})
		if err != nil {
			return nil, eris.Wrapf(err, "export: polygon %s", id)
		}
		features = append(features, &geojson.Feature{
			ID:       id,
			Geometry: poly,
			Properties: map[string]interface{}{
				"pandidentificatie": id,
				"points":            len(polys[id]),
			},
		})
	}
	return features, nil
}

// BuildingsGeoJSON encodes footprints as a GeoJSON FeatureCollection.
func BuildingsGeoJSON(polys amsterdam.Polygons) ([]byte, error) {
	features, err := BuildingFeatures(polys)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(&geojson.FeatureCollection{Features: features})
	if err != nil {
		return nil, eris.Wrap(err, "export: marshal buildings")
	}
	return data, nil
}

// PanoramaFeature returns a point feature for a panorama location.
func PanoramaFeature(p *amsterdam.Panorama, buildingIDs []string) *geojson.Feature {
	return &geojson.Feature{
		ID:       p.ID,
		Geometry: geom.NewPointFlat(geom.XY, []float64{p.Location[0], p.Location[1]}),
		Properties: map[string]interface{}{
			"pano_id":   p.ID,
			"image_url": p.ImageURL,
			"buildings": buildingIDs,
		},
	}
}

// WriteGeoJSON marshals features as a FeatureCollection into path.
func WriteGeoJSON(path string, features []*geojson.Feature) error {
	data, err := json.Marshal(&geojson.FeatureCollection{Features: features})
	if err != nil {
		return eris.Wrap(err, "export: marshal features")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "export: write %s", path)
	}
	return nil
}
