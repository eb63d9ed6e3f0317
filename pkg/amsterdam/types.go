package amsterdam

import (
	"image"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
)

// BBox is a bounding box as (minX, minY, maxX, maxY).
type BBox [4]float64

// ParseBBox parses "x1,y1,x2,y2".
func ParseBBox(s string) (BBox, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return BBox{}, eris.Errorf("amsterdam: bbox needs 4 values, got %d", len(parts))
	}
	var b BBox
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return BBox{}, eris.Wrapf(err, "amsterdam: bbox value %q", p)
		}
		b[i] = v
	}
	return b, nil
}

// String renders the box the way the panorama API expects it.
func (b BBox) String() string {
	return formatNum(b[0]) + "," + formatNum(b[1]) + "," + formatNum(b[2]) + "," + formatNum(b[3])
}

// Point is a 2D coordinate.
type Point [2]float64

// Panorama is a resolved panorama: where it was taken and its image.
type Panorama struct {
	ID       string
	Location Point
	ImageURL string
	Image    image.Image
}

// Polygons maps a building identifier to the outer ring of its footprint.
type Polygons map[string][]geom.Coord

// link is a HAL link object.
type link struct {
	Href string `json:"href"`
}

// panoramaPage is one page of the panorama search response.
type panoramaPage struct {
	Embedded struct {
		Panoramas []struct {
			PanoID string `json:"pano_id"`
		} `json:"panoramas"`
	} `json:"_embedded"`
	Links struct {
		Next *link `json:"next"`
	} `json:"_links"`
}

// panoramaDetail is the panorama detail response.
type panoramaDetail struct {
	PanoID   string `json:"pano_id"`
	Geometry struct {
		Coordinates []float64 `json:"coordinates"`
	} `json:"geometry"`
	Links struct {
		EquirectangularMedium link `json:"equirectangular_medium"`
	} `json:"_links"`
}

// BuildingSummary is one entry of a BAG building search.
type BuildingSummary struct {
	Landelijk string `json:"landelijk_id,omitempty"`
	Display   string `json:"_display,omitempty"`
	Links     struct {
		Self link `json:"self"`
	} `json:"_links"`
}

// SelfHref returns the detail link of the building.
func (b BuildingSummary) SelfHref() string {
	return b.Links.Self.Href
}

// NewBuildingSummary returns a summary pointing at the given detail link.
func NewBuildingSummary(href string) BuildingSummary {
	var b BuildingSummary
	b.Links.Self.Href = href
	return b
}

// buildingSearch is the BAG building search response.
type buildingSearch struct {
	Results []BuildingSummary `json:"results"`
}

// buildingDetail is the BAG building detail response.
type buildingDetail struct {
	PandIdentificatie string `json:"pandidentificatie"`
	Geometrie         struct {
		Coordinates [][][]float64 `json:"coordinates"`
	} `json:"geometrie"`
}

// outerRing returns the first ring of the footprint as go-geom coordinates.
func (d *buildingDetail) outerRing() []geom.Coord {
	if len(d.Geometrie.Coordinates) == 0 {
		return nil
	}
	ring := d.Geometrie.Coordinates[0]
	coords := make([]geom.Coord, 0, len(ring))
	for _, pt := range ring {
		if len(pt) < 2 {
			return nil
		}
		coords = append(coords, geom.Coord{pt[0], pt[1]})
	}
	return coords
}
