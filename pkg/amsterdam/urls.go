package amsterdam

import (
	"fmt"
	"strconv"
	"strings"
)

// SRID is the spatial reference used for panorama bounding boxes (RD New).
const SRID = 28992

// formatNum renders a coordinate with the shortest exact representation,
// so 100 becomes "100" and 100.5 stays "100.5".
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// PanoramaSearchURL builds the panorama search URL for a mission year and
// bounding box.
func PanoramaSearchURL(baseURL string, missionYear int, bbox BBox) string {
	return fmt.Sprintf("%s/panoramas/?tags=mission-%d&bbox=%s,%s,%s,%s&srid=%d",
		strings.TrimRight(baseURL, "/"),
		missionYear,
		formatNum(bbox[0]), formatNum(bbox[1]), formatNum(bbox[2]), formatNum(bbox[3]),
		SRID,
	)
}

// PanoramaDetailURL builds the detail URL for a single panorama.
func PanoramaDetailURL(baseURL, panoID string) string {
	return fmt.Sprintf("%s/panoramas/%s/", strings.TrimRight(baseURL, "/"), panoID)
}

// BuildingSearchURL builds the BAG building search URL for buildings within
// radius of the observer. The locatie separators are sent pre-escaped.
func BuildingSearchURL(baseURL string, observer Point, radius float64) string {
	return fmt.Sprintf("%s/pand/?format=json&locatie=%s%%2C%s%%2C%s",
		strings.TrimRight(baseURL, "/"),
		formatNum(observer[0]), formatNum(observer[1]), formatNum(radius),
	)
}
