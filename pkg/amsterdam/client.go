// Package amsterdam provides a client for the Amsterdam open-data panorama
// and BAG (buildings registry) APIs.
package amsterdam

import (
	"context"
	"errors"
	"image"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/amsterdam-svi/internal/fetcher"
)

const (
	// DefaultPanoramaBaseURL is the public panorama API.
	DefaultPanoramaBaseURL = "https://api.data.amsterdam.nl/panorama"
	// DefaultBAGBaseURL is the public BAG v1.1 API.
	DefaultBAGBaseURL = "https://api.data.amsterdam.nl/bag/v1.1"
)

var (
	// ErrImageFetch is returned when a panorama resolved but its image could not be loaded.
	ErrImageFetch = errors.New("amsterdam: panorama image fetch failed")
	// ErrBuildingSearch is returned when the building search request fails.
	ErrBuildingSearch = errors.New("amsterdam: building search failed")
)

// Client defines the panorama and building operations.
type Client interface {
	// PanoramaIDs follows pagination and returns every panorama ID for the
	// mission year inside bbox, in server order. A failed page ends the
	// walk and the IDs collected so far are returned.
	PanoramaIDs(ctx context.Context, missionYear int, bbox BBox) []string

	// FetchPanorama resolves a panorama ID to its location and image.
	// Returns (nil, nil) when the panorama detail cannot be fetched.
	FetchPanorama(ctx context.Context, panoID string) (*Panorama, error)

	// SearchBuildings returns the buildings within radius of observer.
	SearchBuildings(ctx context.Context, observer Point, radius float64) ([]BuildingSummary, error)

	// BuildingPolygons resolves each summary to its footprint. Buildings
	// whose detail fails or whose footprint is unusable are skipped.
	BuildingPolygons(ctx context.Context, buildings []BuildingSummary) Polygons

	// DownloadImage fetches and decodes an arbitrary image URL. Returns nil
	// on failure.
	DownloadImage(ctx context.Context, imageURL string) image.Image
}

// Option configures the client.
type Option func(*httpClient)

// WithPanoramaBaseURL sets a custom panorama API base URL (for testing).
func WithPanoramaBaseURL(url string) Option {
	return func(c *httpClient) {
		c.panoBaseURL = url
	}
}

// WithBAGBaseURL sets a custom BAG API base URL (for testing).
func WithBAGBaseURL(url string) Option {
	return func(c *httpClient) {
		c.bagBaseURL = url
	}
}

type httpClient struct {
	fetcher     fetcher.Fetcher
	panoBaseURL string
	bagBaseURL  string
}

// NewClient creates a new Amsterdam open-data client on top of f.
func NewClient(f fetcher.Fetcher, opts ...Option) Client {
	c := &httpClient{
		fetcher:     f,
		panoBaseURL: DefaultPanoramaBaseURL,
		bagBaseURL:  DefaultBAGBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// getJSON performs a GET and decodes the JSON body into a T. Failures are
// logged and reported as nil.
func getJSON[T any](ctx context.Context, f fetcher.Fetcher, url string) *T {
	v, err := fetcher.GetJSON[T](ctx, f, url)
	if err != nil {
		zap.L().Warn("amsterdam: request failed",
			zap.String("url", url),
			zap.Error(err),
		)
		return nil
	}
	return v
}

func (c *httpClient) PanoramaIDs(ctx context.Context, missionYear int, bbox BBox) []string {
	pageURL := PanoramaSearchURL(c.panoBaseURL, missionYear, bbox)
	var ids []string

	for pages := 0; pageURL != ""; pages++ {
		if ctx.Err() != nil {
			zap.L().Warn("amsterdam: panorama pagination cancelled",
				zap.Int("pages", pages),
				zap.Int("ids", len(ids)),
			)
			break
		}

		page := getJSON[panoramaPage](ctx, c.fetcher, pageURL)
		if page == nil {
			break
		}

		for _, p := range page.Embedded.Panoramas {
			ids = append(ids, p.PanoID)
		}

		next := ""
		if page.Links.Next != nil {
			next = page.Links.Next.Href
		}
		if next == pageURL {
			zap.L().Warn("amsterdam: panorama next link points at current page",
				zap.String("url", pageURL),
				zap.Int("pages", pages+1),
			)
			break
		}
		pageURL = next
	}

	zap.L().Debug("amsterdam: panorama ids collected",
		zap.Int("mission_year", missionYear),
		zap.String("bbox", bbox.String()),
		zap.Int("count", len(ids)),
	)
	return ids
}

func (c *httpClient) FetchPanorama(ctx context.Context, panoID string) (*Panorama, error) {
	detail := getJSON[panoramaDetail](ctx, c.fetcher, PanoramaDetailURL(c.panoBaseURL, panoID))
	if detail == nil {
		return nil, nil
	}

	coords := detail.Geometry.Coordinates
	if len(coords) < 2 {
		return nil, eris.Wrapf(ErrImageFetch, "panorama %s: missing geometry", panoID)
	}
	href := detail.Links.EquirectangularMedium.Href
	if href == "" {
		return nil, eris.Wrapf(ErrImageFetch, "panorama %s: missing image link", panoID)
	}

	img, err := fetcher.GetImage(ctx, c.fetcher, href)
	if err != nil {
		return nil, eris.Wrapf(ErrImageFetch, "panorama %s: %v", panoID, err)
	}

	return &Panorama{
		ID:       panoID,
		Location: Point{coords[0], coords[1]},
		ImageURL: href,
		Image:    img,
	}, nil
}

func (c *httpClient) SearchBuildings(ctx context.Context, observer Point, radius float64) ([]BuildingSummary, error) {
	searchURL := BuildingSearchURL(c.bagBaseURL, observer, radius)
	resp, err := fetcher.GetJSON[buildingSearch](ctx, c.fetcher, searchURL)
	if err != nil {
		zap.L().Warn("amsterdam: request failed",
			zap.String("url", searchURL),
			zap.Error(err),
		)
		return nil, eris.Wrapf(ErrBuildingSearch, "%v", err)
	}
	return resp.Results, nil
}

func (c *httpClient) BuildingPolygons(ctx context.Context, buildings []BuildingSummary) Polygons {
	polys := make(Polygons)
	for _, b := range buildings {
		href := b.SelfHref()
		if href == "" {
			zap.L().Debug("amsterdam: building without self link")
			continue
		}

		detail := getJSON[buildingDetail](ctx, c.fetcher, href)
		if detail == nil {
			continue
		}

		ring := detail.outerRing()
		if len(ring) <= 2 || detail.PandIdentificatie == "" {
			zap.L().Debug("amsterdam: skipping building footprint",
				zap.String("pand_id", detail.PandIdentificatie),
				zap.Int("points", len(ring)),
			)
			continue
		}
		polys[detail.PandIdentificatie] = ring
	}
	return polys
}

func (c *httpClient) DownloadImage(ctx context.Context, imageURL string) image.Image {
	img, err := fetcher.GetImage(ctx, c.fetcher, imageURL)
	if err != nil {
		zap.L().Warn("amsterdam: image download failed",
			zap.String("url", imageURL),
			zap.Error(err),
		)
		return nil
	}
	return img
}
