package amsterdam

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanoramaSearchURL(t *testing.T) {
	t.Parallel()

	got := PanoramaSearchURL(DefaultPanoramaBaseURL, 2021, BBox{100, 200, 300, 400})
	assert.Contains(t, got, "tags=mission-2021&bbox=100,200,300,400&srid=28992")
	assert.Equal(t, "https://api.data.amsterdam.nl/panorama/panoramas/?tags=mission-2021&bbox=100,200,300,400&srid=28992", got)
}

func TestPanoramaSearchURL_Fractional(t *testing.T) {
	t.Parallel()

	got := PanoramaSearchURL("http://local/", 2019, BBox{120000.5, 485000, 121000, 486000.25})
	assert.Equal(t, "http://local/panoramas/?tags=mission-2019&bbox=120000.5,485000,121000,486000.25&srid=28992", got)
}

func TestPanoramaDetailURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"https://api.data.amsterdam.nl/panorama/panoramas/TMX7316010203-000719_pano_0000_000000/",
		PanoramaDetailURL(DefaultPanoramaBaseURL, "TMX7316010203-000719_pano_0000_000000"),
	)
}

func TestBuildingSearchURL(t *testing.T) {
	t.Parallel()

	got := BuildingSearchURL(DefaultBAGBaseURL, Point{52.37, 4.89}, 50)
	assert.Equal(t, "https://api.data.amsterdam.nl/bag/v1.1/pand/?format=json&locatie=52.37%2C4.89%2C50", got)

	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "json", u.Query().Get("format"))
	assert.Equal(t, "52.37,4.89,50", u.Query().Get("locatie"))
}

func TestParseBBox(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    BBox
		wantErr bool
	}{
		{"integers", "100,200,300,400", BBox{100, 200, 300, 400}, false},
		{"spaces", " 1.5, 2 ,3,4 ", BBox{1.5, 2, 3, 4}, false},
		{"too few", "1,2,3", BBox{}, true},
		{"not a number", "1,2,x,4", BBox{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBBox(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBBoxString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "100,200,300.5,400", BBox{100, 200, 300.5, 400}.String())
}
