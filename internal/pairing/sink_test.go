package pairing

import (
	"context"
	"encoding/json"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/amsterdam-svi/internal/export"
	"github.com/sells-group/amsterdam-svi/pkg/amsterdam"
)

func TestFileSink(t *testing.T) {
	root := t.TempDir()
	sink, err := NewFileSink(root, FileSinkOptions{
		RunID:       "run-abc",
		JPEGQuality: 80,
		Shapefile:   true,
		Run:         testOpts,
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "run-abc"), sink.Dir())

	p := &amsterdam.Panorama{
		ID:       "pano-1",
		Location: amsterdam.Point{4.89, 52.37},
		ImageURL: "http://img/pano-1.jpg",
		Image:    image.NewRGBA(image.Rect(0, 0, 8, 4)),
	}
	polys := amsterdam.Polygons{
		"b2": {{0, 0}, {2, 0}, {2, 2}, {0, 0}},
		"b1": {{5, 5}, {6, 5}, {6, 6}, {5, 5}},
	}
	require.NoError(t, sink.Put(context.Background(), Pair{Panorama: p, Polygons: polys}))
	require.NoError(t, sink.Close())

	dir := sink.Dir()
	assert.FileExists(t, filepath.Join(dir, "pano-1.jpg"))
	assert.FileExists(t, filepath.Join(dir, "pano-1_buildings.geojson"))
	assert.FileExists(t, filepath.Join(dir, "pano-1_buildings.shp"))
	assert.FileExists(t, filepath.Join(dir, "pano-1_buildings.dbf"))
	assert.FileExists(t, filepath.Join(dir, "panoramas.geojson"))

	data, err := os.ReadFile(filepath.Join(dir, "manifest.json"))
	require.NoError(t, err)
	var m export.Manifest
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "run-abc", m.RunID)
	assert.Equal(t, 2021, m.MissionYear)
	assert.Equal(t, testOpts.BBox, m.BBox)
	require.Len(t, m.Panoramas, 1)
	assert.Equal(t, "pano-1", m.Panoramas[0].PanoID)
	assert.Equal(t, []string{"b1", "b2"}, m.Panoramas[0].BuildingIDs)
	assert.Equal(t, "pano-1_buildings.shp", m.Panoramas[0].ShapeFile)
}

func TestFileSink_NoShapefileWhenEmpty(t *testing.T) {
	sink, err := NewFileSink(t.TempDir(), FileSinkOptions{RunID: "r", JPEGQuality: 90, Shapefile: true})
	require.NoError(t, err)

	p := &amsterdam.Panorama{ID: "p", Image: image.NewRGBA(image.Rect(0, 0, 2, 2))}
	require.NoError(t, sink.Put(context.Background(), Pair{Panorama: p, Polygons: amsterdam.Polygons{}}))
	assert.NoFileExists(t, filepath.Join(sink.Dir(), "p_buildings.shp"))
	assert.FileExists(t, filepath.Join(sink.Dir(), "p_buildings.geojson"))
}

func TestFileSink_EmptyRunStillWritesManifest(t *testing.T) {
	sink, err := NewFileSink(t.TempDir(), FileSinkOptions{RunID: "empty", JPEGQuality: 90})
	require.NoError(t, err)
	require.NoError(t, sink.Close())

	data, err := os.ReadFile(filepath.Join(sink.Dir(), "panoramas.geojson"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "FeatureCollection")
	assert.FileExists(t, filepath.Join(sink.Dir(), "manifest.json"))
}

func TestNewFileSink_RequiresRunID(t *testing.T) {
	_, err := NewFileSink(t.TempDir(), FileSinkOptions{})
	require.Error(t, err)
}

func TestFileSink_RejectsUnsafeIDs(t *testing.T) {
	root := t.TempDir()
	sink, err := NewFileSink(root, FileSinkOptions{RunID: "r", JPEGQuality: 90})
	require.NoError(t, err)

	for _, id := range []string{"../evil", "a/b", ".."} {
		p := &amsterdam.Panorama{ID: id, Image: image.NewRGBA(image.Rect(0, 0, 2, 2))}
		err := sink.Put(context.Background(), Pair{Panorama: p, Polygons: amsterdam.Polygons{}})
		assert.ErrorIs(t, err, export.ErrUnsafeName, id)
	}

	assert.NoFileExists(t, filepath.Join(root, "evil.jpg"))
	require.NoError(t, sink.Close())
	data, err := os.ReadFile(filepath.Join(sink.Dir(), "manifest.json"))
	require.NoError(t, err)
	var m export.Manifest
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Empty(t, m.Panoramas)
}
