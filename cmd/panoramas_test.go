package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/amsterdam-svi/internal/export"
)

func TestPanoramasFetch_RejectsUnsafeID(t *testing.T) {
	srv := fakeAPI(t)

	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	t.Setenv("SVI_PANORAMA_BASE_URL", srv.URL+"/panorama")
	t.Setenv("SVI_BAG_BASE_URL", srv.URL+"/bag")
	t.Setenv("SVI_LOG_LEVEL", "error")

	outDir := filepath.Join(dir, "out")
	rootCmd.SetArgs([]string{"panoramas", "fetch", "p1", "../p1", "--out", outDir})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		panoramasFetchCmd.Flags().Set("out", "")
	})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, export.ErrUnsafeName)
	assert.NoFileExists(t, filepath.Join(outDir, "p1.jpg"))
	assert.NoFileExists(t, filepath.Join(dir, "p1.jpg"))
}
