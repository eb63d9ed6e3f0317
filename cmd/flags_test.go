package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/amsterdam-svi/pkg/amsterdam"
)

// newPairFlagsCmd creates a fresh cobra.Command with the same flags as
// pairCmd, so tests don't share mutable flag state.
func newPairFlagsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test-pair"}
	addMissionFlags(cmd)
	cmd.Flags().Float64("radius", 50, "")
	cmd.Flags().Int("limit", 0, "")
	return cmd
}

func newSearchFlagsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test-search"}
	addSearchFlags(cmd)
	return cmd
}

func TestParsePairOpts(t *testing.T) {
	cmd := newPairFlagsCmd()
	require.NoError(t, cmd.Flags().Set("year", "2021"))
	require.NoError(t, cmd.Flags().Set("bbox", "100,200,300,400"))
	require.NoError(t, cmd.Flags().Set("limit", "5"))

	opts, err := parsePairOpts(cmd)
	require.NoError(t, err)
	assert.Equal(t, 2021, opts.MissionYear)
	assert.Equal(t, amsterdam.BBox{100, 200, 300, 400}, opts.BBox)
	assert.InDelta(t, 50.0, opts.Radius, 1e-9)
	assert.Equal(t, 5, opts.Limit)
}

func TestParsePairOpts_Errors(t *testing.T) {
	tests := []struct {
		name  string
		flags map[string]string
		want  string
	}{
		{"missing year", map[string]string{"bbox": "1,2,3,4"}, "--year is required"},
		{"missing bbox", map[string]string{"year": "2021"}, "--bbox is required"},
		{"bad bbox", map[string]string{"year": "2021", "bbox": "1,2"}, "bbox needs 4 values"},
		{"bad radius", map[string]string{"year": "2021", "bbox": "1,2,3,4", "radius": "0"}, "--radius must be positive"},
		{"negative limit", map[string]string{"year": "2021", "bbox": "1,2,3,4", "limit": "-1"}, "--limit must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newPairFlagsCmd()
			for k, v := range tt.flags {
				require.NoError(t, cmd.Flags().Set(k, v))
			}
			_, err := parsePairOpts(cmd)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseSearchFlags(t *testing.T) {
	cmd := newSearchFlagsCmd()
	require.NoError(t, cmd.Flags().Set("x", "121000"))
	require.NoError(t, cmd.Flags().Set("y", "487000"))
	require.NoError(t, cmd.Flags().Set("radius", "30"))

	p, r, err := parseSearchFlags(cmd)
	require.NoError(t, err)
	assert.Equal(t, amsterdam.Point{121000, 487000}, p)
	assert.InDelta(t, 30.0, r, 1e-9)
}

func TestParseSearchFlags_MissingPoint(t *testing.T) {
	cmd := newSearchFlagsCmd()
	require.NoError(t, cmd.Flags().Set("x", "1"))

	_, _, err := parseSearchFlags(cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--x and --y are required")
}
