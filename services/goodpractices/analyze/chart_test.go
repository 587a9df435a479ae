package analyze

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"cescrape/lib/telemetry"

	"github.com/stretchr/testify/require"
)

func TestRenderChart(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "goodpractices/analyze")
	defer cleanup()

	dir := filepath.Join(t.TempDir(), "plots")

	counts := []TagCount{
		{Tag: "Waste", Count: 5},
		{Tag: "Recycling", Count: 2},
	}
	path, err := RenderChart(context.Background(), counts, "Key Area", dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "Key Area_distribution.png"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestRenderChartEmptyTabulation(t *testing.T) {
	dir := t.TempDir()

	path, err := RenderChart(context.Background(), nil, "Sector", dir)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}
