package geojson

import (
	"drone-delivery-service/internal/domain"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/paulmach/orb"
	orbgeojson "github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	got := FileName(time.Date(2022, 1, 7, 0, 0, 0, 0, time.UTC))
	if got != "drone-07-01-2022.geojson" {
		t.Fatalf("FileName = %q, want drone-07-01-2022.geojson", got)
	}
}

func TestWriteRouteProducesLineString(t *testing.T) {
	dir := t.TempDir()
	positions := []domain.Position{
		domain.NewPosition(-3.1869, 55.9445),
		domain.NewPosition(-3.18705, 55.9445),
		domain.NewPosition(-3.18705, 55.9445),
	}

	path, err := WriteRoute(dir, time.Date(2022, 3, 15, 0, 0, 0, 0, time.UTC), positions)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "drone-15-03-2022.geojson"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	fc, err := orbgeojson.UnmarshalFeatureCollection(data)
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)

	line, ok := fc.Features[0].Geometry.(orb.LineString)
	require.True(t, ok, "geometry is %T", fc.Features[0].Geometry)
	require.Len(t, line, 3)
	require.InDelta(t, -3.18705, line[1][0], 1e-12)
	require.InDelta(t, 55.9445, line[1][1], 1e-12)
}
