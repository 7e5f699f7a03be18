package geojson

import (
	"drone-delivery-service/internal/domain"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/paulmach/orb"
	orbgeojson "github.com/paulmach/orb/geojson"
)

// FileName is the name a day's route file is written under.
func FileName(date time.Time) string {
	return fmt.Sprintf("drone-%s.geojson", date.Format("02-01-2006"))
}

// RouteCollection renders the flown positions as a feature collection
// holding a single LineString.
func RouteCollection(positions []domain.Position) *orbgeojson.FeatureCollection {
	line := make(orb.LineString, 0, len(positions))
	for _, p := range positions {
		line = append(line, orb.Point{p.X, p.Y})
	}

	fc := orbgeojson.NewFeatureCollection()
	fc.Append(orbgeojson.NewFeature(line))
	return fc
}

// Marshal encodes the route for positions as GeoJSON.
func Marshal(positions []domain.Position) ([]byte, error) {
	data, err := RouteCollection(positions).MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("geojson marshal: %w", err)
	}
	return data, nil
}

// WriteRoute writes the day's route into dir and returns the file path.
func WriteRoute(dir string, date time.Time, positions []domain.Position) (string, error) {
	data, err := Marshal(positions)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("geojson write: create %q: %w", dir, err)
	}

	path := filepath.Join(dir, FileName(date))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("geojson write: %q: %w", path, err)
	}
	return path, nil
}
