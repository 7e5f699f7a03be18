package cache

import (
	"context"
	"database/sql"
	"drone-delivery-service/internal/domain"
	"drone-delivery-service/internal/platform/obs"
	"errors"
	"fmt"
	"strings"
)

// SQLLocationCache is a SQL-backed cache mapping location codes to coordinates.
type SQLLocationCache struct {
	DB *sql.DB
}

func NewSQLLocationCache(db *sql.DB) *SQLLocationCache {
	return &SQLLocationCache{DB: db}
}

// Fetch cached coordinates for the given location codes.
func (s *SQLLocationCache) GetMany(
	ctx context.Context,
	codes []string,
) (_ map[string]domain.Position, err error) {
	defer obs.Time(ctx, "location.cache.GetMany")(&err)

	if s.DB == nil {
		return nil, errors.New("location cache: db is nil")
	}

	uniq := uniqueTrimmed(codes)
	if len(uniq) == 0 {
		return map[string]domain.Position{}, nil
	}

	q := `
	SELECT code, lon, lat
    FROM location_cache
    WHERE code = ANY($1::text[]);
	`

	rows, err := s.DB.QueryContext(ctx, q, uniq)
	if err != nil {
		return nil, fmt.Errorf("get location cache: query location_cache table: %w", err)
	}
	defer rows.Close()

	out := make(map[string]domain.Position, len(uniq))
	for rows.Next() {
		var code string
		var lon, lat float64
		if err := rows.Scan(&code, &lon, &lat); err != nil {
			return nil, fmt.Errorf("get location cache: scan rows: %w", err)
		}
		out[code] = domain.NewPosition(lon, lat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get location cache: row iteration: %w", err)
	}

	return out, nil
}

// Store code -> coordinate mappings in the cache.
func (s *SQLLocationCache) PutMany(ctx context.Context, results map[string]domain.Position) error {
	if s.DB == nil {
		return errors.New("location cache: db is nil")
	}

	if len(results) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert location cache: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO location_cache (code, lon, lat)
    VALUES ($1, $2, $3)
	ON CONFLICT (code) DO UPDATE
	SET lon = EXCLUDED.lon,
		lat = EXCLUDED.lat;
	`)
	if err != nil {
		return fmt.Errorf("insert location cache: db prepare: %w", err)
	}
	defer stmt.Close()

	for code, p := range results {
		if strings.TrimSpace(code) == "" {
			return fmt.Errorf("insert location cache: empty location code")
		}

		if _, err := stmt.ExecContext(ctx, code, p.X, p.Y); err != nil {
			return fmt.Errorf("insert location cache code=%q: %w", code, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert location cache commit: %w", err)
	}

	return nil
}

// uniqueTrimmed drops blank and repeated keys, keeping first-seen order.
func uniqueTrimmed(keys []string) []string {
	seen := map[string]struct{}{}
	uniq := make([]string, 0, len(keys))
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}

		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		uniq = append(uniq, k)
	}
	return uniq
}
