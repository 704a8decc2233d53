package geocoding

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"meccz.org/internal/geo"
	"meccz.org/internal/logging"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const createGeocodeCacheTable = `
CREATE TABLE IF NOT EXISTS geocode_cache (
	address    TEXT PRIMARY KEY,
	lat        REAL NOT NULL,
	lon        REAL NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// SqliteCache is a SQLite backed cache mapping normalized addresses to coordinates.
type SqliteCache struct {
	db     *sql.DB
	logger *slog.Logger
}

// OpenSqliteCache opens (or creates) the cache database at path. ":memory:" is accepted.
func OpenSqliteCache(ctx context.Context, path string, logger *slog.Logger) (*SqliteCache, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open geocode cache %q: %w", path, err)
	}
	// An in-memory database only exists on the connection that created it.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		logging.SafeCloseWithLogging(db, logger, "geocode_cache_db")
		return nil, fmt.Errorf("open geocode cache %q: verify connection: %w", path, err)
	}
	if _, err := db.ExecContext(ctx, createGeocodeCacheTable); err != nil {
		logging.SafeCloseWithLogging(db, logger, "geocode_cache_db")
		return nil, fmt.Errorf("open geocode cache %q: create schema: %w", path, err)
	}

	cache := &SqliteCache{db: db, logger: logger}
	entries, err := cache.Len(ctx)
	if err != nil {
		logging.SafeCloseWithLogging(db, logger, "geocode_cache_db")
		return nil, fmt.Errorf("open geocode cache %q: %w", path, err)
	}

	logging.LogOperation(logger, "geocode_cache_opened",
		slog.String("path", path),
		slog.Int("entries", entries),
		slog.String("component", "geocoding"))

	return cache, nil
}

// Get returns the cached coordinate for address, if any.
func (s *SqliteCache) Get(ctx context.Context, address string) (geo.Coordinate, bool, error) {
	var c geo.Coordinate
	err := s.db.QueryRowContext(ctx,
		`SELECT lat, lon FROM geocode_cache WHERE address = ?;`,
		NormalizeAddress(address),
	).Scan(&c.Lat, &c.Lon)
	if errors.Is(err, sql.ErrNoRows) {
		return geo.Coordinate{}, false, nil
	}
	if err != nil {
		return geo.Coordinate{}, false, fmt.Errorf("get geocode cache: %w", err)
	}
	return c, true, nil
}

// PutMany stores address -> coordinate mappings in a single transaction.
func (s *SqliteCache) PutMany(ctx context.Context, results map[string]geo.Coordinate) error {
	if len(results) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert geocode cache: db begin: %w", err)
	}
	defer logging.SafeRollbackWithLogging(tx, s.logger, "geocode_cache_put")

	stmt, err := tx.PrepareContext(ctx, `
	INSERT OR REPLACE INTO geocode_cache (address, lat, lon)
	VALUES (?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("insert geocode cache: db prepare: %w", err)
	}
	defer logging.SafeCloseWithLogging(stmt, s.logger, "geocode_cache_stmt")

	for address, c := range results {
		key := NormalizeAddress(address)
		if key == "" {
			return errors.New("insert geocode cache: empty address key")
		}
		if err := c.Validate(); err != nil {
			return fmt.Errorf("insert geocode cache address=%q: %w", key, err)
		}
		if _, err := stmt.ExecContext(ctx, key, c.Lat, c.Lon); err != nil {
			return fmt.Errorf("insert geocode cache address=%q: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert geocode cache commit: %w", err)
	}
	return nil
}

// Len returns the number of cached addresses
func (s *SqliteCache) Len(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM geocode_cache;`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count geocode cache: %w", err)
	}
	return n, nil
}

func (s *SqliteCache) Close() error {
	return s.db.Close()
}

// CachedGeocoder consults a SqliteCache before falling through to another Geocoder.
// Cache failures are logged and never fail a lookup.
type CachedGeocoder struct {
	next   Geocoder
	cache  *SqliteCache
	logger *slog.Logger
}

func NewCachedGeocoder(next Geocoder, cache *SqliteCache, logger *slog.Logger) *CachedGeocoder {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedGeocoder{next: next, cache: cache, logger: logger}
}

func (g *CachedGeocoder) Geocode(ctx context.Context, address string) (geo.Coordinate, error) {
	if strings.TrimSpace(address) == "" {
		return geo.Coordinate{}, fmt.Errorf("%w: empty address", ErrLocationNotFound)
	}

	c, ok, err := g.cache.Get(ctx, address)
	if err != nil {
		logging.LogError(g.logger, "geocode cache read failed", err,
			slog.String("component", "geocoding"))
	} else if ok {
		return c, nil
	}

	c, err = g.next.Geocode(ctx, address)
	if err != nil {
		return geo.Coordinate{}, err
	}

	if err := g.cache.PutMany(ctx, map[string]geo.Coordinate{address: c}); err != nil {
		logging.LogError(g.logger, "geocode cache write failed", err,
			slog.String("component", "geocoding"))
	}
	return c, nil
}
