package radarstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	_ "github.com/jackc/pgx/v5/stdlib"

	"flowradar/internal/types"
)

const cacheSize = 1024

// Store persists validated radar specs so monitoring jobs can be
// instantiated from them. The default backend is an in-memory map; when a
// Postgres DSN is configured the map is replaced by a radar_specs table with
// an LRU read cache in front.
type Store struct {
	db *sql.DB

	mu   sync.RWMutex
	byID map[string]types.RadarSpec

	schemaOnce sync.Once
	schemaErr  error

	cache *lru.Cache[string, types.RadarSpec]
}

func New() *Store {
	return &Store{byID: make(map[string]types.RadarSpec)}
}

func NewPostgres(dsn string) (*Store, error) {
	db, err := sql.Open("pgx", strings.TrimSpace(dsn))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	cache, err := lru.New[string, types.RadarSpec](cacheSize)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db, cache: cache}, nil
}

// NewFromEnv returns a Postgres store when RADAR_STORE_PG_DSN is set and
// reachable, otherwise the in-memory store.
func NewFromEnv() *Store {
	dsn := strings.TrimSpace(os.Getenv("RADAR_STORE_PG_DSN"))
	if dsn == "" {
		return New()
	}
	s, err := NewPostgres(dsn)
	if err != nil {
		return New()
	}
	return s
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) ensureSchema(ctx context.Context) error {
	s.schemaOnce.Do(func() {
		_, s.schemaErr = s.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS radar_specs (
    id         TEXT PRIMARY KEY,
    input      TEXT NOT NULL,
    result     JSONB NOT NULL,
    created_at TIMESTAMPTZ NOT NULL
)`)
	})
	return s.schemaErr
}

// Save stores the spec, overwriting any previous record with the same id.
func (s *Store) Save(ctx context.Context, spec types.RadarSpec) error {
	if strings.TrimSpace(spec.ID) == "" {
		return fmt.Errorf("radarstore: spec id is required")
	}
	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.byID[spec.ID] = spec
		return nil
	}

	if err := s.ensureSchema(ctx); err != nil {
		return err
	}
	result, err := json.Marshal(spec.Result)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO radar_specs (id, input, result, created_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE SET input = $2, result = $3, created_at = $4`,
		spec.ID, spec.Input, result, spec.CreatedAt)
	if err != nil {
		return err
	}
	s.cache.Add(spec.ID, spec)
	return nil
}

// Get fetches one spec by id.
func (s *Store) Get(ctx context.Context, id string) (types.RadarSpec, bool, error) {
	if s.db == nil {
		s.mu.RLock()
		defer s.mu.RUnlock()
		spec, ok := s.byID[id]
		return spec, ok, nil
	}

	if spec, ok := s.cache.Get(id); ok {
		return spec, true, nil
	}
	if err := s.ensureSchema(ctx); err != nil {
		return types.RadarSpec{}, false, err
	}
	var spec types.RadarSpec
	var result []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT id, input, result, created_at FROM radar_specs WHERE id = $1`, id).
		Scan(&spec.ID, &spec.Input, &result, &spec.CreatedAt)
	if err == sql.ErrNoRows {
		return types.RadarSpec{}, false, nil
	}
	if err != nil {
		return types.RadarSpec{}, false, err
	}
	if err := json.Unmarshal(result, &spec.Result); err != nil {
		return types.RadarSpec{}, false, err
	}
	s.cache.Add(spec.ID, spec)
	return spec, true, nil
}

// List returns all specs, newest first.
func (s *Store) List(ctx context.Context) ([]types.RadarSpec, error) {
	if s.db == nil {
		s.mu.RLock()
		defer s.mu.RUnlock()
		out := make([]types.RadarSpec, 0, len(s.byID))
		for _, spec := range s.byID {
			out = append(out, spec)
		}
		sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
		return out, nil
	}

	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, input, result, created_at FROM radar_specs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []types.RadarSpec
	for rows.Next() {
		var spec types.RadarSpec
		var result []byte
		if err := rows.Scan(&spec.ID, &spec.Input, &result, &spec.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(result, &spec.Result); err != nil {
			return nil, err
		}
		out = append(out, spec)
	}
	return out, rows.Err()
}
