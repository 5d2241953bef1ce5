package postgres

import (
	"context"
	"fmt"
	"regexp"

	"github.com/shrine-functions/internal/domain"
	"github.com/shrine-functions/internal/domain/repository"
	"github.com/shrine-functions/internal/pkg/errors"
	"go.uber.org/zap"
)

var tableNamePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// ShrineRepository - коллекция святилищ в таблице PostgreSQL
type ShrineRepository struct {
	db     *DB
	table  string
	logger *zap.Logger
}

// shrineRow - строка таблицы; lat/lng допускают NULL
type shrineRow struct {
	ID         string   `db:"id"`
	Name       *string  `db:"name"`
	Prefecture *string  `db:"prefecture"`
	Lat        *float64 `db:"lat"`
	Lng        *float64 `db:"lng"`
}

func (r shrineRow) toDomain() *domain.Shrine {
	return &domain.Shrine{
		ID:         r.ID,
		Name:       r.Name,
		Prefecture: r.Prefecture,
		Lat:        r.Lat,
		Lng:        r.Lng,
	}
}

func NewShrineRepository(db *DB, table string) (*ShrineRepository, error) {
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("invalid shrine table name %q", table)
	}
	return &ShrineRepository{
		db:     db,
		table:  table,
		logger: db.logger,
	}, nil
}

var (
	_ repository.ShrineRepository = (*ShrineRepository)(nil)
	_ repository.ShrineWriter     = (*ShrineRepository)(nil)
)

// FindByLatitudeRange intentionally has no ORDER BY: candidates come back in
// whatever order the planner produces.
func (r *ShrineRepository) FindByLatitudeRange(
	ctx context.Context,
	minLat, maxLat float64,
	limit int,
) ([]*domain.Shrine, error) {
	query := fmt.Sprintf(`
		SELECT id, name, prefecture, lat, lng
		FROM %s
		WHERE lat >= $1 AND lat <= $2
		LIMIT $3
	`, r.table)

	var rows []shrineRow
	if err := r.db.SelectContext(ctx, &rows, query, minLat, maxLat, limit); err != nil {
		r.logger.Error("Failed to query shrines by latitude",
			zap.Float64("min_lat", minLat),
			zap.Float64("max_lat", maxLat),
			zap.Error(err))
		return nil, errors.ErrStoreUnavailable
	}

	shrines := make([]*domain.Shrine, 0, len(rows))
	for _, row := range rows {
		shrines = append(shrines, row.toDomain())
	}

	return shrines, nil
}

func (r *ShrineRepository) Upsert(ctx context.Context, shrines []*domain.Shrine) error {
	if len(shrines) == 0 {
		return nil
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, prefecture, lat, lng)
		VALUES (:id, :name, :prefecture, :lat, :lng)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			prefecture = EXCLUDED.prefecture,
			lat = EXCLUDED.lat,
			lng = EXCLUDED.lng
	`, r.table)

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin upsert: %w", err)
	}
	defer tx.Rollback()

	for _, s := range shrines {
		row := shrineRow{ID: s.ID, Name: s.Name, Prefecture: s.Prefecture, Lat: s.Lat, Lng: s.Lng}
		if _, err := tx.NamedExecContext(ctx, query, row); err != nil {
			return fmt.Errorf("upsert shrine %s: %w", s.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert: %w", err)
	}

	r.logger.Info("Shrines upserted", zap.Int("count", len(shrines)))
	return nil
}

func (r *ShrineRepository) Health(ctx context.Context) error {
	return r.db.Health(ctx)
}

// EnsureSchema создаёт таблицу и индекс по широте, если их нет
func (r *ShrineRepository) EnsureSchema(ctx context.Context) error {
	stmt := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %[1]s (
			id         TEXT PRIMARY KEY,
			name       TEXT,
			prefecture TEXT,
			lat        DOUBLE PRECISION,
			lng        DOUBLE PRECISION
		);
		CREATE INDEX IF NOT EXISTS %[1]s_lat_idx ON %[1]s (lat);
	`, r.table)

	if _, err := r.db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("ensure %s schema: %w", r.table, err)
	}
	return nil
}
