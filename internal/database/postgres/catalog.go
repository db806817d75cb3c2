package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harwood/farmcore/internal/domain"
)

// CatalogRepository implements the crop catalog repository for PostgreSQL
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

const cropTypeColumns = `crop_type_id, name, grow_time_seconds, seed_price, base_price`

func scanCropType(row pgx.Row) (*domain.CropType, error) {
	var c domain.CropType
	err := row.Scan(&c.ID, &c.Name, &c.GrowTimeSeconds, &c.SeedPrice, &c.BasePrice)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCropNotFound
		}
		return nil, fmt.Errorf("failed to scan crop type: %w", err)
	}
	return &c, nil
}

// ListCropTypes returns the full crop catalog ordered by ID.
func (r *CatalogRepository) ListCropTypes(ctx context.Context) ([]domain.CropType, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+cropTypeColumns+` FROM crop_types ORDER BY crop_type_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list crop types: %w", err)
	}
	defer rows.Close()

	var crops []domain.CropType
	for rows.Next() {
		var c domain.CropType
		if err := rows.Scan(&c.ID, &c.Name, &c.GrowTimeSeconds, &c.SeedPrice, &c.BasePrice); err != nil {
			return nil, fmt.Errorf("failed to scan crop type: %w", err)
		}
		crops = append(crops, c)
	}
	return crops, rows.Err()
}

// GetCropType returns one crop type by ID.
func (r *CatalogRepository) GetCropType(ctx context.Context, cropTypeID int) (*domain.CropType, error) {
	return scanCropType(r.db.QueryRow(ctx,
		`SELECT `+cropTypeColumns+` FROM crop_types WHERE crop_type_id = $1`, cropTypeID))
}

// GetCropTypeByName returns one crop type by its unique name.
func (r *CatalogRepository) GetCropTypeByName(ctx context.Context, name string) (*domain.CropType, error) {
	return scanCropType(r.db.QueryRow(ctx,
		`SELECT `+cropTypeColumns+` FROM crop_types WHERE name = $1`, name))
}
