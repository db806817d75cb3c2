package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harwood/farmcore/internal/domain"
)

// querier is satisfied by *pgxpool.Pool and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// FarmRepository implements the farm repository for PostgreSQL
type FarmRepository struct {
	db *pgxpool.Pool
}

// NewFarmRepository creates a new FarmRepository
func NewFarmRepository(db *pgxpool.Pool) *FarmRepository {
	return &FarmRepository{db: db}
}

// GetFarmByUserID returns a user's farm including its unlocked crop set.
func (r *FarmRepository) GetFarmByUserID(ctx context.Context, userID string) (*domain.Farm, error) {
	return getFarm(ctx, r.db, `WHERE user_id = $1`, userID)
}

// GetFarm returns a farm by ID including its unlocked crop set.
func (r *FarmRepository) GetFarm(ctx context.Context, farmID string) (*domain.Farm, error) {
	fid, err := parseFarmUUID(farmID)
	if err != nil {
		return nil, err
	}
	return getFarm(ctx, r.db, `WHERE farm_id = $1`, fid)
}

func getFarm(ctx context.Context, q querier, where string, arg any) (*domain.Farm, error) {
	var (
		farm domain.Farm
		fid  uuid.UUID
	)
	err := q.QueryRow(ctx,
		`SELECT farm_id, user_id, name, balance, created_at FROM farms `+where,
		arg,
	).Scan(&fid, &farm.UserID, &farm.Name, &farm.Balance, &farm.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFarmNotFound
		}
		return nil, fmt.Errorf("failed to get farm: %w", err)
	}
	farm.ID = fid.String()

	farm.UnlockedCrops, err = listUnlockedCrops(ctx, q, fid)
	if err != nil {
		return nil, err
	}
	return &farm, nil
}

func listUnlockedCrops(ctx context.Context, q querier, farmID uuid.UUID) ([]int, error) {
	rows, err := q.Query(ctx,
		`SELECT crop_type_id FROM farm_unlocked_crops
		 WHERE farm_id = $1 ORDER BY crop_type_id`,
		farmID)
	if err != nil {
		return nil, fmt.Errorf("failed to list unlocked crops: %w", err)
	}
	defer rows.Close()

	var unlocked []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan unlocked crop: %w", err)
		}
		unlocked = append(unlocked, id)
	}
	return unlocked, rows.Err()
}

// CreateFarm persists a new farm, its plot grid and initial unlocks in one
// transaction.
func (r *FarmRepository) CreateFarm(ctx context.Context, farm *domain.Farm, plots []domain.Plot, unlockedCrops []int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer SafeRollback(ctx, tx)

	var fid uuid.UUID
	err = tx.QueryRow(ctx,
		`INSERT INTO farms (user_id, name, balance)
		 VALUES ($1, $2, $3)
		 RETURNING farm_id, created_at`,
		farm.UserID, farm.Name, farm.Balance,
	).Scan(&fid, &farm.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: user %s", domain.ErrFarmExists, farm.UserID)
		}
		return fmt.Errorf("failed to insert farm: %w", err)
	}
	farm.ID = fid.String()

	for i := range plots {
		plots[i].FarmID = farm.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO plots (farm_id, x, y) VALUES ($1, $2, $3) RETURNING plot_id`,
			fid, plots[i].X, plots[i].Y,
		).Scan(&plots[i].ID)
		if err != nil {
			return fmt.Errorf("failed to insert plot (%d,%d): %w", plots[i].X, plots[i].Y, err)
		}
	}

	for _, cropTypeID := range unlockedCrops {
		_, err = tx.Exec(ctx,
			`INSERT INTO farm_unlocked_crops (farm_id, crop_type_id)
			 VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			fid, cropTypeID)
		if err != nil {
			return fmt.Errorf("failed to insert unlocked crop: %w", err)
		}
	}
	farm.UnlockedCrops = unlockedCrops

	return tx.Commit(ctx)
}
