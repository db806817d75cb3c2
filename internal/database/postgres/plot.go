package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harwood/farmcore/internal/domain"
	"github.com/harwood/farmcore/internal/repository"
)

// PlotRepository implements the plot repository for PostgreSQL
type PlotRepository struct {
	db *pgxpool.Pool
}

// NewPlotRepository creates a new PlotRepository
func NewPlotRepository(db *pgxpool.Pool) *PlotRepository {
	return &PlotRepository{db: db}
}

// PlotTx implements repository.PlotTx
type PlotTx struct {
	ledgerTx
}

// BeginTx starts a new transaction
func (r *PlotRepository) BeginTx(ctx context.Context) (repository.PlotTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &PlotTx{ledgerTx{tx: tx}}, nil
}

const plotColumns = `plot_id, farm_id, x, y, crop_type_id, planted_at, harvest_ready_at`

func scanPlot(row pgx.Row) (*domain.Plot, error) {
	var p domain.Plot
	err := row.Scan(&p.ID, &p.FarmID, &p.X, &p.Y, &p.CropTypeID, &p.PlantedAt, &p.HarvestReadyAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlotNotFound
		}
		return nil, fmt.Errorf("failed to scan plot: %w", err)
	}
	return &p, nil
}

// ListPlots returns a farm's plots in grid order.
func (r *PlotRepository) ListPlots(ctx context.Context, farmID string) ([]domain.Plot, error) {
	fid, err := parseFarmUUID(farmID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+plotColumns+` FROM plots WHERE farm_id = $1 ORDER BY y, x`, fid)
	if err != nil {
		return nil, fmt.Errorf("failed to list plots: %w", err)
	}
	defer rows.Close()

	var plots []domain.Plot
	for rows.Next() {
		var p domain.Plot
		if err := rows.Scan(&p.ID, &p.FarmID, &p.X, &p.Y, &p.CropTypeID, &p.PlantedAt, &p.HarvestReadyAt); err != nil {
			return nil, fmt.Errorf("failed to scan plot: %w", err)
		}
		plots = append(plots, p)
	}
	return plots, rows.Err()
}

// GetPlotForUpdate locks the plot row for the duration of the transaction.
func (t *PlotTx) GetPlotForUpdate(ctx context.Context, farmID string, plotID int) (*domain.Plot, error) {
	fid, err := parseFarmUUID(farmID)
	if err != nil {
		return nil, err
	}
	return scanPlot(t.tx.QueryRow(ctx,
		`SELECT `+plotColumns+` FROM plots
		 WHERE plot_id = $1 AND farm_id = $2 FOR UPDATE`,
		plotID, fid))
}

// UpdatePlot writes the plot's crop fields.
func (t *PlotTx) UpdatePlot(ctx context.Context, plot *domain.Plot) error {
	tag, err := t.tx.Exec(ctx,
		`UPDATE plots SET crop_type_id = $2, planted_at = $3, harvest_ready_at = $4
		 WHERE plot_id = $1`,
		plot.ID, plot.CropTypeID, plot.PlantedAt, plot.HarvestReadyAt)
	if err != nil {
		return fmt.Errorf("failed to update plot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlotNotFound
	}
	return nil
}
