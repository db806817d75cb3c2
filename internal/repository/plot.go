package repository

import (
	"context"

	"github.com/harwood/farmcore/internal/domain"
)

// Plot defines the interface for plot persistence
type Plot interface {
	// ListPlots returns a farm's plots ordered by (y, x).
	ListPlots(ctx context.Context, farmID string) ([]domain.Plot, error)

	BeginTx(ctx context.Context) (PlotTx, error)
}

// PlotTx defines the interface for plot lifecycle transactions
type PlotTx interface {
	LedgerTx

	// GetPlotForUpdate locks the plot row; returns domain.ErrPlotNotFound
	// when the plot does not belong to the farm.
	GetPlotForUpdate(ctx context.Context, farmID string, plotID int) (*domain.Plot, error)

	// UpdatePlot writes the plot's crop fields (all three set or all three
	// cleared together).
	UpdatePlot(ctx context.Context, plot *domain.Plot) error
}
