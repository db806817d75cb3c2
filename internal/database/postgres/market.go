package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harwood/farmcore/internal/domain"
	"github.com/harwood/farmcore/internal/repository"
)

// MarketRepository implements the market repository for PostgreSQL
type MarketRepository struct {
	db *pgxpool.Pool
}

// NewMarketRepository creates a new MarketRepository
func NewMarketRepository(db *pgxpool.Pool) *MarketRepository {
	return &MarketRepository{db: db}
}

// MarketTx implements repository.MarketTx
type MarketTx struct {
	ledgerTx
}

// BeginTx starts a new transaction
func (r *MarketRepository) BeginTx(ctx context.Context) (repository.MarketTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &MarketTx{ledgerTx{tx: tx}}, nil
}

// ListOpenListings returns active listings with stock, newest first. A
// non-empty visibleCropTypeIDs restricts the result to those crop types.
func (r *MarketRepository) ListOpenListings(ctx context.Context, visibleCropTypeIDs []int) ([]domain.MarketListing, error) {
	query := `SELECT l.listing_id, l.seller_farm_id, l.crop_type_id, l.quantity,
	                 l.unit_price, l.active, l.created_at, f.name, c.name
	          FROM market_listings l
	          JOIN farms f ON f.farm_id = l.seller_farm_id
	          JOIN crop_types c ON c.crop_type_id = l.crop_type_id
	          WHERE l.active AND l.quantity > 0`
	var args []any
	if len(visibleCropTypeIDs) > 0 {
		query += ` AND l.crop_type_id = ANY($1)`
		args = append(args, visibleCropTypeIDs)
	}
	query += ` ORDER BY l.created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list open listings: %w", err)
	}
	defer rows.Close()

	var listings []domain.MarketListing
	for rows.Next() {
		var (
			l        domain.MarketListing
			lid, fid uuid.UUID
		)
		err := rows.Scan(&lid, &fid, &l.CropTypeID, &l.Quantity, &l.UnitPrice,
			&l.Active, &l.CreatedAt, &l.SellerName, &l.CropName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		l.ID = lid.String()
		l.SellerFarmID = fid.String()
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

// GetListingForUpdate locks the listing row, serializing concurrent buyers.
func (t *MarketTx) GetListingForUpdate(ctx context.Context, listingID string) (*domain.MarketListing, error) {
	lid, err := parseUUID(listingID, domain.ErrListingNotFound)
	if err != nil {
		return nil, err
	}

	var (
		l        domain.MarketListing
		sellerID uuid.UUID
	)
	err = t.tx.QueryRow(ctx,
		`SELECT listing_id, seller_farm_id, crop_type_id, quantity, unit_price, active, created_at
		 FROM market_listings WHERE listing_id = $1 FOR UPDATE`,
		lid,
	).Scan(&lid, &sellerID, &l.CropTypeID, &l.Quantity, &l.UnitPrice, &l.Active, &l.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to get listing for update: %w", err)
	}
	l.ID = lid.String()
	l.SellerFarmID = sellerID.String()
	return &l, nil
}

// CreateListing persists a new listing holding escrowed inventory.
func (t *MarketTx) CreateListing(ctx context.Context, listing *domain.MarketListing) error {
	fid, err := parseFarmUUID(listing.SellerFarmID)
	if err != nil {
		return err
	}

	var lid uuid.UUID
	err = t.tx.QueryRow(ctx,
		`INSERT INTO market_listings (seller_farm_id, crop_type_id, quantity, unit_price, active)
		 VALUES ($1, $2, $3, $4, TRUE)
		 RETURNING listing_id, created_at`,
		fid, listing.CropTypeID, listing.Quantity, listing.UnitPrice,
	).Scan(&lid, &listing.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert listing: %w", err)
	}
	listing.ID = lid.String()
	listing.Active = true
	return nil
}

// CloseListing zeroes out and deactivates a listing permanently.
func (t *MarketTx) CloseListing(ctx context.Context, listingID string) error {
	lid, err := parseUUID(listingID, domain.ErrListingNotFound)
	if err != nil {
		return err
	}
	tag, err := t.tx.Exec(ctx,
		`UPDATE market_listings SET quantity = 0, active = FALSE WHERE listing_id = $1`, lid)
	if err != nil {
		return fmt.Errorf("failed to close listing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}
