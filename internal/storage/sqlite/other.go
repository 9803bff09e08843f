package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecosmart/shop/internal/core"
	"github.com/ecosmart/shop/pkg/log"
)

const otherColumns = `id, name, category, category_id, listing_date, date_of_manufacturing,
	mrp, city, city_id, image, stock, best_price, seller, selling_price,
	profit, profit_percentage, product_type, brand, model, specifications,
	demand_score, market_trend, warranty, condition, created_at, updated_at`

type OtherRepo struct {
	db *sql.DB
}

func NewOtherRepo(db *sql.DB) *OtherRepo {
	return &OtherRepo{db: db}
}

func (r *OtherRepo) Insert(ctx context.Context, p *core.OtherProduct) error {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	specs, err := marshalSpecs(p.Specifications)
	if err != nil {
		return err
	}

	query := `INSERT INTO other_products (` + otherColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Category, p.CategoryID, p.ListingDate, p.DateOfManufacturing,
		p.MRP, p.City, p.CityID, p.Image, p.Stock, p.BestPrice, p.Seller, p.SellingPrice,
		p.Profit, p.ProfitPercentage, p.ProductType, p.Brand, p.Model, specs,
		p.DemandScore, p.MarketTrend, p.Warranty, p.Condition, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert other product: %w", err)
	}
	return nil
}

func (r *OtherRepo) List(ctx context.Context) ([]core.OtherProduct, error) {
	query := `SELECT ` + otherColumns + ` FROM other_products ORDER BY created_at DESC`
	return r.queryMany(ctx, query)
}

func (r *OtherRepo) ListBySeller(ctx context.Context, seller string) ([]core.OtherProduct, error) {
	query := `SELECT ` + otherColumns + ` FROM other_products WHERE seller = ? ORDER BY created_at DESC`
	return r.queryMany(ctx, query, seller)
}

func (r *OtherRepo) GetByID(ctx context.Context, id string) (*core.OtherProduct, error) {
	query := `SELECT ` + otherColumns + ` FROM other_products WHERE id = ?`

	row := r.db.QueryRowContext(ctx, query, id)
	p, err := scanOther(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get other product: %w", err)
	}
	return p, nil
}

func (r *OtherRepo) Update(ctx context.Context, p *core.OtherProduct) error {
	p.UpdatedAt = time.Now().UTC()

	specs, err := marshalSpecs(p.Specifications)
	if err != nil {
		return err
	}

	query := `UPDATE other_products SET
		name = ?, category = ?, category_id = ?, city = ?, city_id = ?,
		date_of_manufacturing = ?, mrp = ?, image = ?, stock = ?, best_price = ?,
		seller = ?, selling_price = ?, profit = ?, profit_percentage = ?,
		brand = ?, model = ?, specifications = ?, demand_score = ?,
		market_trend = ?, warranty = ?, condition = ?, updated_at = ?
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query,
		p.Name, p.Category, p.CategoryID, p.City, p.CityID,
		p.DateOfManufacturing, p.MRP, p.Image, p.Stock, p.BestPrice,
		p.Seller, p.SellingPrice, p.Profit, p.ProfitPercentage,
		p.Brand, p.Model, specs, p.DemandScore,
		p.MarketTrend, p.Warranty, p.Condition, p.UpdatedAt, p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update other product: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("other product %s not found", p.ID)
	}
	return nil
}

func (r *OtherRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM other_products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete other product: %w", err)
	}
	return nil
}

func (r *OtherRepo) queryMany(ctx context.Context, query string, args ...any) ([]core.OtherProduct, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query other products: %w", err)
	}
	defer rows.Close()

	products := make([]core.OtherProduct, 0)
	for rows.Next() {
		p, err := scanOther(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan other product: %w", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.FromCtx(ctx).Debug().Int("count", len(products)).Msg("loaded other products")
	return products, nil
}

func scanOther(row rowScanner) (*core.OtherProduct, error) {
	var p core.OtherProduct
	var specs string
	err := row.Scan(
		&p.ID, &p.Name, &p.Category, &p.CategoryID, &p.ListingDate, &p.DateOfManufacturing,
		&p.MRP, &p.City, &p.CityID, &p.Image, &p.Stock, &p.BestPrice, &p.Seller, &p.SellingPrice,
		&p.Profit, &p.ProfitPercentage, &p.ProductType, &p.Brand, &p.Model, &specs,
		&p.DemandScore, &p.MarketTrend, &p.Warranty, &p.Condition, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if specs != "" {
		if err := json.Unmarshal([]byte(specs), &p.Specifications); err != nil {
			return nil, fmt.Errorf("failed to unmarshal specifications: %w", err)
		}
	}
	return &p, nil
}

// If Specifications is empty, store as empty string to save space.
func marshalSpecs(specs map[string]any) (string, error) {
	if len(specs) == 0 {
		return "", nil
	}
	data, err := json.Marshal(specs)
	if err != nil {
		return "", fmt.Errorf("failed to marshal specifications: %w", err)
	}
	return string(data), nil
}
