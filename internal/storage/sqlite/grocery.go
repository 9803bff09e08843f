package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ecosmart/shop/internal/core"
	"github.com/ecosmart/shop/pkg/log"
)

const groceryColumns = `id, brand_name, category, category_id, date_added, city, city_id,
	date_of_manufacturing, mrp, image, stock, best_price, seller, selling_price,
	profit, profit_percentage, product_type, expiry_date, weight, unit,
	demand_score, seasonality, perishable, created_at, updated_at`

type GroceryRepo struct {
	db *sql.DB
}

func NewGroceryRepo(db *sql.DB) *GroceryRepo {
	return &GroceryRepo{db: db}
}

func (r *GroceryRepo) Insert(ctx context.Context, p *core.GroceryProduct) error {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	query := `INSERT INTO grocery_products (` + groceryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.BrandName, p.Category, p.CategoryID, p.DateAdded, p.City, p.CityID,
		p.DateOfManufacturing, p.MRP, p.Image, p.Stock, p.BestPrice, p.Seller, p.SellingPrice,
		p.Profit, p.ProfitPercentage, p.ProductType, p.ExpiryDate, p.Weight, p.Unit,
		p.DemandScore, p.Seasonality, p.Perishable, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert grocery product: %w", err)
	}
	return nil
}

func (r *GroceryRepo) List(ctx context.Context) ([]core.GroceryProduct, error) {
	query := `SELECT ` + groceryColumns + ` FROM grocery_products ORDER BY created_at DESC`
	return r.queryMany(ctx, query)
}

func (r *GroceryRepo) ListBySeller(ctx context.Context, seller string) ([]core.GroceryProduct, error) {
	query := `SELECT ` + groceryColumns + ` FROM grocery_products WHERE seller = ? ORDER BY created_at DESC`
	return r.queryMany(ctx, query, seller)
}

func (r *GroceryRepo) GetByID(ctx context.Context, id string) (*core.GroceryProduct, error) {
	query := `SELECT ` + groceryColumns + ` FROM grocery_products WHERE id = ?`

	row := r.db.QueryRowContext(ctx, query, id)
	p, err := scanGrocery(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get grocery product: %w", err)
	}
	return p, nil
}

func (r *GroceryRepo) Update(ctx context.Context, p *core.GroceryProduct) error {
	p.UpdatedAt = time.Now().UTC()

	query := `UPDATE grocery_products SET
		brand_name = ?, category = ?, category_id = ?, city = ?, city_id = ?,
		date_of_manufacturing = ?, mrp = ?, image = ?, stock = ?, best_price = ?,
		seller = ?, selling_price = ?, profit = ?, profit_percentage = ?,
		expiry_date = ?, weight = ?, unit = ?, demand_score = ?, seasonality = ?,
		perishable = ?, updated_at = ?
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query,
		p.BrandName, p.Category, p.CategoryID, p.City, p.CityID,
		p.DateOfManufacturing, p.MRP, p.Image, p.Stock, p.BestPrice,
		p.Seller, p.SellingPrice, p.Profit, p.ProfitPercentage,
		p.ExpiryDate, p.Weight, p.Unit, p.DemandScore, p.Seasonality,
		p.Perishable, p.UpdatedAt, p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update grocery product: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("grocery product %s not found", p.ID)
	}
	return nil
}

func (r *GroceryRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM grocery_products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete grocery product: %w", err)
	}
	return nil
}

func (r *GroceryRepo) queryMany(ctx context.Context, query string, args ...any) ([]core.GroceryProduct, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query grocery products: %w", err)
	}
	defer rows.Close()

	products := make([]core.GroceryProduct, 0)
	for rows.Next() {
		p, err := scanGrocery(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan grocery product: %w", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.FromCtx(ctx).Debug().Int("count", len(products)).Msg("loaded grocery products")
	return products, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGrocery(row rowScanner) (*core.GroceryProduct, error) {
	var p core.GroceryProduct
	err := row.Scan(
		&p.ID, &p.BrandName, &p.Category, &p.CategoryID, &p.DateAdded, &p.City, &p.CityID,
		&p.DateOfManufacturing, &p.MRP, &p.Image, &p.Stock, &p.BestPrice, &p.Seller, &p.SellingPrice,
		&p.Profit, &p.ProfitPercentage, &p.ProductType, &p.ExpiryDate, &p.Weight, &p.Unit,
		&p.DemandScore, &p.Seasonality, &p.Perishable, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
