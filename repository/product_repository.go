package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"variant-studio/config"
	"variant-studio/models"
)

// ProductRepository handles database operations for products
// Implements ProductRepositoryInterface
type ProductRepository struct {
	conn   *sql.DB
	driver string
}

// NewProductRepository creates a new ProductRepository over conn.
// driver is config.DriverPostgres or config.DriverSQLite.
func NewProductRepository(conn *sql.DB, driver string) *ProductRepository {
	return &ProductRepository{conn: conn, driver: driver}
}

// Ensure ProductRepository implements ProductRepositoryInterface
var _ ProductRepositoryInterface = (*ProductRepository)(nil)

const productColumns = `hash, image_path, shipping_charge`

// FindByHash returns the product stored under hash
func (r *ProductRepository) FindByHash(ctx context.Context, hash string) (*models.Product, error) {
	log.Printf("🔍 Looking up product by hash: %s", hash)

	query := `SELECT ` + productColumns + ` FROM products WHERE hash = $1`
	product, err := scanProduct(r.conn.QueryRowContext(ctx, r.rebind(query), hash))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Printf("❌ Error looking up hash %s: %v", hash, err)
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return product, nil
}

// Upsert creates the product or overwrites its image path and charge
func (r *ProductRepository) Upsert(ctx context.Context, hash, imagePath string, charge int64) (*models.Product, error) {
	log.Printf("💾 Upserting product %s (charge=%d)", hash, charge)

	query := `
		INSERT INTO products (hash, image_path, shipping_charge)
		VALUES ($1, $2, $3)
		ON CONFLICT (hash) DO UPDATE SET
			image_path = excluded.image_path,
			shipping_charge = excluded.shipping_charge
		RETURNING ` + productColumns

	product, err := scanProduct(r.conn.QueryRowContext(ctx, r.rebind(query), hash, imagePath, charge))
	if err != nil {
		log.Printf("❌ Error upserting product %s: %v", hash, err)
		return nil, fmt.Errorf("failed to upsert product: %w", err)
	}
	return product, nil
}

// SyncCharge stores a charge reported by the marketplace, keeping any image path
func (r *ProductRepository) SyncCharge(ctx context.Context, hash string, charge int64) (*models.Product, error) {
	log.Printf("💾 Syncing charge for %s: %d", hash, charge)

	query := `
		INSERT INTO products (hash, image_path, shipping_charge)
		VALUES ($1, '', $2)
		ON CONFLICT (hash) DO UPDATE SET
			shipping_charge = excluded.shipping_charge
		RETURNING ` + productColumns

	product, err := scanProduct(r.conn.QueryRowContext(ctx, r.rebind(query), hash, charge))
	if err != nil {
		log.Printf("❌ Error syncing charge for %s: %v", hash, err)
		return nil, fmt.Errorf("failed to sync charge: %w", err)
	}
	return product, nil
}

// rebind turns $n placeholders into SQLite's ?n form
func (r *ProductRepository) rebind(query string) string {
	if r.driver == config.DriverSQLite {
		return strings.ReplaceAll(query, "$", "?")
	}
	return query
}

func scanProduct(row *sql.Row) (*models.Product, error) {
	var p models.Product
	if err := row.Scan(&p.Hash, &p.ImagePath, &p.ShippingCharge); err != nil {
		return nil, err
	}
	return &p, nil
}
