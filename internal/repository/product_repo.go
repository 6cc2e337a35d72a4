package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"store_service/internal/domain"
)

type postgresProductRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresProductRepository(db *sql.DB, logger *logrus.Logger) domain.ProductRepository {
	return &postgresProductRepository{
		db:  db,
		log: logger,
	}
}

func (r *postgresProductRepository) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
        INSERT INTO products (store_id, name, price, stock)
        VALUES ($1, $2, $3, $4)
        RETURNING id`

	err := r.db.QueryRowContext(ctx, query, product.StoreID, product.Name, product.Price, product.Stock).Scan(&product.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			r.log.Warnf("Attempted to create product for non-existent store ID: %d", product.StoreID)
			return nil, fmt.Errorf("store with id %d does not exist", product.StoreID)
		}
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23514" {
			r.log.Warnf("Check constraint violation for product '%s': %s", product.Name, pqErr.Message)
			return nil, fmt.Errorf("product data constraint violation: %s", pqErr.Message)
		}
		r.log.Errorf("Failed to create product '%s': %v", product.Name, err)
		return nil, fmt.Errorf("could not create product: %w", err)
	}
	r.log.Infof("Product created successfully with ID: %d, Name: %s, Store: %d", product.ID, product.Name, product.StoreID)
	return product, nil
}

func (r *postgresProductRepository) GetProductByID(ctx context.Context, id int) (*domain.Product, error) {
	query := `
        SELECT id, store_id, name, price, stock
        FROM products
        WHERE id = $1`
	product := &domain.Product{}

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&product.ID,
		&product.StoreID,
		&product.Name,
		&product.Price,
		&product.Stock,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Product with ID %d not found", id)
			return nil, fmt.Errorf("product with id %d not found", id)
		}
		r.log.Errorf("Failed to get product by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get product by id: %w", err)
	}
	return product, nil
}

func (r *postgresProductRepository) ListProductsByStore(ctx context.Context, storeID int) ([]domain.Product, error) {
	query := `
        SELECT id, store_id, name, price, stock
        FROM products
        WHERE store_id = $1
        ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query, storeID)
	if err != nil {
		r.log.Errorf("Failed to list products for store %d: %v", storeID, err)
		return nil, fmt.Errorf("could not list products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(&product.ID, &product.StoreID, &product.Name, &product.Price, &product.Stock); err != nil {
			r.log.Errorf("Failed to scan product row for store %d: %v", storeID, err)
			return nil, fmt.Errorf("error scanning product data: %w", err)
		}
		products = append(products, product)
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during products list iteration for store %d: %v", storeID, err)
		return nil, fmt.Errorf("error iterating products: %w", err)
	}
	r.log.Infof("Retrieved %d products for store %d", len(products), storeID)
	return products, nil
}

func (r *postgresProductRepository) DeleteProduct(ctx context.Context, storeID, productID int) error {
	query := `DELETE FROM products WHERE id = $1 AND store_id = $2`
	result, err := r.db.ExecContext(ctx, query, productID, storeID)
	if err != nil {
		r.log.Errorf("Failed to delete product ID %d of store %d: %v", productID, storeID, err)
		return fmt.Errorf("could not delete product: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after deleting product ID %d: %v", productID, err)
		return fmt.Errorf("could not confirm product deletion: %w", err)
	}
	if rowsAffected == 0 {
		r.log.Warnf("Attempted to delete non-existent product ID %d of store %d", productID, storeID)
		return fmt.Errorf("product with id %d not found for deletion", productID)
	}
	r.log.Infof("Product deleted successfully with ID: %d", productID)
	return nil
}
