package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"store_service/internal/domain"
)

const storeColumns = `id, store_name, store_type, COALESCE(store_description, ''), contact_number, email, password, latitude, longitude`

type postgresStoreRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresStoreRepository(db *sql.DB, logger *logrus.Logger) domain.StoreRepository {
	return &postgresStoreRepository{
		db:  db,
		log: logger,
	}
}

func (r *postgresStoreRepository) CreateStore(ctx context.Context, store *domain.Store) (*domain.Store, error) {
	query := `
        INSERT INTO stores (store_name, store_type, store_description, contact_number, email, password, latitude, longitude)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		store.StoreName,
		store.StoreType,
		store.StoreDescription,
		store.ContactNumber,
		store.Email,
		store.PasswordHash,
		store.Latitude,
		store.Longitude,
	).Scan(&store.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			r.log.Warnf("Attempted to register store with duplicate email: %s", store.Email)
			return nil, fmt.Errorf("store with email '%s' already exists", store.Email)
		}
		r.log.Errorf("Failed to create store '%s': %v", store.StoreName, err)
		return nil, fmt.Errorf("could not create store: %w", err)
	}
	r.log.Infof("Store created successfully with ID: %d, Name: %s", store.ID, store.StoreName)
	return store, nil
}

func (r *postgresStoreRepository) GetStoreByID(ctx context.Context, id int) (*domain.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE id = $1`
	store, err := scanStore(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Store with ID %d not found", id)
			return nil, fmt.Errorf("store with id %d not found", id)
		}
		r.log.Errorf("Failed to get store by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get store by id: %w", err)
	}
	return store, nil
}

func (r *postgresStoreRepository) GetStoreByEmail(ctx context.Context, email string) (*domain.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE email = $1`
	store, err := scanStore(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Store with email %s not found", email)
			return nil, fmt.Errorf("store with email '%s' not found", email)
		}
		r.log.Errorf("Failed to get store by email %s: %v", email, err)
		return nil, fmt.Errorf("could not get store by email: %w", err)
	}
	return store, nil
}

func (r *postgresStoreRepository) UpdateStore(ctx context.Context, id int, updates map[string]interface{}) (*domain.Store, error) {
	setClauses := []string{}
	args := []interface{}{}
	argCounter := 1

	for _, column := range updatableStoreColumns {
		value, ok := updates[column]
		if !ok {
			continue
		}
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argCounter))
		args = append(args, value)
		argCounter++
	}

	if len(setClauses) == 0 {
		r.log.Warnf("Repository: No valid known fields provided for store update ID %d. Returning current store.", id)
		return r.GetStoreByID(ctx, id)
	}

	query := "UPDATE stores SET " + strings.Join(setClauses, ", ") + fmt.Sprintf(" WHERE id = $%d", argCounter)
	args = append(args, id)

	r.log.Debugf("Repository: Executing partial update query for store ID %d: %s", id, query)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			r.log.Warnf("Repository: Store update ID %d collides with an existing email", id)
			return nil, fmt.Errorf("store with email '%v' already exists", updates["email"])
		}
		r.log.Errorf("Repository: Failed to execute partial update for store ID %d: %v", id, err)
		return nil, fmt.Errorf("could not update store: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Repository: Failed to get rows affected after store update ID %d: %v", id, err)
		return nil, fmt.Errorf("could not confirm store update: %w", err)
	}
	if rowsAffected == 0 {
		r.log.Warnf("Repository: Store with ID %d not found for update", id)
		return nil, fmt.Errorf("store with id %d not found for update", id)
	}

	r.log.Infof("Repository: Partial update successful for store ID %d", id)
	return r.GetStoreByID(ctx, id)
}

func (r *postgresStoreRepository) DeleteStore(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM stores WHERE id = $1`, id)
	if err != nil {
		r.log.Errorf("Failed to delete store ID %d: %v", id, err)
		return fmt.Errorf("could not delete store: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after deleting store ID %d: %v", id, err)
		return fmt.Errorf("could not confirm store deletion: %w", err)
	}
	if rowsAffected == 0 {
		r.log.Warnf("Attempted to delete non-existent store ID %d", id)
		return fmt.Errorf("store with id %d not found for deletion", id)
	}
	r.log.Infof("Store deleted successfully with ID: %d", id)
	return nil
}

// updatableStoreColumns fixes the column order of partial updates.
var updatableStoreColumns = []string{
	"store_name",
	"store_type",
	"store_description",
	"contact_number",
	"email",
	"latitude",
	"longitude",
}

func scanStore(row *sql.Row) (*domain.Store, error) {
	store := &domain.Store{}
	err := row.Scan(
		&store.ID,
		&store.StoreName,
		&store.StoreType,
		&store.StoreDescription,
		&store.ContactNumber,
		&store.Email,
		&store.PasswordHash,
		&store.Latitude,
		&store.Longitude,
	)
	if err != nil {
		return nil, err
	}
	return store, nil
}
