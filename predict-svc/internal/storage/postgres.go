package storage

import (
	"context"
	"database/sql"
	"fmt"

	"restaurant-recommender/predict-svc/internal/domain"
)

type PostgresCatalog struct {
	DB *sql.DB
}

func NewPostgresCatalog(db *sql.DB) *PostgresCatalog {
	return &PostgresCatalog{DB: db}
}

// EnsureSchema creates the catalog tables when they are missing.
func (r *PostgresCatalog) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS localities (
			name TEXT PRIMARY KEY,
			position INT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS cuisines (
			name TEXT PRIMARY KEY,
			position INT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS catalog_restaurants (
			id SERIAL PRIMARY KEY,
			locality TEXT NOT NULL REFERENCES localities(name),
			cuisine TEXT NOT NULL,
			name TEXT NOT NULL,
			rating NUMERIC(2,1) NOT NULL CHECK (rating BETWEEN 0 AND 5),
			address TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// Seed loads the given catalog when the localities table is empty.
func (r *PostgresCatalog) Seed(ctx context.Context, localities, cuisines []string, entries []domain.CatalogEntry) error {
	var count int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM localities").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i, name := range localities {
		if _, err := tx.ExecContext(ctx, "INSERT INTO localities (name, position) VALUES ($1, $2)", name, i); err != nil {
			return fmt.Errorf("seed locality %q: %w", name, err)
		}
	}
	for i, name := range cuisines {
		if _, err := tx.ExecContext(ctx, "INSERT INTO cuisines (name, position) VALUES ($1, $2)", name, i); err != nil {
			return fmt.Errorf("seed cuisine %q: %w", name, err)
		}
	}
	for _, e := range entries {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO catalog_restaurants (locality, cuisine, name, rating, address) VALUES ($1, $2, $3, $4, $5)",
			e.Locality, e.Cuisine, e.Restaurant.Name, e.Restaurant.Rating, e.Restaurant.Address); err != nil {
			return fmt.Errorf("seed restaurant %q: %w", e.Restaurant.Name, err)
		}
	}

	return tx.Commit()
}

func (r *PostgresCatalog) Localities(ctx context.Context) ([]string, error) {
	return r.names(ctx, "SELECT name FROM localities ORDER BY position")
}

func (r *PostgresCatalog) Cuisines(ctx context.Context) ([]string, error) {
	return r.names(ctx, "SELECT name FROM cuisines ORDER BY position")
}

// CuisinesFor lists a locality's cuisines in the order they were first added.
func (r *PostgresCatalog) CuisinesFor(ctx context.Context, locality string) ([]string, error) {
	return r.names(ctx, `
		SELECT cuisine
		FROM catalog_restaurants
		WHERE locality = $1
		GROUP BY cuisine
		ORDER BY MIN(id)`, locality)
}

func (r *PostgresCatalog) Restaurants(ctx context.Context, locality, cuisine string) ([]domain.Restaurant, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT name, rating, COALESCE(address, '')
		FROM catalog_restaurants
		WHERE locality = $1 AND cuisine = $2
		ORDER BY id`, locality, cuisine)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.Name, &rest.Rating, &rest.Address); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresCatalog) names(ctx context.Context, query string, args ...interface{}) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
