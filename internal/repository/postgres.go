package repository

import (
	"context"
	"errors"
	"fmt"

	"ggmap/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when no map document has the requested slug.
var ErrNotFound = errors.New("repository: map document not found")

// Schema creates the map_documents table.
const Schema = `
	CREATE TABLE IF NOT EXISTS map_documents (
		slug VARCHAR(255) PRIMARY KEY,
		title VARCHAR(255) NOT NULL DEFAULT '',
		body JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
`

// Repository implements the repository interface for PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// EnsureSchema creates the tables the repository needs
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// GetMapDocument returns the document stored under slug
func (r *Repository) GetMapDocument(ctx context.Context, slug string) (*models.MapDocument, error) {
	sql := `
		SELECT slug, title, body, updated_at
		FROM map_documents
		WHERE slug = $1
	`

	var doc models.MapDocument
	err := r.db.QueryRow(ctx, sql, slug).Scan(&doc.Slug, &doc.Title, &doc.Body, &doc.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to get map document: %w", err)
	}

	return &doc, nil
}

// ListMapDocuments returns every document without its body, ordered by slug
func (r *Repository) ListMapDocuments(ctx context.Context) ([]models.MapDocument, error) {
	sql := `
		SELECT slug, title, updated_at
		FROM map_documents
		ORDER BY slug
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list map documents: %w", err)
	}
	defer rows.Close()

	docs := []models.MapDocument{}
	for rows.Next() {
		var doc models.MapDocument
		if err := rows.Scan(&doc.Slug, &doc.Title, &doc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("repository: failed to scan map document: %w", err)
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return docs, nil
}

// UpsertMapDocument inserts or replaces a document
func (r *Repository) UpsertMapDocument(ctx context.Context, doc models.MapDocument) error {
	_, err := r.db.Exec(ctx, upsertSQL, doc.Slug, doc.Title, string(doc.Body))
	if err != nil {
		return fmt.Errorf("repository: failed to upsert map document %q: %w", doc.Slug, err)
	}
	return nil
}

// UpsertMapDocuments writes many documents in one round trip
func (r *Repository) UpsertMapDocuments(ctx context.Context, docs []models.MapDocument) error {
	batch := &pgx.Batch{}
	for _, doc := range docs {
		batch.Queue(upsertSQL, doc.Slug, doc.Title, string(doc.Body))
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for _, doc := range docs {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("repository: failed to upsert map document %q: %w", doc.Slug, err)
		}
	}
	return nil
}

const upsertSQL = `
	INSERT INTO map_documents (slug, title, body, updated_at)
	VALUES ($1, $2, $3::jsonb, now())
	ON CONFLICT (slug) DO UPDATE
	SET title = EXCLUDED.title, body = EXCLUDED.body, updated_at = now()
`
