package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookhub-backend/internal/domains/author"
	"bookhub-backend/pkg/cache"
	"bookhub-backend/pkg/logger"
)

const (
	authorCacheKeyPrefix = "author:"
	authorCacheTTL       = 10 * time.Minute
)

type postgresAuthorRepository struct {
	db    *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresAuthorRepository creates a new PostgreSQL author repository
// with read-through caching for single-author lookups
func NewPostgresAuthorRepository(db *pgxpool.Pool, cache cache.Cache) author.Repository {
	return &postgresAuthorRepository{
		db:    db,
		cache: cache,
	}
}

func (r *postgresAuthorRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
		INSERT INTO authors (name)
		VALUES ($1)
		RETURNING id, name, created_at, updated_at
	`

	var created author.Author
	err := r.db.QueryRow(ctx, query, a.Name).Scan(
		&created.ID,
		&created.Name,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return &created, nil
}

func (r *postgresAuthorRepository) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	cacheKey := authorCacheKeyPrefix + id.String()

	var cached author.Author
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := `
		SELECT id, name, created_at, updated_at
		FROM authors
		WHERE id = $1
	`

	var a author.Author
	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.Name,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author: %w", err)
	}

	if err := r.cache.Set(ctx, cacheKey, a, authorCacheTTL); err != nil {
		logger.Warn().Err(err).Str("author_id", id.String()).Msg("Failed to cache author")
	}

	return &a, nil
}

func (r *postgresAuthorRepository) GetAll(ctx context.Context, filter author.AuthorFilter) ([]author.Author, int64, error) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", argIndex))
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM authors %s", whereClause)
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count authors: %w", err)
	}

	// Whitelisted sort columns, anything else falls back to name
	sortBy := "name"
	if filter.SortBy == "created_at" {
		sortBy = "created_at"
	}
	order := "ASC"
	if strings.EqualFold(filter.Order, "desc") {
		order = "DESC"
	}

	query := fmt.Sprintf(`
		SELECT id, name, created_at, updated_at
		FROM authors
		%s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, whereClause, sortBy, order, argIndex, argIndex+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	authors := make([]author.Author, 0)
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}

	return authors, total, rows.Err()
}

func (r *postgresAuthorRepository) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
		UPDATE authors
		SET name = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, name, created_at, updated_at
	`

	var updated author.Author
	err := r.db.QueryRow(ctx, query, a.Name, a.ID).Scan(
		&updated.ID,
		&updated.Name,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	r.invalidateCache(ctx, a.ID)

	return &updated, nil
}

func (r *postgresAuthorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, "DELETE FROM authors WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}
	if result.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}

	r.invalidateCache(ctx, id)

	return nil
}

func (r *postgresAuthorRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}
	return exists, nil
}

func (r *postgresAuthorRepository) GetBooks(ctx context.Context, authorID uuid.UUID) ([]author.BookSummary, error) {
	query := `
		SELECT id, title, publication_year
		FROM books
		WHERE author_id = $1
		ORDER BY publication_year DESC, title ASC
	`

	rows, err := r.db.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list author books: %w", err)
	}
	defer rows.Close()

	books := make([]author.BookSummary, 0)
	for rows.Next() {
		var b author.BookSummary
		if err := rows.Scan(&b.ID, &b.Title, &b.PublicationYear); err != nil {
			return nil, fmt.Errorf("failed to scan book summary: %w", err)
		}
		books = append(books, b)
	}

	return books, rows.Err()
}

func (r *postgresAuthorRepository) invalidateCache(ctx context.Context, id uuid.UUID) {
	if err := r.cache.Delete(ctx, authorCacheKeyPrefix+id.String()); err != nil {
		logger.Warn().Err(err).Str("author_id", id.String()).Msg("Failed to invalidate author cache")
	}

	// Cached books embed the author name, so a rename or delete
	// invalidates the whole book cache
	if err := r.cache.DeletePattern(ctx, "book:*"); err != nil {
		logger.Warn().Err(err).Msg("Failed to invalidate book cache")
	}
}
