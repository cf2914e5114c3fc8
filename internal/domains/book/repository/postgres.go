package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookhub-backend/internal/domains/book"
	"bookhub-backend/pkg/cache"
	"bookhub-backend/pkg/logger"
)

const (
	bookCacheKeyPrefix = "book:"
	bookCacheTTL       = 10 * time.Minute

	// PostgreSQL error codes
	pgErrForeignKeyViolation = "23503"
)

const bookSelectColumns = `
	b.id, b.title, b.publication_year, b.author_id, a.name AS author_name,
	b.created_at, b.updated_at
`

type postgresBookRepository struct {
	db    *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresBookRepository creates a new PostgreSQL book repository
func NewPostgresBookRepository(db *pgxpool.Pool, cache cache.Cache) book.Repository {
	return &postgresBookRepository{
		db:    db,
		cache: cache,
	}
}

func (r *postgresBookRepository) Create(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
		INSERT INTO books (title, publication_year, author_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	created := *b
	err := r.db.QueryRow(ctx, query, b.Title, b.PublicationYear, b.AuthorID).Scan(
		&created.ID,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrForeignKeyViolation {
			return nil, book.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return r.GetByID(ctx, created.ID)
}

func (r *postgresBookRepository) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	cacheKey := bookCacheKeyPrefix + id.String()

	var cached book.Book
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM books b
		JOIN authors a ON a.id = b.author_id
		WHERE b.id = $1
	`, bookSelectColumns)

	var b book.Book
	err := r.db.QueryRow(ctx, query, id).Scan(
		&b.ID,
		&b.Title,
		&b.PublicationYear,
		&b.AuthorID,
		&b.AuthorName,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	if err := r.cache.Set(ctx, cacheKey, b, bookCacheTTL); err != nil {
		logger.Warn().Err(err).Str("book_id", id.String()).Msg("Failed to cache book")
	}

	return &b, nil
}

func (r *postgresBookRepository) GetAll(ctx context.Context, filter book.BookFilter) ([]book.Book, int64, error) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	if filter.AuthorID != nil {
		conditions = append(conditions, fmt.Sprintf("b.author_id = $%d", argIndex))
		args = append(args, *filter.AuthorID)
		argIndex++
	}
	if filter.PublicationYear != nil {
		conditions = append(conditions, fmt.Sprintf("b.publication_year = $%d", argIndex))
		args = append(args, *filter.PublicationYear)
		argIndex++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("b.title ILIKE $%d", argIndex))
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM books b %s", whereClause)
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count books: %w", err)
	}

	var query strings.Builder
	query.WriteString(fmt.Sprintf(`
		SELECT %s
		FROM books b
		JOIN authors a ON a.id = b.author_id
		%s
		ORDER BY %s
	`, bookSelectColumns, whereClause, filter.OrderByClause()))

	if filter.Limit > 0 {
		query.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1))
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.db.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := make([]book.Book, 0)
	for rows.Next() {
		var b book.Book
		if err := rows.Scan(
			&b.ID,
			&b.Title,
			&b.PublicationYear,
			&b.AuthorID,
			&b.AuthorName,
			&b.CreatedAt,
			&b.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}

	return books, total, rows.Err()
}

func (r *postgresBookRepository) Update(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
		UPDATE books
		SET title = $1, publication_year = $2, author_id = $3, updated_at = NOW()
		WHERE id = $4
	`

	result, err := r.db.Exec(ctx, query, b.Title, b.PublicationYear, b.AuthorID, b.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrForeignKeyViolation {
			return nil, book.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}
	if result.RowsAffected() == 0 {
		return nil, book.ErrBookNotFound
	}

	r.invalidateCache(ctx, b.ID)

	return r.GetByID(ctx, b.ID)
}

func (r *postgresBookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, "DELETE FROM books WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if result.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}

	r.invalidateCache(ctx, id)

	return nil
}

func (r *postgresBookRepository) invalidateCache(ctx context.Context, id uuid.UUID) {
	if err := r.cache.Delete(ctx, bookCacheKeyPrefix+id.String()); err != nil {
		logger.Warn().Err(err).Str("book_id", id.String()).Msg("Failed to invalidate book cache")
	}
}
