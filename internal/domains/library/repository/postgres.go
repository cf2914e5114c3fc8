package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookhub-backend/internal/domains/library"
	"bookhub-backend/pkg/database"
)

const (
	pgErrUniqueViolation = "23505"
	pgErrForeignKey      = "23503"
)

type postgresLibraryRepository struct {
	db *pgxpool.Pool
}

// NewPostgresLibraryRepository creates a new PostgreSQL library repository
func NewPostgresLibraryRepository(db *pgxpool.Pool) library.Repository {
	return &postgresLibraryRepository{db: db}
}

func (r *postgresLibraryRepository) Create(ctx context.Context, l *library.Library) (*library.Library, error) {
	query := `
		INSERT INTO libraries (name, location)
		VALUES ($1, $2)
		RETURNING id, name, location, created_at, updated_at
	`

	var created library.Library
	err := r.db.QueryRow(ctx, query, l.Name, l.Location).Scan(
		&created.ID,
		&created.Name,
		&created.Location,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create library: %w", err)
	}

	return &created, nil
}

func (r *postgresLibraryRepository) GetByID(ctx context.Context, id uuid.UUID) (*library.Library, error) {
	query := `
		SELECT l.id, l.name, l.location,
		       (SELECT COUNT(*) FROM library_books WHERE library_id = l.id) AS book_count,
		       l.created_at, l.updated_at
		FROM libraries l
		WHERE l.id = $1
	`

	var l library.Library
	err := r.db.QueryRow(ctx, query, id).Scan(
		&l.ID,
		&l.Name,
		&l.Location,
		&l.BookCount,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, library.ErrLibraryNotFound
		}
		return nil, fmt.Errorf("failed to get library: %w", err)
	}

	librarian, err := r.getLibrarian(ctx, id)
	if err != nil {
		return nil, err
	}
	l.Librarian = librarian

	return &l, nil
}

func (r *postgresLibraryRepository) GetAll(ctx context.Context) ([]library.Library, error) {
	query := `
		SELECT l.id, l.name, l.location,
		       (SELECT COUNT(*) FROM library_books WHERE library_id = l.id) AS book_count,
		       l.created_at, l.updated_at
		FROM libraries l
		ORDER BY l.name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list libraries: %w", err)
	}
	defer rows.Close()

	libraries := make([]library.Library, 0)
	for rows.Next() {
		var l library.Library
		if err := rows.Scan(
			&l.ID,
			&l.Name,
			&l.Location,
			&l.BookCount,
			&l.CreatedAt,
			&l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan library: %w", err)
		}
		libraries = append(libraries, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range libraries {
		librarian, err := r.getLibrarian(ctx, libraries[i].ID)
		if err != nil {
			return nil, err
		}
		libraries[i].Librarian = librarian
	}

	return libraries, nil
}

func (r *postgresLibraryRepository) getLibrarian(ctx context.Context, libraryID uuid.UUID) (*library.Librarian, error) {
	var lb library.Librarian
	err := r.db.QueryRow(ctx,
		"SELECT id, name, library_id, created_at FROM librarians WHERE library_id = $1",
		libraryID,
	).Scan(&lb.ID, &lb.Name, &lb.LibraryID, &lb.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get librarian: %w", err)
	}
	return &lb, nil
}

func (r *postgresLibraryRepository) Update(ctx context.Context, l *library.Library) (*library.Library, error) {
	query := `
		UPDATE libraries
		SET name = $1, location = $2, updated_at = NOW()
		WHERE id = $3
	`

	result, err := r.db.Exec(ctx, query, l.Name, l.Location, l.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update library: %w", err)
	}
	if result.RowsAffected() == 0 {
		return nil, library.ErrLibraryNotFound
	}

	return r.GetByID(ctx, l.ID)
}

func (r *postgresLibraryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// The librarian and holdings go with the library in one transaction
	return database.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "DELETE FROM librarians WHERE library_id = $1", id); err != nil {
			return fmt.Errorf("failed to delete librarian: %w", err)
		}
		if _, err := tx.Exec(ctx, "DELETE FROM library_books WHERE library_id = $1", id); err != nil {
			return fmt.Errorf("failed to delete library holdings: %w", err)
		}

		result, err := tx.Exec(ctx, "DELETE FROM libraries WHERE id = $1", id)
		if err != nil {
			return fmt.Errorf("failed to delete library: %w", err)
		}
		if result.RowsAffected() == 0 {
			return library.ErrLibraryNotFound
		}
		return nil
	})
}

func (r *postgresLibraryRepository) AddBook(ctx context.Context, libraryID, bookID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		"INSERT INTO library_books (library_id, book_id) VALUES ($1, $2)",
		libraryID, bookID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgErrUniqueViolation:
				return library.ErrBookAlreadyAdded
			case pgErrForeignKey:
				return library.ErrBookNotFound
			}
		}
		return fmt.Errorf("failed to add book to library: %w", err)
	}
	return nil
}

func (r *postgresLibraryRepository) RemoveBook(ctx context.Context, libraryID, bookID uuid.UUID) error {
	result, err := r.db.Exec(ctx,
		"DELETE FROM library_books WHERE library_id = $1 AND book_id = $2",
		libraryID, bookID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove book from library: %w", err)
	}
	if result.RowsAffected() == 0 {
		return library.ErrBookNotInLibrary
	}
	return nil
}

func (r *postgresLibraryRepository) GetBooks(ctx context.Context, libraryID uuid.UUID) ([]library.LibraryBook, error) {
	query := `
		SELECT b.id, b.title, b.publication_year, a.name AS author_name, lb.added_at
		FROM library_books lb
		JOIN books b ON b.id = lb.book_id
		JOIN authors a ON a.id = b.author_id
		WHERE lb.library_id = $1
		ORDER BY b.title
	`

	rows, err := r.db.Query(ctx, query, libraryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list library books: %w", err)
	}
	defer rows.Close()

	books := make([]library.LibraryBook, 0)
	for rows.Next() {
		var b library.LibraryBook
		if err := rows.Scan(&b.BookID, &b.Title, &b.PublicationYear, &b.AuthorName, &b.AddedAt); err != nil {
			return nil, fmt.Errorf("failed to scan library book: %w", err)
		}
		books = append(books, b)
	}

	return books, rows.Err()
}

func (r *postgresLibraryRepository) AssignLibrarian(ctx context.Context, libraryID uuid.UUID, name string) (*library.Librarian, error) {
	// One librarian per library; replacing overwrites the name
	query := `
		INSERT INTO librarians (name, library_id)
		VALUES ($1, $2)
		ON CONFLICT (library_id) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name, library_id, created_at
	`

	var lb library.Librarian
	err := r.db.QueryRow(ctx, query, name, libraryID).Scan(
		&lb.ID,
		&lb.Name,
		&lb.LibraryID,
		&lb.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrForeignKey {
			return nil, library.ErrLibraryNotFound
		}
		return nil, fmt.Errorf("failed to assign librarian: %w", err)
	}

	return &lb, nil
}
