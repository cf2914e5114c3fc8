package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookhub-backend/internal/domains/comment"
)

const commentSelectColumns = `
	c.id, c.post_id, c.author_id, u.username AS author_username, c.content,
	c.created_at, c.updated_at
`

type postgresCommentRepository struct {
	db *pgxpool.Pool
}

// NewPostgresCommentRepository creates a new PostgreSQL comment repository
func NewPostgresCommentRepository(db *pgxpool.Pool) comment.Repository {
	return &postgresCommentRepository{db: db}
}

func (r *postgresCommentRepository) Create(ctx context.Context, c *comment.Comment) (*comment.Comment, error) {
	query := `
		INSERT INTO comments (post_id, author_id, content)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query, c.PostID, c.AuthorID, c.Content).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *postgresCommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*comment.Comment, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.id = $1
	`, commentSelectColumns)

	var c comment.Comment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.PostID,
		&c.AuthorID,
		&c.AuthorUsername,
		&c.Content,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, comment.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return &c, nil
}

func (r *postgresCommentRepository) GetByPost(ctx context.Context, postID uuid.UUID, limit, offset int) ([]comment.Comment, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM comments WHERE post_id = $1", postID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count comments: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.created_at ASC
		LIMIT $2 OFFSET $3
	`, commentSelectColumns)

	rows, err := r.db.Query(ctx, query, postID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]comment.Comment, 0)
	for rows.Next() {
		var c comment.Comment
		if err := rows.Scan(
			&c.ID,
			&c.PostID,
			&c.AuthorID,
			&c.AuthorUsername,
			&c.Content,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}

	return comments, total, rows.Err()
}

func (r *postgresCommentRepository) Update(ctx context.Context, c *comment.Comment) (*comment.Comment, error) {
	query := `
		UPDATE comments
		SET content = $1, updated_at = NOW()
		WHERE id = $2
	`

	result, err := r.db.Exec(ctx, query, c.Content, c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return nil, comment.ErrCommentNotFound
	}

	return r.GetByID(ctx, c.ID)
}

func (r *postgresCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, "DELETE FROM comments WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return comment.ErrCommentNotFound
	}
	return nil
}
