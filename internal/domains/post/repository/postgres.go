package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookhub-backend/internal/domains/post"
)

const (
	pgErrUniqueViolation = "23505"
	pgErrForeignKey      = "23503"
)

const postSelectColumns = `
	p.id, p.author_id, u.username AS author_username, p.title, p.content, p.tags,
	(SELECT COUNT(*) FROM post_likes WHERE post_id = p.id) AS like_count,
	(SELECT COUNT(*) FROM comments WHERE post_id = p.id) AS comment_count,
	p.created_at, p.updated_at
`

type postgresPostRepository struct {
	db *pgxpool.Pool
}

// NewPostgresPostRepository creates a new PostgreSQL post repository
func NewPostgresPostRepository(db *pgxpool.Pool) post.Repository {
	return &postgresPostRepository{db: db}
}

func (r *postgresPostRepository) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	query := `
		INSERT INTO posts (author_id, title, content, tags)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query, p.AuthorID, p.Title, p.Content, p.Tags).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *postgresPostRepository) GetByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1
	`, postSelectColumns)

	var p post.Post
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.AuthorID,
		&p.AuthorUsername,
		&p.Title,
		&p.Content,
		&p.Tags,
		&p.LikeCount,
		&p.CommentCount,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &p, nil
}

func (r *postgresPostRepository) GetAll(ctx context.Context, filter post.PostFilter) ([]post.Post, int64, error) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	if filter.Search != "" {
		conditions = append(conditions,
			fmt.Sprintf("(p.title ILIKE $%d OR p.content ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}
	if filter.Author != nil {
		conditions = append(conditions, fmt.Sprintf("p.author_id = $%d", argIndex))
		args = append(args, *filter.Author)
		argIndex++
	}
	if filter.Tag != "" {
		conditions = append(conditions, fmt.Sprintf("$%d = ANY(p.tags)", argIndex))
		args = append(args, filter.Tag)
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM posts p %s", whereClause)
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		JOIN users u ON u.id = p.author_id
		%s
		ORDER BY p.created_at DESC
		LIMIT $%d OFFSET $%d
	`, postSelectColumns, whereClause, argIndex, argIndex+1)
	args = append(args, filter.Limit, filter.Offset)

	return r.queryPosts(ctx, query, total, args...)
}

func (r *postgresPostRepository) GetFeed(ctx context.Context, userID uuid.UUID, limit, offset int) ([]post.Post, int64, error) {
	countQuery := `
		SELECT COUNT(*)
		FROM posts p
		WHERE p.author_id IN (SELECT followee_id FROM follows WHERE follower_id = $1)
	`
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count feed: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.author_id IN (SELECT followee_id FROM follows WHERE follower_id = $1)
		ORDER BY p.created_at DESC
		LIMIT $2 OFFSET $3
	`, postSelectColumns)

	return r.queryPosts(ctx, query, total, userID, limit, offset)
}

func (r *postgresPostRepository) queryPosts(ctx context.Context, query string, total int64, args ...interface{}) ([]post.Post, int64, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]post.Post, 0)
	for rows.Next() {
		var p post.Post
		if err := rows.Scan(
			&p.ID,
			&p.AuthorID,
			&p.AuthorUsername,
			&p.Title,
			&p.Content,
			&p.Tags,
			&p.LikeCount,
			&p.CommentCount,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}

	return posts, total, rows.Err()
}

func (r *postgresPostRepository) Update(ctx context.Context, p *post.Post) (*post.Post, error) {
	query := `
		UPDATE posts
		SET title = $1, content = $2, tags = $3, updated_at = NOW()
		WHERE id = $4
	`

	result, err := r.db.Exec(ctx, query, p.Title, p.Content, p.Tags, p.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	if result.RowsAffected() == 0 {
		return nil, post.ErrPostNotFound
	}

	return r.GetByID(ctx, p.ID)
}

func (r *postgresPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, "DELETE FROM posts WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if result.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}
	return nil
}

func (r *postgresPostRepository) Like(ctx context.Context, postID, userID uuid.UUID) error {
	query := `
		INSERT INTO post_likes (post_id, user_id)
		VALUES ($1, $2)
	`

	_, err := r.db.Exec(ctx, query, postID, userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgErrUniqueViolation:
				return post.ErrAlreadyLiked
			case pgErrForeignKey:
				return post.ErrPostNotFound
			}
		}
		return fmt.Errorf("failed to like post: %w", err)
	}
	return nil
}

func (r *postgresPostRepository) Unlike(ctx context.Context, postID, userID uuid.UUID) error {
	result, err := r.db.Exec(ctx,
		"DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2",
		postID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to unlike post: %w", err)
	}
	if result.RowsAffected() == 0 {
		return post.ErrNotLiked
	}
	return nil
}
