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

	"bookhub-backend/internal/domains/user"
)

const (
	pgErrUniqueViolation = "23505"
	pgErrForeignKey      = "23503"
)

// userSelectColumns resolves follower/following counts inline
const userSelectColumns = `
	u.id, u.username, u.email, u.password_hash, u.bio, u.avatar_url,
	(SELECT COUNT(*) FROM follows WHERE followee_id = u.id) AS follower_count,
	(SELECT COUNT(*) FROM follows WHERE follower_id = u.id) AS following_count,
	u.created_at, u.updated_at
`

type postgresUserRepository struct {
	db *pgxpool.Pool
}

// NewPostgresUserRepository creates a new PostgreSQL user repository
func NewPostgresUserRepository(db *pgxpool.Pool) user.Repository {
	return &postgresUserRepository{db: db}
}

func (r *postgresUserRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	query := `
		INSERT INTO users (username, email, password_hash, bio)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	created := *u
	err := r.db.QueryRow(ctx, query, u.Username, u.Email, u.PasswordHash, u.Bio).Scan(
		&created.ID,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return nil, user.ErrEmailTaken
			}
			return nil, user.ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &created, nil
}

func (r *postgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM users u
		WHERE u.id = $1
	`, userSelectColumns)

	return r.scanOne(ctx, query, id)
}

func (r *postgresUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM users u
		WHERE u.username = $1
	`, userSelectColumns)

	return r.scanOne(ctx, query, username)
}

func (r *postgresUserRepository) scanOne(ctx context.Context, query string, arg interface{}) (*user.User, error) {
	var u user.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.Bio,
		&u.AvatarURL,
		&u.FollowerCount,
		&u.FollowingCount,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

func (r *postgresUserRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}

func (r *postgresUserRepository) UpdateProfile(ctx context.Context, u *user.User) (*user.User, error) {
	query := `
		UPDATE users
		SET email = $1, bio = $2, updated_at = NOW()
		WHERE id = $3
	`

	result, err := r.db.Exec(ctx, query, u.Email, u.Bio, u.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return nil, user.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return nil, user.ErrUserNotFound
	}

	return r.GetByID(ctx, u.ID)
}

func (r *postgresUserRepository) SetAvatarURL(ctx context.Context, userID uuid.UUID, url string) error {
	result, err := r.db.Exec(ctx,
		"UPDATE users SET avatar_url = $1, updated_at = NOW() WHERE id = $2",
		url, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to set avatar url: %w", err)
	}
	if result.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *postgresUserRepository) Follow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	query := `
		INSERT INTO follows (follower_id, followee_id)
		VALUES ($1, $2)
	`

	_, err := r.db.Exec(ctx, query, followerID, followeeID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgErrUniqueViolation:
				return user.ErrAlreadyFollowing
			case pgErrForeignKey:
				return user.ErrUserNotFound
			}
		}
		return fmt.Errorf("failed to create follow: %w", err)
	}
	return nil
}

func (r *postgresUserRepository) Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	result, err := r.db.Exec(ctx,
		"DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2",
		followerID, followeeID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete follow: %w", err)
	}
	if result.RowsAffected() == 0 {
		return user.ErrNotFollowing
	}
	return nil
}

func (r *postgresUserRepository) IsFollowing(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM follows WHERE follower_id = $1 AND followee_id = $2)",
		followerID, followeeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check follow: %w", err)
	}
	return exists, nil
}

func (r *postgresUserRepository) GetFollowers(ctx context.Context, userID uuid.UUID) ([]user.FollowerResponse, error) {
	query := `
		SELECT u.id, u.username, u.avatar_url
		FROM follows f
		JOIN users u ON u.id = f.follower_id
		WHERE f.followee_id = $1
		ORDER BY f.created_at DESC
	`
	return r.scanFollowers(ctx, query, userID)
}

func (r *postgresUserRepository) GetFollowing(ctx context.Context, userID uuid.UUID) ([]user.FollowerResponse, error) {
	query := `
		SELECT u.id, u.username, u.avatar_url
		FROM follows f
		JOIN users u ON u.id = f.followee_id
		WHERE f.follower_id = $1
		ORDER BY f.created_at DESC
	`
	return r.scanFollowers(ctx, query, userID)
}

func (r *postgresUserRepository) scanFollowers(ctx context.Context, query string, userID uuid.UUID) ([]user.FollowerResponse, error) {
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list follows: %w", err)
	}
	defer rows.Close()

	users := make([]user.FollowerResponse, 0)
	for rows.Next() {
		var f user.FollowerResponse
		if err := rows.Scan(&f.ID, &f.Username, &f.AvatarURL); err != nil {
			return nil, fmt.Errorf("failed to scan follow: %w", err)
		}
		users = append(users, f)
	}

	return users, rows.Err()
}

func (r *postgresUserRepository) CreateRefreshSession(ctx context.Context, session *user.RefreshSession) error {
	query := `
		INSERT INTO refresh_sessions (user_id, token_hash, expires_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.Exec(ctx, query, session.UserID, session.TokenHash, session.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to create refresh session: %w", err)
	}
	return nil
}

func (r *postgresUserRepository) DeleteRefreshSession(ctx context.Context, tokenHash string) error {
	result, err := r.db.Exec(ctx,
		"DELETE FROM refresh_sessions WHERE token_hash = $1 AND expires_at > NOW()",
		tokenHash,
	)
	if err != nil {
		return fmt.Errorf("failed to delete refresh session: %w", err)
	}
	if result.RowsAffected() == 0 {
		return user.ErrInvalidRefreshToken
	}
	return nil
}

func (r *postgresUserRepository) DeleteExpiredSessions(ctx context.Context, before time.Time) (int64, error) {
	result, err := r.db.Exec(ctx, "DELETE FROM refresh_sessions WHERE expires_at < $1", before)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return result.RowsAffected(), nil
}
