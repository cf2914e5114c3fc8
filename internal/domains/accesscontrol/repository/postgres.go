package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookhub-backend/internal/domains/accesscontrol"
)

const (
	pgErrUniqueViolation = "23505"
	pgErrForeignKey      = "23503"
)

type postgresAccessControlRepository struct {
	db *pgxpool.Pool
}

// NewPostgresAccessControlRepository creates a new PostgreSQL
// group/permission repository
func NewPostgresAccessControlRepository(db *pgxpool.Pool) accesscontrol.Repository {
	return &postgresAccessControlRepository{db: db}
}

func (r *postgresAccessControlRepository) GetUserPermissions(ctx context.Context, userID uuid.UUID) ([]string, error) {
	query := `
		SELECT DISTINCT p.codename
		FROM user_groups ug
		JOIN group_permissions gp ON gp.group_id = ug.group_id
		JOIN permissions p ON p.id = gp.permission_id
		WHERE ug.user_id = $1
		ORDER BY p.codename
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user permissions: %w", err)
	}
	defer rows.Close()

	codenames := make([]string, 0)
	for rows.Next() {
		var codename string
		if err := rows.Scan(&codename); err != nil {
			return nil, fmt.Errorf("failed to scan permission: %w", err)
		}
		codenames = append(codenames, codename)
	}

	return codenames, rows.Err()
}

func (r *postgresAccessControlRepository) ListGroups(ctx context.Context) ([]accesscontrol.Group, error) {
	rows, err := r.db.Query(ctx,
		"SELECT id, name, created_at FROM groups ORDER BY name",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	groups := make([]accesscontrol.Group, 0)
	for rows.Next() {
		var g accesscontrol.Group
		if err := rows.Scan(&g.ID, &g.Name, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range groups {
		perms, err := r.groupPermissions(ctx, groups[i].ID)
		if err != nil {
			return nil, err
		}
		groups[i].Permissions = perms
	}

	return groups, nil
}

func (r *postgresAccessControlRepository) GetGroupByName(ctx context.Context, name string) (*accesscontrol.Group, error) {
	var g accesscontrol.Group
	err := r.db.QueryRow(ctx,
		"SELECT id, name, created_at FROM groups WHERE name = $1", name,
	).Scan(&g.ID, &g.Name, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, accesscontrol.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	perms, err := r.groupPermissions(ctx, g.ID)
	if err != nil {
		return nil, err
	}
	g.Permissions = perms

	return &g, nil
}

func (r *postgresAccessControlRepository) groupPermissions(ctx context.Context, groupID uuid.UUID) ([]accesscontrol.Permission, error) {
	query := `
		SELECT p.id, p.codename, p.name
		FROM group_permissions gp
		JOIN permissions p ON p.id = gp.permission_id
		WHERE gp.group_id = $1
		ORDER BY p.codename
	`

	rows, err := r.db.Query(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get group permissions: %w", err)
	}
	defer rows.Close()

	perms := make([]accesscontrol.Permission, 0)
	for rows.Next() {
		var p accesscontrol.Permission
		if err := rows.Scan(&p.ID, &p.Codename, &p.Name); err != nil {
			return nil, fmt.Errorf("failed to scan permission: %w", err)
		}
		perms = append(perms, p)
	}

	return perms, rows.Err()
}

func (r *postgresAccessControlRepository) AddMember(ctx context.Context, groupID, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		"INSERT INTO user_groups (user_id, group_id) VALUES ($1, $2)",
		userID, groupID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgErrUniqueViolation:
				return accesscontrol.ErrAlreadyMember
			case pgErrForeignKey:
				return accesscontrol.ErrUserNotFound
			}
		}
		return fmt.Errorf("failed to add member: %w", err)
	}
	return nil
}

func (r *postgresAccessControlRepository) RemoveMember(ctx context.Context, groupID, userID uuid.UUID) error {
	result, err := r.db.Exec(ctx,
		"DELETE FROM user_groups WHERE user_id = $1 AND group_id = $2",
		userID, groupID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	if result.RowsAffected() == 0 {
		return accesscontrol.ErrNotMember
	}
	return nil
}

func (r *postgresAccessControlRepository) ListMembers(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		"SELECT user_id FROM user_groups WHERE group_id = $1", groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	members := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, id)
	}

	return members, rows.Err()
}
