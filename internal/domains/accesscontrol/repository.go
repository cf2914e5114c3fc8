package accesscontrol

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines group/permission data access operations
type Repository interface {
	// GetUserPermissions returns the distinct permission codenames a user
	// holds through all their group memberships.
	GetUserPermissions(ctx context.Context, userID uuid.UUID) ([]string, error)

	// ListGroups returns all groups with their permissions resolved
	ListGroups(ctx context.Context) ([]Group, error)

	// GetGroupByName resolves a group by its unique name.
	// Errors: ErrGroupNotFound.
	GetGroupByName(ctx context.Context, name string) (*Group, error)

	// AddMember adds a user to a group.
	// Errors: ErrAlreadyMember, ErrUserNotFound, ErrGroupNotFound.
	AddMember(ctx context.Context, groupID, userID uuid.UUID) error

	// RemoveMember removes a user from a group.
	// Errors: ErrNotMember.
	RemoveMember(ctx context.Context, groupID, userID uuid.UUID) error

	// ListMembers returns the user IDs belonging to a group
	ListMembers(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error)
}
