package accesscontrol

import (
	"context"

	"github.com/google/uuid"
)

// Service resolves permissions and manages group membership.
// HasPermission satisfies middleware.PermissionChecker.
type Service interface {
	// HasPermission reports whether the user holds the codename through
	// any group. Results are cached briefly, so membership changes may
	// take up to the cache TTL to apply.
	HasPermission(ctx context.Context, userID uuid.UUID, codename string) (bool, error)

	// GetUserPermissions lists the user's distinct permission codenames
	GetUserPermissions(ctx context.Context, userID uuid.UUID) ([]string, error)

	// ListGroups returns all groups with their permissions
	ListGroups(ctx context.Context) ([]Group, error)

	// ListGroupMembers returns the IDs of users in a named group.
	// Errors: ErrGroupNotFound.
	ListGroupMembers(ctx context.Context, groupName string) ([]uuid.UUID, error)

	// AddUserToGroup adds a user to a named group and invalidates the
	// user's cached permissions.
	// Errors: ErrGroupNotFound, ErrUserNotFound, ErrAlreadyMember.
	AddUserToGroup(ctx context.Context, groupName string, userID uuid.UUID) error

	// RemoveUserFromGroup removes a user from a named group and
	// invalidates their cached permissions.
	// Errors: ErrGroupNotFound, ErrNotMember.
	RemoveUserFromGroup(ctx context.Context, groupName string, userID uuid.UUID) error
}
