package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"bookhub-backend/internal/domains/accesscontrol"
)

// fakeAccessRepository serves canned group memberships and counts lookups
// so tests can verify the cache is doing its job.
type fakeAccessRepository struct {
	groups      map[string]*accesscontrol.Group
	memberships map[uuid.UUID][]string // userID -> group names
	lookups     int
}

func newFakeAccessRepository() *fakeAccessRepository {
	viewers := &accesscontrol.Group{ID: uuid.New(), Name: accesscontrol.GroupViewers}
	editors := &accesscontrol.Group{ID: uuid.New(), Name: accesscontrol.GroupEditors}
	admins := &accesscontrol.Group{ID: uuid.New(), Name: accesscontrol.GroupAdmins}
	return &fakeAccessRepository{
		groups: map[string]*accesscontrol.Group{
			viewers.Name: viewers,
			editors.Name: editors,
			admins.Name:  admins,
		},
		memberships: make(map[uuid.UUID][]string),
	}
}

var groupPermissions = map[string][]string{
	accesscontrol.GroupViewers: {accesscontrol.PermCanView},
	accesscontrol.GroupEditors: {accesscontrol.PermCanView, accesscontrol.PermCanCreate, accesscontrol.PermCanEdit},
	accesscontrol.GroupAdmins:  {accesscontrol.PermCanView, accesscontrol.PermCanCreate, accesscontrol.PermCanEdit, accesscontrol.PermCanDelete},
}

func (f *fakeAccessRepository) GetUserPermissions(_ context.Context, userID uuid.UUID) ([]string, error) {
	f.lookups++
	seen := make(map[string]bool)
	var perms []string
	for _, groupName := range f.memberships[userID] {
		for _, p := range groupPermissions[groupName] {
			if !seen[p] {
				seen[p] = true
				perms = append(perms, p)
			}
		}
	}
	return perms, nil
}

func (f *fakeAccessRepository) ListGroups(_ context.Context) ([]accesscontrol.Group, error) {
	var out []accesscontrol.Group
	for _, g := range f.groups {
		out = append(out, *g)
	}
	return out, nil
}

func (f *fakeAccessRepository) GetGroupByName(_ context.Context, name string) (*accesscontrol.Group, error) {
	g, ok := f.groups[name]
	if !ok {
		return nil, accesscontrol.ErrGroupNotFound
	}
	return g, nil
}

func (f *fakeAccessRepository) AddMember(_ context.Context, groupID, userID uuid.UUID) error {
	for _, g := range f.groups {
		if g.ID == groupID {
			f.memberships[userID] = append(f.memberships[userID], g.Name)
			return nil
		}
	}
	return accesscontrol.ErrGroupNotFound
}

func (f *fakeAccessRepository) RemoveMember(_ context.Context, groupID, userID uuid.UUID) error {
	for _, g := range f.groups {
		if g.ID == groupID {
			kept := f.memberships[userID][:0]
			for _, name := range f.memberships[userID] {
				if name != g.Name {
					kept = append(kept, name)
				}
			}
			f.memberships[userID] = kept
			return nil
		}
	}
	return accesscontrol.ErrGroupNotFound
}

func (f *fakeAccessRepository) ListMembers(_ context.Context, groupID uuid.UUID) ([]uuid.UUID, error) {
	for _, g := range f.groups {
		if g.ID == groupID {
			var members []uuid.UUID
			for userID, names := range f.memberships {
				for _, name := range names {
					if name == g.Name {
						members = append(members, userID)
					}
				}
			}
			return members, nil
		}
	}
	return nil, accesscontrol.ErrGroupNotFound
}

// fakeCache is an in-memory cache.Cache for tests
type fakeCache struct {
	values map[string][]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string][]string)}
}

func (f *fakeCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	v, ok := f.values[key]
	if !ok {
		return false, nil
	}
	if out, ok := dest.(*[]string); ok {
		*out = v
	}
	return true, nil
}

func (f *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if v, ok := value.([]string); ok {
		f.values[key] = v
	}
	return nil
}

func (f *fakeCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.values, k)
	}
	return nil
}

func (f *fakeCache) DeletePattern(_ context.Context, _ string) error {
	f.values = make(map[string][]string)
	return nil
}

func (f *fakeCache) Exists(_ context.Context, key string) (bool, error) {
	_, ok := f.values[key]
	return ok, nil
}

func (f *fakeCache) Ping(_ context.Context) error { return nil }

func TestHasPermissionPerGroup(t *testing.T) {
	repo := newFakeAccessRepository()
	svc := NewAccessControlService(repo, newFakeCache())
	ctx := context.Background()

	viewer := uuid.New()
	editor := uuid.New()
	admin := uuid.New()

	require.NoError(t, svc.AddUserToGroup(ctx, accesscontrol.GroupViewers, viewer))
	require.NoError(t, svc.AddUserToGroup(ctx, accesscontrol.GroupEditors, editor))
	require.NoError(t, svc.AddUserToGroup(ctx, accesscontrol.GroupAdmins, admin))

	tests := []struct {
		name     string
		userID   uuid.UUID
		codename string
		want     bool
	}{
		{"viewer can view", viewer, accesscontrol.PermCanView, true},
		{"viewer cannot create", viewer, accesscontrol.PermCanCreate, false},
		{"viewer cannot delete", viewer, accesscontrol.PermCanDelete, false},
		{"editor can create", editor, accesscontrol.PermCanCreate, true},
		{"editor can edit", editor, accesscontrol.PermCanEdit, true},
		{"editor cannot delete", editor, accesscontrol.PermCanDelete, false},
		{"admin can delete", admin, accesscontrol.PermCanDelete, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.HasPermission(ctx, tt.userID, tt.codename)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestPermissionsAreCached(t *testing.T) {
	repo := newFakeAccessRepository()
	svc := NewAccessControlService(repo, newFakeCache())
	ctx := context.Background()

	userID := uuid.New()
	require.NoError(t, svc.AddUserToGroup(ctx, accesscontrol.GroupViewers, userID))

	_, err := svc.HasPermission(ctx, userID, accesscontrol.PermCanView)
	require.NoError(t, err)
	_, err = svc.HasPermission(ctx, userID, accesscontrol.PermCanEdit)
	require.NoError(t, err)

	require.Equal(t, 1, repo.lookups, "second check should hit the cache")
}

func TestMembershipChangeInvalidatesCache(t *testing.T) {
	repo := newFakeAccessRepository()
	svc := NewAccessControlService(repo, newFakeCache())
	ctx := context.Background()

	userID := uuid.New()
	require.NoError(t, svc.AddUserToGroup(ctx, accesscontrol.GroupViewers, userID))

	allowed, err := svc.HasPermission(ctx, userID, accesscontrol.PermCanEdit)
	require.NoError(t, err)
	require.False(t, allowed)

	// Promotion must take effect immediately, not after the TTL
	require.NoError(t, svc.AddUserToGroup(ctx, accesscontrol.GroupEditors, userID))

	allowed, err = svc.HasPermission(ctx, userID, accesscontrol.PermCanEdit)
	require.NoError(t, err)
	require.True(t, allowed)

	require.NoError(t, svc.RemoveUserFromGroup(ctx, accesscontrol.GroupEditors, userID))

	allowed, err = svc.HasPermission(ctx, userID, accesscontrol.PermCanEdit)
	require.NoError(t, err)
	require.False(t, allowed)
}

func TestListGroupMembers(t *testing.T) {
	repo := newFakeAccessRepository()
	svc := NewAccessControlService(repo, newFakeCache())
	ctx := context.Background()

	alice := uuid.New()
	bob := uuid.New()
	require.NoError(t, svc.AddUserToGroup(ctx, accesscontrol.GroupEditors, alice))
	require.NoError(t, svc.AddUserToGroup(ctx, accesscontrol.GroupEditors, bob))
	require.NoError(t, svc.AddUserToGroup(ctx, accesscontrol.GroupViewers, alice))

	members, err := svc.ListGroupMembers(ctx, accesscontrol.GroupEditors)
	require.NoError(t, err)
	require.ElementsMatch(t, []uuid.UUID{alice, bob}, members)

	members, err = svc.ListGroupMembers(ctx, accesscontrol.GroupViewers)
	require.NoError(t, err)
	require.ElementsMatch(t, []uuid.UUID{alice}, members)

	members, err = svc.ListGroupMembers(ctx, accesscontrol.GroupAdmins)
	require.NoError(t, err)
	require.Empty(t, members)

	_, err = svc.ListGroupMembers(ctx, "Ghosts")
	require.ErrorIs(t, err, accesscontrol.ErrGroupNotFound)
}

func TestAddUserToUnknownGroup(t *testing.T) {
	repo := newFakeAccessRepository()
	svc := NewAccessControlService(repo, newFakeCache())

	err := svc.AddUserToGroup(context.Background(), "Ghosts", uuid.New())
	require.ErrorIs(t, err, accesscontrol.ErrGroupNotFound)
}
