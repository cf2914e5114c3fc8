package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"bookhub-backend/internal/domains/user"
	"bookhub-backend/pkg/jwt"
)

// fakeUserRepository is an in-memory user.Repository for service tests
type fakeUserRepository struct {
	users    map[uuid.UUID]*user.User
	follows  map[uuid.UUID]map[uuid.UUID]bool // follower -> followees
	sessions []*user.RefreshSession
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		users:   make(map[uuid.UUID]*user.User),
		follows: make(map[uuid.UUID]map[uuid.UUID]bool),
	}
}

func (f *fakeUserRepository) Create(_ context.Context, u *user.User) (*user.User, error) {
	for _, existing := range f.users {
		if existing.Username == u.Username {
			return nil, user.ErrUsernameTaken
		}
		if existing.Email == u.Email {
			return nil, user.ErrEmailTaken
		}
	}
	u.ID = uuid.New()
	u.CreatedAt = time.Now()
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepository) GetByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepository) GetByUsername(_ context.Context, username string) (*user.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (f *fakeUserRepository) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.users[id]
	return ok, nil
}

func (f *fakeUserRepository) UpdateProfile(_ context.Context, u *user.User) (*user.User, error) {
	if _, ok := f.users[u.ID]; !ok {
		return nil, user.ErrUserNotFound
	}
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepository) SetAvatarURL(_ context.Context, userID uuid.UUID, url string) error {
	u, ok := f.users[userID]
	if !ok {
		return user.ErrUserNotFound
	}
	u.AvatarURL = &url
	return nil
}

func (f *fakeUserRepository) Follow(_ context.Context, followerID, followeeID uuid.UUID) error {
	if f.follows[followerID] == nil {
		f.follows[followerID] = make(map[uuid.UUID]bool)
	}
	if f.follows[followerID][followeeID] {
		return user.ErrAlreadyFollowing
	}
	f.follows[followerID][followeeID] = true
	return nil
}

func (f *fakeUserRepository) Unfollow(_ context.Context, followerID, followeeID uuid.UUID) error {
	if !f.follows[followerID][followeeID] {
		return user.ErrNotFollowing
	}
	delete(f.follows[followerID], followeeID)
	return nil
}

func (f *fakeUserRepository) IsFollowing(_ context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	return f.follows[followerID][followeeID], nil
}

func (f *fakeUserRepository) GetFollowers(_ context.Context, _ uuid.UUID) ([]user.FollowerResponse, error) {
	return nil, nil
}

func (f *fakeUserRepository) GetFollowing(_ context.Context, _ uuid.UUID) ([]user.FollowerResponse, error) {
	return nil, nil
}

func (f *fakeUserRepository) CreateRefreshSession(_ context.Context, session *user.RefreshSession) error {
	f.sessions = append(f.sessions, session)
	return nil
}

func (f *fakeUserRepository) DeleteRefreshSession(_ context.Context, tokenHash string) error {
	for i, s := range f.sessions {
		if s.TokenHash == tokenHash && s.ExpiresAt.After(time.Now()) {
			f.sessions = append(f.sessions[:i], f.sessions[i+1:]...)
			return nil
		}
	}
	return user.ErrInvalidRefreshToken
}

func (f *fakeUserRepository) DeleteExpiredSessions(_ context.Context, before time.Time) (int64, error) {
	var kept []*user.RefreshSession
	var removed int64
	for _, s := range f.sessions {
		if s.ExpiresAt.Before(before) {
			removed++
			continue
		}
		kept = append(kept, s)
	}
	f.sessions = kept
	return removed, nil
}

func newTestUserService(repo user.Repository) user.Service {
	manager := jwt.NewManager("test-secret", 15*time.Minute, 24*time.Hour)
	return NewUserService(repo, manager, nil, nil, 24*time.Hour)
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newFakeUserRepository()
	svc := newTestUserService(repo)

	resp, err := svc.Register(context.Background(), &user.RegisterRequest{
		Username: "alice",
		Email:    "Alice@Example.COM",
		Password: "correct horse battery staple",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.NotEmpty(t, resp.RefreshToken)

	stored, err := repo.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse battery staple", stored.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(stored.PasswordHash), []byte("correct horse battery staple")))

	// Email is normalized to lowercase
	require.Equal(t, "alice@example.com", stored.Email)

	// A refresh session is recorded with the token hash, not the token
	require.Len(t, repo.sessions, 1)
	require.NotEqual(t, resp.RefreshToken, repo.sessions[0].TokenHash)
}

func TestRegisterRejectsWeakInput(t *testing.T) {
	repo := newFakeUserRepository()
	svc := newTestUserService(repo)
	ctx := context.Background()

	tests := []struct {
		name string
		req  user.RegisterRequest
	}{
		{"short password", user.RegisterRequest{Username: "alice", Email: "a@example.com", Password: "short"}},
		{"bad email", user.RegisterRequest{Username: "alice", Email: "not-an-email", Password: "longenough1"}},
		{"username too short", user.RegisterRequest{Username: "ab", Email: "a@example.com", Password: "longenough1"}},
		{"username with spaces", user.RegisterRequest{Username: "al ice", Email: "a@example.com", Password: "longenough1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			_, err := svc.Register(ctx, &req)
			require.Error(t, err)
		})
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := newFakeUserRepository()
	svc := newTestUserService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, &user.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "longenough1",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &user.RegisterRequest{
		Username: "alice", Email: "other@example.com", Password: "longenough1",
	})
	require.ErrorIs(t, err, user.ErrUsernameTaken)
	require.Equal(t, 409, user.ToHTTPStatus(err))
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepository()
	svc := newTestUserService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, &user.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "longenough1",
	})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, &user.LoginRequest{Username: "alice", Password: "longenough1"})
	require.NoError(t, err)
	require.Equal(t, "alice", resp.User.Username)

	_, err = svc.Login(ctx, &user.LoginRequest{Username: "alice", Password: "wrong password"})
	require.ErrorIs(t, err, user.ErrInvalidCredentials)

	// Unknown username yields the same error as a wrong password
	_, err = svc.Login(ctx, &user.LoginRequest{Username: "nobody", Password: "longenough1"})
	require.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestRefreshRotatesSession(t *testing.T) {
	repo := newFakeUserRepository()
	svc := newTestUserService(repo)
	ctx := context.Background()

	registered, err := svc.Register(ctx, &user.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "longenough1",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, &user.RefreshRequest{RefreshToken: registered.RefreshToken})
	require.NoError(t, err)
	require.NotEmpty(t, refreshed.Token)
	require.NotEmpty(t, refreshed.RefreshToken)
	require.Equal(t, "alice", refreshed.User.Username)

	// The old session is replaced, not stacked
	require.Len(t, repo.sessions, 1)

	// Each refresh token redeems once; a replay is rejected
	_, err = svc.Refresh(ctx, &user.RefreshRequest{RefreshToken: registered.RefreshToken})
	require.ErrorIs(t, err, user.ErrInvalidRefreshToken)

	// The rotated token still works
	_, err = svc.Refresh(ctx, &user.RefreshRequest{RefreshToken: refreshed.RefreshToken})
	require.NoError(t, err)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	repo := newFakeUserRepository()
	svc := newTestUserService(repo)
	ctx := context.Background()

	registered, err := svc.Register(ctx, &user.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "longenough1",
	})
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, &user.RefreshRequest{RefreshToken: registered.Token})
	require.ErrorIs(t, err, user.ErrInvalidRefreshToken)
	require.Equal(t, 401, user.ToHTTPStatus(err))

	_, err = svc.Refresh(ctx, &user.RefreshRequest{RefreshToken: "not-a-jwt"})
	require.ErrorIs(t, err, user.ErrInvalidRefreshToken)
}

func TestLogoutRevokesSession(t *testing.T) {
	repo := newFakeUserRepository()
	svc := newTestUserService(repo)
	ctx := context.Background()

	registered, err := svc.Register(ctx, &user.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "longenough1",
	})
	require.NoError(t, err)
	require.Len(t, repo.sessions, 1)

	require.NoError(t, svc.Logout(ctx, &user.RefreshRequest{RefreshToken: registered.RefreshToken}))
	require.Empty(t, repo.sessions)

	// The revoked token can no longer be redeemed
	_, err = svc.Refresh(ctx, &user.RefreshRequest{RefreshToken: registered.RefreshToken})
	require.ErrorIs(t, err, user.ErrInvalidRefreshToken)

	// Double logout fails the same way
	err = svc.Logout(ctx, &user.RefreshRequest{RefreshToken: registered.RefreshToken})
	require.ErrorIs(t, err, user.ErrInvalidRefreshToken)
}

func TestIsFollowing(t *testing.T) {
	repo := newFakeUserRepository()
	svc := newTestUserService(repo)
	ctx := context.Background()

	alice, err := repo.Create(ctx, &user.User{Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)
	bob, err := repo.Create(ctx, &user.User{Username: "bob", Email: "bob@example.com"})
	require.NoError(t, err)

	following, err := svc.IsFollowing(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.False(t, following)

	require.NoError(t, svc.Follow(ctx, alice.ID, bob.ID))

	following, err = svc.IsFollowing(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.True(t, following)

	// The edge is directional
	following, err = svc.IsFollowing(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	require.False(t, following)
}

func TestFollow(t *testing.T) {
	repo := newFakeUserRepository()
	svc := newTestUserService(repo)
	ctx := context.Background()

	alice, err := repo.Create(ctx, &user.User{Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)
	bob, err := repo.Create(ctx, &user.User{Username: "bob", Email: "bob@example.com"})
	require.NoError(t, err)

	require.ErrorIs(t, svc.Follow(ctx, alice.ID, alice.ID), user.ErrSelfFollow)
	require.ErrorIs(t, svc.Follow(ctx, alice.ID, uuid.New()), user.ErrUserNotFound)

	require.NoError(t, svc.Follow(ctx, alice.ID, bob.ID))
	require.ErrorIs(t, svc.Follow(ctx, alice.ID, bob.ID), user.ErrAlreadyFollowing)

	require.NoError(t, svc.Unfollow(ctx, alice.ID, bob.ID))
	require.ErrorIs(t, svc.Unfollow(ctx, alice.ID, bob.ID), user.ErrNotFollowing)
}

func TestDeleteExpiredSessions(t *testing.T) {
	repo := newFakeUserRepository()
	svc := newTestUserService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, &user.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "longenough1",
	})
	require.NoError(t, err)
	require.Len(t, repo.sessions, 1)

	// Session expiry is in the future, nothing to purge yet
	removed, err := repo.DeleteExpiredSessions(ctx, time.Now())
	require.NoError(t, err)
	require.Zero(t, removed)

	removed, err = repo.DeleteExpiredSessions(ctx, time.Now().Add(48*time.Hour))
	require.NoError(t, err)
	require.Equal(t, int64(1), removed)
	require.Empty(t, repo.sessions)
}
