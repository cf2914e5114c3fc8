package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"bookhub-backend/internal/domains/post"
)

// fakePostRepository is an in-memory post.Repository for service tests
type fakePostRepository struct {
	posts map[uuid.UUID]*post.Post
	likes map[uuid.UUID]map[uuid.UUID]bool
}

func newFakePostRepository() *fakePostRepository {
	return &fakePostRepository{
		posts: make(map[uuid.UUID]*post.Post),
		likes: make(map[uuid.UUID]map[uuid.UUID]bool),
	}
}

func (f *fakePostRepository) Create(_ context.Context, p *post.Post) (*post.Post, error) {
	p.ID = uuid.New()
	f.posts[p.ID] = p
	return p, nil
}

func (f *fakePostRepository) GetByID(_ context.Context, id uuid.UUID) (*post.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, post.ErrPostNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePostRepository) GetAll(_ context.Context, _ post.PostFilter) ([]post.Post, int64, error) {
	var out []post.Post
	for _, p := range f.posts {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (f *fakePostRepository) GetFeed(_ context.Context, _ uuid.UUID, _, _ int) ([]post.Post, int64, error) {
	return nil, 0, nil
}

func (f *fakePostRepository) Update(_ context.Context, p *post.Post) (*post.Post, error) {
	if _, ok := f.posts[p.ID]; !ok {
		return nil, post.ErrPostNotFound
	}
	f.posts[p.ID] = p
	return p, nil
}

func (f *fakePostRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.posts[id]; !ok {
		return post.ErrPostNotFound
	}
	delete(f.posts, id)
	return nil
}

func (f *fakePostRepository) Like(_ context.Context, postID, userID uuid.UUID) error {
	if _, ok := f.posts[postID]; !ok {
		return post.ErrPostNotFound
	}
	if f.likes[postID] == nil {
		f.likes[postID] = make(map[uuid.UUID]bool)
	}
	if f.likes[postID][userID] {
		return post.ErrAlreadyLiked
	}
	f.likes[postID][userID] = true
	return nil
}

func (f *fakePostRepository) Unlike(_ context.Context, postID, userID uuid.UUID) error {
	if !f.likes[postID][userID] {
		return post.ErrNotLiked
	}
	delete(f.likes[postID], userID)
	return nil
}

func seedPost(t *testing.T, repo *fakePostRepository, authorID uuid.UUID) *post.Post {
	t.Helper()
	created, err := repo.Create(context.Background(), &post.Post{
		AuthorID: authorID,
		Title:    "Hello",
		Content:  "First post",
	})
	require.NoError(t, err)
	return created
}

func TestUpdateRejectsNonOwner(t *testing.T) {
	repo := newFakePostRepository()
	svc := NewPostService(repo, nil)

	owner := uuid.New()
	stranger := uuid.New()
	p := seedPost(t, repo, owner)

	title := "Hijacked"
	_, err := svc.Update(context.Background(), p.ID, stranger, &post.UpdatePostRequest{Title: &title})
	require.ErrorIs(t, err, post.ErrNotOwner)
	require.Equal(t, 403, post.ToHTTPStatus(err))

	// Owner can update
	updated, err := svc.Update(context.Background(), p.ID, owner, &post.UpdatePostRequest{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "Hijacked", updated.Title)
}

func TestDeleteRejectsNonOwner(t *testing.T) {
	repo := newFakePostRepository()
	svc := NewPostService(repo, nil)

	owner := uuid.New()
	p := seedPost(t, repo, owner)

	err := svc.Delete(context.Background(), p.ID, uuid.New())
	require.ErrorIs(t, err, post.ErrNotOwner)

	require.NoError(t, svc.Delete(context.Background(), p.ID, owner))

	_, err = svc.GetByID(context.Background(), p.ID)
	require.ErrorIs(t, err, post.ErrPostNotFound)
}

func TestLikeUnlike(t *testing.T) {
	repo := newFakePostRepository()
	svc := NewPostService(repo, nil)

	owner := uuid.New()
	liker := uuid.New()
	p := seedPost(t, repo, owner)

	require.NoError(t, svc.Like(context.Background(), p.ID, liker))

	err := svc.Like(context.Background(), p.ID, liker)
	require.ErrorIs(t, err, post.ErrAlreadyLiked)
	require.Equal(t, 400, post.ToHTTPStatus(err))

	require.NoError(t, svc.Unlike(context.Background(), p.ID, liker))
	require.ErrorIs(t, svc.Unlike(context.Background(), p.ID, liker), post.ErrNotLiked)
}

func TestLikeMissingPost(t *testing.T) {
	repo := newFakePostRepository()
	svc := NewPostService(repo, nil)

	err := svc.Like(context.Background(), uuid.New(), uuid.New())
	require.ErrorIs(t, err, post.ErrPostNotFound)
}

func TestCreateValidatesRequest(t *testing.T) {
	repo := newFakePostRepository()
	svc := NewPostService(repo, nil)

	_, err := svc.Create(context.Background(), uuid.New(), &post.CreatePostRequest{
		Title: "No content",
	})
	require.Error(t, err)

	created, err := svc.Create(context.Background(), uuid.New(), &post.CreatePostRequest{
		Title:   "Valid",
		Content: "Body",
		Tags:    []string{"go", "testing"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"go", "testing"}, []string(created.Tags))
}
