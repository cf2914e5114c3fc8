package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"bookhub-backend/internal/domains/comment"
	"bookhub-backend/internal/domains/post"
)

// fakeCommentRepository is an in-memory comment.Repository
type fakeCommentRepository struct {
	comments map[uuid.UUID]*comment.Comment
}

func newFakeCommentRepository() *fakeCommentRepository {
	return &fakeCommentRepository{comments: make(map[uuid.UUID]*comment.Comment)}
}

func (f *fakeCommentRepository) Create(_ context.Context, c *comment.Comment) (*comment.Comment, error) {
	c.ID = uuid.New()
	f.comments[c.ID] = c
	return c, nil
}

func (f *fakeCommentRepository) GetByID(_ context.Context, id uuid.UUID) (*comment.Comment, error) {
	c, ok := f.comments[id]
	if !ok {
		return nil, comment.ErrCommentNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCommentRepository) GetByPost(_ context.Context, postID uuid.UUID, _, _ int) ([]comment.Comment, int64, error) {
	var out []comment.Comment
	for _, c := range f.comments {
		if c.PostID == postID {
			out = append(out, *c)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeCommentRepository) Update(_ context.Context, c *comment.Comment) (*comment.Comment, error) {
	if _, ok := f.comments[c.ID]; !ok {
		return nil, comment.ErrCommentNotFound
	}
	f.comments[c.ID] = c
	return c, nil
}

func (f *fakeCommentRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.comments[id]; !ok {
		return comment.ErrCommentNotFound
	}
	delete(f.comments, id)
	return nil
}

// stubPostRepository serves a single known post
type stubPostRepository struct {
	post *post.Post
}

func (s *stubPostRepository) Create(_ context.Context, _ *post.Post) (*post.Post, error) {
	return nil, nil
}

func (s *stubPostRepository) GetByID(_ context.Context, id uuid.UUID) (*post.Post, error) {
	if s.post == nil || s.post.ID != id {
		return nil, post.ErrPostNotFound
	}
	return s.post, nil
}

func (s *stubPostRepository) GetAll(_ context.Context, _ post.PostFilter) ([]post.Post, int64, error) {
	return nil, 0, nil
}

func (s *stubPostRepository) GetFeed(_ context.Context, _ uuid.UUID, _, _ int) ([]post.Post, int64, error) {
	return nil, 0, nil
}

func (s *stubPostRepository) Update(_ context.Context, _ *post.Post) (*post.Post, error) {
	return nil, nil
}

func (s *stubPostRepository) Delete(_ context.Context, _ uuid.UUID) error  { return nil }
func (s *stubPostRepository) Like(_ context.Context, _, _ uuid.UUID) error { return nil }
func (s *stubPostRepository) Unlike(_ context.Context, _, _ uuid.UUID) error {
	return nil
}

func TestCreateCommentOnMissingPost(t *testing.T) {
	svc := NewCommentService(newFakeCommentRepository(), &stubPostRepository{}, nil)

	_, err := svc.Create(context.Background(), uuid.New(), uuid.New(), &comment.CreateCommentRequest{
		Content: "nice post",
	})
	require.ErrorIs(t, err, post.ErrPostNotFound)
}

func TestCreateComment(t *testing.T) {
	p := &post.Post{ID: uuid.New(), AuthorID: uuid.New()}
	repo := newFakeCommentRepository()
	svc := NewCommentService(repo, &stubPostRepository{post: p}, nil)

	commenter := uuid.New()
	created, err := svc.Create(context.Background(), p.ID, commenter, &comment.CreateCommentRequest{
		Content: "nice post",
	})
	require.NoError(t, err)
	require.Equal(t, p.ID, created.PostID)
	require.Equal(t, commenter, created.AuthorID)

	_, err = svc.Create(context.Background(), p.ID, commenter, &comment.CreateCommentRequest{})
	require.Error(t, err, "empty content must be rejected")
}

func TestUpdateCommentOwnership(t *testing.T) {
	p := &post.Post{ID: uuid.New(), AuthorID: uuid.New()}
	repo := newFakeCommentRepository()
	svc := NewCommentService(repo, &stubPostRepository{post: p}, nil)

	owner := uuid.New()
	created, err := svc.Create(context.Background(), p.ID, owner, &comment.CreateCommentRequest{
		Content: "original",
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, uuid.New(), &comment.UpdateCommentRequest{
		Content: "edited by stranger",
	})
	require.ErrorIs(t, err, comment.ErrNotOwner)

	updated, err := svc.Update(context.Background(), created.ID, owner, &comment.UpdateCommentRequest{
		Content: "edited",
	})
	require.NoError(t, err)
	require.Equal(t, "edited", updated.Content)
}

func TestDeleteCommentOwnership(t *testing.T) {
	p := &post.Post{ID: uuid.New(), AuthorID: uuid.New()}
	repo := newFakeCommentRepository()
	svc := NewCommentService(repo, &stubPostRepository{post: p}, nil)

	owner := uuid.New()
	created, err := svc.Create(context.Background(), p.ID, owner, &comment.CreateCommentRequest{
		Content: "to be deleted",
	})
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(context.Background(), created.ID, uuid.New()), comment.ErrNotOwner)
	require.NoError(t, svc.Delete(context.Background(), created.ID, owner))
	require.ErrorIs(t, svc.Delete(context.Background(), created.ID, owner), comment.ErrCommentNotFound)
}
