package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"bookhub-backend/internal/domains/post"
	"bookhub-backend/internal/infrastructure/queue"
	"bookhub-backend/internal/shared"
	"bookhub-backend/internal/shared/utils"
	"bookhub-backend/pkg/logger"
)

type postService struct {
	repo     post.Repository
	producer *queue.Producer
}

// NewPostService creates a new post service
func NewPostService(repo post.Repository, producer *queue.Producer) post.Service {
	return &postService{
		repo:     repo,
		producer: producer,
	}
}

func (s *postService) Create(ctx context.Context, authorID uuid.UUID, req *post.CreatePostRequest) (*post.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &post.Post{
		AuthorID: authorID,
		Title:    req.Title,
		Content:  req.Content,
		Tags:     pq.StringArray(req.Tags),
	})
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("post_id", created.ID.String()).
		Str("author_id", authorID.String()).
		Msg("Post created")

	return created, nil
}

func (s *postService) GetByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *postService) GetAll(ctx context.Context, filter post.PostFilter) ([]post.Post, int64, error) {
	if filter.Limit <= 0 {
		filter.Limit = utils.DefaultLimit
	}
	if filter.Limit > utils.MaxLimit {
		filter.Limit = utils.MaxLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	return s.repo.GetAll(ctx, filter)
}

func (s *postService) GetFeed(ctx context.Context, userID uuid.UUID, limit, offset int) ([]post.Post, int64, error) {
	if limit <= 0 {
		limit = utils.DefaultLimit
	}
	if limit > utils.MaxLimit {
		limit = utils.MaxLimit
	}
	if offset < 0 {
		offset = 0
	}

	return s.repo.GetFeed(ctx, userID, limit, offset)
}

func (s *postService) Update(ctx context.Context, id, userID uuid.UUID, req *post.UpdatePostRequest) (*post.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.AuthorID != userID {
		return nil, post.ErrNotOwner
	}

	if req.Title != nil {
		existing.Title = *req.Title
	}
	if req.Content != nil {
		existing.Content = *req.Content
	}
	if req.Tags != nil {
		existing.Tags = pq.StringArray(*req.Tags)
	}

	return s.repo.Update(ctx, existing)
}

func (s *postService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.AuthorID != userID {
		return post.ErrNotOwner
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().Str("post_id", id.String()).Msg("Post deleted")
	return nil
}

func (s *postService) Like(ctx context.Context, postID, userID uuid.UUID) error {
	p, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if err := s.repo.Like(ctx, postID, userID); err != nil {
		return err
	}

	// No notification for liking your own post
	if p.AuthorID != userID {
		if err := s.producer.EnqueueNotification(shared.TypeNotifyLike, shared.NotificationPayload{
			RecipientID: p.AuthorID,
			ActorID:     userID,
			Verb:        "liked your post",
			TargetType:  "post",
			TargetID:    postID,
		}); err != nil {
			logger.Warn().Err(err).Msg("Failed to enqueue like notification")
		}
	}

	return nil
}

func (s *postService) Unlike(ctx context.Context, postID, userID uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, postID); err != nil {
		return err
	}

	return s.repo.Unlike(ctx, postID, userID)
}
