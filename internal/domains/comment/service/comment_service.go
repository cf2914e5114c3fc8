package service

import (
	"context"

	"github.com/google/uuid"

	"bookhub-backend/internal/domains/comment"
	"bookhub-backend/internal/domains/post"
	"bookhub-backend/internal/infrastructure/queue"
	"bookhub-backend/internal/shared"
	"bookhub-backend/internal/shared/utils"
	"bookhub-backend/pkg/logger"
)

type commentService struct {
	repo     comment.Repository
	postRepo post.Repository
	producer *queue.Producer
}

// NewCommentService creates a new comment service
func NewCommentService(repo comment.Repository, postRepo post.Repository, producer *queue.Producer) comment.Service {
	return &commentService{
		repo:     repo,
		postRepo: postRepo,
		producer: producer,
	}
}

func (s *commentService) Create(ctx context.Context, postID, authorID uuid.UUID, req *comment.CreateCommentRequest) (*comment.Comment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &comment.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Content:  req.Content,
	})
	if err != nil {
		return nil, err
	}

	if p.AuthorID != authorID {
		if err := s.producer.EnqueueNotification(shared.TypeNotifyComment, shared.NotificationPayload{
			RecipientID: p.AuthorID,
			ActorID:     authorID,
			Verb:        "commented on your post",
			TargetType:  "post",
			TargetID:    postID,
		}); err != nil {
			logger.Warn().Err(err).Msg("Failed to enqueue comment notification")
		}
	}

	logger.Info().
		Str("comment_id", created.ID.String()).
		Str("post_id", postID.String()).
		Msg("Comment created")

	return created, nil
}

func (s *commentService) GetByPost(ctx context.Context, postID uuid.UUID, limit, offset int) ([]comment.Comment, int64, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = utils.DefaultLimit
	}
	if limit > utils.MaxLimit {
		limit = utils.MaxLimit
	}
	if offset < 0 {
		offset = 0
	}

	return s.repo.GetByPost(ctx, postID, limit, offset)
}

func (s *commentService) Update(ctx context.Context, id, userID uuid.UUID, req *comment.UpdateCommentRequest) (*comment.Comment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.AuthorID != userID {
		return nil, comment.ErrNotOwner
	}

	existing.Content = req.Content
	return s.repo.Update(ctx, existing)
}

func (s *commentService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.AuthorID != userID {
		return comment.ErrNotOwner
	}

	return s.repo.Delete(ctx, id)
}
