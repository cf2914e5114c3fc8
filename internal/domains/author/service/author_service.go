package service

import (
	"context"

	"github.com/google/uuid"

	"bookhub-backend/internal/domains/author"
	"bookhub-backend/internal/shared/utils"
	"bookhub-backend/pkg/logger"
)

type authorService struct {
	repo author.Repository
}

// NewAuthorService creates a new author service
func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

func (s *authorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &author.Author{Name: req.Name})
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("author_id", created.ID.String()).
		Str("name", created.Name).
		Msg("Author created")

	return created, nil
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) GetDetail(ctx context.Context, id uuid.UUID) (*author.AuthorDetailResponse, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	books, err := s.repo.GetBooks(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := a.ToDetailResponse(books)
	return &detail, nil
}

func (s *authorService) GetAll(ctx context.Context, filter author.AuthorFilter) ([]author.Author, int64, error) {
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

func (s *authorService) Update(ctx context.Context, id uuid.UUID, req *author.UpdateAuthorRequest) (*author.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, &author.Author{ID: id, Name: req.Name})
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().Str("author_id", id.String()).Msg("Author deleted")
	return nil
}
