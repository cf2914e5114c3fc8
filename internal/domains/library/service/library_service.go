package service

import (
	"context"

	"github.com/google/uuid"

	"bookhub-backend/internal/domains/library"
	"bookhub-backend/pkg/logger"
)

type libraryService struct {
	repo library.Repository
}

// NewLibraryService creates a new library service
func NewLibraryService(repo library.Repository) library.Service {
	return &libraryService{repo: repo}
}

func (s *libraryService) Create(ctx context.Context, req *library.CreateLibraryRequest) (*library.Library, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &library.Library{
		Name:     req.Name,
		Location: req.Location,
	})
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("library_id", created.ID.String()).
		Str("name", created.Name).
		Msg("Library created")

	return created, nil
}

func (s *libraryService) GetByID(ctx context.Context, id uuid.UUID) (*library.Library, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *libraryService) GetAll(ctx context.Context) ([]library.Library, error) {
	return s.repo.GetAll(ctx)
}

func (s *libraryService) Update(ctx context.Context, id uuid.UUID, req *library.UpdateLibraryRequest) (*library.Library, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Location != nil {
		existing.Location = *req.Location
	}

	return s.repo.Update(ctx, existing)
}

func (s *libraryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().Str("library_id", id.String()).Msg("Library deleted")
	return nil
}

func (s *libraryService) AddBook(ctx context.Context, libraryID, bookID uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, libraryID); err != nil {
		return err
	}

	return s.repo.AddBook(ctx, libraryID, bookID)
}

func (s *libraryService) RemoveBook(ctx context.Context, libraryID, bookID uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, libraryID); err != nil {
		return err
	}

	return s.repo.RemoveBook(ctx, libraryID, bookID)
}

func (s *libraryService) GetBooks(ctx context.Context, libraryID uuid.UUID) ([]library.LibraryBook, error) {
	if _, err := s.repo.GetByID(ctx, libraryID); err != nil {
		return nil, err
	}

	return s.repo.GetBooks(ctx, libraryID)
}

func (s *libraryService) AssignLibrarian(ctx context.Context, libraryID uuid.UUID, req *library.AssignLibrarianRequest) (*library.Librarian, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByID(ctx, libraryID); err != nil {
		return nil, err
	}

	return s.repo.AssignLibrarian(ctx, libraryID, req.Name)
}
