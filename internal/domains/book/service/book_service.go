package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"bookhub-backend/internal/domains/author"
	"bookhub-backend/internal/domains/book"
	"bookhub-backend/internal/shared/utils"
	"bookhub-backend/pkg/logger"
)

type bookService struct {
	repo       book.Repository
	authorRepo author.Repository
}

// NewBookService creates a new book service
func NewBookService(repo book.Repository, authorRepo author.Repository) book.Service {
	return &bookService{
		repo:       repo,
		authorRepo: authorRepo,
	}
}

func (s *bookService) Create(ctx context.Context, req *book.CreateBookRequest) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.authorRepo.ExistsByID(ctx, req.AuthorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, book.ErrAuthorNotFound
	}

	created, err := s.repo.Create(ctx, &book.Book{
		Title:           req.Title,
		PublicationYear: req.PublicationYear,
		AuthorID:        req.AuthorID,
	})
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("book_id", created.ID.String()).
		Str("title", created.Title).
		Int("publication_year", created.PublicationYear).
		Msg("Book created")

	return created, nil
}

func (s *bookService) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) GetAll(ctx context.Context, filter book.BookFilter) ([]book.Book, int64, error) {
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

func (s *bookService) Update(ctx context.Context, id uuid.UUID, req *book.UpdateBookRequest) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		existing.Title = *req.Title
	}
	if req.PublicationYear != nil {
		existing.PublicationYear = *req.PublicationYear
	}
	if req.AuthorID != nil {
		exists, err := s.authorRepo.ExistsByID(ctx, *req.AuthorID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, book.ErrAuthorNotFound
		}
		existing.AuthorID = *req.AuthorID
	}

	return s.repo.Update(ctx, existing)
}

func (s *bookService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().Str("book_id", id.String()).Msg("Book deleted")
	return nil
}

// Export renders the filtered catalog as an xlsx workbook.
// Pagination is bypassed so the export covers the whole result set.
func (s *bookService) Export(ctx context.Context, filter book.BookFilter) (*excelize.File, error) {
	filter.Limit = 0
	filter.Offset = 0

	books, _, err := s.repo.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Books"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	headers := []string{"ID", "Title", "Publication Year", "Author", "Created At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, b := range books {
		values := []interface{}{
			b.ID.String(),
			b.Title,
			b.PublicationYear,
			b.AuthorName,
			b.CreatedAt.Format("2006-01-02"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	logger.Info().Int("count", len(books)).Msg("Book catalog exported")

	return f, nil
}
