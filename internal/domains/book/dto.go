package book

import (
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const (
	MaxTitleLength = 200
	MinYear        = 1
)

// DefaultOrdering sorts newest publications first, ties broken by title
const DefaultOrdering = "-publication_year,title"

// orderableColumns whitelists the fields accepted by the ordering param.
// Anything outside this map is silently dropped.
var orderableColumns = map[string]string{
	"title":            "b.title",
	"publication_year": "b.publication_year",
	"created_at":       "b.created_at",
}

// CreateBookRequest - POST /api/books/
type CreateBookRequest struct {
	Title           string    `json:"title" binding:"required"`
	PublicationYear int       `json:"publication_year" binding:"required"`
	AuthorID        uuid.UUID `json:"author_id" binding:"required"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, MaxTitleLength),
		),
		validation.Field(&r.PublicationYear,
			validation.Required.Error("publication year is required"),
			validation.By(validateYearNotFuture),
		),
		validation.Field(&r.AuthorID,
			validation.Required.Error("author is required"),
		),
	)
}

// UpdateBookRequest - PUT/PATCH /api/books/:id.
// Pointer fields distinguish "absent" from zero for partial updates.
type UpdateBookRequest struct {
	Title           *string    `json:"title"`
	PublicationYear *int       `json:"publication_year"`
	AuthorID        *uuid.UUID `json:"author_id"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title cannot be empty"),
			validation.Length(1, MaxTitleLength),
		),
		validation.Field(&r.PublicationYear,
			validation.By(func(value interface{}) error {
				year, ok := value.(*int)
				if !ok || year == nil {
					return nil
				}
				return validateYearNotFuture(*year)
			}),
		),
	)
}

// validateYearNotFuture rejects publication years later than the current year
func validateYearNotFuture(value interface{}) error {
	year, ok := value.(int)
	if !ok {
		return fmt.Errorf("must be a valid year")
	}
	currentYear := time.Now().Year()
	if year > currentYear {
		return fmt.Errorf("publication year cannot be in the future (current year is %d)", currentYear)
	}
	if year < MinYear {
		return fmt.Errorf("publication year must be positive")
	}
	return nil
}

// BookFilter - query parameters for GET /api/books
type BookFilter struct {
	AuthorID        *uuid.UUID // exact match on author
	PublicationYear *int       // exact match on year
	Search          string     // case-insensitive substring match on title
	Ordering        string     // comma-separated fields, "-" prefix for DESC
	Limit           int
	Offset          int
}

// OrderByClause turns the ordering param into a safe ORDER BY expression.
// Unknown fields are dropped; an empty result falls back to the default
// ordering (publication_year DESC, title ASC).
func (f BookFilter) OrderByClause() string {
	ordering := f.Ordering
	if strings.TrimSpace(ordering) == "" {
		ordering = DefaultOrdering
	}

	var parts []string
	for _, field := range strings.Split(ordering, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		direction := "ASC"
		if strings.HasPrefix(field, "-") {
			direction = "DESC"
			field = field[1:]
		}

		column, ok := orderableColumns[field]
		if !ok {
			continue
		}
		parts = append(parts, column+" "+direction)
	}

	if len(parts) == 0 {
		return "b.publication_year DESC, b.title ASC"
	}
	return strings.Join(parts, ", ")
}

// BookResponse - book with its author's name resolved
type BookResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	PublicationYear int       `json:"publication_year"`
	AuthorID        uuid.UUID `json:"author_id"`
	AuthorName      string    `json:"author_name"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ToResponse converts Book entity to BookResponse DTO
func (b Book) ToResponse() BookResponse {
	return BookResponse{
		ID:              b.ID,
		Title:           b.Title,
		PublicationYear: b.PublicationYear,
		AuthorID:        b.AuthorID,
		AuthorName:      b.AuthorName,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
