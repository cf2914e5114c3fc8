package author

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const MaxNameLength = 100

// CreateAuthorRequest - POST /api/authors/
type CreateAuthorRequest struct {
	Name string `json:"name" binding:"required"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, MaxNameLength),
		),
	)
}

// UpdateAuthorRequest - PUT /api/authors/:id
type UpdateAuthorRequest struct {
	Name string `json:"name" binding:"required"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, MaxNameLength),
		),
	)
}

// AuthorResponse - basic author information
type AuthorResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthorDetailResponse - author with their books nested,
// mirroring GET /api/authors/:id
type AuthorDetailResponse struct {
	AuthorResponse
	Books []BookSummary `json:"books"`
}

// AuthorFilter - query parameters for the list endpoint
type AuthorFilter struct {
	Search string `form:"search"`  // partial name match, case-insensitive
	SortBy string `form:"sort_by"` // name, created_at
	Order  string `form:"order"`   // asc, desc
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

// ToResponse converts Author entity to AuthorResponse DTO
func (a Author) ToResponse() AuthorResponse {
	return AuthorResponse{
		ID:        a.ID,
		Name:      a.Name,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// ToDetailResponse attaches the nested book list
func (a Author) ToDetailResponse(books []BookSummary) AuthorDetailResponse {
	if books == nil {
		books = []BookSummary{}
	}
	return AuthorDetailResponse{
		AuthorResponse: a.ToResponse(),
		Books:          books,
	}
}
