package comment

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const MaxContentLength = 2000

// CreateCommentRequest - POST /api/posts/:id/comments
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
			validation.Length(1, MaxContentLength),
		),
	)
}

// UpdateCommentRequest - PUT /api/comments/:id
type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

func (r UpdateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
			validation.Length(1, MaxContentLength),
		),
	)
}

// CommentResponse - comment with its author's username resolved
type CommentResponse struct {
	ID             uuid.UUID `json:"id"`
	PostID         uuid.UUID `json:"post_id"`
	AuthorID       uuid.UUID `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ToResponse converts Comment entity to CommentResponse DTO
func (c Comment) ToResponse() CommentResponse {
	return CommentResponse{
		ID:             c.ID,
		PostID:         c.PostID,
		AuthorID:       c.AuthorID,
		AuthorUsername: c.AuthorUsername,
		Content:        c.Content,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
