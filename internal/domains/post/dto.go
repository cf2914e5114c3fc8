package post

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const (
	MaxTitleLength = 200
	MaxTags        = 10
	MaxTagLength   = 30
)

// CreatePostRequest - POST /api/posts/
type CreatePostRequest struct {
	Title   string   `json:"title" binding:"required"`
	Content string   `json:"content" binding:"required"`
	Tags    []string `json:"tags"`
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, MaxTitleLength),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
		),
		validation.Field(&r.Tags,
			validation.Length(0, MaxTags),
			validation.Each(validation.Length(1, MaxTagLength)),
		),
	)
}

// UpdatePostRequest - PUT/PATCH /api/posts/:id
type UpdatePostRequest struct {
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Tags    *[]string `json:"tags"`
}

func (r UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title cannot be empty"),
			validation.Length(1, MaxTitleLength),
		),
		validation.Field(&r.Content,
			validation.NilOrNotEmpty.Error("content cannot be empty"),
		),
	)
}

// PostFilter - query parameters for the list endpoint
type PostFilter struct {
	Search string // case-insensitive substring match on title or content
	Author *uuid.UUID
	Tag    string // exact tag membership
	Limit  int
	Offset int
}

// PostResponse - post with author and counts resolved
type PostResponse struct {
	ID             uuid.UUID `json:"id"`
	AuthorID       uuid.UUID `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	Tags           []string  `json:"tags"`
	LikeCount      int64     `json:"like_count"`
	CommentCount   int64     `json:"comment_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ToResponse converts Post entity to PostResponse DTO
func (p Post) ToResponse() PostResponse {
	tags := []string(p.Tags)
	if tags == nil {
		tags = []string{}
	}
	return PostResponse{
		ID:             p.ID,
		AuthorID:       p.AuthorID,
		AuthorUsername: p.AuthorUsername,
		Title:          p.Title,
		Content:        p.Content,
		Tags:           tags,
		LikeCount:      p.LikeCount,
		CommentCount:   p.CommentCount,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
