package book

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestOrderByClause(t *testing.T) {
	tests := []struct {
		name     string
		ordering string
		want     string
	}{
		{
			name:     "empty falls back to default",
			ordering: "",
			want:     "b.publication_year DESC, b.title ASC",
		},
		{
			name:     "single ascending field",
			ordering: "title",
			want:     "b.title ASC",
		},
		{
			name:     "single descending field",
			ordering: "-publication_year",
			want:     "b.publication_year DESC",
		},
		{
			name:     "multiple fields keep order",
			ordering: "-publication_year,title",
			want:     "b.publication_year DESC, b.title ASC",
		},
		{
			name:     "unknown fields are dropped",
			ordering: "price,title",
			want:     "b.title ASC",
		},
		{
			name:     "only unknown fields fall back to default",
			ordering: "price,-rating",
			want:     "b.publication_year DESC, b.title ASC",
		},
		{
			name:     "injection attempt is dropped",
			ordering: "title; DROP TABLE books",
			want:     "b.publication_year DESC, b.title ASC",
		},
		{
			name:     "whitespace around fields is tolerated",
			ordering: " created_at , -title ",
			want:     "b.created_at ASC, b.title DESC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := BookFilter{Ordering: tt.ordering}
			require.Equal(t, tt.want, f.OrderByClause())
		})
	}
}

func TestCreateBookRequestValidate(t *testing.T) {
	currentYear := time.Now().Year()
	authorID := uuid.New()

	t.Run("valid request", func(t *testing.T) {
		req := CreateBookRequest{
			Title:           "The Go Programming Language",
			PublicationYear: 2015,
			AuthorID:        authorID,
		}
		require.NoError(t, req.Validate())
	})

	t.Run("current year is allowed", func(t *testing.T) {
		req := CreateBookRequest{
			Title:           "Fresh Off The Press",
			PublicationYear: currentYear,
			AuthorID:        authorID,
		}
		require.NoError(t, req.Validate())
	})

	t.Run("future year is rejected", func(t *testing.T) {
		req := CreateBookRequest{
			Title:           "Not Yet Written",
			PublicationYear: currentYear + 1,
			AuthorID:        authorID,
		}
		err := req.Validate()
		require.Error(t, err)
		require.Contains(t, err.Error(), fmt.Sprintf("current year is %d", currentYear))
	})

	t.Run("missing title is rejected", func(t *testing.T) {
		req := CreateBookRequest{
			PublicationYear: 2015,
			AuthorID:        authorID,
		}
		require.Error(t, req.Validate())
	})

	t.Run("missing author is rejected", func(t *testing.T) {
		req := CreateBookRequest{
			Title:           "Orphan",
			PublicationYear: 2015,
		}
		require.Error(t, req.Validate())
	})
}

func TestUpdateBookRequestValidate(t *testing.T) {
	currentYear := time.Now().Year()

	t.Run("all fields absent is valid", func(t *testing.T) {
		require.NoError(t, UpdateBookRequest{}.Validate())
	})

	t.Run("future year is rejected", func(t *testing.T) {
		year := currentYear + 5
		req := UpdateBookRequest{PublicationYear: &year}
		require.Error(t, req.Validate())
	})

	t.Run("empty title is rejected", func(t *testing.T) {
		title := ""
		req := UpdateBookRequest{Title: &title}
		require.Error(t, req.Validate())
	})
}
