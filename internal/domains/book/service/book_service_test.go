package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"bookhub-backend/internal/domains/author"
	"bookhub-backend/internal/domains/book"
)

// fakeBookRepository is an in-memory book.Repository.
// It records the last filter passed to GetAll so tests can assert on
// the service's pagination handling.
type fakeBookRepository struct {
	books      map[uuid.UUID]*book.Book
	lastFilter book.BookFilter
}

func newFakeBookRepository() *fakeBookRepository {
	return &fakeBookRepository{books: make(map[uuid.UUID]*book.Book)}
}

func (f *fakeBookRepository) Create(_ context.Context, b *book.Book) (*book.Book, error) {
	b.ID = uuid.New()
	f.books[b.ID] = b
	return b, nil
}

func (f *fakeBookRepository) GetByID(_ context.Context, id uuid.UUID) (*book.Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBookRepository) GetAll(_ context.Context, filter book.BookFilter) ([]book.Book, int64, error) {
	f.lastFilter = filter
	var out []book.Book
	for _, b := range f.books {
		out = append(out, *b)
	}
	return out, int64(len(out)), nil
}

func (f *fakeBookRepository) Update(_ context.Context, b *book.Book) (*book.Book, error) {
	if _, ok := f.books[b.ID]; !ok {
		return nil, book.ErrBookNotFound
	}
	f.books[b.ID] = b
	return b, nil
}

func (f *fakeBookRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.books[id]; !ok {
		return book.ErrBookNotFound
	}
	delete(f.books, id)
	return nil
}

// fakeAuthorRepository knows a fixed set of author IDs
type fakeAuthorRepository struct {
	ids map[uuid.UUID]bool
}

func (f *fakeAuthorRepository) Create(_ context.Context, _ *author.Author) (*author.Author, error) {
	return nil, nil
}

func (f *fakeAuthorRepository) GetByID(_ context.Context, _ uuid.UUID) (*author.Author, error) {
	return nil, author.ErrAuthorNotFound
}

func (f *fakeAuthorRepository) GetAll(_ context.Context, _ author.AuthorFilter) ([]author.Author, int64, error) {
	return nil, 0, nil
}

func (f *fakeAuthorRepository) Update(_ context.Context, _ *author.Author) (*author.Author, error) {
	return nil, nil
}

func (f *fakeAuthorRepository) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (f *fakeAuthorRepository) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	return f.ids[id], nil
}

func (f *fakeAuthorRepository) GetBooks(_ context.Context, _ uuid.UUID) ([]author.BookSummary, error) {
	return nil, nil
}

func TestCreateBookUnknownAuthor(t *testing.T) {
	repo := newFakeBookRepository()
	svc := NewBookService(repo, &fakeAuthorRepository{ids: map[uuid.UUID]bool{}})

	_, err := svc.Create(context.Background(), &book.CreateBookRequest{
		Title:           "Orphan",
		PublicationYear: 2020,
		AuthorID:        uuid.New(),
	})
	require.ErrorIs(t, err, book.ErrAuthorNotFound)
	require.Equal(t, 400, book.ToHTTPStatus(err))
}

func TestCreateBook(t *testing.T) {
	repo := newFakeBookRepository()
	authorID := uuid.New()
	svc := NewBookService(repo, &fakeAuthorRepository{ids: map[uuid.UUID]bool{authorID: true}})

	created, err := svc.Create(context.Background(), &book.CreateBookRequest{
		Title:           "The Go Programming Language",
		PublicationYear: 2015,
		AuthorID:        authorID,
	})
	require.NoError(t, err)
	require.Equal(t, authorID, created.AuthorID)

	// Future publication year never reaches the repository
	_, err = svc.Create(context.Background(), &book.CreateBookRequest{
		Title:           "Too Soon",
		PublicationYear: time.Now().Year() + 1,
		AuthorID:        authorID,
	})
	require.Error(t, err)
	require.Len(t, repo.books, 1)
}

func TestUpdateBookReassignsAuthor(t *testing.T) {
	repo := newFakeBookRepository()
	oldAuthor := uuid.New()
	newAuthor := uuid.New()
	svc := NewBookService(repo, &fakeAuthorRepository{ids: map[uuid.UUID]bool{oldAuthor: true, newAuthor: true}})

	created, err := svc.Create(context.Background(), &book.CreateBookRequest{
		Title:           "Wanderer",
		PublicationYear: 2010,
		AuthorID:        oldAuthor,
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, &book.UpdateBookRequest{
		AuthorID: &newAuthor,
	})
	require.NoError(t, err)
	require.Equal(t, newAuthor, updated.AuthorID)
	require.Equal(t, "Wanderer", updated.Title, "unset fields keep their values")

	ghost := uuid.New()
	_, err = svc.Update(context.Background(), created.ID, &book.UpdateBookRequest{
		AuthorID: &ghost,
	})
	require.ErrorIs(t, err, book.ErrAuthorNotFound)
}

func TestGetAllClampsPagination(t *testing.T) {
	repo := newFakeBookRepository()
	svc := NewBookService(repo, &fakeAuthorRepository{ids: map[uuid.UUID]bool{}})
	ctx := context.Background()

	_, _, err := svc.GetAll(ctx, book.BookFilter{Limit: 0, Offset: -3})
	require.NoError(t, err)
	require.Equal(t, 20, repo.lastFilter.Limit)
	require.Equal(t, 0, repo.lastFilter.Offset)

	_, _, err = svc.GetAll(ctx, book.BookFilter{Limit: 5000})
	require.NoError(t, err)
	require.Equal(t, 100, repo.lastFilter.Limit)
}

func TestExportBypassesPagination(t *testing.T) {
	repo := newFakeBookRepository()
	authorID := uuid.New()
	svc := NewBookService(repo, &fakeAuthorRepository{ids: map[uuid.UUID]bool{authorID: true}})
	ctx := context.Background()

	for _, title := range []string{"A", "B", "C"} {
		_, err := svc.Create(ctx, &book.CreateBookRequest{
			Title:           title,
			PublicationYear: 2000,
			AuthorID:        authorID,
		})
		require.NoError(t, err)
	}

	f, err := svc.Export(ctx, book.BookFilter{Limit: 1, Offset: 10})
	require.NoError(t, err)
	require.Zero(t, repo.lastFilter.Limit, "export must not be paginated")
	require.Zero(t, repo.lastFilter.Offset)

	rows, err := f.GetRows("Books")
	require.NoError(t, err)
	require.Len(t, rows, 4, "header plus one row per book")
	require.Equal(t, []string{"ID", "Title", "Publication Year", "Author", "Created At"}, rows[0])
}
