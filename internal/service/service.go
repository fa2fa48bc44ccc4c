package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cliff-de-tech/library-service/internal/errs"
	"github.com/cliff-de-tech/library-service/internal/model"
	"github.com/cliff-de-tech/library-service/internal/repository"
)

type Service struct {
	log  *zap.Logger
	repo repository.Repository
}

func NewService(repo repository.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log,
		repo: repo,
	}
}

func (s *Service) CreateAuthor(ctx context.Context, req model.CreateAuthorRequest) (model.Author, error) {
	return s.repo.CreateAuthor(ctx, req)
}

func (s *Service) ListAuthors(ctx context.Context, page, size int) (model.ListAuthors, error) {
	return s.repo.ListAuthors(ctx, page, size)
}

// GetAuthorDetail returns the author with the books it owns.
func (s *Service) GetAuthorDetail(ctx context.Context, authorUid string) (model.AuthorDetail, error) {
	author, err := s.repo.GetAuthor(ctx, authorUid)
	if err != nil {
		return model.AuthorDetail{}, err
	}
	books, err := s.repo.GetAuthorBooks(ctx, authorUid)
	if err != nil {
		return model.AuthorDetail{}, err
	}
	if books == nil {
		books = []model.Book{}
	}
	return model.AuthorDetail{Author: author, Books: books}, nil
}

func (s *Service) DeleteAuthor(ctx context.Context, authorUid string) error {
	return s.repo.DeleteAuthor(ctx, authorUid)
}

func (s *Service) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	return s.repo.CreateBook(ctx, req)
}

func (s *Service) ListBooks(ctx context.Context, page, size int) (model.ListBooks, error) {
	return s.repo.ListBooks(ctx, page, size)
}

func (s *Service) GetBook(ctx context.Context, bookUid string) (model.Book, error) {
	return s.repo.GetBook(ctx, bookUid)
}

func (s *Service) UpdateBook(ctx context.Context, bookUid string, req model.UpdateBookRequest) (model.Book, error) {
	return s.repo.UpdateBook(ctx, bookUid, req)
}

func (s *Service) DeleteBook(ctx context.Context, bookUid string) error {
	return s.repo.DeleteBook(ctx, bookUid)
}

func (s *Service) CreateLibrary(ctx context.Context, req model.CreateLibraryRequest) (model.Library, error) {
	return s.repo.CreateLibrary(ctx, req)
}

func (s *Service) ListLibraries(ctx context.Context, page, size int) (model.ListLibraries, error) {
	return s.repo.ListLibraries(ctx, page, size)
}

// GetLibraryDetail assembles a library with its shelved books and
// its librarian. Books and librarian are fetched concurrently; a
// library without a librarian is not an error.
func (s *Service) GetLibraryDetail(ctx context.Context, libraryUid string) (model.LibraryDetail, error) {
	lib, err := s.repo.GetLibrary(ctx, libraryUid)
	if err != nil {
		return model.LibraryDetail{}, err
	}

	detail := model.LibraryDetail{Library: lib, Books: []model.Book{}}

	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		books, err := s.repo.ListLibraryBooks(ctx, libraryUid)
		if err != nil {
			return err
		}
		if books != nil {
			detail.Books = books
		}
		return nil
	})
	gg.Go(func() error {
		librarian, err := s.repo.GetLibraryLibrarian(ctx, libraryUid)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return nil
			}
			return err
		}
		detail.Librarian = &librarian
		return nil
	})
	if err := gg.Wait(); err != nil {
		return model.LibraryDetail{}, err
	}
	return detail, nil
}

func (s *Service) DeleteLibrary(ctx context.Context, libraryUid string) error {
	return s.repo.DeleteLibrary(ctx, libraryUid)
}

func (s *Service) AddBookToLibrary(ctx context.Context, libraryUid, bookUid string) error {
	return s.repo.AddBookToLibrary(ctx, libraryUid, bookUid)
}

func (s *Service) RemoveBookFromLibrary(ctx context.Context, libraryUid, bookUid string) error {
	return s.repo.RemoveBookFromLibrary(ctx, libraryUid, bookUid)
}

func (s *Service) CreateLibrarian(ctx context.Context, req model.CreateLibrarianRequest) (model.Librarian, error) {
	return s.repo.CreateLibrarian(ctx, req)
}

func (s *Service) GetLibrarian(ctx context.Context, librarianUid string) (model.Librarian, error) {
	return s.repo.GetLibrarian(ctx, librarianUid)
}

func (s *Service) DeleteLibrarian(ctx context.Context, librarianUid string) error {
	return s.repo.DeleteLibrarian(ctx, librarianUid)
}

func (s *Service) Counts(ctx context.Context) (model.Counts, error) {
	return s.repo.Counts(ctx)
}
