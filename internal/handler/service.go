package handler

import (
	"context"

	"github.com/cliff-de-tech/library-service/internal/model"
	"github.com/cliff-de-tech/library-service/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LibraryService interface {
	CreateAuthor(ctx context.Context, req model.CreateAuthorRequest) (model.Author, error)
	ListAuthors(ctx context.Context, page, size int) (model.ListAuthors, error)
	GetAuthorDetail(ctx context.Context, authorUid string) (model.AuthorDetail, error)
	DeleteAuthor(ctx context.Context, authorUid string) error

	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	ListBooks(ctx context.Context, page, size int) (model.ListBooks, error)
	GetBook(ctx context.Context, bookUid string) (model.Book, error)
	UpdateBook(ctx context.Context, bookUid string, req model.UpdateBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, bookUid string) error

	CreateLibrary(ctx context.Context, req model.CreateLibraryRequest) (model.Library, error)
	ListLibraries(ctx context.Context, page, size int) (model.ListLibraries, error)
	GetLibraryDetail(ctx context.Context, libraryUid string) (model.LibraryDetail, error)
	DeleteLibrary(ctx context.Context, libraryUid string) error
	AddBookToLibrary(ctx context.Context, libraryUid, bookUid string) error
	RemoveBookFromLibrary(ctx context.Context, libraryUid, bookUid string) error

	CreateLibrarian(ctx context.Context, req model.CreateLibrarianRequest) (model.Librarian, error)
	GetLibrarian(ctx context.Context, librarianUid string) (model.Librarian, error)
	DeleteLibrarian(ctx context.Context, librarianUid string) error

	Counts(ctx context.Context) (model.Counts, error)
}

type AuthService interface {
	Register(ctx context.Context, req model.UserCreateRequest) (model.User, error)
	Login(ctx context.Context, req model.AuthRequest) (model.AuthResponse, error)
	GetUser(ctx context.Context, username string) (model.User, error)
}

var _ LibraryService = (*service.Service)(nil)
var _ AuthService = (*service.AuthService)(nil)
