package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/cliff-de-tech/library-service/internal/errs"
	"github.com/cliff-de-tech/library-service/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	CreateAuthor(ctx context.Context, req model.CreateAuthorRequest) (model.Author, error)
	ListAuthors(ctx context.Context, page, size int) (model.ListAuthors, error)
	GetAuthor(ctx context.Context, authorUid string) (model.Author, error)
	GetAuthorBooks(ctx context.Context, authorUid string) ([]model.Book, error)
	DeleteAuthor(ctx context.Context, authorUid string) error

	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	ListBooks(ctx context.Context, page, size int) (model.ListBooks, error)
	GetBook(ctx context.Context, bookUid string) (model.Book, error)
	UpdateBook(ctx context.Context, bookUid string, req model.UpdateBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, bookUid string) error

	CreateLibrary(ctx context.Context, req model.CreateLibraryRequest) (model.Library, error)
	ListLibraries(ctx context.Context, page, size int) (model.ListLibraries, error)
	GetLibrary(ctx context.Context, libraryUid string) (model.Library, error)
	DeleteLibrary(ctx context.Context, libraryUid string) error
	ListLibraryBooks(ctx context.Context, libraryUid string) ([]model.Book, error)
	AddBookToLibrary(ctx context.Context, libraryUid, bookUid string) error
	RemoveBookFromLibrary(ctx context.Context, libraryUid, bookUid string) error

	CreateLibrarian(ctx context.Context, req model.CreateLibrarianRequest) (model.Librarian, error)
	GetLibrarian(ctx context.Context, librarianUid string) (model.Librarian, error)
	GetLibraryLibrarian(ctx context.Context, libraryUid string) (model.Librarian, error)
	DeleteLibrarian(ctx context.Context, librarianUid string) error

	Counts(ctx context.Context) (model.Counts, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	authorTableName       = `author`
	bookTableName         = `book`
	libraryTableName      = `library`
	libraryBooksTableName = `library_books`
	librarianTableName    = `librarian`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (r *repository) CreateAuthor(ctx context.Context, req model.CreateAuthorRequest) (model.Author, error) {
	query, args, err := qb.Insert(authorTableName).
		Columns("author_uid", "name").
		Values(uuid.New(), req.Name).
		Suffix("returning id, author_uid, name").
		ToSql()
	if err != nil {
		return model.Author{}, err
	}

	var author model.Author
	if err := r.db.GetContext(ctx, &author, query, args...); err != nil {
		return model.Author{}, err
	}
	return author, nil
}

func (r *repository) ListAuthors(ctx context.Context, page, size int) (model.ListAuthors, error) {
	q := qb.Select("id", "author_uid", "name").
		From(authorTableName).
		OrderBy("id")

	if page != 0 && size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.ListAuthors{}, err
	}

	var authors []model.Author
	if err := r.db.SelectContext(ctx, &authors, query, args...); err != nil {
		return model.ListAuthors{}, err
	}

	return model.ListAuthors{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: len(authors),
		},
		Items: authors,
	}, nil
}

func (r *repository) GetAuthor(ctx context.Context, authorUid string) (model.Author, error) {
	query, args, err := qb.Select("id", "author_uid", "name").
		From(authorTableName).
		Where(sq.Eq{"author_uid": authorUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Author{}, err
	}

	var author model.Author
	if err := r.db.GetContext(ctx, &author, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Author{}, errs.ErrNotFound
		}
		return model.Author{}, err
	}
	return author, nil
}

func (r *repository) GetAuthorBooks(ctx context.Context, authorUid string) ([]model.Book, error) {
	query, args, err := qb.Select("b.id", "book_uid", "title", "a.author_uid", "a.name as author_name", "publication_year").
		From(bookTableName + " b").
		Join(authorTableName + " a on a.id = b.author_id").
		Where(sq.Eq{"a.author_uid": authorUid}).
		OrderBy("b.id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *repository) DeleteAuthor(ctx context.Context, authorUid string) error {
	query, args, err := qb.Delete(authorTableName).
		Where(sq.Eq{"author_uid": authorUid}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	author, err := r.GetAuthor(ctx, req.AuthorUid)
	if err != nil {
		return model.Book{}, err
	}

	query, args, err := qb.Insert(bookTableName).
		Columns("book_uid", "title", "author_id", "publication_year").
		Values(uuid.New(), req.Title, author.ID, req.PublicationYear).
		Suffix("returning id, book_uid, title, publication_year").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		r.log.Error("CreateBook", zap.String("q", query), zap.Any("args", args))
		return model.Book{}, err
	}
	book.AuthorUid = author.AuthorUid
	book.AuthorName = author.Name
	return book, nil
}

func (r *repository) ListBooks(ctx context.Context, page, size int) (model.ListBooks, error) {
	q := qb.Select("b.id", "book_uid", "title", "a.author_uid", "a.name as author_name", "publication_year").
		From(bookTableName + " b").
		Join(authorTableName + " a on a.id = b.author_id").
		OrderBy("b.id")

	if page != 0 && size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.ListBooks{}, err
	}
	r.log.Debug("ListBooks", zap.String("query", query), zap.Any("args", args))

	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return model.ListBooks{}, err
	}

	return model.ListBooks{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: len(books),
		},
		Items: books,
	}, nil
}

func (r *repository) GetBook(ctx context.Context, bookUid string) (model.Book, error) {
	query, args, err := qb.Select("b.id", "book_uid", "title", "a.author_uid", "a.name as author_name", "publication_year").
		From(bookTableName + " b").
		Join(authorTableName + " a on a.id = b.author_id").
		Where(sq.Eq{"book_uid": bookUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) UpdateBook(ctx context.Context, bookUid string, req model.UpdateBookRequest) (model.Book, error) {
	author, err := r.GetAuthor(ctx, req.AuthorUid)
	if err != nil {
		return model.Book{}, err
	}

	query, args, err := qb.Update(bookTableName).
		Set("title", req.Title).
		Set("author_id", author.ID).
		Set("publication_year", req.PublicationYear).
		Where(sq.Eq{"book_uid": bookUid}).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return model.Book{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Book{}, errs.ErrNotFound
	}
	return r.GetBook(ctx, bookUid)
}

func (r *repository) DeleteBook(ctx context.Context, bookUid string) error {
	query, args, err := qb.Delete(bookTableName).
		Where(sq.Eq{"book_uid": bookUid}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) CreateLibrary(ctx context.Context, req model.CreateLibraryRequest) (model.Library, error) {
	query, args, err := qb.Insert(libraryTableName).
		Columns("library_uid", "name").
		Values(uuid.New(), req.Name).
		Suffix("returning id, library_uid, name").
		ToSql()
	if err != nil {
		return model.Library{}, err
	}

	var lib model.Library
	if err := r.db.GetContext(ctx, &lib, query, args...); err != nil {
		return model.Library{}, err
	}
	return lib, nil
}

func (r *repository) ListLibraries(ctx context.Context, page, size int) (model.ListLibraries, error) {
	q := qb.Select("id", "library_uid", "name").
		From(libraryTableName).
		OrderBy("id")

	if page != 0 && size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.ListLibraries{}, err
	}

	var libs []model.Library
	if err := r.db.SelectContext(ctx, &libs, query, args...); err != nil {
		return model.ListLibraries{}, err
	}

	return model.ListLibraries{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: len(libs),
		},
		Items: libs,
	}, nil
}

func (r *repository) GetLibrary(ctx context.Context, libraryUid string) (model.Library, error) {
	query, args, err := qb.Select("id", "library_uid", "name").
		From(libraryTableName).
		Where(sq.Eq{"library_uid": libraryUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Library{}, err
	}

	var lib model.Library
	if err := r.db.GetContext(ctx, &lib, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Library{}, errs.ErrNotFound
		}
		return model.Library{}, err
	}
	return lib, nil
}

func (r *repository) DeleteLibrary(ctx context.Context, libraryUid string) error {
	query, args, err := qb.Delete(libraryTableName).
		Where(sq.Eq{"library_uid": libraryUid}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) ListLibraryBooks(ctx context.Context, libraryUid string) ([]model.Book, error) {
	query, args, err := qb.Select("b.id", "book_uid", "title", "a.author_uid", "a.name as author_name", "publication_year").
		From(bookTableName + " b").
		Join(authorTableName + " a on a.id = b.author_id").
		Join(libraryBooksTableName + " lb on b.id = lb.book_id").
		Join(libraryTableName + " l on l.id = lb.library_id").
		Where(sq.Eq{"library_uid": libraryUid}).
		OrderBy("b.id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *repository) AddBookToLibrary(ctx context.Context, libraryUid, bookUid string) error {
	q := `
insert into library_books (library_id, book_id)
select l.id, b.id from library l, book b
where l.library_uid = $1 and b.book_uid = $2`

	res, err := r.db.ExecContext(ctx, q, libraryUid, bookUid)
	if err != nil {
		if isUniqueViolation(err) {
			return errs.ErrConflict
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) RemoveBookFromLibrary(ctx context.Context, libraryUid, bookUid string) error {
	q := `
delete from library_books lb
using library l, book b
where lb.library_id = l.id and lb.book_id = b.id
  and l.library_uid = $1 and b.book_uid = $2`

	res, err := r.db.ExecContext(ctx, q, libraryUid, bookUid)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) CreateLibrarian(ctx context.Context, req model.CreateLibrarianRequest) (model.Librarian, error) {
	lib, err := r.GetLibrary(ctx, req.LibraryUid)
	if err != nil {
		return model.Librarian{}, err
	}

	query, args, err := qb.Insert(librarianTableName).
		Columns("librarian_uid", "name", "library_id").
		Values(uuid.New(), req.Name, lib.ID).
		Suffix("returning id, librarian_uid, name").
		ToSql()
	if err != nil {
		return model.Librarian{}, err
	}

	var librarian model.Librarian
	if err := r.db.GetContext(ctx, &librarian, query, args...); err != nil {
		// one librarian per library
		if isUniqueViolation(err) {
			return model.Librarian{}, errs.ErrConflict
		}
		return model.Librarian{}, err
	}
	librarian.LibraryUid = lib.LibraryUid
	return librarian, nil
}

func (r *repository) GetLibrarian(ctx context.Context, librarianUid string) (model.Librarian, error) {
	query, args, err := qb.Select("lr.id", "librarian_uid", "lr.name", "l.library_uid").
		From(librarianTableName + " lr").
		Join(libraryTableName + " l on l.id = lr.library_id").
		Where(sq.Eq{"librarian_uid": librarianUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Librarian{}, err
	}

	var librarian model.Librarian
	if err := r.db.GetContext(ctx, &librarian, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Librarian{}, errs.ErrNotFound
		}
		return model.Librarian{}, err
	}
	return librarian, nil
}

func (r *repository) GetLibraryLibrarian(ctx context.Context, libraryUid string) (model.Librarian, error) {
	query, args, err := qb.Select("lr.id", "librarian_uid", "lr.name", "l.library_uid").
		From(librarianTableName + " lr").
		Join(libraryTableName + " l on l.id = lr.library_id").
		Where(sq.Eq{"l.library_uid": libraryUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Librarian{}, err
	}

	var librarian model.Librarian
	if err := r.db.GetContext(ctx, &librarian, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Librarian{}, errs.ErrNotFound
		}
		return model.Librarian{}, err
	}
	return librarian, nil
}

func (r *repository) DeleteLibrarian(ctx context.Context, librarianUid string) error {
	query, args, err := qb.Delete(librarianTableName).
		Where(sq.Eq{"librarian_uid": librarianUid}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) Counts(ctx context.Context) (model.Counts, error) {
	q := `
select
    (select count(*) from author)    as authors,
    (select count(*) from book)      as books,
    (select count(*) from library)   as libraries,
    (select count(*) from librarian) as librarians`

	var counts model.Counts
	if err := r.db.GetContext(ctx, &counts, q); err != nil {
		return model.Counts{}, err
	}
	return counts, nil
}
