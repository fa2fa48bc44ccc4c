package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cliff-de-tech/library-service/internal/errs"
	"github.com/cliff-de-tech/library-service/internal/model"
	"github.com/cliff-de-tech/library-service/internal/service"

	repo_mocks "github.com/cliff-de-tech/library-service/internal/repository/mocks"
)

const libraryUid = "83575e12-7ce0-48ee-9931-51919ff3c9ee"

func TestService_GetLibraryDetail(t *testing.T) {
	t.Parallel()

	lib := model.Library{ID: 1, LibraryUid: libraryUid, Name: "City Library"}
	books := []model.Book{
		{BookUid: "f7cdc58f-2caf-4b15-9727-f89dcc629b27", Title: "Dune", AuthorName: "Frank Herbert"},
	}
	librarian := model.Librarian{LibrarianUid: "6f2c2b23-8a3f-4bb3-9c10-4d9d40b9c37b", Name: "John Smith", LibraryUid: libraryUid}

	t.Run("ok. with librarian", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := repo_mocks.NewMockRepository(c)
		svc := service.NewService(repo, zap.NewExample().Named("test"))

		repo.EXPECT().GetLibrary(gomock.Any(), libraryUid).Return(lib, nil)
		repo.EXPECT().ListLibraryBooks(gomock.Any(), libraryUid).Return(books, nil)
		repo.EXPECT().GetLibraryLibrarian(gomock.Any(), libraryUid).Return(librarian, nil)

		detail, err := svc.GetLibraryDetail(context.Background(), libraryUid)
		require.NoError(t, err)
		require.Equal(t, lib, detail.Library)
		require.Equal(t, books, detail.Books)
		require.NotNil(t, detail.Librarian)
		require.Equal(t, librarian, *detail.Librarian)
	})

	t.Run("ok. librarian not assigned", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := repo_mocks.NewMockRepository(c)
		svc := service.NewService(repo, zap.NewExample().Named("test"))

		repo.EXPECT().GetLibrary(gomock.Any(), libraryUid).Return(lib, nil)
		repo.EXPECT().ListLibraryBooks(gomock.Any(), libraryUid).Return(nil, nil)
		repo.EXPECT().GetLibraryLibrarian(gomock.Any(), libraryUid).Return(model.Librarian{}, errs.ErrNotFound)

		detail, err := svc.GetLibraryDetail(context.Background(), libraryUid)
		require.NoError(t, err)
		require.Nil(t, detail.Librarian)
		require.Empty(t, detail.Books)
		require.NotNil(t, detail.Books)
	})

	t.Run("err. library not found", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := repo_mocks.NewMockRepository(c)
		svc := service.NewService(repo, zap.NewExample().Named("test"))

		repo.EXPECT().GetLibrary(gomock.Any(), libraryUid).Return(model.Library{}, errs.ErrNotFound)

		_, err := svc.GetLibraryDetail(context.Background(), libraryUid)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("err. books query fails", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := repo_mocks.NewMockRepository(c)
		svc := service.NewService(repo, zap.NewExample().Named("test"))

		repo.EXPECT().GetLibrary(gomock.Any(), libraryUid).Return(lib, nil)
		repo.EXPECT().ListLibraryBooks(gomock.Any(), libraryUid).Return(nil, errors.New("db internal"))
		repo.EXPECT().GetLibraryLibrarian(gomock.Any(), libraryUid).Return(librarian, nil).AnyTimes()

		_, err := svc.GetLibraryDetail(context.Background(), libraryUid)
		require.Error(t, err)
	})
}

func TestService_GetAuthorDetail(t *testing.T) {
	t.Parallel()

	const authorUid = "1b4e28ba-2fa1-11d2-883f-0016d3cca427"
	author := model.Author{ID: 7, AuthorUid: authorUid, Name: "Frank Herbert"}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := repo_mocks.NewMockRepository(c)
		svc := service.NewService(repo, zap.NewExample().Named("test"))

		repo.EXPECT().GetAuthor(context.Background(), authorUid).Return(author, nil)
		repo.EXPECT().GetAuthorBooks(context.Background(), authorUid).Return(nil, nil)

		detail, err := svc.GetAuthorDetail(context.Background(), authorUid)
		require.NoError(t, err)
		require.Equal(t, author, detail.Author)
		require.NotNil(t, detail.Books)
	})

	t.Run("err. author not found", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := repo_mocks.NewMockRepository(c)
		svc := service.NewService(repo, zap.NewExample().Named("test"))

		repo.EXPECT().GetAuthor(context.Background(), authorUid).Return(model.Author{}, errs.ErrNotFound)

		_, err := svc.GetAuthorDetail(context.Background(), authorUid)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}
