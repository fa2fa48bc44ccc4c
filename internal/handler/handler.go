package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	md "github.com/cliff-de-tech/library-service/pkg/middleware"

	"github.com/cliff-de-tech/library-service/pkg/auth"
	"github.com/cliff-de-tech/library-service/pkg/validate"
)

type Handler struct {
	librarySvc LibraryService
	authSvc    AuthService
	log        *zap.Logger
}

func New(librarySvc LibraryService, authSvc AuthService, log *zap.Logger) *Handler {
	h := &Handler{
		librarySvc: librarySvc,
		authSvc:    authSvc,
		log:        log,
	}
	return h
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/register", h.Register)
	api.POST("/login", h.Login)
	api.POST("/logout", h.Logout)
	api.POST("/contact", h.Contact)

	authed := api.Group("", md.JwtAuthentication)
	authed.GET("/me", h.Me)

	canView := md.RequireAccess(auth.PermissionCheck(auth.CanView))
	canCreate := md.RequireAccess(auth.PermissionCheck(auth.CanCreate))
	canEdit := md.RequireAccess(auth.PermissionCheck(auth.CanEdit))
	canDelete := md.RequireAccess(auth.PermissionCheck(auth.CanDelete))

	authed.GET("/books", h.ListBooks, canView)
	authed.GET("/books/:bookUid", h.GetBook, canView)
	authed.POST("/books", h.CreateBook, canCreate)
	authed.PUT("/books/:bookUid", h.UpdateBook, canEdit)
	authed.DELETE("/books/:bookUid", h.DeleteBook, canDelete)

	authed.GET("/authors", h.ListAuthors, canView)
	authed.GET("/authors/:authorUid", h.GetAuthor, canView)
	authed.POST("/authors", h.CreateAuthor, canCreate)
	authed.DELETE("/authors/:authorUid", h.DeleteAuthor, canDelete)

	authed.GET("/libraries", h.ListLibraries, canView)
	authed.GET("/libraries/:libraryUid", h.GetLibrary, canView)
	authed.POST("/libraries", h.CreateLibrary, canCreate)
	authed.DELETE("/libraries/:libraryUid", h.DeleteLibrary, canDelete)
	authed.POST("/libraries/:libraryUid/books/:bookUid", h.AddBookToLibrary, canEdit)
	authed.DELETE("/libraries/:libraryUid/books/:bookUid", h.RemoveBookFromLibrary, canEdit)

	authed.POST("/librarians", h.CreateLibrarian, canCreate)
	authed.GET("/librarians/:librarianUid", h.GetLibrarian, canView)
	authed.DELETE("/librarians/:librarianUid", h.DeleteLibrarian, canDelete)

	authed.GET("/admin", h.AdminView, md.RequireAccess(auth.RoleCheck(auth.RoleAdmin)))
	authed.GET("/librarian", h.LibrarianView, md.RequireAccess(auth.RoleCheck(auth.RoleLibrarian)))
	authed.GET("/member", h.MemberView, md.RequireAccess(auth.RoleCheck(auth.RoleMember)))

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func parsePaging(c echo.Context) (page, size int, err error) {
	if pageParam := c.QueryParam("page"); pageParam != "" {
		if page, err = strconv.Atoi(pageParam); err != nil {
			return 0, 0, errors.New("page is invalid")
		}
	}
	if sizeParam := c.QueryParam("size"); sizeParam != "" {
		if size, err = strconv.Atoi(sizeParam); err != nil {
			return 0, 0, errors.New("size is invalid")
		}
	}
	return page, size, nil
}
