package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/cliff-de-tech/library-service/internal/errs"
	"github.com/cliff-de-tech/library-service/internal/model"
)

func (h *Handler) ListLibraries(c echo.Context) error {
	page, size, err := parsePaging(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	libs, err := h.librarySvc.ListLibraries(c.Request().Context(), page, size)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, libs)
}

func (h *Handler) GetLibrary(c echo.Context) error {
	libraryUid := c.Param("libraryUid")
	lib, err := h.librarySvc.GetLibraryDetail(c.Request().Context(), libraryUid)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, lib)
}

func (h *Handler) CreateLibrary(c echo.Context) error {
	var req model.CreateLibraryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	lib, err := h.librarySvc.CreateLibrary(c.Request().Context(), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, lib)
}

// DeleteLibrary removes the library and, by cascade, its
// librarian. Shelved books survive.
func (h *Handler) DeleteLibrary(c echo.Context) error {
	libraryUid := c.Param("libraryUid")
	if err := h.librarySvc.DeleteLibrary(c.Request().Context(), libraryUid); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, model.Message{Message: "library deleted"})
}

func (h *Handler) AddBookToLibrary(c echo.Context) error {
	libraryUid := c.Param("libraryUid")
	bookUid := c.Param("bookUid")
	if err := h.librarySvc.AddBookToLibrary(c.Request().Context(), libraryUid, bookUid); err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, errs.ErrConflict):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, model.Message{Message: "book shelved"})
}

func (h *Handler) RemoveBookFromLibrary(c echo.Context) error {
	libraryUid := c.Param("libraryUid")
	bookUid := c.Param("bookUid")
	if err := h.librarySvc.RemoveBookFromLibrary(c.Request().Context(), libraryUid, bookUid); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, model.Message{Message: "book unshelved"})
}

func (h *Handler) CreateLibrarian(c echo.Context) error {
	var req model.CreateLibrarianRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	librarian, err := h.librarySvc.CreateLibrarian(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, errs.ErrConflict):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, librarian)
}

func (h *Handler) GetLibrarian(c echo.Context) error {
	librarianUid := c.Param("librarianUid")
	librarian, err := h.librarySvc.GetLibrarian(c.Request().Context(), librarianUid)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, librarian)
}

func (h *Handler) DeleteLibrarian(c echo.Context) error {
	librarianUid := c.Param("librarianUid")
	if err := h.librarySvc.DeleteLibrarian(c.Request().Context(), librarianUid); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, model.Message{Message: "librarian deleted"})
}
