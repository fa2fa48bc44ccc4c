package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/cliff-de-tech/library-service/internal/errs"
	"github.com/cliff-de-tech/library-service/internal/model"
)

func (h *Handler) ListAuthors(c echo.Context) error {
	page, size, err := parsePaging(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	authors, err := h.librarySvc.ListAuthors(c.Request().Context(), page, size)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, authors)
}

func (h *Handler) GetAuthor(c echo.Context) error {
	authorUid := c.Param("authorUid")
	author, err := h.librarySvc.GetAuthorDetail(c.Request().Context(), authorUid)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, author)
}

func (h *Handler) CreateAuthor(c echo.Context) error {
	var req model.CreateAuthorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	author, err := h.librarySvc.CreateAuthor(c.Request().Context(), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, author)
}

// DeleteAuthor removes the author. Books owned by the author go
// with it (cascade), and disappear from every library shelf.
func (h *Handler) DeleteAuthor(c echo.Context) error {
	authorUid := c.Param("authorUid")
	if err := h.librarySvc.DeleteAuthor(c.Request().Context(), authorUid); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, model.Message{Message: "author deleted"})
}
