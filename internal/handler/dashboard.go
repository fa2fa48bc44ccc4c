package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cliff-de-tech/library-service/internal/model"
	"github.com/cliff-de-tech/library-service/pkg/auth"
)

// Role dashboards. Routing gates each one behind its RoleCheck,
// the handlers only assemble the summary.

func (h *Handler) AdminView(c echo.Context) error {
	return h.dashboard(c)
}

func (h *Handler) LibrarianView(c echo.Context) error {
	return h.dashboard(c)
}

func (h *Handler) MemberView(c echo.Context) error {
	return h.dashboard(c)
}

func (h *Handler) dashboard(c echo.Context) error {
	id, ok := auth.FromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "NoAuthContext")
	}

	counts, err := h.librarySvc.Counts(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, model.Dashboard{
		Username: id.Username,
		Role:     string(id.Role),
		Counts:   counts,
	})
}
