package http

import (
	"errors"
	"net/http"
	"time"

	"compras-backend/internal/domain/catalog"
	"compras-backend/internal/domain/ledger"
	"compras-backend/internal/domain/order"
	"compras-backend/internal/usecase/comment"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// writeDomainError maps domain sentinel errors to HTTP statuses. Anything
// unrecognized is a 500 with a generic message; the detail stays in the
// server log only.
func writeDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, order.ErrInvalidTrack),
		errors.Is(err, order.ErrProviderRequired),
		errors.Is(err, order.ErrInvalidAmount),
		errors.Is(err, order.ErrTrackImmutable),
		errors.Is(err, ledger.ErrInvalidMoney),
		errors.Is(err, ledger.ErrInvestmentCodeRequired),
		errors.Is(err, comment.ErrEmptyComment):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})

	case errors.Is(err, order.ErrNotFound),
		errors.Is(err, order.ErrCommentNotFound),
		errors.Is(err, ledger.ErrPoolNotFound),
		errors.Is(err, catalog.ErrDepartmentNotFound),
		errors.Is(err, catalog.ErrProviderNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})

	case errors.Is(err, order.ErrNotCommentAuthor):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})

	case errors.Is(err, ledger.ErrPoolExists):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	}

	c.Logger().Error(err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
