package http

import (
	"net/http"
	"strconv"

	mw "compras-backend/internal/adapter/middleware"
	commentUC "compras-backend/internal/usecase/comment"

	"github.com/labstack/echo/v4"
)

type CommentHandler struct{ uc *commentUC.Usecase }

func NewCommentHandler(uc *commentUC.Usecase) *CommentHandler { return &CommentHandler{uc: uc} }

type addCommentReq struct {
	Comentario string `json:"comentario" validate:"required"`
}

func (h *CommentHandler) Add(c echo.Context) error {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || orderID == 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid order id"})
	}
	var req addCommentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	cm, err := h.uc.Add(c.Request().Context(), orderID, mw.IdentityFrom(c).UserID, req.Comentario)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"success": true, "message": "comment added", "id": cm.ID})
}

func (h *CommentHandler) Delete(c echo.Context) error {
	commentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || commentID == 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid comment id"})
	}
	if err := h.uc.Delete(c.Request().Context(), commentID, mw.IdentityFrom(c)); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "message": "comment deleted"})
}
