package http

import (
	"net/http"

	ledgerUC "compras-backend/internal/usecase/ledger"

	"github.com/labstack/echo/v4"
)

type LedgerHandler struct{ uc *ledgerUC.Usecase }

func NewLedgerHandler(uc *ledgerUC.Usecase) *LedgerHandler { return &LedgerHandler{uc: uc} }

type createPoolReq struct {
	Ano    int    `json:"ano" validate:"required"`
	Dinero string `json:"dinero" validate:"required,money"`
}

type updateMoneyReq struct {
	ID     uint64 `json:"id" validate:"required"`
	Dinero string `json:"dinero" validate:"required,money"`
	Tipo   string `json:"tipo" validate:"required,oneof=presupuesto inversion"`
}

func (h *LedgerHandler) CreatePool(c echo.Context) error {
	var req createPoolReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	p, err := h.uc.CreatePool(c.Request().Context(), req.Ano, req.Dinero)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"message": "ledger pool created",
		"id":      p.ID,
	})
}

func (h *LedgerHandler) UpdateMoney(c echo.Context) error {
	var req updateMoneyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	if err := h.uc.UpdateMoney(c.Request().Context(), req.ID, req.Dinero); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "ledger pool money updated",
	})
}

func (h *LedgerHandler) ListPools(c echo.Context) error {
	pools, err := h.uc.ListPools(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, pools)
}
