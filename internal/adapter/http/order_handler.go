package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	mw "compras-backend/internal/adapter/middleware"
	"compras-backend/internal/domain/order"
	orderUC "compras-backend/internal/usecase/order"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type OrderHandler struct{ uc *orderUC.Usecase }

func NewOrderHandler(uc *orderUC.Usecase) *OrderHandler { return &OrderHandler{uc: uc} }

type orderData struct {
	Ano             int         `json:"ano" validate:"required"`
	Departamento    uint64      `json:"departamento" validate:"required"`
	Codigo          string      `json:"codigo" validate:"required"`
	Proveedor       uint64      `json:"proveedor" validate:"required"`
	Fecha           string      `json:"fecha" validate:"required,datetime=2006-01-02"`
	Cantidad        int         `json:"cantidad" validate:"required,gte=1"`
	CodigoInversion string      `json:"codigoInversion"`
	Importe         json.Number `json:"importe" validate:"required"`
	Inventariable   string      `json:"inventariable" validate:"required,oneof=si no"`
	Observacion     string      `json:"observacion"`
}

type commentItem struct {
	Comentario string `json:"comentario"`
}

type createOrderReq struct {
	Data        orderData     `json:"data"`
	Comentarios []commentItem `json:"comentarios"`
}

type updateOrderReq struct {
	ID              uint64      `json:"id" validate:"required"`
	Codigo          string      `json:"codigo" validate:"required"`
	CodigoInversion string      `json:"codigoInversion"`
	Descripcion     string      `json:"descripcion"`
	IDProveedor     uint64      `json:"idProveedor" validate:"required"`
	Cantidad        int         `json:"cantidad" validate:"gte=0"`
	Fecha           string      `json:"fecha" validate:"required,datetime=2006-01-02"`
	EsInventariable string      `json:"es_inventariable" validate:"required,oneof=si no"`
	Importe         json.Number `json:"importe" validate:"required"`
}

type deleteOrderReq struct {
	ID   uint64 `json:"id" validate:"required"`
	Type string `json:"type" validate:"required"`
}

func parseImporte(raw json.Number) (decimal.Decimal, []FieldError) {
	d, err := decimal.NewFromString(raw.String())
	if err != nil || d.IsNegative() {
		return decimal.Decimal{}, []FieldError{{Field: "importe", Message: "must be a non-negative number"}}
	}
	return d, nil
}

func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	importe, fieldErrs := parseImporte(req.Data.Importe)
	if fieldErrs != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: fieldErrs})
	}
	fecha, err := time.Parse("2006-01-02", req.Data.Fecha)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed",
			Details: []FieldError{{Field: "fecha", Message: "must be a date in format 2006-01-02"}}})
	}

	comments := make([]string, 0, len(req.Comentarios))
	for _, cm := range req.Comentarios {
		comments = append(comments, cm.Comentario)
	}

	in := orderUC.CreateOrderInput{
		Year:           req.Data.Ano,
		DepartmentID:   req.Data.Departamento,
		Code:           req.Data.Codigo,
		ProviderID:     req.Data.Proveedor,
		Date:           fecha,
		Quantity:       req.Data.Cantidad,
		Amount:         importe,
		Inventoriable:  req.Data.Inventariable == "si",
		Description:    req.Data.Observacion,
		InvestmentCode: req.Data.CodigoInversion,
		AuthorUserID:   mw.IdentityFrom(c).UserID,
		Comments:       comments,
	}
	res, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"message": res.Message,
		"id":      res.OrderID,
	})
}

func (h *OrderHandler) Update(c echo.Context) error {
	var req updateOrderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	importe, fieldErrs := parseImporte(req.Importe)
	if fieldErrs != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: fieldErrs})
	}
	fecha, err := time.Parse("2006-01-02", req.Fecha)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed",
			Details: []FieldError{{Field: "fecha", Message: "must be a date in format 2006-01-02"}}})
	}

	in := orderUC.UpdateOrderInput{
		ID:             req.ID,
		Code:           req.Codigo,
		InvestmentCode: req.CodigoInversion,
		Description:    req.Descripcion,
		ProviderID:     req.IDProveedor,
		Quantity:       req.Cantidad,
		Date:           fecha,
		Inventoriable:  req.EsInventariable == "si",
		Amount:         importe,
	}
	if err := h.uc.Update(c.Request().Context(), in); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "order updated",
	})
}

func (h *OrderHandler) Delete(c echo.Context) error {
	var req deleteOrderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	track, err := order.ParseTrack(req.Type)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed",
			Details: []FieldError{{Field: "type", Message: "must be one of: presupuesto inversion"}}})
	}

	affected, err := h.uc.Delete(c.Request().Context(), req.ID, track)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success":      true,
		"message":      "order deleted",
		"affectedRows": affected,
	})
}

func (h *OrderHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid order id"})
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
