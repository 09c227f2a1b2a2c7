package http

import (
	"net/http"

	"compras-backend/internal/domain/catalog"
	catalogUC "compras-backend/internal/usecase/catalog"

	"github.com/labstack/echo/v4"
)

type CatalogHandler struct{ uc *catalogUC.Usecase }

func NewCatalogHandler(uc *catalogUC.Usecase) *CatalogHandler { return &CatalogHandler{uc: uc} }

type createDepartmentReq struct {
	Nombre string `json:"nombre" validate:"required"`
}

type updateDepartmentReq struct {
	ID     uint64 `json:"id" validate:"required"`
	Nombre string `json:"nombre" validate:"required"`
}

type deleteByIDReq struct {
	ID uint64 `json:"id" validate:"required"`
}

type providerReq struct {
	ID            uint64   `json:"id"`
	Nombre        string   `json:"nombre" validate:"required"`
	CIF           string   `json:"cif"`
	Direccion     string   `json:"direccion"`
	Localidad     string   `json:"localidad"`
	Provincia     string   `json:"provincia"`
	Telefono      string   `json:"telefono"`
	Email         string   `json:"email" validate:"omitempty,email"`
	Departamentos []uint64 `json:"departamentos"`
}

func (h *CatalogHandler) bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	return true, nil
}

func (h *CatalogHandler) CreateDepartment(c echo.Context) error {
	var req createDepartmentReq
	if ok, err := h.bindAndValidate(c, &req); !ok {
		return err
	}
	d, err := h.uc.CreateDepartment(c.Request().Context(), req.Nombre)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"success": true, "message": "department created", "id": d.ID})
}

func (h *CatalogHandler) RenameDepartment(c echo.Context) error {
	var req updateDepartmentReq
	if ok, err := h.bindAndValidate(c, &req); !ok {
		return err
	}
	if err := h.uc.RenameDepartment(c.Request().Context(), req.ID, req.Nombre); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "message": "department renamed"})
}

func (h *CatalogHandler) DeleteDepartment(c echo.Context) error {
	var req deleteByIDReq
	if ok, err := h.bindAndValidate(c, &req); !ok {
		return err
	}
	if err := h.uc.DeleteDepartment(c.Request().Context(), req.ID); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "message": "department deleted"})
}

func (h *CatalogHandler) ListDepartments(c echo.Context) error {
	depts, err := h.uc.ListDepartments(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, depts)
}

func (h *CatalogHandler) toProvider(req providerReq) *catalog.Provider {
	return &catalog.Provider{
		ID:       req.ID,
		Name:     req.Nombre,
		CIF:      req.CIF,
		Address:  req.Direccion,
		City:     req.Localidad,
		Province: req.Provincia,
		Phone:    req.Telefono,
		Email:    req.Email,
	}
}

func (h *CatalogHandler) CreateProvider(c echo.Context) error {
	var req providerReq
	if ok, err := h.bindAndValidate(c, &req); !ok {
		return err
	}
	p := h.toProvider(req)
	p.ID = 0
	if err := h.uc.CreateProvider(c.Request().Context(), p, req.Departamentos); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"success": true, "message": "provider created", "id": p.ID})
}

func (h *CatalogHandler) UpdateProvider(c echo.Context) error {
	var req providerReq
	if ok, err := h.bindAndValidate(c, &req); !ok {
		return err
	}
	if req.ID == 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed",
			Details: []FieldError{{Field: "id", Message: "is required"}}})
	}
	if err := h.uc.UpdateProvider(c.Request().Context(), h.toProvider(req), req.Departamentos); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "message": "provider updated"})
}

func (h *CatalogHandler) DeleteProvider(c echo.Context) error {
	var req deleteByIDReq
	if ok, err := h.bindAndValidate(c, &req); !ok {
		return err
	}
	if err := h.uc.DeleteProvider(c.Request().Context(), req.ID); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "message": "provider deleted"})
}

func (h *CatalogHandler) ListProviders(c echo.Context) error {
	providers, err := h.uc.ListProviders(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, providers)
}
