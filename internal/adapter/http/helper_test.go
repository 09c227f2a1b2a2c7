package http

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	mw "compras-backend/internal/adapter/middleware"
	"compras-backend/internal/adapter/repository/mysql"
	catalogDomain "compras-backend/internal/domain/catalog"
	ledgerDomain "compras-backend/internal/domain/ledger"
	orderDomain "compras-backend/internal/domain/order"
	"compras-backend/internal/domain/user"
	catalogUC "compras-backend/internal/usecase/catalog"
	commentUC "compras-backend/internal/usecase/comment"
	ledgerUC "compras-backend/internal/usecase/ledger"
	orderUC "compras-backend/internal/usecase/order"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testServer wires the handlers against an in-memory sqlite DB, routed the
// same way as cmd/api but without the auth middleware. Tests that need an
// identity inject one with the ident middleware below.
type testServer struct {
	e  *echo.Echo
	db *gorm.DB
}

func ident(id user.Identity) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			mw.SetIdentity(c, id)
			return next(c)
		}
	}
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&ledgerDomain.Pool{}, &ledgerDomain.BudgetAllocation{}, &ledgerDomain.InvestmentAllocation{},
		&catalogDomain.Department{}, &catalogDomain.Provider{},
		&orderDomain.PurchaseOrder{}, &orderDomain.BudgetLink{}, &orderDomain.InvestmentLink{},
		&orderDomain.Invoice{}, &orderDomain.Comment{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}

	guow := mysql.NewGormUoW(db)
	ledgers := ledgerUC.NewUsecase(mysql.NewLedgerRepository(db))
	orders := orderUC.NewUsecase(guow)
	comments := commentUC.NewUsecase(guow)
	catalogs := catalogUC.NewUsecase(mysql.NewCatalogRepository(db))

	e := echo.New()
	e.Validator = NewValidator()

	h := NewHandler()
	oh := NewOrderHandler(orders)
	lh := NewLedgerHandler(ledgers)
	ch := NewCommentHandler(comments)
	kh := NewCatalogHandler(catalogs)

	writer := ident(user.Identity{UserID: 7, CanWrite: true})

	e.GET("/health", h.Health)
	e.GET("/ordenes/:id", oh.Get)
	e.POST("/ordenes", oh.Create, writer)
	e.POST("/ordenes/update", oh.Update, writer)
	e.POST("/ordenes/delete", oh.Delete, writer)
	e.POST("/ordenes/:id/comentarios", ch.Add, writer)
	e.DELETE("/comentarios/:id", ch.Delete, writer)
	e.GET("/bolsas", lh.ListPools)
	e.POST("/bolsas", lh.CreatePool)
	e.POST("/bolsas/dinero", lh.UpdateMoney)
	e.GET("/departamentos", kh.ListDepartments)
	e.POST("/departamentos", kh.CreateDepartment)
	e.GET("/proveedores", kh.ListProviders)
	e.POST("/proveedores", kh.CreateProvider)

	return &testServer{e: e, db: db}
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) seedPool(t *testing.T, year int) *ledgerDomain.Pool {
	t.Helper()
	p := &ledgerDomain.Pool{Year: year, Money: decimal.RequireFromString("100000.00")}
	if err := s.db.Create(p).Error; err != nil {
		t.Fatalf("seed pool: %v", err)
	}
	return p
}

func decodeErr(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var out ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, rec.Body.String())
	}
	return out
}

func decodeMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body: %v (%s)", err, rec.Body.String())
	}
	return out
}

// hasFieldError reports whether the validation details name the given field.
func hasFieldError(resp ErrorResponse, field string) bool {
	for _, fe := range resp.Details {
		if fe.Field == field {
			return true
		}
	}
	return false
}
