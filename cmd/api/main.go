package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "compras-backend/internal/adapter/http"
	mw "compras-backend/internal/adapter/middleware"
	"compras-backend/internal/adapter/repository/mysql"
	"compras-backend/internal/config"
	"compras-backend/internal/domain/catalog"
	"compras-backend/internal/domain/ledger"
	"compras-backend/internal/domain/order"
	"compras-backend/internal/domain/user"
	"compras-backend/internal/infrastructure/cache"
	"compras-backend/internal/infrastructure/db"
	catalogUC "compras-backend/internal/usecase/catalog"
	commentUC "compras-backend/internal/usecase/comment"
	ledgerUC "compras-backend/internal/usecase/ledger"
	orderUC "compras-backend/internal/usecase/order"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN(), cfg.DBMaxOpenConns)
	if err != nil {
		log.Fatal(err)
	}
	if err := gdb.AutoMigrate(
		&ledger.Pool{}, &ledger.BudgetAllocation{}, &ledger.InvestmentAllocation{},
		&catalog.Department{}, &catalog.Provider{},
		&order.PurchaseOrder{}, &order.BudgetLink{}, &order.InvestmentLink{},
		&order.Invoice{}, &order.Comment{},
		&user.User{},
	); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}
	sessions := mw.NewSessionStore(rdb, time.Duration(cfg.SessionTTLSecs)*time.Second)

	guow := mysql.NewGormUoW(gdb)
	orders := orderUC.NewUsecase(guow)
	ledgers := ledgerUC.NewUsecase(mysql.NewLedgerRepository(gdb))
	comments := commentUC.NewUsecase(guow)
	catalogs := catalogUC.NewUsecase(mysql.NewCatalogRepository(gdb))

	e := newRouter(sessions,
		httpadp.NewHandler(),
		httpadp.NewOrderHandler(orders),
		httpadp.NewLedgerHandler(ledgers),
		httpadp.NewCatalogHandler(catalogs),
		httpadp.NewCommentHandler(comments),
	)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

// newRouter builds the echo instance with the full route table. Read routes
// sit behind Authenticate, mutations additionally behind RequireWrite, and
// the ledger/department admin surface behind RequireAdmin.
func newRouter(sessions *mw.SessionStore, h *httpadp.Handler, oh *httpadp.OrderHandler,
	lh *httpadp.LedgerHandler, ch *httpadp.CatalogHandler, cmh *httpadp.CommentHandler) *echo.Echo {

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger(), middleware.Recover())
	e.Validator = httpadp.NewValidator()

	e.GET("/health", h.Health)

	authed := e.Group("", mw.Authenticate(sessions))
	authed.GET("/ordenes/:id", oh.Get)
	authed.GET("/bolsas", lh.ListPools)
	authed.GET("/departamentos", ch.ListDepartments)
	authed.GET("/proveedores", ch.ListProviders)
	authed.DELETE("/comentarios/:id", cmh.Delete)

	write := authed.Group("", mw.RequireWrite())
	write.POST("/ordenes", oh.Create)
	write.POST("/ordenes/update", oh.Update)
	write.POST("/ordenes/delete", oh.Delete)
	write.POST("/ordenes/:id/comentarios", cmh.Add)
	write.POST("/bolsas/dinero", lh.UpdateMoney)
	write.POST("/proveedores", ch.CreateProvider)
	write.POST("/proveedores/update", ch.UpdateProvider)
	write.POST("/proveedores/delete", ch.DeleteProvider)

	admin := authed.Group("", mw.RequireAdmin())
	admin.POST("/bolsas", lh.CreatePool)
	admin.POST("/departamentos", ch.CreateDepartment)
	admin.POST("/departamentos/update", ch.RenameDepartment)
	admin.POST("/departamentos/delete", ch.DeleteDepartment)

	return e
}
