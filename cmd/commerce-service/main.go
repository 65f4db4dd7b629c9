package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/kbf-dev/galerie-commerce-service/internal/app/setup"
	"github.com/kbf-dev/galerie-commerce-service/internal/config"
	"github.com/kbf-dev/galerie-commerce-service/internal/delivery/http/handlers"
	mid "github.com/kbf-dev/galerie-commerce-service/internal/delivery/http/middleware"
	"github.com/kbf-dev/galerie-commerce-service/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()

	zlog := logger.Init(cfg.Env)
	defer zlog.Sync()

	deps, err := setup.InitializeDependencies(cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to initialize dependencies", zap.Error(err))
	}
	defer deps.StockPublisher.Close()

	merchantHandler := handlers.NewMerchantHandler(deps.MerchantUsecase, cfg.Pagination.DefaultPageSize)
	productHandler := handlers.NewProductHandler(deps.ProductUsecase, cfg.Pagination.DefaultPageSize)
	transactionHandler := handlers.NewTransactionHandler(deps.SaleUsecase, cfg.Pagination.DefaultPageSize)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(mid.Identity(cfg.JWTSecret))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	merchants := e.Group("/merchants")
	merchants.GET("", merchantHandler.ListMerchants)
	merchants.GET("/me", merchantHandler.GetMyMerchant, mid.RequireIdentity)
	merchants.GET("/:id", merchantHandler.GetMerchant)
	merchants.GET("/:id/products", productHandler.ListProducts)
	merchants.GET("/:id/revenue", merchantHandler.GetRevenue)
	merchants.POST("", merchantHandler.CreateMerchant, mid.RequireIdentity)
	merchants.PUT("/:id", merchantHandler.UpdateMerchant, mid.RequireIdentity)
	merchants.POST("/:id/deactivate", merchantHandler.DeactivateMerchant, mid.RequireIdentity)
	merchants.POST("/:id/products", productHandler.CreateProduct, mid.RequireIdentity)

	products := e.Group("/products")
	products.GET("/:id", productHandler.GetProduct)
	products.GET("/:id/transactions", transactionHandler.ListProductTransactions)
	products.PUT("/:id", productHandler.UpdateProduct, mid.RequireIdentity)
	products.POST("/:id/stock", productHandler.UpdateStock, mid.RequireIdentity)
	products.POST("/:id/transactions", transactionHandler.ProcessSale, mid.RequireIdentity)

	e.GET("/transactions/:id", transactionHandler.GetTransaction)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	zlog.Info("starting commerce service", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := e.Start(addr); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
