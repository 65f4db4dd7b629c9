package setup

import (
	"fmt"

	"github.com/kbf-dev/galerie-commerce-service/internal/config"
	"github.com/kbf-dev/galerie-commerce-service/internal/domain"
	"github.com/kbf-dev/galerie-commerce-service/internal/infrastructure/kafka"
	"github.com/kbf-dev/galerie-commerce-service/internal/infrastructure/metrics"
	"github.com/kbf-dev/galerie-commerce-service/internal/infrastructure/migrate"
	"github.com/kbf-dev/galerie-commerce-service/internal/infrastructure/postgres"
	"github.com/kbf-dev/galerie-commerce-service/internal/infrastructure/postgres/repository"
	"github.com/kbf-dev/galerie-commerce-service/internal/usecase"
	"github.com/kbf-dev/galerie-commerce-service/internal/usecase/sale"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config          *config.CommerceConfig
	DB              *gorm.DB
	StockPublisher  *kafka.StockAlertPublisher
	Metrics         *metrics.CommerceMetrics
	Repositories    *Repositories
	MerchantUsecase usecase.MerchantUsecase
	ProductUsecase  usecase.ProductUsecase
	SaleUsecase     sale.SaleUsecase
}

type Repositories struct {
	MerchantRepo    domain.MerchantRepository
	ProductRepo     domain.ProductRepository
	TransactionRepo domain.TransactionRepository
	UserRepo        domain.UserRepository
	TxManager       domain.TxManager
}

func InitializeDependencies(cfg *config.CommerceConfig, logger *zap.Logger) (*Dependencies, error) {
	db := postgres.MustInitDB(cfg)

	if cfg.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.MigrationsPath, logger); err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}
	}

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	stockPublisher := kafka.NewStockAlertPublisher(brokers, cfg.KafkaService.Topic)

	commerceMetrics := metrics.NewCommerceMetrics()

	repos := &Repositories{
		MerchantRepo:    repository.NewDefaultMerchantRepository(db),
		ProductRepo:     repository.NewDefaultProductRepository(db),
		TransactionRepo: repository.NewDefaultTransactionRepository(db),
		UserRepo:        repository.NewDefaultUserRepository(db),
		TxManager:       repository.NewGormTxManager(db),
	}

	alerter := usecase.NewStockAlerter(stockPublisher, commerceMetrics, logger)

	merchantUsecase := usecase.NewDefaultMerchantUsecase(
		repos.MerchantRepo,
		repos.ProductRepo,
		repos.TransactionRepo,
		repos.UserRepo,
		repos.TxManager,
		commerceMetrics,
		logger,
	)
	productUsecase := usecase.NewDefaultProductUsecase(
		repos.ProductRepo,
		repos.MerchantRepo,
		repos.TxManager,
		alerter,
		commerceMetrics,
		logger,
		cfg.StockConfig.DefaultAlertThreshold,
	)
	saleUsecase := sale.NewDefaultSaleUsecase(
		repos.ProductRepo,
		repos.TransactionRepo,
		repos.TxManager,
		alerter,
		commerceMetrics,
		logger,
	)

	return &Dependencies{
		Config:          cfg,
		DB:              db,
		StockPublisher:  stockPublisher,
		Metrics:         commerceMetrics,
		Repositories:    repos,
		MerchantUsecase: merchantUsecase,
		ProductUsecase:  productUsecase,
		SaleUsecase:     saleUsecase,
	}, nil
}
