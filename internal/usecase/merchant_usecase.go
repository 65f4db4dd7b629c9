package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/kbf-dev/galerie-commerce-service/internal/domain"
	"github.com/kbf-dev/galerie-commerce-service/internal/infrastructure/metrics"
	merchantdto "github.com/kbf-dev/galerie-commerce-service/internal/usecase/dto/merchant"
	"go.uber.org/zap"
)

type MerchantUsecase interface {
	CreateMerchant(ctx context.Context, input *merchantdto.CreateMerchantInput) (*merchantdto.MerchantOutput, error)
	GetMerchant(ctx context.Context, merchantID string) (*merchantdto.MerchantOutput, error)
	GetMerchantForUser(ctx context.Context, userID string) (*merchantdto.MerchantOutput, error)
	UpdateMerchant(ctx context.Context, input *merchantdto.UpdateMerchantInput) (*merchantdto.MerchantOutput, error)
	ListMerchants(ctx context.Context, input *merchantdto.ListMerchantsInput) ([]*merchantdto.MerchantOutput, int64, error)
	DeactivateMerchant(ctx context.Context, merchantID string) error
	GetRevenue(ctx context.Context, input *merchantdto.RevenueInput) (*merchantdto.RevenueOutput, error)
}

type DefaultMerchantUsecase struct {
	MerchantRepo    domain.MerchantRepository
	ProductRepo     domain.ProductRepository
	TransactionRepo domain.TransactionRepository
	UserRepo        domain.UserRepository
	Tx              domain.TxManager
	Metrics         *metrics.CommerceMetrics
	Logger          *zap.Logger
}

func NewDefaultMerchantUsecase(
	merchantRepo domain.MerchantRepository,
	productRepo domain.ProductRepository,
	transactionRepo domain.TransactionRepository,
	userRepo domain.UserRepository,
	tx domain.TxManager,
	commerceMetrics *metrics.CommerceMetrics,
	logger *zap.Logger) *DefaultMerchantUsecase {

	return &DefaultMerchantUsecase{
		MerchantRepo:    merchantRepo,
		ProductRepo:     productRepo,
		TransactionRepo: transactionRepo,
		UserRepo:        userRepo,
		Tx:              tx,
		Metrics:         commerceMetrics,
		Logger:          logger,
	}
}

// CreateMerchant admits an owner user into the platform. One merchant
// per user; the unique index on user_id backs this up in storage.
func (uc *DefaultMerchantUsecase) CreateMerchant(ctx context.Context, input *merchantdto.CreateMerchantInput) (*merchantdto.MerchantOutput, error) {
	if input.BrandName == "" {
		return nil, fmt.Errorf("brand name is required: %w", domain.ErrValidation)
	}

	user, err := uc.UserRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleMerchant {
		return nil, fmt.Errorf("user %s does not hold the MERCHANT role: %w", user.ID, domain.ErrValidation)
	}

	merchant := &domain.Merchant{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		BrandName:   input.BrandName,
		Description: input.Description,
		IsActive:    true,
	}

	if err := uc.MerchantRepo.Create(ctx, merchant); err != nil {
		return nil, err
	}

	return merchantdto.FromDomain(merchant), nil
}

func (uc *DefaultMerchantUsecase) GetMerchant(ctx context.Context, merchantID string) (*merchantdto.MerchantOutput, error) {
	merchant, err := uc.MerchantRepo.GetByID(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	return merchantdto.FromDomain(merchant), nil
}

// GetMerchantForUser resolves the merchant owned by the given user.
func (uc *DefaultMerchantUsecase) GetMerchantForUser(ctx context.Context, userID string) (*merchantdto.MerchantOutput, error) {
	merchant, err := uc.MerchantRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return merchantdto.FromDomain(merchant), nil
}

func (uc *DefaultMerchantUsecase) UpdateMerchant(ctx context.Context, input *merchantdto.UpdateMerchantInput) (*merchantdto.MerchantOutput, error) {
	merchant, err := uc.MerchantRepo.GetByID(ctx, input.MerchantID)
	if err != nil {
		return nil, err
	}

	if input.BrandName != nil {
		if *input.BrandName == "" {
			return nil, fmt.Errorf("brand name is required: %w", domain.ErrValidation)
		}
		merchant.BrandName = *input.BrandName
	}
	if input.Description != nil {
		merchant.Description = *input.Description
	}

	if err := uc.MerchantRepo.Update(ctx, merchant); err != nil {
		return nil, err
	}
	return merchantdto.FromDomain(merchant), nil
}

func (uc *DefaultMerchantUsecase) ListMerchants(ctx context.Context, input *merchantdto.ListMerchantsInput) ([]*merchantdto.MerchantOutput, int64, error) {
	merchants, total, err := uc.MerchantRepo.List(ctx, domain.MerchantFilters{
		ActiveOnly: input.ActiveOnly,
		BrandName:  input.BrandName,
	}, input.Page, input.Size)
	if err != nil {
		return nil, 0, err
	}

	outputs := make([]*merchantdto.MerchantOutput, len(merchants))
	for i, merchant := range merchants {
		outputs[i] = merchantdto.FromDomain(merchant)
	}
	return outputs, total, nil
}

// DeactivateMerchant cascades active=false to every product of the
// merchant in one atomic scope. Idempotent: repeating it is a no-op.
// Reactivation does not cascade back.
func (uc *DefaultMerchantUsecase) DeactivateMerchant(ctx context.Context, merchantID string) error {
	err := uc.Tx.Do(ctx, func(ctx context.Context) error {
		if _, err := uc.MerchantRepo.GetByID(ctx, merchantID); err != nil {
			return err
		}
		if err := uc.MerchantRepo.SetActive(ctx, merchantID, false); err != nil {
			return err
		}
		return uc.ProductRepo.DeactivateByMerchant(ctx, merchantID)
	})
	if err != nil {
		return err
	}

	if uc.Metrics != nil {
		uc.Metrics.MerchantsDeactivated.Inc()
	}
	if uc.Logger != nil {
		uc.Logger.Info("merchant deactivated", zap.String("merchant_id", merchantID))
	}
	return nil
}

// GetRevenue sums sale amounts over the half-open interval [from, to).
func (uc *DefaultMerchantUsecase) GetRevenue(ctx context.Context, input *merchantdto.RevenueInput) (*merchantdto.RevenueOutput, error) {
	if !input.To.After(input.From) {
		return nil, fmt.Errorf("empty revenue interval: %w", domain.ErrValidation)
	}
	if _, err := uc.MerchantRepo.GetByID(ctx, input.MerchantID); err != nil {
		return nil, err
	}

	total, err := uc.TransactionRepo.SumAmounts(ctx, input.MerchantID, input.From, input.To)
	if err != nil {
		return nil, err
	}

	return &merchantdto.RevenueOutput{
		MerchantID: input.MerchantID,
		From:       input.From,
		To:         input.To,
		Total:      total.Round(2),
	}, nil
}
