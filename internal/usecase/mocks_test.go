package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/kbf-dev/galerie-commerce-service/internal/domain"
	"github.com/shopspring/decimal"
)

type memUserRepo struct {
	store map[string]domain.User
}

func (r *memUserRepo) GetByID(_ context.Context, userID string) (*domain.User, error) {
	user, ok := r.store[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &user, nil
}

type memMerchantRepo struct {
	mu    sync.Mutex
	store map[string]domain.Merchant
}

func newMemMerchantRepo() *memMerchantRepo {
	return &memMerchantRepo{store: make(map[string]domain.Merchant)}
}

func (r *memMerchantRepo) Create(_ context.Context, merchant *domain.Merchant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.store {
		if existing.UserID == merchant.UserID {
			return domain.ErrConflict
		}
	}
	if merchant.RegistrationDate.IsZero() {
		merchant.RegistrationDate = time.Now().UTC()
	}
	r.store[merchant.ID] = *merchant
	return nil
}

func (r *memMerchantRepo) GetByID(_ context.Context, merchantID string) (*domain.Merchant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	merchant, ok := r.store[merchantID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &merchant, nil
}

func (r *memMerchantRepo) GetByUserID(_ context.Context, userID string) (*domain.Merchant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id := range r.store {
		if r.store[id].UserID == userID {
			merchant := r.store[id]
			return &merchant, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memMerchantRepo) Update(_ context.Context, merchant *domain.Merchant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.store[merchant.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store[merchant.ID] = *merchant
	return nil
}

func (r *memMerchantRepo) SetActive(_ context.Context, merchantID string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	merchant, ok := r.store[merchantID]
	if !ok {
		return domain.ErrNotFound
	}
	merchant.IsActive = active
	r.store[merchantID] = merchant
	return nil
}

func (r *memMerchantRepo) List(_ context.Context, filters domain.MerchantFilters, page, size int) ([]*domain.Merchant, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*domain.Merchant
	for id := range r.store {
		merchant := r.store[id]
		if filters.ActiveOnly && !merchant.IsActive {
			continue
		}
		if filters.BrandName != "" && merchant.BrandName != filters.BrandName {
			continue
		}
		matched = append(matched, &merchant)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].BrandName < matched[j].BrandName })
	return pageSlice(matched, page, size), int64(len(matched)), nil
}

type memProductRepo struct {
	mu    sync.Mutex
	store map[string]domain.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{store: make(map[string]domain.Product)}
}

func (r *memProductRepo) Create(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[product.ID] = *product
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, productID string) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.store[productID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &product, nil
}

func (r *memProductRepo) Update(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.store[product.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store[product.ID] = *product
	return nil
}

func (r *memProductRepo) LockForUpdate(ctx context.Context, productID string) (*domain.Product, error) {
	return r.GetByID(ctx, productID)
}

func (r *memProductRepo) ApplyStockDelta(_ context.Context, productID string, delta int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.store[productID]
	if !ok {
		return domain.ErrNotFound
	}
	if product.Stock+delta < 0 {
		return domain.ErrInsufficientStock
	}
	product.Stock += delta
	r.store[productID] = product
	return nil
}

func (r *memProductRepo) DeactivateByMerchant(_ context.Context, merchantID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, product := range r.store {
		if product.MerchantID == merchantID {
			product.IsActive = false
			r.store[id] = product
		}
	}
	return nil
}

func (r *memProductRepo) List(_ context.Context, merchantID string, filters domain.ProductFilters, page, size int) ([]*domain.Product, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*domain.Product
	for id := range r.store {
		product := r.store[id]
		if merchantID != "" && product.MerchantID != merchantID {
			continue
		}
		if filters.Category != "" && product.Category != filters.Category {
			continue
		}
		if filters.ActiveOnly && !product.IsActive {
			continue
		}
		matched = append(matched, &product)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })
	return pageSlice(matched, page, size), int64(len(matched)), nil
}

type memTransactionRepo struct {
	mu       sync.Mutex
	rows     []domain.Transaction
	products *memProductRepo
}

func (r *memTransactionRepo) Insert(_ context.Context, transaction *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, *transaction)
	return nil
}

func (r *memTransactionRepo) GetByID(_ context.Context, transactionID string) (*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].ID == transactionID {
			row := r.rows[i]
			return &row, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memTransactionRepo) ListByProduct(_ context.Context, productID string, page, size int) ([]*domain.Transaction, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*domain.Transaction
	for i := range r.rows {
		if r.rows[i].ProductID == productID {
			row := r.rows[i]
			matched = append(matched, &row)
		}
	}
	return pageSlice(matched, page, size), int64(len(matched)), nil
}

func (r *memTransactionRepo) SumAmounts(_ context.Context, merchantID string, from, to time.Time) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := decimal.Zero
	for i := range r.rows {
		row := r.rows[i]
		product, err := r.products.GetByID(context.Background(), row.ProductID)
		if err != nil || product.MerchantID != merchantID {
			continue
		}
		if row.TransactionDate.Before(from) || !row.TransactionDate.Before(to) {
			continue
		}
		total = total.Add(row.Amount)
	}
	return total, nil
}

// passthroughTx runs fn directly; rollback fidelity is covered by the
// postgres-backed manager, not these in-memory doubles.
type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type memSink struct {
	mu     sync.Mutex
	events []domain.LowStockEvent
	fail   error
}

func (s *memSink) NotifyLowStock(_ context.Context, event domain.LowStockEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	s.events = append(s.events, event)
	return nil
}

func (s *memSink) received() []domain.LowStockEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.LowStockEvent(nil), s.events...)
}

func pageSlice[T any](items []*T, page, size int) []*T {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = len(items)
	}
	offset := (page - 1) * size
	if offset >= len(items) {
		return nil
	}
	end := offset + size
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
