package sale

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/kbf-dev/galerie-commerce-service/internal/domain"
	"github.com/shopspring/decimal"
)

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
	return paginate(matched, page, size), int64(len(matched)), nil
}

func (r *memProductRepo) snapshot() map[string]domain.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := make(map[string]domain.Product, len(r.store))
	for id, product := range r.store {
		snap[id] = product
	}
	return snap
}

func (r *memProductRepo) restore(snap map[string]domain.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store = snap
}

type memTransactionRepo struct {
	mu       sync.Mutex
	rows     []domain.Transaction
	products *memProductRepo

	failInsert error
}

func newMemTransactionRepo(products *memProductRepo) *memTransactionRepo {
	return &memTransactionRepo{products: products}
}

func (r *memTransactionRepo) Insert(_ context.Context, transaction *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failInsert != nil {
		return r.failInsert
	}
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
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].TransactionDate.After(matched[j].TransactionDate)
	})
	return paginate(matched, page, size), int64(len(matched)), nil
}

func (r *memTransactionRepo) SumAmounts(_ context.Context, merchantID string, from, to time.Time) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := decimal.Zero
	products := r.products.snapshot()
	for i := range r.rows {
		row := r.rows[i]
		product, ok := products[row.ProductID]
		if !ok || product.MerchantID != merchantID {
			continue
		}
		if row.TransactionDate.Before(from) || !row.TransactionDate.Before(to) {
			continue
		}
		total = total.Add(row.Amount)
	}
	return total, nil
}

func (r *memTransactionRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

func (r *memTransactionRepo) snapshot() []domain.Transaction {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Transaction(nil), r.rows...)
}

func (r *memTransactionRepo) restore(snap []domain.Transaction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = snap
}

// memTxManager mimics rollback by snapshotting the in-memory stores
// before fn and restoring them when fn fails. Scopes are serialized on
// a mutex, the way row locks serialize them against the real store.
type memTxManager struct {
	mu           sync.Mutex
	products     *memProductRepo
	transactions *memTransactionRepo
}

func (m *memTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	productSnap := m.products.snapshot()
	var transactionSnap []domain.Transaction
	if m.transactions != nil {
		transactionSnap = m.transactions.snapshot()
	}
	if err := fn(ctx); err != nil {
		m.products.restore(productSnap)
		if m.transactions != nil {
			m.transactions.restore(transactionSnap)
		}
		return err
	}
	return nil
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

func paginate[T any](items []*T, page, size int) []*T {
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
