package usecase

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"store_service/internal/domain"
)

func init() {
	passwordCost = bcrypt.MinCost
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type mockStoreRepo struct {
	createFn     func(ctx context.Context, s *domain.Store) (*domain.Store, error)
	getByIDFn    func(ctx context.Context, id int) (*domain.Store, error)
	getByEmailFn func(ctx context.Context, email string) (*domain.Store, error)
	updateFn     func(ctx context.Context, id int, updates map[string]interface{}) (*domain.Store, error)
	deleteFn     func(ctx context.Context, id int) error
}

func (m *mockStoreRepo) CreateStore(ctx context.Context, s *domain.Store) (*domain.Store, error) {
	return m.createFn(ctx, s)
}

func (m *mockStoreRepo) GetStoreByID(ctx context.Context, id int) (*domain.Store, error) {
	if m.getByIDFn == nil {
		return nil, fmt.Errorf("store with id %d not found", id)
	}
	return m.getByIDFn(ctx, id)
}

func (m *mockStoreRepo) GetStoreByEmail(ctx context.Context, email string) (*domain.Store, error) {
	return m.getByEmailFn(ctx, email)
}

func (m *mockStoreRepo) UpdateStore(ctx context.Context, id int, updates map[string]interface{}) (*domain.Store, error) {
	return m.updateFn(ctx, id, updates)
}

func (m *mockStoreRepo) DeleteStore(ctx context.Context, id int) error {
	return m.deleteFn(ctx, id)
}

type mockProductRepo struct {
	createFn func(ctx context.Context, p *domain.Product) (*domain.Product, error)
	listFn   func(ctx context.Context, storeID int) ([]domain.Product, error)
	deleteFn func(ctx context.Context, storeID, productID int) error
}

func (m *mockProductRepo) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	return m.createFn(ctx, p)
}

func (m *mockProductRepo) GetProductByID(context.Context, int) (*domain.Product, error) {
	return nil, fmt.Errorf("not used")
}

func (m *mockProductRepo) ListProductsByStore(ctx context.Context, storeID int) ([]domain.Product, error) {
	return m.listFn(ctx, storeID)
}

func (m *mockProductRepo) DeleteProduct(ctx context.Context, storeID, productID int) error {
	return m.deleteFn(ctx, storeID, productID)
}

// memoryLogRepo records every entry it is given.
type memoryLogRepo struct {
	mu      sync.Mutex
	entries []domain.LogEntry
	err     error
}

func (m *memoryLogRepo) CreateLog(_ context.Context, e *domain.LogEntry) (*domain.LogEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	e.ID = len(m.entries) + 1
	m.entries = append(m.entries, *e)
	return e, nil
}

func (m *memoryLogRepo) ListRecentLogs(_ context.Context, limit int) ([]domain.LogEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.LogEntry{}
	for i := len(m.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.entries[i])
	}
	return out, nil
}

func (m *memoryLogRepo) messages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e.Level+" "+e.Endpoint+" "+e.Message)
	}
	return out
}
