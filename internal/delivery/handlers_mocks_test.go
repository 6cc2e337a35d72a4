package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"store_service/internal/domain"
	"store_service/internal/sentiment"
	"store_service/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

var errNotMocked = errors.New("not mocked")

var positiveClassifier = domain.ClassifierFunc(func(context.Context, string) (string, error) {
	return domain.LabelPositive, nil
})

type mockStoreUseCase struct {
	registerFn func(ctx context.Context, reg *domain.StoreRegistration) (*domain.Store, error)
	getFn      func(ctx context.Context, id int) (*domain.Store, error)
	updateFn   func(ctx context.Context, id int, updates map[string]interface{}) (*domain.Store, error)
	deleteFn   func(ctx context.Context, id int) error
	loginFn    func(ctx context.Context, creds domain.Credentials) (*domain.Store, error)
}

func (m *mockStoreUseCase) RegisterStore(ctx context.Context, reg *domain.StoreRegistration) (*domain.Store, error) {
	if m.registerFn == nil {
		return nil, errNotMocked
	}
	return m.registerFn(ctx, reg)
}

func (m *mockStoreUseCase) GetStore(ctx context.Context, id int) (*domain.Store, error) {
	if m.getFn == nil {
		return nil, errNotMocked
	}
	return m.getFn(ctx, id)
}

func (m *mockStoreUseCase) UpdateStore(ctx context.Context, id int, updates map[string]interface{}) (*domain.Store, error) {
	if m.updateFn == nil {
		return nil, errNotMocked
	}
	return m.updateFn(ctx, id, updates)
}

func (m *mockStoreUseCase) DeleteStore(ctx context.Context, id int) error {
	if m.deleteFn == nil {
		return errNotMocked
	}
	return m.deleteFn(ctx, id)
}

func (m *mockStoreUseCase) Login(ctx context.Context, creds domain.Credentials) (*domain.Store, error) {
	if m.loginFn == nil {
		return nil, errNotMocked
	}
	return m.loginFn(ctx, creds)
}

type mockProductUseCase struct {
	addFn    func(ctx context.Context, storeID int, in *domain.NewProduct) (*domain.Product, error)
	listFn   func(ctx context.Context, storeID int) ([]domain.Product, error)
	deleteFn func(ctx context.Context, storeID, productID int) error
}

func (m *mockProductUseCase) AddProduct(ctx context.Context, storeID int, in *domain.NewProduct) (*domain.Product, error) {
	if m.addFn == nil {
		return nil, errNotMocked
	}
	return m.addFn(ctx, storeID, in)
}

func (m *mockProductUseCase) ListProducts(ctx context.Context, storeID int) ([]domain.Product, error) {
	if m.listFn == nil {
		return nil, errNotMocked
	}
	return m.listFn(ctx, storeID)
}

func (m *mockProductUseCase) DeleteProduct(ctx context.Context, storeID, productID int) error {
	if m.deleteFn == nil {
		return errNotMocked
	}
	return m.deleteFn(ctx, storeID, productID)
}

type mockLogUseCase struct {
	recordFn func(ctx context.Context, e *domain.LogEntry) (*domain.LogEntry, error)
	listFn   func(ctx context.Context, limit int) ([]domain.LogEntry, error)
	audited  []domain.LogEntry
}

func (m *mockLogUseCase) RecordLog(ctx context.Context, e *domain.LogEntry) (*domain.LogEntry, error) {
	if m.recordFn == nil {
		return nil, errNotMocked
	}
	return m.recordFn(ctx, e)
}

func (m *mockLogUseCase) ListLogs(ctx context.Context, limit int) ([]domain.LogEntry, error) {
	if m.listFn == nil {
		return nil, errNotMocked
	}
	return m.listFn(ctx, limit)
}

func (m *mockLogUseCase) Audit(_ context.Context, level, message, userEmail, endpoint string) {
	m.audited = append(m.audited, domain.LogEntry{Level: level, Message: message, UserEmail: userEmail, Endpoint: endpoint})
}

type fakePinger struct {
	err error
}

func (f fakePinger) PingContext(context.Context) error { return f.err }

type testDeps struct {
	stores     *mockStoreUseCase
	products   *mockProductUseCase
	logs       *mockLogUseCase
	classifier domain.Classifier
	tracker    *sentiment.Tracker
	db         Pinger
}

func newTestRouter(t *testing.T, d testDeps) *gin.Engine {
	t.Helper()
	if d.stores == nil {
		d.stores = &mockStoreUseCase{}
	}
	if d.products == nil {
		d.products = &mockProductUseCase{}
	}
	if d.logs == nil {
		d.logs = &mockLogUseCase{}
	}
	if d.classifier == nil {
		d.classifier = positiveClassifier
	}
	if d.tracker == nil {
		d.tracker = sentiment.NewTracker(0)
	}
	if d.db == nil {
		d.db = fakePinger{}
	}
	logger := quietLogger()
	return NewRouter(RouterDeps{
		Stores:    d.stores,
		Products:  d.products,
		Logs:      d.logs,
		Sentiment: usecase.NewSentimentUseCase(d.tracker, d.classifier, nil, logger),
		DB:        d.db,
		Logger:    logger,
	})
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
