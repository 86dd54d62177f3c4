package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/qrmenupro/qrmenu-golang/internal/assets"
	"github.com/qrmenupro/qrmenu-golang/internal/auth"
	"github.com/qrmenupro/qrmenu-golang/internal/handlers"
	"github.com/qrmenupro/qrmenu-golang/internal/menu"
	"github.com/qrmenupro/qrmenu-golang/internal/models"
	"github.com/qrmenupro/qrmenu-golang/internal/routes"
)

// --- Mock Stores ---
// The services are real; only the persistence underneath is mocked, so
// these tests exercise the full route → handler → service path.

type mockCategoryStore struct {
	categories []models.Category
	getResult  *models.Category
	getErr     error
	updateErr  error
	deleteErr  error

	updatedFields bson.M
}

func (m *mockCategoryStore) List(ctx context.Context, activeOnly bool) ([]models.Category, error) {
	if activeOnly {
		active := []models.Category{}
		for _, c := range m.categories {
			if c.IsActive {
				active = append(active, c)
			}
		}
		return active, nil
	}
	return m.categories, nil
}

func (m *mockCategoryStore) GetByID(ctx context.Context, id string) (*models.Category, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.getResult, nil
}

func (m *mockCategoryStore) Insert(ctx context.Context, category models.Category) (*models.Category, error) {
	category.ID = primitive.NewObjectID()
	m.getResult = &category
	return &category, nil
}

func (m *mockCategoryStore) UpdateByID(ctx context.Context, id string, fields bson.M) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updatedFields = fields
	return nil
}

func (m *mockCategoryStore) DeleteByID(ctx context.Context, id string) error {
	return m.deleteErr
}

type mockProductStore struct {
	products  []models.Product
	getResult *models.Product
	getErr    error
	updateErr error
	deleteErr error

	productCount int64
}

func (m *mockProductStore) List(ctx context.Context, categoryID string, activeOnly bool) ([]models.Product, error) {
	return m.products, nil
}

func (m *mockProductStore) GetByID(ctx context.Context, id string) (*models.Product, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.getResult, nil
}

func (m *mockProductStore) Insert(ctx context.Context, product models.Product) (*models.Product, error) {
	product.ID = primitive.NewObjectID()
	m.getResult = &product
	return &product, nil
}

func (m *mockProductStore) UpdateByID(ctx context.Context, id string, fields bson.M) error {
	return m.updateErr
}

func (m *mockProductStore) DeleteByID(ctx context.Context, id string) error {
	return m.deleteErr
}

func (m *mockProductStore) CountByCategory(ctx context.Context, categoryID string) (int64, error) {
	return m.productCount, nil
}

// --- Test App ---

type testApp struct {
	router     *gin.Engine
	categories *mockCategoryStore
	products   *mockProductStore
	token      string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	categories := &mockCategoryStore{}
	products := &mockProductStore{}

	tokens := auth.NewTokenService("test-secret", 30*time.Minute)
	token, err := tokens.Issue("admin")
	assert.NoError(t, err)

	assetService, err := assets.NewService(t.TempDir())
	assert.NoError(t, err)

	h := &handlers.Handlers{
		Categories:    menu.NewCategoryService(categories, products),
		Products:      menu.NewProductService(products, categories),
		Tokens:        tokens,
		Assets:        assetService,
		AdminUsername: "admin",
		AdminPassword: "admin123",
	}

	return &testApp{
		router:     routes.SetupRouter(h, t.TempDir()),
		categories: categories,
		products:   products,
		token:      token,
	}
}

func (a *testApp) do(method, path, body string, authed bool) *httptest.ResponseRecorder {
	token := ""
	if authed {
		token = a.token
	}
	return a.doWithToken(method, path, body, token)
}

func (a *testApp) doWithToken(method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}
