package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarm/storefront/internal/common"
	"github.com/sagarm/storefront/internal/logging"
	"github.com/sagarm/storefront/internal/server/auth"
	"github.com/sagarm/storefront/internal/server/products"
	"github.com/sagarm/storefront/internal/server/users"
)

var testSecret = []byte("test-secret")

type fakeUsersRepo struct {
	carts map[string][]users.LineItem
}

func (r *fakeUsersRepo) GetOrCreate(_ context.Context, subject string) (*users.User, error) {
	if _, ok := r.carts[subject]; !ok {
		r.carts[subject] = []users.LineItem{}
	}
	return &users.User{ID: "u-" + subject, Subject: subject, Cart: r.carts[subject]}, nil
}

func (r *fakeUsersRepo) SaveCart(_ context.Context, subject string, items []users.LineItem) error {
	r.carts[subject] = items
	return nil
}

type fakeProductsRepo struct {
	items []products.Product
}

func (r *fakeProductsRepo) Find(_ context.Context, f products.Filter) ([]products.Product, error) {
	var out []products.Product
	for _, p := range r.items {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductsRepo) GetByID(_ context.Context, id string) (*products.Product, error) {
	for _, p := range r.items {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeProductsRepo) ReplaceAll(_ context.Context, items []products.Product) error {
	r.items = items
	return nil
}

func newTestServer(t *testing.T) (*Server, *fakeProductsRepo) {
	t.Helper()

	usersRepo := &fakeUsersRepo{carts: make(map[string][]users.LineItem)}
	productsRepo := &fakeProductsRepo{items: []products.Product{
		{ID: "p1", Name: "Shirt", Image: "/i/1.jpg", Price: 49.99, Category: "Men"},
		{ID: "p2", Name: "Dress", Image: "/i/2.jpg", Price: 79.99, Category: "Women"},
	}}

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	userSvc := users.NewService(usersRepo, productsRepo)
	productSvc := products.NewService(productsRepo)
	h := NewHandlers(userSvc, productSvc, log)

	return NewServer(":0", auth.NewJWTVerifier(testSecret), h, log), productsRepo
}

func doRequest(t *testing.T, s *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func validToken(t *testing.T, subject string) string {
	t.Helper()
	token, err := auth.GenerateToken(subject, testSecret, time.Minute)
	require.NoError(t, err)
	return token
}

func decodeCart(t *testing.T, rec *httptest.ResponseRecorder) []users.LineItem {
	t.Helper()
	var cart []users.LineItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	return cart
}

func TestCartRoutes_RequireToken(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/cart", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "message")
}

func TestCartRoutes_RejectInvalidToken(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/cart", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCartRoutes_RejectExpiredToken(t *testing.T) {
	s, _ := newTestServer(t)

	token, err := auth.GenerateToken("alice", testSecret, -time.Minute)
	require.NoError(t, err)

	rec := doRequest(t, s, http.MethodGet, "/api/cart", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetCart_NewUserIsEmpty(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/cart", validToken(t, "alice"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestAddToCart(t *testing.T) {
	s, _ := newTestServer(t)
	token := validToken(t, "alice")

	rec := doRequest(t, s, http.MethodPost, "/api/cart/add", token,
		map[string]any{"productId": "p1", "quantity": 2})
	require.Equal(t, http.StatusOK, rec.Code)

	cart := decodeCart(t, rec)
	require.Len(t, cart, 1)
	assert.Equal(t, "Shirt", cart[0].Name)
	assert.Equal(t, 2, cart[0].Quantity)
}

func TestAddToCart_UnknownProduct(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/cart/add", validToken(t, "alice"),
		map[string]any{"productId": "ghost"})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Product not found")
}

func TestAddToCart_MissingProductID(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/cart/add", validToken(t, "alice"),
		map[string]any{"quantity": 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateQuantity_NonPositiveRemoves(t *testing.T) {
	s, _ := newTestServer(t)
	token := validToken(t, "alice")

	rec := doRequest(t, s, http.MethodPost, "/api/cart/add", token,
		map[string]any{"productId": "p1", "quantity": 2})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, s, http.MethodPost, "/api/cart/update", token,
		map[string]any{"productId": "p1", "quantity": -5})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeCart(t, rec))
}

func TestRemoveFromCart_Idempotent(t *testing.T) {
	s, _ := newTestServer(t)
	token := validToken(t, "alice")

	rec := doRequest(t, s, http.MethodPost, "/api/cart/remove", token,
		map[string]any{"productId": "p1"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeCart(t, rec))
}

func TestListProducts_Public(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []products.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	assert.Len(t, items, 2)
}

func TestListProducts_Filters(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/products?category=Men&maxPrice=60", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []products.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ID)
}

func TestListProducts_BadMaxPrice(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/products?maxPrice=cheap", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSeedProducts(t *testing.T) {
	s, repo := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/products/seed", "", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var items []products.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	assert.NotEmpty(t, items)
	assert.Equal(t, len(items), len(repo.items))
}

func TestHealthz(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
