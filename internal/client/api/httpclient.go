package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sagarm/storefront/internal/client/models"
	"github.com/sagarm/storefront/internal/common"
)

// HTTPClient talks JSON over HTTP to the storefront backend.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient returns a client for the backend at baseURL
// (e.g. "http://127.0.0.1:5001"). Every request is bounded by timeout.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type cartMutation struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity,omitempty"`
}

func (c *HTTPClient) FetchCart(ctx context.Context, token string) ([]models.LineItem, error) {
	var items []models.LineItem
	if err := c.doJSON(ctx, http.MethodGet, "/api/cart", token, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) PushAdd(ctx context.Context, token, productID string, quantity int) error {
	return c.doJSON(ctx, http.MethodPost, "/api/cart/add", token,
		cartMutation{ProductID: productID, Quantity: quantity}, nil)
}

func (c *HTTPClient) PushRemove(ctx context.Context, token, productID string) error {
	return c.doJSON(ctx, http.MethodPost, "/api/cart/remove", token,
		cartMutation{ProductID: productID}, nil)
}

func (c *HTTPClient) PushUpdate(ctx context.Context, token, productID string, quantity int) error {
	// quantity is sent even when zero: zero means "remove" on the update route
	type updateBody struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	return c.doJSON(ctx, http.MethodPost, "/api/cart/update", token,
		updateBody{ProductID: productID, Quantity: quantity}, nil)
}

func (c *HTTPClient) Products(ctx context.Context, f ProductFilter) ([]models.Product, error) {
	q := url.Values{}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.MaxPrice > 0 {
		q.Set("maxPrice", strconv.FormatFloat(f.MaxPrice, 'f', -1, 64))
	}
	if f.SortBy != "" {
		q.Set("sortBy", f.SortBy)
	}

	path := "/api/products"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var products []models.Product
	if err := c.doJSON(ctx, http.MethodGet, path, "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// doJSON performs one JSON request/response cycle. Transport failures map to
// ErrUnavailable; 401/404/5xx map to their sentinel errors.
func (c *HTTPClient) doJSON(ctx context.Context, method, path, token string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	case resp.StatusCode >= 400:
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
