package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sagarm/storefront/internal/common"
	"github.com/sagarm/storefront/internal/logging"
	"github.com/sagarm/storefront/internal/server/products"
	"github.com/sagarm/storefront/internal/server/users"
)

// Handlers exposes the storefront HTTP API over the cart and product
// services. Cart routes require the auth middleware; product routes are
// public.
type Handlers struct {
	users    *users.Service
	products *products.Service
	log      logging.Logger
}

func NewHandlers(users *users.Service, products *products.Service, log logging.Logger) *Handlers {
	return &Handlers{users: users, products: products, log: log}
}

type cartMutation struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func (h *Handlers) getCart(c *gin.Context) {
	subject := c.GetString(subjectKey)

	cart, err := h.users.Cart(c.Request.Context(), subject)
	if err != nil {
		h.log.Error(c.Request.Context(), "failed to fetch cart", "subject", subject, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while fetching cart."})
		return
	}

	c.JSON(http.StatusOK, cart)
}

func (h *Handlers) addToCart(c *gin.Context) {
	subject := c.GetString(subjectKey)

	var req cartMutation
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return
	}

	cart, err := h.users.AddItem(c.Request.Context(), subject, req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		case errors.Is(err, common.ErrEmptyProductID):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Product id is required."})
		default:
			h.log.Error(c.Request.Context(), "failed to add item to cart", "subject", subject, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error adding item to cart."})
		}
		return
	}

	c.JSON(http.StatusOK, cart)
}

func (h *Handlers) removeFromCart(c *gin.Context) {
	subject := c.GetString(subjectKey)

	var req cartMutation
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return
	}

	cart, err := h.users.RemoveItem(c.Request.Context(), subject, req.ProductID)
	if err != nil {
		if errors.Is(err, common.ErrEmptyProductID) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Product id is required."})
			return
		}
		h.log.Error(c.Request.Context(), "failed to remove item from cart", "subject", subject, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error removing item from cart."})
		return
	}

	c.JSON(http.StatusOK, cart)
}

func (h *Handlers) updateQuantity(c *gin.Context) {
	subject := c.GetString(subjectKey)

	var req cartMutation
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return
	}

	cart, err := h.users.UpdateQuantity(c.Request.Context(), subject, req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, common.ErrEmptyProductID) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Product id is required."})
			return
		}
		h.log.Error(c.Request.Context(), "failed to update item quantity", "subject", subject, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating item quantity."})
		return
	}

	c.JSON(http.StatusOK, cart)
}

func (h *Handlers) listProducts(c *gin.Context) {
	var filter products.Filter
	filter.Category = c.Query("category")
	filter.SortBy = c.Query("sortBy")

	if raw := c.Query("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "maxPrice must be a number."})
			return
		}
		filter.MaxPrice = &v
	}

	items, err := h.products.List(c.Request.Context(), filter)
	if err != nil {
		h.log.Error(c.Request.Context(), "failed to list products", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching products"})
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handlers) seedProducts(c *gin.Context) {
	items, err := h.products.Seed(c.Request.Context())
	if err != nil {
		h.log.Error(c.Request.Context(), "failed to seed products", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error seeding products"})
		return
	}

	c.JSON(http.StatusCreated, items)
}

func (h *Handlers) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
