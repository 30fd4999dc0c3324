package user

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projectstore_backend/internal/models"
	"projectstore_backend/internal/store"
)

func withUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newCartRouter(t *testing.T, userID string) (*gin.Engine, *CartHandler) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	products := store.NewMemoryProductStore()
	require.NoError(t, products.Create(context.Background(), &models.Product{Title: "Compilateur maison", Price: 49.0}))

	h := &CartHandler{
		Carts:    store.NewMemoryCartStore(),
		Products: products,
	}

	r := gin.New()
	grp := r.Group("/api/cart", withUser(userID))
	grp.POST("/get", h.Get)
	grp.POST("/add", h.Add)
	grp.POST("/update", h.Update)
	grp.POST("/delete", h.Delete)
	return r, h
}

func firstProductID(t *testing.T, h *CartHandler) string {
	t.Helper()
	products, err := h.Products.List(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, products)
	return products[0].ID.Hex()
}

func TestCartAddDefaultsToOne(t *testing.T) {
	r, h := newCartRouter(t, "u1")
	pid := firstProductID(t, h)

	w := postJSON(t, r, "/api/cart/add", gin.H{"itemId": pid})
	assert.Equal(t, http.StatusOK, w.Code)

	cart, err := h.Carts.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), cart[pid])

	// Deuxième ajout : incrément, pas d'écrasement.
	postJSON(t, r, "/api/cart/add", gin.H{"itemId": pid})
	cart, err = h.Carts.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), cart[pid])
}

func TestCartAddUnknownProduct(t *testing.T) {
	r, _ := newCartRouter(t, "u1")

	w := postJSON(t, r, "/api/cart/add", gin.H{"itemId": "0123456789abcdef01234567"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartUpdateRejectsNegativeQuantity(t *testing.T) {
	r, h := newCartRouter(t, "u1")
	pid := firstProductID(t, h)

	postJSON(t, r, "/api/cart/add", gin.H{"itemId": pid})

	w := postJSON(t, r, "/api/cart/update", gin.H{"itemId": pid, "quantity": -2})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// La quantité d'origine n'a pas bougé.
	cart, err := h.Carts.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), cart[pid])
}

func TestCartUpdateZeroRemovesEntry(t *testing.T) {
	r, h := newCartRouter(t, "u1")
	pid := firstProductID(t, h)

	postJSON(t, r, "/api/cart/add", gin.H{"itemId": pid})

	w := postJSON(t, r, "/api/cart/update", gin.H{"itemId": pid, "quantity": 0})
	assert.Equal(t, http.StatusOK, w.Code)

	cart, err := h.Carts.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.NotContains(t, cart, pid)
}

func TestCartUpdateOverwritesQuantity(t *testing.T) {
	r, h := newCartRouter(t, "u1")
	pid := firstProductID(t, h)

	postJSON(t, r, "/api/cart/add", gin.H{"itemId": pid})

	w := postJSON(t, r, "/api/cart/update", gin.H{"itemId": pid, "quantity": 5})
	assert.Equal(t, http.StatusOK, w.Code)

	cart, err := h.Carts.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(5), cart[pid])
}

func TestCartDeleteAbsentEntryIsNoOp(t *testing.T) {
	r, _ := newCartRouter(t, "u1")

	w := postJSON(t, r, "/api/cart/delete", gin.H{"itemId": "jamais-ajouté"})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestCartGetReturnsFullMapping(t *testing.T) {
	r, h := newCartRouter(t, "u1")
	pid := firstProductID(t, h)

	postJSON(t, r, "/api/cart/add", gin.H{"itemId": pid})
	postJSON(t, r, "/api/cart/add", gin.H{"itemId": pid})

	w := postJSON(t, r, "/api/cart/get", gin.H{})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success  bool             `json:"success"`
		CartData map[string]int64 `json:"cartData"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(2), resp.CartData[pid])
}
