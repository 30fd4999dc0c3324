package admin

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

func newAdminRouter(t *testing.T) (*gin.Engine, *OrderHandler) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := &OrderHandler{Orders: store.NewMemoryOrderStore()}

	r := gin.New()
	r.POST("/api/order/list", h.ListAll)
	r.POST("/api/order/status", h.UpdateStatus)
	return r, h
}

func TestUpdateStatusChangesOnlyTargetOrder(t *testing.T) {
	r, h := newAdminRouter(t)
	ctx := context.Background()

	o1 := models.Order{UserID: "u1", Items: []models.OrderItem{{ProductID: "p1", Quantity: 1}}, Amount: 250, PaymentMethod: "cod"}
	o2 := models.Order{UserID: "u2", Items: []models.OrderItem{{ProductID: "p2", Quantity: 3}}, Amount: 400, PaymentMethod: "cod"}
	require.NoError(t, h.Orders.Create(ctx, &o1))
	require.NoError(t, h.Orders.Create(ctx, &o2))

	w := postJSON(t, r, "/api/order/status", gin.H{"orderId": o1.ID.Hex(), "status": "Shipped"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	orders, err := h.Orders.ListAll(ctx)
	require.NoError(t, err)

	for _, o := range orders {
		switch o.ID {
		case o1.ID:
			assert.Equal(t, models.StatusShipped, o.Status)
			// Seul le statut a changé.
			assert.Equal(t, o1.UserID, o.UserID)
			assert.Equal(t, o1.Amount, o.Amount)
			assert.Equal(t, o1.PaymentMethod, o.PaymentMethod)
			assert.Len(t, o.Items, len(o1.Items))
		case o2.ID:
			assert.Equal(t, models.StatusPlaced, o.Status)
		}
	}
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	r, h := newAdminRouter(t)
	ctx := context.Background()

	o := models.Order{UserID: "u1", Amount: 100}
	require.NoError(t, h.Orders.Create(ctx, &o))

	w := postJSON(t, r, "/api/order/status", gin.H{"orderId": o.ID.Hex(), "status": "Annulée"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	orders, err := h.Orders.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPlaced, orders[0].Status)
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	r, _ := newAdminRouter(t)

	w := postJSON(t, r, "/api/order/status", gin.H{"orderId": "0123456789abcdef01234567", "status": "Packing"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListAllReturnsEveryOrder(t *testing.T) {
	r, h := newAdminRouter(t)
	ctx := context.Background()

	require.NoError(t, h.Orders.Create(ctx, &models.Order{UserID: "u1", Amount: 100}))
	require.NoError(t, h.Orders.Create(ctx, &models.Order{UserID: "u2", Amount: 200}))

	w := postJSON(t, r, "/api/order/list", gin.H{})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool           `json:"success"`
		Orders  []models.Order `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Orders, 2)
}
