package admin

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"projectstore_backend/internal/models"
	"projectstore_backend/internal/store"
)

type OrderHandler struct {
	Orders store.OrderStore
}

//
// 🔐 POST /api/order/list — toutes les commandes (panneau admin)
//
func (h *OrderHandler) ListAll(c *gin.Context) {
	orders, err := h.Orders.ListAll(c.Request.Context())
	if err != nil {
		log.Println("❌ Erreur lecture commandes:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur lecture commandes"})
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}

//
// 🔐 POST /api/order/status
//
// Le statut est un enum typé : toute valeur hors des cinq états connus
// est rejetée. L'ordre des transitions n'est volontairement pas
// contraint (corrections admin).
//
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		OrderID string `json:"orderId" binding:"required"`
		Status  string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Données invalides"})
		return
	}

	status := models.OrderStatus(req.Status)
	if !status.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Statut invalide: " + req.Status})
		return
	}

	if err := h.Orders.UpdateStatus(c.Request.Context(), req.OrderID, status); err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Commande introuvable"})
			return
		}
		log.Println("❌ Erreur mise à jour statut:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur mise à jour statut"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Statut mis à jour"})
}
