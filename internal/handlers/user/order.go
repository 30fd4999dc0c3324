package user

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"projectstore_backend/internal/models"
	"projectstore_backend/internal/store"
	"projectstore_backend/internal/utils"
)

type OrderHandler struct {
	Orders store.OrderStore
	Carts  store.CartStore
	Mailer utils.Mailer // nil : pas d'envoi de mail
}

//
// 🟢 POST /api/order/place
//
// Persiste la commande, vide le panier, puis tente l'envoi du mail de
// téléchargement. L'échec du mail est loggé mais ne fait jamais
// échouer la commande.
func (h *OrderHandler) Place(c *gin.Context) {
	userID := c.GetString("user_id")

	var req struct {
		Items         []models.OrderItem `json:"items" binding:"required,min=1"`
		Amount        float64            `json:"amount" binding:"required"`
		Address       models.Address     `json:"address" binding:"required"`
		PaymentMethod string             `json:"paymentMethod" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Données invalides"})
		return
	}

	order := models.Order{
		UserID:        userID,
		Items:         req.Items,
		Address:       req.Address,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Status:        models.StatusPlaced,
	}

	if err := h.Orders.Create(c.Request.Context(), &order); err != nil {
		log.Println("❌ Erreur création commande:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur création commande"})
		return
	}

	// Deux écritures séparées : si le vidage échoue, la commande reste
	// valide et le panier se videra à la prochaine tentative.
	if err := h.Carts.Clear(c.Request.Context(), userID); err != nil {
		log.Println("⚠️ Erreur vidage panier après commande:", err)
	}

	h.sendDownloadLinks(order)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Commande enregistrée", "order": order})
}

func (h *OrderHandler) sendDownloadLinks(order models.Order) {
	if h.Mailer == nil || order.Address.Email == "" {
		return
	}

	html, ok := utils.DownloadLinksHTML(order)
	if !ok {
		log.Println("ℹ️ Aucun article téléchargeable dans la commande", order.ID.Hex())
		return
	}

	if err := h.Mailer.Send(order.Address.Email, "Vos téléchargements sont prêts !", html); err != nil {
		log.Println("⚠️ Échec envoi mail de téléchargement:", err)
		return
	}
	log.Println("📧 Mail de téléchargement envoyé à", order.Address.Email)
}

//
// 🟢 POST /api/order/userorders
//
func (h *OrderHandler) MyOrders(c *gin.Context) {
	userID := c.GetString("user_id")

	orders, err := h.Orders.ListByUser(c.Request.Context(), userID)
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
