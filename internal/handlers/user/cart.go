package user

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"projectstore_backend/internal/store"
)

type CartHandler struct {
	Carts    store.CartStore
	Products store.ProductStore
}

//
// 🟢 POST /api/cart/get
//
func (h *CartHandler) Get(c *gin.Context) {
	userID := c.GetString("user_id")

	cart, err := h.Carts.Get(c.Request.Context(), userID)
	if err != nil {
		log.Println("❌ Erreur lecture panier:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur lecture panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "cartData": cart})
}

//
// 🟢 POST /api/cart/add — incrémente la quantité de 1
//
func (h *CartHandler) Add(c *gin.Context) {
	userID := c.GetString("user_id")

	var req struct {
		ItemID string `json:"itemId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Données invalides"})
		return
	}

	// Le produit doit exister avant d'entrer dans un panier.
	if _, err := h.Products.FindByID(c.Request.Context(), req.ItemID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Projet introuvable"})
		return
	}

	if _, err := h.Carts.Add(c.Request.Context(), userID, req.ItemID); err != nil {
		log.Println("❌ Erreur ajout panier:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur ajout panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Ajouté au panier"})
}

//
// 🟢 POST /api/cart/update — écrase la quantité (0 retire l'entrée)
//
func (h *CartHandler) Update(c *gin.Context) {
	userID := c.GetString("user_id")

	var req struct {
		ItemID   string `json:"itemId" binding:"required"`
		Quantity *int64 `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Données invalides"})
		return
	}

	if *req.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Quantité invalide"})
		return
	}

	if err := h.Carts.Set(c.Request.Context(), userID, req.ItemID, *req.Quantity); err != nil {
		log.Println("❌ Erreur mise à jour panier:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur mise à jour panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Panier mis à jour"})
}

//
// ❌ POST /api/cart/delete — sans effet si l'entrée n'existe pas
//
func (h *CartHandler) Delete(c *gin.Context) {
	userID := c.GetString("user_id")

	var req struct {
		ItemID string `json:"itemId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Données invalides"})
		return
	}

	if err := h.Carts.Remove(c.Request.Context(), userID, req.ItemID); err != nil {
		log.Println("❌ Erreur suppression panier:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur suppression panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Produit retiré du panier"})
}
