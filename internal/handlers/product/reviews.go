package product

import (
	"log"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"projectstore_backend/internal/models"
	"projectstore_backend/internal/store"
)

type ReviewHandler struct {
	Reviews store.ReviewStore
	Users   store.UserStore
}

//
// 🟢 POST /api/review/add
//
// Un seul avis par couple (utilisateur, produit) : une seconde
// soumission renvoie l'avis existant au lieu d'en créer un doublon.
//
func (h *ReviewHandler) Add(c *gin.Context) {
	userID := c.GetString("user_id")

	var req struct {
		ProductID  string `json:"productId" binding:"required"`
		Rating     int    `json:"rating" binding:"required,min=1,max=5"`
		ReviewText string `json:"reviewText" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Données invalides"})
		return
	}

	u, err := h.Users.FindByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Utilisateur introuvable"})
		return
	}

	if existing, err := h.Reviews.FindByUserAndProduct(c.Request.Context(), userID, req.ProductID); err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"success":        false,
			"message":        "Vous avez déjà laissé un avis sur ce projet. Modifiez votre avis existant.",
			"existingReview": existing,
		})
		return
	}

	review := models.Review{
		UserID:     userID,
		ProductID:  req.ProductID,
		UserName:   u.Name,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
	}

	if err := h.Reviews.Create(c.Request.Context(), &review); err != nil {
		if err == store.ErrDuplicate {
			// Soumission concurrente passée entre le check et l'insert.
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"message": "Vous avez déjà laissé un avis sur ce projet. Modifiez votre avis existant.",
			})
			return
		}
		log.Println("❌ Erreur création avis:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur création avis"})
		return
	}

	log.Printf("⭐ Avis créé pour le projet %s (note: %d/5)", req.ProductID, req.Rating)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Avis ajouté avec succès", "review": review})
}

//
// 🟢 POST /api/review/update — réservé au propriétaire de l'avis
//
func (h *ReviewHandler) Update(c *gin.Context) {
	userID := c.GetString("user_id")

	var req struct {
		ReviewID   string `json:"reviewId" binding:"required"`
		Rating     int    `json:"rating" binding:"required,min=1,max=5"`
		ReviewText string `json:"reviewText" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Données invalides"})
		return
	}

	review, err := h.Reviews.FindByID(c.Request.Context(), req.ReviewID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Avis introuvable"})
		return
	}
	if review.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Vous ne pouvez modifier que vos propres avis"})
		return
	}

	review.Rating = req.Rating
	review.ReviewText = req.ReviewText
	review.Date = time.Now()

	if err := h.Reviews.Update(c.Request.Context(), review); err != nil {
		log.Println("❌ Erreur mise à jour avis:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur mise à jour avis"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Avis mis à jour", "review": review})
}

//
// ❌ POST /api/review/delete — réservé au propriétaire de l'avis
//
func (h *ReviewHandler) Delete(c *gin.Context) {
	userID := c.GetString("user_id")

	var req struct {
		ReviewID string `json:"reviewId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Données invalides"})
		return
	}

	review, err := h.Reviews.FindByID(c.Request.Context(), req.ReviewID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Avis introuvable"})
		return
	}
	if review.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Vous ne pouvez supprimer que vos propres avis"})
		return
	}

	if err := h.Reviews.Delete(c.Request.Context(), req.ReviewID); err != nil {
		log.Println("❌ Erreur suppression avis:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur suppression avis"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Avis supprimé"})
}

//
// 🟢 POST /api/review/get-product-reviews — public
//
func (h *ReviewHandler) GetProductReviews(c *gin.Context) {
	var req struct {
		ProductID string `json:"productId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Données invalides"})
		return
	}

	reviews, err := h.Reviews.ListByProduct(c.Request.Context(), req.ProductID)
	if err != nil {
		log.Println("❌ Erreur lecture avis:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur lecture avis"})
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}

	// Moyenne arithmétique arrondie à une décimale, 0 sans avis.
	var average float64
	if len(reviews) > 0 {
		total := 0
		for _, r := range reviews {
			total += r.Rating
		}
		average = math.Round(float64(total)/float64(len(reviews))*10) / 10
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"reviews":       reviews,
		"totalReviews":  len(reviews),
		"averageRating": average,
	})
}

//
// 🟢 POST /api/review/get-user-review
//
func (h *ReviewHandler) GetUserReview(c *gin.Context) {
	userID := c.GetString("user_id")

	var req struct {
		ProductID string `json:"productId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Données invalides"})
		return
	}

	review, err := h.Reviews.FindByUserAndProduct(c.Request.Context(), userID, req.ProductID)
	if err == store.ErrNotFound {
		c.JSON(http.StatusOK, gin.H{"success": true, "hasReviewed": false})
		return
	}
	if err != nil {
		log.Println("❌ Erreur lecture avis:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur lecture avis"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "hasReviewed": true, "review": review})
}
