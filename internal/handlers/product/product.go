package product

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"projectstore_backend/internal/cache"
	"projectstore_backend/internal/models"
	"projectstore_backend/internal/services"
	"projectstore_backend/internal/store"
)

type Handler struct {
	Products store.ProductStore
	Assets   services.Uploader
	Index    services.ProductIndex // nil : recherche en repli MongoDB uniquement
	Cache    *cache.ProductCache   // nil : pas de cache catalogue
}

//
// 🔐 POST /api/product/add — multipart (image + ZIP + PDF)
//
func (h *Handler) Add(c *gin.Context) {
	title := c.PostForm("title")
	description := c.PostForm("description")
	category := c.PostForm("category")
	subCategory := c.PostForm("subCategory")
	bestSell := c.PostForm("bestSell") == "true"

	if title == "" || description == "" || category == "" || subCategory == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Champs obligatoires manquants"})
		return
	}

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil || price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Le prix doit être un nombre strictement positif"})
		return
	}

	image, err1 := c.FormFile("image")
	projectFiles, err2 := c.FormFile("projectFiles")
	documentation, err3 := c.FormFile("documentation")
	if err1 != nil || err2 != nil || err3 != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Veuillez fournir les trois fichiers requis (image, fichiers du projet et documentation)",
		})
		return
	}

	urls, err := services.UploadBundle(c.Request.Context(), h.Assets, image, projectFiles, documentation)
	if err != nil {
		log.Println("❌ Upload du bundle échoué:", err)
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": err.Error()})
		return
	}

	p := models.Product{
		Title:         title,
		Description:   description,
		Price:         price,
		Category:      category,
		SubCategory:   subCategory,
		BestSell:      bestSell,
		Image:         urls.Image,
		ProjectFiles:  urls.ProjectFiles,
		Documentation: urls.Documentation,
	}

	if err := h.Products.Create(c.Request.Context(), &p); err != nil {
		log.Println("❌ Erreur création produit:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur création produit"})
		return
	}

	// 🔄 Indexation Elasticsearch (best-effort)
	if h.Index != nil {
		go h.Index.Index(context.Background(), p)
	}
	h.Cache.Invalidate(c.Request.Context())

	log.Printf("✅ Projet publié: %s (%.2f€)", p.Title, p.Price)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Projet ajouté avec succès", "product": p})
}

//
// 🟢 GET /api/product/list
//
func (h *Handler) List(c *gin.Context) {
	if products, ok := h.Cache.Get(c.Request.Context()); ok {
		c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
		return
	}

	products, err := h.Products.List(c.Request.Context())
	if err != nil {
		log.Println("❌ Erreur lecture produits:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur lecture produits"})
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	h.Cache.Set(c.Request.Context(), products)

	c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
}

//
// 🔐 POST /api/product/remove
//
// Seul l'enregistrement est supprimé : les objets MinIO restent pour
// que les liens des commandes déjà passées continuent de fonctionner.
//
func (h *Handler) Remove(c *gin.Context) {
	var req struct {
		ID string `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Données invalides"})
		return
	}

	if err := h.Products.Delete(c.Request.Context(), req.ID); err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Projet introuvable"})
			return
		}
		log.Println("❌ Erreur suppression produit:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur suppression produit"})
		return
	}

	if h.Index != nil {
		go h.Index.Remove(context.Background(), req.ID)
	}
	h.Cache.Invalidate(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Projet supprimé"})
}

//
// 🟢 POST /api/product/single
//
func (h *Handler) Single(c *gin.Context) {
	var req struct {
		ProductID string `json:"productId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Données invalides"})
		return
	}

	p, err := h.Products.FindByID(c.Request.Context(), req.ProductID)
	if err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Projet introuvable"})
			return
		}
		log.Println("❌ Erreur lecture produit:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur lecture produit"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "product": p})
}

//
// 🟢 GET /api/product/search?q=
//
func (h *Handler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "paramètre 'q' manquant"})
		return
	}

	// 🔎 1️⃣ Elasticsearch d'abord
	if h.Index != nil {
		if results, err := h.Index.Search(c.Request.Context(), query); err == nil && len(results) > 0 {
			c.JSON(http.StatusOK, gin.H{"success": true, "products": results})
			return
		}
	}

	// 🔁 2️⃣ Repli : scan MongoDB
	products, err := h.Products.Search(c.Request.Context(), query)
	if err != nil {
		log.Println("❌ Erreur recherche:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur recherche"})
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
}
