package user

import (
	"log"
	"net/http"
	"net/mail"
	"os"

	"github.com/gin-gonic/gin"

	"projectstore_backend/internal/models"
	"projectstore_backend/internal/store"
	"projectstore_backend/internal/utils"
)

type AuthHandler struct {
	Users store.UserStore
}

//
// 🟢 POST /api/user/register
//
func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Données invalides"})
		return
	}

	if _, err := mail.ParseAddress(req.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Adresse email invalide"})
		return
	}
	if len(req.Password) < 8 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Le mot de passe doit contenir au moins 8 caractères"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur interne"})
		return
	}

	u := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
	}

	if err := h.Users.Create(c.Request.Context(), &u); err != nil {
		if err == store.ErrDuplicate {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Un compte existe déjà avec cet email"})
			return
		}
		log.Println("❌ Erreur création utilisateur:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur création compte"})
		return
	}

	token, err := utils.GenerateJWT(u.ID.Hex(), u.Email, "user")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur génération token"})
		return
	}

	log.Printf("✅ Nouveau compte: %s", u.Email)
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token, "user": u})
}

//
// 🟢 POST /api/user/login
//
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Données invalides"})
		return
	}

	u, err := h.Users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Email ou mot de passe invalide"})
		return
	}

	ok, err := utils.VerifyPassword(req.Password, u.Password)
	if err != nil || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Email ou mot de passe invalide"})
		return
	}

	token, err := utils.GenerateJWT(u.ID.Hex(), u.Email, "user")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur génération token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token, "user": u})
}

//
// 🔐 POST /api/user/admin — login du panneau d'administration
//
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Données invalides"})
		return
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Compte admin non configuré"})
		return
	}

	if req.Email != adminEmail || req.Password != adminPassword {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Identifiants admin invalides"})
		return
	}

	token, err := utils.GenerateJWT("admin", adminEmail, "admin")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur génération token"})
		return
	}

	log.Println("🔐 Connexion admin")
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}
