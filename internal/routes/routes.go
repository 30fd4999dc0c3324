package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"projectstore_backend/internal/handlers/admin"
	"projectstore_backend/internal/handlers/product"
	"projectstore_backend/internal/handlers/user"
	"projectstore_backend/internal/middleware"
)

type Deps struct {
	Auth        *user.AuthHandler
	Cart        *user.CartHandler
	Order       *user.OrderHandler
	AdminOrders *admin.OrderHandler
	Product     *product.Handler
	Review      *product.ReviewHandler
	Redis       *redis.Client // nil : pas de rate limiting
}

func RegisterRoutes(r *gin.Engine, d *Deps) {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	r.Use(cors.New(cfg))

	api := r.Group("/api")

	// --- Utilisateurs ---
	u := api.Group("/user")
	if d.Redis != nil {
		u.POST("/register",
			middleware.AuthRateLimit(d.Redis, "register", middleware.RegisterMaxAttempts, middleware.AuthWindow),
			d.Auth.Register)
		u.POST("/login",
			middleware.AuthRateLimit(d.Redis, "login", middleware.LoginMaxAttempts, middleware.AuthWindow),
			d.Auth.Login)
		u.POST("/admin",
			middleware.AuthRateLimit(d.Redis, "admin", middleware.LoginMaxAttempts, middleware.AuthWindow),
			d.Auth.AdminLogin)
	} else {
		u.POST("/register", d.Auth.Register)
		u.POST("/login", d.Auth.Login)
		u.POST("/admin", d.Auth.AdminLogin)
	}

	// --- Produits ---
	p := api.Group("/product")
	p.GET("/list", d.Product.List)
	p.GET("/search", d.Product.Search)
	p.POST("/single", d.Product.Single)
	p.POST("/add", middleware.AuthRequired(), middleware.RequireAdmin, d.Product.Add)
	p.POST("/remove", middleware.AuthRequired(), middleware.RequireAdmin, d.Product.Remove)

	// --- Panier ---
	cart := api.Group("/cart", middleware.AuthRequired())
	cart.POST("/get", d.Cart.Get)
	cart.POST("/add", d.Cart.Add)
	cart.POST("/update", d.Cart.Update)
	cart.POST("/delete", d.Cart.Delete)

	// --- Commandes ---
	order := api.Group("/order")
	order.POST("/place", middleware.AuthRequired(), d.Order.Place)
	order.POST("/userorders", middleware.AuthRequired(), d.Order.MyOrders)
	order.POST("/list", middleware.AuthRequired(), middleware.RequireAdmin, d.AdminOrders.ListAll)
	order.POST("/status", middleware.AuthRequired(), middleware.RequireAdmin, d.AdminOrders.UpdateStatus)

	// --- Avis ---
	review := api.Group("/review")
	review.POST("/get-product-reviews", d.Review.GetProductReviews)
	review.POST("/add", middleware.AuthRequired(), d.Review.Add)
	review.POST("/update", middleware.AuthRequired(), d.Review.Update)
	review.POST("/delete", middleware.AuthRequired(), d.Review.Delete)
	review.POST("/get-user-review", middleware.AuthRequired(), d.Review.GetUserReview)
}
