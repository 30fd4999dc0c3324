package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"projectstore_backend/internal/cache"
	"projectstore_backend/internal/config"
	"projectstore_backend/internal/database"
	"projectstore_backend/internal/handlers/admin"
	"projectstore_backend/internal/handlers/product"
	"projectstore_backend/internal/handlers/user"
	"projectstore_backend/internal/routes"
	"projectstore_backend/internal/services"
	"projectstore_backend/internal/store"
	"projectstore_backend/internal/utils"
)

func main() {
	config.Load()

	database.ConnectDatabases()
	defer database.CloseMongo()

	// --- Stores ---
	users := store.NewMongoUserStore(database.MongoDB)
	products := store.NewMongoProductStore(database.MongoDB)
	orders := store.NewMongoOrderStore(database.MongoDB)
	reviews := store.NewMongoReviewStore(database.MongoDB)
	carts := store.NewRedisCartStore(database.Redis)

	// --- Collaborateurs externes ---
	uploader := &services.MinioUploader{
		Client:   database.MinIO,
		Bucket:   os.Getenv("MINIO_BUCKET"),
		Endpoint: os.Getenv("MINIO_ENDPOINT"),
		Secure:   os.Getenv("MINIO_USE_SSL") == "true",
	}
	index := &services.ElasticIndex{Client: database.Elastic}
	mailer := utils.NewSMTPMailerFromEnv()
	productCache := cache.NewProductCache(database.Redis)

	deps := &routes.Deps{
		Auth:        &user.AuthHandler{Users: users},
		Cart:        &user.CartHandler{Carts: carts, Products: products},
		Order:       &user.OrderHandler{Orders: orders, Carts: carts, Mailer: mailer},
		AdminOrders: &admin.OrderHandler{Orders: orders},
		Product:     &product.Handler{Products: products, Assets: uploader, Index: index, Cache: productCache},
		Review:      &product.ReviewHandler{Reviews: reviews, Users: users},
		Redis:       database.Redis,
	}

	r := gin.Default()
	routes.RegisterRoutes(r, deps)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur projectstore lancé sur le port", port)
	r.Run(":" + port)
}
