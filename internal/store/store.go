package store

import (
	"context"
	"errors"

	"projectstore_backend/internal/models"
)

var (
	ErrNotFound  = errors.New("enregistrement introuvable")
	ErrDuplicate = errors.New("enregistrement déjà existant")
)

// Les stores sont des interfaces pour pouvoir brancher des fakes en
// mémoire dans les tests et les vrais clients réseau en production.

type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
}

type ProductStore interface {
	Create(ctx context.Context, p *models.Product) error
	List(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	Delete(ctx context.Context, id string) error
	// Search est le repli quand Elasticsearch est indisponible.
	Search(ctx context.Context, query string) ([]models.Product, error)
}

type OrderStore interface {
	Create(ctx context.Context, o *models.Order) error
	ListAll(ctx context.Context) ([]models.Order, error)
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error
}

type ReviewStore interface {
	Create(ctx context.Context, r *models.Review) error
	FindByID(ctx context.Context, id string) (*models.Review, error)
	FindByUserAndProduct(ctx context.Context, userID, productID string) (*models.Review, error)
	Update(ctx context.Context, r *models.Review) error
	Delete(ctx context.Context, id string) error
	// ListByProduct renvoie les avis du plus récent au plus ancien.
	ListByProduct(ctx context.Context, productID string) ([]models.Review, error)
}

// CartStore expose des opérations atomiques par clé (pas de
// lecture-modification-écriture de la map complète) pour éviter les
// pertes de mise à jour entre sessions concurrentes.
type CartStore interface {
	// Add incrémente la quantité de 1 (création à 1 si absent).
	Add(ctx context.Context, userID, productID string) (int64, error)
	// Set écrase la quantité ; qty == 0 supprime l'entrée.
	Set(ctx context.Context, userID, productID string, qty int64) error
	// Remove supprime l'entrée et purge les quantités non positives.
	// Sans effet si l'entrée n'existe pas.
	Remove(ctx context.Context, userID, productID string) error
	Get(ctx context.Context, userID string) (models.CartData, error)
	Clear(ctx context.Context, userID string) error
}
