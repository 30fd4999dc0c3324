package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"projectstore_backend/internal/models"
)

// Implémentations en mémoire des stores, utilisées par les tests de
// handlers. Mêmes contrats d'erreur que les implémentations MongoDB.

// --- Utilisateurs ---

type MemoryUserStore struct {
	mu    sync.Mutex
	users map[string]models.User // id hex → user
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]models.User)}
}

func (s *MemoryUserStore) Create(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == u.Email {
			return ErrDuplicate
		}
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	s.users[u.ID.Hex()] = *u
	return nil
}

func (s *MemoryUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			copy := u
			return &copy, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	copy := u
	return &copy, nil
}

// --- Produits ---

type MemoryProductStore struct {
	mu       sync.Mutex
	products map[string]models.Product
}

func NewMemoryProductStore() *MemoryProductStore {
	return &MemoryProductStore{products: make(map[string]models.Product)}
}

func (s *MemoryProductStore) Create(_ context.Context, p *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if p.Date.IsZero() {
		p.Date = time.Now()
	}
	s.products[p.ID.Hex()] = *p
	return nil
}

func (s *MemoryProductStore) List(_ context.Context) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	return out, nil
}

func (s *MemoryProductStore) FindByID(_ context.Context, id string) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	copy := p
	return &copy, nil
}

func (s *MemoryProductStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return ErrNotFound
	}
	delete(s.products, id)
	return nil
}

func (s *MemoryProductStore) Search(_ context.Context, query string) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(query)
	var out []models.Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out, nil
}

// --- Commandes ---

type MemoryOrderStore struct {
	mu     sync.Mutex
	orders []models.Order
}

func NewMemoryOrderStore() *MemoryOrderStore {
	return &MemoryOrderStore{}
}

func (s *MemoryOrderStore) Create(_ context.Context, o *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	if o.Date.IsZero() {
		o.Date = time.Now()
	}
	if o.Status == "" {
		o.Status = models.StatusPlaced
	}
	s.orders = append(s.orders, *o)
	return nil
}

func (s *MemoryOrderStore) ListAll(_ context.Context) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	sortOrdersByDateDesc(out)
	return out, nil
}

func (s *MemoryOrderStore) ListByUser(_ context.Context, userID string) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sortOrdersByDateDesc(out)
	return out, nil
}

func (s *MemoryOrderStore) UpdateStatus(_ context.Context, id string, status models.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID.Hex() == id {
			s.orders[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

func sortOrdersByDateDesc(orders []models.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Date.After(orders[j].Date)
	})
}

// --- Avis ---

type MemoryReviewStore struct {
	mu      sync.Mutex
	reviews map[string]models.Review
}

func NewMemoryReviewStore() *MemoryReviewStore {
	return &MemoryReviewStore{reviews: make(map[string]models.Review)}
}

func (s *MemoryReviewStore) Create(_ context.Context, r *models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.reviews {
		if existing.UserID == r.UserID && existing.ProductID == r.ProductID {
			return ErrDuplicate
		}
	}
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}
	if r.Date.IsZero() {
		r.Date = time.Now()
	}
	s.reviews[r.ID.Hex()] = *r
	return nil
}

func (s *MemoryReviewStore) FindByID(_ context.Context, id string) (*models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reviews[id]
	if !ok {
		return nil, ErrNotFound
	}
	copy := r
	return &copy, nil
}

func (s *MemoryReviewStore) FindByUserAndProduct(_ context.Context, userID, productID string) (*models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.reviews {
		if r.UserID == userID && r.ProductID == productID {
			copy := r
			return &copy, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryReviewStore) Update(_ context.Context, r *models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.reviews[r.ID.Hex()]
	if !ok {
		return ErrNotFound
	}
	existing.Rating = r.Rating
	existing.ReviewText = r.ReviewText
	existing.Date = r.Date
	s.reviews[r.ID.Hex()] = existing
	return nil
}

func (s *MemoryReviewStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reviews[id]; !ok {
		return ErrNotFound
	}
	delete(s.reviews, id)
	return nil
}

func (s *MemoryReviewStore) ListByProduct(_ context.Context, productID string) ([]models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Review
	for _, r := range s.reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

// --- Panier ---

type MemoryCartStore struct {
	mu    sync.Mutex
	carts map[string]models.CartData
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: make(map[string]models.CartData)}
}

func (s *MemoryCartStore) cart(userID string) models.CartData {
	c, ok := s.carts[userID]
	if !ok {
		c = make(models.CartData)
		s.carts[userID] = c
	}
	return c
}

func (s *MemoryCartStore) Add(_ context.Context, userID, productID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(userID)
	c[productID]++
	return c[productID], nil
}

func (s *MemoryCartStore) Set(_ context.Context, userID, productID string, qty int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(userID)
	if qty <= 0 {
		delete(c, productID)
		return nil
	}
	c[productID] = qty
	return nil
}

func (s *MemoryCartStore) Remove(_ context.Context, userID, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(userID)
	delete(c, productID)
	for id, q := range c {
		if q <= 0 {
			delete(c, id)
		}
	}
	return nil
}

func (s *MemoryCartStore) Get(_ context.Context, userID string) (models.CartData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(models.CartData)
	for id, q := range s.cart(userID) {
		if q > 0 {
			out[id] = q
		}
	}
	return out, nil
}

func (s *MemoryCartStore) Clear(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, userID)
	return nil
}
