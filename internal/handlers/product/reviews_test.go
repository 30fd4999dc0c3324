package product

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projectstore_backend/internal/models"
	"projectstore_backend/internal/store"
)

func withUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func newReviewRouter(t *testing.T, userID string) (*gin.Engine, *ReviewHandler, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := store.NewMemoryUserStore()
	u := models.User{Name: "Lina", Email: userID + "@example.com", Password: "hash"}
	require.NoError(t, users.Create(context.Background(), &u))

	h := &ReviewHandler{
		Reviews: store.NewMemoryReviewStore(),
		Users:   users,
	}

	r := gin.New()
	grp := r.Group("/api/review", withUser(u.ID.Hex()))
	grp.POST("/add", h.Add)
	grp.POST("/update", h.Update)
	grp.POST("/delete", h.Delete)
	grp.POST("/get-user-review", h.GetUserReview)
	r.POST("/api/review/get-product-reviews", h.GetProductReviews)
	return r, h, u.ID.Hex()
}

func TestAddReviewOncePerUserAndProduct(t *testing.T) {
	r, h, userID := newReviewRouter(t, "lina")

	w := postJSONProduct(t, r, "/api/review/add", `{"productId":"p1","rating":5,"reviewText":"Excellent projet"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Seconde soumission : l'avis existant est renvoyé, pas de doublon.
	w = postJSONProduct(t, r, "/api/review/add", `{"productId":"p1","rating":3,"reviewText":"Deuxième tentative"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	var resp struct {
		Success        bool           `json:"success"`
		ExistingReview *models.Review `json:"existingReview"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.ExistingReview)
	assert.Equal(t, 5, resp.ExistingReview.Rating)

	reviews, err := h.Reviews.ListByProduct(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, userID, reviews[0].UserID)
	assert.Equal(t, "Lina", reviews[0].UserName)
}

func TestAddReviewRejectsRatingOutOfRange(t *testing.T) {
	r, _, _ := newReviewRouter(t, "lina")

	for _, body := range []string{
		`{"productId":"p1","rating":0,"reviewText":"trop bas"}`,
		`{"productId":"p1","rating":6,"reviewText":"trop haut"}`,
	} {
		w := postJSONProduct(t, r, "/api/review/add", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestGetProductReviewsComputesAverage(t *testing.T) {
	r, h, _ := newReviewRouter(t, "lina")
	ctx := context.Background()

	// Trois avis de trois utilisateurs : notes 5, 4, 3.
	for i, rating := range []int{5, 4, 3} {
		require.NoError(t, h.Reviews.Create(ctx, &models.Review{
			UserID:     string(rune('a' + i)),
			ProductID:  "p1",
			UserName:   "User",
			Rating:     rating,
			ReviewText: "avis",
			Date:       time.Now().Add(time.Duration(i) * time.Minute),
		}))
	}

	w := postJSONProduct(t, r, "/api/review/get-product-reviews", `{"productId":"p1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success       bool            `json:"success"`
		Reviews       []models.Review `json:"reviews"`
		TotalReviews  int             `json:"totalReviews"`
		AverageRating float64         `json:"averageRating"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.TotalReviews)
	assert.Equal(t, 4.0, resp.AverageRating)

	// Tri du plus récent au plus ancien.
	require.Len(t, resp.Reviews, 3)
	assert.Equal(t, 3, resp.Reviews[0].Rating)
	assert.Equal(t, 5, resp.Reviews[2].Rating)
}

func TestGetProductReviewsEmpty(t *testing.T) {
	r, _, _ := newReviewRouter(t, "lina")

	w := postJSONProduct(t, r, "/api/review/get-product-reviews", `{"productId":"inconnu"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		TotalReviews  int     `json:"totalReviews"`
		AverageRating float64 `json:"averageRating"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.TotalReviews)
	assert.Equal(t, 0.0, resp.AverageRating)
}

func TestUpdateReviewOwnershipCheck(t *testing.T) {
	r, h, _ := newReviewRouter(t, "lina")
	ctx := context.Background()

	// Avis appartenant à quelqu'un d'autre.
	other := models.Review{UserID: "autre", ProductID: "p1", UserName: "Autre", Rating: 2, ReviewText: "bof"}
	require.NoError(t, h.Reviews.Create(ctx, &other))

	w := postJSONProduct(t, r, "/api/review/update", `{"reviewId":"`+other.ID.Hex()+`","rating":5,"reviewText":"piraté"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	kept, err := h.Reviews.FindByID(ctx, other.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 2, kept.Rating)
}

func TestUpdateOwnReviewRefreshesContent(t *testing.T) {
	r, h, userID := newReviewRouter(t, "lina")
	ctx := context.Background()

	mine := models.Review{UserID: userID, ProductID: "p1", UserName: "Lina", Rating: 2, ReviewText: "moyen", Date: time.Now().Add(-time.Hour)}
	require.NoError(t, h.Reviews.Create(ctx, &mine))

	w := postJSONProduct(t, r, "/api/review/update", `{"reviewId":"`+mine.ID.Hex()+`","rating":4,"reviewText":"finalement très bien"}`)
	require.Equal(t, http.StatusOK, w.Code)

	updated, err := h.Reviews.FindByID(ctx, mine.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Rating)
	assert.Equal(t, "finalement très bien", updated.ReviewText)
	assert.True(t, updated.Date.After(mine.Date))
}

func TestDeleteReviewOwnershipCheck(t *testing.T) {
	r, h, userID := newReviewRouter(t, "lina")
	ctx := context.Background()

	other := models.Review{UserID: "autre", ProductID: "p1", Rating: 3, ReviewText: "x"}
	mine := models.Review{UserID: userID, ProductID: "p2", Rating: 4, ReviewText: "y"}
	require.NoError(t, h.Reviews.Create(ctx, &other))
	require.NoError(t, h.Reviews.Create(ctx, &mine))

	w := postJSONProduct(t, r, "/api/review/delete", `{"reviewId":"`+other.ID.Hex()+`"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = postJSONProduct(t, r, "/api/review/delete", `{"reviewId":"`+mine.ID.Hex()+`"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	_, err := h.Reviews.FindByID(ctx, mine.ID.Hex())
	assert.Equal(t, store.ErrNotFound, err)
}

func TestGetUserReview(t *testing.T) {
	r, h, userID := newReviewRouter(t, "lina")
	ctx := context.Background()

	// Aucun avis : indicateur explicite.
	w := postJSONProduct(t, r, "/api/review/get-user-review", `{"productId":"p1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success     bool           `json:"success"`
		HasReviewed bool           `json:"hasReviewed"`
		Review      *models.Review `json:"review"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.False(t, resp.HasReviewed)

	require.NoError(t, h.Reviews.Create(ctx, &models.Review{UserID: userID, ProductID: "p1", Rating: 5, ReviewText: "top"}))

	w = postJSONProduct(t, r, "/api/review/get-user-review", `{"productId":"p1"}`)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.HasReviewed)
	require.NotNil(t, resp.Review)
	assert.Equal(t, 5, resp.Review.Rating)
}
