package handlers

import (
	"net/http"

	"github.com/dom/storefront-api/internal/api/middleware"
	"github.com/dom/storefront-api/internal/service"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	reviewService *service.ReviewService
	log           *zap.Logger
}

func NewReviewHandler(reviewService *service.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService, log: log}
}

type reviewRequest struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Text   string `json:"text" validate:"required"`
}

type averageResponse struct {
	Rating *float64 `json:"rating"`
}

func (h *ReviewHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewService.GetAll(r.Context())
	if err != nil {
		respondError(w, h.log, "review.GetAll", err)
		return
	}
	writeJSON(w, http.StatusOK, toReviewViews(reviews))
}

// Leave handles POST /reviews/leave/{productId}.
func (h *ReviewHandler) Leave(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	productID, ok := uuidParam(w, r, "productId")
	if !ok {
		return
	}

	var req reviewRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, h.log, "review.Leave", err)
		return
	}

	review, err := h.reviewService.Create(r.Context(), userID, productID, service.CreateReviewInput{
		Rating: req.Rating,
		Text:   req.Text,
	})
	if err != nil {
		respondError(w, h.log, "review.Leave", err)
		return
	}
	writeJSON(w, http.StatusOK, toReviewView(review))
}

// Average handles GET /reviews/average-by-product/{productId}. The rating is
// null when the product has no reviews.
func (h *ReviewHandler) Average(w http.ResponseWriter, r *http.Request) {
	productID, ok := uuidParam(w, r, "productId")
	if !ok {
		return
	}

	avg, err := h.reviewService.AverageForProduct(r.Context(), productID)
	if err != nil {
		respondError(w, h.log, "review.Average", err)
		return
	}
	writeJSON(w, http.StatusOK, averageResponse{Rating: avg})
}
