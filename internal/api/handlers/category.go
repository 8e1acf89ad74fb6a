package handlers

import (
	"net/http"

	"github.com/dom/storefront-api/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
	log             *zap.Logger
}

func NewCategoryHandler(categoryService *service.CategoryService, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, log: log}
}

type categoryRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *CategoryHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.GetAll(r.Context())
	if err != nil {
		respondError(w, h.log, "category.GetAll", err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryViews(categories))
}

func (h *CategoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	category, err := h.categoryService.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, h.log, "category.GetByID", err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryView(category))
}

func (h *CategoryHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	category, err := h.categoryService.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, h.log, "category.GetBySlug", err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryView(category))
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	category, err := h.categoryService.Create(r.Context())
	if err != nil {
		respondError(w, h.log, "category.Create", err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryView(category))
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var req categoryRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, h.log, "category.Update", err)
		return
	}

	category, err := h.categoryService.Update(r.Context(), id, req.Name)
	if err != nil {
		respondError(w, h.log, "category.Update", err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryView(category))
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.categoryService.Delete(r.Context(), id); err != nil {
		respondError(w, h.log, "category.Delete", err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse)
}
