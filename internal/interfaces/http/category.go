package http

import (
	"net/http"
	"strconv"

	"expensetracker/internal/domain/category"
	"expensetracker/internal/shared/apperr"
)

// CategoryHandler serves category creation and soft deletion.
type CategoryHandler struct {
	categoryService *category.Service
}

func NewCategoryHandler(categoryService *category.Service) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

type createCategoryRequest struct {
	Name             string `json:"name"`
	Type             string `json:"type"`
	ParentCategoryID *int64 `json:"parentCategoryId"`
}

// HandleCreateCategory creates a category, optionally nested under a parent.
func (h *CategoryHandler) HandleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	cat, err := h.categoryService.Create(r.Context(), category.CreateParams{
		Name:             req.Name,
		Type:             req.Type,
		ParentCategoryID: req.ParentCategoryID,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondMessage(w, http.StatusCreated, "Category created successfully", cat)
}

// HandleDeleteCategory deactivates the category in the path.
func (h *CategoryHandler) HandleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, apperr.BadRequest("invalid category id"))
		return
	}

	cat, err := h.categoryService.Delete(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondMessage(w, http.StatusOK, "Category deleted successfully", cat)
}
