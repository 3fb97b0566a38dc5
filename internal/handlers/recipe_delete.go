package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/recipe-book/internal/logger"
	"github.com/sbilibin2017/recipe-book/internal/services"
)

//go:generate mockgen -source=recipe_delete.go -destination=mock_recipe_delete.go -package=handlers

// RecipeDeleter defines the interface that the service must implement.
type RecipeDeleter interface {
	Delete(ctx context.Context, id string) error
}

// NewDeleteRecipeHandler returns an HTTP handler deleting a recipe.
// @Summary Delete a recipe
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe id"
// @Success 200 {object} handlers.MessageResponse "Recipe deleted"
// @Failure 404 {object} handlers.ErrorResponse "Recipe not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /recipes/{id} [delete]
func NewDeleteRecipeHandler(svc RecipeDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if err := svc.Delete(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrRecipeNotFound):
				writeError(w, http.StatusNotFound, "Recipe not found")
			default:
				logger.Log.Errorw("failed to delete recipe", "recipeID", id, "err", err)
				writeError(w, http.StatusInternalServerError, internalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Recipe deleted"})
	}
}
