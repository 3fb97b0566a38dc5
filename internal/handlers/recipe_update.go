package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/recipe-book/internal/logger"
	"github.com/sbilibin2017/recipe-book/internal/models"
	"github.com/sbilibin2017/recipe-book/internal/services"
)

//go:generate mockgen -source=recipe_update.go -destination=mock_recipe_update.go -package=handlers

// RecipeUpdater defines the interface that the service must implement.
type RecipeUpdater interface {
	Update(ctx context.Context, id string, input models.RecipeInput) error
}

// NewUpdateRecipeHandler returns an HTTP handler replacing a recipe.
// @Summary Update a recipe
// @Description Replaces every field of the recipe. Cuisine and tags are resolved by name.
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path string true "Recipe id"
// @Param recipe body models.RecipeInput true "Recipe"
// @Success 200 {object} handlers.MessageResponse "Recipe updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid recipe, unknown cuisine or tag"
// @Failure 404 {object} handlers.ErrorResponse "Recipe not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /recipes/{id} [put]
func NewUpdateRecipeHandler(svc RecipeUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var input models.RecipeInput
		if err := decodeAndValidate(r, &input); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := svc.Update(r.Context(), id, input); err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrRecipeNotFound):
				writeError(w, http.StatusNotFound, "Recipe not found")
			default:
				logger.Log.Errorw("failed to update recipe", "recipeID", id, "err", err)
				writeError(w, http.StatusInternalServerError, internalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Recipe updated"})
	}
}
