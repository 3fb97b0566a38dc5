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

//go:generate mockgen -source=recipe_get.go -destination=mock_recipe_get.go -package=handlers

// RecipeGetter defines the interface that the service must implement.
type RecipeGetter interface {
	GetByID(ctx context.Context, id string) (*models.Recipe, error)
}

// NewGetRecipeHandler returns an HTTP handler fetching one recipe.
// @Summary Get a recipe
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe id"
// @Success 200 {object} models.Recipe "Recipe"
// @Failure 404 {object} handlers.ErrorResponse "Recipe not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /recipes/{id} [get]
func NewGetRecipeHandler(svc RecipeGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		recipe, err := svc.GetByID(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrRecipeNotFound):
				writeError(w, http.StatusNotFound, "Recipe not found")
			default:
				logger.Log.Errorw("failed to get recipe", "recipeID", id, "err", err)
				writeError(w, http.StatusInternalServerError, internalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, recipe)
	}
}
