package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/recipe-book/internal/logger"
	"github.com/sbilibin2017/recipe-book/internal/models"
	"github.com/sbilibin2017/recipe-book/internal/services"
)

//go:generate mockgen -source=recipe_create.go -destination=mock_recipe_create.go -package=handlers

// RecipeCreator defines the interface that the service must implement.
type RecipeCreator interface {
	Create(ctx context.Context, input models.RecipeInput) (string, error)
}

// RecipeCreateResponse represents a successful create response
// swagger:model RecipeCreateResponse
type RecipeCreateResponse struct {
	// Success message
	// default: Recipe created
	Message string `json:"message"`

	// Id of the new recipe
	RecipeID string `json:"recipeId"`
}

// NewCreateRecipeHandler returns an HTTP handler creating a recipe.
// @Summary Create a recipe
// @Description Cuisine and tags are resolved by name; every name must exist.
// @Tags recipes
// @Accept json
// @Produce json
// @Param recipe body models.RecipeInput true "Recipe"
// @Success 201 {object} handlers.RecipeCreateResponse "Recipe created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid recipe, unknown cuisine or tag"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /recipes [post]
func NewCreateRecipeHandler(svc RecipeCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.RecipeInput

		if err := decodeAndValidate(r, &input); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		id, err := svc.Create(r.Context(), input)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				logger.Log.Errorw("failed to create recipe", "err", err)
				writeError(w, http.StatusInternalServerError, internalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, RecipeCreateResponse{
			Message:  "Recipe created",
			RecipeID: id,
		})
	}
}
