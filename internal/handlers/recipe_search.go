package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/sbilibin2017/recipe-book/internal/logger"
	"github.com/sbilibin2017/recipe-book/internal/models"
)

//go:generate mockgen -source=recipe_search.go -destination=mock_recipe_search.go -package=handlers

// RecipeSearcher defines the interface that the service must implement.
type RecipeSearcher interface {
	Search(ctx context.Context, f models.RecipeFilter) ([]models.RecipeSummary, error)
}

// RecipeSearchResponse lists matching recipes
// swagger:model RecipeSearchResponse
type RecipeSearchResponse struct {
	Recipes []models.RecipeSummary `json:"recipes"`
}

// NewSearchRecipesHandler returns an HTTP handler for recipe search.
// @Summary Search recipes
// @Description Returns name, cuisine and tags of every recipe matching all given filters. Without filters every recipe is returned.
// @Tags recipes
// @Produce json
// @Param tags query string false "Comma separated tag names, any of which must match"
// @Param cuisine query string false "Case-insensitive substring of the cuisine name"
// @Param ingredients query string false "Comma separated ingredient names, all of which must match"
// @Param name query string false "Case-insensitive substring of the recipe name"
// @Success 200 {object} handlers.RecipeSearchResponse "Matching recipes"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /recipes [get]
// @Security BearerAuth
func NewSearchRecipesHandler(svc RecipeSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		filter := models.RecipeFilter{
			Tags:        splitList(q.Get("tags")),
			Cuisine:     strings.TrimSpace(q.Get("cuisine")),
			Ingredients: splitList(q.Get("ingredients")),
			Name:        strings.TrimSpace(q.Get("name")),
		}

		recipes, err := svc.Search(r.Context(), filter)
		if err != nil {
			logger.Log.Errorw("failed to search recipes", "err", err)
			writeError(w, http.StatusInternalServerError, internalServerError)
			return
		}

		if recipes == nil {
			recipes = []models.RecipeSummary{}
		}

		writeJSON(w, http.StatusOK, RecipeSearchResponse{Recipes: recipes})
	}
}

// splitList splits a comma separated query value, dropping blank items.
func splitList(v string) []string {
	if strings.TrimSpace(v) == "" {
		return nil
	}

	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
