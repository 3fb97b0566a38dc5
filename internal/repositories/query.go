package repositories

import (
	"strings"

	"github.com/sbilibin2017/recipe-book/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// recipeSummaryProjection keeps only what list views render.
var recipeSummaryProjection = bson.M{
	"_id":          0,
	"name":         1,
	"cuisine.name": 1,
	"tags.name":    1,
}

// BuildRecipeSearchFilter turns search criteria into a conjunctive mongo filter.
//
//   - tags: the recipe carries at least one of the given tag names
//   - cuisine, name: case-insensitive substring
//   - ingredients: every given value matches some ingredient name, case-insensitive substring
//
// Criteria left empty are omitted, so an empty filter matches every recipe.
func BuildRecipeSearchFilter(f models.RecipeFilter) bson.M {
	filter := bson.M{}

	if tags := compact(f.Tags); len(tags) > 0 {
		filter["tags.name"] = bson.M{"$in": tags}
	}

	if cuisine := strings.TrimSpace(f.Cuisine); cuisine != "" {
		filter["cuisine.name"] = containsIgnoreCase(cuisine)
	}

	if ingredients := compact(f.Ingredients); len(ingredients) > 0 {
		patterns := make([]primitive.Regex, 0, len(ingredients))
		for _, ingredient := range ingredients {
			patterns = append(patterns, containsIgnoreCase(ingredient))
		}
		filter["ingredients.name"] = bson.M{"$all": patterns}
	}

	if name := strings.TrimSpace(f.Name); name != "" {
		filter["name"] = containsIgnoreCase(name)
	}

	return filter
}
