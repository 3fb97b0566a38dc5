package repositories

import (
	"testing"

	"github.com/sbilibin2017/recipe-book/internal/models"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildRecipeSearchFilter(t *testing.T) {
	tests := []struct {
		name     string
		filter   models.RecipeFilter
		expected bson.M
	}{
		{
			name:     "no criteria matches everything",
			filter:   models.RecipeFilter{},
			expected: bson.M{},
		},
		{
			name:     "blank criteria are ignored",
			filter:   models.RecipeFilter{Tags: []string{" ", ""}, Cuisine: "  ", Ingredients: []string{""}, Name: " "},
			expected: bson.M{},
		},
		{
			name:   "tags use set membership",
			filter: models.RecipeFilter{Tags: []string{"Quick", " Easy "}},
			expected: bson.M{
				"tags.name": bson.M{"$in": []string{"Quick", "Easy"}},
			},
		},
		{
			name:   "cuisine is a case-insensitive substring",
			filter: models.RecipeFilter{Cuisine: "chin"},
			expected: bson.M{
				"cuisine.name": primitive.Regex{Pattern: "chin", Options: "i"},
			},
		},
		{
			name:   "every ingredient must match",
			filter: models.RecipeFilter{Ingredients: []string{"chicken", "rice"}},
			expected: bson.M{
				"ingredients.name": bson.M{"$all": []primitive.Regex{
					{Pattern: "chicken", Options: "i"},
					{Pattern: "rice", Options: "i"},
				}},
			},
		},
		{
			name:   "name is a case-insensitive substring",
			filter: models.RecipeFilter{Name: "Fried"},
			expected: bson.M{
				"name": primitive.Regex{Pattern: "Fried", Options: "i"},
			},
		},
		{
			name:   "regex metacharacters are escaped",
			filter: models.RecipeFilter{Name: "mac & cheese (v2)+"},
			expected: bson.M{
				"name": primitive.Regex{Pattern: `mac & cheese \(v2\)\+`, Options: "i"},
			},
		},
		{
			name: "criteria are combined",
			filter: models.RecipeFilter{
				Tags:        []string{"Spicy"},
				Cuisine:     "thai",
				Ingredients: []string{"basil"},
				Name:        "pad",
			},
			expected: bson.M{
				"tags.name":        bson.M{"$in": []string{"Spicy"}},
				"cuisine.name":     primitive.Regex{Pattern: "thai", Options: "i"},
				"ingredients.name": bson.M{"$all": []primitive.Regex{{Pattern: "basil", Options: "i"}}},
				"name":             primitive.Regex{Pattern: "pad", Options: "i"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildRecipeSearchFilter(tt.filter))
		})
	}
}

func TestEqualsIgnoreCase(t *testing.T) {
	assert.Equal(t, primitive.Regex{Pattern: `^Sichuan\.$`, Options: "i"}, equalsIgnoreCase("Sichuan."))
}

func TestParseObjectID(t *testing.T) {
	oid := primitive.NewObjectID()

	got, ok := parseObjectID(oid.Hex())
	assert.True(t, ok)
	assert.Equal(t, oid, got)

	_, ok = parseObjectID("not-an-id")
	assert.False(t, ok)
}
