package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Ingredient is a single recipe ingredient
// swagger:model Ingredient
type Ingredient struct {
	// Ingredient name
	// required: true
	// example: chicken thigh
	Name string `bson:"name" json:"name" validate:"required,notblank"`

	// Free form quantity
	// example: 500
	Quantity string `bson:"quantity,omitempty" json:"quantity,omitempty"`

	// Unit of the quantity
	// example: g
	Unit string `bson:"unit,omitempty" json:"unit,omitempty"`
}

// Recipe is a document of the recipes collection.
// Cuisine and Tags are snapshots taken when the recipe was written.
type Recipe struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name         string             `bson:"name" json:"name"`
	Cuisine      Cuisine            `bson:"cuisine" json:"cuisine"`
	PrepTime     int                `bson:"prepTime" json:"prepTime"`
	CookTime     int                `bson:"cookTime" json:"cookTime"`
	Servings     int                `bson:"servings" json:"servings"`
	Ingredients  []Ingredient       `bson:"ingredients" json:"ingredients"`
	Instructions []string           `bson:"instructions" json:"instructions"`
	Tags         []Tag              `bson:"tags" json:"tags"`
}

// NameRef is a projected reference carrying only a name.
type NameRef struct {
	Name string `bson:"name" json:"name"`
}

// RecipeSummary is the projection returned by recipe search
// swagger:model RecipeSummary
type RecipeSummary struct {
	// example: Chicken Rice
	Name    string    `bson:"name" json:"name"`
	Cuisine NameRef   `bson:"cuisine" json:"cuisine"`
	Tags    []NameRef `bson:"tags" json:"tags"`
}

// RecipeFilter holds optional search criteria. Empty fields are ignored.
type RecipeFilter struct {
	Tags        []string
	Cuisine     string
	Ingredients []string
	Name        string
}

// RecipeInput is a validated create/update payload
// swagger:model RecipeInput
type RecipeInput struct {
	// required: true
	// example: Chicken Rice
	Name string `json:"name" validate:"required,notblank"`

	// Cuisine name, resolved against the cuisines collection
	// required: true
	// example: Singaporean
	Cuisine string `json:"cuisine" validate:"required,notblank"`

	// Preparation time in minutes
	// example: 20
	PrepTime int `json:"prepTime" validate:"gte=0"`

	// Cooking time in minutes
	// example: 40
	CookTime int `json:"cookTime" validate:"gte=0"`

	// example: 4
	Servings int `json:"servings" validate:"gte=0"`

	// required: true
	Ingredients []Ingredient `json:"ingredients" validate:"required,min=1,dive"`

	// required: true
	Instructions []string `json:"instructions" validate:"required,min=1,dive,required,notblank"`

	// Tag names, resolved against the tags collection
	// required: true
	// example: ["Quick","Easy"]
	Tags []string `json:"tags" validate:"required,min=1,dive,required,notblank"`
}
