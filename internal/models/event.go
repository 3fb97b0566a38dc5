package models

// Recipe event types published after successful writes.
const (
	RecipeCreated = "recipe.created"
	RecipeUpdated = "recipe.updated"
	RecipeDeleted = "recipe.deleted"
)

// RecipeEvent is the broker payload describing a recipe write.
type RecipeEvent struct {
	EventID   string `json:"eventId"`   // unique identifier of the event
	Type      string `json:"type"`      // one of RecipeCreated, RecipeUpdated, RecipeDeleted
	RecipeID  string `json:"recipeId"`  // hex id of the affected recipe
	Timestamp int64  `json:"timestamp"` // unix seconds
}
