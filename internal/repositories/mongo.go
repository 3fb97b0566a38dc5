package repositories

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names of the recipe_book database.
const (
	RecipesCollection  = "recipes"
	CuisinesCollection = "cuisines"
	TagsCollection     = "tags"
	UsersCollection    = "users"
)

// parseObjectID converts a hex id to an ObjectID.
// ok is false for malformed ids, which cannot match any document.
func parseObjectID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	return oid, err == nil
}

// containsIgnoreCase matches values containing s, ignoring case.
func containsIgnoreCase(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

// equalsIgnoreCase matches values equal to s, ignoring case.
func equalsIgnoreCase(s string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(s) + "$", Options: "i"}
}

// compact trims every value and drops the empty ones.
func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
