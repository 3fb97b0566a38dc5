package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/recipe-book/internal/jwt"
)

// ProfileResponse carries the claims of the authenticated user
// swagger:model ProfileResponse
type ProfileResponse struct {
	User *jwt.Claims `json:"user"`
}

// NewProfileHandler returns an HTTP handler echoing the caller's token claims.
// @Summary Current user
// @Description Returns the claims of the bearer token
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.ProfileResponse "Token claims"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Router /profile [get]
// @Security BearerAuth
func NewProfileHandler(claimsFromContext func(ctx context.Context) (*jwt.Claims, bool)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusForbidden, "Forbidden")
			return
		}

		writeJSON(w, http.StatusOK, ProfileResponse{User: claims})
	}
}
