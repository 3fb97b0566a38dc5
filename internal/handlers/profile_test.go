package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sbilibin2017/recipe-book/internal/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileHandler(t *testing.T) {
	t.Run("returns claims", func(t *testing.T) {
		claims := &jwt.Claims{UserID: "u-1", Email: "alice@example.com"}
		handler := NewProfileHandler(func(context.Context) (*jwt.Claims, bool) { return claims, true })

		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodGet, "/profile", nil))

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			User map[string]any `json:"user"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "u-1", resp.User["userId"])
		assert.Equal(t, "alice@example.com", resp.User["email"])
	})

	t.Run("no claims", func(t *testing.T) {
		handler := NewProfileHandler(func(context.Context) (*jwt.Claims, bool) { return nil, false })

		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodGet, "/profile", nil))

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.JSONEq(t, `{"error":"Forbidden"}`, rr.Body.String())
	})
}
