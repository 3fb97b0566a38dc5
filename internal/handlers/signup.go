package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/recipe-book/internal/logger"
	"github.com/sbilibin2017/recipe-book/internal/services"
)

//go:generate mockgen -source=signup.go -destination=mock_signup.go -package=handlers

// Signuper defines the interface that the service must implement.
type Signuper interface {
	Signup(ctx context.Context, email, password string) (string, error)
}

// SignupRequest represents the JSON body for user signup
// swagger:model SignupRequest
type SignupRequest struct {
	// Email, used as the login
	// required: true
	// default: john@example.com
	Email string `json:"email" validate:"required,email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required"`
}

// SignupResult acknowledges the stored user
// swagger:model SignupResult
type SignupResult struct {
	// Id of the new user
	InsertedID string `json:"insertedId"`
}

// SignupResponse represents a successful signup response
// swagger:model SignupResponse
type SignupResponse struct {
	// Success message
	// default: User created
	Message string       `json:"message"`
	Result  SignupResult `json:"result"`
}

// NewSignupHandler returns an HTTP handler for user signup.
// @Summary Create a user
// @Description Creates a new user account. The password is hashed before storing. Emails are not checked for uniqueness.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "User signup request"
// @Success 201 {object} handlers.SignupResponse "User created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users [post]
func NewSignupHandler(svc Signuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest

		if err := decodeAndValidate(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		id, err := svc.Signup(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, internalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, SignupResponse{
			Message: "User created",
			Result:  SignupResult{InsertedID: id},
		})
	}
}
