package handlers

import "net/http"

// HelloResponse is the greeting of the root route
// swagger:model HelloResponse
type HelloResponse struct {
	// default: Hello World!
	Message string `json:"message"`
}

// EchoResponse repeats the query parameters of the request
// swagger:model EchoResponse
type EchoResponse struct {
	// default: Here are the query parameters you sent:
	Message   string `json:"message"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// NewHelloHandler returns the root greeting handler.
// @Summary Greeting
// @Tags misc
// @Produce json
// @Success 200 {object} handlers.HelloResponse
// @Router / [get]
func NewHelloHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HelloResponse{Message: "Hello World!"})
	}
}

// NewEchoHandler returns a handler repeating the firstName and lastName query parameters.
// @Summary Echo query parameters
// @Tags misc
// @Produce json
// @Param firstName query string false "First name"
// @Param lastName query string false "Last name"
// @Success 200 {object} handlers.EchoResponse
// @Router /echo [get]
func NewEchoHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		writeJSON(w, http.StatusOK, EchoResponse{
			Message:   "Here are the query parameters you sent:",
			FirstName: q.Get("firstName"),
			LastName:  q.Get("lastName"),
		})
	}
}
