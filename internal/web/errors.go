package web

import (
	"net/http"

	"github.com/go-chi/render"
)

type errorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, errorResponse{Error: msg})
}

func writeFieldError(w http.ResponseWriter, r *http.Request, msg string, fields []string) {
	render.Status(r, http.StatusUnprocessableEntity)
	render.JSON(w, r, errorResponse{Error: msg, Fields: fields})
}
