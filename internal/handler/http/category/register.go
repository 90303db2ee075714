package category

import (
	"net/http"

	"news-portal/internal/handler/http/authh"
	catUC "news-portal/internal/usecase/category"
)

// Register wires the category routes. Reads are public; mutations sit
// behind the gate.
func Register(mux *http.ServeMux, svc *catUC.Service, gate *authh.Gate) {
	mux.Handle("GET    /api/categories", ListHandler{svc})
	mux.Handle("GET    /api/categories/{key}", GetHandler{svc})

	mux.Handle("POST   /api/categories", gate.Require(CreateHandler{svc}))
	mux.Handle("PUT    /api/categories/{id}", gate.Require(UpdateHandler{svc}))
	mux.Handle("DELETE /api/categories/{id}", gate.Require(DeleteHandler{svc}))
}
