package contact

import (
	"net/http"

	"news-portal/internal/common/pagination"
	"news-portal/internal/handler/http/authh"
	contactUC "news-portal/internal/usecase/contact"
)

// Register wires the contact routes. Submission is public and rate
// limited; the inbox sits behind the gate.
func Register(mux *http.ServeMux, svc *contactUC.Service, gate *authh.Gate, paginationCfg pagination.Config, submitLimiter func(http.Handler) http.Handler) {
	mux.Handle("POST   /api/contact", submitLimiter(CreateHandler{svc}))

	mux.Handle("GET    /api/contact", gate.Require(ListHandler{Svc: svc, PaginationCfg: paginationCfg}))
	mux.Handle("GET    /api/contact/unread-count", gate.Require(UnreadCountHandler{svc}))
	mux.Handle("GET    /api/contact/{id}", gate.Require(GetHandler{svc}))
	mux.Handle("PATCH  /api/contact/{id}/read", gate.Require(MarkReadHandler{svc}))
	mux.Handle("DELETE /api/contact/{id}", gate.Require(DeleteHandler{svc}))
}
