package news

import (
	"net/http"

	"news-portal/internal/common/pagination"
	"news-portal/internal/handler/http/authh"
	newsUC "news-portal/internal/usecase/news"
)

// Register wires the article routes. Public reads only ever see
// published articles; everything else sits behind the gate.
func Register(mux *http.ServeMux, svc *newsUC.Service, gate *authh.Gate, paginationCfg pagination.Config) {
	mux.Handle("GET    /api/news/latest", LatestHandler{svc})
	mux.Handle("GET    /api/news/breaking", BreakingHandler{svc})
	mux.Handle("GET    /api/news/category/{slug}", CategoryHandler{Svc: svc, PaginationCfg: paginationCfg})
	mux.Handle("GET    /api/news/{slug}", SlugHandler{svc})

	mux.Handle("GET    /api/news", gate.Require(ListHandler{Svc: svc, PaginationCfg: paginationCfg}))
	mux.Handle("POST   /api/news", gate.Require(CreateHandler{svc}))
	mux.Handle("PUT    /api/news/{id}", gate.Require(UpdateHandler{svc}))
	mux.Handle("PATCH  /api/news/{id}/status", gate.Require(StatusHandler{svc}))
	mux.Handle("DELETE /api/news/{id}", gate.Require(DeleteHandler{svc}))
	mux.Handle("GET    /api/news/admin/{id}", gate.Require(GetHandler{svc}))
	mux.Handle("GET    /api/news/admin/stats", gate.Require(StatsHandler{svc}))
}
