package settings

import (
	"net/http"

	"news-portal/internal/handler/http/authh"
	settingsUC "news-portal/internal/usecase/settings"
)

// Register wires the settings routes. Reads are public so the site can
// render titles and footers; writes sit behind the gate.
func Register(mux *http.ServeMux, svc *settingsUC.Service, gate *authh.Gate) {
	mux.Handle("GET    /api/settings", ListHandler{svc})
	mux.Handle("GET    /api/settings/{key}", GetHandler{svc})

	mux.Handle("PUT    /api/settings/{key}", gate.Require(SetHandler{svc}))
	mux.Handle("PUT    /api/settings", gate.Require(BulkSetHandler{svc}))
}
