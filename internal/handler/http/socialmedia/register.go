package socialmedia

import (
	"net/http"

	"news-portal/internal/handler/http/authh"
	smUC "news-portal/internal/usecase/socialmedia"
)

// Register wires the social media routes. The public site sees active
// links only; the admin surface sits behind the gate.
func Register(mux *http.ServeMux, svc *smUC.Service, gate *authh.Gate) {
	mux.Handle("GET    /api/social-media", PublicListHandler{svc})

	mux.Handle("GET    /api/social-media/admin", gate.Require(AdminListHandler{svc}))
	mux.Handle("POST   /api/social-media", gate.Require(CreateHandler{svc}))
	mux.Handle("PUT    /api/social-media/{id}", gate.Require(UpdateHandler{svc}))
	mux.Handle("DELETE /api/social-media/{id}", gate.Require(DeleteHandler{svc}))
	mux.Handle("PATCH  /api/social-media/{id}/restore", gate.Require(RestoreHandler{svc}))
}
