package news

import (
	"net/http"

	"news-portal/internal/handler/http/respond"
	newsUC "news-portal/internal/usecase/news"
)

// BreakingHandler serves the single newest published article.
type BreakingHandler struct{ Svc *newsUC.Service }

func (h BreakingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	item, err := h.Svc.Breaking(r.Context())
	if err != nil {
		respond.SafeError(w, statusCode(err), err)
		return
	}
	respond.Success(w, http.StatusOK, "breaking news retrieved", toDTO(item, false))
}
