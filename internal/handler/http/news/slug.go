package news

import (
	"net/http"

	"news-portal/internal/handler/http/respond"
	newsUC "news-portal/internal/usecase/news"
)

// SlugHandler serves the public article page. Only published articles
// are visible; a successful read counts one view.
type SlugHandler struct{ Svc *newsUC.Service }

func (h SlugHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	item, err := h.Svc.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		respond.SafeError(w, statusCode(err), err)
		return
	}
	respond.Success(w, http.StatusOK, "news retrieved", toDTO(item, true))
}
