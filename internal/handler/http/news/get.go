package news

import (
	"net/http"

	"news-portal/internal/handler/http/pathutil"
	"news-portal/internal/handler/http/respond"
	newsUC "news-portal/internal/usecase/news"
)

// GetHandler serves the editorial detail view, visible in any status.
type GetHandler struct{ Svc *newsUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	item, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		respond.SafeError(w, statusCode(err), err)
		return
	}
	respond.Success(w, http.StatusOK, "news retrieved", toDTO(item, true))
}
