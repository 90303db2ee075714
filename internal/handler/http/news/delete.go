package news

import (
	"net/http"

	"news-portal/internal/handler/http/pathutil"
	"news-portal/internal/handler/http/respond"
	newsUC "news-portal/internal/usecase/news"
)

type DeleteHandler struct{ Svc *newsUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.SafeError(w, statusCode(err), err)
		return
	}
	respond.Success(w, http.StatusOK, "news deleted", nil)
}
