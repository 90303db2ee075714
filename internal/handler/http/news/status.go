package news

import (
	"encoding/json"
	"net/http"

	"news-portal/internal/handler/http/pathutil"
	"news-portal/internal/handler/http/respond"
	newsUC "news-portal/internal/usecase/news"
)

// StatusHandler moves an article through its lifecycle. Transitions are
// flat: draft, published and hidden may each move to any other.
type StatusHandler struct{ Svc *newsUC.Service }

func (h StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Svc.SetStatus(r.Context(), id, req.Status); err != nil {
		respond.SafeError(w, statusCode(err), err)
		return
	}
	respond.Success(w, http.StatusOK, "news status updated", nil)
}
