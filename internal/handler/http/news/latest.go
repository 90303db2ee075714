package news

import (
	"net/http"
	"strconv"

	"news-portal/internal/domain/entity"
	"news-portal/internal/handler/http/respond"
	newsUC "news-portal/internal/usecase/news"
)

const maxLatestLimit = 50

// LatestHandler serves the newest published articles for the home page.
type LatestHandler struct{ Svc *newsUC.Service }

func (h LatestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	limit := 5
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 || n > maxLatestLimit {
			respond.SafeError(w, http.StatusBadRequest,
				&entity.ValidationError{Field: "limit", Message: "must be between 1 and 50"})
			return
		}
		limit = n
	}

	items, err := h.Svc.Latest(r.Context(), limit)
	if err != nil {
		respond.SafeError(w, statusCode(err), err)
		return
	}
	respond.Success(w, http.StatusOK, "latest news retrieved", map[string]any{"items": toListDTOs(items)})
}
