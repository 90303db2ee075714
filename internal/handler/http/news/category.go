package news

import (
	"net/http"

	"news-portal/internal/common/pagination"
	"news-portal/internal/handler/http/respond"
	newsUC "news-portal/internal/usecase/news"
)

// CategoryHandler serves published articles in one category, newest
// first.
type CategoryHandler struct {
	Svc           *newsUC.Service
	PaginationCfg pagination.Config
}

func (h CategoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.ListByCategory(r.Context(), r.PathValue("slug"), params)
	if err != nil {
		respond.SafeError(w, statusCode(err), err)
		return
	}
	respond.Paginated(w, http.StatusOK, "news retrieved", toListDTOs(result.Items), result.Pagination)
}
