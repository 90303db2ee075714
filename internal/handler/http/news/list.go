package news

import (
	"net/http"
	"strconv"

	"news-portal/internal/common/pagination"
	"news-portal/internal/domain/entity"
	"news-portal/internal/handler/http/respond"
	"news-portal/internal/repository"
	newsUC "news-portal/internal/usecase/news"
)

// ListHandler serves the editorial listing with optional status,
// category and search filters.
type ListHandler struct {
	Svc           *newsUC.Service
	PaginationCfg pagination.Config
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	filters, err := parseFilters(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.List(r.Context(), params, filters)
	if err != nil {
		respond.SafeError(w, statusCode(err), err)
		return
	}
	respond.Paginated(w, http.StatusOK, "news retrieved", toListDTOs(result.Items), result.Pagination)
}

func parseFilters(r *http.Request) (repository.NewsFilters, error) {
	var filters repository.NewsFilters

	if status := r.URL.Query().Get("status"); status != "" {
		st := entity.Status(status)
		if !st.Valid() {
			return filters, newsUC.ErrInvalidStatus
		}
		filters.Status = st
	}
	if categoryID := r.URL.Query().Get("categoryId"); categoryID != "" {
		id, err := strconv.ParseInt(categoryID, 10, 64)
		if err != nil || id <= 0 {
			return filters, &entity.ValidationError{Field: "categoryId", Message: "must be a positive integer"}
		}
		filters.CategoryID = id
	}
	filters.Search = r.URL.Query().Get("search")
	return filters, nil
}
