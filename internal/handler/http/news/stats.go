package news

import (
	"net/http"

	httpapi "news-portal/internal/handler/http"
	"news-portal/internal/handler/http/respond"
	newsUC "news-portal/internal/usecase/news"
)

// StatsHandler serves the dashboard counters and refreshes the
// Prometheus article gauges as a side effect.
type StatsHandler struct{ Svc *newsUC.Service }

func (h StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Svc.Stats(r.Context())
	if err != nil {
		respond.SafeError(w, statusCode(err), err)
		return
	}
	httpapi.UpdateNewsGauges(stats.Total, stats.Published, stats.TotalViews)

	respond.Success(w, http.StatusOK, "news stats retrieved", map[string]any{
		"total":      stats.Total,
		"published":  stats.Published,
		"draft":      stats.Draft,
		"totalViews": stats.TotalViews,
	})
}
