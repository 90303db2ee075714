package news

import (
	"encoding/json"
	"net/http"

	"news-portal/internal/handler/http/pathutil"
	"news-portal/internal/handler/http/respond"
	newsUC "news-portal/internal/usecase/news"
)

type UpdateHandler struct{ Svc *newsUC.Service }

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Title      string `json:"title"`
		Summary    string `json:"summary"`
		Content    string `json:"content"`
		Thumbnail  string `json:"thumbnail"`
		CategoryID int64  `json:"categoryId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Svc.Update(r.Context(), newsUC.UpdateInput{
		ID:         id,
		Title:      req.Title,
		Summary:    req.Summary,
		Content:    req.Content,
		Thumbnail:  req.Thumbnail,
		CategoryID: req.CategoryID,
	}); err != nil {
		respond.SafeError(w, statusCode(err), err)
		return
	}
	respond.Success(w, http.StatusOK, "news updated", nil)
}
