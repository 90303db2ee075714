package news

import (
	"encoding/json"
	"net/http"

	"news-portal/internal/handler/http/authh"
	"news-portal/internal/handler/http/respond"
	newsUC "news-portal/internal/usecase/news"
)

type CreateHandler struct{ Svc *newsUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	claims := authh.IdentityFromContext(r.Context())
	if claims == nil {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req struct {
		Title      string `json:"title"`
		Summary    string `json:"summary"`
		Content    string `json:"content"`
		Thumbnail  string `json:"thumbnail"`
		CategoryID int64  `json:"categoryId"`
		Status     string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.Svc.Create(r.Context(), newsUC.CreateInput{
		Title:      req.Title,
		Summary:    req.Summary,
		Content:    req.Content,
		Thumbnail:  req.Thumbnail,
		CategoryID: req.CategoryID,
		AdminID:    claims.ID,
		Status:     req.Status,
	})
	if err != nil {
		respond.SafeError(w, statusCode(err), err)
		return
	}
	respond.Success(w, http.StatusCreated, "news created", map[string]any{"id": id})
}
