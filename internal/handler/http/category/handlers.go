package category

import (
	"encoding/json"
	"net/http"
	"strconv"

	"news-portal/internal/domain/entity"
	"news-portal/internal/handler/http/pathutil"
	"news-portal/internal/handler/http/respond"
	catUC "news-portal/internal/usecase/category"
)

type ListHandler struct{ Svc *catUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, statusCode(err), err)
		return
	}
	respond.Success(w, http.StatusOK, "categories retrieved", map[string]any{"items": toDTOs(categories)})
}

// GetHandler resolves a category by id when the path segment is
// numeric, by slug otherwise.
type GetHandler struct{ Svc *catUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	var category *entity.Category
	var err error
	if id, parseErr := strconv.ParseInt(key, 10, 64); parseErr == nil {
		category, err = h.Svc.Get(r.Context(), id)
	} else {
		category, err = h.Svc.GetBySlug(r.Context(), key)
	}
	if err != nil {
		respond.SafeError(w, statusCode(err), err)
		return
	}
	respond.Success(w, http.StatusOK, "category retrieved", toDTO(category))
}

type CreateHandler struct{ Svc *catUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.Svc.Create(r.Context(), catUC.CreateInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respond.SafeError(w, statusCode(err), err)
		return
	}
	respond.Success(w, http.StatusCreated, "category created", map[string]any{"id": id})
}

type UpdateHandler struct{ Svc *catUC.Service }

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Svc.Update(r.Context(), catUC.UpdateInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	}); err != nil {
		respond.SafeError(w, statusCode(err), err)
		return
	}
	respond.Success(w, http.StatusOK, "category updated", nil)
}

// DeleteHandler deactivates a category. Articles keep the reference and
// stay readable.
type DeleteHandler struct{ Svc *catUC.Service }

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
	respond.Success(w, http.StatusOK, "category deleted", nil)
}
