// Package settings provides HTTP handlers for key-addressed site
// settings: public reads and authenticated writes.
package settings

import (
	"encoding/json"
	"errors"
	"net/http"

	"news-portal/internal/domain/entity"
	"news-portal/internal/handler/http/respond"
	settingsUC "news-portal/internal/usecase/settings"
)

// DTO represents the JSON structure for a single setting.
type DTO struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

func toDTO(s *entity.Setting) DTO {
	return DTO{Key: s.Key, Value: s.Value, Description: s.Description}
}

func statusCode(err error) int {
	var vErr *entity.ValidationError
	switch {
	case errors.As(err, &vErr):
		return http.StatusBadRequest
	case errors.Is(err, settingsUC.ErrSettingNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// ListHandler serves all settings as a key-value map.
type ListHandler struct{ Svc *settingsUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	items, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, statusCode(err), err)
		return
	}
	values := make(map[string]string, len(items))
	for _, s := range items {
		values[s.Key] = s.Value
	}
	respond.Success(w, http.StatusOK, "settings retrieved", values)
}

type GetHandler struct{ Svc *settingsUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	setting, err := h.Svc.Get(r.Context(), r.PathValue("key"))
	if err != nil {
		respond.SafeError(w, statusCode(err), err)
		return
	}
	respond.Success(w, http.StatusOK, "setting retrieved", toDTO(setting))
}

// SetHandler creates or replaces the value under the key in the path.
type SetHandler struct{ Svc *settingsUC.Service }

func (h SetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Svc.Set(r.Context(), r.PathValue("key"), req.Value); err != nil {
		respond.SafeError(w, statusCode(err), err)
		return
	}
	respond.Success(w, http.StatusOK, "setting saved", nil)
}

// BulkSetHandler applies several settings in one request. Writes are
// not atomic across keys.
type BulkSetHandler struct{ Svc *settingsUC.Service }

func (h BulkSetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req map[string]string
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req) == 0 {
		respond.Error(w, http.StatusBadRequest, "at least one setting is required")
		return
	}

	if err := h.Svc.SetMany(r.Context(), req); err != nil {
		respond.SafeError(w, statusCode(err), err)
		return
	}
	respond.Success(w, http.StatusOK, "settings saved", nil)
}
