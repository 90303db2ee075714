// Package socialmedia provides HTTP handlers for the site's social
// media links: a public active listing and the authenticated admin
// CRUD with soft delete and restore.
package socialmedia

import (
	"encoding/json"
	"errors"
	"net/http"

	"news-portal/internal/domain/entity"
	"news-portal/internal/handler/http/pathutil"
	"news-portal/internal/handler/http/respond"
	smUC "news-portal/internal/usecase/socialmedia"
)

// DTO represents the JSON structure for social media link data
// transfer. IsActive only appears on the admin listing.
type DTO struct {
	ID           int64  `json:"id"`
	PlatformName string `json:"platform_name"`
	URL          string `json:"url"`
	IconName     string `json:"icon_name,omitempty"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active,omitempty"`
}

func toDTO(l *entity.SocialMedia, withActive bool) DTO {
	out := DTO{
		ID:           l.ID,
		PlatformName: l.PlatformName,
		URL:          l.URL,
		IconName:     l.IconName,
		DisplayOrder: l.DisplayOrder,
	}
	if withActive {
		active := l.IsActive
		out.IsActive = &active
	}
	return out
}

func toDTOs(links []*entity.SocialMedia, withActive bool) []DTO {
	out := make([]DTO, 0, len(links))
	for _, l := range links {
		out = append(out, toDTO(l, withActive))
	}
	return out
}

func statusCode(err error) int {
	var vErr *entity.ValidationError
	switch {
	case errors.As(err, &vErr):
		return http.StatusBadRequest
	case errors.Is(err, smUC.ErrPlatformExists):
		return http.StatusBadRequest
	case errors.Is(err, smUC.ErrLinkNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

type request struct {
	PlatformName string `json:"platformName"`
	URL          string `json:"url"`
	IconName     string `json:"iconName"`
	DisplayOrder int    `json:"displayOrder"`
}

func (r request) toInput() smUC.Input {
	return smUC.Input{
		PlatformName: r.PlatformName,
		URL:          r.URL,
		IconName:     r.IconName,
		DisplayOrder: r.DisplayOrder,
	}
}

// PublicListHandler serves the active links in display order.
type PublicListHandler struct{ Svc *smUC.Service }

func (h PublicListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	links, err := h.Svc.ListActive(r.Context())
	if err != nil {
		respond.SafeError(w, statusCode(err), err)
		return
	}
	respond.Success(w, http.StatusOK, "social media retrieved", map[string]any{"items": toDTOs(links, false)})
}

// AdminListHandler serves every link, deactivated ones included.
type AdminListHandler struct{ Svc *smUC.Service }

func (h AdminListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	links, err := h.Svc.ListAll(r.Context())
	if err != nil {
		respond.SafeError(w, statusCode(err), err)
		return
	}
	respond.Success(w, http.StatusOK, "social media retrieved", map[string]any{"items": toDTOs(links, true)})
}

type CreateHandler struct{ Svc *smUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.Svc.Create(r.Context(), req.toInput())
	if err != nil {
		respond.SafeError(w, statusCode(err), err)
		return
	}
	respond.Success(w, http.StatusCreated, "social media created", map[string]any{"id": id})
}

type UpdateHandler struct{ Svc *smUC.Service }

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Svc.Update(r.Context(), id, req.toInput()); err != nil {
		respond.SafeError(w, statusCode(err), err)
		return
	}
	respond.Success(w, http.StatusOK, "social media updated", nil)
}

// DeleteHandler deactivates a link; RestoreHandler brings it back.
type DeleteHandler struct{ Svc *smUC.Service }

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
	respond.Success(w, http.StatusOK, "social media deleted", nil)
}

type RestoreHandler struct{ Svc *smUC.Service }

func (h RestoreHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Restore(r.Context(), id); err != nil {
		respond.SafeError(w, statusCode(err), err)
		return
	}
	respond.Success(w, http.StatusOK, "social media restored", nil)
}
