// Package contact provides HTTP handlers for the public contact form
// and the authenticated admin inbox.
package contact

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"news-portal/internal/common/pagination"
	"news-portal/internal/domain/entity"
	"news-portal/internal/handler/http/pathutil"
	"news-portal/internal/handler/http/respond"
	contactUC "news-portal/internal/usecase/contact"
)

// DTO represents the JSON structure for contact message data transfer.
type DTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func toDTO(c *entity.Contact) DTO {
	return DTO{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Message:   c.Message,
		IsRead:    c.IsRead,
		CreatedAt: c.CreatedAt,
	}
}

func toDTOs(items []*entity.Contact) []DTO {
	out := make([]DTO, 0, len(items))
	for _, c := range items {
		out = append(out, toDTO(c))
	}
	return out
}

func statusCode(err error) int {
	var vErr *entity.ValidationError
	switch {
	case errors.As(err, &vErr):
		return http.StatusBadRequest
	case errors.Is(err, contactUC.ErrContactNotFound):
		return http.StatusNotFound
	case errors.Is(err, pathutil.ErrInvalidID):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// CreateHandler accepts a submitted contact form. Public, rate limited
// at registration time.
type CreateHandler struct{ Svc *contactUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.Svc.Create(r.Context(), contactUC.CreateInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		respond.SafeError(w, statusCode(err), err)
		return
	}
	respond.Success(w, http.StatusCreated, "message received", map[string]any{"id": id})
}

type ListHandler struct {
	Svc           *contactUC.Service
	PaginationCfg pagination.Config
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.List(r.Context(), params)
	if err != nil {
		respond.SafeError(w, statusCode(err), err)
		return
	}
	respond.Paginated(w, http.StatusOK, "messages retrieved", toDTOs(result.Items), result.Pagination)
}

// GetHandler fetches one message; reading it marks it read.
type GetHandler struct{ Svc *contactUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	c, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.SafeError(w, statusCode(err), err)
		return
	}
	respond.Success(w, http.StatusOK, "message retrieved", toDTO(c))
}

type MarkReadHandler struct{ Svc *contactUC.Service }

func (h MarkReadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.MarkRead(r.Context(), id); err != nil {
		respond.SafeError(w, statusCode(err), err)
		return
	}
	respond.Success(w, http.StatusOK, "message marked read", nil)
}

type DeleteHandler struct{ Svc *contactUC.Service }

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
	respond.Success(w, http.StatusOK, "message deleted", nil)
}

// UnreadCountHandler serves the admin inbox badge.
type UnreadCountHandler struct{ Svc *contactUC.Service }

func (h UnreadCountHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	count, err := h.Svc.UnreadCount(r.Context())
	if err != nil {
		respond.SafeError(w, statusCode(err), err)
		return
	}
	respond.Success(w, http.StatusOK, "unread count retrieved", map[string]any{"count": count})
}
