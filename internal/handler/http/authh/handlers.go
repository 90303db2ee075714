package authh

import (
	"encoding/json"
	"errors"
	"net/http"

	"news-portal/internal/domain/entity"
	"news-portal/internal/handler/http/respond"
	authUC "news-portal/internal/usecase/auth"
)

// AdminDTO is the public identity shape returned by login and profile
// endpoints. The password hash never leaves the server.
type AdminDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type LoginHandler struct{ Svc *authUC.Service }

func (h LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Clients may send the identifier under either key.
	identifier := req.Username
	if identifier == "" {
		identifier = req.Email
	}

	result, err := h.Svc.Login(r.Context(), authUC.LoginInput{
		Username: identifier,
		Password: req.Password,
	})
	if err != nil {
		code := http.StatusInternalServerError
		var vErr *entity.ValidationError
		switch {
		case errors.As(err, &vErr):
			code = http.StatusBadRequest
		case errors.Is(err, authUC.ErrInvalidCredentials):
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.Success(w, http.StatusOK, "login successful", map[string]any{
		"token": result.Token,
		"admin": AdminDTO{
			ID:       result.Admin.ID,
			Username: result.Admin.Username,
			Email:    result.Admin.Email,
		},
	})
}

type ChangePasswordHandler struct{ Svc *authUC.Service }

func (h ChangePasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	claims := IdentityFromContext(r.Context())
	if claims == nil {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Svc.ChangePassword(r.Context(), claims.ID, req.OldPassword, req.NewPassword); err != nil {
		code := http.StatusInternalServerError
		var vErr *entity.ValidationError
		switch {
		case errors.As(err, &vErr):
			code = http.StatusBadRequest
		case errors.Is(err, authUC.ErrInvalidCredentials):
			code = http.StatusBadRequest
		case errors.Is(err, authUC.ErrAdminNotFound):
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.Success(w, http.StatusOK, "password changed", nil)
}

// MeHandler returns the identity carried by the verified token.
type MeHandler struct{}

func (MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	claims := IdentityFromContext(r.Context())
	if claims == nil {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}
	respond.Success(w, http.StatusOK, "profile retrieved", AdminDTO{
		ID:       claims.ID,
		Username: claims.Username,
		Email:    claims.Email,
	})
}

// Register wires the auth endpoints. Login runs behind the supplied
// rate limiter; profile and password change run behind the gate.
func Register(mux *http.ServeMux, svc *authUC.Service, gate *Gate, loginLimiter func(http.Handler) http.Handler) {
	mux.Handle("POST   /api/auth/login", loginLimiter(LoginHandler{svc}))
	mux.Handle("GET    /api/auth/me", gate.Require(MeHandler{}))
	mux.Handle("PUT    /api/auth/change-password", gate.Require(ChangePasswordHandler{svc}))
}
