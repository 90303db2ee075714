package authh_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"news-portal/internal/domain/entity"
	"news-portal/internal/handler/http/authh"
	authUC "news-portal/internal/usecase/auth"
)

type stubAdminRepo struct {
	admin *entity.Admin
}

func newStubAdminRepo(t *testing.T) *stubAdminRepo {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return &stubAdminRepo{admin: &entity.Admin{
		ID:           7,
		Username:     "editor",
		Email:        "editor@example.com",
		PasswordHash: string(hash),
		IsActive:     true,
	}}
}

func (s *stubAdminRepo) GetByID(_ context.Context, id int64) (*entity.Admin, error) {
	if s.admin != nil && s.admin.ID == id {
		return s.admin, nil
	}
	return nil, nil
}

func (s *stubAdminRepo) GetByEmail(_ context.Context, email string) (*entity.Admin, error) {
	if s.admin != nil && s.admin.Email == email {
		return s.admin, nil
	}
	return nil, nil
}

func (s *stubAdminRepo) GetByUsername(_ context.Context, username string) (*entity.Admin, error) {
	if s.admin != nil && s.admin.Username == username {
		return s.admin, nil
	}
	return nil, nil
}

func (s *stubAdminRepo) UpdatePassword(_ context.Context, id int64, hash string) (bool, error) {
	if s.admin == nil || s.admin.ID != id {
		return false, nil
	}
	s.admin.PasswordHash = hash
	return true, nil
}

func newTestService(t *testing.T) *authUC.Service {
	t.Helper()
	return &authUC.Service{
		Repo:   newStubAdminRepo(t),
		Secret: testSecret,
		Expiry: time.Hour,
	}
}

func decodeEnvelope(t *testing.T, body []byte) (bool, string, map[string]any) {
	t.Helper()
	var env struct {
		Success bool           `json:"success"`
		Message string         `json:"message"`
		Data    map[string]any `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	return env.Success, env.Message, env.Data
}

func TestLoginHandler_Success(t *testing.T) {
	h := authh.LoginHandler{Svc: newTestService(t)}

	r := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"editor","password":"hunter22"}`))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body)
	}
	ok, _, data := decodeEnvelope(t, w.Body.Bytes())
	if !ok {
		t.Fatal("success = false, want true")
	}
	token, _ := data["token"].(string)
	if token == "" {
		t.Fatal("data.token missing")
	}
	if _, err := authUC.VerifyToken(testSecret, token); err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	admin, _ := data["admin"].(map[string]any)
	if admin["username"] != "editor" || admin["email"] != "editor@example.com" {
		t.Fatalf("data.admin = %v", admin)
	}
	if _, leaked := admin["password"]; leaked {
		t.Fatal("password must not appear in the response")
	}
}

func TestLoginHandler_ByEmail(t *testing.T) {
	h := authh.LoginHandler{Svc: newTestService(t)}

	r := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"editor@example.com","password":"hunter22"}`))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body)
	}
}

func TestLoginHandler_EmailKey(t *testing.T) {
	h := authh.LoginHandler{Svc: newTestService(t)}

	// The identifier may arrive under "email" instead of "username".
	r := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"editor@example.com","password":"hunter22"}`))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body)
	}
	ok, _, data := decodeEnvelope(t, w.Body.Bytes())
	if !ok {
		t.Fatal("success = false, want true")
	}
	if token, _ := data["token"].(string); token == "" {
		t.Fatal("data.token missing")
	}
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	h := authh.LoginHandler{Svc: newTestService(t)}

	r := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"editor","password":"nope"}`))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	ok, msg, _ := decodeEnvelope(t, w.Body.Bytes())
	if ok || !strings.Contains(msg, "invalid credentials") {
		t.Fatalf("envelope = %v %q", ok, msg)
	}
}

func TestLoginHandler_MissingFields(t *testing.T) {
	h := authh.LoginHandler{Svc: newTestService(t)}

	r := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"editor"}`))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestLoginHandler_BadJSON(t *testing.T) {
	h := authh.LoginHandler{Svc: newTestService(t)}

	r := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{"))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestChangePasswordHandler_Roundtrip(t *testing.T) {
	svc := newTestService(t)
	gate := authh.NewGate(testSecret)
	protected := gate.Require(authh.ChangePasswordHandler{Svc: svc})

	r := httptest.NewRequest(http.MethodPut, "/api/auth/change-password",
		strings.NewReader(`{"oldPassword":"hunter22","newPassword":"hunter23"}`))
	r.Header.Set("Authorization", "Bearer "+issueTestToken(t, time.Hour))
	w := httptest.NewRecorder()
	protected.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body)
	}

	// The old password stops working, the new one logs in.
	if _, err := svc.Login(context.Background(), authUC.LoginInput{
		Username: "editor", Password: "hunter22",
	}); err == nil {
		t.Fatal("old password still accepted")
	}
	if _, err := svc.Login(context.Background(), authUC.LoginInput{
		Username: "editor", Password: "hunter23",
	}); err != nil {
		t.Fatalf("new password rejected: %v", err)
	}
}

func TestChangePasswordHandler_Unauthenticated(t *testing.T) {
	gate := authh.NewGate(testSecret)
	protected := gate.Require(authh.ChangePasswordHandler{Svc: newTestService(t)})

	r := httptest.NewRequest(http.MethodPut, "/api/auth/change-password",
		strings.NewReader(`{"oldPassword":"hunter22","newPassword":"hunter23"}`))
	w := httptest.NewRecorder()
	protected.ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestChangePasswordHandler_TooShort(t *testing.T) {
	gate := authh.NewGate(testSecret)
	protected := gate.Require(authh.ChangePasswordHandler{Svc: newTestService(t)})

	r := httptest.NewRequest(http.MethodPut, "/api/auth/change-password",
		strings.NewReader(`{"oldPassword":"hunter22","newPassword":"five5"}`))
	r.Header.Set("Authorization", "Bearer "+issueTestToken(t, time.Hour))
	w := httptest.NewRecorder()
	protected.ServeHTTP(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	ok, msg, _ := decodeEnvelope(t, w.Body.Bytes())
	if ok || !strings.Contains(msg, "must be at least") {
		t.Fatalf("envelope = %v %q", ok, msg)
	}
}

func TestMeHandler(t *testing.T) {
	gate := authh.NewGate(testSecret)
	protected := gate.Require(authh.MeHandler{})

	r := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	r.Header.Set("Authorization", "Bearer "+issueTestToken(t, time.Hour))
	w := httptest.NewRecorder()
	protected.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	_, _, data := decodeEnvelope(t, w.Body.Bytes())
	if data["username"] != "editor" || data["id"] != float64(7) {
		t.Fatalf("data = %v", data)
	}
}
