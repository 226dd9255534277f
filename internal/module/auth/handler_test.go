package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jakpabi/churchbase/internal/domain"
)

// mockService implements Service for handler tests.
type mockService struct {
	loginResp    *TokenResponse
	loginErr     error
	registerResp *domain.User
	registerErr  error
}

func (m *mockService) Login(_ context.Context, _, _ string) (*TokenResponse, error) {
	return m.loginResp, m.loginErr
}

func (m *mockService) Register(_ context.Context, _, _, _ string) (*domain.User, error) {
	return m.registerResp, m.registerErr
}

func setupAuthRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")
	NewModule(NewHandler(svc)).RegisterRoutes(api)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginHandler_Success(t *testing.T) {
	r := setupAuthRouter(&mockService{
		loginResp: &TokenResponse{Token: "jwt-abc", ExpiresAt: 1700000000},
	})

	w := postJSON(t, r, "/api/v1/auth/login", `{"email":"alice@example.com","password":"password123"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want %d; body: %s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp struct {
		Code    int           `json:"code"`
		Message string        `json:"message"`
		Data    TokenResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Data.Token != "jwt-abc" {
		t.Errorf("token = %q; want %q", resp.Data.Token, "jwt-abc")
	}
	if resp.Data.ExpiresAt != 1700000000 {
		t.Errorf("expires_at = %d; want %d", resp.Data.ExpiresAt, 1700000000)
	}
}

func TestLoginHandler_InvalidBody(t *testing.T) {
	r := setupAuthRouter(&mockService{})

	tests := []struct {
		name string
		body string
	}{
		{"missing email", `{"password":"password123"}`},
		{"missing password", `{"email":"alice@example.com"}`},
		{"invalid email", `{"email":"not-an-email","password":"password123"}`},
		{"short password", `{"email":"alice@example.com","password":"short"}`},
		{"malformed json", `{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, r, "/api/v1/auth/login", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d; want %d", w.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestLoginHandler_Unauthorized(t *testing.T) {
	r := setupAuthRouter(&mockService{loginErr: domain.ErrUnauthorized})

	w := postJSON(t, r, "/api/v1/auth/login", `{"email":"alice@example.com","password":"wrongpassword"}`)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d; want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestRegisterHandler_Success(t *testing.T) {
	roleID := uuid.New()
	user := &domain.User{Name: "Alice", Email: "alice@example.com", RoleID: &roleID}
	user.ID = uuid.New()
	user.CreatedDate = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	r := setupAuthRouter(&mockService{registerResp: user})

	w := postJSON(t, r, "/api/v1/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"password123"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d; want %d; body: %s", w.Code, http.StatusCreated, w.Body.String())
	}

	var resp struct {
		Code    int              `json:"code"`
		Message string           `json:"message"`
		Data    RegisterResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Data.ID != user.ID {
		t.Errorf("id = %s; want %s", resp.Data.ID, user.ID)
	}
	if resp.Data.Name != "Alice" {
		t.Errorf("name = %q; want %q", resp.Data.Name, "Alice")
	}
	if resp.Data.Email != "alice@example.com" {
		t.Errorf("email = %q; want %q", resp.Data.Email, "alice@example.com")
	}
	if resp.Data.RoleID == nil || *resp.Data.RoleID != roleID {
		t.Errorf("role_id = %v; want %s", resp.Data.RoleID, roleID)
	}
	if !resp.Data.CreatedDate.Equal(user.CreatedDate) {
		t.Errorf("created_date = %v; want %v", resp.Data.CreatedDate, user.CreatedDate)
	}
	if strings.Contains(w.Body.String(), "password") {
		t.Error("response must not contain password data")
	}
}

func TestRegisterHandler_DuplicateEmail(t *testing.T) {
	r := setupAuthRouter(&mockService{
		registerErr: domain.NewAppError(domain.CodeUniqueViolation, "'email' already exists", nil),
	})

	w := postJSON(t, r, "/api/v1/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"password123"}`)

	if w.Code != http.StatusConflict {
		t.Errorf("status = %d; want %d", w.Code, http.StatusConflict)
	}
}

func TestRegisterHandler_InvalidBody(t *testing.T) {
	r := setupAuthRouter(&mockService{})

	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"alice@example.com","password":"password123"}`},
		{"missing email", `{"name":"Alice","password":"password123"}`},
		{"short password", `{"name":"Alice","email":"alice@example.com","password":"short"}`},
		{"name too long", `{"name":"` + strings.Repeat("A", 101) + `","email":"alice@example.com","password":"password123"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, r, "/api/v1/auth/register", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d; want %d", w.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestRegisterHandler_ValidationErrorFromService(t *testing.T) {
	r := setupAuthRouter(&mockService{
		registerErr: domain.NewAppError(domain.CodeValidation, "email must be a valid email address", nil),
	})

	// Passes binding but the service rejects it.
	w := postJSON(t, r, "/api/v1/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"password123"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want %d", w.Code, http.StatusBadRequest)
	}
}
