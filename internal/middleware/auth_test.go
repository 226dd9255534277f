package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/jwt"
)

type stubJWTService struct {
	validateErr error
}

func (s *stubJWTService) GenerateToken(string, []string, time.Duration) (string, error) {
	return "", nil
}
func (s *stubJWTService) ValidateToken(string) (*jwt.Token, error) { return nil, nil }
func (s *stubJWTService) ValidateAndParse(string) (*jwt.Token, error) {
	if s.validateErr != nil {
		return nil, s.validateErr
	}
	return &jwt.Token{}, nil
}
func (s *stubJWTService) RefreshToken(string) (string, error)                      { return "", nil }
func (s *stubJWTService) RefreshTokenExtend(string, time.Duration) (string, error) { return "", nil }
func (s *stubJWTService) RevokeToken(string) error                                 { return nil }
func (s *stubJWTService) IsTokenRevoked(string) bool                               { return false }
func (s *stubJWTService) ParseToken(string) (*jwt.Token, error)                    { return nil, nil }
func (s *stubJWTService) RevokeAllUserTokens(string) error                         { return nil }
func (s *stubJWTService) Close()                                                   {}

func setupAuthMiddleware(svc jwt.Service, publicPaths []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Auth(svc, publicPaths))
	r.GET("/api/v1/members", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/api/v1/auth/login", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestAuth_MissingToken(t *testing.T) {
	r := setupAuthMiddleware(&stubJWTService{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/members", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d; want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	r := setupAuthMiddleware(&stubJWTService{validateErr: errors.New("expired")}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/members", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d; want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestAuth_ValidToken(t *testing.T) {
	r := setupAuthMiddleware(&stubJWTService{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/members", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d; want %d", w.Code, http.StatusOK)
	}
}

func TestAuth_PublicPathSkipsValidation(t *testing.T) {
	r := setupAuthMiddleware(&stubJWTService{validateErr: errors.New("never called")},
		[]string{"/api/v1/auth/login"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d; want %d", w.Code, http.StatusOK)
	}
}

func TestAuth_MalformedAuthorizationHeader(t *testing.T) {
	r := setupAuthMiddleware(&stubJWTService{}, nil)

	for _, header := range []string{"Basic abc", "Bearer", "token-without-scheme"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/members", nil)
		req.Header.Set("Authorization", header)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d; want %d", header, w.Code, http.StatusUnauthorized)
		}
	}
}
