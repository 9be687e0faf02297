package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/coursebay/coursebay-backend/internal/config"
	"github.com/coursebay/coursebay-backend/internal/service"
	"github.com/gin-gonic/gin"
)

func testRouter(authService *service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", RequireAdminJWT(authService), func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "claims missing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"admin_id": claims.AdminID})
	})
	return router
}

func newTestAuthService() *service.AuthService {
	return service.NewAuthService(&config.Config{
		JWTSecret:  "test-secret-for-unit-tests-32ch!",
		BcryptCost: 5,
	})
}

func TestRequireAdminJWTMissingHeader(t *testing.T) {
	router := testRouter(newTestAuthService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401 without a token, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRequireAdminJWTMalformedHeader(t *testing.T) {
	router := testRouter(newTestAuthService())

	for _, header := range []string{"Bearer", "Basic abc123", "bearer-token"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected status 401, got %d", header, w.Code)
		}
	}
}

func TestRequireAdminJWTInvalidToken(t *testing.T) {
	router := testRouter(newTestAuthService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer invalid_token")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401 for invalid token, got %d", w.Code)
	}
}

func TestRequireAdminJWTForeignSignature(t *testing.T) {
	router := testRouter(newTestAuthService())
	foreign := service.NewAuthService(&config.Config{
		JWTSecret:  "a-completely-different-secret!!!",
		BcryptCost: 5,
	})

	token, err := foreign.GenerateAdminToken(42)
	if err != nil {
		t.Fatalf("GenerateAdminToken failed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401 for foreign-signed token, got %d", w.Code)
	}
}

func TestRequireAdminJWTValidTokenInjectsAdminID(t *testing.T) {
	authService := newTestAuthService()
	router := testRouter(authService)

	token, err := authService.GenerateAdminToken(42)
	if err != nil {
		t.Fatalf("GenerateAdminToken failed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if id, ok := body["admin_id"].(float64); !ok || int(id) != 42 {
		t.Errorf("expected admin_id 42 in body, got %v", body["admin_id"])
	}
}
