package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "rentadmin/internal/errors"
	"rentadmin/internal/middleware"
	"rentadmin/internal/validator"
)

// --- mock services ---

type mockAuthService struct {
	verifyFn func(username, password string) error
}

func (m *mockAuthService) VerifyCredentials(username, password string) error {
	if m.verifyFn != nil {
		return m.verifyFn(username, password)
	}
	return nil
}

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

func setupAuthRouter(handler *AuthHandler) *gin.Engine {
	r := gin.New()
	r.POST("/api/auth/login", handler.Login)
	r.POST("/api/auth/logout", handler.Logout)
	return r
}

// --- tests ---

func TestLoginHandler(t *testing.T) {
	t.Run("valid_credentials_set_session_cookie", func(t *testing.T) {
		handler := NewAuthHandler(&mockAuthService{})
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/api/auth/login", `{"username":"admin","password":"password123"}`)

		if rec.Code != 200 {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["success"] != true {
			t.Errorf("expected success true, got %v", result)
		}

		var found bool
		for _, cookie := range rec.Result().Cookies() {
			if cookie.Name == middleware.CookieName && cookie.Value != "" {
				found = true
				if cookie.MaxAge <= 0 {
					t.Errorf("expected positive cookie MaxAge, got %d", cookie.MaxAge)
				}
			}
		}
		if !found {
			t.Error("expected session cookie to be set")
		}
	})

	t.Run("invalid_credentials", func(t *testing.T) {
		handler := NewAuthHandler(&mockAuthService{
			verifyFn: func(username, password string) error {
				return apperrors.ErrInvalidCredentials
			},
		})
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/api/auth/login", `{"username":"admin","password":"wrong"}`)

		if rec.Code != 401 {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_CREDENTIALS")

		for _, cookie := range rec.Result().Cookies() {
			if cookie.Name == middleware.CookieName && cookie.Value != "" {
				t.Error("expected no session cookie on failed login")
			}
		}
	})

	t.Run("missing_fields", func(t *testing.T) {
		handler := NewAuthHandler(&mockAuthService{})
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/api/auth/login", `{"username":"admin"}`)

		if rec.Code != 400 {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestLogoutHandler(t *testing.T) {
	handler := NewAuthHandler(&mockAuthService{})
	r := setupAuthRouter(handler)

	rec := doRequest(r, "POST", "/api/auth/logout", "")

	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	if result["success"] != true {
		t.Errorf("expected success true, got %v", result)
	}

	var cleared bool
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.CookieName && cookie.Value == "" && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expected session cookie to be cleared")
	}
}
