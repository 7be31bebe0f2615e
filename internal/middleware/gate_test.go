package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestDecide(t *testing.T) {
	cases := []struct {
		name          string
		path          string
		authenticated bool
		want          Decision
	}{
		{"static_always_allowed", "/static/style.css", false, Allow},
		{"favicon_always_allowed", "/favicon.ico", false, Allow},
		{"login_endpoint_always_allowed", "/api/auth/login", false, Allow},
		{"login_endpoint_allowed_when_authenticated", "/api/auth/login", true, Allow},

		{"authenticated_login_page_to_dashboard", "/login", true, RedirectDashboard},
		{"authenticated_root_to_dashboard", "/", true, RedirectDashboard},

		{"anonymous_dashboard_to_login", "/dashboard", false, RedirectLogin},
		{"anonymous_dashboard_subpath_to_login", "/dashboard/audit-log", false, RedirectLogin},
		{"anonymous_listings_api_to_login", "/api/listings", false, RedirectLogin},
		{"anonymous_listing_detail_to_login", "/api/listings/7", false, RedirectLogin},

		{"authenticated_dashboard_allowed", "/dashboard", true, Allow},
		{"authenticated_dashboard_subpath_allowed", "/dashboard/audit-log", true, Allow},
		{"authenticated_listings_api_allowed", "/api/listings", true, Allow},

		{"anonymous_login_page_allowed", "/login", false, Allow},
		{"anonymous_root_allowed", "/", false, Allow},
		{"logout_endpoint_allowed", "/api/auth/logout", false, Allow},
		{"audit_log_api_outside_gate", "/api/audit-log", false, Allow},
		{"health_allowed", "/api/health", false, Allow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Decide(tc.path, tc.authenticated); got != tc.want {
				t.Errorf("Decide(%q, %v) = %v, want %v", tc.path, tc.authenticated, got, tc.want)
			}
		})
	}
}

func setupGateRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Gatekeeper())
	r.GET("/dashboard", func(c *gin.Context) { c.String(http.StatusOK, "dashboard") })
	r.GET("/login", func(c *gin.Context) { c.String(http.StatusOK, "login") })
	r.GET("/api/listings", func(c *gin.Context) { c.String(http.StatusOK, "listings") })
	return r
}

func TestGatekeeperRedirects(t *testing.T) {
	r := setupGateRouter()

	t.Run("anonymous_dashboard_redirects_to_login", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusSeeOther {
			t.Fatalf("expected 303, got %d", rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != "/login" {
			t.Errorf("expected redirect to /login, got %s", loc)
		}
	})

	t.Run("invalid_cookie_redirects_to_login", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/listings", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "tampered"})
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusSeeOther {
			t.Fatalf("expected 303, got %d", rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != "/login" {
			t.Errorf("expected redirect to /login, got %s", loc)
		}
	})

	t.Run("valid_cookie_on_login_page_redirects_to_dashboard", func(t *testing.T) {
		token, err := IssueSessionToken("admin")
		if err != nil {
			t.Fatalf("failed to issue token: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/login", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusSeeOther {
			t.Fatalf("expected 303, got %d", rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != "/dashboard" {
			t.Errorf("expected redirect to /dashboard, got %s", loc)
		}
	})

	t.Run("valid_cookie_on_dashboard_allowed", func(t *testing.T) {
		token, err := IssueSessionToken("admin")
		if err != nil {
			t.Fatalf("failed to issue token: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})
}
