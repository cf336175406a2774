package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  "u1",
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func newGatedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	grp := r.Group("")
	grp.Use(RequireAuth(testSecret))
	grp.Use(RequireRole(RoleSlotAdmin, RoleSuperAdmin))
	grp.GET("/gated", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	return r
}

func TestRequireRoleAllowsBothAdminRoles(t *testing.T) {
	r := newGatedRouter()
	for _, role := range []string{RoleSlotAdmin, RoleSuperAdmin} {
		req := httptest.NewRequest(http.MethodGet, "/gated", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, role))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("role %s: status = %d, want %d", role, w.Code, http.StatusOK)
		}
	}
}

func TestRequireRoleRejectsOtherRoles(t *testing.T) {
	r := newGatedRouter()
	for _, role := range []string{"student", ""} {
		req := httptest.NewRequest(http.MethodGet, "/gated", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, role))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusForbidden {
			t.Errorf("role %q: status = %d, want %d", role, w.Code, http.StatusForbidden)
		}
	}
}

func TestRequireAuthRejectsMissingOrBadToken(t *testing.T) {
	r := newGatedRouter()

	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no header: status = %d, want %d", w.Code, http.StatusUnauthorized)
	}

	req = httptest.NewRequest(http.MethodGet, "/gated", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}
