package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sohilkhan0021/anceller-admin-sub002/config"
	"github.com/Sohilkhan0021/anceller-admin-sub002/utils"
)

type fakeRevoker struct {
	revoked map[string]time.Duration
}

func newFakeRevoker() *fakeRevoker {
	return &fakeRevoker{revoked: make(map[string]time.Duration)}
}

func (f *fakeRevoker) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	f.revoked[token] = ttl
	return nil
}

func (f *fakeRevoker) IsRevoked(ctx context.Context, token string) (bool, error) {
	_, ok := f.revoked[token]
	return ok, nil
}

func authRouter(revoker utils.TokenRevoker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ah := NewAuthHandler(revoker)
	r := gin.New()
	r.POST("/login", ah.LoginHandler)
	r.POST("/logout", ah.LogoutHandler)
	return r
}

func configureAdmin() {
	config.AppConfig.AdminJWTSecret = "test-secret"
	config.AppConfig.AdminEmail = "ops@example.com"
	config.AppConfig.AdminPassword = "s3cret"
}

func postJSON(r *gin.Engine, path, body, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginIssuesValidToken(t *testing.T) {
	configureAdmin()
	r := authRouter(newFakeRevoker())

	w := postJSON(r, "/login", `{"email":"ops@example.com","password":"s3cret"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a token in the response")
	}

	claims, err := utils.ValidateAdminToken(resp.Token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims["email"] != "ops@example.com" {
		t.Fatalf("expected email claim ops@example.com, got %v", claims["email"])
	}
}

func TestLoginRejectsWrongCredentials(t *testing.T) {
	configureAdmin()
	r := authRouter(newFakeRevoker())

	for _, body := range []string{
		`{"email":"ops@example.com","password":"wrong"}`,
		`{"email":"intruder@example.com","password":"s3cret"}`,
	} {
		w := postJSON(r, "/login", body, "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("body %s: expected 401, got %d", body, w.Code)
		}
	}
}

func TestLoginRejectsMalformedPayload(t *testing.T) {
	configureAdmin()
	r := authRouter(newFakeRevoker())

	for _, body := range []string{
		`{"password":"s3cret"}`,
		`{"email":"not-an-email","password":"s3cret"}`,
		`{"email":"ops@example.com"}`,
	} {
		w := postJSON(r, "/login", body, "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, w.Code)
		}
	}
}

func TestLoginUnavailableWhenUnconfigured(t *testing.T) {
	configureAdmin()
	config.AppConfig.AdminPassword = ""
	r := authRouter(newFakeRevoker())

	w := postJSON(r, "/login", `{"email":"ops@example.com","password":"s3cret"}`, "")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}

func TestLogoutRevokesTokenForRemainingLifetime(t *testing.T) {
	configureAdmin()
	revoker := newFakeRevoker()
	r := authRouter(revoker)

	token, err := utils.GenerateAdminToken("ops@example.com", "ops@example.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateAdminToken: %v", err)
	}

	w := postJSON(r, "/logout", "", "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	ttl, ok := revoker.revoked[token]
	if !ok {
		t.Fatal("expected token to be revoked")
	}
	if ttl <= 0 || ttl > time.Hour {
		t.Fatalf("expected ttl within the token's remaining lifetime, got %v", ttl)
	}
}

func TestLogoutRejectsInvalidToken(t *testing.T) {
	configureAdmin()
	revoker := newFakeRevoker()
	r := authRouter(revoker)

	w := postJSON(r, "/logout", "", "Bearer not-a-jwt")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if len(revoker.revoked) != 0 {
		t.Fatal("expected no revocation for an invalid token")
	}
}
