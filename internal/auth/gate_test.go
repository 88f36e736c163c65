package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestGateVerify(t *testing.T) {
	g := NewGate("secret-token")

	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{"correct token", "secret-token", true},
		{"wrong token", "wrong", false},
		{"empty candidate", "", false},
		{"prefix of token", "secret", false},
		{"token with suffix", "secret-token-extra", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Verify(tt.candidate); got != tt.want {
				t.Errorf("Verify(%q) = %v, want %v", tt.candidate, got, tt.want)
			}
		})
	}
}

func TestGateVerifyEmptyConfiguredToken(t *testing.T) {
	// A blank configured secret must never authorize, even a blank candidate.
	g := NewGate("")
	if g.Verify("") {
		t.Error("empty candidate passed against empty configured token")
	}
	if g.Verify("anything") {
		t.Error("non-empty candidate passed against empty configured token")
	}
}

func newTestContext(t *testing.T, mutate func(*http.Request)) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodGet, "/api/admin/deals", nil)
	mutate(req)
	c.Request = req
	return c
}

func TestTokenFromRequest(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*http.Request)
		want   string
	}{
		{
			name:   "admin header",
			mutate: func(r *http.Request) { r.Header.Set("X-Admin-Token", "tok-header") },
			want:   "tok-header",
		},
		{
			name:   "session cookie",
			mutate: func(r *http.Request) { r.AddCookie(&http.Cookie{Name: CookieName, Value: "tok-cookie"}) },
			want:   "tok-cookie",
		},
		{
			name:   "bearer header",
			mutate: func(r *http.Request) { r.Header.Set("Authorization", "Bearer tok-bearer") },
			want:   "tok-bearer",
		},
		{
			name:   "bearer is case-insensitive",
			mutate: func(r *http.Request) { r.Header.Set("Authorization", "bearer tok-bearer") },
			want:   "tok-bearer",
		},
		{
			name: "header wins over cookie",
			mutate: func(r *http.Request) {
				r.Header.Set("X-Admin-Token", "tok-header")
				r.AddCookie(&http.Cookie{Name: CookieName, Value: "tok-cookie"})
			},
			want: "tok-header",
		},
		{
			name:   "no credential",
			mutate: func(r *http.Request) {},
			want:   "",
		},
		{
			name:   "non-bearer authorization ignored",
			mutate: func(r *http.Request) { r.Header.Set("Authorization", "Basic dXNlcjpwYXNz") },
			want:   "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(t, tt.mutate)
			if got := TokenFromRequest(c); got != tt.want {
				t.Errorf("TokenFromRequest = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAuthorize(t *testing.T) {
	g := NewGate("s3cret")

	c := newTestContext(t, func(r *http.Request) { r.Header.Set("X-Admin-Token", "s3cret") })
	if !g.Authorize(c) {
		t.Error("valid header credential rejected")
	}

	c = newTestContext(t, func(r *http.Request) { r.Header.Set("X-Admin-Token", "nope") })
	if g.Authorize(c) {
		t.Error("invalid header credential accepted")
	}

	c = newTestContext(t, func(r *http.Request) {})
	if g.Authorize(c) {
		t.Error("request without credential accepted")
	}
}
