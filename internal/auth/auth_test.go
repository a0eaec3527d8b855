package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSessionRoundTrip(t *testing.T) {
	rec := httptest.NewRecorder()
	CreateSession(rec, 42)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	uid, ok := ParseSession(req)
	if !ok || uid != 42 {
		t.Fatalf("ParseSession = %d, %v", uid, ok)
	}
}

func TestParseSessionRejectsTamperedCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	CreateSession(rec, 42)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := rec.Result().Cookies()[0]
	c.Value = "99" + c.Value[2:]
	req.AddCookie(c)

	if _, ok := ParseSession(req); ok {
		t.Fatal("tampered cookie must not parse")
	}
}

func TestRequireAuthRedirectsAnonymous(t *testing.T) {
	h := RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run for anonymous requests")
	}))

	req := httptest.NewRequest(http.MethodGet, "/reservations", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("redirect = %q", loc)
	}
}

func TestRequireAuthJSONGets401(t *testing.T) {
	h := RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/reservations", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestRequireAuthUsesVerifier(t *testing.T) {
	SetUserVerifier(func(ctx context.Context, uid uint) bool { return false })
	t.Cleanup(func() { SetUserVerifier(nil) })

	h := RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run when the verifier rejects the user")
	}))

	req := httptest.NewRequest(http.MethodGet, "/reservations", nil)
	req = req.WithContext(WithUserID(req.Context(), 7))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestMiddlewareAttachesUserID(t *testing.T) {
	rec := httptest.NewRecorder()
	CreateSession(rec, 5)

	var got uint
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = UserIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	h.ServeHTTP(httptest.NewRecorder(), req)

	if got != 5 {
		t.Fatalf("user id from context = %d", got)
	}
}
