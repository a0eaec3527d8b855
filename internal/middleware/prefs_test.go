package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPrefsDefaultsToFrench(t *testing.T) {
	var lang string
	h := Prefs(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang = LangFrom(r)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if lang != "fr" {
		t.Fatalf("lang = %q", lang)
	}
}

func TestPrefsQueryOverridesAndPersists(t *testing.T) {
	var lang string
	h := Prefs(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang = LangFrom(r)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?lang=en", nil))
	if lang != "en" {
		t.Fatalf("lang = %q", lang)
	}
	persisted := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == "lang" && c.Value == "en" {
			persisted = true
		}
	}
	if !persisted {
		t.Error("lang cookie not set")
	}
}

func TestPrefsUnknownLangFallsBack(t *testing.T) {
	var lang string
	h := Prefs(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang = LangFrom(r)
	}))
	req := httptest.NewRequest(http.MethodGet, "/?lang=de", nil)
	req.Header.Set("Accept-Language", "es-ES,es;q=0.9")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if lang != "fr" {
		t.Fatalf("lang = %q, want fr fallback", lang)
	}
}

func TestFlashRoundTrip(t *testing.T) {
	set := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	Flash(set, req, "reservation_added")

	read := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range set.Result().Cookies() {
		read.AddCookie(c)
	}
	msg, isErr := PopFlash(httptest.NewRecorder(), read)
	if isErr {
		t.Error("success flash flagged as error")
	}
	if msg != "Réservation ajoutée avec succès" {
		t.Errorf("msg = %q", msg)
	}
}

func TestFlashErrorWins(t *testing.T) {
	set := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	Flash(set, req, "reservation_added")
	FlashError(set, req, "delete_error")

	read := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range set.Result().Cookies() {
		read.AddCookie(c)
	}
	msg, isErr := PopFlash(httptest.NewRecorder(), read)
	if !isErr {
		t.Error("error flash must take precedence")
	}
	if msg != "Erreur lors de la suppression de la réservation" {
		t.Errorf("msg = %q", msg)
	}
}
