package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"gorm.io/gorm"

	"github.com/diewo77/go-immo/internal/db"
	"github.com/diewo77/go-immo/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// a file db per test: ":memory:" is per-connection with a pooled *sql.DB
	conn, err := db.ConnectAndMigrate(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	return conn
}

func postForm(h http.HandlerFunc, target string, form url.Values, pathValues map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for k, v := range pathValues {
		req.SetPathValue(k, v)
	}
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestClientCreateAndList(t *testing.T) {
	useRepoTemplates(t)
	conn := newTestDB(t)
	h := NewClientHandler(conn)

	rec := postForm(h.Create, "/clients", url.Values{
		"nom":       {"Alaoui"},
		"prenom":    {"Karim"},
		"telephone": {"0600000000"},
		"cin":       {"AB12345"},
	}, nil)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	list := httptest.NewRecorder()
	h.List(list, req)
	if !strings.Contains(list.Body.String(), "Alaoui") {
		t.Error("created client missing from list")
	}
}

func TestClientCreateRequiresNom(t *testing.T) {
	useRepoTemplates(t)
	conn := newTestDB(t)
	h := NewClientHandler(conn)

	rec := postForm(h.Create, "/clients", url.Values{"prenom": {"Karim"}}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Requis") {
		t.Error("required violation missing")
	}
	var count int64
	conn.Model(&models.Client{}).Count(&count)
	if count != 0 {
		t.Error("invalid client must not be persisted")
	}
}

func TestClientSearch(t *testing.T) {
	useRepoTemplates(t)
	conn := newTestDB(t)
	conn.Create(&models.Client{Nom: "Alaoui", CIN: "AB1"})
	conn.Create(&models.Client{Nom: "Bennani", CIN: "CD2"})
	h := NewClientHandler(conn)

	req := httptest.NewRequest(http.MethodGet, "/clients?q=Benn", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	html := rec.Body.String()
	if !strings.Contains(html, "Bennani") || strings.Contains(html, "Alaoui") {
		t.Error("search must filter on nom")
	}
}

func TestClientUpdateAndDelete(t *testing.T) {
	useRepoTemplates(t)
	conn := newTestDB(t)
	c := models.Client{Nom: "Alaoui"}
	conn.Create(&c)
	h := NewClientHandler(conn)
	id := fmt.Sprint(c.ID)

	rec := postForm(h.Update, "/clients/"+id, url.Values{"nom": {"Tazi"}}, map[string]string{"id": id})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("update status = %d", rec.Code)
	}
	var got models.Client
	conn.First(&got, c.ID)
	if got.Nom != "Tazi" {
		t.Errorf("nom = %q after update", got.Nom)
	}

	rec = postForm(h.Delete, "/clients/"+id+"/delete", nil, map[string]string{"id": id})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("delete status = %d", rec.Code)
	}
	var count int64
	conn.Model(&models.Client{}).Count(&count)
	if count != 0 {
		t.Error("client still present after delete")
	}
}

func TestImmeubleCreateValidatesNumbers(t *testing.T) {
	useRepoTemplates(t)
	conn := newTestDB(t)
	h := NewImmeubleHandler(conn)

	rec := postForm(h.Create, "/immeubles", url.Values{
		"name":  {"Résidence Yasmine"},
		"price": {"abc"},
	}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Doit être un nombre") {
		t.Error("price violation missing")
	}

	rec = postForm(h.Create, "/immeubles", url.Values{
		"name":           {"Résidence Yasmine"},
		"price":          {"1200000"},
		"availableUnits": {"24"},
	}, nil)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("valid create status = %d: %s", rec.Code, rec.Body.String())
	}
	var im models.Immeuble
	conn.First(&im)
	if im.Price != 1200000 || im.AvailableUnits != 24 {
		t.Errorf("persisted %+v", im)
	}
}
