package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/diewo77/go-immo/internal/httpx"
	"github.com/diewo77/go-immo/internal/middleware"
	"github.com/diewo77/go-immo/internal/models"
	"github.com/diewo77/go-immo/internal/validation"
)

// ClientHandler manages the local acheteurs/prospects registry.
type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

// List: GET /clients – optional ?q= search on nom/prenom/cin.
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	var clients []models.Client
	tx := h.db.Order("nom, prenom")
	if q != "" {
		like := "%" + q + "%"
		tx = tx.Where("nom LIKE ? OR prenom LIKE ? OR cin LIKE ?", like, like, like)
	}
	if err := tx.Find(&clients).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "database error", nil)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]any{"items": clients, "total": len(clients)})
		return
	}
	renderTemplate(w, r, "clients/index.html", map[string]any{"Clients": clients, "Query": q})
}

// New: GET /clients/new
func (h *ClientHandler) New(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, r, "clients/form.html", map[string]any{"Client": &models.Client{}, "Errors": validation.Violations{}})
}

// Create: POST /clients
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid form", nil)
		return
	}
	c := clientFromForm(r)
	if v := validateClient(c); !v.Empty() {
		renderTemplate(w, r, "clients/form.html", map[string]any{"Client": c, "Errors": v})
		return
	}
	if err := h.db.Create(c).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "database error", nil)
		return
	}
	middleware.Flash(w, r, "client_added")
	http.Redirect(w, r, "/clients", http.StatusSeeOther)
}

// Edit: GET /clients/{id}/edit
func (h *ClientHandler) Edit(w http.ResponseWriter, r *http.Request) {
	c, ok := h.find(w, r)
	if !ok {
		return
	}
	renderTemplate(w, r, "clients/form.html", map[string]any{"Client": c, "Editing": true, "Errors": validation.Violations{}})
}

// Update: POST /clients/{id}
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	c, ok := h.find(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid form", nil)
		return
	}
	upd := clientFromForm(r)
	upd.ID = c.ID
	if v := validateClient(upd); !v.Empty() {
		renderTemplate(w, r, "clients/form.html", map[string]any{"Client": upd, "Errors": v, "Editing": true})
		return
	}
	if err := h.db.Save(upd).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "database error", nil)
		return
	}
	middleware.Flash(w, r, "client_saved")
	http.Redirect(w, r, "/clients", http.StatusSeeOther)
}

// Delete: POST /clients/{id}/delete
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	c, ok := h.find(w, r)
	if !ok {
		return
	}
	if err := h.db.Delete(c).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "database error", nil)
		return
	}
	middleware.Flash(w, r, "client_gone")
	http.Redirect(w, r, "/clients", http.StatusSeeOther)
}

func (h *ClientHandler) find(w http.ResponseWriter, r *http.Request) (*models.Client, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		http.NotFound(w, r)
		return nil, false
	}
	var c models.Client
	if err := h.db.First(&c, id).Error; err != nil {
		http.NotFound(w, r)
		return nil, false
	}
	return &c, true
}

func clientFromForm(r *http.Request) *models.Client {
	return &models.Client{
		Nom:           strings.TrimSpace(r.FormValue("nom")),
		Prenom:        strings.TrimSpace(r.FormValue("prenom")),
		Telephone:     strings.TrimSpace(r.FormValue("telephone")),
		Email:         strings.TrimSpace(r.FormValue("email")),
		Adresse:       strings.TrimSpace(r.FormValue("adresse")),
		DateNaissance: strings.TrimSpace(r.FormValue("dateNaissance")),
		CIN:           strings.TrimSpace(r.FormValue("cin")),
	}
}

func validateClient(c *models.Client) validation.Violations {
	v := make(validation.Violations)
	validation.Required("nom", c.Nom, v)
	return v
}
