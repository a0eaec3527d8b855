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

// ImmeubleHandler manages the buildings whose units the reservations reference.
type ImmeubleHandler struct {
	db *gorm.DB
}

func NewImmeubleHandler(db *gorm.DB) *ImmeubleHandler {
	return &ImmeubleHandler{db: db}
}

// List: GET /immeubles – optional ?q= search on name/address.
func (h *ImmeubleHandler) List(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	var immeubles []models.Immeuble
	tx := h.db.Order("name")
	if q != "" {
		like := "%" + q + "%"
		tx = tx.Where("name LIKE ? OR address LIKE ?", like, like)
	}
	if err := tx.Find(&immeubles).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "database error", nil)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]any{"items": immeubles, "total": len(immeubles)})
		return
	}
	renderTemplate(w, r, "immeubles/index.html", map[string]any{"Immeubles": immeubles, "Query": q})
}

// New: GET /immeubles/new
func (h *ImmeubleHandler) New(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, r, "immeubles/form.html", map[string]any{"Immeuble": &models.Immeuble{}, "Errors": validation.Violations{}})
}

// Create: POST /immeubles
func (h *ImmeubleHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid form", nil)
		return
	}
	im, v := immeubleFromForm(r)
	if !v.Empty() {
		renderTemplate(w, r, "immeubles/form.html", map[string]any{"Immeuble": im, "Errors": v})
		return
	}
	if err := h.db.Create(im).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "database error", nil)
		return
	}
	middleware.Flash(w, r, "immeuble_added")
	http.Redirect(w, r, "/immeubles", http.StatusSeeOther)
}

// Edit: GET /immeubles/{id}/edit
func (h *ImmeubleHandler) Edit(w http.ResponseWriter, r *http.Request) {
	im, ok := h.find(w, r)
	if !ok {
		return
	}
	renderTemplate(w, r, "immeubles/form.html", map[string]any{"Immeuble": im, "Editing": true, "Errors": validation.Violations{}})
}

// Update: POST /immeubles/{id}
func (h *ImmeubleHandler) Update(w http.ResponseWriter, r *http.Request) {
	im, ok := h.find(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid form", nil)
		return
	}
	upd, v := immeubleFromForm(r)
	upd.ID = im.ID
	if !v.Empty() {
		renderTemplate(w, r, "immeubles/form.html", map[string]any{"Immeuble": upd, "Errors": v, "Editing": true})
		return
	}
	if err := h.db.Save(upd).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "database error", nil)
		return
	}
	middleware.Flash(w, r, "immeuble_saved")
	http.Redirect(w, r, "/immeubles", http.StatusSeeOther)
}

// Delete: POST /immeubles/{id}/delete
func (h *ImmeubleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	im, ok := h.find(w, r)
	if !ok {
		return
	}
	if err := h.db.Delete(im).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "database error", nil)
		return
	}
	middleware.Flash(w, r, "immeuble_gone")
	http.Redirect(w, r, "/immeubles", http.StatusSeeOther)
}

func (h *ImmeubleHandler) find(w http.ResponseWriter, r *http.Request) (*models.Immeuble, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		http.NotFound(w, r)
		return nil, false
	}
	var im models.Immeuble
	if err := h.db.First(&im, id).Error; err != nil {
		http.NotFound(w, r)
		return nil, false
	}
	return &im, true
}

func immeubleFromForm(r *http.Request) (*models.Immeuble, validation.Violations) {
	v := make(validation.Violations)
	im := &models.Immeuble{
		Name:             strings.TrimSpace(r.FormValue("name")),
		Address:          strings.TrimSpace(r.FormValue("address")),
		Type:             strings.TrimSpace(r.FormValue("type")),
		Commercial:       strings.TrimSpace(r.FormValue("commercial")),
		DateConstruction: strings.TrimSpace(r.FormValue("dateConstruction")),
	}
	validation.Required("name", im.Name, v)
	if raw := strings.TrimSpace(r.FormValue("price")); raw != "" {
		p, err := strconv.ParseFloat(raw, 64)
		if err != nil || p < 0 {
			v["price"] = "must_be_number"
		} else {
			im.Price = p
		}
	}
	if raw := strings.TrimSpace(r.FormValue("availableUnits")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			v["availableUnits"] = "must_be_number"
		} else {
			im.AvailableUnits = n
		}
	}
	return im, v
}
