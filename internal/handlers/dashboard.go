package handlers

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/diewo77/go-immo/internal/httpx"
	"github.com/diewo77/go-immo/internal/models"
	"github.com/diewo77/go-immo/internal/reservation"
	"github.com/diewo77/go-immo/internal/view"
)

// DashboardHandler shows the landing screen after login: reservation totals
// from the remote API next to local registry counts.
type DashboardHandler struct {
	db  *gorm.DB
	api *reservation.Client
}

func NewDashboardHandler(db *gorm.DB, api *reservation.Client) *DashboardHandler {
	return &DashboardHandler{db: db, api: api}
}

func (h *DashboardHandler) Show(w http.ResponseWriter, r *http.Request) {
	var clientCount, immeubleCount int64
	h.db.Model(&models.Client{}).Count(&clientCount)
	h.db.Model(&models.Immeuble{}).Count(&immeubleCount)

	data := map[string]any{
		"ClientCount":   clientCount,
		"ImmeubleCount": immeubleCount,
	}

	// The API may be down; the dashboard still renders with local counts.
	if list, err := h.api.List(r.Context()); err == nil {
		var totalVentes, totalAvances float64
		var reserved int
		for _, rec := range list {
			if rec.PrixDeVente != nil {
				totalVentes += *rec.PrixDeVente
			}
			if rec.AvanceContrat != nil {
				totalAvances += *rec.AvanceContrat
			}
			if rec.Reserve != nil && *rec.Reserve {
				reserved++
			}
		}
		data["ReservationCount"] = len(list)
		data["ReservedCount"] = reserved
		data["TotalVentes"] = view.GroupDigits(totalVentes)
		data["TotalAvances"] = view.GroupDigits(totalAvances)
	} else {
		data["APIDown"] = true
	}

	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, data)
		return
	}
	renderTemplate(w, r, "dashboard.html", data)
}
