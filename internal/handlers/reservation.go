package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/diewo77/go-immo/internal/httpx"
	"github.com/diewo77/go-immo/internal/i18n"
	"github.com/diewo77/go-immo/internal/middleware"
	"github.com/diewo77/go-immo/internal/reservation"
	"github.com/diewo77/go-immo/internal/view"
)

// ReservationHandler serves the reservation screens. All data comes from the
// remote API through the client; nothing is cached across requests, so every
// successful mutation redirects back to the list, which re-fetches in full.
type ReservationHandler struct {
	API *reservation.Client
}

func NewReservationHandler(api *reservation.Client) *ReservationHandler {
	return &ReservationHandler{API: api}
}

// List: GET /reservations – HTML or JSON
func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.API.List(r.Context())
	if err != nil {
		if httpx.WantsJSON(r) {
			httpx.JSONError(w, http.StatusBadGateway, "list_error", nil)
			return
		}
		// stale/empty list with an error notice; the screen stays usable
		renderTemplate(w, r, "reservations/index.html", map[string]any{
			"Reservations": []reservation.Reservation{},
			"FlashError":   i18n.T(middleware.LangFrom(r), "list_error"),
			"Count":        0,
		})
		return
	}

	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]any{"items": list, "total": len(list)})
		return
	}

	// Derived stats are recomputed from the fetched list on every render;
	// they are exactly as fresh as the fetch itself.
	var totalAvance, totalReliquat float64
	for _, rec := range list {
		if rec.AvanceContrat != nil {
			totalAvance += *rec.AvanceContrat
		}
		if rec.ReliquatReglementClt != nil {
			totalReliquat += *rec.ReliquatReglementClt
		}
	}
	renderTemplate(w, r, "reservations/index.html", map[string]any{
		"Reservations":  list,
		"Count":         len(list),
		"TotalAvance":   view.GroupDigits(totalAvance),
		"TotalReliquat": view.GroupDigits(totalReliquat),
	})
}

// New: GET /reservations/new – empty add form with today's date pre-filled.
func (h *ReservationHandler) New(w http.ResponseWriter, r *http.Request) {
	form := reservation.NewFormController()
	form.OpenAdd(time.Now())
	h.renderForm(w, r, form)
}

// Create: POST /reservations
func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_form", nil)
		return
	}
	form := reservation.NewFormController()
	form.OpenAdd(time.Now())
	form.Bind(r.PostForm)
	h.submit(w, r, form, "reservation_added")
}

// Edit: GET /reservations/{nbr}/edit – form hydrated from the server record.
func (h *ReservationHandler) Edit(w http.ResponseWriter, r *http.Request) {
	nbr, ok := h.nbrParam(w, r)
	if !ok {
		return
	}
	rec, err := h.API.Get(r.Context(), nbr)
	if err != nil {
		h.flashAndBack(w, r, err)
		return
	}
	form := reservation.NewFormController()
	form.OpenEdit(*rec)
	h.renderForm(w, r, form)
}

// Update: POST /reservations/{nbr}
func (h *ReservationHandler) Update(w http.ResponseWriter, r *http.Request) {
	nbr, ok := h.nbrParam(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_form", nil)
		return
	}
	form := reservation.NewFormController()
	form.OpenEdit(reservation.Reservation{Nbr: nbr})
	form.Bind(r.PostForm)
	h.submit(w, r, form, "reservation_saved")
}

// Show: GET /reservations/{nbr} – read-only consultation of every field.
func (h *ReservationHandler) Show(w http.ResponseWriter, r *http.Request) {
	nbr, ok := h.nbrParam(w, r)
	if !ok {
		return
	}
	rec, err := h.API.Get(r.Context(), nbr)
	if err != nil {
		if httpx.WantsJSON(r) {
			status := http.StatusBadGateway
			if errors.Is(err, reservation.ErrNotFound) {
				status = http.StatusNotFound
			}
			httpx.JSONError(w, status, reservation.MessageCode(err), nil)
			return
		}
		h.flashAndBack(w, r, err)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, rec)
		return
	}
	renderTemplate(w, r, "reservations/view.html", map[string]any{
		"Reservation": rec,
		"Rows":        consultationRows(middleware.LangFrom(r), rec),
	})
}

// ConfirmDelete: GET /reservations/{nbr}/delete – explicit Oui/Non step.
// Answering Non is a plain link back to the list: no request is issued.
func (h *ReservationHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	nbr, ok := h.nbrParam(w, r)
	if !ok {
		return
	}
	renderTemplate(w, r, "reservations/confirm_delete.html", map[string]any{"Nbr": nbr})
}

// Delete: POST /reservations/{nbr}/delete
func (h *ReservationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	nbr, ok := h.nbrParam(w, r)
	if !ok {
		return
	}
	if err := h.API.Delete(r.Context(), nbr); err != nil {
		if httpx.WantsJSON(r) {
			status := http.StatusBadGateway
			if errors.Is(err, reservation.ErrNotFound) {
				status = http.StatusNotFound
			}
			httpx.JSONError(w, status, reservation.MessageCode(err), nil)
			return
		}
		middleware.FlashError(w, r, "delete_error")
		http.Redirect(w, r, "/reservations", http.StatusSeeOther)
		return
	}
	if httpx.WantsJSON(r) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	middleware.Flash(w, r, "reservation_gone")
	http.Redirect(w, r, "/reservations", http.StatusSeeOther)
}

func (h *ReservationHandler) submit(w http.ResponseWriter, r *http.Request, form *reservation.FormController, successCode string) {
	_, err := form.Submit(r.Context(), h.API)
	if err == nil {
		if httpx.WantsJSON(r) {
			httpx.JSON(w, http.StatusOK, form.Record)
			return
		}
		middleware.Flash(w, r, successCode)
		http.Redirect(w, r, "/reservations", http.StatusSeeOther)
		return
	}
	if errors.Is(err, reservation.ErrInvalidForm) {
		if httpx.WantsJSON(r) {
			httpx.JSONError(w, http.StatusBadRequest, "validation_failed", form.Violations)
			return
		}
		h.renderForm(w, r, form)
		return
	}
	// API failure: the form stays open with the entered data.
	if httpx.WantsJSON(r) {
		status := http.StatusBadGateway
		switch {
		case errors.Is(err, reservation.ErrConflict):
			status = http.StatusConflict
		case errors.Is(err, reservation.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, reservation.ErrRejected):
			status = http.StatusUnprocessableEntity
		}
		httpx.JSONError(w, status, reservation.MessageCode(err), nil)
		return
	}
	h.renderFormError(w, r, form, reservation.MessageCode(err))
}

func (h *ReservationHandler) renderForm(w http.ResponseWriter, r *http.Request, form *reservation.FormController) {
	h.renderFormError(w, r, form, "")
}

func (h *ReservationHandler) renderFormError(w http.ResponseWriter, r *http.Request, form *reservation.FormController, errCode string) {
	lang := middleware.LangFrom(r)
	errs := make(map[string]string, len(form.Violations))
	for field, code := range form.Violations {
		errs[field] = i18n.T(lang, code)
	}
	data := map[string]any{
		"Form":     form,
		"Editing":  form.Editing(),
		"Errors":   errs,
		"Sections": reservation.SectionOrder(),
		"Fields":   reservation.FieldsBySection(),
	}
	if errCode != "" {
		data["FlashError"] = i18n.T(lang, errCode)
	}
	renderTemplate(w, r, "reservations/form.html", data)
}

func (h *ReservationHandler) nbrParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	nbr, err := strconv.Atoi(r.PathValue("nbr"))
	if err != nil || nbr <= 0 {
		http.NotFound(w, r)
		return 0, false
	}
	return nbr, true
}

func (h *ReservationHandler) flashAndBack(w http.ResponseWriter, r *http.Request, err error) {
	middleware.FlashError(w, r, reservation.MessageCode(err))
	http.Redirect(w, r, "/reservations", http.StatusSeeOther)
}

// consultationRow is one labeled read-only line of the consultation screen.
type consultationRow struct {
	Label string
	Value string
}

// consultationRows projects every field through the display rules: "-" for
// null, locale grouping for currency, Oui/Non for the reserved flag.
func consultationRows(lang string, rec *reservation.Reservation) []consultationRow {
	form := reservation.NewFormController()
	form.OpenEdit(*rec)
	rows := make([]consultationRow, 0, len(reservation.Fields))
	rows = append(rows, consultationRow{Label: "Numéro", Value: strconv.Itoa(rec.Nbr)})
	for _, fd := range reservation.Fields {
		if fd.Name == "nbr" {
			continue
		}
		var val string
		switch {
		case fd.Name == "dateRéservation":
			val = view.DateFR(rec.DateReservation)
		case fd.Kind == reservation.KindBool:
			val = view.OuiNon(lang, rec.Reserve)
		case fd.Section == reservation.SectionFinance:
			val = moneyByName(rec, fd.Name)
		default:
			s := form.Value(fd.Name)
			if s == "" {
				s = "-"
			}
			val = s
		}
		rows = append(rows, consultationRow{Label: fd.Label, Value: val})
	}
	return rows
}

func moneyByName(rec *reservation.Reservation, name string) string {
	switch name {
	case "prixDeVente":
		return view.Money(rec.PrixDeVente)
	case "prixContrat":
		return view.Money(rec.PrixContrat)
	case "avanceContrat":
		return view.Money(rec.AvanceContrat)
	case "autofinancement":
		return view.Money(rec.Autofinancement)
	case "reliquatRèglementClt":
		return view.Money(rec.ReliquatReglementClt)
	}
	return "-"
}
