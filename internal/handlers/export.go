package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/diewo77/go-immo/internal/httpx"
	"github.com/diewo77/go-immo/internal/reservation"
)

// ExportHandler streams the full reservation list as an Excel workbook.
type ExportHandler struct {
	api *reservation.Client
}

func NewExportHandler(api *reservation.Client) *ExportHandler {
	return &ExportHandler{api: api}
}

// Reservations: GET /reservations/export
func (h *ExportHandler) Reservations(w http.ResponseWriter, r *http.Request) {
	list, err := h.api.List(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusBadGateway, reservation.MessageCode(err), nil)
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Réservations"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "export error", nil)
		return
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headers := []string{"Numéro"}
	for _, fd := range reservation.Fields {
		if fd.Name == "nbr" {
			continue
		}
		headers = append(headers, fd.Label)
	}
	for col, hv := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, hv)
	}

	for row, rec := range list {
		form := reservation.NewFormController()
		form.OpenEdit(rec)
		cell, _ := excelize.CoordinatesToCellName(1, row+2)
		f.SetCellValue(sheet, cell, rec.Nbr)
		col := 2
		for _, fd := range reservation.Fields {
			if fd.Name == "nbr" {
				continue
			}
			cell, _ = excelize.CoordinatesToCellName(col, row+2)
			f.SetCellValue(sheet, cell, form.Value(fd.Name))
			col++
		}
	}

	name := fmt.Sprintf("reservations-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	if err := f.Write(w); err != nil {
		// headers already sent; nothing left to do but log upstream
		return
	}
}
