package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/AYG3/Truck-Driver-Logbook/internal/api/dto"
)

type SummaryHandler struct{}

// Summary returns the duty-hour recap and the chronological remarks
// table for the posted LogDay, the two figures a DOT inspection reads
// off the form next to the grid.
func (h *SummaryHandler) Summary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.LogDayRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	day, err := req.ToDomain()
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	totals := day.Totals()
	table := day.RemarkTable()

	res := dto.SummaryResponse{
		Date:  req.Date,
		Label: day.AccessibilityLabel(),
		Totals: dto.TotalsResponse{
			OffDutyHours:      totals.OffDutyHours,
			SleeperBerthHours: totals.SleeperBerthHours,
			DrivingHours:      totals.DrivingHours,
			OnDutyHours:       totals.OnDutyHours,
		},
		Remarks: make([]dto.RemarkEntryResponse, 0, len(table)),
	}
	for _, e := range table {
		res.Remarks = append(res.Remarks, dto.RemarkEntryResponse{
			Time:     e.Time,
			Status:   e.Status,
			Location: e.Location,
			Remark:   e.Remark,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
