package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// GetByDateRange godoc
// @Summary List rate records in a date range, all symbols
// @Tags Kurs
// @Produce json
// @Param startdate query string true "Range start (YYYY-MM-DD, inclusive)"
// @Param enddate query string true "Range end (YYYY-MM-DD, inclusive)"
// @Success 200 {array} domain.RateRecord
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/kurs [get]
func (h *Handler) GetByDateRange(w http.ResponseWriter, r *http.Request) {
	start, end, err := h.validator.ParseRange(r.URL.Query().Get("startdate"), r.URL.Query().Get("enddate"))
	if err != nil {
		// Historical contract: malformed dates map to 500, not 400.
		writeError(w, http.StatusInternalServerError, "Invalid date format")
		return
	}

	records, err := h.service.GetByDateRange(r.Context(), start, end)
	if err != nil {
		msg := "Failed to fetch records"
		logrus.WithError(err).WithField("handler", "GetByDateRange").Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	if len(records) == 0 {
		writeError(w, http.StatusNotFound, "No records found for the specified date range")
		return
	}

	writeJSON(w, http.StatusOK, records)
}
