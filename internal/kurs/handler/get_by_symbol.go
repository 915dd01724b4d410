package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// GetBySymbol godoc
// @Summary List rate records in a date range for one symbol
// @Tags Kurs
// @Produce json
// @Param symbol path string true "Currency symbol, exact match (e.g. USD)"
// @Param startdate query string true "Range start (YYYY-MM-DD, inclusive)"
// @Param enddate query string true "Range end (YYYY-MM-DD, inclusive)"
// @Success 200 {array} domain.RateRecord
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/kurs/{symbol} [get]
func (h *Handler) GetBySymbol(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	start, end, err := h.validator.ParseRange(r.URL.Query().Get("startdate"), r.URL.Query().Get("enddate"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Invalid startdate or enddate")
		return
	}

	records, err := h.service.GetBySymbolAndRange(r.Context(), symbol, start, end)
	if err != nil {
		msg := "Failed to fetch records"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetBySymbol", "symbol": symbol}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	if len(records) == 0 {
		writeError(w, http.StatusNotFound, "No records found for the specified symbol and date range")
		return
	}

	writeJSON(w, http.StatusOK, records)
}
