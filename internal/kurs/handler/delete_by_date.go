package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// DeleteByDate godoc
// @Summary Delete every rate record for one date, any symbol
// @Tags Kurs
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} messageResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/kurs/{date} [delete]
func (h *Handler) DeleteByDate(w http.ResponseWriter, r *http.Request) {
	rawDate := chi.URLParam(r, "date")

	date, err := h.validator.ParseDate(rawDate)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Invalid date format")
		return
	}

	deleted, err := h.service.DeleteByDate(r.Context(), date)
	if err != nil {
		msg := "Failed to delete records"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "DeleteByDate", "date": rawDate}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	if deleted == 0 {
		writeError(w, http.StatusNotFound, fmt.Sprintf("No records found for date: %s", rawDate))
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: fmt.Sprintf("Deleted records for date: %s", rawDate)})
}
