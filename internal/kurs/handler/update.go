package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"kursapi/internal/domain"

	"github.com/sirupsen/logrus"
)

type updateResponse struct {
	Message string            `json:"message"`
	Data    domain.RateRecord `json:"data"`
}

// Update godoc
// @Summary Replace one rate record, matched by symbol and date
// @Description Full-document replace; a (symbol, date) pair absent from the store yields 404.
// @Tags Kurs
// @Accept json
// @Produce json
// @Param record body kursPayload true "Rate record"
// @Success 200 {object} updateResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/kurs [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var payload kursPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || !payload.complete() {
		// An unidentifiable record cannot match anything in the store.
		writeError(w, http.StatusNotFound, "Data not found")
		return
	}

	date, err := payload.parseDate()
	if err != nil {
		writeError(w, http.StatusNotFound, "Data not found")
		return
	}

	updated, err := h.service.Update(r.Context(), payload.toRecord(date))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "Data not found")
			return
		}
		msg := "Failed to update data"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "Update", "symbol": payload.Symbol}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, updateResponse{Message: "Data successfully updated", Data: updated})
}
