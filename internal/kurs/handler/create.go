package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"kursapi/internal/domain"

	"github.com/sirupsen/logrus"
)

const incompleteDataMsg = "Incomplete data. Please provide symbol, date, e_rate, tt_counter, and bank_notes fields"

type createResponse struct {
	Message string            `json:"message"`
	Data    domain.RateRecord `json:"data"`
}

// Create godoc
// @Summary Insert one rate record
// @Description Fails with 409 when a record with the same symbol and date already exists.
// @Tags Kurs
// @Accept json
// @Produce json
// @Param record body kursPayload true "Rate record"
// @Success 200 {object} createResponse
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/kurs [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var payload kursPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || !payload.complete() {
		writeError(w, http.StatusBadRequest, incompleteDataMsg)
		return
	}

	date, err := payload.parseDate()
	if err != nil {
		writeError(w, http.StatusBadRequest, incompleteDataMsg)
		return
	}

	created, err := h.service.Create(r.Context(), payload.toRecord(date))
	if err != nil {
		if errors.Is(err, domain.ErrRecordExists) {
			writeError(w, http.StatusConflict, "Data already exists")
			return
		}
		msg := "Failed to insert data"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "Create", "symbol": payload.Symbol}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, createResponse{Message: "Data successfully inserted", Data: created})
}
