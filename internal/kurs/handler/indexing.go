package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Indexing godoc
// @Summary Trigger the daily scrape-and-index run
// @Description Scrapes the upstream kurs table and stores one record per currency for today. At most one successful run per calendar day.
// @Tags Kurs
// @Produce json
// @Success 200 {object} messageResponse
// @Failure 500 {object} errorResponse
// @Router /api/indexing [get]
func (h *Handler) Indexing(w http.ResponseWriter, r *http.Request) {
	execID := uuid.NewString()

	result, err := h.indexer.RunDaily(r.Context(), execID)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "Indexing", "exec_id": execID}).Error("scraping and indexing run failed")
		writeError(w, http.StatusInternalServerError, "Scraping and indexing failed")
		return
	}

	if result.AlreadyIndexed {
		writeJSON(w, http.StatusOK, messageResponse{Message: "Data for the current date already exists"})
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Scraping and indexing completed"})
}
