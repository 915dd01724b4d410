package handler

import "net/http"

// Welcome godoc
// @Summary API liveness greeting
// @Tags Kurs
// @Produce json
// @Success 200 {object} messageResponse
// @Router / [get]
func (h *Handler) Welcome(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Message: "Welcome to this API"})
}
