package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"kursapi/internal/domain"
	"kursapi/internal/kurs"
)

type DateValidator interface {
	ParseDate(raw string) (time.Time, error)
	ParseRange(start, end string) (time.Time, time.Time, error)
}

type KursService interface {
	GetByDateRange(ctx context.Context, start, end time.Time) ([]domain.RateRecord, error)
	GetBySymbolAndRange(ctx context.Context, symbol string, start, end time.Time) ([]domain.RateRecord, error)
	Create(ctx context.Context, rec domain.RateRecord) (domain.RateRecord, error)
	Update(ctx context.Context, rec domain.RateRecord) (domain.RateRecord, error)
	DeleteByDate(ctx context.Context, date time.Time) (int64, error)
}

type DailyIndexer interface {
	RunDaily(ctx context.Context, execID string) (kurs.IndexResult, error)
}

type Handler struct {
	validator DateValidator
	service   KursService
	indexer   DailyIndexer
}

func NewKursHandler(validator DateValidator, service KursService, indexer DailyIndexer) *Handler {
	return &Handler{validator: validator, service: service, indexer: indexer}
}

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	writeJSON(w, statusCode, errorResponse{Error: errorMsg})
}
