package api

import (
	_ "kursapi/docs"
	"kursapi/internal/kurs/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(kursHandler *handler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Get("/", kursHandler.Welcome)
	router.Get("/api/indexing", kursHandler.Indexing)
	router.Get("/api/kurs", kursHandler.GetByDateRange)
	router.Post("/api/kurs", kursHandler.Create)
	router.Put("/api/kurs", kursHandler.Update)
	router.Get("/api/kurs/{symbol}", kursHandler.GetBySymbol)
	router.Delete("/api/kurs/{date}", kursHandler.DeleteByDate)
	return router
}
