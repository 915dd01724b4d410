package kurs

import (
	"context"
	"time"

	"kursapi/internal/adapters"
	"kursapi/internal/domain"
)

// Service exposes the CRUD surface over the kurs record store. Dates
// are normalized to midnight UTC before they reach the repository.
type Service struct {
	repo adapters.KursRepository
}

func NewService(repo adapters.KursRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByDateRange(ctx context.Context, start, end time.Time) ([]domain.RateRecord, error) {
	return s.repo.FindByDateRange(ctx, domain.Day(start), domain.Day(end))
}

func (s *Service) GetBySymbolAndRange(ctx context.Context, symbol string, start, end time.Time) ([]domain.RateRecord, error) {
	return s.repo.FindBySymbolAndRange(ctx, symbol, domain.Day(start), domain.Day(end))
}

func (s *Service) Create(ctx context.Context, rec domain.RateRecord) (domain.RateRecord, error) {
	rec.Date = domain.Day(rec.Date)
	if err := s.repo.InsertOne(ctx, rec); err != nil {
		return domain.RateRecord{}, err
	}
	return rec, nil
}

func (s *Service) Update(ctx context.Context, rec domain.RateRecord) (domain.RateRecord, error) {
	rec.Date = domain.Day(rec.Date)
	return s.repo.ReplaceOne(ctx, rec)
}

func (s *Service) DeleteByDate(ctx context.Context, date time.Time) (int64, error) {
	return s.repo.DeleteByDate(ctx, domain.Day(date))
}
