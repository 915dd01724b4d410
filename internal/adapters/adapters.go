package adapters

import (
	"context"
	"kursapi/internal/domain"
	"time"
)

// RateSource fetches the upstream rate table and returns one record per
// listed currency. Returned records carry no date; the caller stamps it.
type RateSource interface {
	FetchRates(ctx context.Context) ([]domain.RateRecord, error)
}

type KursRepository interface {
	FindByDateRange(ctx context.Context, start, end time.Time) ([]domain.RateRecord, error)
	FindBySymbolAndRange(ctx context.Context, symbol string, start, end time.Time) ([]domain.RateRecord, error)
	FindByDate(ctx context.Context, date time.Time) ([]domain.RateRecord, error)
	FindBySymbolAndDate(ctx context.Context, symbol string, date time.Time) (domain.RateRecord, error)
	// InsertOne fails with domain.ErrRecordExists when a record with the
	// same (symbol, date) is already present.
	InsertOne(ctx context.Context, record domain.RateRecord) error
	// CreateMany inserts records concurrently; rows conflicting on
	// (symbol, date) are skipped. Returns the number actually inserted.
	CreateMany(ctx context.Context, records []domain.RateRecord) (int, error)
	// ReplaceOne replaces all fields of the record matching the given
	// (symbol, date); fails with domain.ErrRecordNotFound on a miss.
	ReplaceOne(ctx context.Context, record domain.RateRecord) (domain.RateRecord, error)
	// DeleteByDate removes every record with the given date, any symbol,
	// and returns how many were removed.
	DeleteByDate(ctx context.Context, date time.Time) (int64, error)
}
