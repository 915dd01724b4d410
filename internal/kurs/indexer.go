package kurs

import (
	"context"
	"fmt"
	"math"
	"time"

	"kursapi/internal/adapters"
	"kursapi/internal/domain"

	"github.com/sirupsen/logrus"
)

// IndexResult reports the outcome of one daily indexing run.
type IndexResult struct {
	Date           time.Time
	AlreadyIndexed bool
	Inserted       int
}

// Indexer performs the daily scrape-and-store run: check whether
// today's rates are indexed, fetch and parse the upstream table, stamp
// every record with today's date and persist the batch.
//
// The already-indexed guard is a single point read, not a lock; two
// runs racing through it both reach the insert, where the (symbol,
// date) unique index turns the loser's writes into no-ops.
type Indexer struct {
	repo   adapters.KursRepository
	source adapters.RateSource
	now    func() time.Time
}

func NewIndexer(repo adapters.KursRepository, source adapters.RateSource) *Indexer {
	return &Indexer{repo: repo, source: source, now: time.Now}
}

func (ix *Indexer) RunDaily(ctx context.Context, execID string) (IndexResult, error) {
	today := domain.Day(ix.now())

	existing, err := ix.repo.FindByDate(ctx, today)
	if err != nil {
		return IndexResult{}, fmt.Errorf("failed to check existing records for %s: %w", today.Format(dateLayout), err)
	}
	if len(existing) > 0 {
		logrus.Infof("Rates for %s already indexed, skipping; execID: %s", today.Format(dateLayout), execID)
		return IndexResult{Date: today, AlreadyIndexed: true}, nil
	}

	records, err := ix.source.FetchRates(ctx)
	if err != nil {
		return IndexResult{}, fmt.Errorf("failed to fetch rates: %w", err)
	}
	records = dropUnparsedRates(records, execID)
	// Zero parsed rows is a no-op, not a failure: the upstream table may
	// legitimately be absent (page under maintenance, layout drift).
	if len(records) == 0 {
		logrus.Warnf("No rates extracted from upstream page; execID: %s", execID)
		return IndexResult{Date: today}, nil
	}

	for i := range records {
		records[i].Date = today
	}

	inserted, err := ix.repo.CreateMany(ctx, records)
	if err != nil {
		return IndexResult{}, fmt.Errorf("failed to persist scraped rates: %w", err)
	}

	logrus.Infof("Indexed %d of %d scraped rates for %s; execID: %s", inserted, len(records), today.Format(dateLayout), execID)
	return IndexResult{Date: today, Inserted: inserted}, nil
}

// dropUnparsedRates removes rows whose numeric cells failed to
// normalize. NaN is not representable in the JSON responses that serve
// these records, so such rows must never reach the store.
func dropUnparsedRates(records []domain.RateRecord, execID string) []domain.RateRecord {
	clean := make([]domain.RateRecord, 0, len(records))
	for _, rec := range records {
		if hasNaNRates(rec) {
			logrus.Warnf("Skipping rate row %q with non-numeric cells; execID: %s", rec.Symbol, execID)
			continue
		}
		clean = append(clean, rec)
	}
	return clean
}

func hasNaNRates(rec domain.RateRecord) bool {
	for _, q := range []domain.Quote{rec.ERate, rec.TTCounter, rec.BankNotes} {
		if math.IsNaN(q.Jual) || math.IsNaN(q.Beli) {
			return true
		}
	}
	return false
}
