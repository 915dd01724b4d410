package postgres

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"kursapi/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

// insertWorkers bounds the concurrent per-record writes of CreateMany.
const insertWorkers = 5

type KursRepository struct {
	pool *pgxpool.Pool
}

func NewKursRepository(pool *pgxpool.Pool) *KursRepository {
	return &KursRepository{pool: pool}
}

const selectColumns = `
    symbol,
    e_rate_jual, e_rate_beli,
    tt_counter_jual, tt_counter_beli,
    bank_notes_jual, bank_notes_beli,
    date
`

func scanRecord(row pgx.Row) (domain.RateRecord, error) {
	var rec domain.RateRecord
	err := row.Scan(
		&rec.Symbol,
		&rec.ERate.Jual, &rec.ERate.Beli,
		&rec.TTCounter.Jual, &rec.TTCounter.Beli,
		&rec.BankNotes.Jual, &rec.BankNotes.Beli,
		&rec.Date,
	)
	return rec, err
}

func (r *KursRepository) queryRecords(ctx context.Context, q string, args ...any) ([]domain.RateRecord, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query kurs records: %w", err)
	}
	defer rows.Close()

	records := make([]domain.RateRecord, 0, 32)
	for rows.Next() {
		rec, scanErr := scanRecord(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan kurs record: %w", scanErr)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating kurs records: %w", err)
	}
	return records, nil
}

func (r *KursRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]domain.RateRecord, error) {
	const q = `
        select ` + selectColumns + `
        from kurs_rates
        where date >= $1 and date <= $2
        order by date, symbol;
    `
	return r.queryRecords(ctx, q, start, end)
}

func (r *KursRepository) FindBySymbolAndRange(ctx context.Context, symbol string, start, end time.Time) ([]domain.RateRecord, error) {
	const q = `
        select ` + selectColumns + `
        from kurs_rates
        where symbol = $1 and date >= $2 and date <= $3
        order by date;
    `
	return r.queryRecords(ctx, q, symbol, start, end)
}

func (r *KursRepository) FindByDate(ctx context.Context, date time.Time) ([]domain.RateRecord, error) {
	const q = `
        select ` + selectColumns + `
        from kurs_rates
        where date = $1
        order by symbol;
    `
	return r.queryRecords(ctx, q, date)
}

func (r *KursRepository) FindBySymbolAndDate(ctx context.Context, symbol string, date time.Time) (domain.RateRecord, error) {
	const q = `
        select ` + selectColumns + `
        from kurs_rates
        where symbol = $1 and date = $2;
    `
	rec, err := scanRecord(r.pool.QueryRow(ctx, q, symbol, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.RateRecord{}, domain.ErrRecordNotFound
		}
		return domain.RateRecord{}, fmt.Errorf("failed to select kurs record %q/%s: %w", symbol, date.Format(time.DateOnly), err)
	}
	return rec, nil
}

const insertQuery = `
    insert into kurs_rates (
        symbol,
        e_rate_jual, e_rate_beli,
        tt_counter_jual, tt_counter_beli,
        bank_notes_jual, bank_notes_beli,
        date
    )
    values ($1, $2, $3, $4, $5, $6, $7, $8)
    on conflict (symbol, date) do nothing;
`

func insertArgs(rec domain.RateRecord) []any {
	return []any{
		rec.Symbol,
		rec.ERate.Jual, rec.ERate.Beli,
		rec.TTCounter.Jual, rec.TTCounter.Beli,
		rec.BankNotes.Jual, rec.BankNotes.Beli,
		rec.Date,
	}
}

// InsertOne relies on the (symbol, date) unique index: the conflict
// clause is the sole source of the "already exists" signal, so there is
// no separate read-then-write race window.
func (r *KursRepository) InsertOne(ctx context.Context, rec domain.RateRecord) error {
	tag, err := r.pool.Exec(ctx, insertQuery, insertArgs(rec)...)
	if err != nil {
		return fmt.Errorf("failed to insert kurs record %q/%s: %w", rec.Symbol, rec.Date.Format(time.DateOnly), err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRecordExists
	}
	return nil
}

// CreateMany performs independent concurrent per-record writes; the
// first failed write cancels the rest and is reported as the aggregate
// failure. Conflicting rows are skipped, not counted.
func (r *KursRepository) CreateMany(ctx context.Context, records []domain.RateRecord) (int, error) {
	var inserted atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(insertWorkers)
	for _, rec := range records {
		g.Go(func() error {
			tag, err := r.pool.Exec(gctx, insertQuery, insertArgs(rec)...)
			if err != nil {
				return fmt.Errorf("failed to insert kurs record %q/%s: %w", rec.Symbol, rec.Date.Format(time.DateOnly), err)
			}
			inserted.Add(tag.RowsAffected())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return int(inserted.Load()), err
	}
	return int(inserted.Load()), nil
}

func (r *KursRepository) ReplaceOne(ctx context.Context, rec domain.RateRecord) (domain.RateRecord, error) {
	const q = `
        update kurs_rates
        set e_rate_jual = $3, e_rate_beli = $4,
            tt_counter_jual = $5, tt_counter_beli = $6,
            bank_notes_jual = $7, bank_notes_beli = $8
        where symbol = $1 and date = $2
        returning ` + selectColumns + `;
    `
	updated, err := scanRecord(r.pool.QueryRow(ctx, q,
		rec.Symbol, rec.Date,
		rec.ERate.Jual, rec.ERate.Beli,
		rec.TTCounter.Jual, rec.TTCounter.Beli,
		rec.BankNotes.Jual, rec.BankNotes.Beli,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.RateRecord{}, domain.ErrRecordNotFound
		}
		return domain.RateRecord{}, fmt.Errorf("failed to replace kurs record %q/%s: %w", rec.Symbol, rec.Date.Format(time.DateOnly), err)
	}
	return updated, nil
}

func (r *KursRepository) DeleteByDate(ctx context.Context, date time.Time) (int64, error) {
	const q = `delete from kurs_rates where date = $1;`
	tag, err := r.pool.Exec(ctx, q, date)
	if err != nil {
		return 0, fmt.Errorf("failed to delete kurs records for %s: %w", date.Format(time.DateOnly), err)
	}
	return tag.RowsAffected(), nil
}
