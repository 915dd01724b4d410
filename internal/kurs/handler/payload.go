package handler

import (
	"time"

	"kursapi/internal/domain"
)

// kursPayload is the create/update request body. Quote fields are
// pointers so an absent section can be told apart from zero rates.
type kursPayload struct {
	Symbol    string        `json:"symbol"`
	ERate     *domain.Quote `json:"e_rate"`
	TTCounter *domain.Quote `json:"tt_counter"`
	BankNotes *domain.Quote `json:"bank_notes"`
	Date      string        `json:"date"`
}

func (p *kursPayload) complete() bool {
	return p.Symbol != "" && p.Date != "" && p.ERate != nil && p.TTCounter != nil && p.BankNotes != nil
}

// parseDate accepts the plain calendar form or a full RFC 3339
// timestamp; either way the result is truncated to midnight UTC.
func (p *kursPayload) parseDate() (time.Time, error) {
	if t, err := time.Parse("2006-01-02", p.Date); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, p.Date)
	if err != nil {
		return time.Time{}, err
	}
	return domain.Day(t), nil
}

func (p *kursPayload) toRecord(date time.Time) domain.RateRecord {
	return domain.RateRecord{
		Symbol:    p.Symbol,
		ERate:     *p.ERate,
		TTCounter: *p.TTCounter,
		BankNotes: *p.BankNotes,
		Date:      date,
	}
}
