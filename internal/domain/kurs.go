package domain

import (
	"time"
)

// Quote is one buy/sell price pair. Field names follow the source
// table's terminology (jual = sell, beli = buy).
type Quote struct {
	Jual float64 `json:"jual"`
	Beli float64 `json:"beli"`
}

// RateRecord holds one currency's quoted rates for one calendar day.
// (Symbol, Date) identifies a record; Date is always midnight UTC.
type RateRecord struct {
	Symbol    string    `json:"symbol"`
	ERate     Quote     `json:"e_rate"`
	TTCounter Quote     `json:"tt_counter"`
	BankNotes Quote     `json:"bank_notes"`
	Date      time.Time `json:"date"`
}

// Day truncates t to its UTC calendar day at midnight.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
