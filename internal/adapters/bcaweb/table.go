package bcaweb

import (
	"math"
	"strconv"
	"strings"

	"kursapi/internal/domain"

	"github.com/antchfx/htmlquery"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"
)

// The page quotes seven ordered cells per row: symbol, then buy/sell
// pairs for the e-rate, TT counter and banknote tiers. This is a
// positional contract with the upstream page; there is nothing tagged
// to validate against beyond the cell count.
const cellsPerRow = 7

// ParseRateTable locates the kurs table in the fetched document and
// returns one record per data row. Records carry no date. A missing
// table or a malformed row yields fewer (possibly zero) records, never
// an error, matching the upstream page's lenient consumers.
func ParseRateTable(doc *html.Node) []domain.RateRecord {
	table, err := htmlquery.Query(doc, `//table[contains(@class, "m-table-kurs")]`)
	if err != nil || table == nil {
		logrus.Warn("kurs table not found in fetched page")
		return []domain.RateRecord{}
	}

	rows, err := htmlquery.QueryAll(table, "//tbody/tr")
	if err != nil {
		logrus.WithError(err).Warn("failed to query kurs table rows")
		return []domain.RateRecord{}
	}

	records := make([]domain.RateRecord, 0, len(rows))
	for _, row := range rows {
		cells, cellErr := htmlquery.QueryAll(row, "//td")
		if cellErr != nil || len(cells) < cellsPerRow {
			logrus.WithField("cells", len(cells)).Warn("skipping short kurs table row")
			continue
		}

		texts := make([]string, cellsPerRow)
		for i := 0; i < cellsPerRow; i++ {
			texts[i] = strings.TrimSpace(htmlquery.InnerText(cells[i]))
		}

		records = append(records, domain.RateRecord{
			Symbol:    texts[0],
			ERate:     domain.Quote{Beli: ParseKursNumber(texts[1]), Jual: ParseKursNumber(texts[2])},
			TTCounter: domain.Quote{Beli: ParseKursNumber(texts[3]), Jual: ParseKursNumber(texts[4])},
			BankNotes: domain.Quote{Beli: ParseKursNumber(texts[5]), Jual: ParseKursNumber(texts[6])},
		})
	}
	return records
}

// ParseKursNumber converts a cell like "1.803,55" (dot thousands
// separator, comma decimal separator) to its float value. Empty or
// non-numeric input yields NaN.
func ParseKursNumber(cell string) float64 {
	s := strings.TrimSpace(cell)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
