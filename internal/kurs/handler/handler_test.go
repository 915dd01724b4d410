package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kursapi/internal/domain"
	"kursapi/internal/kurs"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockKursService struct{ mock.Mock }

func (m *MockKursService) GetByDateRange(ctx context.Context, start, end time.Time) ([]domain.RateRecord, error) {
	args := m.Called(ctx, start, end)
	records, _ := args.Get(0).([]domain.RateRecord)
	return records, args.Error(1)
}

func (m *MockKursService) GetBySymbolAndRange(ctx context.Context, symbol string, start, end time.Time) ([]domain.RateRecord, error) {
	args := m.Called(ctx, symbol, start, end)
	records, _ := args.Get(0).([]domain.RateRecord)
	return records, args.Error(1)
}

func (m *MockKursService) Create(ctx context.Context, rec domain.RateRecord) (domain.RateRecord, error) {
	args := m.Called(ctx, rec)
	created, _ := args.Get(0).(domain.RateRecord)
	return created, args.Error(1)
}

func (m *MockKursService) Update(ctx context.Context, rec domain.RateRecord) (domain.RateRecord, error) {
	args := m.Called(ctx, rec)
	updated, _ := args.Get(0).(domain.RateRecord)
	return updated, args.Error(1)
}

func (m *MockKursService) DeleteByDate(ctx context.Context, date time.Time) (int64, error) {
	args := m.Called(ctx, date)
	count, _ := args.Get(0).(int64)
	return count, args.Error(1)
}

type MockDailyIndexer struct{ mock.Mock }

func (m *MockDailyIndexer) RunDaily(ctx context.Context, execID string) (kurs.IndexResult, error) {
	args := m.Called(ctx, execID)
	result, _ := args.Get(0).(kurs.IndexResult)
	return result, args.Error(1)
}

type errorJSON struct {
	Error string `json:"error"`
}

type messageJSON struct {
	Message string `json:"message"`
}

func newTestHandler() (*Handler, *MockKursService, *MockDailyIndexer) {
	mockService := new(MockKursService)
	mockIndexer := new(MockDailyIndexer)
	h := NewKursHandler(kurs.NewDateValidator(), mockService, mockIndexer)
	return h, mockService, mockIndexer
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func record(symbol string, date time.Time) domain.RateRecord {
	return domain.RateRecord{
		Symbol:    symbol,
		ERate:     domain.Quote{Jual: 15870, Beli: 15850},
		TTCounter: domain.Quote{Jual: 15900, Beli: 15800},
		BankNotes: domain.Quote{Jual: 15950, Beli: 15750},
		Date:      date,
	}
}

// --- Welcome ---

func TestHandler_Welcome(t *testing.T) {
	h, _, _ := newTestHandler()

	rr := httptest.NewRecorder()
	h.Welcome(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var body messageJSON
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, "Welcome to this API", body.Message)
}

// --- Indexing ---

func TestHandler_Indexing_Completed(t *testing.T) {
	h, _, mockIndexer := newTestHandler()

	mockIndexer.On("RunDaily", mock.Anything, mock.Anything).
		Return(kurs.IndexResult{Date: day(2023, 5, 31), Inserted: 16}, nil).Once()

	rr := httptest.NewRecorder()
	h.Indexing(rr, httptest.NewRequest(http.MethodGet, "/api/indexing", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var body messageJSON
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, "Scraping and indexing completed", body.Message)
	mockIndexer.AssertExpectations(t)
}

func TestHandler_Indexing_AlreadyExists(t *testing.T) {
	h, _, mockIndexer := newTestHandler()

	mockIndexer.On("RunDaily", mock.Anything, mock.Anything).
		Return(kurs.IndexResult{Date: day(2023, 5, 31), AlreadyIndexed: true}, nil).Once()

	rr := httptest.NewRecorder()
	h.Indexing(rr, httptest.NewRequest(http.MethodGet, "/api/indexing", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var body messageJSON
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, "Data for the current date already exists", body.Message)
}

func TestHandler_Indexing_Failure(t *testing.T) {
	h, _, mockIndexer := newTestHandler()

	mockIndexer.On("RunDaily", mock.Anything, mock.Anything).
		Return(kurs.IndexResult{}, errors.New("upstream unreachable")).Once()

	rr := httptest.NewRecorder()
	h.Indexing(rr, httptest.NewRequest(http.MethodGet, "/api/indexing", nil))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	var body errorJSON
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, "Scraping and indexing failed", body.Error)
}

// --- DeleteByDate ---

func TestHandler_DeleteByDate_InvalidFormat(t *testing.T) {
	h, mockService, _ := newTestHandler()

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/kurs/invalid-date", nil), "date", "invalid-date")
	rr := httptest.NewRecorder()
	h.DeleteByDate(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	var body errorJSON
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, "Invalid date format", body.Error)
	mockService.AssertNotCalled(t, "DeleteByDate", mock.Anything, mock.Anything)
}

func TestHandler_DeleteByDate_NotFound(t *testing.T) {
	h, mockService, _ := newTestHandler()

	mockService.On("DeleteByDate", mock.Anything, day(2003, 5, 30)).Return(int64(0), nil).Once()

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/kurs/2003-05-30", nil), "date", "2003-05-30")
	rr := httptest.NewRecorder()
	h.DeleteByDate(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	var body errorJSON
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, "No records found for date: 2003-05-30", body.Error)
}

func TestHandler_DeleteByDate_Success(t *testing.T) {
	h, mockService, _ := newTestHandler()

	mockService.On("DeleteByDate", mock.Anything, day(2023, 5, 31)).Return(int64(16), nil).Once()

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/kurs/2023-05-31", nil), "date", "2023-05-31")
	rr := httptest.NewRecorder()
	h.DeleteByDate(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var body messageJSON
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, "Deleted records for date: 2023-05-31", body.Message)
	mockService.AssertExpectations(t)
}

// --- GetByDateRange ---

func TestHandler_GetByDateRange_InvalidDates(t *testing.T) {
	h, mockService, _ := newTestHandler()

	rr := httptest.NewRecorder()
	h.GetByDateRange(rr, httptest.NewRequest(http.MethodGet, "/api/kurs?startdate=31-05-2023&enddate=2023-05-31", nil))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	var body errorJSON
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, "Invalid date format", body.Error)
	mockService.AssertNotCalled(t, "GetByDateRange", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_GetByDateRange_NotFound(t *testing.T) {
	h, mockService, _ := newTestHandler()

	mockService.On("GetByDateRange", mock.Anything, day(2023, 6, 1), day(2023, 6, 30)).
		Return([]domain.RateRecord{}, nil).Once()

	rr := httptest.NewRecorder()
	h.GetByDateRange(rr, httptest.NewRequest(http.MethodGet, "/api/kurs?startdate=2023-06-01&enddate=2023-06-30", nil))

	require.Equal(t, http.StatusNotFound, rr.Code)
	var body errorJSON
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, "No records found for the specified date range", body.Error)
}

func TestHandler_GetByDateRange_Success(t *testing.T) {
	h, mockService, _ := newTestHandler()

	want := []domain.RateRecord{record("USD", day(2023, 5, 30)), record("EUR", day(2023, 5, 31))}
	mockService.On("GetByDateRange", mock.Anything, day(2023, 5, 29), day(2023, 5, 31)).
		Return(want, nil).Once()

	rr := httptest.NewRecorder()
	h.GetByDateRange(rr, httptest.NewRequest(http.MethodGet, "/api/kurs?startdate=2023-05-29&enddate=2023-05-31", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var got []domain.RateRecord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Equal(t, want, got)
}

// --- GetBySymbol ---

func TestHandler_GetBySymbol_InvalidDates(t *testing.T) {
	h, mockService, _ := newTestHandler()

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/kurs/USD?startdate=bad&enddate=2023-05-31", nil), "symbol", "USD")
	rr := httptest.NewRecorder()
	h.GetBySymbol(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	var body errorJSON
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, "Invalid startdate or enddate", body.Error)
	mockService.AssertNotCalled(t, "GetBySymbolAndRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_GetBySymbol_NotFound(t *testing.T) {
	h, mockService, _ := newTestHandler()

	mockService.On("GetBySymbolAndRange", mock.Anything, "CHF", day(2023, 5, 29), day(2023, 5, 31)).
		Return([]domain.RateRecord{}, nil).Once()

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/kurs/CHF?startdate=2023-05-29&enddate=2023-05-31", nil), "symbol", "CHF")
	rr := httptest.NewRecorder()
	h.GetBySymbol(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	var body errorJSON
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, "No records found for the specified symbol and date range", body.Error)
}

func TestHandler_GetBySymbol_Success(t *testing.T) {
	h, mockService, _ := newTestHandler()

	want := []domain.RateRecord{record("USD", day(2023, 5, 31))}
	mockService.On("GetBySymbolAndRange", mock.Anything, "USD", day(2023, 5, 29), day(2023, 5, 31)).
		Return(want, nil).Once()

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/kurs/USD?startdate=2023-05-29&enddate=2023-05-31", nil), "symbol", "USD")
	rr := httptest.NewRecorder()
	h.GetBySymbol(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var got []domain.RateRecord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Equal(t, want, got)
}

// --- Create ---

func TestHandler_Create_IncompleteData(t *testing.T) {
	h, mockService, _ := newTestHandler()

	cases := []string{
		`{}`,
		`{"symbol":"USD"}`,
		`{"symbol":"USD","date":"2023-05-31"}`,
		`{"symbol":"USD","date":"2023-05-31","e_rate":{"jual":1,"beli":1},"tt_counter":{"jual":1,"beli":1}}`,
		`not json`,
	}
	for _, payload := range cases {
		t.Run(payload, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/kurs", bytes.NewBufferString(payload))
			h.Create(rr, req)

			require.Equal(t, http.StatusBadRequest, rr.Code)
			var body errorJSON
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			require.Equal(t, incompleteDataMsg, body.Error)
		})
	}
	mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestHandler_Create_Duplicate(t *testing.T) {
	h, mockService, _ := newTestHandler()

	mockService.On("Create", mock.Anything, mock.Anything).
		Return(domain.RateRecord{}, domain.ErrRecordExists).Once()

	payload, err := json.Marshal(record("USD", day(2023, 5, 31)))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	h.Create(rr, httptest.NewRequest(http.MethodPost, "/api/kurs", bytes.NewBuffer(payload)))

	require.Equal(t, http.StatusConflict, rr.Code)
	var body errorJSON
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, "Data already exists", body.Error)
}

func TestHandler_Create_Success(t *testing.T) {
	h, mockService, _ := newTestHandler()

	want := record("USD", day(2023, 5, 31))
	mockService.On("Create", mock.Anything, want).Return(want, nil).Once()

	payload, err := json.Marshal(want)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	h.Create(rr, httptest.NewRequest(http.MethodPost, "/api/kurs", bytes.NewBuffer(payload)))

	require.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Message string            `json:"message"`
		Data    domain.RateRecord `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, "Data successfully inserted", body.Message)
	require.Equal(t, want, body.Data)
	mockService.AssertExpectations(t)
}

// The record's date arrives as a full timestamp after a JSON round
// trip; the handler must still address it at day granularity.
func TestHandler_Create_TimestampDateTruncated(t *testing.T) {
	h, mockService, _ := newTestHandler()

	want := record("USD", day(2023, 5, 31))
	mockService.On("Create", mock.Anything, want).Return(want, nil).Once()

	const payload = `{
        "symbol": "USD",
        "e_rate": {"jual": 15870, "beli": 15850},
        "tt_counter": {"jual": 15900, "beli": 15800},
        "bank_notes": {"jual": 15950, "beli": 15750},
        "date": "2023-05-31T10:15:00+07:00"
    }`

	rr := httptest.NewRecorder()
	h.Create(rr, httptest.NewRequest(http.MethodPost, "/api/kurs", bytes.NewBufferString(payload)))

	require.Equal(t, http.StatusOK, rr.Code)
	mockService.AssertExpectations(t)
}

// --- Update ---

func TestHandler_Update_NotFound(t *testing.T) {
	h, mockService, _ := newTestHandler()

	mockService.On("Update", mock.Anything, mock.Anything).
		Return(domain.RateRecord{}, domain.ErrRecordNotFound).Once()

	payload, err := json.Marshal(record("XYZ", day(2023, 5, 31)))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	h.Update(rr, httptest.NewRequest(http.MethodPut, "/api/kurs", bytes.NewBuffer(payload)))

	require.Equal(t, http.StatusNotFound, rr.Code)
	var body errorJSON
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, "Data not found", body.Error)
}

func TestHandler_Update_UnidentifiableRecord(t *testing.T) {
	h, mockService, _ := newTestHandler()

	rr := httptest.NewRecorder()
	h.Update(rr, httptest.NewRequest(http.MethodPut, "/api/kurs", bytes.NewBufferString(`{"date":"2023-05-31"}`)))

	require.Equal(t, http.StatusNotFound, rr.Code)
	var body errorJSON
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, "Data not found", body.Error)
	mockService.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestHandler_Update_Success(t *testing.T) {
	h, mockService, _ := newTestHandler()

	want := record("USD", day(2023, 5, 31))
	mockService.On("Update", mock.Anything, want).Return(want, nil).Once()

	payload, err := json.Marshal(want)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	h.Update(rr, httptest.NewRequest(http.MethodPut, "/api/kurs", bytes.NewBuffer(payload)))

	require.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Message string            `json:"message"`
		Data    domain.RateRecord `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, "Data successfully updated", body.Message)
	require.Equal(t, want, body.Data)
}
