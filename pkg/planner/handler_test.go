package planner

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupHandlerTest builds a handler with the routes it owns, backed by an
// in-memory service.
func setupHandlerTest(t *testing.T) (*Handler, *mux.Router) {
	t.Helper()
	service, _, _ := setupServiceTest(t)
	handler := NewHandler(service)

	r := mux.NewRouter()
	r.HandleFunc("/api/calendar/month", handler.GetMonth).Queries("year", "{year}", "month", "{month}").Methods("GET")
	r.HandleFunc("/api/calendar/day/{date}", handler.SetDay).Methods("PUT")
	r.HandleFunc("/api/calendar/day/{date}", handler.ClearDay).Methods("DELETE")
	r.HandleFunc("/api/calendar/apply-rules", handler.ApplyRules).Queries("year", "{year}", "month", "{month}").Methods("POST")
	r.HandleFunc("/api/rules", handler.PutRule).Methods("PUT")
	r.HandleFunc("/api/rules/{dayOfWeek}", handler.DeleteRule).Methods("DELETE")
	r.HandleFunc("/api/holidays/custom", handler.AddCustomHoliday).Methods("POST")
	return handler, r
}

func TestHandler_SetDayAndGetMonth(t *testing.T) {
	_, router := setupHandlerTest(t)

	req := httptest.NewRequest(http.MethodPut, "/api/calendar/day/2025-06-11", strings.NewReader(`{"type":"office"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/calendar/month?year=2025&month=6", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var days []ResolvedDayDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&days))
	require.Len(t, days, 30)
	assert.Equal(t, "office", days[10].Type)
	assert.True(t, days[10].Explicit)
	// June 2 is Festa della Repubblica
	assert.True(t, days[1].IsHoliday)
	assert.Equal(t, "Festa della Repubblica", days[1].HolidayName)
}

func TestHandler_SetDayRejectsUnknownType(t *testing.T) {
	_, router := setupHandlerTest(t)

	req := httptest.NewRequest(http.MethodPut, "/api/calendar/day/2025-06-11", strings.NewReader(`{"type":"vacation"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_SetDayRejectsBadDate(t *testing.T) {
	_, router := setupHandlerTest(t)

	req := httptest.NewRequest(http.MethodPut, "/api/calendar/day/11-06-2025", strings.NewReader(`{"type":"office"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_ClearDayNotFound(t *testing.T) {
	_, router := setupHandlerTest(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/calendar/day/2025-06-11", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_ApplyRules(t *testing.T) {
	handler, router := setupHandlerTest(t)
	handler.service.PutWeeklyRule(context.Background(), WeeklyRule{DayOfWeek: time.Friday, Type: DaySmartWorking})

	req := httptest.NewRequest(http.MethodPost, "/api/calendar/apply-rules?year=2025&month=6", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var days []ResolvedDayDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&days))
	// Fridays in June 2025: 6, 13, 20, 27
	assert.Equal(t, "smart", days[5].Type)
	assert.Equal(t, "smart", days[12].Type)
}

func TestHandler_PutRuleValidation(t *testing.T) {
	_, router := setupHandlerTest(t)

	req := httptest.NewRequest(http.MethodPut, "/api/rules", strings.NewReader(`{"dayOfWeek":7,"type":"smart"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodPut, "/api/rules", strings.NewReader(`{"dayOfWeek":1,"type":"smart"}`))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_AddCustomHolidayRejectsEmptyName(t *testing.T) {
	_, router := setupHandlerTest(t)

	req := httptest.NewRequest(http.MethodPost, "/api/holidays/custom", strings.NewReader(`{"name":"  ","month":6,"day":15}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_AddCustomHolidayAssignsID(t *testing.T) {
	_, router := setupHandlerTest(t)

	req := httptest.NewRequest(http.MethodPost, "/api/holidays/custom", strings.NewReader(`{"name":"Patrono","month":12,"day":7}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var dto CustomHolidayDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&dto))
	assert.NotEmpty(t, dto.ID)
	assert.Equal(t, "Patrono", dto.Name)
}
