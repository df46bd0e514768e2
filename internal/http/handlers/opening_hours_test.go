package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garagehub/internal/http/middleware"
	"garagehub/pkg/models"
)

const testSecret = "test-admin-secret"

type hoursTestEnv struct {
	e        *echo.Echo
	garages  *fakeGarageStore
	schedule *fakeScheduleStore
	garage   *models.Garage
}

func newHoursTestEnv(t *testing.T, secret string) *hoursTestEnv {
	t.Helper()

	garage := &models.Garage{
		Slug:         "smiths-garage",
		BusinessName: "Smith's Garage",
		Timezone:     "Europe/London",
	}
	garages := newFakeGarageStore(garage)
	schedule := newFakeScheduleStore()

	e := newTestEcho()
	h := NewOpeningHoursHandler(garages, schedule)
	e.GET("/api/v1/garages/:slug/opening-hours", h.List)
	e.POST("/api/v1/garages/:slug/opening-hours", h.Replace, middleware.AdminSecret(secret))

	return &hoursTestEnv{e: e, garages: garages, schedule: schedule, garage: garage}
}

func (env *hoursTestEnv) get(slug string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/garages/"+slug+"/opening-hours", nil)
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func (env *hoursTestEnv) post(slug, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/garages/"+slug+"/opening-hours", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func weekJSON() string {
	days := make([]string, 0, 7)
	for day := 1; day <= 7; day++ {
		if day == 7 {
			days = append(days, fmt.Sprintf(`{"day_of_week":%d,"is_open":false}`, day))
			continue
		}
		days = append(days, fmt.Sprintf(`{"day_of_week":%d,"is_open":true,"open_time":"09:00","close_time":"17:30"}`, day))
	}
	return `{"hours":[` + strings.Join(days, ",") + `]}`
}

func decodeWeek(t *testing.T, body []byte) []models.OpeningHours {
	t.Helper()
	var week []models.OpeningHours
	require.NoError(t, json.Unmarshal(body, &week))
	return week
}

func TestListUnknownGarage(t *testing.T) {
	env := newHoursTestEnv(t, testSecret)
	rec := env.get("no-such-garage")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Garage not found")
}

func TestListFillsMissingDays(t *testing.T) {
	env := newHoursTestEnv(t, testSecret)

	open := "09:00"
	close := "17:00"
	env.schedule.weeks[env.garage.ID] = []models.OpeningHours{
		{GarageID: env.garage.ID, DayOfWeek: 1, IsOpen: true, OpenTime: &open, CloseTime: &close},
		{GarageID: env.garage.ID, DayOfWeek: 3, IsOpen: true, OpenTime: &open, CloseTime: &close},
		{GarageID: env.garage.ID, DayOfWeek: 5, IsOpen: true, OpenTime: &open, CloseTime: &close},
	}

	rec := env.get(env.garage.Slug)
	require.Equal(t, http.StatusOK, rec.Code)

	week := decodeWeek(t, rec.Body.Bytes())
	require.Len(t, week, 7)
	for i, day := range week {
		assert.Equal(t, i+1, day.DayOfWeek)
	}
	for _, day := range []int{2, 4, 6, 7} {
		assert.False(t, week[day-1].IsOpen, "day %d should be synthesized closed", day)
	}
}

func TestReplaceRoundTrip(t *testing.T) {
	env := newHoursTestEnv(t, testSecret)

	rec := env.post(env.garage.Slug, weekJSON(), map[string]string{middleware.HeaderAdminSecret: testSecret})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp ReplaceHoursResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Hours, 7)
	assert.Empty(t, resp.Warnings)

	readBack := env.get(env.garage.Slug)
	require.Equal(t, http.StatusOK, readBack.Code)
	week := decodeWeek(t, readBack.Body.Bytes())
	require.Len(t, week, 7)

	for day := 1; day <= 7; day++ {
		stored := resp.Hours[day-1]
		read := week[day-1]
		assert.Equal(t, stored.DayOfWeek, read.DayOfWeek)
		assert.Equal(t, stored.IsOpen, read.IsOpen)
		if stored.IsOpen {
			require.NotNil(t, read.OpenTime)
			assert.Equal(t, *stored.OpenTime, *read.OpenTime)
		}
	}
}

func TestReplaceSecretFromBody(t *testing.T) {
	env := newHoursTestEnv(t, testSecret)

	body := `{"secret":"` + testSecret + `",` + weekJSON()[1:]
	rec := env.post(env.garage.Slug, body, nil)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestReplaceRejectedWithoutSecret(t *testing.T) {
	env := newHoursTestEnv(t, testSecret)

	rec := env.post(env.garage.Slug, weekJSON(), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Storage untouched: a subsequent read still shows the default
	// all-closed week.
	readBack := env.get(env.garage.Slug)
	week := decodeWeek(t, readBack.Body.Bytes())
	for _, day := range week {
		assert.False(t, day.IsOpen)
	}
}

func TestReplaceRejectedWithWrongSecret(t *testing.T) {
	env := newHoursTestEnv(t, testSecret)

	rec := env.post(env.garage.Slug, weekJSON(), map[string]string{middleware.HeaderAdminSecret: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	readBack := env.get(env.garage.Slug)
	for _, day := range decodeWeek(t, readBack.Body.Bytes()) {
		assert.False(t, day.IsOpen)
	}
}

func TestReplaceSecretNotConfigured(t *testing.T) {
	env := newHoursTestEnv(t, "")

	rec := env.post(env.garage.Slug, weekJSON(), map[string]string{middleware.HeaderAdminSecret: testSecret})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestReplaceUnknownGarage(t *testing.T) {
	env := newHoursTestEnv(t, testSecret)

	rec := env.post("no-such-garage", weekJSON(), map[string]string{middleware.HeaderAdminSecret: testSecret})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReplaceValidationFailures(t *testing.T) {
	sixDays := `{"hours":[` + strings.Join([]string{
		`{"day_of_week":1,"is_open":false}`,
		`{"day_of_week":2,"is_open":false}`,
		`{"day_of_week":3,"is_open":false}`,
		`{"day_of_week":4,"is_open":false}`,
		`{"day_of_week":5,"is_open":false}`,
		`{"day_of_week":6,"is_open":false}`,
	}, ",") + `]}`

	badDay := strings.Replace(weekJSON(), `"day_of_week":7`, `"day_of_week":8`, 1)
	missingTime := strings.Replace(weekJSON(), `"open_time":"09:00",`, "", 1)
	badFormat := strings.Replace(weekJSON(), `"open_time":"09:00"`, `"open_time":"9:00"`, 1)
	missingFlag := strings.Replace(weekJSON(), `{"day_of_week":7,"is_open":false}`, `{"day_of_week":7}`, 1)
	stringFlag := strings.Replace(weekJSON(), `{"day_of_week":7,"is_open":false}`, `{"day_of_week":7,"is_open":"yes"}`, 1)

	tests := []struct {
		name     string
		body     string
		fragment string
	}{
		{"six days", sixDays, "Expected array of 7 days"},
		{"day out of range", badDay, "Invalid day_of_week: 8"},
		{"missing open time", missingTime, "missing open_time or close_time"},
		{"no leading zero", badFormat, "Invalid time format"},
		{"missing open flag", missingFlag, "Invalid is_open for day 7"},
		{"non-boolean open flag", stringFlag, "Invalid is_open for day 7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newHoursTestEnv(t, testSecret)
			rec := env.post(env.garage.Slug, tt.body, map[string]string{middleware.HeaderAdminSecret: testSecret})
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.fragment)
		})
	}
}

func TestReplaceOvernightSpanWarnsButSucceeds(t *testing.T) {
	env := newHoursTestEnv(t, testSecret)

	body := strings.Replace(weekJSON(),
		`{"day_of_week":5,"is_open":true,"open_time":"09:00","close_time":"17:30"}`,
		`{"day_of_week":5,"is_open":true,"open_time":"23:00","close_time":"01:00"}`, 1)

	rec := env.post(env.garage.Slug, body, map[string]string{middleware.HeaderAdminSecret: testSecret})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp ReplaceHoursResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Hours, 7)
	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "Day 5")
}
