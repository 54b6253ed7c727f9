package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"habit_tracker/internal/config"
	"habit_tracker/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type habitJSON struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

type checkinJSON struct {
	ID    uint       `json:"id"`
	Habit *habitJSON `json:"habit"`
	Date  string     `json:"date"`
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := &config.Config{
		Server:    config.ServerConfig{Port: "0", Mode: "test"},
		Database:  config.DatabaseConfig{Driver: config.DriverSQLite, Path: "unused"},
		CORS:      config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
		RateLimit: config.RateLimitConfig{MaxRequests: 100000, WindowMinutes: 1},
	}
	a := NewAppWithDB(cfg, testutil.NewTestDB(t))
	t.Cleanup(a.stopBackground)
	return a
}

func do(t *testing.T, a *App, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func createHabit(t *testing.T, a *App, name string) habitJSON {
	t.Helper()
	w := do(t, a, http.MethodPost, "/api/habits", fmt.Sprintf(`{"name":%q}`, name))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var h habitJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &h))
	return h
}

func decodeCheckins(t *testing.T, w *httptest.ResponseRecorder) []checkinJSON {
	t.Helper()
	var out []checkinJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestRunScenario(t *testing.T) {
	a := newTestApp(t)

	run := createHabit(t, a, "Run")
	assert.Equal(t, uint(1), run.ID)
	assert.Equal(t, "Run", run.Name)
	assert.NotEmpty(t, run.CreatedAt)

	w := do(t, a, http.MethodPost, "/api/habits/1/checkins", `{"date":"2024-05-01"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created checkinJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "2024-05-01", created.Date)
	require.NotNil(t, created.Habit)
	assert.Equal(t, run.ID, created.Habit.ID)
	assert.Equal(t, "Run", created.Habit.Name)

	w = do(t, a, http.MethodPost, "/api/habits/1/checkins", `{"date":"2024-05-01"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Already checked in for this date", w.Body.String())

	w = do(t, a, http.MethodGet, "/api/habits/1/checkins?startDate=2024-05-01&endDate=2024-05-01", "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeCheckins(t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "2024-05-01", list[0].Date)
}

func TestListHabits(t *testing.T) {
	a := newTestApp(t)

	w := do(t, a, http.MethodGet, "/api/habits", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	ids := map[uint]bool{}
	for _, name := range []string{"Run", "Read", "Run"} {
		h := createHabit(t, a, name)
		assert.NotZero(t, h.ID)
		assert.False(t, ids[h.ID], "duplicate id %d", h.ID)
		ids[h.ID] = true
	}

	w = do(t, a, http.MethodGet, "/api/habits", "")
	require.Equal(t, http.StatusOK, w.Code)

	var habits []habitJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &habits))
	require.Len(t, habits, 3)
	for _, h := range habits {
		assert.True(t, ids[h.ID])
	}
}

func TestCreateHabitWithCreatedAt(t *testing.T) {
	a := newTestApp(t)

	w := do(t, a, http.MethodPost, "/api/habits", `{"name":"Walk","createdAt":"2024-01-02T03:04:05Z"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var h habitJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &h))
	assert.Equal(t, "2024-01-02T03:04:05Z", h.CreatedAt)
}

func TestCreateHabitWithLocalCreatedAt(t *testing.T) {
	a := newTestApp(t)

	w := do(t, a, http.MethodPost, "/api/habits", `{"name":"Walk","createdAt":"2024-05-01T10:00:00"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var h habitJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &h))
	assert.True(t, strings.HasPrefix(h.CreatedAt, "2024-05-01T10:00:00"), h.CreatedAt)
}

func TestCreateHabitMalformedBody(t *testing.T) {
	a := newTestApp(t)

	w := do(t, a, http.MethodPost, "/api/habits", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetHabit(t *testing.T) {
	a := newTestApp(t)
	run := createHabit(t, a, "Run")

	w := do(t, a, http.MethodGet, fmt.Sprintf("/api/habits/%d", run.ID), "")
	require.Equal(t, http.StatusOK, w.Code)

	var h habitJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &h))
	assert.Equal(t, run.ID, h.ID)
	assert.Equal(t, "Run", h.Name)
	assert.NotEmpty(t, h.CreatedAt)

	w = do(t, a, http.MethodGet, "/api/habits/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, a, http.MethodGet, "/api/habits/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteHabit(t *testing.T) {
	a := newTestApp(t)
	run := createHabit(t, a, "Run")
	read := createHabit(t, a, "Read")

	w := do(t, a, http.MethodDelete, "/api/habits/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())

	w = do(t, a, http.MethodPost, fmt.Sprintf("/api/habits/%d/checkins", run.ID), `{"date":"2024-05-01"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, a, http.MethodDelete, fmt.Sprintf("/api/habits/%d", run.ID), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Habit deleted successfully", w.Body.String())

	w = do(t, a, http.MethodGet, "/api/habits", "")
	var habits []habitJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &habits))
	require.Len(t, habits, 1)
	assert.Equal(t, read.ID, habits[0].ID)

	// check-ins went with the habit
	w = do(t, a, http.MethodGet, fmt.Sprintf("/api/habits/%d/checkins", run.ID), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeCheckins(t, w))

	w = do(t, a, http.MethodDelete, fmt.Sprintf("/api/habits/%d", run.ID), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteHabitInternalError(t *testing.T) {
	a := newTestApp(t)
	run := createHabit(t, a, "Run")

	// 删掉打卡表，让删除事务失败
	require.NoError(t, a.DB.Exec("DROP TABLE habit_checkins").Error)

	w := do(t, a, http.MethodDelete, fmt.Sprintf("/api/habits/%d", run.ID), "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Error deleting habit: ")
}

func TestCheckinUnknownHabit(t *testing.T) {
	a := newTestApp(t)

	for _, body := range []string{`{"date":"2024-05-01"}`, `{}`, `{"date":"bogus"}`, ""} {
		w := do(t, a, http.MethodPost, "/api/habits/42/checkins", body)
		assert.Equal(t, http.StatusNotFound, w.Code, "body %q", body)
	}
}

func TestCheckinDefaultsToToday(t *testing.T) {
	a := newTestApp(t)
	run := createHabit(t, a, "Run")
	path := fmt.Sprintf("/api/habits/%d/checkins", run.ID)

	w := do(t, a, http.MethodPost, path, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var c checkinJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &c))
	assert.Len(t, c.Date, len("2006-01-02"))

	w = do(t, a, http.MethodPost, path, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Already checked in for this date", w.Body.String())
}

func TestCheckinInvalidDate(t *testing.T) {
	a := newTestApp(t)
	run := createHabit(t, a, "Run")
	path := fmt.Sprintf("/api/habits/%d/checkins", run.ID)

	w := do(t, a, http.MethodPost, path, `{"date":"05/01/2024"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid date format, expected YYYY-MM-DD", w.Body.String())

	w = do(t, a, http.MethodGet, path+"?startDate=2024-01-01&endDate=later", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid date format, expected YYYY-MM-DD", w.Body.String())

	w = do(t, a, http.MethodPost, "/api/habits/abc/checkins", `{"date":"2024-05-01"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListCheckinsRange(t *testing.T) {
	a := newTestApp(t)
	run := createHabit(t, a, "Run")
	other := createHabit(t, a, "Other")
	path := fmt.Sprintf("/api/habits/%d/checkins", run.ID)

	for _, d := range []string{"2023-12-31", "2024-01-01", "2024-01-15", "2024-01-31", "2024-02-01"} {
		w := do(t, a, http.MethodPost, path, fmt.Sprintf(`{"date":%q}`, d))
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := do(t, a, http.MethodPost, fmt.Sprintf("/api/habits/%d/checkins", other.ID), `{"date":"2024-01-10"}`)
	require.Equal(t, http.StatusOK, w.Code)

	dates := func(list []checkinJSON) []string {
		out := make([]string, 0, len(list))
		for _, c := range list {
			out = append(out, c.Date)
		}
		return out
	}

	w = do(t, a, http.MethodGet, path+"?startDate=2024-01-01&endDate=2024-01-31", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"2024-01-01", "2024-01-15", "2024-01-31"}, dates(decodeCheckins(t, w)))

	all := []string{"2023-12-31", "2024-01-01", "2024-01-15", "2024-01-31", "2024-02-01"}

	w = do(t, a, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, all, dates(decodeCheckins(t, w)))

	w = do(t, a, http.MethodGet, path+"?startDate=2024-01-01", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, all, dates(decodeCheckins(t, w)))

	w = do(t, a, http.MethodGet, path+"?endDate=2024-01-01", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, all, dates(decodeCheckins(t, w)))

	// nonexistent habit is not an error on the read path
	w = do(t, a, http.MethodGet, "/api/habits/777/checkins", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHealthAndMetrics(t *testing.T) {
	a := newTestApp(t)

	w := do(t, a, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","components":{"database":"up"}}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	createHabit(t, a, "Run")

	w = do(t, a, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
	assert.Contains(t, w.Body.String(), "habits_created_total")
}

func TestCORSPreflight(t *testing.T) {
	a := newTestApp(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/habits", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}
