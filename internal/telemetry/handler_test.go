package telemetry_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sensorhub/sensorhub/internal/models"
	"github.com/sensorhub/sensorhub/internal/telemetry"
)

func newRouter(store *telemetry.Store) *chi.Mux {
	handler := telemetry.NewHandler(store)
	r := chi.NewRouter()
	r.Post("/data", handler.Ingest)
	r.Get("/data", handler.List)
	return r
}

func postJSON(t *testing.T, r http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Validation failures must be rejected before any storage access, so a
// nil database is safe here.
func TestIngestValidation(t *testing.T) {
	r := newRouter(telemetry.NewStore(nil))

	tests := []struct {
		name string
		body string
	}{
		{"missing server_ulid", `{"timestamp":"2025-06-01T12:00:00Z","temperature":20}`},
		{"missing timestamp", `{"server_ulid":"srv-a","temperature":20}`},
		{"all sensor values absent", `{"server_ulid":"srv-a","timestamp":"2025-06-01T12:00:00Z"}`},
		{"all sensor values null", `{"server_ulid":"srv-a","timestamp":"2025-06-01T12:00:00Z","temperature":null,"humidity":null,"voltage":null,"current":null}`},
		{"malformed value envelope", `{"server_ulid":"srv-a","timestamp":"2025-06-01T12:00:00Z","temperature":{"nope":1}}`},
		{"not JSON", `{{{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, r, "/data", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

// Granularity is validated before touching the store: a nil database
// must not be reached for aggregation=week.
func TestListInvalidAggregationFailsBeforeStorage(t *testing.T) {
	r := newRouter(telemetry.NewStore(nil))

	req := httptest.NewRequest(http.MethodGet, "/data?aggregation=week", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestListInvalidTimeFilters(t *testing.T) {
	r := newRouter(telemetry.NewStore(nil))

	for _, query := range []string{"?start_time=not-a-time", "?end_time=nope"} {
		req := httptest.NewRequest(http.MethodGet, "/data"+query, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", query, w.Code)
		}
	}
}

func TestIngestAndConflict(t *testing.T) {
	store := telemetry.NewStore(testDB(t))
	r := newRouter(store)

	body := `{"server_ulid":"srv-conflict","timestamp":"2025-06-01T12:00:00Z","temperature":25.5,"humidity":60.0}`
	w := postJSON(t, r, "/data", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("first ingest: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var stored models.SensorReading
	if err := json.NewDecoder(w.Body).Decode(&stored); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stored.ID == 0 {
		t.Error("expected assigned id in response")
	}
	if stored.ServerULID != "srv-conflict" {
		t.Errorf("expected server_ulid srv-conflict, got %q", stored.ServerULID)
	}
	if stored.Temperature == nil || *stored.Temperature != 25.5 {
		t.Errorf("expected temperature 25.5, got %v", stored.Temperature)
	}

	// A second reading for the same server_ulid is rejected.
	second := `{"server_ulid":"srv-conflict","timestamp":"2025-06-01T12:01:00Z","temperature":26.0}`
	w = postJSON(t, r, "/data", second)
	if w.Code != http.StatusConflict {
		t.Fatalf("second ingest: expected 409, got %d: %s", w.Code, w.Body.String())
	}
}

func TestIngestEnvelopedValuesEquivalent(t *testing.T) {
	store := telemetry.NewStore(testDB(t))
	r := newRouter(store)

	w := postJSON(t, r, "/data",
		`{"server_ulid":"srv-env","timestamp":"2025-06-01T12:00:00Z","temperature":{"value":25.5}}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var stored models.SensorReading
	if err := json.NewDecoder(w.Body).Decode(&stored); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stored.Temperature == nil || *stored.Temperature != 25.5 {
		t.Errorf("enveloped value not unwrapped: %v", stored.Temperature)
	}
}

func TestListRawAndAggregated(t *testing.T) {
	store := telemetry.NewStore(testDB(t))
	r := newRouter(store)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Many readings per server: seeded directly, since the ingest
	// endpoint allows only one reading per server.
	seedReading(t, store, models.SensorReading{ServerULID: "srv-l", Timestamp: base.Add(5 * time.Second), Temperature: f(10)})
	seedReading(t, store, models.SensorReading{ServerULID: "srv-l", Timestamp: base.Add(30 * time.Second), Temperature: f(20)})
	seedReading(t, store, models.SensorReading{ServerULID: "srv-l", Timestamp: base.Add(70 * time.Second), Temperature: f(30), Humidity: f(40)})

	// Raw path.
	req := httptest.NewRequest(http.MethodGet, "/data?server_ulid=srv-l", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("raw list: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var raw []telemetry.ReadingResponse
	if err := json.NewDecoder(w.Body).Decode(&raw); err != nil {
		t.Fatalf("decode raw: %v", err)
	}
	if len(raw) != 3 {
		t.Fatalf("expected 3 raw readings, got %d", len(raw))
	}

	// Aggregated path.
	req = httptest.NewRequest(http.MethodGet, "/data?server_ulid=srv-l&aggregation=minute", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("aggregated list: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var buckets []models.AggregatedBucket
	if err := json.NewDecoder(w.Body).Decode(&buckets); err != nil {
		t.Fatalf("decode buckets: %v", err)
	}
	if len(buckets) != 2 {
		t.Fatalf("expected 2 minute buckets, got %d", len(buckets))
	}

	byStart := make(map[time.Time]models.AggregatedBucket)
	for _, b := range buckets {
		byStart[b.Timestamp.UTC()] = b
	}
	first := byStart[base]
	if first.Temperature == nil || *first.Temperature != 15 {
		t.Errorf("first bucket temperature = %v, want 15", first.Temperature)
	}
	if first.Humidity != nil {
		t.Errorf("first bucket humidity should be null, got %v", *first.Humidity)
	}
	second := byStart[base.Add(time.Minute)]
	if second.Humidity == nil || *second.Humidity != 40 {
		t.Errorf("second bucket humidity = %v, want 40", second.Humidity)
	}
}

func TestListAggregatedEmptySetYieldsZeroBuckets(t *testing.T) {
	store := telemetry.NewStore(testDB(t))
	r := newRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/data?server_ulid=srv-none&aggregation=hour", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var buckets []models.AggregatedBucket
	if err := json.NewDecoder(w.Body).Decode(&buckets); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(buckets) != 0 {
		t.Fatalf("expected zero buckets, got %d", len(buckets))
	}
}
