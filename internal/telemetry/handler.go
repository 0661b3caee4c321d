package telemetry

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/sensorhub/sensorhub/internal/models"
)

// Handler exposes the telemetry HTTP endpoints.
type Handler struct {
	store *Store
}

// NewHandler creates a Handler backed by the given Store.
func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// ---------------------------------------------------------------------------
// Request / Response types
// ---------------------------------------------------------------------------

// IngestRequest is the body of POST /data. Each sensor field accepts a
// bare number or the enveloped form {"value": n}.
type IngestRequest struct {
	ServerULID  string     `json:"server_ulid" example:"01JN3E9V1R4T5Y6U7I8O9P0Q1W"`
	ServerName  *string    `json:"server_name,omitempty" example:"Dolly #1"`
	Timestamp   *time.Time `json:"timestamp"`
	Temperature Value      `json:"temperature"`
	Humidity    Value      `json:"humidity"`
	Voltage     Value      `json:"voltage"`
	Current     Value      `json:"current"`
}

// ReadingResponse is a single raw reading in the GET /data list.
type ReadingResponse struct {
	Timestamp   time.Time `json:"timestamp"`
	Temperature *float64  `json:"temperature"`
	Humidity    *float64  `json:"humidity"`
	Voltage     *float64  `json:"voltage"`
	Current     *float64  `json:"current"`
}

type errorResponse struct {
	Error string `json:"error" example:"at least one sensor value must be provided"`
}

// ---------------------------------------------------------------------------
// POST /data
// ---------------------------------------------------------------------------

// Ingest godoc
//
//	@Summary		Ingest a sensor reading
//	@Description	Stores one timestamped reading. At least one of temperature,
//	@Description	humidity, voltage, current must be present; each accepts a bare
//	@Description	number or {"value": n}. A server_ulid that already has a reading
//	@Description	is rejected with 409.
//	@Tags			data
//	@Accept			json
//	@Produce		json
//	@Param			body	body		IngestRequest	true	"reading"
//	@Success		201		{object}	models.SensorReading
//	@Failure		400		{object}	errorResponse
//	@Failure		409		{object}	errorResponse
//	@Security		BearerAuth
//	@Router			/data [post]
func (h *Handler) Ingest(w http.ResponseWriter, r *http.Request) {
	var req IngestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	reading, err := req.toReading()
	if err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}

	exists, err := h.store.HasReading(r.Context(), reading.ServerULID)
	if err != nil {
		slog.Error("check existing reading", "server_ulid", reading.ServerULID, "error", err)
		writeErr(w, http.StatusInternalServerError, "failed to store reading")
		return
	}
	if exists {
		writeErr(w, http.StatusConflict,
			fmt.Sprintf("data already exists for server_ulid %q", reading.ServerULID))
		return
	}

	stored, err := h.store.InsertReading(r.Context(), reading)
	if err != nil {
		slog.Error("insert reading", "server_ulid", reading.ServerULID, "error", err)
		writeErr(w, http.StatusInternalServerError, "failed to store reading")
		return
	}

	slog.Info("reading ingested",
		"id", stored.ID,
		"server_ulid", stored.ServerULID,
		"timestamp", stored.Timestamp,
	)
	writeJSON(w, http.StatusCreated, stored)
}

// toReading validates the request and coerces it into a domain reading.
func (req *IngestRequest) toReading() (models.SensorReading, error) {
	if req.ServerULID == "" {
		return models.SensorReading{}, models.Validationf("server_ulid is required")
	}
	if req.Timestamp == nil {
		return models.SensorReading{}, models.Validationf("timestamp is required")
	}
	if !req.Temperature.IsSet() && !req.Humidity.IsSet() &&
		!req.Voltage.IsSet() && !req.Current.IsSet() {
		return models.SensorReading{}, models.Validationf("at least one sensor value must be provided")
	}

	return models.SensorReading{
		ServerULID:  req.ServerULID,
		ServerName:  req.ServerName,
		Timestamp:   req.Timestamp.UTC(),
		Temperature: req.Temperature.Ptr(),
		Humidity:    req.Humidity.Ptr(),
		Voltage:     req.Voltage.Ptr(),
		Current:     req.Current.Ptr(),
	}, nil
}

// ---------------------------------------------------------------------------
// GET /data
// ---------------------------------------------------------------------------

// List godoc
//
//	@Summary		List or aggregate readings
//	@Description	Returns raw readings matching the filters, or per-bucket
//	@Description	averages when aggregation=minute|hour|day is given.
//	@Tags			data
//	@Produce		json
//	@Param			server_ulid	query		string	false	"filter by server"
//	@Param			start_time	query		string	false	"inclusive lower bound (RFC3339)"
//	@Param			end_time	query		string	false	"inclusive upper bound (RFC3339)"
//	@Param			sensor_type	query		string	false	"temperature, humidity, voltage or current"
//	@Param			aggregation	query		string	false	"minute, hour or day"
//	@Success		200			{array}		ReadingResponse
//	@Failure		400			{object}	errorResponse
//	@Security		BearerAuth
//	@Router			/data [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}

	aggregation := r.URL.Query().Get("aggregation")
	if aggregation != "" {
		h.listAggregated(w, r, filter, aggregation)
		return
	}

	readings, err := h.store.QueryReadings(r.Context(), filter)
	if err != nil {
		slog.Error("query readings", "error", err)
		writeErr(w, http.StatusInternalServerError, "failed to query readings")
		return
	}

	out := make([]ReadingResponse, len(readings))
	for i, reading := range readings {
		out[i] = ReadingResponse{
			Timestamp:   reading.Timestamp,
			Temperature: reading.Temperature,
			Humidity:    reading.Humidity,
			Voltage:     reading.Voltage,
			Current:     reading.Current,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// listAggregated serves the aggregation=... variant of GET /data. The
// granularity is validated before any storage access; buckets are
// sorted by start time here purely for presentation.
func (h *Handler) listAggregated(w http.ResponseWriter, r *http.Request, filter Filter, aggregation string) {
	granularity, err := ParseGranularity(aggregation)
	if err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}

	readings, err := h.store.QueryReadings(r.Context(), filter)
	if err != nil {
		slog.Error("query readings", "error", err)
		writeErr(w, http.StatusInternalServerError, "failed to query readings")
		return
	}

	buckets := Aggregate(readings, granularity)
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Timestamp.Before(buckets[j].Timestamp)
	})

	writeJSON(w, http.StatusOK, buckets)
}

// parseFilter reads the shared query parameters of GET /data.
func parseFilter(r *http.Request) (Filter, error) {
	q := r.URL.Query()
	filter := Filter{
		ServerULID: q.Get("server_ulid"),
		SensorType: q.Get("sensor_type"),
	}

	if s := q.Get("start_time"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return Filter{}, models.Validationf("invalid start_time: " + err.Error())
		}
		filter.Start = &t
	}
	if e := q.Get("end_time"); e != "" {
		t, err := time.Parse(time.RFC3339, e)
		if err != nil {
			return Filter{}, models.Validationf("invalid end_time: " + err.Error())
		}
		filter.End = &t
	}
	return filter, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
