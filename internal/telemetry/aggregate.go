package telemetry

import (
	"fmt"
	"time"

	"github.com/sensorhub/sensorhub/internal/models"
)

// Granularity is a time-bucket width for aggregation.
type Granularity string

// Supported aggregation granularities.
const (
	GranularityMinute Granularity = "minute"
	GranularityHour   Granularity = "hour"
	GranularityDay    Granularity = "day"
)

// ParseGranularity validates an aggregation parameter. Anything other
// than minute/hour/day is a validation error, raised before any
// storage access.
func ParseGranularity(s string) (Granularity, error) {
	switch g := Granularity(s); g {
	case GranularityMinute, GranularityHour, GranularityDay:
		return g, nil
	default:
		return "", models.Validationf(fmt.Sprintf("aggregation must be one of minute, hour, day; got %q", s))
	}
}

// Truncate clips t down to the start of its bucket, in UTC. Truncation
// is idempotent: truncating an already-truncated time is a no-op.
func Truncate(t time.Time, g Granularity) time.Time {
	t = t.UTC()
	switch g {
	case GranularityMinute:
		return t.Truncate(time.Minute)
	case GranularityHour:
		return t.Truncate(time.Hour)
	case GranularityDay:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	default:
		return t
	}
}

// fieldAcc accumulates one nullable field's mean.
type fieldAcc struct {
	sum   float64
	count int
}

func (a *fieldAcc) add(v *float64) {
	if v == nil {
		return
	}
	a.sum += *v
	a.count++
}

// avg returns nil when no rows contributed; never zero-fills.
func (a *fieldAcc) avg() *float64 {
	if a.count == 0 {
		return nil
	}
	mean := a.sum / float64(a.count)
	return &mean
}

type bucketAcc struct {
	temperature fieldAcc
	humidity    fieldAcc
	voltage     fieldAcc
	current     fieldAcc
}

// Aggregate groups readings by their truncated timestamp and computes
// the per-bucket arithmetic mean of each sensor field independently,
// ignoring rows where that field is null. An empty input produces zero
// buckets. Bucket order follows first appearance in the input; callers
// wanting a deterministic presentation sort by timestamp themselves.
func Aggregate(readings []models.SensorReading, g Granularity) []models.AggregatedBucket {
	accs := make(map[time.Time]*bucketAcc)
	var order []time.Time

	for _, r := range readings {
		key := Truncate(r.Timestamp, g)
		acc, ok := accs[key]
		if !ok {
			acc = &bucketAcc{}
			accs[key] = acc
			order = append(order, key)
		}
		acc.temperature.add(r.Temperature)
		acc.humidity.add(r.Humidity)
		acc.voltage.add(r.Voltage)
		acc.current.add(r.Current)
	}

	buckets := make([]models.AggregatedBucket, 0, len(order))
	for _, key := range order {
		acc := accs[key]
		buckets = append(buckets, models.AggregatedBucket{
			Timestamp:   key,
			Temperature: acc.temperature.avg(),
			Humidity:    acc.humidity.avg(),
			Voltage:     acc.voltage.avg(),
			Current:     acc.current.avg(),
		})
	}
	return buckets
}
