package telemetry

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Value is a sensor measurement field on the ingest wire format. It
// accepts both a bare number and the enveloped form {"value": n} that
// some producers emit, unwrapping the envelope before validation.
// Absent fields and JSON null both leave the Value unset.
type Value struct {
	val float64
	set bool
}

// UnmarshalJSON implements the two-stage decode: raw wire shape,
// then coercion to a plain number.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = Value{}
		return nil
	}

	if len(data) > 0 && data[0] == '{' {
		var envelope struct {
			Value *float64 `json:"value"`
		}
		if err := json.Unmarshal(data, &envelope); err != nil {
			return fmt.Errorf("sensor value envelope: %w", err)
		}
		if envelope.Value == nil {
			return fmt.Errorf("sensor value envelope missing \"value\"")
		}
		*v = Value{val: *envelope.Value, set: true}
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("sensor value: %w", err)
	}
	*v = Value{val: f, set: true}
	return nil
}

// Ptr returns the value as a nullable float, nil when unset.
func (v Value) Ptr() *float64 {
	if !v.set {
		return nil
	}
	f := v.val
	return &f
}

// IsSet reports whether a value was provided.
func (v Value) IsSet() bool { return v.set }
