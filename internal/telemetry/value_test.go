package telemetry_test

import (
	"encoding/json"
	"testing"

	"github.com/sensorhub/sensorhub/internal/telemetry"
)

func TestValueBareNumber(t *testing.T) {
	var v telemetry.Value
	if err := json.Unmarshal([]byte(`25.5`), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p := v.Ptr(); p == nil || *p != 25.5 {
		t.Errorf("expected 25.5, got %v", p)
	}
}

func TestValueEnvelope(t *testing.T) {
	var v telemetry.Value
	if err := json.Unmarshal([]byte(`{"value": 25.5}`), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p := v.Ptr(); p == nil || *p != 25.5 {
		t.Errorf("expected 25.5, got %v", p)
	}
}

func TestValueEnvelopeAndBareAreEquivalent(t *testing.T) {
	var bare, wrapped telemetry.Value
	if err := json.Unmarshal([]byte(`60`), &bare); err != nil {
		t.Fatalf("bare: %v", err)
	}
	if err := json.Unmarshal([]byte(`{"value": 60}`), &wrapped); err != nil {
		t.Fatalf("wrapped: %v", err)
	}
	if *bare.Ptr() != *wrapped.Ptr() {
		t.Errorf("bare %v != wrapped %v", *bare.Ptr(), *wrapped.Ptr())
	}
}

func TestValueNullAndAbsent(t *testing.T) {
	var v telemetry.Value
	if err := json.Unmarshal([]byte(`null`), &v); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if v.IsSet() {
		t.Error("null should leave the value unset")
	}
	if v.Ptr() != nil {
		t.Error("Ptr of unset value should be nil")
	}

	// Absent field: the zero Value is unset.
	var req struct {
		Temperature telemetry.Value `json:"temperature"`
	}
	if err := json.Unmarshal([]byte(`{}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if req.Temperature.IsSet() {
		t.Error("absent field should leave the value unset")
	}
}

func TestValueBadInputs(t *testing.T) {
	for _, bad := range []string{`"25.5"`, `{"value": "x"}`, `{"other": 1}`, `[1]`, `true`} {
		var v telemetry.Value
		if err := json.Unmarshal([]byte(bad), &v); err == nil {
			t.Errorf("expected error for %s", bad)
		}
	}
}
