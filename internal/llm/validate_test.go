package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func reportSchema() *Schema {
	return &Schema{
		Name:        "test-reports",
		Description: "Two report texts",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"client_report": map[string]any{"type": "string"},
				"master_report": map[string]any{"type": "string"},
			},
			"required":             []any{"client_report", "master_report"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"client_report":"текст","master_report":"текст"}`)
	if err := validateResponse(reportSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"client_report":"только один"}`)
	err := validateResponse(reportSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"client_report":42,"master_report":"текст"}`)
	err := validateResponse(reportSchema(), raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_ExtraField(t *testing.T) {
	raw := json.RawMessage(`{"client_report":"a","master_report":"b","extra":"c"}`)
	if err := validateResponse(reportSchema(), raw); err == nil {
		t.Fatal("expected error for additional property")
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(reportSchema(), raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}
