// Package report turns a session's insight table into two free-form AI
// reports: one for the respondent and one for the operator. The feature
// is optional — without a configured provider the rest of the
// application works unchanged.
package report

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/neolab/neodiag/internal/llm"
	"github.com/neolab/neodiag/internal/session"
)

// Purpose labels report requests in the LLM audit log.
const Purpose = "session-reports"

const defaultMaxTokens = 2000

// Reports holds both generated texts. Either both fields are present or
// generation failed as a whole — a partial result is never returned.
type Reports struct {
	Client string
	Master string
}

// Service generates reports through an llm.Provider.
type Service struct {
	provider llm.Provider
}

// NewService creates a report service. Provider must be non-nil; callers
// keep the feature disabled when no provider is configured.
func NewService(provider llm.Provider) *Service {
	return &Service{provider: provider}
}

// ModelID returns the model the service will use.
func (s *Service) ModelID() string {
	return s.provider.ModelID()
}

// reportPayload mirrors the structured output schema.
type reportPayload struct {
	ClientReport string `json:"client_report"`
	MasterReport string `json:"master_report"`
}

// Generate asks the provider for both reports in one structured call.
// Any failure — transport, truncation, schema mismatch — returns an
// error and no partial text.
func (s *Service) Generate(ctx context.Context, table session.InsightTable) (Reports, error) {
	tableJSON, err := json.Marshal(table)
	if err != nil {
		return Reports{}, fmt.Errorf("marshal insight table: %w", err)
	}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: string(tableJSON)},
		},
		Schema:    reportsSchema(),
		MaxTokens: defaultMaxTokens,
	}

	resp, err := s.provider.Generate(llm.WithPurpose(ctx, Purpose), req)
	if err != nil {
		return Reports{}, fmt.Errorf("generate reports: %w", err)
	}

	var payload reportPayload
	if err := json.Unmarshal(resp.Content, &payload); err != nil {
		return Reports{}, fmt.Errorf("decode reports: %w", err)
	}

	return Reports{
		Client: payload.ClientReport,
		Master: payload.MasterReport,
	}, nil
}

// reportsSchema constrains the provider output to both report fields.
func reportsSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "session-reports",
		Description: "Client-facing and master-facing diagnostic reports",
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
