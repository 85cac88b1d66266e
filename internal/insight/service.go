package insight

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/prepwise/satprep/internal/llm"
)

// Config holds LLM analysis configuration.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.3,
	}
}

// Service produces weakness reports. With a provider it asks the LLM for a
// structured analysis; without one, or when the provider fails, it degrades
// to the offline heuristic report.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates an insight service. A nil provider means heuristic
// reports only.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Analyze turns ranked skill stats into a weakness report. Never fails
// outward as long as stats can be analyzed at all: provider errors fall
// back to the heuristic report.
func (s *Service) Analyze(ctx context.Context, stats []SkillStat) (*Report, error) {
	if s.provider == nil || len(stats) == 0 {
		return heuristicReport(stats), nil
	}

	report, err := s.analyzeLLM(ctx, stats)
	if err != nil {
		return heuristicReport(stats), nil
	}
	return report, nil
}

func (s *Service) analyzeLLM(ctx context.Context, stats []SkillStat) (*Report, error) {
	ctx = llm.WithPurpose(ctx, "weakness-analysis")

	userMsg, err := buildAnalysisMessage(stats)
	if err != nil {
		return nil, fmt.Errorf("build analysis prompt: %w", err)
	}

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: analysisSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      ReportSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM weakness analysis failed: %w", err)
	}

	var report Report
	if err := json.Unmarshal(resp.Content, &report); err != nil {
		return nil, fmt.Errorf("parse weakness report: %w", err)
	}

	// Drop any skill the model invented outside the provided list.
	known := make(map[string]bool, len(stats))
	for _, st := range stats {
		known[st.SkillID] = true
	}
	filtered := report.Skills[:0]
	for _, sd := range report.Skills {
		if known[sd.SkillID] {
			filtered = append(filtered, sd)
		}
	}
	report.Skills = filtered

	order := report.FocusOrder[:0]
	for _, id := range report.FocusOrder {
		if known[id] {
			order = append(order, id)
		}
	}
	report.FocusOrder = order

	report.Source = "llm"
	return &report, nil
}
