package store

import (
	"context"
	"fmt"
	"time"
)

// LLMRequestEventData captures one remote model call for the audit log.
type LLMRequestEventData struct {
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string

	// RequestBody and ResponseBody are kept in memory for debugging but
	// deliberately not persisted: course material can be large and
	// personal.
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a persisted llm_events row.
type LLMEvent struct {
	ID           int64
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	CreatedAt    time.Time
}

// EventRepo provides append access to the LLM event log.
type EventRepo interface {
	// AppendLLMRequest records one remote model call.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
}

// EventRepo returns an EventRepo backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{store: s}
}

type eventRepo struct {
	store *Store
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.store.db.ExecContext(ctx,
		`INSERT INTO llm_events
		   (model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		data.Model, data.Purpose, data.InputTokens, data.OutputTokens,
		data.LatencyMs, data.Success, data.ErrorMessage, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

// RecentLLMEvents returns the latest events, newest first.
func (s *Store) RecentLLMEvents(ctx context.Context, limit int) ([]LLMEvent, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, created_at
		 FROM llm_events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list LLM events: %w", err)
	}
	defer rows.Close()

	var out []LLMEvent
	for rows.Next() {
		var ev LLMEvent
		if err := rows.Scan(&ev.ID, &ev.Model, &ev.Purpose, &ev.InputTokens,
			&ev.OutputTokens, &ev.LatencyMs, &ev.Success, &ev.ErrorMessage, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan LLM event: %w", err)
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}

// NopEventRepo discards events. Used when running without a database.
type NopEventRepo struct{}

func (NopEventRepo) AppendLLMRequest(context.Context, LLMRequestEventData) error { return nil }
