package events

import (
	"context"
	"log/slog"
)

// Event names published after composite operations commit.
const (
	ClaimApproved         = "expense_claim.approved"
	GoalFunded            = "goal.contributed"
	PurchaseOrderReceived = "purchase_order.received"
	JournalPosted         = "journal_entry.posted"
)

// Publisher is the outbound port for domain events. Publishing is
// best-effort and happens only after the database transaction commits;
// a failed publish is logged, never rolled back.
type Publisher interface {
	Publish(ctx context.Context, eventType string, payload any) error
}

// LogPublisher writes events to the structured log. It is the fallback when
// no broker is configured.
type LogPublisher struct {
	Logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{Logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, eventType string, payload any) error {
	p.Logger.InfoContext(ctx, "event published", slog.String("event_type", eventType), slog.Any("payload", payload))
	return nil
}
