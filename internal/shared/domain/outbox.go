package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OutboxEvent representa un evento pendiente de publicar en el bus.
type OutboxEvent struct {
	ID            uuid.UUID   `json:"id"`
	AggregateType string      `json:"aggregate_type"` // ej. "post", "user"
	AggregateID   string      `json:"aggregate_id"`
	EventType     string      `json:"event_type"` // ej. "post.withdrawn"
	Payload       interface{} `json:"payload"`    // JSON serializable
	CreatedAt     time.Time   `json:"created_at"`
	Processed     bool        `json:"processed"` // si ya se publicó
}

// OutboxRepository define las operaciones mínimas que necesita el relayer.
type OutboxRepository interface {
	// FetchPendingOutbox obtiene los eventos no procesados, hasta un máximo
	FetchPendingOutbox(ctx context.Context, limit int) ([]OutboxEvent, error)

	// MarkOutboxProcessed marca un evento como procesado
	MarkOutboxProcessed(ctx context.Context, id uuid.UUID) error
}
