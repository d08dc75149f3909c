package events

import (
	"context"
	"encoding/json"

	sharedEvents "github.com/davicafu/blogolab/internal/shared/events"
	"go.uber.org/zap"
)

// LogConsumer es un oyente mínimo del bus en memoria: decodifica los
// eventos de integración y los deja en el log estructurado.
type LogConsumer struct {
	log *zap.Logger
}

func NewLogConsumer(log *zap.Logger) *LogConsumer {
	return &LogConsumer{log: log}
}

// Start consume el canal en segundo plano hasta que se cancele el contexto.
func (c *LogConsumer) Start(ctx context.Context, ch <-chan interface{}) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case raw, ok := <-ch:
				if !ok {
					return
				}
				c.handle(raw)
			}
		}
	}()
}

func (c *LogConsumer) handle(raw interface{}) {
	payload, ok := raw.([]byte)
	if !ok {
		c.log.Warn("mensaje con formato inesperado en el bus")
		return
	}

	var evt sharedEvents.IntegrationEvent
	if err := json.Unmarshal(payload, &evt); err != nil {
		c.log.Warn("no se pudo decodificar el evento", zap.Error(err))
		return
	}

	c.log.Info("📨 evento recibido",
		zap.String("type", evt.Type),
		zap.Time("timestamp", evt.Timestamp),
	)
}
