package events

import (
	"encoding/json"
	"reflect"
	"time"
)

// Base de todos los eventos de integración
type IntegrationEvent struct {
	Type      string          `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"` // contenido específico del evento

	// Key es el id del agregado origen; viaja como clave de partición
	// del mensaje, no dentro del sobre serializado.
	Key string `json:"-"`
}

// PartitionKey permite que el sobre se particione por agregado al publicarse.
func (e IntegrationEvent) PartitionKey() string {
	return e.Key
}

// EventMetadata asocia cada tipo de evento con el struct de su payload
// y el topic donde debe publicarse.
type EventMetadata struct {
	Type  reflect.Type
	Topic string
}
