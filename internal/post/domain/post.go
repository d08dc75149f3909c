package domain

import (
	"strconv"
	"time"

	sharedBus "github.com/davicafu/blogolab/internal/shared/infra/platform/bus"
)

// PostStatus es el ciclo de vida editorial de un artículo.
type PostStatus int

const (
	StatusDraft     PostStatus = 0
	StatusPublished PostStatus = 1
	// StatusWithdrawn es el estado terminal del borrado lógico:
	// el registro sigue existiendo y sigue siendo consultable por id.
	StatusWithdrawn PostStatus = 2
)

// Post representa un artículo del blog.
type Post struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	Summary    string     `json:"summary"`
	Content    string     `json:"content"`
	CategoryID int64      `json:"category_id"`
	AuthorID   int64      `json:"author_id"`
	Status     PostStatus `json:"status"`
	Top        bool       `json:"top"` // artículo fijado arriba
	ViewCount  int64      `json:"view_count"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (p *Post) PartitionKey() string {
	return strconv.FormatInt(p.ID, 10)
}

// --- Métodos de dominio ---

// Withdraw aplica el borrado lógico: estado terminal + marca de modificación.
func (p *Post) Withdraw() {
	p.Status = StatusWithdrawn
	p.UpdatedAt = time.Now().UTC()
}

// Visit incrementa el contador de visitas en exactamente uno.
func (p *Post) Visit() {
	p.ViewCount++
}

// Verificación estática para asegurar que Post implementa la interfaz
var _ sharedBus.Keyer = (*Post)(nil)
