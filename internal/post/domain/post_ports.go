package domain

import (
	"context"
	"errors"

	sharedDomain "github.com/davicafu/blogolab/internal/shared/domain"
	"github.com/davicafu/blogolab/internal/shared/infra/platform/query"
	"github.com/google/uuid"
)

// ---------- Errores de dominio ----------
var (
	ErrPostNotFound = errors.New("post not found")
	ErrInvalidPost  = errors.New("invalid post")
)

// ---------- Interfaces (Ports) ----------

// PostRepository define las operaciones sobre la colección de posts.
// La colección es dueña de los ids: los asigna de forma monótona al crear.
type PostRepository interface {
	// Create asigna el id y guarda el post junto con su evento outbox.
	Create(ctx context.Context, p *Post, evt sharedDomain.OutboxEvent) error

	// GetByID devuelve el post e incrementa su contador de visitas en uno,
	// de forma síncrona, antes de devolverlo.
	// Debe devolver ErrPostNotFound si no existe.
	GetByID(ctx context.Context, id int64) (*Post, error)

	// Find devuelve el post SIN tocar el contador de visitas. Es la lectura
	// interna previa a una modificación; sólo GetByID cuenta como visita.
	Find(ctx context.Context, id int64) (*Post, error)

	// Debe devolver ErrPostNotFound si el post no existe.
	Update(ctx context.Context, p *Post, evt sharedDomain.OutboxEvent) error

	// Withdraw es un borrado lógico: el post pasa a StatusWithdrawn y sigue
	// presente para búsquedas y listados. ErrPostNotFound si no existe.
	Withdraw(ctx context.Context, id int64, evt sharedDomain.OutboxEvent) (*Post, error)

	// List filtra, ordena y pagina sobre un snapshot consistente de la
	// colección. Criteria nil devuelve todos los posts.
	List(ctx context.Context, criteria sharedDomain.Criteria, spec query.Spec) (query.Result[*Post], error)

	// FetchPendingOutbox obtiene los eventos no procesados, hasta un máximo
	FetchPendingOutbox(ctx context.Context, limit int) ([]sharedDomain.OutboxEvent, error)

	// MarkOutboxProcessed marca un evento como procesado
	MarkOutboxProcessed(ctx context.Context, id uuid.UUID) error
}
