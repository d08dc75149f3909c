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
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidUser       = errors.New("invalid user")
)

// ---------- Interfaces (Ports) ----------

// UserRepository define las operaciones sobre la colección de usuarios.
// Los ids los asigna la colección de forma monótona al crear.
type UserRepository interface {
	// Debe devolver ErrUserAlreadyExists si el username o el email ya existen.
	Create(ctx context.Context, u *User, evt sharedDomain.OutboxEvent) error

	// Debe devolver ErrUserNotFound si no existe.
	GetByID(ctx context.Context, id int64) (*User, error)

	// Debe devolver ErrUserNotFound si el usuario no existe.
	Update(ctx context.Context, u *User, evt sharedDomain.OutboxEvent) error

	// Borrado físico. Debe devolver ErrUserNotFound si el usuario no existe.
	DeleteByID(ctx context.Context, id int64, evt sharedDomain.OutboxEvent) error

	// List filtra, ordena y pagina sobre un snapshot consistente.
	List(ctx context.Context, criteria sharedDomain.Criteria, spec query.Spec) (query.Result[*User], error)

	// FetchPendingOutbox obtiene los eventos no procesados, hasta un máximo
	FetchPendingOutbox(ctx context.Context, limit int) ([]sharedDomain.OutboxEvent, error)

	// MarkOutboxProcessed marca un evento como procesado
	MarkOutboxProcessed(ctx context.Context, id uuid.UUID) error
}
