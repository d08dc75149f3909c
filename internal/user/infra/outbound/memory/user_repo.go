package memory

import (
	"context"
	"fmt"
	"sync"

	sharedDomain "github.com/davicafu/blogolab/internal/shared/domain"
	"github.com/davicafu/blogolab/internal/shared/infra/platform/query"
	"github.com/davicafu/blogolab/internal/user/domain"
	"github.com/google/uuid"
)

// UserRepoMemory es la colección de usuarios en memoria, con outbox incluido.
type UserRepoMemory struct {
	mu     sync.RWMutex
	users  map[int64]*domain.User
	order  []int64 // orden de inserción
	nextID int64
	outbox []sharedDomain.OutboxEvent
	engine *query.Engine[*domain.User]
}

func NewUserRepoMemory() *UserRepoMemory {
	return &UserRepoMemory{
		users:  make(map[int64]*domain.User),
		nextID: 1,
		engine: query.NewEngine[*domain.User](domain.SortFields, domain.DefaultSort, domain.MatchCriterion, domain.Less),
	}
}

// Verificación estática
var _ domain.UserRepository = (*UserRepoMemory)(nil)

// ------------------ Métodos ------------------

// Create asigna el siguiente id monótono; username y email son únicos.
func (r *UserRepoMemory) Create(ctx context.Context, u *domain.User, evt sharedDomain.OutboxEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return domain.ErrUserAlreadyExists
		}
	}

	u.ID = r.nextID
	r.nextID++

	r.users[u.ID] = u
	r.order = append(r.order, u.ID)
	evt.AggregateID = u.PartitionKey()
	r.outbox = append(r.outbox, evt)
	return nil
}

func (r *UserRepoMemory) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	copia := *u
	return &copia, nil
}

func (r *UserRepoMemory) Update(ctx context.Context, u *domain.User, evt sharedDomain.OutboxEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}

	copia := *u
	r.users[u.ID] = &copia
	r.outbox = append(r.outbox, evt)
	return nil
}

// DeleteByID elimina el usuario de la colección (borrado físico).
func (r *UserRepoMemory) DeleteByID(ctx context.Context, id int64, evt sharedDomain.OutboxEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.outbox = append(r.outbox, evt)
	return nil
}

// List ejecuta el engine sobre un snapshot en orden de inserción.
func (r *UserRepoMemory) List(ctx context.Context, criteria sharedDomain.Criteria, spec query.Spec) (query.Result[*domain.User], error) {
	r.mu.RLock()
	snapshot := make([]*domain.User, 0, len(r.order))
	for _, id := range r.order {
		copia := *r.users[id]
		snapshot = append(snapshot, &copia)
	}
	r.mu.RUnlock()

	return r.engine.Execute(snapshot, criteria, spec)
}

// ---------------- Patrón Outbox en Eventos-----------------

func (r *UserRepoMemory) FetchPendingOutbox(ctx context.Context, limit int) ([]sharedDomain.OutboxEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var events []sharedDomain.OutboxEvent
	for _, evt := range r.outbox {
		if evt.Processed {
			continue
		}
		events = append(events, evt)
		if len(events) == limit {
			break
		}
	}
	return events, nil
}

func (r *UserRepoMemory) MarkOutboxProcessed(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.outbox {
		if r.outbox[i].ID == id {
			r.outbox[i].Processed = true
			return nil
		}
	}
	return fmt.Errorf("no outbox event found with id %s", id)
}
