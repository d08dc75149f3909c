package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/davicafu/blogolab/internal/post/domain"
	sharedDomain "github.com/davicafu/blogolab/internal/shared/domain"
	"github.com/davicafu/blogolab/internal/shared/infra/platform/query"
	"github.com/google/uuid"
)

// PostRepoMemory es la colección de posts en memoria, con outbox incluido.
// Las mutaciones (create/update/withdraw/visitas) se serializan bajo el
// mutex; las lecturas trabajan sobre un snapshot consistente.
type PostRepoMemory struct {
	mu     sync.RWMutex
	posts  map[int64]*domain.Post
	order  []int64 // orden de inserción, para snapshots deterministas
	nextID int64
	outbox []sharedDomain.OutboxEvent
	engine *query.Engine[*domain.Post]
}

func NewPostRepoMemory() *PostRepoMemory {
	return &PostRepoMemory{
		posts:  make(map[int64]*domain.Post),
		nextID: 1,
		engine: query.NewEngine[*domain.Post](domain.SortFields, domain.DefaultSort, domain.MatchCriterion, domain.Less),
	}
}

// Verificación estática
var _ domain.PostRepository = (*PostRepoMemory)(nil)

// ------------------ Métodos ------------------

// Create asigna el siguiente id monótono y guarda post + evento outbox
// dentro de la misma sección crítica.
func (r *PostRepoMemory) Create(ctx context.Context, p *domain.Post, evt sharedDomain.OutboxEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.nextID
	r.nextID++

	r.posts[p.ID] = p
	r.order = append(r.order, p.ID)
	evt.AggregateID = p.PartitionKey()
	r.outbox = append(r.outbox, evt)
	return nil
}

// GetByID incrementa el contador de visitas antes de devolver el post.
func (r *PostRepoMemory) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	p.Visit()

	copia := *p
	return &copia, nil
}

func (r *PostRepoMemory) Find(ctx context.Context, id int64) (*domain.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}

	copia := *p
	return &copia, nil
}

func (r *PostRepoMemory) Update(ctx context.Context, p *domain.Post, evt sharedDomain.OutboxEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[p.ID]; !ok {
		return domain.ErrPostNotFound
	}

	copia := *p
	r.posts[p.ID] = &copia
	r.outbox = append(r.outbox, evt)
	return nil
}

// Withdraw aplica el borrado lógico; el post sigue presente en la colección.
func (r *PostRepoMemory) Withdraw(ctx context.Context, id int64, evt sharedDomain.OutboxEvent) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	p.Withdraw()

	copia := *p
	evt.AggregateID = p.PartitionKey()
	evt.Payload = &copia
	r.outbox = append(r.outbox, evt)
	return &copia, nil
}

// List ejecuta el engine sobre un snapshot en orden de inserción.
func (r *PostRepoMemory) List(ctx context.Context, criteria sharedDomain.Criteria, spec query.Spec) (query.Result[*domain.Post], error) {
	r.mu.RLock()
	snapshot := make([]*domain.Post, 0, len(r.order))
	for _, id := range r.order {
		copia := *r.posts[id]
		snapshot = append(snapshot, &copia)
	}
	r.mu.RUnlock()

	return r.engine.Execute(snapshot, criteria, spec)
}

// ---------------- Patrón Outbox en Eventos-----------------

func (r *PostRepoMemory) FetchPendingOutbox(ctx context.Context, limit int) ([]sharedDomain.OutboxEvent, error) {
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

func (r *PostRepoMemory) MarkOutboxProcessed(ctx context.Context, id uuid.UUID) error {
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
