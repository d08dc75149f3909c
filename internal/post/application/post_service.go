package application

import (
	"context"
	"time"

	"github.com/davicafu/blogolab/internal/post/domain"
	sharedDomain "github.com/davicafu/blogolab/internal/shared/domain"
	"github.com/davicafu/blogolab/internal/shared/infra/platform/query"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PostService define los casos de uso relacionados con Post.
type PostService struct {
	repo domain.PostRepository
	log  *zap.Logger
}

// NewPostService constructor
func NewPostService(repo domain.PostRepository, log *zap.Logger) *PostService {
	return &PostService{repo: repo, log: log}
}

func newOutboxEvent(eventType string, p *domain.Post) sharedDomain.OutboxEvent {
	return sharedDomain.OutboxEvent{
		ID:            uuid.New(),
		AggregateType: "post",
		AggregateID:   p.PartitionKey(),
		EventType:     eventType,
		Payload:       p,
		CreatedAt:     time.Now().UTC(),
		Processed:     false,
	}
}

func (s *PostService) CreatePost(ctx context.Context, title, summary, content string, categoryID, authorID int64, top bool) (*domain.Post, error) {
	now := time.Now().UTC()
	post := &domain.Post{
		Title:      title,
		Summary:    summary,
		Content:    content,
		CategoryID: categoryID,
		AuthorID:   authorID,
		Status:     domain.StatusPublished,
		Top:        top,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	// El id lo asigna la colección; el AggregateID se completa en el repo.
	if err := s.repo.Create(ctx, post, newOutboxEvent(domain.PostCreated, post)); err != nil {
		return nil, err
	}

	s.log.Debug("post creado", zap.Int64("id", post.ID))
	return post, nil
}

// GetPost obtiene un post por id; cada consulta cuenta como una visita.
func (s *PostService) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	return s.repo.GetByID(ctx, id)
}

// FindPost es la lectura interna: no incrementa el contador de visitas.
func (s *PostService) FindPost(ctx context.Context, id int64) (*domain.Post, error) {
	return s.repo.Find(ctx, id)
}

func (s *PostService) UpdatePost(ctx context.Context, p *domain.Post) error {
	p.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, p, newOutboxEvent(domain.PostUpdated, p))
}

// WithdrawPost retira un post (borrado lógico): sigue existiendo pero queda
// marcado con el estado terminal.
func (s *PostService) WithdrawPost(ctx context.Context, id int64) (*domain.Post, error) {
	// AggregateID y Payload los completa el repo con el post ya retirado.
	evt := sharedDomain.OutboxEvent{
		ID:            uuid.New(),
		AggregateType: "post",
		EventType:     domain.PostWithdrawn,
		CreatedAt:     time.Now().UTC(),
	}

	post, err := s.repo.Withdraw(ctx, id, evt)
	if err != nil {
		return nil, err
	}
	return post, nil
}

// ListPosts devuelve una página de posts aplicando filtros y orden.
func (s *PostService) ListPosts(ctx context.Context, criteria sharedDomain.Criteria, spec query.Spec) (query.Result[*domain.Post], error) {
	return s.repo.List(ctx, criteria, spec)
}

// SearchPostsByTitle busca por subcadena del título entre los publicados.
func (s *PostService) SearchPostsByTitle(ctx context.Context, title string) (query.Result[*domain.Post], error) {
	criteria := sharedDomain.And(
		domain.StatusCriteria{Status: domain.StatusPublished},
		domain.TitleLikeCriteria{Title: title},
	)

	return s.repo.List(ctx, criteria, query.Spec{
		Page:     query.DefaultPage,
		PageSize: 20,
		Sort:     query.Sort{Field: "created_at", Desc: true},
	})
}

// ListPinnedPosts devuelve los artículos fijados, más vistos primero.
func (s *PostService) ListPinnedPosts(ctx context.Context, spec query.Spec) (query.Result[*domain.Post], error) {
	criteria := sharedDomain.And(
		domain.StatusCriteria{Status: domain.StatusPublished},
		domain.TopCriteria{Top: true},
	)
	spec.Sort = query.Sort{Field: "view_count", Desc: true}

	return s.repo.List(ctx, criteria, spec)
}
