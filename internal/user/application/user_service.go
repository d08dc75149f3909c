package application

import (
	"context"
	"strconv"
	"time"

	sharedDomain "github.com/davicafu/blogolab/internal/shared/domain"
	"github.com/davicafu/blogolab/internal/shared/infra/platform/query"
	"github.com/davicafu/blogolab/internal/user/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserService define los casos de uso relacionados con User.
type UserService struct {
	repo domain.UserRepository
	log  *zap.Logger
}

// NewUserService constructor
func NewUserService(repo domain.UserRepository, log *zap.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

func newOutboxEvent(eventType string, u *domain.User) sharedDomain.OutboxEvent {
	return sharedDomain.OutboxEvent{
		ID:            uuid.New(),
		AggregateType: "user",
		AggregateID:   u.PartitionKey(),
		EventType:     eventType,
		Payload:       u,
		CreatedAt:     time.Now().UTC(),
		Processed:     false,
	}
}

func (s *UserService) CreateUser(ctx context.Context, username, email, nickname string) (*domain.User, error) {
	now := time.Now().UTC()
	user := &domain.User{
		Username:  username,
		Email:     email,
		Nickname:  nickname,
		Status:    domain.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, user, newOutboxEvent(domain.UserCreated, user)); err != nil {
		return nil, err
	}

	s.log.Debug("usuario creado", zap.Int64("id", user.ID))
	return user, nil
}

// GetUser obtiene un usuario por id.
func (s *UserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) UpdateUser(ctx context.Context, u *domain.User) error {
	u.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, u, newOutboxEvent(domain.UserUpdated, u))
}

func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	evt := sharedDomain.OutboxEvent{
		ID:            uuid.New(),
		AggregateType: "user",
		AggregateID:   strconv.FormatInt(id, 10),
		EventType:     domain.UserDeleted,
		Payload:       &domain.User{ID: id},
		CreatedAt:     time.Now().UTC(),
	}

	return s.repo.DeleteByID(ctx, id, evt)
}

// ListUsers devuelve una página de usuarios aplicando filtros y orden.
func (s *UserService) ListUsers(ctx context.Context, criteria sharedDomain.Criteria, spec query.Spec) (query.Result[*domain.User], error) {
	return s.repo.List(ctx, criteria, spec)
}

// SearchUsersByNickname busca por subcadena del apodo entre cuentas activas.
func (s *UserService) SearchUsersByNickname(ctx context.Context, nickname string) (query.Result[*domain.User], error) {
	criteria := sharedDomain.And(
		domain.StatusCriteria{Status: domain.StatusActive},
		domain.NicknameLikeCriteria{Nickname: nickname},
	)

	return s.repo.List(ctx, criteria, query.Spec{
		Page:     query.DefaultPage,
		PageSize: 20,
		Sort:     query.Sort{Field: "created_at", Desc: true},
	})
}
