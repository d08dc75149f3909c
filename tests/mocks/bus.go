package mocks

import (
	"context"

	sharedBus "github.com/davicafu/blogolab/internal/shared/infra/platform/bus"
	"github.com/stretchr/testify/mock"
)

// MockPublisher simula un publisher con expectativas de testify.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, event interface{}) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

var _ sharedBus.EventBus = (*MockPublisher)(nil)

// DummyPublisher acepta todo y guarda lo publicado, para asserts sencillos.
type DummyPublisher struct {
	Published []interface{}
}

func (d *DummyPublisher) Publish(ctx context.Context, event interface{}) error {
	d.Published = append(d.Published, event)
	return nil
}

var _ sharedBus.EventBus = (*DummyPublisher)(nil)
