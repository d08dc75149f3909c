package memory

import (
	"context"
	"testing"
	"time"

	"github.com/davicafu/blogolab/internal/post/domain"
	sharedDomain "github.com/davicafu/blogolab/internal/shared/domain"
	"github.com/davicafu/blogolab/internal/shared/infra/platform/query"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEvent(eventType string) sharedDomain.OutboxEvent {
	return sharedDomain.OutboxEvent{
		ID:            uuid.New(),
		AggregateType: "post",
		EventType:     eventType,
		CreatedAt:     time.Now(),
	}
}

func seedPost(t *testing.T, repo *PostRepoMemory, title string) *domain.Post {
	t.Helper()
	now := time.Now()
	p := &domain.Post{
		Title:     title,
		Content:   "contenido",
		Status:    domain.StatusPublished,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.Create(context.Background(), p, newEvent(domain.PostCreated)))
	return p
}

func TestPostRepoMemory_CreateAssignsMonotonicIDs(t *testing.T) {
	repo := NewPostRepoMemory()

	first := seedPost(t, repo, "uno")
	second := seedPost(t, repo, "dos")

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

func TestPostRepoMemory_GetByIDReturnsCopy(t *testing.T) {
	repo := NewPostRepoMemory()
	p := seedPost(t, repo, "original")

	got, err := repo.GetByID(context.Background(), p.ID)
	require.NoError(t, err)

	// Mutar la copia devuelta no debe afectar al estado interno.
	got.Title = "mutado"

	again, err := repo.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", again.Title)
}

func TestPostRepoMemory_GetByIDCountsVisits(t *testing.T) {
	repo := NewPostRepoMemory()
	p := seedPost(t, repo, "visitado")

	for i := 1; i <= 3; i++ {
		got, err := repo.GetByID(context.Background(), p.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(i), got.ViewCount)
	}

	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrPostNotFound)
}

func TestPostRepoMemory_FindDoesNotCountVisits(t *testing.T) {
	repo := NewPostRepoMemory()
	p := seedPost(t, repo, "interno")

	found, err := repo.Find(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), found.ViewCount)

	// Sólo GetByID incrementa el contador.
	got, err := repo.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ViewCount)

	_, err = repo.Find(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrPostNotFound)
}

func TestPostRepoMemory_WithdrawKeepsRecord(t *testing.T) {
	repo := NewPostRepoMemory()
	p := seedPost(t, repo, "efímero")

	withdrawn, err := repo.Withdraw(context.Background(), p.ID, newEvent(domain.PostWithdrawn))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusWithdrawn, withdrawn.Status)

	// El registro sigue en la colección, no se borra.
	res, err := repo.List(context.Background(), nil, query.Spec{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)

	_, err = repo.Withdraw(context.Background(), 999, newEvent(domain.PostWithdrawn))
	assert.ErrorIs(t, err, domain.ErrPostNotFound)
}

func TestPostRepoMemory_WithdrawFillsOutboxEvent(t *testing.T) {
	repo := NewPostRepoMemory()
	p := seedPost(t, repo, "efímero")

	_, err := repo.Withdraw(context.Background(), p.ID, newEvent(domain.PostWithdrawn))
	require.NoError(t, err)

	pending, err := repo.FetchPendingOutbox(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, pending, 2)

	evt := pending[1]
	assert.Equal(t, domain.PostWithdrawn, evt.EventType)
	assert.Equal(t, "1", evt.AggregateID)
	require.NotNil(t, evt.Payload)
}

func TestPostRepoMemory_ListSnapshotIsolation(t *testing.T) {
	repo := NewPostRepoMemory()
	seedPost(t, repo, "uno")
	seedPost(t, repo, "dos")

	res, err := repo.List(context.Background(), nil, query.Spec{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, res.Items, 2)

	// Las copias del listado no comparten memoria con el repositorio.
	res.Items[0].Title = "mutado"

	again, err := repo.GetByID(context.Background(), res.Items[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, "mutado", again.Title)
}

func TestPostRepoMemory_OutboxFetchAndMark(t *testing.T) {
	repo := NewPostRepoMemory()
	seedPost(t, repo, "uno")
	seedPost(t, repo, "dos")

	pending, err := repo.FetchPendingOutbox(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, pending, 2)

	// ⚡️ límite respetado
	limited, err := repo.FetchPendingOutbox(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	require.NoError(t, repo.MarkOutboxProcessed(context.Background(), pending[0].ID))

	rest, err := repo.FetchPendingOutbox(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, pending[1].ID, rest[0].ID)
}
