package query

import (
	"fmt"
	"strings"
	"testing"

	sharedDomain "github.com/davicafu/blogolab/internal/shared/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// record es un registro mínimo para ejercitar el engine sin depender
// de los dominios concretos.
type record struct {
	ID     int64
	Status int
	Title  string
	Views  int64
}

type statusCriteria struct{ Status int }

func (c statusCriteria) ToConditions() []sharedDomain.Criterion {
	return []sharedDomain.Criterion{{Field: "status", Op: sharedDomain.OpEq, Value: c.Status}}
}

type titleLikeCriteria struct{ Needle string }

func (c titleLikeCriteria) ToConditions() []sharedDomain.Criterion {
	return []sharedDomain.Criterion{{Field: "title", Op: sharedDomain.OpLike, Value: c.Needle}}
}

func matchRecord(r record, cond sharedDomain.Criterion) bool {
	switch cond.Field {
	case "status":
		return r.Status == cond.Value.(int)
	case "title":
		// subcadena sensible a mayúsculas
		return strings.Contains(r.Title, cond.Value.(string))
	}
	return false
}

func lessRecord(a, b record, field string) bool {
	switch field {
	case "id":
		return a.ID < b.ID
	case "views":
		return a.Views < b.Views
	}
	return false
}

func newTestEngine() *Engine[record] {
	return NewEngine[record](
		[]string{"id", "views"},
		Sort{Field: "id", Desc: false},
		matchRecord,
		lessRecord,
	)
}

// ---------------- Filtrado conjuntivo ----------------

func TestExecute_ConjunctiveFiltering(t *testing.T) {
	engine := newTestEngine()
	items := []record{
		{ID: 1, Status: 0, Title: "borrador go"},
		{ID: 2, Status: 1, Title: "intro a go"},
		{ID: 3, Status: 1, Title: "puertos y adaptadores"},
	}

	criteria := sharedDomain.And(statusCriteria{Status: 1}, titleLikeCriteria{Needle: "go"})

	res, err := engine.Execute(items, criteria, Spec{Page: 1, PageSize: 10})
	require.NoError(t, err)

	// Sólo el registro 2 cumple ambas condiciones a la vez.
	assert.Equal(t, 1, res.Total)
	require.Len(t, res.Items, 1)
	assert.Equal(t, int64(2), res.Items[0].ID)
	assert.Equal(t, 1, res.TotalPages)
}

func TestExecute_SubstringIsCaseSensitive(t *testing.T) {
	engine := newTestEngine()
	items := []record{
		{ID: 1, Title: "Go en producción"},
		{ID: 2, Title: "go en producción"},
	}

	res, err := engine.Execute(items, titleLikeCriteria{Needle: "go"}, Spec{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, int64(2), res.Items[0].ID)
}

func TestExecute_StatusFilter(t *testing.T) {
	// Escenario: 3 posts con estados [0,1,1], filtro status=1.
	engine := newTestEngine()
	items := []record{
		{ID: 1, Status: 0},
		{ID: 2, Status: 1},
		{ID: 3, Status: 1},
	}

	res, err := engine.Execute(items, statusCriteria{Status: 1}, Spec{Page: 1, PageSize: 10})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Total)
	assert.Equal(t, 1, res.TotalPages)
	require.Len(t, res.Items, 2)
	assert.Equal(t, int64(2), res.Items[0].ID)
	assert.Equal(t, int64(3), res.Items[1].ID)
}

// ---------------- Paginación ----------------

func TestExecute_EmptyCollection(t *testing.T) {
	engine := newTestEngine()

	res, err := engine.Execute(nil, nil, Spec{Page: DefaultPage, PageSize: DefaultPageSize})
	require.NoError(t, err)

	assert.Empty(t, res.Items)
	assert.Equal(t, 0, res.Total)
	assert.Equal(t, 0, res.TotalPages)
}

func TestExecute_LastPartialPage(t *testing.T) {
	// 25 registros, pageSize=10, page=3 → 5 items, totalPages=3.
	engine := newTestEngine()
	items := make([]record, 0, 25)
	for i := 1; i <= 25; i++ {
		items = append(items, record{ID: int64(i)})
	}

	res, err := engine.Execute(items, nil, Spec{Page: 3, PageSize: 10})
	require.NoError(t, err)

	assert.Len(t, res.Items, 5)
	assert.Equal(t, 25, res.Total)
	assert.Equal(t, 3, res.TotalPages)
	assert.Equal(t, int64(21), res.Items[0].ID)
	assert.Equal(t, int64(25), res.Items[4].ID)
}

func TestExecute_PageBeyondTotal(t *testing.T) {
	engine := newTestEngine()
	items := []record{{ID: 1}, {ID: 2}, {ID: 3}}

	res, err := engine.Execute(items, nil, Spec{Page: 5, PageSize: 10})
	require.NoError(t, err)

	// Fuera de rango no es error: items vacíos con el total real.
	assert.Empty(t, res.Items)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 1, res.TotalPages)
}

func TestExecute_PageSizeBound(t *testing.T) {
	engine := newTestEngine()
	items := make([]record, 0, 30)
	for i := 1; i <= 30; i++ {
		items = append(items, record{ID: int64(i)})
	}

	for page := 1; page <= 4; page++ {
		res, err := engine.Execute(items, nil, Spec{Page: page, PageSize: 8})
		require.NoError(t, err)
		assert.LessOrEqual(t, len(res.Items), 8)
		assert.Equal(t, 30, res.Total)
		assert.Equal(t, 4, res.TotalPages)
	}
}

func TestExecute_TotalIndependentOfWindow(t *testing.T) {
	engine := newTestEngine()
	items := []record{
		{ID: 1, Status: 1},
		{ID: 2, Status: 1},
		{ID: 3, Status: 0},
	}

	for _, spec := range []Spec{
		{Page: 1, PageSize: 1},
		{Page: 2, PageSize: 1},
		{Page: 1, PageSize: 100},
	} {
		res, err := engine.Execute(items, statusCriteria{Status: 1}, spec)
		require.NoError(t, err)
		assert.Equal(t, 2, res.Total, "total no depende de page/pageSize (%+v)", spec)
	}
}

// ---------------- Orden ----------------

func TestExecute_SortDescending(t *testing.T) {
	engine := newTestEngine()
	items := []record{
		{ID: 1, Views: 10},
		{ID: 2, Views: 30},
		{ID: 3, Views: 20},
	}

	res, err := engine.Execute(items, nil, Spec{Page: 1, PageSize: 10, Sort: Sort{Field: "views", Desc: true}})
	require.NoError(t, err)

	require.Len(t, res.Items, 3)
	assert.Equal(t, int64(2), res.Items[0].ID)
	assert.Equal(t, int64(3), res.Items[1].ID)
	assert.Equal(t, int64(1), res.Items[2].ID)
}

func TestExecute_SortIsStable(t *testing.T) {
	// Claves iguales conservan el orden de inserción, en ambas direcciones.
	engine := newTestEngine()
	items := []record{
		{ID: 7, Views: 5},
		{ID: 3, Views: 5},
		{ID: 9, Views: 5},
		{ID: 1, Views: 2},
	}

	asc, err := engine.Execute(items, nil, Spec{Page: 1, PageSize: 10, Sort: Sort{Field: "views"}})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 7, 3, 9}, idsOf(asc.Items))

	desc, err := engine.Execute(items, nil, Spec{Page: 1, PageSize: 10, Sort: Sort{Field: "views", Desc: true}})
	require.NoError(t, err)
	assert.Equal(t, []int64{7, 3, 9, 1}, idsOf(desc.Items))
}

func TestExecute_DefaultSort(t *testing.T) {
	engine := newTestEngine()
	items := []record{{ID: 3}, {ID: 1}, {ID: 2}}

	res, err := engine.Execute(items, nil, Spec{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, idsOf(res.Items))
}

// ---------------- Validación ----------------

func TestExecute_InvalidSpec(t *testing.T) {
	engine := newTestEngine()
	items := []record{{ID: 1}}

	tests := []struct {
		name string
		spec Spec
	}{
		{"page cero", Spec{Page: 0, PageSize: 10}},
		{"page negativa", Spec{Page: -1, PageSize: 10}},
		{"pageSize cero", Spec{Page: 1, PageSize: 0}},
		{"pageSize sobre el máximo", Spec{Page: 1, PageSize: MaxPageSize + 1}},
		{"campo de orden desconocido", Spec{Page: 1, PageSize: 10, Sort: Sort{Field: "title"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Execute(items, nil, tt.spec)
			assert.ErrorIs(t, err, ErrInvalidQuery)
		})
	}
}

// ---------------- Pureza ----------------

func TestExecute_DoesNotMutateInput(t *testing.T) {
	engine := newTestEngine()
	items := []record{{ID: 3}, {ID: 1}, {ID: 2}}

	_, err := engine.Execute(items, nil, Spec{Page: 1, PageSize: 2, Sort: Sort{Field: "id"}})
	require.NoError(t, err)

	// El snapshot de entrada queda intacto tras ordenar y paginar.
	assert.Equal(t, []int64{3, 1, 2}, idsOf(items))
}

func TestExecute_Idempotent(t *testing.T) {
	engine := newTestEngine()
	items := []record{
		{ID: 1, Status: 1, Views: 4},
		{ID: 2, Status: 0, Views: 9},
		{ID: 3, Status: 1, Views: 1},
	}
	spec := Spec{Page: 1, PageSize: 2, Sort: Sort{Field: "views", Desc: true}}

	first, err := engine.Execute(items, statusCriteria{Status: 1}, spec)
	require.NoError(t, err)
	second, err := engine.Execute(items, statusCriteria{Status: 1}, spec)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExecute_TotalPagesFormula(t *testing.T) {
	engine := newTestEngine()

	for _, tt := range []struct {
		total    int
		pageSize int
		expected int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
	} {
		t.Run(fmt.Sprintf("%d_items_size_%d", tt.total, tt.pageSize), func(t *testing.T) {
			items := make([]record, 0, tt.total)
			for i := 1; i <= tt.total; i++ {
				items = append(items, record{ID: int64(i)})
			}
			res, err := engine.Execute(items, nil, Spec{Page: 1, PageSize: tt.pageSize})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, res.TotalPages)
		})
	}
}

func idsOf(items []record) []int64 {
	ids := make([]int64, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}
