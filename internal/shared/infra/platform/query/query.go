package query

import (
	"errors"
	"fmt"
	"sort"

	sharedDomain "github.com/davicafu/blogolab/internal/shared/domain"
)

// ---------------- Errores ----------------

// ErrInvalidQuery indica parámetros de paginación u orden fuera de rango.
// El caller lo traduce a una respuesta 400; nunca es fatal.
var ErrInvalidQuery = errors.New("invalid query")

// ---------------- Paginación / ordenamiento ----------------

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Sort indica campo y dirección.
type Sort struct {
	Field string // ej. "created_at", "view_count", "id"
	Desc  bool
}

// Spec agrupa la ventana de paginación y el orden de una consulta.
// Los filtros viajan aparte, como Criteria del dominio.
type Spec struct {
	Page     int
	PageSize int
	Sort     Sort
}

// Result es una página de registros más los metadatos de paginación.
type Result[T any] struct {
	Items      []T
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// ---------------- Engine ----------------

// MatchFunc evalúa una condición de filtrado sobre un registro.
type MatchFunc[T any] func(item T, cond sharedDomain.Criterion) bool

// LessFunc compara dos registros por un campo de orden (estrictamente menor).
type LessFunc[T any] func(a, b T, field string) bool

// Engine filtra, ordena y pagina una colección en memoria.
// Es una función pura sobre el snapshot que recibe: no muta la colección
// y dos llamadas con los mismos argumentos devuelven el mismo resultado.
type Engine[T any] struct {
	sortable    map[string]struct{}
	defaultSort Sort
	match       MatchFunc[T]
	less        LessFunc[T]
}

// NewEngine construye un engine para un tipo de registro concreto.
// sortable es el conjunto cerrado de campos ordenables; cualquier otro
// campo en Spec.Sort produce ErrInvalidQuery.
func NewEngine[T any](sortable []string, defaultSort Sort, match MatchFunc[T], less LessFunc[T]) *Engine[T] {
	fields := make(map[string]struct{}, len(sortable))
	for _, f := range sortable {
		fields[f] = struct{}{}
	}
	return &Engine[T]{
		sortable:    fields,
		defaultSort: defaultSort,
		match:       match,
		less:        less,
	}
}

// Execute aplica filtrado conjuntivo, orden estable y paginación, en ese
// orden. Una página más allá del total devuelve items vacíos sin error.
func (e *Engine[T]) Execute(items []T, criteria sharedDomain.Criteria, spec Spec) (Result[T], error) {
	spec = e.normalize(spec)
	if err := e.validate(spec); err != nil {
		return Result[T]{}, err
	}

	// 1. Filtrado: el registro debe cumplir todas las condiciones activas.
	var conds []sharedDomain.Criterion
	if criteria != nil {
		conds = criteria.ToConditions()
	}
	filtered := make([]T, 0, len(items))
	for _, it := range items {
		if e.matchesAll(it, conds) {
			filtered = append(filtered, it)
		}
	}

	// 2. Orden estable sobre el conjunto filtrado completo, antes de paginar.
	// Claves iguales conservan el orden relativo del filtrado; para el orden
	// descendente se invierten los argumentos del less estricto, que sigue
	// devolviendo false en caso de empate.
	field, desc := spec.Sort.Field, spec.Sort.Desc
	sort.SliceStable(filtered, func(i, j int) bool {
		if desc {
			return e.less(filtered[j], filtered[i], field)
		}
		return e.less(filtered[i], filtered[j], field)
	})

	// 3. Paginación con límites recortados al tamaño del conjunto.
	total := len(filtered)
	start := (spec.Page - 1) * spec.PageSize
	end := start + spec.PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + spec.PageSize - 1) / spec.PageSize
	}

	return Result[T]{
		Items:      filtered[start:end],
		Total:      total,
		Page:       spec.Page,
		PageSize:   spec.PageSize,
		TotalPages: totalPages,
	}, nil
}

func (e *Engine[T]) matchesAll(item T, conds []sharedDomain.Criterion) bool {
	for _, cond := range conds {
		if !e.match(item, cond) {
			return false
		}
	}
	return true
}

// normalize completa sólo el campo de orden; page y pageSize llegan ya
// decodificados del handler y se validan tal cual.
func (e *Engine[T]) normalize(spec Spec) Spec {
	if spec.Sort.Field == "" {
		spec.Sort = e.defaultSort
	}
	return spec
}

func (e *Engine[T]) validate(spec Spec) error {
	if spec.Page < 1 {
		return fmt.Errorf("%w: page must be >= 1, got %d", ErrInvalidQuery, spec.Page)
	}
	if spec.PageSize < 1 {
		return fmt.Errorf("%w: pageSize must be >= 1, got %d", ErrInvalidQuery, spec.PageSize)
	}
	if spec.PageSize > MaxPageSize {
		return fmt.Errorf("%w: pageSize must be <= %d, got %d", ErrInvalidQuery, MaxPageSize, spec.PageSize)
	}
	if _, ok := e.sortable[spec.Sort.Field]; !ok {
		return fmt.Errorf("%w: unknown sort field %q", ErrInvalidQuery, spec.Sort.Field)
	}
	return nil
}
