package domain

import (
	"strings"

	sharedDomain "github.com/davicafu/blogolab/internal/shared/domain"
	"github.com/davicafu/blogolab/internal/shared/infra/platform/query"
)

// ---------------- Implementaciones concretas ----------------

// Filtrado por categoría exacta
type CategoryCriteria struct {
	CategoryID int64
}

func (c CategoryCriteria) ToConditions() []sharedDomain.Criterion {
	return []sharedDomain.Criterion{{Field: "category_id", Op: sharedDomain.OpEq, Value: c.CategoryID}}
}

// Filtrado por autor exacto
type AuthorCriteria struct {
	AuthorID int64
}

func (c AuthorCriteria) ToConditions() []sharedDomain.Criterion {
	return []sharedDomain.Criterion{{Field: "author_id", Op: sharedDomain.OpEq, Value: c.AuthorID}}
}

// Filtrado por estado editorial
type StatusCriteria struct {
	Status PostStatus
}

func (c StatusCriteria) ToConditions() []sharedDomain.Criterion {
	return []sharedDomain.Criterion{{Field: "status", Op: sharedDomain.OpEq, Value: c.Status}}
}

// Filtrado por título, subcadena sensible a mayúsculas
type TitleLikeCriteria struct {
	Title string
}

func (c TitleLikeCriteria) ToConditions() []sharedDomain.Criterion {
	return []sharedDomain.Criterion{{Field: "title", Op: sharedDomain.OpLike, Value: c.Title}}
}

// Filtrado por artículos fijados
type TopCriteria struct {
	Top bool
}

func (c TopCriteria) ToConditions() []sharedDomain.Criterion {
	return []sharedDomain.Criterion{{Field: "top", Op: sharedDomain.OpEq, Value: c.Top}}
}

// ---------------- Campos ordenables ----------------

// SortFields es el conjunto cerrado de campos por los que se puede ordenar.
var SortFields = []string{"id", "created_at", "updated_at", "view_count"}

// DefaultSort ordena por fecha de creación, los más recientes primero.
var DefaultSort = query.Sort{Field: "created_at", Desc: true}

// ---------------- Evaluación en memoria ----------------

// MatchCriterion evalúa una condición neutral contra un Post.
// Una condición sobre un campo desconocido no coincide nunca.
func MatchCriterion(p *Post, cond sharedDomain.Criterion) bool {
	switch cond.Field {
	case "category_id":
		v, ok := cond.Value.(int64)
		return ok && p.CategoryID == v
	case "author_id":
		v, ok := cond.Value.(int64)
		return ok && p.AuthorID == v
	case "status":
		v, ok := cond.Value.(PostStatus)
		return ok && p.Status == v
	case "top":
		v, ok := cond.Value.(bool)
		return ok && p.Top == v
	case "title":
		v, ok := cond.Value.(string)
		return ok && strings.Contains(p.Title, v)
	}
	return false
}

// Less compara dos posts por un campo ordenable (estrictamente menor).
func Less(a, b *Post, field string) bool {
	switch field {
	case "id":
		return a.ID < b.ID
	case "created_at":
		return a.CreatedAt.Before(b.CreatedAt)
	case "updated_at":
		return a.UpdatedAt.Before(b.UpdatedAt)
	case "view_count":
		return a.ViewCount < b.ViewCount
	}
	return false
}
