package domain

import (
	"strings"

	sharedDomain "github.com/davicafu/blogolab/internal/shared/domain"
	"github.com/davicafu/blogolab/internal/shared/infra/platform/query"
)

// ---------------- Implementaciones concretas ----------------

// Filtrado por username exacto
type UsernameCriteria struct {
	Username string
}

func (c UsernameCriteria) ToConditions() []sharedDomain.Criterion {
	return []sharedDomain.Criterion{{Field: "username", Op: sharedDomain.OpEq, Value: c.Username}}
}

// Filtrado por email exacto
type EmailCriteria struct {
	Email string
}

func (c EmailCriteria) ToConditions() []sharedDomain.Criterion {
	return []sharedDomain.Criterion{{Field: "email", Op: sharedDomain.OpEq, Value: c.Email}}
}

// Filtrado por estado de la cuenta
type StatusCriteria struct {
	Status UserStatus
}

func (c StatusCriteria) ToConditions() []sharedDomain.Criterion {
	return []sharedDomain.Criterion{{Field: "status", Op: sharedDomain.OpEq, Value: c.Status}}
}

// Filtrado por apodo, subcadena sensible a mayúsculas
type NicknameLikeCriteria struct {
	Nickname string
}

func (c NicknameLikeCriteria) ToConditions() []sharedDomain.Criterion {
	return []sharedDomain.Criterion{{Field: "nickname", Op: sharedDomain.OpLike, Value: c.Nickname}}
}

// ---------------- Campos ordenables ----------------

var SortFields = []string{"id", "created_at", "updated_at", "username"}

var DefaultSort = query.Sort{Field: "created_at", Desc: true}

// ---------------- Evaluación en memoria ----------------

// MatchCriterion evalúa una condición neutral contra un User.
func MatchCriterion(u *User, cond sharedDomain.Criterion) bool {
	switch cond.Field {
	case "username":
		v, ok := cond.Value.(string)
		return ok && u.Username == v
	case "email":
		v, ok := cond.Value.(string)
		return ok && u.Email == v
	case "status":
		v, ok := cond.Value.(UserStatus)
		return ok && u.Status == v
	case "nickname":
		v, ok := cond.Value.(string)
		return ok && strings.Contains(u.Nickname, v)
	}
	return false
}

// Less compara dos usuarios por un campo ordenable (estrictamente menor).
func Less(a, b *User, field string) bool {
	switch field {
	case "id":
		return a.ID < b.ID
	case "created_at":
		return a.CreatedAt.Before(b.CreatedAt)
	case "updated_at":
		return a.UpdatedAt.Before(b.UpdatedAt)
	case "username":
		return a.Username < b.Username
	}
	return false
}
