package domain

import (
	"strconv"
	"time"

	sharedBus "github.com/davicafu/blogolab/internal/shared/infra/platform/bus"
)

// UserStatus indica si la cuenta está activa.
type UserStatus int

const (
	StatusDisabled UserStatus = 0
	StatusActive   UserStatus = 1
)

// User representa un usuario del sistema.
type User struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Nickname  string     `json:"nickname"`
	Status    UserStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (u *User) PartitionKey() string {
	return strconv.FormatInt(u.ID, 10)
}

// --- Métodos de dominio ---

func (u *User) Disable() {
	u.Status = StatusDisabled
	u.UpdatedAt = time.Now().UTC()
}

// Verificación estática para asegurar que User implementa la interfaz
var _ sharedBus.Keyer = (*User)(nil)
