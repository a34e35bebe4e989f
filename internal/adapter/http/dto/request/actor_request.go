package request

import (
	"strings"

	"gestor_manutencao/internal/domain/entities"
)

// ActorRequest is the acting-user identity block the auth layer attaches to
// every lifecycle call. The use case re-validates the role.
type ActorRequest struct {
	ID   string `json:"id" binding:"required"`
	Name string `json:"name" binding:"required"`
	Role string `json:"role" binding:"required"`
}

func (a ActorRequest) ToActor() entities.Actor {
	return entities.Actor{
		ID:   strings.TrimSpace(a.ID),
		Name: strings.TrimSpace(a.Name),
		Role: entities.UserRole(strings.ToLower(strings.TrimSpace(a.Role))),
	}
}
