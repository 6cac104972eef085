package clients

import (
	"context"

	"karting/internal/domain"
)

// ClientRepository is the persistence boundary for the client registry.
// GetByRUT reports absence with gorm.ErrRecordNotFound.
type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByRUT(ctx context.Context, rut string) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	IncrementVisits(ctx context.Context, rut string) error
}
