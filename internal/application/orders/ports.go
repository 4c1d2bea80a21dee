package orders

import (
	"context"

	"github.com/jhoicas/repuestos-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repos atados a una transacción: o se
// persiste todo o nada. La implementación vive en infrastructure/postgres.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		partRepo repository.PartRepository,
	) error) error
}
