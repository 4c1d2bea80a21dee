package orders

import (
	"context"

	"github.com/jhoicas/repuestos-api/internal/application/dto"
	"github.com/jhoicas/repuestos-api/internal/domain"
	"github.com/jhoicas/repuestos-api/internal/domain/entity"
	"github.com/jhoicas/repuestos-api/internal/domain/order"
	"github.com/jhoicas/repuestos-api/internal/domain/repository"
)

// PickItemUseCase marca líneas como recogidas durante el picking. Alimenta la
// guarda de Processing → Picked.
type PickItemUseCase struct {
	orderRepo repository.OrderRepository
}

// NewPickItemUseCase construye el caso de uso.
func NewPickItemUseCase(orderRepo repository.OrderRepository) *PickItemUseCase {
	return &PickItemUseCase{orderRepo: orderRepo}
}

// Execute marca/desmarca una línea. Solo sobre pedidos en Processing y solo
// para roles con permiso de cambiar estados.
func (uc *PickItemUseCase) Execute(ctx context.Context, actor entity.Actor, orderID, itemID string, in dto.PickItemRequest) (*dto.OrderResponse, error) {
	ord, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, domain.ErrNotFound
	}
	if !canSeeOrder(actor, ord) {
		return nil, domain.ErrScopeDenied
	}
	if !order.CanChangeStatus(actor.Role) {
		return nil, domain.ErrForbidden
	}
	if ord.Status != entity.StatusProcessing {
		return nil, domain.ErrConflict // el picking ocurre en Processing
	}
	found := false
	for i := range ord.Items {
		if ord.Items[i].ID == itemID {
			ord.Items[i].Picked = in.Picked
			found = true
			break
		}
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	if err := uc.orderRepo.SetItemPicked(orderID, itemID, in.Picked); err != nil {
		return nil, err
	}
	return ToOrderResponse(ord), nil
}
