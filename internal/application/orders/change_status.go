package orders

import (
	"context"

	"github.com/jhoicas/repuestos-api/internal/application/dto"
	"github.com/jhoicas/repuestos-api/internal/domain"
	"github.com/jhoicas/repuestos-api/internal/domain/access"
	"github.com/jhoicas/repuestos-api/internal/domain/entity"
	"github.com/jhoicas/repuestos-api/internal/domain/order"
	"github.com/jhoicas/repuestos-api/internal/domain/repository"
)

// ChangeStatusUseCase aplica cambios de estado con commit en dos fases:
// la transición se calcula sobre una copia del pedido y solo se devuelve
// al llamador si la persistencia confirmó. Un fallo de persistencia
// descarta la propuesta; el pedido visible nunca queda a medio mutar.
type ChangeStatusUseCase struct {
	tx        TxRunner
	orderRepo repository.OrderRepository
}

// NewChangeStatusUseCase construye el caso de uso.
func NewChangeStatusUseCase(tx TxRunner, orderRepo repository.OrderRepository) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{tx: tx, orderRepo: orderRepo}
}

// Execute valida alcance, rol y transición, y persiste el cambio.
//
// Errores: ErrScopeDenied (fuera de alcance), ErrForbidden (rol sin permiso
// de cambiar estados), *order.InvalidTransitionError (no está en la tabla),
// order.ErrItemsNotPicked (guarda Processing→Picked).
func (uc *ChangeStatusUseCase) Execute(ctx context.Context, actor entity.Actor, orderID string, in dto.ChangeStatusRequest) (*dto.OrderResponse, error) {
	target := entity.OrderStatus(in.Status)
	if !target.Valid() {
		return nil, domain.ErrInvalidInput
	}
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
	// Defensa en profundidad: la UI no ofrece el control a retailer/salesman,
	// pero el caso de uso rechaza igual en vez de no-op silencioso.
	if !order.CanChangeStatus(actor.Role) {
		return nil, domain.ErrForbidden
	}

	// Fase 1: transición propuesta sobre una copia.
	proposed := ord.Clone()
	if err := order.Transition(proposed, target, actor.Role, in.Notes); err != nil {
		return nil, err
	}
	entry := proposed.StatusHistory[len(proposed.StatusHistory)-1]

	// Fase 2: persistir; solo en commit la propuesta se vuelve visible.
	err = uc.tx.Run(ctx, func(orderRepo repository.OrderRepository, _ repository.PartRepository) error {
		return orderRepo.UpdateStatus(ord.ID, proposed.Status, proposed.Remark, entry)
	})
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(proposed), nil
}

// canSeeOrder alcance de lectura sobre un pedido: los roles operativos por
// tienda, el minorista solo los suyos.
func canSeeOrder(actor entity.Actor, o *entity.Order) bool {
	if actor.Role == entity.RoleRetailer {
		return access.CanAccessRetailer(actor, o.RetailerID)
	}
	return access.CanAccessStore(actor, o.StoreID)
}
