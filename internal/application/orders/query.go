package orders

import (
	"github.com/jhoicas/repuestos-api/internal/application/dto"
	"github.com/jhoicas/repuestos-api/internal/domain"
	"github.com/jhoicas/repuestos-api/internal/domain/access"
	"github.com/jhoicas/repuestos-api/internal/domain/entity"
	"github.com/jhoicas/repuestos-api/internal/domain/order"
	"github.com/jhoicas/repuestos-api/internal/domain/repository"
)

// QueryUseCase lecturas de pedidos filtradas por el alcance del actor.
type QueryUseCase struct {
	orderRepo repository.OrderRepository
	storeRepo repository.StoreRepository
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(orderRepo repository.OrderRepository, storeRepo repository.StoreRepository) *QueryUseCase {
	return &QueryUseCase{orderRepo: orderRepo, storeRepo: storeRepo}
}

// GetByID carga un pedido completo si el actor puede verlo.
func (uc *QueryUseCase) GetByID(actor entity.Actor, id string) (*dto.OrderResponse, error) {
	ord, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, domain.ErrNotFound
	}
	if !canSeeOrder(actor, ord) {
		return nil, domain.ErrScopeDenied
	}
	return ToOrderResponse(ord), nil
}

// List lista los pedidos visibles para el actor con paginación.
// retailer: solo los suyos; roles operativos: los de sus tiendas accesibles.
func (uc *QueryUseCase) List(actor entity.Actor, limit, offset int) (*dto.OrderListResponse, error) {
	var list []*entity.Order
	var err error
	if actor.Role == entity.RoleRetailer {
		list, err = uc.orderRepo.ListByRetailer(actor.RetailerID, limit, offset)
	} else {
		stores, serr := uc.storeRepo.ListAll()
		if serr != nil {
			return nil, serr
		}
		storeIDs := access.AccessibleStores(actor, stores)
		if len(storeIDs) == 0 {
			return &dto.OrderListResponse{
				Items: []dto.OrderResponse{},
				Page:  dto.PageResponse{Limit: limit, Offset: offset},
			}, nil
		}
		list, err = uc.orderRepo.ListByStores(storeIDs, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *ToOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Transitions destinos legales del pedido para poblar el control de acciones
// rápidas. Lista vacía: la UI no ofrece cambio de estado.
func (uc *QueryUseCase) Transitions(actor entity.Actor, id string) (*dto.TransitionsResponse, error) {
	ord, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, domain.ErrNotFound
	}
	if !canSeeOrder(actor, ord) {
		return nil, domain.ErrScopeDenied
	}
	next := order.NextStatuses(ord)
	out := make([]string, 0, len(next))
	// Sin permiso de cambiar estados el control tampoco se ofrece.
	if order.CanChangeStatus(actor.Role) {
		for _, s := range next {
			out = append(out, string(s))
		}
	}
	return &dto.TransitionsResponse{Status: string(ord.Status), Next: out}, nil
}
