package orders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/repuestos-api/internal/application/dto"
	"github.com/jhoicas/repuestos-api/internal/domain"
	"github.com/jhoicas/repuestos-api/internal/domain/access"
	"github.com/jhoicas/repuestos-api/internal/domain/entity"
	"github.com/jhoicas/repuestos-api/internal/domain/repository"
)

// CreateOrderUseCase crea pedidos: valida alcance, congela precio y descuentos
// del catálogo en cada línea y persiste cabecera + líneas en una transacción.
type CreateOrderUseCase struct {
	tx           TxRunner
	retailerRepo repository.RetailerRepository
}

// NewCreateOrderUseCase construye el caso de uso.
func NewCreateOrderUseCase(tx TxRunner, retailerRepo repository.RetailerRepository) *CreateOrderUseCase {
	return &CreateOrderUseCase{tx: tx, retailerRepo: retailerRepo}
}

// Execute crea el pedido en estado New. El historial nace vacío: solo las
// transiciones lo alimentan.
func (uc *CreateOrderUseCase) Execute(ctx context.Context, actor entity.Actor, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if !access.CanAccessStore(actor, in.StoreID) && actor.Role != entity.RoleRetailer {
		return nil, domain.ErrScopeDenied
	}
	if !access.CanAccessRetailer(actor, in.RetailerID) {
		return nil, domain.ErrScopeDenied
	}
	retailer, err := uc.retailerRepo.GetByID(in.RetailerID)
	if err != nil {
		return nil, err
	}
	if retailer == nil || retailer.StoreID != in.StoreID {
		return nil, domain.ErrInvalidInput // minorista inexistente o de otra tienda
	}

	now := time.Now()
	ord := &entity.Order{
		ID:         uuid.New().String(),
		Number:     newOrderNumber(),
		CompanyID:  retailer.CompanyID,
		StoreID:    in.StoreID,
		RetailerID: in.RetailerID,
		Status:     entity.StatusNew,
		Urgent:     in.Urgent,
		Remark:     in.Remark,
		CreatedBy:  actor.UserID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = uc.tx.Run(ctx, func(orderRepo repository.OrderRepository, partRepo repository.PartRepository) error {
		for _, line := range in.Items {
			if line.Quantity <= 0 {
				return domain.ErrInvalidInput
			}
			part, err := partRepo.GetByID(line.PartID)
			if err != nil {
				return err
			}
			if part == nil || part.CompanyID != retailer.CompanyID {
				return domain.ErrNotFound
			}
			ord.Items = append(ord.Items, entity.OrderItem{
				ID:                 uuid.New().String(),
				OrderID:            ord.ID,
				PartID:             part.ID,
				PartNumber:         part.PartNumber,
				Quantity:           line.Quantity,
				UnitPrice:          part.UnitPrice,
				BasicDiscount:      part.BasicDiscount,
				SchemeDiscount:     part.SchemeDiscount,
				AdditionalDiscount: part.AdditionalDiscount,
			})
		}
		return orderRepo.Create(ord)
	})
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(ord), nil
}

// newOrderNumber consecutivo legible para mostrar en UI (la clave real es el UUID).
func newOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("ORD-%s", suffix)
}

// ToOrderResponse mapea la entidad a su DTO de salida.
func ToOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ID:                 it.ID,
			PartID:             it.PartID,
			PartNumber:         it.PartNumber,
			Quantity:           it.Quantity,
			UnitPrice:          it.UnitPrice,
			BasicDiscount:      it.BasicDiscount,
			SchemeDiscount:     it.SchemeDiscount,
			AdditionalDiscount: it.AdditionalDiscount,
			Picked:             it.Picked,
			LineTotal:          it.LineTotal(),
		})
	}
	history := make([]dto.StatusEntryResponse, 0, len(o.StatusHistory))
	for _, h := range o.StatusHistory {
		history = append(history, dto.StatusEntryResponse{
			Status:    string(h.Status),
			Timestamp: h.Timestamp,
			ActorRole: string(h.ActorRole),
			Notes:     h.Notes,
		})
	}
	return &dto.OrderResponse{
		ID:            o.ID,
		Number:        o.Number,
		CompanyID:     o.CompanyID,
		StoreID:       o.StoreID,
		RetailerID:    o.RetailerID,
		Status:        string(o.Status),
		Urgent:        o.Urgent,
		Remark:        o.Remark,
		Items:         items,
		StatusHistory: history,
		Total:         o.Total(),
		CreatedBy:     o.CreatedBy,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}
