package repository

import "github.com/jhoicas/repuestos-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order, sus líneas y su
// historial de estados (append-only).
type OrderRepository interface {
	// Create persiste cabecera y líneas. Usar dentro de una transacción.
	Create(order *entity.Order) error
	// GetByID carga el pedido completo: cabecera, líneas e historial.
	GetByID(id string) (*entity.Order, error)
	// UpdateStatus fija el estado y el remark de la cabecera y agrega la
	// entrada de historial. Usar dentro de una transacción: o se persiste
	// todo el cambio de estado o nada.
	UpdateStatus(orderID string, status entity.OrderStatus, remark string, entry entity.StatusEntry) error
	// SetItemPicked marca una línea como recogida (o la desmarca).
	SetItemPicked(orderID, itemID string, picked bool) error
	// ListByStores lista pedidos de las tiendas indicadas (alcance ya resuelto).
	ListByStores(storeIDs []string, limit, offset int) ([]*entity.Order, error)
	// ListByRetailer lista pedidos de un minorista.
	ListByRetailer(retailerID string, limit, offset int) ([]*entity.Order, error)
}
