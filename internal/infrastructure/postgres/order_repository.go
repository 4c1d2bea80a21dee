package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/repuestos-api/internal/domain"
	"github.com/jhoicas/repuestos-api/internal/domain/entity"
	"github.com/jhoicas/repuestos-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL
// (usable con pool o tx). El historial vive en order_status_history y es
// append-only: nunca se actualiza ni se borra una entrada.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para pedidos. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste cabecera y líneas. Usar dentro de una transacción.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, number, company_id, store_id, retailer_id, status, urgent, remark, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.Number, order.CompanyID, order.StoreID, order.RetailerID,
		string(order.Status), order.Urgent, order.Remark, order.CreatedBy,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	for _, it := range order.Items {
		itemQuery := `
			INSERT INTO order_items (id, order_id, part_id, part_number, quantity, unit_price, basic_discount, scheme_discount, additional_discount, picked)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
		_, err := r.q.Exec(context.Background(), itemQuery,
			it.ID, order.ID, it.PartID, it.PartNumber, it.Quantity,
			it.UnitPrice, it.BasicDiscount, it.SchemeDiscount, it.AdditionalDiscount,
			it.Picked,
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// GetByID carga el pedido completo: cabecera, líneas e historial.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `
		SELECT id, number, company_id, store_id, retailer_id, status, urgent, remark, created_by, created_at, updated_at
		FROM orders WHERE id = $1`
	var o entity.Order
	var status string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.Number, &o.CompanyID, &o.StoreID, &o.RetailerID,
		&status, &o.Urgent, &o.Remark, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	o.Status = entity.OrderStatus(status)
	if err := r.loadItems(&o); err != nil {
		return nil, err
	}
	if err := r.loadHistory(&o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepo) loadItems(o *entity.Order) error {
	query := `
		SELECT id, order_id, part_id, part_number, quantity, unit_price, basic_discount, scheme_discount, additional_discount, picked
		FROM order_items WHERE order_id = $1 ORDER BY part_number`
	rows, err := r.q.Query(context.Background(), query, o.ID)
	if err != nil {
		return fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.PartID, &it.PartNumber, &it.Quantity,
			&it.UnitPrice, &it.BasicDiscount, &it.SchemeDiscount, &it.AdditionalDiscount,
			&it.Picked); err != nil {
			return fmt.Errorf("scan order item: %w", err)
		}
		o.Items = append(o.Items, it)
	}
	return rows.Err()
}

func (r *OrderRepo) loadHistory(o *entity.Order) error {
	query := `
		SELECT status, ts, actor_role, notes
		FROM order_status_history WHERE order_id = $1 ORDER BY ts, seq`
	rows, err := r.q.Query(context.Background(), query, o.ID)
	if err != nil {
		return fmt.Errorf("list order history: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var e entity.StatusEntry
		var status, role string
		if err := rows.Scan(&status, &e.Timestamp, &role, &e.Notes); err != nil {
			return fmt.Errorf("scan history entry: %w", err)
		}
		e.Status = entity.OrderStatus(status)
		e.ActorRole = entity.Role(role)
		o.StatusHistory = append(o.StatusHistory, e)
	}
	return rows.Err()
}

// UpdateStatus fija estado y remark de la cabecera y agrega la entrada de
// historial. Usar dentro de una transacción.
func (r *OrderRepo) UpdateStatus(orderID string, status entity.OrderStatus, remark string, entry entity.StatusEntry) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE orders SET status = $2, remark = $3, updated_at = $4 WHERE id = $1`,
		orderID, string(status), remark, entry.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	_, err = r.q.Exec(context.Background(),
		`INSERT INTO order_status_history (order_id, status, ts, actor_role, notes) VALUES ($1, $2, $3, $4, $5)`,
		orderID, string(entry.Status), entry.Timestamp, string(entry.ActorRole), entry.Notes,
	)
	if err != nil {
		return fmt.Errorf("insert history entry: %w", err)
	}
	return nil
}

// SetItemPicked marca una línea como recogida (o la desmarca).
func (r *OrderRepo) SetItemPicked(orderID, itemID string, picked bool) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE order_items SET picked = $3 WHERE order_id = $1 AND id = $2`,
		orderID, itemID, picked,
	)
	if err != nil {
		return fmt.Errorf("set item picked: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByStores lista pedidos de las tiendas indicadas (alcance ya resuelto),
// urgentes primero.
func (r *OrderRepo) ListByStores(storeIDs []string, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, number, company_id, store_id, retailer_id, status, urgent, remark, created_by, created_at, updated_at
		FROM orders WHERE store_id = ANY($1) ORDER BY urgent DESC, created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, storeIDs, limit, offset)
}

// ListByRetailer lista pedidos de un minorista.
func (r *OrderRepo) ListByRetailer(retailerID string, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, number, company_id, store_id, retailer_id, status, urgent, remark, created_by, created_at, updated_at
		FROM orders WHERE retailer_id = $1 ORDER BY urgent DESC, created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, retailerID, limit, offset)
}

func (r *OrderRepo) list(query string, arg any, limit, offset int) ([]*entity.Order, error) {
	rows, err := r.q.Query(context.Background(), query, arg, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		var status string
		if err := rows.Scan(&o.ID, &o.Number, &o.CompanyID, &o.StoreID, &o.RetailerID,
			&status, &o.Urgent, &o.Remark, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.Status = entity.OrderStatus(status)
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range list {
		if err := r.loadItems(o); err != nil {
			return nil, err
		}
		if err := r.loadHistory(o); err != nil {
			return nil, err
		}
	}
	return list, nil
}
