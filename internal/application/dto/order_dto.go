package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderItemRequest una línea del pedido a crear. Precio y descuentos se
// toman del catálogo al crear; el request solo indica repuesto y cantidad.
type CreateOrderItemRequest struct {
	PartID   string `json:"part_id" validate:"required"`
	Quantity int64  `json:"quantity" validate:"required,min=1"`
}

// CreateOrderRequest entrada para crear un pedido.
type CreateOrderRequest struct {
	StoreID    string                   `json:"store_id" validate:"required"`
	RetailerID string                   `json:"retailer_id" validate:"required"`
	Urgent     bool                     `json:"urgent"`
	Remark     string                   `json:"remark"`
	Items      []CreateOrderItemRequest `json:"items" validate:"required,min=1"`
}

// ChangeStatusRequest entrada para cambiar el estado de un pedido.
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Notes  string `json:"notes"`
}

// PickItemRequest entrada para marcar/desmarcar una línea como recogida.
type PickItemRequest struct {
	Picked bool `json:"picked"`
}

// OrderItemResponse salida de una línea de pedido.
type OrderItemResponse struct {
	ID                 string          `json:"id"`
	PartID             string          `json:"part_id"`
	PartNumber         string          `json:"part_number"`
	Quantity           int64           `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	BasicDiscount      decimal.Decimal `json:"basic_discount"`
	SchemeDiscount     decimal.Decimal `json:"scheme_discount"`
	AdditionalDiscount decimal.Decimal `json:"additional_discount"`
	Picked             bool            `json:"picked"`
	LineTotal          decimal.Decimal `json:"line_total"`
}

// StatusEntryResponse una entrada del historial de estados.
type StatusEntryResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	ActorRole string    `json:"actor_role"`
	Notes     string    `json:"notes,omitempty"`
}

// OrderResponse salida de un pedido completo.
type OrderResponse struct {
	ID            string                `json:"id"`
	Number        string                `json:"number"`
	CompanyID     string                `json:"company_id"`
	StoreID       string                `json:"store_id"`
	RetailerID    string                `json:"retailer_id"`
	Status        string                `json:"status"`
	Urgent        bool                  `json:"urgent"`
	Remark        string                `json:"remark,omitempty"`
	Items         []OrderItemResponse   `json:"items"`
	StatusHistory []StatusEntryResponse `json:"status_history"`
	Total         decimal.Decimal       `json:"total"`
	CreatedBy     string                `json:"created_by"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// OrderListResponse lista paginada de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// TransitionsResponse destinos legales desde el estado actual. Lista vacía:
// no ofrecer control de cambio de estado (Completed/Cancelled).
type TransitionsResponse struct {
	Status string   `json:"status"`
	Next   []string `json:"next"`
}
