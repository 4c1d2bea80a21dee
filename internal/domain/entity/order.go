package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado del ciclo de vida de un pedido.
// Las transiciones legales viven en internal/domain/order.
type OrderStatus string

const (
	StatusNew        OrderStatus = "New"
	StatusPending    OrderStatus = "Pending"
	StatusProcessing OrderStatus = "Processing"
	StatusHold       OrderStatus = "Hold"
	StatusPicked     OrderStatus = "Picked"
	StatusDispatched OrderStatus = "Dispatched"
	StatusCompleted  OrderStatus = "Completed"
	StatusCancelled  OrderStatus = "Cancelled"
)

// Valid reporta si el estado es uno de los ocho conocidos.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusNew, StatusPending, StatusProcessing, StatusHold,
		StatusPicked, StatusDispatched, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// StatusEntry una entrada del historial de estados (append-only, una por transición exitosa).
type StatusEntry struct {
	Status    OrderStatus
	Timestamp time.Time
	ActorRole Role
	Notes     string
}

// OrderItem una línea de pedido. Propiedad exclusiva de su Order padre.
type OrderItem struct {
	ID                 string
	OrderID            string
	PartID             string
	PartNumber         string
	Quantity           int64
	UnitPrice          decimal.Decimal
	BasicDiscount      decimal.Decimal
	SchemeDiscount     decimal.Decimal
	AdditionalDiscount decimal.Decimal
	Picked             bool
}

// LineTotal precio de la línea aplicando los tres descuentos en cascada.
func (i OrderItem) LineTotal() decimal.Decimal {
	cien := decimal.NewFromInt(100)
	total := i.UnitPrice.Mul(decimal.NewFromInt(i.Quantity))
	for _, d := range []decimal.Decimal{i.BasicDiscount, i.SchemeDiscount, i.AdditionalDiscount} {
		total = total.Mul(cien.Sub(d)).Div(cien)
	}
	return total
}

// Order pedido de un minorista. Nace en New y solo muta vía transiciones
// validadas; nunca se borra, termina en Completed o Cancelled.
type Order struct {
	ID            string
	Number        string // consecutivo legible (ORD-000123)
	CompanyID     string
	StoreID       string
	RetailerID    string
	Status        OrderStatus
	Urgent        bool
	Remark        string
	Items         []OrderItem
	StatusHistory []StatusEntry
	CreatedBy     string // user id
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AllPicked reporta si todas las líneas están marcadas como recogidas.
// Un pedido sin líneas no se considera recogido.
func (o *Order) AllPicked() bool {
	if len(o.Items) == 0 {
		return false
	}
	for _, it := range o.Items {
		if !it.Picked {
			return false
		}
	}
	return true
}

// Total suma de las líneas del pedido.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.LineTotal())
	}
	return total
}

// Clone copia profunda del pedido (items e historial incluidos).
// Usada por el commit en dos fases del cambio de estado.
func (o *Order) Clone() *Order {
	c := *o
	c.Items = make([]OrderItem, len(o.Items))
	copy(c.Items, o.Items)
	c.StatusHistory = make([]StatusEntry, len(o.StatusHistory))
	copy(c.StatusHistory, o.StatusHistory)
	return &c
}
