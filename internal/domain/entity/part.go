package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Part representa un repuesto del catálogo de una empresa.
// Los descuentos son porcentajes (0-100) que se copian a la línea del pedido
// al momento de crearlo.
type Part struct {
	ID                 string
	CompanyID          string
	PartNumber         string
	Name               string
	Description        string
	UnitPrice          decimal.Decimal
	BasicDiscount      decimal.Decimal
	SchemeDiscount     decimal.Decimal
	AdditionalDiscount decimal.Decimal
	Stock              int64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
