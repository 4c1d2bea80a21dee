package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePartRequest entrada para crear un repuesto.
type CreatePartRequest struct {
	PartNumber         string          `json:"part_number" validate:"required,min=1,max=100"`
	Name               string          `json:"name" validate:"required,min=1,max=200"`
	Description        string          `json:"description"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	BasicDiscount      decimal.Decimal `json:"basic_discount"`
	SchemeDiscount     decimal.Decimal `json:"scheme_discount"`
	AdditionalDiscount decimal.Decimal `json:"additional_discount"`
	Stock              int64           `json:"stock"`
}

// UpdatePartRequest entrada para actualizar un repuesto (parcial).
type UpdatePartRequest struct {
	Name               *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description        *string          `json:"description"`
	UnitPrice          *decimal.Decimal `json:"unit_price"`
	BasicDiscount      *decimal.Decimal `json:"basic_discount"`
	SchemeDiscount     *decimal.Decimal `json:"scheme_discount"`
	AdditionalDiscount *decimal.Decimal `json:"additional_discount"`
	Stock              *int64           `json:"stock"`
}

// PartResponse salida de un repuesto.
type PartResponse struct {
	ID                 string          `json:"id"`
	CompanyID          string          `json:"company_id"`
	PartNumber         string          `json:"part_number"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	BasicDiscount      decimal.Decimal `json:"basic_discount"`
	SchemeDiscount     decimal.Decimal `json:"scheme_discount"`
	AdditionalDiscount decimal.Decimal `json:"additional_discount"`
	Stock              int64           `json:"stock"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// PartListResponse lista paginada de repuestos.
type PartListResponse struct {
	Items []PartResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
