package entity

import "time"

// Company representa una empresa distribuidora de repuestos (tenant raíz).
type Company struct {
	ID        string
	Name      string
	TaxID     string
	Address   string
	Phone     string
	Email     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store representa una tienda/sucursal de una empresa.
type Store struct {
	ID        string
	CompanyID string
	Code      string // código corto de la tienda (ej. NYC001)
	Name      string
	Address   string
	Phone     string
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
