package entity

import "time"

// Retailer representa un minorista cliente, adscrito a una tienda.
type Retailer struct {
	ID        string
	StoreID   string
	CompanyID string // desnormalizado desde la tienda para filtros por empresa
	Name      string
	Contact   string
	Phone     string
	Email     string
	Address   string
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
