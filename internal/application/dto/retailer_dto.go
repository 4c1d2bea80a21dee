package dto

import "time"

// CreateRetailerRequest entrada para crear un minorista.
type CreateRetailerRequest struct {
	StoreID string `json:"store_id" validate:"required"`
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Contact string `json:"contact"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// UpdateRetailerRequest entrada para actualizar un minorista (parcial).
type UpdateRetailerRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Contact *string `json:"contact"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
	Status  *string `json:"status"`
}

// RetailerResponse salida de un minorista.
type RetailerResponse struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"store_id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RetailerListResponse lista paginada de minoristas.
type RetailerListResponse struct {
	Items []RetailerResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
