package dto

import "time"

// RegisterRequest entrada para registrar un usuario.
// Los campos de alcance dependen del rol: company_id para admin,
// company_id+store_id para manager/storeman/salesman, retailer_id para retailer.
type RegisterRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Name       string `json:"name"`
	Role       string `json:"role" validate:"required"`
	CompanyID  string `json:"company_id"`
	StoreID    string `json:"store_id"`
	RetailerID string `json:"retailer_id"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin hash).
type UserResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	CompanyID  string    `json:"company_id,omitempty"`
	StoreID    string    `json:"store_id,omitempty"`
	RetailerID string    `json:"retailer_id,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LoginResponse token JWT más el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UpdateUserStatusRequest activa/desactiva un usuario.
type UpdateUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive suspended"`
}

// UserListResponse lista paginada de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// MeResponse identidad y alcance del actor autenticado.
type MeResponse struct {
	User       UserResponse `json:"user"`
	ScopeLabel string       `json:"scope_label"`
}
