package entity

import "time"

// User representa un usuario del sistema con su rol y alcance.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         Role
	CompanyID    string // vacío para super_admin y retailer
	StoreID      string // vacío salvo manager/storeman/salesman
	RetailerID   string // vacío salvo retailer
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Actor construye el Actor correspondiente a este usuario.
func (u *User) Actor() Actor {
	return Actor{
		UserID:     u.ID,
		Role:       u.Role,
		CompanyID:  u.CompanyID,
		StoreID:    u.StoreID,
		RetailerID: u.RetailerID,
	}
}
