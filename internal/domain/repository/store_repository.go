package repository

import "github.com/jhoicas/repuestos-api/internal/domain/entity"

// StoreRepository define el puerto de persistencia para Store (DIP).
type StoreRepository interface {
	Create(store *entity.Store) error
	GetByID(id string) (*entity.Store, error)
	Update(store *entity.Store) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Store, error)
	// ListAll devuelve el universo completo de tiendas con su empresa (para AccessScope).
	ListAll() ([]entity.Store, error)
	Delete(id string) error
}
