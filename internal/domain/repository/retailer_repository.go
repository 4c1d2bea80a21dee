package repository

import "github.com/jhoicas/repuestos-api/internal/domain/entity"

// RetailerRepository define el puerto de persistencia para Retailer (DIP).
type RetailerRepository interface {
	Create(retailer *entity.Retailer) error
	GetByID(id string) (*entity.Retailer, error)
	Update(retailer *entity.Retailer) error
	ListByStore(storeID string, limit, offset int) ([]*entity.Retailer, error)
	// ListAll devuelve el universo completo de minoristas (para AccessScope).
	ListAll() ([]entity.Retailer, error)
	Delete(id string) error
}
