package repository

import "github.com/jhoicas/repuestos-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	Update(company *entity.Company) error
	List(limit, offset int) ([]*entity.Company, error)
	// ListAll devuelve el universo completo de empresas (para AccessScope).
	ListAll() ([]entity.Company, error)
	Delete(id string) error
}
