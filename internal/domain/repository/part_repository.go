package repository

import "github.com/jhoicas/repuestos-api/internal/domain/entity"

// PartRepository define el puerto de persistencia para Part (DIP).
type PartRepository interface {
	Create(part *entity.Part) error
	GetByID(id string) (*entity.Part, error)
	GetByCompanyAndNumber(companyID, partNumber string) (*entity.Part, error)
	Update(part *entity.Part) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Part, error)
	Delete(id string) error
}
