package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/repuestos-api/internal/application/dto"
	"github.com/jhoicas/repuestos-api/internal/domain"
	"github.com/jhoicas/repuestos-api/internal/domain/access"
	"github.com/jhoicas/repuestos-api/internal/domain/entity"
	"github.com/jhoicas/repuestos-api/internal/domain/repository"
)

// CompanyUseCase casos de uso CRUD para empresas. Solo super_admin crea o
// borra empresas; el resto de roles ve únicamente la suya (AccessScope).
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create crea una nueva empresa. Solo super_admin.
func (uc *CompanyUseCase) Create(actor entity.Actor, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if actor.Role != entity.RoleSuperAdmin {
		return nil, domain.ErrScopeDenied
	}
	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.Name,
		TaxID:     in.TaxID,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByID obtiene una empresa por ID, verificando el alcance del actor.
func (uc *CompanyUseCase) GetByID(actor entity.Actor, id string) (*dto.CompanyResponse, error) {
	if !access.CanAccessCompany(actor, id) {
		return nil, domain.ErrScopeDenied
	}
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return toCompanyResponse(company), nil
}

// Update actualiza una empresa dentro del alcance del actor.
func (uc *CompanyUseCase) Update(actor entity.Actor, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if !access.CanAccessCompany(actor, id) {
		return nil, domain.ErrScopeDenied
	}
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.TaxID != nil {
		company.TaxID = *in.TaxID
	}
	if in.Address != nil {
		company.Address = *in.Address
	}
	if in.Phone != nil {
		company.Phone = *in.Phone
	}
	if in.Email != nil {
		company.Email = *in.Email
	}
	if in.Status != nil {
		company.Status = *in.Status
	}
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// List lista las empresas visibles para el actor con paginación.
func (uc *CompanyUseCase) List(actor entity.Actor, limit, offset int) (*dto.CompanyListResponse, error) {
	all, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	visible := access.AccessibleCompanies(actor, all)
	allowed := make(map[string]bool, len(visible))
	for _, id := range visible {
		allowed[id] = true
	}
	items := make([]dto.CompanyResponse, 0, len(visible))
	for i := range all {
		if allowed[all[i].ID] {
			items = append(items, *toCompanyResponse(&all[i]))
		}
	}
	items = paginate(items, limit, offset)
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una empresa. Solo super_admin.
func (uc *CompanyUseCase) Delete(actor entity.Actor, id string) error {
	if actor.Role != entity.RoleSuperAdmin {
		return domain.ErrScopeDenied
	}
	return uc.repo.Delete(id)
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		TaxID:     c.TaxID,
		Address:   c.Address,
		Phone:     c.Phone,
		Email:     c.Email,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// paginate corte en memoria para los listados filtrados por alcance.
func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if limit <= 0 || end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
