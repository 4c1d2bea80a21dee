package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/repuestos-api/internal/application/dto"
	"github.com/jhoicas/repuestos-api/internal/domain"
	"github.com/jhoicas/repuestos-api/internal/domain/access"
	"github.com/jhoicas/repuestos-api/internal/domain/entity"
	"github.com/jhoicas/repuestos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// PartUseCase casos de uso CRUD para el catálogo de repuestos de una empresa.
type PartUseCase struct {
	repo repository.PartRepository
}

// NewPartUseCase construye el caso de uso.
func NewPartUseCase(repo repository.PartRepository) *PartUseCase {
	return &PartUseCase{repo: repo}
}

// Create crea un repuesto en el catálogo de la empresa indicada.
func (uc *PartUseCase) Create(actor entity.Actor, companyID string, in dto.CreatePartRequest) (*dto.PartResponse, error) {
	if !access.CanAccessCompany(actor, companyID) {
		return nil, domain.ErrScopeDenied
	}
	if !validDiscount(in.BasicDiscount) || !validDiscount(in.SchemeDiscount) || !validDiscount(in.AdditionalDiscount) {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCompanyAndNumber(companyID, in.PartNumber)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	part := &entity.Part{
		ID:                 uuid.New().String(),
		CompanyID:          companyID,
		PartNumber:         in.PartNumber,
		Name:               in.Name,
		Description:        in.Description,
		UnitPrice:          in.UnitPrice,
		BasicDiscount:      in.BasicDiscount,
		SchemeDiscount:     in.SchemeDiscount,
		AdditionalDiscount: in.AdditionalDiscount,
		Stock:              in.Stock,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(part); err != nil {
		return nil, err
	}
	return toPartResponse(part), nil
}

// GetByID obtiene un repuesto por ID, verificando el alcance sobre su empresa.
func (uc *PartUseCase) GetByID(actor entity.Actor, id string) (*dto.PartResponse, error) {
	part, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, nil
	}
	if !access.CanAccessCompany(actor, part.CompanyID) {
		return nil, domain.ErrScopeDenied
	}
	return toPartResponse(part), nil
}

// Update actualiza un repuesto dentro del alcance del actor.
func (uc *PartUseCase) Update(actor entity.Actor, id string, in dto.UpdatePartRequest) (*dto.PartResponse, error) {
	part, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, nil
	}
	if !access.CanAccessCompany(actor, part.CompanyID) {
		return nil, domain.ErrScopeDenied
	}
	if in.Name != nil {
		part.Name = *in.Name
	}
	if in.Description != nil {
		part.Description = *in.Description
	}
	if in.UnitPrice != nil {
		part.UnitPrice = *in.UnitPrice
	}
	if in.BasicDiscount != nil {
		if !validDiscount(*in.BasicDiscount) {
			return nil, domain.ErrInvalidInput
		}
		part.BasicDiscount = *in.BasicDiscount
	}
	if in.SchemeDiscount != nil {
		if !validDiscount(*in.SchemeDiscount) {
			return nil, domain.ErrInvalidInput
		}
		part.SchemeDiscount = *in.SchemeDiscount
	}
	if in.AdditionalDiscount != nil {
		if !validDiscount(*in.AdditionalDiscount) {
			return nil, domain.ErrInvalidInput
		}
		part.AdditionalDiscount = *in.AdditionalDiscount
	}
	if in.Stock != nil {
		part.Stock = *in.Stock
	}
	part.UpdatedAt = time.Now()
	if err := uc.repo.Update(part); err != nil {
		return nil, err
	}
	return toPartResponse(part), nil
}

// List lista el catálogo de una empresa con paginación.
func (uc *PartUseCase) List(actor entity.Actor, companyID string, limit, offset int) (*dto.PartListResponse, error) {
	if !access.CanAccessCompany(actor, companyID) {
		return nil, domain.ErrScopeDenied
	}
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PartResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPartResponse(p))
	}
	return &dto.PartListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un repuesto dentro del alcance del actor.
func (uc *PartUseCase) Delete(actor entity.Actor, id string) error {
	part, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if part == nil {
		return nil
	}
	if !access.CanAccessCompany(actor, part.CompanyID) {
		return domain.ErrScopeDenied
	}
	return uc.repo.Delete(id)
}

// validDiscount porcentaje en [0, 100].
func validDiscount(d decimal.Decimal) bool {
	return d.GreaterThanOrEqual(decimal.Zero) && d.LessThanOrEqual(decimal.NewFromInt(100))
}

func toPartResponse(p *entity.Part) *dto.PartResponse {
	if p == nil {
		return nil
	}
	return &dto.PartResponse{
		ID:                 p.ID,
		CompanyID:          p.CompanyID,
		PartNumber:         p.PartNumber,
		Name:               p.Name,
		Description:        p.Description,
		UnitPrice:          p.UnitPrice,
		BasicDiscount:      p.BasicDiscount,
		SchemeDiscount:     p.SchemeDiscount,
		AdditionalDiscount: p.AdditionalDiscount,
		Stock:              p.Stock,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}
