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

// RetailerUseCase casos de uso CRUD para minoristas.
type RetailerUseCase struct {
	repo      repository.RetailerRepository
	storeRepo repository.StoreRepository
}

// NewRetailerUseCase construye el caso de uso.
func NewRetailerUseCase(repo repository.RetailerRepository, storeRepo repository.StoreRepository) *RetailerUseCase {
	return &RetailerUseCase{repo: repo, storeRepo: storeRepo}
}

// Create crea un minorista adscrito a una tienda dentro del alcance del actor.
func (uc *RetailerUseCase) Create(actor entity.Actor, in dto.CreateRetailerRequest) (*dto.RetailerResponse, error) {
	if !access.CanAccessStore(actor, in.StoreID) {
		return nil, domain.ErrScopeDenied
	}
	store, err := uc.storeRepo.GetByID(in.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	retailer := &entity.Retailer{
		ID:        uuid.New().String(),
		StoreID:   store.ID,
		CompanyID: store.CompanyID,
		Name:      in.Name,
		Contact:   in.Contact,
		Phone:     in.Phone,
		Email:     in.Email,
		Address:   in.Address,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(retailer); err != nil {
		return nil, err
	}
	return toRetailerResponse(retailer), nil
}

// GetByID obtiene un minorista por ID, verificando el alcance del actor.
func (uc *RetailerUseCase) GetByID(actor entity.Actor, id string) (*dto.RetailerResponse, error) {
	if !access.CanAccessRetailer(actor, id) {
		return nil, domain.ErrScopeDenied
	}
	retailer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if retailer == nil {
		return nil, nil
	}
	return toRetailerResponse(retailer), nil
}

// Update actualiza un minorista dentro del alcance del actor.
func (uc *RetailerUseCase) Update(actor entity.Actor, id string, in dto.UpdateRetailerRequest) (*dto.RetailerResponse, error) {
	if !access.CanAccessRetailer(actor, id) {
		return nil, domain.ErrScopeDenied
	}
	retailer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if retailer == nil {
		return nil, nil
	}
	if in.Name != nil {
		retailer.Name = *in.Name
	}
	if in.Contact != nil {
		retailer.Contact = *in.Contact
	}
	if in.Phone != nil {
		retailer.Phone = *in.Phone
	}
	if in.Email != nil {
		retailer.Email = *in.Email
	}
	if in.Address != nil {
		retailer.Address = *in.Address
	}
	if in.Status != nil {
		retailer.Status = *in.Status
	}
	retailer.UpdatedAt = time.Now()
	if err := uc.repo.Update(retailer); err != nil {
		return nil, err
	}
	return toRetailerResponse(retailer), nil
}

// List lista los minoristas visibles para el actor con paginación.
func (uc *RetailerUseCase) List(actor entity.Actor, limit, offset int) (*dto.RetailerListResponse, error) {
	all, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	visible := access.AccessibleRetailers(actor, all)
	allowed := make(map[string]bool, len(visible))
	for _, id := range visible {
		allowed[id] = true
	}
	items := make([]dto.RetailerResponse, 0, len(visible))
	for i := range all {
		if allowed[all[i].ID] {
			items = append(items, *toRetailerResponse(&all[i]))
		}
	}
	items = paginate(items, limit, offset)
	return &dto.RetailerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un minorista. Solo roles operativos con acceso a él.
func (uc *RetailerUseCase) Delete(actor entity.Actor, id string) error {
	if !actor.Role.Operational() || !access.CanAccessRetailer(actor, id) {
		return domain.ErrScopeDenied
	}
	return uc.repo.Delete(id)
}

func toRetailerResponse(r *entity.Retailer) *dto.RetailerResponse {
	if r == nil {
		return nil
	}
	return &dto.RetailerResponse{
		ID:        r.ID,
		StoreID:   r.StoreID,
		CompanyID: r.CompanyID,
		Name:      r.Name,
		Contact:   r.Contact,
		Phone:     r.Phone,
		Email:     r.Email,
		Address:   r.Address,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
