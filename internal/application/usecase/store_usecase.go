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

// StoreUseCase casos de uso CRUD para tiendas.
type StoreUseCase struct {
	repo repository.StoreRepository
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(repo repository.StoreRepository) *StoreUseCase {
	return &StoreUseCase{repo: repo}
}

// Create crea una tienda. Requiere acceso a la empresa destino (super_admin o admin de esa empresa).
func (uc *StoreUseCase) Create(actor entity.Actor, in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	if !access.CanAccessCompany(actor, in.CompanyID) {
		return nil, domain.ErrScopeDenied
	}
	now := time.Now()
	store := &entity.Store{
		ID:        uuid.New().String(),
		CompanyID: in.CompanyID,
		Code:      in.Code,
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// GetByID obtiene una tienda por ID, verificando el alcance del actor.
func (uc *StoreUseCase) GetByID(actor entity.Actor, id string) (*dto.StoreResponse, error) {
	if !access.CanAccessStore(actor, id) {
		return nil, domain.ErrScopeDenied
	}
	store, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, nil
	}
	return toStoreResponse(store), nil
}

// Update actualiza una tienda dentro del alcance del actor.
func (uc *StoreUseCase) Update(actor entity.Actor, id string, in dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	if !access.CanAccessStore(actor, id) {
		return nil, domain.ErrScopeDenied
	}
	store, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, nil
	}
	if in.Name != nil {
		store.Name = *in.Name
	}
	if in.Address != nil {
		store.Address = *in.Address
	}
	if in.Phone != nil {
		store.Phone = *in.Phone
	}
	if in.Status != nil {
		store.Status = *in.Status
	}
	store.UpdatedAt = time.Now()
	if err := uc.repo.Update(store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// List lista las tiendas visibles para el actor con paginación.
func (uc *StoreUseCase) List(actor entity.Actor, limit, offset int) (*dto.StoreListResponse, error) {
	all, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	visible := access.AccessibleStores(actor, all)
	allowed := make(map[string]bool, len(visible))
	for _, id := range visible {
		allowed[id] = true
	}
	items := make([]dto.StoreResponse, 0, len(visible))
	for i := range all {
		if allowed[all[i].ID] {
			items = append(items, *toStoreResponse(&all[i]))
		}
	}
	items = paginate(items, limit, offset)
	return &dto.StoreListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una tienda. Requiere acceso a la tienda y rol admin o superior.
func (uc *StoreUseCase) Delete(actor entity.Actor, id string) error {
	if actor.Role != entity.RoleSuperAdmin && actor.Role != entity.RoleAdmin {
		return domain.ErrScopeDenied
	}
	if !access.CanAccessStore(actor, id) {
		return domain.ErrScopeDenied
	}
	return uc.repo.Delete(id)
}

func toStoreResponse(s *entity.Store) *dto.StoreResponse {
	if s == nil {
		return nil
	}
	return &dto.StoreResponse{
		ID:        s.ID,
		CompanyID: s.CompanyID,
		Code:      s.Code,
		Name:      s.Name,
		Address:   s.Address,
		Phone:     s.Phone,
		Status:    s.Status,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
