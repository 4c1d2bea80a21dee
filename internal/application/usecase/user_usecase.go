package usecase

import (
	"time"

	"github.com/jhoicas/repuestos-api/internal/application/dto"
	"github.com/jhoicas/repuestos-api/internal/domain"
	"github.com/jhoicas/repuestos-api/internal/domain/access"
	"github.com/jhoicas/repuestos-api/internal/domain/entity"
	"github.com/jhoicas/repuestos-api/internal/domain/repository"
)

// UserUseCase administración de usuarios (listado y estado).
// El alta de usuarios vive en application/auth.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// ListByCompany lista usuarios de una empresa dentro del alcance del actor.
func (uc *UserUseCase) ListByCompany(actor entity.Actor, companyID string, limit, offset int) ([]dto.UserResponse, error) {
	if !access.CanAccessCompany(actor, companyID) {
		return nil, domain.ErrScopeDenied
	}
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, dto.UserResponse{
			ID:         u.ID,
			Email:      u.Email,
			Name:       u.Name,
			Role:       string(u.Role),
			CompanyID:  u.CompanyID,
			StoreID:    u.StoreID,
			RetailerID: u.RetailerID,
			Status:     u.Status,
			CreatedAt:  u.CreatedAt,
			UpdatedAt:  u.UpdatedAt,
		})
	}
	return items, nil
}

// SetStatus activa/desactiva un usuario de la empresa del actor.
func (uc *UserUseCase) SetStatus(actor entity.Actor, userID, status string) error {
	if status != "active" && status != "inactive" && status != "suspended" {
		return domain.ErrInvalidInput
	}
	user, err := uc.repo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	// super_admin administra cualquier usuario; admin solo los de su empresa.
	if actor.Role != entity.RoleSuperAdmin && !access.CanAccessCompany(actor, user.CompanyID) {
		return domain.ErrScopeDenied
	}
	user.Status = status
	user.UpdatedAt = time.Now()
	return uc.repo.Update(user)
}
