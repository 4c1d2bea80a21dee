package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/repuestos-api/internal/domain"
	"github.com/jhoicas/repuestos-api/internal/domain/entity"
	"github.com/jhoicas/repuestos-api/internal/domain/repository"
)

var _ repository.RetailerRepository = (*RetailerRepo)(nil)

// RetailerRepo implementación del puerto RetailerRepository sobre PostgreSQL (usable con pool o tx).
type RetailerRepo struct {
	q Querier
}

// NewRetailerRepository construye el adaptador de persistencia para minoristas. Pasar pool o tx (Querier).
func NewRetailerRepository(q Querier) *RetailerRepo {
	return &RetailerRepo{q: q}
}

// Create persiste un nuevo minorista.
func (r *RetailerRepo) Create(retailer *entity.Retailer) error {
	query := `
		INSERT INTO retailers (id, store_id, company_id, name, contact, phone, email, address, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		retailer.ID, retailer.StoreID, retailer.CompanyID, retailer.Name,
		retailer.Contact, retailer.Phone, retailer.Email, retailer.Address,
		retailer.Status, retailer.CreatedAt, retailer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert retailer: %w", err)
	}
	return nil
}

// GetByID obtiene un minorista por ID.
func (r *RetailerRepo) GetByID(id string) (*entity.Retailer, error) {
	query := `
		SELECT id, store_id, company_id, name, contact, phone, email, address, status, created_at, updated_at
		FROM retailers WHERE id = $1`
	var rt entity.Retailer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rt.ID, &rt.StoreID, &rt.CompanyID, &rt.Name, &rt.Contact, &rt.Phone,
		&rt.Email, &rt.Address, &rt.Status, &rt.CreatedAt, &rt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get retailer: %w", err)
	}
	return &rt, nil
}

// Update actualiza un minorista existente.
func (r *RetailerRepo) Update(retailer *entity.Retailer) error {
	query := `
		UPDATE retailers SET name = $2, contact = $3, phone = $4, email = $5, address = $6, status = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		retailer.ID, retailer.Name, retailer.Contact, retailer.Phone,
		retailer.Email, retailer.Address, retailer.Status, retailer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update retailer: %w", err)
	}
	return nil
}

// ListByStore lista minoristas de una tienda con paginación.
func (r *RetailerRepo) ListByStore(storeID string, limit, offset int) ([]*entity.Retailer, error) {
	query := `
		SELECT id, store_id, company_id, name, contact, phone, email, address, status, created_at, updated_at
		FROM retailers WHERE store_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, storeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list retailers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Retailer
	for rows.Next() {
		var rt entity.Retailer
		if err := rows.Scan(&rt.ID, &rt.StoreID, &rt.CompanyID, &rt.Name, &rt.Contact,
			&rt.Phone, &rt.Email, &rt.Address, &rt.Status, &rt.CreatedAt, &rt.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan retailer: %w", err)
		}
		list = append(list, &rt)
	}
	return list, rows.Err()
}

// ListAll devuelve el universo completo de minoristas (para AccessScope).
func (r *RetailerRepo) ListAll() ([]entity.Retailer, error) {
	query := `
		SELECT id, store_id, company_id, name, contact, phone, email, address, status, created_at, updated_at
		FROM retailers ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all retailers: %w", err)
	}
	defer rows.Close()
	var list []entity.Retailer
	for rows.Next() {
		var rt entity.Retailer
		if err := rows.Scan(&rt.ID, &rt.StoreID, &rt.CompanyID, &rt.Name, &rt.Contact,
			&rt.Phone, &rt.Email, &rt.Address, &rt.Status, &rt.CreatedAt, &rt.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan retailer: %w", err)
		}
		list = append(list, rt)
	}
	return list, rows.Err()
}

// Delete elimina un minorista por ID.
func (r *RetailerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM retailers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete retailer: %w", err)
	}
	return nil
}
