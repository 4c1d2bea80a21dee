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

var _ repository.PartRepository = (*PartRepo)(nil)

// PartRepo implementación del puerto PartRepository sobre PostgreSQL (usable con pool o tx).
type PartRepo struct {
	q Querier
}

// NewPartRepository construye el adaptador de persistencia para repuestos. Pasar pool o tx (Querier).
func NewPartRepository(q Querier) *PartRepo {
	return &PartRepo{q: q}
}

// Create persiste un nuevo repuesto.
func (r *PartRepo) Create(part *entity.Part) error {
	query := `
		INSERT INTO parts (id, company_id, part_number, name, description, unit_price, basic_discount, scheme_discount, additional_discount, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		part.ID, part.CompanyID, part.PartNumber, part.Name, part.Description,
		part.UnitPrice, part.BasicDiscount, part.SchemeDiscount, part.AdditionalDiscount,
		part.Stock, part.CreatedAt, part.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert part: %w", err)
	}
	return nil
}

// GetByID obtiene un repuesto por ID.
func (r *PartRepo) GetByID(id string) (*entity.Part, error) {
	query := `
		SELECT id, company_id, part_number, name, description, unit_price, basic_discount, scheme_discount, additional_discount, stock, created_at, updated_at
		FROM parts WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get part")
}

// GetByCompanyAndNumber obtiene un repuesto por empresa y número de parte.
func (r *PartRepo) GetByCompanyAndNumber(companyID, partNumber string) (*entity.Part, error) {
	query := `
		SELECT id, company_id, part_number, name, description, unit_price, basic_discount, scheme_discount, additional_discount, stock, created_at, updated_at
		FROM parts WHERE company_id = $1 AND part_number = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, companyID, partNumber), "get part by number")
}

func (r *PartRepo) scanOne(row pgx.Row, op string) (*entity.Part, error) {
	var p entity.Part
	err := row.Scan(
		&p.ID, &p.CompanyID, &p.PartNumber, &p.Name, &p.Description,
		&p.UnitPrice, &p.BasicDiscount, &p.SchemeDiscount, &p.AdditionalDiscount,
		&p.Stock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

// Update actualiza un repuesto existente.
func (r *PartRepo) Update(part *entity.Part) error {
	query := `
		UPDATE parts SET name = $2, description = $3, unit_price = $4, basic_discount = $5, scheme_discount = $6, additional_discount = $7, stock = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		part.ID, part.Name, part.Description, part.UnitPrice,
		part.BasicDiscount, part.SchemeDiscount, part.AdditionalDiscount,
		part.Stock, part.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update part: %w", err)
	}
	return nil
}

// ListByCompany lista repuestos de una empresa con paginación.
func (r *PartRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Part, error) {
	query := `
		SELECT id, company_id, part_number, name, description, unit_price, basic_discount, scheme_discount, additional_discount, stock, created_at, updated_at
		FROM parts WHERE company_id = $1 ORDER BY part_number LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Part
	for rows.Next() {
		var p entity.Part
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.PartNumber, &p.Name, &p.Description,
			&p.UnitPrice, &p.BasicDiscount, &p.SchemeDiscount, &p.AdditionalDiscount,
			&p.Stock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan part: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un repuesto por ID.
func (r *PartRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM parts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete part: %w", err)
	}
	return nil
}
