package orders_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/repuestos-api/internal/application/dto"
	"github.com/jhoicas/repuestos-api/internal/application/orders"
	"github.com/jhoicas/repuestos-api/internal/domain"
	"github.com/jhoicas/repuestos-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakePartRepo struct {
	partes map[string]*entity.Part
}

func (r *fakePartRepo) Create(p *entity.Part) error { r.partes[p.ID] = p; return nil }
func (r *fakePartRepo) GetByID(id string) (*entity.Part, error) {
	return r.partes[id], nil
}
func (r *fakePartRepo) GetByCompanyAndNumber(companyID, partNumber string) (*entity.Part, error) {
	for _, p := range r.partes {
		if p.CompanyID == companyID && p.PartNumber == partNumber {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakePartRepo) Update(*entity.Part) error { return nil }
func (r *fakePartRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Part, error) {
	return nil, nil
}
func (r *fakePartRepo) Delete(string) error { return nil }

type fakeRetailerRepo struct {
	minoristas map[string]*entity.Retailer
}

func (r *fakeRetailerRepo) Create(m *entity.Retailer) error { r.minoristas[m.ID] = m; return nil }
func (r *fakeRetailerRepo) GetByID(id string) (*entity.Retailer, error) {
	return r.minoristas[id], nil
}
func (r *fakeRetailerRepo) Update(*entity.Retailer) error { return nil }
func (r *fakeRetailerRepo) ListByStore(storeID string, limit, offset int) ([]*entity.Retailer, error) {
	return nil, nil
}
func (r *fakeRetailerRepo) ListAll() ([]entity.Retailer, error) { return nil, nil }
func (r *fakeRetailerRepo) Delete(string) error                 { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

func buildCreateOrder() (*orders.CreateOrderUseCase, *fakeOrderRepo) {
	orderRepo := newFakeOrderRepo()
	partRepo := &fakePartRepo{partes: map[string]*entity.Part{
		"part-1": {
			ID: "part-1", CompanyID: "acme", PartNumber: "BRK-1001",
			UnitPrice:     decimal.NewFromInt(1000),
			BasicDiscount: decimal.NewFromInt(10),
			Stock:         50,
		},
		"part-ajena": {
			ID: "part-ajena", CompanyID: "globex", PartNumber: "GLX-1",
			UnitPrice: decimal.NewFromInt(5),
		},
	}}
	retailerRepo := &fakeRetailerRepo{minoristas: map[string]*entity.Retailer{
		"ret-7": {ID: "ret-7", StoreID: "NYC001", CompanyID: "acme", Name: "Taller Pérez"},
	}}
	tx := &fakeTxRunner{orderRepo: orderRepo, partRepo: partRepo}
	return orders.NewCreateOrderUseCase(tx, retailerRepo), orderRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// El pedido nace en New, con historial vacío y el precio y los descuentos del
// catálogo congelados en la línea.
func TestCreateOrder_CongelaPreciosDelCatalogo(t *testing.T) {
	uc, repo := buildCreateOrder()

	out, err := uc.Execute(context.Background(), managerNYC, dto.CreateOrderRequest{
		StoreID:    "NYC001",
		RetailerID: "ret-7",
		Urgent:     true,
		Items: []dto.CreateOrderItemRequest{
			{PartID: "part-1", Quantity: 2},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "New", out.Status)
	assert.Empty(t, out.StatusHistory, "el historial nace vacío: solo transiciones lo alimentan")
	assert.True(t, out.Urgent)
	assert.Equal(t, "acme", out.CompanyID, "la empresa se deriva del minorista")
	require.Len(t, out.Items, 1)
	assert.Equal(t, "BRK-1001", out.Items[0].PartNumber)
	assert.True(t, decimal.NewFromInt(1000).Equal(out.Items[0].UnitPrice))
	assert.True(t, decimal.NewFromInt(10).Equal(out.Items[0].BasicDiscount))
	assert.True(t, decimal.NewFromInt(1800).Equal(out.Items[0].LineTotal))

	guardado, _ := repo.GetByID(out.ID)
	require.NotNil(t, guardado, "el pedido quedó persistido")
	assert.Equal(t, entity.StatusNew, guardado.Status)
}

func TestCreateOrder_RetailerCreaSuPropioPedido(t *testing.T) {
	uc, _ := buildCreateOrder()

	out, err := uc.Execute(context.Background(), retailer7, dto.CreateOrderRequest{
		StoreID:    "NYC001",
		RetailerID: "ret-7",
		Items:      []dto.CreateOrderItemRequest{{PartID: "part-1", Quantity: 1}},
	})

	require.NoError(t, err)
	assert.Equal(t, "ret-7", out.RetailerID)
}

func TestCreateOrder_RetailerNoCreaParaOtro(t *testing.T) {
	uc, _ := buildCreateOrder()
	otro := entity.Actor{UserID: "u-x", Role: entity.RoleRetailer, RetailerID: "ret-99"}

	_, err := uc.Execute(context.Background(), otro, dto.CreateOrderRequest{
		StoreID:    "NYC001",
		RetailerID: "ret-7",
		Items:      []dto.CreateOrderItemRequest{{PartID: "part-1", Quantity: 1}},
	})

	assert.True(t, errors.Is(err, domain.ErrScopeDenied))
}

func TestCreateOrder_RepuestoDeOtraEmpresa(t *testing.T) {
	uc, _ := buildCreateOrder()

	_, err := uc.Execute(context.Background(), managerNYC, dto.CreateOrderRequest{
		StoreID:    "NYC001",
		RetailerID: "ret-7",
		Items:      []dto.CreateOrderItemRequest{{PartID: "part-ajena", Quantity: 1}},
	})

	assert.True(t, errors.Is(err, domain.ErrNotFound),
		"un repuesto de otra empresa no existe para este pedido")
}

func TestCreateOrder_CantidadInvalida(t *testing.T) {
	uc, _ := buildCreateOrder()

	_, err := uc.Execute(context.Background(), managerNYC, dto.CreateOrderRequest{
		StoreID:    "NYC001",
		RetailerID: "ret-7",
		Items:      []dto.CreateOrderItemRequest{{PartID: "part-1", Quantity: 0}},
	})

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestCreateOrder_SinLineas(t *testing.T) {
	uc, _ := buildCreateOrder()

	_, err := uc.Execute(context.Background(), managerNYC, dto.CreateOrderRequest{
		StoreID:    "NYC001",
		RetailerID: "ret-7",
	})

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestCreateOrder_MinoristaDeOtraTienda(t *testing.T) {
	uc, _ := buildCreateOrder()
	adminACME := entity.Actor{UserID: "u-ad", Role: entity.RoleAdmin, CompanyID: "acme"}

	_, err := uc.Execute(context.Background(), adminACME, dto.CreateOrderRequest{
		StoreID:    "LAX001", // el minorista ret-7 pertenece a NYC001
		RetailerID: "ret-7",
		Items:      []dto.CreateOrderItemRequest{{PartID: "part-1", Quantity: 1}},
	})

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
