package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/repuestos-api/internal/domain/entity"
)

// Los tres descuentos se aplican en cascada sobre el subtotal, no sumados:
// 1000 × 2 con 10%/5%/2% → 2000 × 0.90 × 0.95 × 0.98 = 1675.80.
func TestOrderItem_LineTotalDescuentosEnCascada(t *testing.T) {
	item := entity.OrderItem{
		Quantity:           2,
		UnitPrice:          decimal.NewFromInt(1000),
		BasicDiscount:      decimal.NewFromInt(10),
		SchemeDiscount:     decimal.NewFromInt(5),
		AdditionalDiscount: decimal.NewFromInt(2),
	}
	assert.True(t, decimal.RequireFromString("1675.8").Equal(item.LineTotal()),
		"esperado 1675.8, obtenido %s", item.LineTotal())
}

func TestOrderItem_LineTotalSinDescuentos(t *testing.T) {
	item := entity.OrderItem{
		Quantity:  3,
		UnitPrice: decimal.RequireFromString("19.99"),
	}
	assert.True(t, decimal.RequireFromString("59.97").Equal(item.LineTotal()))
}

func TestOrder_TotalSumaLineas(t *testing.T) {
	ord := entity.Order{Items: []entity.OrderItem{
		{Quantity: 1, UnitPrice: decimal.NewFromInt(100)},
		{Quantity: 2, UnitPrice: decimal.NewFromInt(50), BasicDiscount: decimal.NewFromInt(50)},
	}}
	assert.True(t, decimal.NewFromInt(150).Equal(ord.Total()))
}

func TestOrder_AllPicked(t *testing.T) {
	assert.False(t, (&entity.Order{}).AllPicked(), "sin líneas no cuenta como recogido")
	assert.False(t, (&entity.Order{Items: []entity.OrderItem{{Picked: true}, {Picked: false}}}).AllPicked())
	assert.True(t, (&entity.Order{Items: []entity.OrderItem{{Picked: true}, {Picked: true}}}).AllPicked())
}

// Clone debe ser copia profunda: mutar la copia no toca el original.
func TestOrder_CloneEsCopiaProfunda(t *testing.T) {
	original := &entity.Order{
		ID:     "order-1",
		Status: entity.StatusProcessing,
		Items:  []entity.OrderItem{{ID: "a", Picked: false}},
		StatusHistory: []entity.StatusEntry{
			{Status: entity.StatusPending, ActorRole: entity.RoleManager},
		},
	}
	copia := original.Clone()
	copia.Status = entity.StatusPicked
	copia.Items[0].Picked = true
	copia.StatusHistory = append(copia.StatusHistory, entity.StatusEntry{Status: entity.StatusPicked})

	assert.Equal(t, entity.StatusProcessing, original.Status)
	assert.False(t, original.Items[0].Picked)
	require.Len(t, original.StatusHistory, 1)
}

func TestOrderStatus_Valid(t *testing.T) {
	for _, s := range []entity.OrderStatus{
		entity.StatusNew, entity.StatusPending, entity.StatusProcessing,
		entity.StatusHold, entity.StatusPicked, entity.StatusDispatched,
		entity.StatusCompleted, entity.StatusCancelled,
	} {
		assert.True(t, s.Valid())
	}
	assert.False(t, entity.OrderStatus("Shipped").Valid())
	assert.False(t, entity.OrderStatus("").Valid())
}
