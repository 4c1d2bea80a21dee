package order_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/repuestos-api/internal/domain/entity"
	"github.com/jhoicas/repuestos-api/internal/domain/order"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// pedidoEn construye un pedido mínimo en el estado indicado con las líneas dadas.
func pedidoEn(status entity.OrderStatus, picked ...bool) *entity.Order {
	items := make([]entity.OrderItem, 0, len(picked))
	for i, p := range picked {
		items = append(items, entity.OrderItem{
			ID:     string(rune('a' + i)),
			Picked: p,
		})
	}
	return &entity.Order{
		ID:     "order-1",
		Number: "ORD-TEST0001",
		Status: status,
		Items:  items,
	}
}

// todosLosEstados los ocho estados conocidos, para recorrer pares.
var todosLosEstados = []entity.OrderStatus{
	entity.StatusNew, entity.StatusPending, entity.StatusProcessing,
	entity.StatusHold, entity.StatusPicked, entity.StatusDispatched,
	entity.StatusCompleted, entity.StatusCancelled,
}

// ──────────────────────────────────────────────────────────────────────────────
// Tabla de transiciones
// ──────────────────────────────────────────────────────────────────────────────

// Las transiciones fuera de la tabla deben rechazarse sin mutar el pedido.
func TestTransition_ParesIlegalesNoMutan(t *testing.T) {
	ilegales := []struct {
		from, to entity.OrderStatus
	}{
		{entity.StatusNew, entity.StatusProcessing},
		{entity.StatusNew, entity.StatusPicked},
		{entity.StatusNew, entity.StatusDispatched},
		{entity.StatusNew, entity.StatusCompleted},
		{entity.StatusPending, entity.StatusNew},
		{entity.StatusPending, entity.StatusPicked},
		{entity.StatusPending, entity.StatusCompleted},
		{entity.StatusProcessing, entity.StatusNew},
		{entity.StatusProcessing, entity.StatusPending},
		{entity.StatusProcessing, entity.StatusDispatched},
		{entity.StatusPicked, entity.StatusCancelled},
		{entity.StatusPicked, entity.StatusCompleted},
		{entity.StatusDispatched, entity.StatusCancelled},
		{entity.StatusDispatched, entity.StatusHold},
		{entity.StatusHold, entity.StatusCompleted},
	}
	for _, tc := range ilegales {
		ord := pedidoEn(tc.from, true)
		err := order.Transition(ord, tc.to, entity.RoleManager, "")

		var invalidErr *order.InvalidTransitionError
		require.ErrorAs(t, err, &invalidErr, "%s → %s debe ser inválida", tc.from, tc.to)
		assert.Equal(t, tc.from, invalidErr.From)
		assert.Equal(t, tc.to, invalidErr.To)
		assert.Equal(t, tc.from, ord.Status, "el estado no debe cambiar en rechazo")
		assert.Empty(t, ord.StatusHistory, "el historial no debe crecer en rechazo")
	}
}

// Las transiciones de la tabla (salvo la guarda de picking) deben pasar y
// agregar exactamente una entrada al historial.
func TestTransition_ParesLegalesAgreganHistorial(t *testing.T) {
	legales := []struct {
		from, to entity.OrderStatus
	}{
		{entity.StatusNew, entity.StatusPending},
		{entity.StatusNew, entity.StatusHold},
		{entity.StatusNew, entity.StatusCancelled},
		{entity.StatusPending, entity.StatusProcessing},
		{entity.StatusPending, entity.StatusHold},
		{entity.StatusPending, entity.StatusCancelled},
		{entity.StatusProcessing, entity.StatusHold},
		{entity.StatusProcessing, entity.StatusCancelled},
		{entity.StatusHold, entity.StatusNew},
		{entity.StatusHold, entity.StatusPending},
		{entity.StatusHold, entity.StatusProcessing},
		{entity.StatusHold, entity.StatusPicked},
		{entity.StatusHold, entity.StatusDispatched},
		{entity.StatusHold, entity.StatusCancelled},
		{entity.StatusPicked, entity.StatusDispatched},
		{entity.StatusPicked, entity.StatusHold},
		{entity.StatusDispatched, entity.StatusCompleted},
	}
	for _, tc := range legales {
		ord := pedidoEn(tc.from, false) // ninguna línea recogida: la tabla basta
		antes := time.Now()
		err := order.Transition(ord, tc.to, entity.RoleStoreman, "")

		require.NoError(t, err, "%s → %s debe ser legal", tc.from, tc.to)
		assert.Equal(t, tc.to, ord.Status)
		require.Len(t, ord.StatusHistory, 1, "exactamente una entrada por transición")
		entrada := ord.StatusHistory[0]
		assert.Equal(t, tc.to, entrada.Status)
		assert.Equal(t, entity.RoleStoreman, entrada.ActorRole)
		assert.False(t, entrada.Timestamp.Before(antes), "timestamp no retrocede")
	}
}

// Transiciones sucesivas: el historial es append-only y los timestamps son
// monótonos no decrecientes.
func TestTransition_HistorialAppendOnlyYMonotono(t *testing.T) {
	ord := pedidoEn(entity.StatusNew, true)
	ruta := []entity.OrderStatus{
		entity.StatusPending,
		entity.StatusProcessing,
		entity.StatusPicked,
		entity.StatusDispatched,
		entity.StatusCompleted,
	}
	for _, destino := range ruta {
		require.NoError(t, order.Transition(ord, destino, entity.RoleManager, ""))
	}
	require.Len(t, ord.StatusHistory, len(ruta))
	for i := 1; i < len(ord.StatusHistory); i++ {
		prev, cur := ord.StatusHistory[i-1], ord.StatusHistory[i]
		assert.False(t, cur.Timestamp.Before(prev.Timestamp),
			"timestamps monótonos: entrada %d no puede preceder a la %d", i, i-1)
	}
	assert.Equal(t, entity.StatusCompleted, ord.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Guarda de picking: Processing → Picked
// ──────────────────────────────────────────────────────────────────────────────

// Escenario: manager de la tienda NYC001, pedido en Processing con una línea
// sin recoger → ItemsNotPicked y el pedido queda en Processing.
func TestTransition_GuardaPicking_LineaSinRecoger(t *testing.T) {
	ord := pedidoEn(entity.StatusProcessing, true, false)
	ord.StoreID = "NYC001"

	err := order.Transition(ord, entity.StatusPicked, entity.RoleManager, "")

	require.Error(t, err)
	assert.True(t, errors.Is(err, order.ErrItemsNotPicked),
		"la guarda debe distinguirse de una transición inválida")
	assert.Equal(t, entity.StatusProcessing, ord.Status, "el pedido queda en Processing")
	assert.Empty(t, ord.StatusHistory)
}

// Con todas las líneas recogidas la guarda pasa.
func TestTransition_GuardaPicking_TodasRecogidas(t *testing.T) {
	ord := pedidoEn(entity.StatusProcessing, true, true, true)

	err := order.Transition(ord, entity.StatusPicked, entity.RoleStoreman, "")

	require.NoError(t, err)
	assert.Equal(t, entity.StatusPicked, ord.Status)
	require.Len(t, ord.StatusHistory, 1)
}

// Un pedido sin líneas no se considera recogido.
func TestTransition_GuardaPicking_PedidoSinLineas(t *testing.T) {
	ord := pedidoEn(entity.StatusProcessing)

	err := order.Transition(ord, entity.StatusPicked, entity.RoleStoreman, "")

	assert.True(t, errors.Is(err, order.ErrItemsNotPicked))
	assert.Equal(t, entity.StatusProcessing, ord.Status)
}

// La guarda solo aplica al par Processing → Picked: Hold → Picked pasa aunque
// haya líneas sin recoger (la fila de Hold lo permite sin precondición).
func TestTransition_GuardaSoloAplicaDesdeProcessing(t *testing.T) {
	ord := pedidoEn(entity.StatusHold, false, false)

	err := order.Transition(ord, entity.StatusPicked, entity.RoleManager, "")

	require.NoError(t, err)
	assert.Equal(t, entity.StatusPicked, ord.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Notas y Remark
// ──────────────────────────────────────────────────────────────────────────────

// Escenario: pedido en Picked despachado con notas → éxito, la entrada del
// historial conserva las notas y Remark se actualiza.
func TestTransition_NotasQuedanEnHistorialYRemark(t *testing.T) {
	ord := pedidoEn(entity.StatusPicked, true)
	ord.Remark = "original"

	err := order.Transition(ord, entity.StatusDispatched, entity.RoleManager, "sent via courier")

	require.NoError(t, err)
	assert.Equal(t, entity.StatusDispatched, ord.Status)
	require.Len(t, ord.StatusHistory, 1)
	assert.Equal(t, "sent via courier", ord.StatusHistory[0].Notes)
	assert.Equal(t, "sent via courier", ord.Remark, "notas no vacías sobreescriben Remark")
}

// Notas vacías no tocan el Remark existente.
func TestTransition_NotasVaciasNoTocanRemark(t *testing.T) {
	ord := pedidoEn(entity.StatusNew, true)
	ord.Remark = "urgente: cliente espera"

	require.NoError(t, order.Transition(ord, entity.StatusPending, entity.RoleAdmin, ""))
	assert.Equal(t, "urgente: cliente espera", ord.Remark)
}

// ──────────────────────────────────────────────────────────────────────────────
// Estados terminales
// ──────────────────────────────────────────────────────────────────────────────

// Completed y Cancelled no tienen salida: ningún destino es legal desde ellos.
func TestTransition_EstadosTerminalesSinSalida(t *testing.T) {
	for _, terminal := range []entity.OrderStatus{entity.StatusCompleted, entity.StatusCancelled} {
		assert.True(t, order.Terminal(terminal))
		assert.Empty(t, order.NextStatuses(pedidoEn(terminal)),
			"%s no debe ofrecer destinos", terminal)
		for _, destino := range todosLosEstados {
			ord := pedidoEn(terminal, true)
			err := order.Transition(ord, destino, entity.RoleAdmin, "")
			assert.Error(t, err, "%s → %s nunca debe pasar", terminal, destino)
			assert.Equal(t, terminal, ord.Status)
		}
	}
}

func TestTerminal_EstadosNoTerminales(t *testing.T) {
	for _, s := range []entity.OrderStatus{
		entity.StatusNew, entity.StatusPending, entity.StatusProcessing,
		entity.StatusHold, entity.StatusPicked, entity.StatusDispatched,
	} {
		assert.False(t, order.Terminal(s), "%s tiene salidas", s)
	}
	assert.False(t, order.Terminal(entity.OrderStatus("Desconocido")),
		"un estado desconocido no es terminal, es inválido")
}

// ──────────────────────────────────────────────────────────────────────────────
// NextStatuses y permiso por rol
// ──────────────────────────────────────────────────────────────────────────────

func TestNextStatuses_FilaDeHold(t *testing.T) {
	next := order.NextStatuses(pedidoEn(entity.StatusHold))
	assert.ElementsMatch(t, []entity.OrderStatus{
		entity.StatusNew, entity.StatusPending, entity.StatusProcessing,
		entity.StatusPicked, entity.StatusDispatched, entity.StatusCancelled,
	}, next, "Hold permite reanudar en cualquier punto del flujo o cancelar")
}

// NextStatuses devuelve una copia: mutar el resultado no corrompe la tabla.
func TestNextStatuses_DevuelveCopia(t *testing.T) {
	primero := order.NextStatuses(pedidoEn(entity.StatusNew))
	require.NotEmpty(t, primero)
	primero[0] = entity.StatusCompleted

	segundo := order.NextStatuses(pedidoEn(entity.StatusNew))
	assert.NotEqual(t, entity.StatusCompleted, segundo[0], "la tabla interna no debe mutarse")
}

// Solo admin/manager/storeman pueden invocar cambios de estado.
func TestCanChangeStatus_PorRol(t *testing.T) {
	casos := map[entity.Role]bool{
		entity.RoleAdmin:      true,
		entity.RoleManager:    true,
		entity.RoleStoreman:   true,
		entity.RoleSuperAdmin: false,
		entity.RoleSalesman:   false,
		entity.RoleRetailer:   false,
	}
	for rol, esperado := range casos {
		assert.Equal(t, esperado, order.CanChangeStatus(rol), "rol %s", rol)
	}
}
