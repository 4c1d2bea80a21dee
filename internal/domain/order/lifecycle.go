package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/repuestos-api/internal/domain/entity"
)

// ErrItemsNotPicked guarda específica de Processing → Picked: todas las líneas
// deben estar recogidas. Se distingue de InvalidTransitionError porque el
// remedio es distinto (completar el picking, no elegir otro estado).
var ErrItemsNotPicked = errors.New("el pedido tiene líneas sin recoger")

// InvalidTransitionError la transición pedida no está en la tabla legal.
// Conserva el par origen/destino para el mensaje al usuario.
type InvalidTransitionError struct {
	From entity.OrderStatus
	To   entity.OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("transición de estado inválida: %s → %s", e.From, e.To)
}

// transitions tabla canónica de transiciones legales (origen → destinos).
// Completed y Cancelled son terminales: sin fila, ninguna salida.
var transitions = map[entity.OrderStatus][]entity.OrderStatus{
	entity.StatusNew:        {entity.StatusPending, entity.StatusHold, entity.StatusCancelled},
	entity.StatusPending:    {entity.StatusProcessing, entity.StatusHold, entity.StatusCancelled},
	entity.StatusProcessing: {entity.StatusPicked, entity.StatusHold, entity.StatusCancelled},
	entity.StatusHold:       {entity.StatusNew, entity.StatusPending, entity.StatusProcessing, entity.StatusPicked, entity.StatusDispatched, entity.StatusCancelled},
	entity.StatusPicked:     {entity.StatusDispatched, entity.StatusHold},
	entity.StatusDispatched: {entity.StatusCompleted},
}

// NextStatuses destinos legales desde el estado actual del pedido.
// Vacío para Completed/Cancelled: el llamador no debe ofrecer cambio de estado.
func NextStatuses(o *entity.Order) []entity.OrderStatus {
	if o == nil {
		return nil
	}
	row := transitions[o.Status]
	out := make([]entity.OrderStatus, len(row))
	copy(out, row)
	return out
}

// CanTransition reporta si target está en la fila del estado actual.
// Solo consulta la tabla; no evalúa la guarda de picking.
func CanTransition(from, to entity.OrderStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// CanChangeStatus reporta si el rol puede invocar cambios de estado.
// retailer y salesman nunca ven el control; la tabla en sí es agnóstica al rol.
func CanChangeStatus(role entity.Role) bool {
	switch role {
	case entity.RoleAdmin, entity.RoleManager, entity.RoleStoreman:
		return true
	}
	return false
}

// Transition valida y aplica un cambio de estado sobre el pedido.
//
// En éxito muta el pedido en el lugar: fija Status, agrega una entrada al
// historial y, si notes no está vacío, sobreescribe Remark. En fallo el
// pedido queda intacto. La persistencia es responsabilidad del llamador;
// trabajar sobre una copia (Order.Clone) si el commit puede fallar.
func Transition(o *entity.Order, target entity.OrderStatus, actorRole entity.Role, notes string) error {
	if o == nil {
		return &InvalidTransitionError{To: target}
	}
	if !CanTransition(o.Status, target) {
		return &InvalidTransitionError{From: o.Status, To: target}
	}
	// Guarda: Processing → Picked exige todas las líneas recogidas.
	if o.Status == entity.StatusProcessing && target == entity.StatusPicked && !o.AllPicked() {
		return ErrItemsNotPicked
	}
	now := time.Now()
	o.StatusHistory = append(o.StatusHistory, entity.StatusEntry{
		Status:    target,
		Timestamp: now,
		ActorRole: actorRole,
		Notes:     notes,
	})
	o.Status = target
	if notes != "" {
		o.Remark = notes
	}
	o.UpdatedAt = now
	return nil
}

// Terminal reporta si el estado no tiene transiciones de salida.
func Terminal(s entity.OrderStatus) bool {
	return len(transitions[s]) == 0 && s.Valid()
}
