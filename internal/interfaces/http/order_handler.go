package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/repuestos-api/internal/application/dto"
	"github.com/jhoicas/repuestos-api/internal/application/orders"
)

// OrderHandler maneja las peticiones HTTP de pedidos: creación, lecturas,
// transiciones disponibles, cambio de estado y picking de líneas.
type OrderHandler struct {
	create *orders.CreateOrderUseCase
	change *orders.ChangeStatusUseCase
	pick   *orders.PickItemUseCase
	query  *orders.QueryUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(create *orders.CreateOrderUseCase, change *orders.ChangeStatusUseCase, pick *orders.PickItemUseCase, query *orders.QueryUseCase) *OrderHandler {
	return &OrderHandler{create: create, change: change, pick: pick, query: query}
}

// Create godoc
// @Summary      Crear pedido
// @Description  Crea un pedido en estado New. Precio y descuentos se congelan del catálogo.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Datos del pedido"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.StoreID == "" || in.RetailerID == "" || len(in.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "store_id, retailer_id e items son requeridos"})
	}
	out, err := h.create.Execute(c.Context(), GetActor(c), in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar pedidos visibles para el actor
// @Description  Minorista: solo los suyos. Roles operativos: los de sus tiendas accesibles.
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.OrderListResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.query.List(GetActor(c), limit, offset)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener pedido por ID
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.query.GetByID(GetActor(c), id)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// Transitions godoc
// @Summary      Destinos legales desde el estado actual
// @Description  Lista vacía cuando el pedido está en estado terminal o el rol no puede cambiar estados.
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.TransitionsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/transitions [get]
func (h *OrderHandler) Transitions(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.query.Transitions(GetActor(c), id)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// ChangeStatus godoc
// @Summary      Cambiar el estado de un pedido
// @Description  Valida la transición contra la tabla del ciclo de vida y la guarda de picking.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.ChangeStatusRequest  true  "Estado destino y notas"
// @Success      200   {object}  dto.OrderResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/status [patch]
func (h *OrderHandler) ChangeStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.ChangeStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status es requerido"})
	}
	out, err := h.change.Execute(c.Context(), GetActor(c), id, in)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// PickItem godoc
// @Summary      Marcar o desmarcar una línea como recogida
// @Description  Solo sobre pedidos en Processing. Alimenta la guarda Processing → Picked.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id      path  string  true  "ID del pedido"
// @Param        itemID  path  string  true  "ID de la línea"
// @Param        body    body  dto.PickItemRequest  true  "Marcado"
// @Success      200     {object}  dto.OrderResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Failure      409     {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/items/{itemID}/pick [patch]
func (h *OrderHandler) PickItem(c *fiber.Ctx) error {
	id := c.Params("id")
	itemID := c.Params("itemID")
	if id == "" || itemID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id e itemID son requeridos"})
	}
	var in dto.PickItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.pick.Execute(c.Context(), GetActor(c), id, itemID, in)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}
