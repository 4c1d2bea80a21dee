package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/repuestos-api/internal/application/dto"
	"github.com/jhoicas/repuestos-api/internal/application/usecase"
)

// RetailerHandler maneja las peticiones HTTP para Retailer (protegido).
type RetailerHandler struct {
	uc *usecase.RetailerUseCase
}

// NewRetailerHandler construye el handler.
func NewRetailerHandler(uc *usecase.RetailerUseCase) *RetailerHandler {
	return &RetailerHandler{uc: uc}
}

// Create godoc
// @Summary      Crear minorista
// @Tags         retailers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRetailerRequest  true  "Datos del minorista"
// @Success      201   {object}  dto.RetailerResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/retailers [post]
func (h *RetailerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRetailerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.StoreID == "" || in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "store_id y name son requeridos"})
	}
	out, err := h.uc.Create(GetActor(c), in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener minorista por ID
// @Tags         retailers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del minorista"
// @Success      200  {object}  dto.RetailerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/retailers/{id} [get]
func (h *RetailerHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(GetActor(c), id)
	if err != nil {
		return mapError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "minorista no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar minoristas visibles
// @Tags         retailers
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.RetailerListResponse
// @Router       /api/retailers [get]
func (h *RetailerHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(GetActor(c), limit, offset)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar minorista
// @Tags         retailers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del minorista"
// @Param        body  body  dto.UpdateRetailerRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.RetailerResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/retailers/{id} [put]
func (h *RetailerHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateRetailerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetActor(c), id, in)
	if err != nil {
		return mapError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "minorista no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar minorista
// @Tags         retailers
// @Security     Bearer
// @Param        id  path  string  true  "ID del minorista"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/retailers/{id} [delete]
func (h *RetailerHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(GetActor(c), id); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
