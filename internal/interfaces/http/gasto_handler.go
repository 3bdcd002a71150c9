package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastrillo/restopos-api/internal/application/dto"
	"github.com/jcastrillo/restopos-api/internal/application/usecase"
	"github.com/jcastrillo/restopos-api/internal/domain"
)

// GastoHandler maneja las peticiones HTTP para Gasto.
type GastoHandler struct {
	uc *usecase.GastoUseCase
}

// NewGastoHandler construye el handler.
func NewGastoHandler(uc *usecase.GastoUseCase) *GastoHandler {
	return &GastoHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar gasto
// @Tags         gastos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveGastoRequest  true  "Datos del gasto"
// @Success      201   {object}  dto.GastoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/gastos [post]
func (h *GastoHandler) Create(c *fiber.Ctx) error {
	negocioID := GetNegocioID(c)
	if negocioID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_NEGOCIO", Message: "negocio_id requerido"})
	}
	var in dto.SaveGastoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Concepto == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "concepto es requerido"})
	}
	out, err := h.uc.Create(negocioID, GetUsuarioID(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener gasto por ID
// @Tags         gastos
// @Produce      json
// @Param        id   path  string  true  "ID del gasto"
// @Success      200  {object}  dto.GastoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/gastos/{id} [get]
func (h *GastoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "gasto no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar gastos del negocio
// @Tags         gastos
// @Produce      json
// @Param        from  query  string  false  "Fecha desde (2006-01-02)"
// @Param        to    query  string  false  "Fecha hasta (2006-01-02)"
// @Success      200   {object}  dto.GastoListResponse
// @Router       /api/gastos [get]
func (h *GastoHandler) List(c *fiber.Ctx) error {
	negocioID := GetNegocioID(c)
	if negocioID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_NEGOCIO", Message: "negocio_id requerido"})
	}
	limit, offset := parsePage(c)
	out, err := h.uc.List(negocioID, parseFecha(c, "from"), parseFecha(c, "to"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar gasto
// @Tags         gastos
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del gasto"
// @Param        body  body  dto.SaveGastoRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.GastoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/gastos/{id} [put]
func (h *GastoHandler) Update(c *fiber.Ctx) error {
	var in dto.SaveGastoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "gasto no encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "concepto y monto positivo son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "gasto no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar gasto
// @Tags         gastos
// @Param        id  path  string  true  "ID del gasto"
// @Success      204
// @Router       /api/gastos/{id} [delete]
func (h *GastoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
