package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastrillo/restopos-api/internal/application/dto"
	"github.com/jcastrillo/restopos-api/internal/application/usecase"
	"github.com/jcastrillo/restopos-api/internal/domain"
)

// CompraHandler maneja las peticiones HTTP para compras de insumos.
type CompraHandler struct {
	uc *usecase.CompraUseCase
}

// NewCompraHandler construye el handler.
func NewCompraHandler(uc *usecase.CompraUseCase) *CompraHandler {
	return &CompraHandler{uc: uc}
}

// Registrar godoc
// @Summary      Registrar compra de insumo
// @Description  Aplica el promedio ponderado al costo del insumo y suma stock, todo en una transacción.
// @Tags         compras
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarCompraRequest  true  "Datos de la compra"
// @Success      201   {object}  dto.CompraResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/compras [post]
func (h *CompraHandler) Registrar(c *fiber.Ctx) error {
	negocioID := GetNegocioID(c)
	if negocioID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_NEGOCIO", Message: "negocio_id requerido"})
	}
	var in dto.RegistrarCompraRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Registrar(c.Context(), negocioID, GetUsuarioID(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "insumo_id y cantidad positiva son requeridos"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "insumo o proveedor no encontrado"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UltimoEstado godoc
// @Summary      Último estado de un insumo (stock, costo, última compra)
// @Tags         compras
// @Produce      json
// @Param        insumoId  path  string  true  "ID del insumo"
// @Success      200  {object}  dto.UltimoEstadoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/compras/ultimo-estado/{insumoId} [get]
func (h *CompraHandler) UltimoEstado(c *fiber.Ctx) error {
	out, err := h.uc.UltimoEstado(c.Params("insumoId"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "insumo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar compras del negocio
// @Tags         compras
// @Produce      json
// @Success      200  {object}  dto.CompraListResponse
// @Router       /api/compras [get]
func (h *CompraHandler) List(c *fiber.Ctx) error {
	negocioID := GetNegocioID(c)
	if negocioID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_NEGOCIO", Message: "negocio_id requerido"})
	}
	limit, offset := parsePage(c)
	out, err := h.uc.List(negocioID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
