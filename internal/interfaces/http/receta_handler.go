package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastrillo/restopos-api/internal/application/dto"
	"github.com/jcastrillo/restopos-api/internal/application/usecase"
	"github.com/jcastrillo/restopos-api/internal/domain"
)

// RecetaHandler maneja las peticiones HTTP para Receta.
type RecetaHandler struct {
	uc *usecase.RecetaUseCase
}

// NewRecetaHandler construye el handler.
func NewRecetaHandler(uc *usecase.RecetaUseCase) *RecetaHandler {
	return &RecetaHandler{uc: uc}
}

// Create godoc
// @Summary      Crear receta con sus líneas
// @Tags         recetas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveRecetaRequest  true  "Receta completa"
// @Success      201   {object}  dto.RecetaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationResponse
// @Router       /api/recetas [post]
func (h *RecetaHandler) Create(c *fiber.Ctx) error {
	return h.save(c, "")
}

// Update godoc
// @Summary      Actualizar receta con sus líneas
// @Description  Acepta importar_subreceta_id para anexar las líneas de una sub-receta copiadas por valor.
// @Tags         recetas
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la receta"
// @Param        body  body  dto.SaveRecetaRequest  true  "Receta completa"
// @Success      200   {object}  dto.RecetaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationResponse
// @Router       /api/recetas/{id} [put]
func (h *RecetaHandler) Update(c *fiber.Ctx) error {
	return h.save(c, c.Params("id"))
}

func (h *RecetaHandler) save(c *fiber.Ctx, id string) error {
	negocioID := GetNegocioID(c)
	if negocioID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_NEGOCIO", Message: "negocio_id requerido"})
	}
	var in dto.SaveRecetaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre es requerido"})
	}
	out, campos, err := h.uc.Save(negocioID, id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "receta, insumo o sub-receta no encontrada"})
		case errors.Is(err, domain.ErrSinLineas):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "SIN_LINEAS", Message: "la sub-receta a importar no tiene líneas"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	if !campos.OK() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationResponse{Code: "VALIDATION", Fields: campos})
	}
	if id == "" {
		return c.Status(fiber.StatusCreated).JSON(out)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener receta por ID
// @Tags         recetas
// @Produce      json
// @Param        id   path  string  true  "ID de la receta"
// @Success      200  {object}  dto.RecetaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/recetas/{id} [get]
func (h *RecetaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "receta no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar recetas del negocio
// @Tags         recetas
// @Produce      json
// @Success      200  {object}  dto.RecetaListResponse
// @Router       /api/recetas [get]
func (h *RecetaHandler) List(c *fiber.Ctx) error {
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

// Delete godoc
// @Summary      Eliminar receta
// @Tags         recetas
// @Param        id  path  string  true  "ID de la receta"
// @Success      204
// @Router       /api/recetas/{id} [delete]
func (h *RecetaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
