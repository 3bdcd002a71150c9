package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastrillo/restopos-api/internal/application/dto"
	"github.com/jcastrillo/restopos-api/internal/application/usecase"
	"github.com/jcastrillo/restopos-api/internal/domain"
)

// SubRecetaHandler maneja las peticiones HTTP para SubReceta.
type SubRecetaHandler struct {
	uc *usecase.SubRecetaUseCase
}

// NewSubRecetaHandler construye el handler.
func NewSubRecetaHandler(uc *usecase.SubRecetaUseCase) *SubRecetaHandler {
	return &SubRecetaHandler{uc: uc}
}

// Create godoc
// @Summary      Crear sub-receta con sus líneas
// @Tags         subrecetas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveSubRecetaRequest  true  "Sub-receta completa"
// @Success      201   {object}  dto.SubRecetaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationResponse
// @Router       /api/subrecetas [post]
func (h *SubRecetaHandler) Create(c *fiber.Ctx) error {
	return h.save(c, "")
}

// Update godoc
// @Summary      Actualizar sub-receta con sus líneas
// @Description  Las líneas ya persistidas conservan insumo y unidad; solo su cantidad es editable.
// @Tags         subrecetas
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la sub-receta"
// @Param        body  body  dto.SaveSubRecetaRequest  true  "Sub-receta completa"
// @Success      200   {object}  dto.SubRecetaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationResponse
// @Router       /api/subrecetas/{id} [put]
func (h *SubRecetaHandler) Update(c *fiber.Ctx) error {
	return h.save(c, c.Params("id"))
}

func (h *SubRecetaHandler) save(c *fiber.Ctx, id string) error {
	negocioID := GetNegocioID(c)
	if negocioID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_NEGOCIO", Message: "negocio_id requerido"})
	}
	var in dto.SaveSubRecetaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre es requerido"})
	}
	out, campos, err := h.uc.Save(negocioID, id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sub-receta o insumo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
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
// @Summary      Obtener sub-receta por ID
// @Tags         subrecetas
// @Produce      json
// @Param        id   path  string  true  "ID de la sub-receta"
// @Success      200  {object}  dto.SubRecetaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subrecetas/{id} [get]
func (h *SubRecetaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sub-receta no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar sub-recetas del negocio
// @Tags         subrecetas
// @Produce      json
// @Success      200  {object}  dto.SubRecetaListResponse
// @Router       /api/subrecetas [get]
func (h *SubRecetaHandler) List(c *fiber.Ctx) error {
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
// @Summary      Eliminar sub-receta
// @Tags         subrecetas
// @Param        id  path  string  true  "ID de la sub-receta"
// @Success      204
// @Router       /api/subrecetas/{id} [delete]
func (h *SubRecetaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
