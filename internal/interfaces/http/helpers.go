package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Cabeceras de contexto multi-negocio. La API no lleva capa de autenticación;
// el cliente identifica negocio y usuario por cabecera (o query param en los
// enlaces directos, ej. descarga de PDF).
const (
	HeaderNegocioID = "X-Negocio-Id"
	HeaderUsuarioID = "X-Usuario-Id"
)

// GetNegocioID devuelve el negocio de la petición (cabecera o query param).
func GetNegocioID(c *fiber.Ctx) string {
	if v := c.Get(HeaderNegocioID); v != "" {
		return v
	}
	return c.Query("negocio_id")
}

// GetUsuarioID devuelve el usuario de la petición, si viene.
func GetUsuarioID(c *fiber.Ctx) string {
	if v := c.Get(HeaderUsuarioID); v != "" {
		return v
	}
	return c.Query("usuario_id")
}

// parsePage lee limit/offset con defaults y topes.
func parsePage(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", 20)
	offset = c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// parseFecha lee un query param de fecha en formato 2006-01-02 o RFC3339.
// Devuelve nil si no viene o no parsea.
func parseFecha(c *fiber.Ctx, key string) *time.Time {
	v := c.Query(key)
	if v == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return &t
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return &t
	}
	return nil
}
