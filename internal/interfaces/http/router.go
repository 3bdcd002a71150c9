package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastrillo/restopos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InsumoUC     *usecase.InsumoUseCase
	ProveedorUC  *usecase.ProveedorUseCase
	CategoriaUC  *usecase.CategoriaUseCase
	GastoUC      *usecase.GastoUseCase
	CompraUC     *usecase.CompraUseCase
	ProductoUC   *usecase.ProductoUseCase
	SubRecetaUC  *usecase.SubRecetaUseCase
	RecetaUC     *usecase.RecetaUseCase
	MovimientoUC *usecase.MovimientoUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Insumos
	insumos := api.Group("/insumos")
	insumoHandler := NewInsumoHandler(deps.InsumoUC)
	insumos.Post("/", insumoHandler.Create)
	insumos.Get("/", insumoHandler.List)
	insumos.Get("/candidatos", insumoHandler.Candidatos)
	insumos.Get("/:id", insumoHandler.GetByID)
	insumos.Put("/:id", insumoHandler.Update)
	insumos.Delete("/:id", insumoHandler.Delete)

	// Proveedores
	proveedores := api.Group("/proveedores")
	proveedorHandler := NewProveedorHandler(deps.ProveedorUC)
	proveedores.Post("/", proveedorHandler.Create)
	proveedores.Get("/", proveedorHandler.List)
	proveedores.Get("/:id", proveedorHandler.GetByID)
	proveedores.Put("/:id", proveedorHandler.Update)
	proveedores.Delete("/:id", proveedorHandler.Delete)

	// Categorías
	categorias := api.Group("/categorias")
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	categorias.Post("/", categoriaHandler.Create)
	categorias.Get("/", categoriaHandler.List)
	categorias.Put("/:id", categoriaHandler.Update)
	categorias.Delete("/:id", categoriaHandler.Delete)

	// Gastos
	gastos := api.Group("/gastos")
	gastoHandler := NewGastoHandler(deps.GastoUC)
	gastos.Post("/", gastoHandler.Create)
	gastos.Get("/", gastoHandler.List)
	gastos.Get("/:id", gastoHandler.GetByID)
	gastos.Put("/:id", gastoHandler.Update)
	gastos.Delete("/:id", gastoHandler.Delete)

	// Compras (registro + consulta de último estado)
	compras := api.Group("/compras")
	compraHandler := NewCompraHandler(deps.CompraUC)
	compras.Post("/", compraHandler.Registrar)
	compras.Get("/", compraHandler.List)
	compras.Get("/ultimo-estado/:insumoId", compraHandler.UltimoEstado)

	// Productos de venta
	productos := api.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Post("/", productoHandler.Create)
	productos.Get("/", productoHandler.List)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", productoHandler.Update)
	productos.Delete("/:id", productoHandler.Delete)

	// Sub-recetas
	subrecetas := api.Group("/subrecetas")
	subRecetaHandler := NewSubRecetaHandler(deps.SubRecetaUC)
	subrecetas.Post("/", subRecetaHandler.Create)
	subrecetas.Get("/", subRecetaHandler.List)
	subrecetas.Get("/:id", subRecetaHandler.GetByID)
	subrecetas.Put("/:id", subRecetaHandler.Update)
	subrecetas.Delete("/:id", subRecetaHandler.Delete)

	// Recetas
	recetas := api.Group("/recetas")
	recetaHandler := NewRecetaHandler(deps.RecetaUC)
	recetas.Post("/", recetaHandler.Create)
	recetas.Get("/", recetaHandler.List)
	recetas.Get("/:id", recetaHandler.GetByID)
	recetas.Put("/:id", recetaHandler.Update)
	recetas.Delete("/:id", recetaHandler.Delete)

	// Movimientos
	movimientos := api.Group("/movimientos")
	movimientoHandler := NewMovimientoHandler(deps.MovimientoUC)
	movimientos.Post("/", movimientoHandler.Registrar)
	movimientos.Get("/", movimientoHandler.List)
	movimientos.Get("/:id", movimientoHandler.GetByID)
	movimientos.Get("/:id/voucher.pdf", movimientoHandler.VoucherPDF)
}
