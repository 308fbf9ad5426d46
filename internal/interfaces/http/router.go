package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vinilos-api/internal/application/inventory"
	"github.com/jhoicas/vinilos-api/internal/application/receipt"
	"github.com/jhoicas/vinilos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RecordUC   *usecase.RecordUseCase
	ArtistUC   *usecase.ArtistUseCase
	GenreUC    *usecase.GenreUseCase
	SupplierUC *usecase.SupplierUseCase
	StatusUC   *usecase.StatusUseCase
	ShipmentUC *inventory.ShipmentUseCase
	SaleUC     *inventory.SaleUseCase
	ReceiptUC  *receipt.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo de discos
	records := api.Group("/records")
	recordHandler := NewRecordHandler(deps.RecordUC)
	records.Post("/", recordHandler.Create)
	records.Get("/", recordHandler.List)
	records.Get("/:id", recordHandler.GetByID)
	records.Put("/:id", recordHandler.Update)
	records.Delete("/:id", recordHandler.Delete)

	// Artistas
	artists := api.Group("/artists")
	artistHandler := NewArtistHandler(deps.ArtistUC)
	artists.Post("/", artistHandler.Create)
	artists.Get("/", artistHandler.List)
	artists.Get("/:id", artistHandler.GetByID)
	artists.Put("/:id", artistHandler.Update)
	artists.Delete("/:id", artistHandler.Delete)

	// Géneros
	genres := api.Group("/genres")
	genreHandler := NewGenreHandler(deps.GenreUC)
	genres.Post("/", genreHandler.Create)
	genres.Get("/", genreHandler.List)
	genres.Get("/:id", genreHandler.GetByID)
	genres.Put("/:id", genreHandler.Update)
	genres.Delete("/:id", genreHandler.Delete)

	// Proveedores
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Estados de disponibilidad (catálogo fijo, solo lectura)
	statuses := api.Group("/statuses")
	statusHandler := NewStatusHandler(deps.StatusUC)
	statuses.Get("/", statusHandler.List)
	statuses.Get("/:id", statusHandler.GetByID)

	// Ingresos de mercancía
	shipments := api.Group("/shipments")
	shipmentHandler := NewShipmentHandler(deps.ShipmentUC)
	shipments.Post("/", shipmentHandler.Create)
	shipments.Get("/", shipmentHandler.List)
	shipments.Get("/:id", shipmentHandler.GetByID)
	shipments.Put("/:id", shipmentHandler.Update)
	shipments.Delete("/:id", shipmentHandler.Delete)

	// Ventas
	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC, deps.ReceiptUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Get("/:id/receipt", saleHandler.DownloadReceipt)
	sales.Put("/:id", saleHandler.Update)
	sales.Delete("/:id", saleHandler.Delete)
}
