package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vinilos-api/internal/application/dto"
	"github.com/jhoicas/vinilos-api/internal/application/usecase"
)

// ArtistHandler maneja las peticiones HTTP para artistas.
type ArtistHandler struct {
	uc *usecase.ArtistUseCase
}

// NewArtistHandler construye el handler.
func NewArtistHandler(uc *usecase.ArtistUseCase) *ArtistHandler {
	return &ArtistHandler{uc: uc}
}

// Create godoc
// @Summary      Crear artista
// @Tags         artists
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateArtistRequest  true  "Datos del artista"
// @Success      201   {object}  dto.ArtistResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/artists [post]
func (h *ArtistHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateArtistRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener artista por ID
// @Tags         artists
// @Produce      json
// @Param        id   path  string  true  "ID del artista"
// @Success      200  {object}  dto.ArtistResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/artists/{id} [get]
func (h *ArtistHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar artistas
// @Tags         artists
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.ArtistResponse
// @Router       /api/artists [get]
func (h *ArtistHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar artista
// @Tags         artists
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del artista"
// @Param        body  body  dto.CreateArtistRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ArtistResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/artists/{id} [put]
func (h *ArtistHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.CreateArtistRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar artista
// @Tags         artists
// @Param        id   path  string  true  "ID del artista"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/artists/{id} [delete]
func (h *ArtistHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
