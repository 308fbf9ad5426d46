package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vinilos-api/internal/application/dto"
	"github.com/jhoicas/vinilos-api/internal/application/usecase"
)

// GenreHandler maneja las peticiones HTTP para géneros.
type GenreHandler struct {
	uc *usecase.GenreUseCase
}

// NewGenreHandler construye el handler.
func NewGenreHandler(uc *usecase.GenreUseCase) *GenreHandler {
	return &GenreHandler{uc: uc}
}

// Create godoc
// @Summary      Crear género
// @Tags         genres
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateGenreRequest  true  "Datos del género"
// @Success      201   {object}  dto.GenreResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/genres [post]
func (h *GenreHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateGenreRequest
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
// @Summary      Obtener género por ID
// @Tags         genres
// @Produce      json
// @Param        id   path  string  true  "ID del género"
// @Success      200  {object}  dto.GenreResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/genres/{id} [get]
func (h *GenreHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar géneros
// @Tags         genres
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.GenreResponse
// @Router       /api/genres [get]
func (h *GenreHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar género
// @Tags         genres
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del género"
// @Param        body  body  dto.CreateGenreRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.GenreResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/genres/{id} [put]
func (h *GenreHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.CreateGenreRequest
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
// @Summary      Eliminar género
// @Tags         genres
// @Param        id   path  string  true  "ID del género"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/genres/{id} [delete]
func (h *GenreHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
