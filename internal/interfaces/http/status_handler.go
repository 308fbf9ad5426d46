package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vinilos-api/internal/application/dto"
	"github.com/jhoicas/vinilos-api/internal/application/usecase"
)

// StatusHandler expone el catálogo fijo de estados de disponibilidad (solo lectura).
type StatusHandler struct {
	uc *usecase.StatusUseCase
}

// NewStatusHandler construye el handler.
func NewStatusHandler(uc *usecase.StatusUseCase) *StatusHandler {
	return &StatusHandler{uc: uc}
}

// List godoc
// @Summary      Listar estados de disponibilidad
// @Tags         statuses
// @Produce      json
// @Success      200  {array}  dto.StatusResponse
// @Router       /api/statuses [get]
func (h *StatusHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener estado por ID
// @Tags         statuses
// @Produce      json
// @Param        id   path  int  true  "ID del estado"
// @Success      200  {object}  dto.StatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/statuses/{id} [get]
func (h *StatusHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}
