package http

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vinilos-api/internal/application/dto"
	"github.com/jhoicas/vinilos-api/internal/domain"
)

func doRequest(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return writeDomainError(c, err)
	})
	resp, reqErr := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, reqErr)
	defer resp.Body.Close()

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestWriteDomainError_StockInsuficiente(t *testing.T) {
	status, body := doRequest(t, &domain.InsufficientStockError{
		RecordID: "r1", Available: 3, Requested: 5,
	})

	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Code)
	assert.Equal(t, "r1", body.RecordID)
	require.NotNil(t, body.Available)
	assert.Equal(t, 3, *body.Available)
}

func TestWriteDomainError_CantidadInvalida(t *testing.T) {
	status, body := doRequest(t, &domain.InvalidQuantityError{RecordID: "r2", Quantity: 0})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "INVALID_QUANTITY", body.Code)
	assert.Equal(t, "r2", body.RecordID)
}

func TestWriteDomainError_Sentinelas(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
		{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
		{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
		{fmt.Errorf("falla inesperada"), fiber.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		status, body := doRequest(t, tc.err)
		assert.Equal(t, tc.status, status, tc.code)
		assert.Equal(t, tc.code, body.Code)
	}
}

func TestWriteDomainError_ErrorEnvuelto(t *testing.T) {
	// Los usecases envuelven los sentinelas con contexto; el mapeo debe verlos igual.
	status, body := doRequest(t, fmt.Errorf("cargar ingreso: %w", domain.ErrNotFound))

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body.Code)
}
