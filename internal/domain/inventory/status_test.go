package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/vinilos-api/internal/domain/entity"
	"github.com/jhoicas/vinilos-api/internal/domain/inventory"
)

func TestDeriveStatus(t *testing.T) {
	assert.Equal(t, entity.StatusInStock, inventory.DeriveStatus(1))
	assert.Equal(t, entity.StatusInStock, inventory.DeriveStatus(250))
	assert.Equal(t, entity.StatusOutOfStock, inventory.DeriveStatus(0))
	assert.Equal(t, entity.StatusOutOfStock, inventory.DeriveStatus(-3))
}

func TestClampQuantity(t *testing.T) {
	assert.Equal(t, 7, inventory.ClampQuantity(4, 3))
	assert.Equal(t, 1, inventory.ClampQuantity(4, -3))
	assert.Equal(t, 0, inventory.ClampQuantity(4, -4))
	// un delta que dejaría el stock negativo hace clamp a 0
	assert.Equal(t, 0, inventory.ClampQuantity(4, -10))
}
