package purchasing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/compras-dashboard/internal/domain/purchasing"
)

func TestProductKey(t *testing.T) {
	assert.Equal(t, purchasing.ProductKey("Luva  Nitrilo "), purchasing.ProductKey("LUVA nitrilo"))
	assert.Equal(t, purchasing.ProductKey("Ação"), purchasing.ProductKey("AÇÃO"))
	assert.NotEqual(t, purchasing.ProductKey("Luva"), purchasing.ProductKey("Luvas"))
	assert.Empty(t, purchasing.ProductKey("   "))
}
