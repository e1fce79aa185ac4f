package inventory_test

import (
	"testing"

	"pharmacygo/internal/core/domain/model/inventory"
	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStockItem(t *testing.T) {
	t.Run("should create item with default shelf life", func(t *testing.T) {
		s, err := inventory.NewStockItem(kernel.NewUUID(), "amx-500", "Amoxil 500mg", 320, "")

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, "AMX-500", s.Sku())
		assert.Equal(t, 320, s.Quantity())
		assert.Equal(t, inventory.StatusHealthy, s.Status())
		assert.Equal(t, inventory.DefaultExpiresInDays, s.ExpiresInDays())
	})

	t.Run("should accept zero quantity", func(t *testing.T) {
		_, err := inventory.NewStockItem(kernel.NewUUID(), "GLC-20", "Glucophage XR", 0, "Watch")

		require.NoError(t, err)
	})

	t.Run("should reject negative numbers", func(t *testing.T) {
		s, err := inventory.RestoreStockItem(kernel.NewUUID(), "GLC-20", "Glucophage XR", -1, "Watch", -3)

		require.Error(t, err)
		assert.Nil(t, s)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "quantity")
		assert.Contains(t, err.Error(), "expires in days")
	})

	t.Run("should require sku and name", func(t *testing.T) {
		_, err := inventory.NewStockItem(kernel.NewUUID(), "", "", 1, "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestStockItem_Age(t *testing.T) {
	t.Run("should keep staff status while far from expiry", func(t *testing.T) {
		s, _ := inventory.RestoreStockItem(kernel.NewUUID(), "GLC-20", "Glucophage XR", 110, "Watch", 9)

		assert.True(t, s.Age())

		assert.Equal(t, 8, s.ExpiresInDays())
		assert.Equal(t, inventory.StatusWatch, s.Status())
	})

	t.Run("should mark expiring at the threshold", func(t *testing.T) {
		s, _ := inventory.RestoreStockItem(kernel.NewUUID(), "GLC-20", "Glucophage XR", 110, "Healthy", 8)

		s.Age()

		assert.Equal(t, inventory.ExpiringThreshold, s.ExpiresInDays())
		assert.Equal(t, inventory.StatusExpiring, s.Status())
	})

	t.Run("should mark expired at zero and stop there", func(t *testing.T) {
		s, _ := inventory.RestoreStockItem(kernel.NewUUID(), "XYZ-5", "Xyzal 5mg", 540, "Expiring", 1)

		assert.True(t, s.Age())
		assert.Equal(t, 0, s.ExpiresInDays())
		assert.Equal(t, inventory.StatusExpired, s.Status())

		assert.False(t, s.Age())
		assert.Equal(t, 0, s.ExpiresInDays())
	})

	t.Run("should expire restored item already at zero", func(t *testing.T) {
		s, _ := inventory.RestoreStockItem(kernel.NewUUID(), "XYZ-5", "Xyzal 5mg", 540, "Healthy", 0)

		assert.True(t, s.Age())
		assert.Equal(t, inventory.StatusExpired, s.Status())
	})
}
