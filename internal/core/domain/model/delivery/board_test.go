package delivery_test

import (
	"testing"

	"pharmacygo/internal/core/domain/model/delivery"
	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimelineEvent(t *testing.T) {
	e, err := delivery.NewTimelineEvent(kernel.NewUUID(), "In transit", "10:15", true, now)

	require.NoError(t, err)
	require.NoError(t, e.Validate())
	assert.Equal(t, "In transit", e.Label())
	assert.Equal(t, "10:15", e.TimeText())
	assert.True(t, e.IsActive())

	_, err = delivery.NewTimelineEvent(kernel.NewUUID(), " ", "10:15", false, now)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestStatusEntry(t *testing.T) {
	t.Run("should complete entry", func(t *testing.T) {
		s, err := delivery.NewStatusEntry(kernel.NewUUID(), "#PG-2139", "UzMed Express", "Awaiting pickup")
		require.NoError(t, err)

		s.Complete()

		assert.Equal(t, delivery.DeliveredText, s.Status())
	})

	t.Run("should update free-text status", func(t *testing.T) {
		s, _ := delivery.NewStatusEntry(kernel.NewUUID(), "#PG-2139", "UzMed Express", "Awaiting pickup")

		require.NoError(t, s.UpdateStatus(" Courier delayed "))
		assert.Equal(t, "Courier delayed", s.Status())

		require.ErrorIs(t, s.UpdateStatus(""), errs.ErrValueIsRequired)
		assert.Equal(t, "Courier delayed", s.Status())
	})

	t.Run("should require fields", func(t *testing.T) {
		s, err := delivery.NewStatusEntry(kernel.NewUUID(), "", "", "")

		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "order code")
		assert.Contains(t, err.Error(), "pharmacy name")
		assert.Contains(t, err.Error(), "status")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var s *delivery.StatusEntry
		assert.Equal(t, delivery.ErrStatusEntryIsNotConstructed, s.Validate())
	})
}
