package order_test

import (
	"testing"
	"time"

	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/core/domain/model/order"
	"pharmacygo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	customerID := kernel.NewUUID()
	o, err := order.NewOrder(kernel.NewUUID(), "#PG-2148", "Laylo Karimova", &customerID,
		kernel.NewUUID(), []string{"Amoxil 500mg"}, createdAt)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	pharmacyID := kernel.NewUUID()

	t.Run("should create pending order with defaults", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := order.NewOrder(id, " #pg-2148 ", "Laylo Karimova", nil, pharmacyID, nil, createdAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, "#PG-2148", o.Code())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, []string{order.DefaultItems}, o.Items())
		assert.Equal(t, order.DefaultProgress, o.Progress())
		assert.Equal(t, order.DefaultETA, o.ETA())
		assert.Nil(t, o.CustomerID())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, createdAt, o.UpdatedAt())
		assert.Zero(t, o.Version())
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("should drop blank items", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "#PG-1", "A", nil, pharmacyID,
			[]string{" ", "Xyzal 5mg", ""}, createdAt)

		require.NoError(t, err)
		assert.Equal(t, []string{"Xyzal 5mg"}, o.Items())
		assert.Equal(t, "Xyzal 5mg", o.ItemsText())
	})

	t.Run("should collect every validation error", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{}, "", " ", nil, kernel.UUID{}, nil, createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "code")
		assert.Contains(t, err.Error(), "customer name")
		assert.Contains(t, err.Error(), "pharmacy")
	})

	t.Run("should reject malformed code", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "#PG 21", "A", nil, pharmacyID, nil, createdAt)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should copy customer id", func(t *testing.T) {
		customerID := kernel.NewUUID()

		o, err := order.NewOrder(kernel.NewUUID(), "#PG-1", "A", &customerID, pharmacyID, nil, createdAt)

		require.NoError(t, err)
		require.NotNil(t, o.CustomerID())
		assert.True(t, o.CustomerID().IsEqual(customerID))
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should keep stored state", func(t *testing.T) {
		updatedAt := createdAt.Add(time.Hour)

		o, err := order.RestoreOrder(kernel.NewUUID(), "#PG-2145", "Aziz Yuldashev", nil, kernel.NewUUID(),
			order.Delivered, []string{"Care pack"}, "Delivered", "Completed", createdAt, updatedAt, 3)

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, "Completed", o.ETA())
		assert.Equal(t, updatedAt, o.UpdatedAt())
		assert.Equal(t, 3, o.Version())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), "#PG-2145", "A", nil, kernel.NewUUID(),
			order.Unknown, nil, "", "", createdAt, createdAt, 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative version", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), "#PG-2145", "A", nil, kernel.NewUUID(),
			order.Pending, nil, "", "", createdAt, createdAt, -1)

		require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail for nil order", func(t *testing.T) {
		var o *order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("should fail for zero value order", func(t *testing.T) {
		var o order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_Apply(t *testing.T) {
	at := createdAt.Add(30 * time.Minute)

	tests := []struct {
		action   order.Action
		status   order.Status
		progress string
		eta      string
	}{
		{order.ActionPack, order.Packed, "Packed", "Awaiting courier"},
		{order.ActionOut, order.Out, "Out for delivery", "15 min"},
		{order.ActionDeliver, order.Delivered, "Delivered", "Completed"},
		{order.ActionCancel, order.Cancelled, "Cancelled", "—"},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			o := newPendingOrder(t)

			err := o.Apply(tt.action, at)

			require.NoError(t, err)
			assert.Equal(t, tt.status, o.Status())
			assert.Equal(t, tt.progress, o.Progress())
			assert.Equal(t, tt.eta, o.ETA())
			assert.Equal(t, at, o.UpdatedAt())

			events := o.DomainEvents()
			require.Len(t, events, 1)
			changed, ok := events[0].(order.StatusChanged)
			require.True(t, ok)
			assert.Equal(t, "order.status_changed", changed.EventName())
			assert.Equal(t, o.Code(), changed.Code)
			assert.Equal(t, tt.status.Code(), changed.Status)
			assert.Equal(t, o.CustomerID().String(), changed.CustomerID)
			assert.Equal(t, at, changed.OccurredAt())
		})
	}

	t.Run("should refuse to move a delivered order", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Apply(order.ActionDeliver, at))
		o.ClearDomainEvents()

		err := o.Apply(order.ActionCancel, at)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, "Completed", o.ETA())
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("should refuse to pack an order that is already out", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Apply(order.ActionOut, at))

		err := o.Apply(order.ActionPack, at)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Out, o.Status())
	})

	t.Run("should reject unknown action", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.Apply(order.Action("refund"), at)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	o1 := newPendingOrder(t)
	o2 := newPendingOrder(t)

	assert.True(t, o1.IsEqual(o1))
	assert.False(t, o1.IsEqual(o2))
	assert.False(t, o1.IsEqual(nil))
}

func TestOrder_ItemsAreCopied(t *testing.T) {
	o := newPendingOrder(t)

	items := o.Items()
	items[0] = "changed"

	assert.Equal(t, "Amoxil 500mg", o.Items()[0])
}

func TestParseItems(t *testing.T) {
	assert.Equal(t, []string{"Amoxil 500mg", "Xyzal 5mg"}, order.ParseItems("Amoxil 500mg, Xyzal 5mg\n"))
	assert.Empty(t, order.ParseItems(" , \n "))
}
