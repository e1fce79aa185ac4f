package commands_test

import (
	"testing"

	"pharmacygo/internal/core/application/usecases/commands"
	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateCustomerOrderCommand(t *testing.T) {
	t.Run("parses items and keeps requested code", func(t *testing.T) {
		cmd, err := commands.NewCreateCustomerOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Xyzal 5mg, Amoxil 500mg\nVitamin C", "#PG-9001")

		require.NoError(t, err)
		assert.Equal(t, []string{"Xyzal 5mg", "Amoxil 500mg", "Vitamin C"}, cmd.Items())
		assert.Equal(t, "#PG-9001", cmd.Code())
	})

	t.Run("code is optional", func(t *testing.T) {
		cmd, err := commands.NewCreateCustomerOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "", " ")

		require.NoError(t, err)
		assert.Empty(t, cmd.Code())
		assert.Empty(t, cmd.Items())
	})

	t.Run("rejects malformed code", func(t *testing.T) {
		_, err := commands.NewCreateCustomerOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "", "#PG 12!")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects empty pharmacy", func(t *testing.T) {
		_, err := commands.NewCreateCustomerOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{}, "", "")

		require.Error(t, err)
	})
}
